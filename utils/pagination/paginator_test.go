package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginator_NumPages(t *testing.T) {
	tests := []struct {
		count int
		want  int
	}{
		{0, 1}, {1, 1}, {3, 1}, {4, 2}, {6, 2}, {7, 3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, New(tt.count, 3).NumPages(), "count=%d", tt.count)
	}
}

func TestPaginator_ValidateNumber(t *testing.T) {
	p := New(7, 3)

	tests := []struct {
		name    string
		raw     string
		want    int
		wantErr error
	}{
		{name: "first", raw: "1", want: 1},
		{name: "last", raw: "3", want: 3},
		{name: "padded", raw: " 2 ", want: 2},
		{name: "not an integer", raw: "abc", wantErr: ErrPageNotAnInteger},
		{name: "float", raw: "2.0", wantErr: ErrPageNotAnInteger},
		{name: "empty", raw: "", wantErr: ErrPageNotAnInteger},
		{name: "zero", raw: "0", wantErr: ErrEmptyPage},
		{name: "negative", raw: "-1", wantErr: ErrEmptyPage},
		{name: "past the end", raw: "4", wantErr: ErrEmptyPage},
		{name: "overflows int", raw: "99999999999999999999999", wantErr: ErrEmptyPage},
		{name: "overflows negative", raw: "-99999999999999999999999", wantErr: ErrEmptyPage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.ValidateNumber(tt.raw)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPaginator_ValidateNumber_EmptyFirstPage(t *testing.T) {
	n, err := New(0, 3).ValidateNumber("1")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = New(0, 3).ValidateNumber("2")
	assert.ErrorIs(t, err, ErrEmptyPage)
}

func TestPaginator_Page(t *testing.T) {
	p := New(7, 3)

	first := p.Page(1)
	assert.Equal(t, Page{Number: 1, NumPages: 3, Offset: 0, Limit: 3, HasNext: true}, first)

	last := p.Page(3)
	assert.Equal(t, Page{Number: 3, NumPages: 3, Offset: 6, Limit: 1, HasPrevious: true}, last)
	assert.Equal(t, []int{1, 2, 3}, last.Range())
	assert.Equal(t, 2, last.PreviousNumber())
	assert.Equal(t, 2, first.NextNumber())
}

func TestPaginator_LoadMorePage(t *testing.T) {
	p := New(7, 3)

	tests := []struct {
		name string
		raw  string
		want int
	}{
		{name: "valid", raw: "2", want: 2},
		{name: "not an integer goes to second page", raw: "undefined", want: 2},
		{name: "past the end goes to last page", raw: "9", want: 3},
		{name: "zero goes to last page", raw: "0", want: 3},
		{name: "overflow goes to last page", raw: "99999999999999999999999", want: 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.LoadMorePage(tt.raw).Number)
		})
	}

	assert.Equal(t, 1, New(2, 3).LoadMorePage("x").Number, "single page falls back to last page")
}

func TestPaginator_ListPage(t *testing.T) {
	p := New(7, 3)

	pg, err := p.ListPage("")
	require.NoError(t, err)
	assert.Equal(t, 1, pg.Number)

	pg, err = p.ListPage("last")
	require.NoError(t, err)
	assert.Equal(t, 3, pg.Number)

	_, err = p.ListPage("x")
	assert.ErrorIs(t, err, ErrPageNotAnInteger)

	_, err = p.ListPage("5")
	assert.ErrorIs(t, err, ErrEmptyPage)
}
