package pagination

import (
	"errors"
	"strconv"
	"strings"
)

var (
	ErrPageNotAnInteger = errors.New("page number is not an integer")
	ErrEmptyPage        = errors.New("page contains no results")
)

// Paginator splits Count items into pages of PerPage. An empty result set still has one page.
type Paginator struct {
	Count   int
	PerPage int
}

type Page struct {
	Number      int
	NumPages    int
	Offset      int
	Limit       int
	HasNext     bool
	HasPrevious bool
}

func New(count, perPage int) *Paginator {
	if perPage < 1 {
		perPage = 1
	}
	if count < 0 {
		count = 0
	}
	return &Paginator{Count: count, PerPage: perPage}
}

func (p *Paginator) NumPages() int {
	if p.Count == 0 {
		return 1
	}
	return (p.Count + p.PerPage - 1) / p.PerPage
}

// ValidateNumber parses a page number and checks it lies within the page range.
func (p *Paginator) ValidateNumber(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		// A number too large for int is still a number, just out of range.
		if errors.Is(err, strconv.ErrRange) {
			return 0, ErrEmptyPage
		}
		return 0, ErrPageNotAnInteger
	}
	if n < 1 {
		return 0, ErrEmptyPage
	}
	if n > p.NumPages() {
		if n == 1 {
			return n, nil
		}
		return 0, ErrEmptyPage
	}
	return n, nil
}

// Page builds the window for a page number that already passed ValidateNumber.
func (p *Paginator) Page(n int) Page {
	num := p.NumPages()
	if n < 1 {
		n = 1
	}
	if n > num {
		n = num
	}
	offset := (n - 1) * p.PerPage
	limit := p.PerPage
	if offset+limit > p.Count {
		limit = max(p.Count-offset, 0)
	}
	return Page{
		Number:      n,
		NumPages:    num,
		Offset:      offset,
		Limit:       limit,
		HasNext:     n < num,
		HasPrevious: n > 1,
	}
}

// LoadMorePage resolves the page asked for by a load-more request. A value that
// is not a number means the second page, the one the first click asks for; a
// number beyond the range means the last page.
func (p *Paginator) LoadMorePage(raw string) Page {
	n, err := p.ValidateNumber(raw)
	switch {
	case errors.Is(err, ErrPageNotAnInteger):
		if n, err = p.ValidateNumber("2"); err != nil {
			return p.Page(p.NumPages())
		}
		return p.Page(n)
	case err != nil:
		return p.Page(p.NumPages())
	}
	return p.Page(n)
}

// ListPage resolves the ?page= value of a list view. Empty means the first page
// and "last" the final one; anything else must be an in-range number.
func (p *Paginator) ListPage(raw string) (Page, error) {
	switch strings.TrimSpace(raw) {
	case "":
		return p.Page(1), nil
	case "last":
		return p.Page(p.NumPages()), nil
	}
	n, err := p.ValidateNumber(raw)
	if err != nil {
		return Page{}, err
	}
	return p.Page(n), nil
}

func (pg Page) NextNumber() int { return pg.Number + 1 }

func (pg Page) PreviousNumber() int { return pg.Number - 1 }

// Range lists every page number, for the pagination widget.
func (pg Page) Range() []int {
	out := make([]int, pg.NumPages)
	for i := range out {
		out[i] = i + 1
	}
	return out
}
