package loadmore

import (
	"errors"
	"fmt"
)

var (
	ErrControlNotFound = errors.New("load more control not found")
	ErrElementNotFound = errors.New("element not found")
	ErrInvalidCursor   = errors.New("invalid page cursor")
)

// StatusError reports a non-2xx answer from the load-more endpoint.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("load more: unexpected status %d", e.StatusCode)
	}
	return fmt.Sprintf("load more: unexpected status %d: %s", e.StatusCode, e.Body)
}
