package domain

import "errors"

var (
	// auth
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")

	// lookups
	ErrPostNotFound     = errors.New("post not found")
	ErrAuthorNotFound   = errors.New("author not found")
	ErrCategoryNotFound = errors.New("category not found")

	ErrInvalidPost = errors.New("post is invalid")
	ErrInvalidPage = errors.New("invalid page")
)
