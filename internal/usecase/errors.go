package usecase

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrUpstreamFetch         = errors.New("upstream fetch failed")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)
