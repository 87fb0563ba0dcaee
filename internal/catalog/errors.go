package catalog

import "errors"

var (
	ErrNotFound       = errors.New("catalog entry not found")
	ErrInvalidContent = errors.New("invalid catalog content")
)
