package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrBadArchive    = errors.New("malformed archive")
)
