package scene

import "errors"

var (
	ErrEmptyScene    = errors.New("scene has no queries")
	ErrUnknownBox    = errors.New("unknown box")
	ErrDuplicateBox  = errors.New("duplicate box name")
	ErrInvalidBox    = errors.New("invalid box")
	ErrUnknownQuery  = errors.New("unknown query kind")
	ErrInvalidVector = errors.New("invalid vector")
)
