package config

import "errors"

var (
	ErrMissingKey     = errors.New("missing key")
	ErrMalformedValue = errors.New("malformed value")
	ErrInvalidValue   = errors.New("invalid value")
)
