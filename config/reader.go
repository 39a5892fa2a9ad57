package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Reader resolves keys under one prefix and collects every failure
// Getters return the zero value on error; check Err once after reading a group
type Reader struct {
	src    Source
	prefix string
	errs   []error
}

func NewReader(src Source, prefix string) *Reader {
	return &Reader{src: src, prefix: prefix}
}

func (r *Reader) raw(key string) (string, bool) {
	full := r.prefix + key
	v, ok := r.src.Lookup(full)
	if !ok {
		r.errs = append(r.errs, fmt.Errorf("%s: %w", full, ErrMissingKey))
		return "", false
	}
	return strings.TrimSpace(v), true
}

// Int reads a base-10 integer
func (r *Reader) Int(key string) int {
	v, ok := r.raw(key)
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("%s%s=%q: %w", r.prefix, key, v, ErrMalformedValue))
		return 0
	}
	return n
}

// Float reads a float64
func (r *Reader) Float(key string) float64 {
	v, ok := r.raw(key)
	if !ok {
		return 0
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("%s%s=%q: %w", r.prefix, key, v, ErrMalformedValue))
		return 0
	}
	return f
}

// Check records a validation failure for key when ok is false
func (r *Reader) Check(ok bool, key, format string, args ...any) {
	if ok {
		return
	}
	r.errs = append(r.errs, fmt.Errorf("%s%s: %w: %s", r.prefix, key, ErrInvalidValue, fmt.Sprintf(format, args...)))
}

// Err joins all recorded failures, nil when every read succeeded
func (r *Reader) Err() error {
	return errors.Join(r.errs...)
}
