package domain

import "errors"

var (
	// ErrMissingName is returned when no usable product name can be
	// resolved from any accepted alias. It is the only fatal error the
	// pipeline surfaces; everything else degrades to fallback output.
	ErrMissingName = errors.New("product name could not be resolved from input")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrGenerationFailed is returned when a text-generation backend
	// request fails
	ErrGenerationFailed = errors.New("text generation request failed")

	// ErrEmptyCompletion is returned when a backend responds without any
	// usable text
	ErrEmptyCompletion = errors.New("text generation returned no content")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")
)
