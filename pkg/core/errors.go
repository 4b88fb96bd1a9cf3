package core

import "errors"

// Common errors.
var (
	// ErrAnnotationNotFound is returned by Get when no annotation exists for
	// the requested key. Absence is an expected condition, not a failure.
	ErrAnnotationNotFound = errors.New("annotation not found")

	// ErrMalformedKey is returned when a persisted key cannot be decoded
	// (missing separator or a non-canonical line number).
	ErrMalformedKey = errors.New("malformed annotation key")

	// ErrInvalidArguments is returned by command handlers when a required
	// invocation argument is missing.
	ErrInvalidArguments = errors.New("invalid arguments")

	// ErrPathExcluded is returned when configuration filters exclude the
	// target file from annotation.
	ErrPathExcluded = errors.New("path excluded by configuration")
)
