package jpick

import (
	"errors"
	"fmt"
)

// Sentinel errors for the distinct failure modes of a run. Callers can tell
// them apart with errors.Is even when the surface diagnostic collapses
// several of them into one line.
var (
	// ErrKeyCount is returned when the parsed key list length does not match
	// the expected count.
	ErrKeyCount = errors.New("key count mismatch")

	// ErrNotFound is returned when the input file does not exist or cannot
	// be read.
	ErrNotFound = errors.New("input file not found")

	// ErrInvalidJSON is returned when the input file is not valid JSON.
	ErrInvalidJSON = errors.New("input is not valid JSON")

	// ErrNotList is returned when the top-level JSON value is not an array.
	ErrNotList = errors.New("top-level value is not a list")

	// ErrNotObject is returned when a list element is not a JSON object.
	ErrNotObject = errors.New("list element is not an object")

	// ErrMissingKey is returned when a requested key is absent from some
	// input object.
	ErrMissingKey = errors.New("requested key not present")
)

// WriteError reports a failure to write an output file. Format names the
// output format whose emission failed ("json" or "csv").
type WriteError struct {
	Format string
	Err    error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s output: %v", e.Format, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
