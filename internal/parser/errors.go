package parser

import "fmt"

// MissingInputError is returned when a required input file cannot be read.
type MissingInputError struct {
	Path string
	Err  error
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("input file %q could not be read: %v", e.Path, e.Err)
}

func (e *MissingInputError) Unwrap() error { return e.Err }

// MalformedInputError is returned when an input was read but does not have
// the structure its tool is expected to produce.
type MalformedInputError struct {
	Path   string
	Reason string
	Err    error
}

func (e *MalformedInputError) Error() string {
	msg := "malformed input"
	if e.Path != "" {
		msg += fmt.Sprintf(" %q", e.Path)
	}
	msg += ": " + e.Reason
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *MalformedInputError) Unwrap() error { return e.Err }

// Malformed is a shorthand for building a MalformedInputError.
func Malformed(path, reason string, err error) error {
	return &MalformedInputError{Path: path, Reason: reason, Err: err}
}
