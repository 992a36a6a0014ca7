// Package parsererror defines the error returned when a structured chat
// command is malformed.
package parsererror

import (
	"errors"
	"fmt"
)

// ErrMalformedCommand is matched by every *FormatError.
var ErrMalformedCommand = errors.New("malformed command")

// FormatError reports a structured command whose arguments are missing or
// not parseable. Usage is the hint shown to the user.
type FormatError struct {
	Command string
	Usage   string
	Err     error
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %q: %v", ErrMalformedCommand, e.Command, e.Err)
	}
	return fmt.Sprintf("%s: %q", ErrMalformedCommand, e.Command)
}

// Unwrap returns the underlying parse error, if any.
func (e *FormatError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match ErrMalformedCommand.
func (e *FormatError) Is(target error) bool {
	return target == ErrMalformedCommand
}

// New builds a FormatError.
func New(command, usage string, err error) *FormatError {
	return &FormatError{Command: command, Usage: usage, Err: err}
}
