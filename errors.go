package statebox

import (
	"errors"
	"fmt"
)

type (
	// PanicError reports a panic recovered from a dispatch cycle
	PanicError struct {
		Value  any
		Action string
	}

	// ErrorHandler receives errors that a Middleware recovered from
	ErrorHandler func(error)
)

var (
	// ErrNilReducer indicates a Config was given no Reducer
	ErrNilReducer = errors.New("reducer is nil")

	// ErrActionMalformed indicates raw input could not be read as an Action
	ErrActionMalformed = errors.New("action malformed")
)

func (e *PanicError) Error() string {
	return fmt.Sprintf("dispatch of %q panicked: %v", e.Action, e.Value)
}

// Unwrap returns the recovered value when it is itself an error
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}
