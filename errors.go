package problemdetails

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNullArgument    = errors.New("null argument")
	ErrInvalidStatus   = errors.New("invalid status code")
)

// ArgumentError is returned when a value cannot be constructed from the given arguments.
// Err is one of ErrInvalidArgument or ErrNullArgument.
type ArgumentError struct {
	Param string
	Type  string
	Err   error
}

func (e *ArgumentError) Error() string {
	if errors.Is(e.Err, ErrNullArgument) {
		return fmt.Sprintf("%s: the %s used to initialize a %s was nil", e.Err, e.Param, e.Type)
	}
	return fmt.Sprintf("%s: the %s used to initialize a %s was empty or whitespace", e.Err, e.Param, e.Type)
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}
