package problemdetails

const defaultErrorMessage = "problem details error"

// Error carries a Problem up the call stack to the layer which renders it.
//
// The message and the cause are diagnostics for logs and are never part of the rendered problem.
type Error struct {
	problem Problem
	message string
	cause   error
}

// NewError returns an Error carrying p.
func NewError(p Problem) *Error {
	return &Error{problem: p}
}

// NewErrorWithMessage returns an Error carrying p with an internal message.
func NewErrorWithMessage(p Problem, message string) *Error {
	return &Error{problem: p, message: message}
}

// WrapError returns an Error carrying p, caused by cause.
func WrapError(p Problem, cause error) *Error {
	return &Error{problem: p, cause: cause}
}

// WrapErrorWithMessage returns an Error carrying p with an internal message, caused by cause.
func WrapErrorWithMessage(p Problem, message string, cause error) *Error {
	return &Error{problem: p, message: message, cause: cause}
}

// Problem returns the carried problem. It is nil if the Error was created with a nil problem.
func (e *Error) Problem() Problem {
	return e.problem
}

// Message returns the internal message, or an empty string when none was given.
func (e *Error) Message() string {
	return e.message
}

func (e *Error) Error() string {
	msg := e.message
	if msg == "" {
		msg = defaultErrorMessage
	}

	if e.cause != nil {
		return msg + ": " + e.cause.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.cause
}

// From returns the first non-nil problem carried by an *Error in the chain of err.
// The chain is walked depth first like errors.As, so carriers with a nil problem are skipped.
func From(err error) (Problem, bool) {
	if err == nil {
		return nil, false
	}

	if pe, ok := err.(*Error); ok {
		if pe == nil {
			return nil, false
		}
		if pe.problem != nil {
			return pe.problem, true
		}
	}

	switch u := err.(type) {
	case interface{ Unwrap() error }:
		return From(u.Unwrap())
	case interface{ Unwrap() []error }:
		for _, e := range u.Unwrap() {
			if p, ok := From(e); ok {
				return p, true
			}
		}
	}

	return nil, false
}
