package problemdetails

import (
	"fmt"
	"net/http"
	"strconv"
)

// Status is an HTTP status code associated with a problem.
// Use ParseStatus for codes coming from outside the program, or convert one of the net/http constants directly.
type Status int

const (
	minStatus = 100
	maxStatus = 599
)

// ParseStatus returns the Status for code, or ErrInvalidStatus when code is not an HTTP status code.
func ParseStatus(code int) (Status, error) {
	s := Status(code)
	if !s.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidStatus, code)
	}
	return s, nil
}

// Valid reports whether the status lies in the range of HTTP status codes.
func (s Status) Valid() bool {
	return s >= minStatus && s <= maxStatus
}

func (s Status) Code() int {
	return int(s)
}

// Text returns the reason phrase for the status, or "Status <code>" for codes net/http has no text for.
func (s Status) Text() string {
	if t := http.StatusText(int(s)); t != "" {
		return t
	}
	return "Status " + strconv.Itoa(int(s))
}

func (s Status) String() string {
	return strconv.Itoa(int(s)) + " " + s.Text()
}
