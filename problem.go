package problemdetails

import "net/url"

// Problem describes a problem which occurred while fulfilling an HTTP request.
// https://datatracker.ietf.org/doc/html/rfc7807
type Problem interface {
	// Status is the HTTP status code for this occurrence of the problem.
	// If the status is not supported by the transport rendering the problem, it is replaced with
	// 500 Internal Server Error.
	Status() Status

	// Detail is a human-readable explanation specific to this occurrence of the problem.
	Detail() string

	// Title is a short, human-readable summary of the problem type.
	// It should not change from occurrence to occurrence of the problem, except for purposes of localization.
	Title() string

	// Instance is a URI reference that identifies the specific occurrence of the problem.
	// It may or may not yield further information if dereferenced.
	Instance() *url.URL

	// Type is a URI reference that identifies the problem type.
	// When the type is not known, its value is "about:blank".
	Type() *url.URL
}
