package render

// Document is the JSON representation of a problem.
// https://datatracker.ietf.org/doc/html/rfc7807#section-3
type Document struct {
	// Type is a URI reference that identifies the problem type.
	// When this member is not present, its value is assumed to be "about:blank".
	Type string `json:"type"`

	// Title is a short, human-readable summary of the problem type.
	Title string `json:"title"`

	// Status is the HTTP status code used for this occurrence of the problem.
	// It is only advisory; the status line of the response is authoritative.
	Status int `json:"status"`

	// Detail is a human-readable explanation specific to this occurrence of the problem.
	// It ought to focus on helping the client correct the problem, rather than giving debugging information.
	Detail string `json:"detail"`

	// Instance is a URI reference that identifies the specific occurrence of the problem.
	Instance string `json:"instance"`
}
