package problemdetails

import (
	"net/url"
	"strings"
)

const typeName = "ProblemDetails"

// UnsetType is the problem type used when no type is given.
const UnsetType = "about:blank"

// BlankType returns a new URL for UnsetType.
func BlankType() *url.URL {
	return &url.URL{Scheme: "about", Opaque: "blank"}
}

// ProblemDetails is an immutable Problem. The zero value is not valid, use New.
type ProblemDetails struct {
	typ      url.URL
	instance url.URL
	title    string
	detail   string
	status   Status
}

var _ Problem = ProblemDetails{}

// New creates a ProblemDetails.
//
// detail and title must contain something other than whitespace, and instance must not be nil,
// otherwise an *ArgumentError naming the parameter is returned. The arguments are checked in the
// order detail, title, instance. A nil typ is replaced with about:blank.
// The status is stored as given.
func New(typ, instance *url.URL, title, detail string, status Status) (ProblemDetails, error) {
	if strings.TrimSpace(detail) == "" {
		return ProblemDetails{}, &ArgumentError{Param: "detail", Type: typeName, Err: ErrInvalidArgument}
	}

	if strings.TrimSpace(title) == "" {
		return ProblemDetails{}, &ArgumentError{Param: "title", Type: typeName, Err: ErrInvalidArgument}
	}

	if instance == nil {
		return ProblemDetails{}, &ArgumentError{Param: "instance", Type: typeName, Err: ErrNullArgument}
	}

	if typ == nil {
		typ = BlankType()
	}

	return ProblemDetails{
		typ:      copyURL(typ),
		instance: copyURL(instance),
		title:    title,
		detail:   detail,
		status:   status,
	}, nil
}

// MustNew is like New but panics if the arguments are invalid.
func MustNew(typ, instance *url.URL, title, detail string, status Status) ProblemDetails {
	p, err := New(typ, instance, title, detail, status)
	if err != nil {
		panic(err)
	}
	return p
}

func (p ProblemDetails) Status() Status {
	return p.status
}

func (p ProblemDetails) Detail() string {
	return p.detail
}

func (p ProblemDetails) Title() string {
	return p.title
}

// Instance returns a copy of the instance URI.
func (p ProblemDetails) Instance() *url.URL {
	u := copyURL(&p.instance)
	return &u
}

// Type returns a copy of the type URI.
func (p ProblemDetails) Type() *url.URL {
	u := copyURL(&p.typ)
	return &u
}

func copyURL(u *url.URL) url.URL {
	c := *u
	if u.User != nil {
		user := *u.User
		c.User = &user
	}
	return c
}
