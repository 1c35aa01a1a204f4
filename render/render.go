package render

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/3lvia/problemdetails"
	ginrender "github.com/gin-gonic/gin/render"
)

var ErrMalformedDocument = errors.New("malformed problem document")

// StatusCode returns the status code to write for p.
// Only client and server error codes can carry a problem body, any other code is replaced with 500.
func StatusCode(p problemdetails.Problem) int {
	code := p.Status().Code()
	if code < http.StatusBadRequest || code > 599 {
		return http.StatusInternalServerError
	}
	return code
}

// NewDocument converts p to its JSON representation.
func NewDocument(p problemdetails.Problem) Document {
	doc := Document{
		Type:   problemdetails.UnsetType,
		Title:  p.Title(),
		Status: StatusCode(p),
		Detail: p.Detail(),
	}

	if t := p.Type(); t != nil {
		doc.Type = t.String()
	}

	if i := p.Instance(); i != nil {
		doc.Instance = i.String()
	}

	return doc
}

// D renders a problem response.
func D(p problemdetails.Problem) JSON {
	return JSON{ginrender.JSON{Data: NewDocument(p)}}
}

// Marshal returns the JSON encoding of p.
func Marshal(p problemdetails.Problem) ([]byte, error) {
	return json.Marshal(NewDocument(p))
}

// Decode parses a JSON problem document. The result is validated the same way as problemdetails.New.
func Decode(data []byte) (problemdetails.ProblemDetails, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return problemdetails.ProblemDetails{}, errors.Join(ErrMalformedDocument, err)
	}

	var typ *url.URL
	if doc.Type != "" {
		u, err := url.Parse(doc.Type)
		if err != nil {
			return problemdetails.ProblemDetails{}, errors.Join(ErrMalformedDocument, err)
		}
		typ = u
	}

	var instance *url.URL
	if doc.Instance != "" {
		u, err := url.Parse(doc.Instance)
		if err != nil {
			return problemdetails.ProblemDetails{}, errors.Join(ErrMalformedDocument, err)
		}
		instance = u
	}

	status, err := problemdetails.ParseStatus(doc.Status)
	if err != nil {
		return problemdetails.ProblemDetails{}, errors.Join(ErrMalformedDocument, err)
	}

	return problemdetails.New(typ, instance, doc.Title, doc.Detail, status)
}
