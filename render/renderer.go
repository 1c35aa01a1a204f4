package render

import (
	"net/http"

	ginrender "github.com/gin-gonic/gin/render"
)

const (
	ContentType = "application/problem+json; charset=utf-8"
)

// JSON is a gin renderer writing a Document as application/problem+json.
type JSON struct {
	ginrender.JSON
}

func (r JSON) WriteContentType(w http.ResponseWriter) {
	header := w.Header()
	if val := header["Content-Type"]; len(val) == 0 {
		header["Content-Type"] = []string{ContentType}
	}
}

func (r JSON) Render(w http.ResponseWriter) error {
	r.WriteContentType(w)
	return r.JSON.Render(w)
}
