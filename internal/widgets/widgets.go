// Package widgets is a small in-memory catalog used to demonstrate problem details
// over HTTP and NATS.
package widgets

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"sync"

	"github.com/3lvia/problemdetails"
	"github.com/google/uuid"
)

var (
	InvalidIDType = &url.URL{Scheme: "urn", Opaque: "problem:widgets:invalid-id"}
	NotFoundType  = &url.URL{Scheme: "urn", Opaque: "problem:widgets:not-found"}
)

type Widget struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Catalog struct {
	mu      sync.RWMutex
	widgets map[int]Widget
}

func NewCatalog(widgets ...Widget) *Catalog {
	c := &Catalog{
		widgets: make(map[int]Widget, len(widgets)),
	}
	for _, w := range widgets {
		c.widgets[w.ID] = w
	}
	return c
}

func (c *Catalog) Put(w Widget) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.widgets[w.ID] = w
}

// Lookup returns the widget with the given id.
// Failures are *problemdetails.Error values whose problem is identified by instance.
func (c *Catalog) Lookup(ctx context.Context, instance *url.URL, rawID string) (Widget, error) {
	id, err := strconv.Atoi(rawID)
	if err != nil {
		p, pErr := problemdetails.New(InvalidIDType, instance,
			"Invalid widget id",
			fmt.Sprintf("%q is not a widget id, widget ids are integers", rawID),
			http.StatusBadRequest)
		if pErr != nil {
			return Widget{}, pErr
		}
		return Widget{}, problemdetails.WrapErrorWithMessage(p, "could not parse widget id", err)
	}

	c.mu.RLock()
	w, ok := c.widgets[id]
	c.mu.RUnlock()

	if !ok {
		p, pErr := problemdetails.New(NotFoundType, instance,
			"Not Found",
			fmt.Sprintf("The widget %d does not exist", id),
			http.StatusNotFound)
		if pErr != nil {
			return Widget{}, pErr
		}
		return Widget{}, problemdetails.NewErrorWithMessage(p, "widget lookup missed cache and store")
	}

	return w, nil
}

// NewInstance returns a new URN identifying one request, as in urn:<base>:<uuid>.
func NewInstance(base string) *url.URL {
	return &url.URL{Scheme: "urn", Opaque: base + ":" + uuid.NewString()}
}
