package problemdetails

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

type stubProblem struct{}

func (stubProblem) Status() Status     { return http.StatusServiceUnavailable }
func (stubProblem) Detail() string     { return "try again later" }
func (stubProblem) Title() string      { return "Unavailable" }
func (stubProblem) Instance() *url.URL { return &url.URL{Scheme: "urn", Opaque: "stub"} }
func (stubProblem) Type() *url.URL     { return BlankType() }

func TestError(t *testing.T) {
	notFound := MustNew(nil, &url.URL{Scheme: "urn", Opaque: "req:42"}, "Not Found", "The widget 7 does not exist", http.StatusNotFound)
	cause := errors.New("store: no rows")

	t.Run("Should carry only the problem", func(t *testing.T) {
		err := NewError(notFound)

		require.Equal(t, notFound, err.Problem())
		require.Empty(t, err.Message())
		require.Nil(t, err.Unwrap())
		require.Equal(t, "problem details error", err.Error())
	})

	t.Run("Should carry the internal message", func(t *testing.T) {
		err := NewErrorWithMessage(notFound, "widget lookup missed cache and store")

		require.Equal(t, "Not Found", err.Problem().Title())
		require.Equal(t, "widget lookup missed cache and store", err.Message())
		require.Equal(t, "widget lookup missed cache and store", err.Error())
		require.NotEqual(t, err.Problem().Detail(), err.Message())
		require.Nil(t, err.Unwrap())
	})

	t.Run("Should carry the cause", func(t *testing.T) {
		err := WrapError(notFound, cause)

		require.Empty(t, err.Message())
		require.ErrorIs(t, err, cause)
		require.Equal(t, "problem details error: store: no rows", err.Error())
	})

	t.Run("Should carry message and cause", func(t *testing.T) {
		err := WrapErrorWithMessage(notFound, "lookup failed", cause)

		require.Equal(t, notFound, err.Problem())
		require.Equal(t, "lookup failed", err.Message())
		require.Same(t, cause, errors.Unwrap(err))
		require.Equal(t, "lookup failed: store: no rows", err.Error())
	})

	t.Run("Should accept any Problem implementation", func(t *testing.T) {
		err := NewError(stubProblem{})
		require.Equal(t, Status(http.StatusServiceUnavailable), err.Problem().Status())
	})

	t.Run("Should accept a nil problem", func(t *testing.T) {
		err := NewError(nil)
		require.Nil(t, err.Problem())

		_, ok := From(err)
		require.False(t, ok)
	})
}

func TestFrom(t *testing.T) {
	notFound := MustNew(nil, BlankType(), "Not Found", "missing", http.StatusNotFound)

	wrapped := fmt.Errorf("handler: %w", NewErrorWithMessage(notFound, "internal"))

	p, ok := From(wrapped)
	require.True(t, ok)
	require.Equal(t, "missing", p.Detail())

	_, ok = From(errors.New("plain"))
	require.False(t, ok)

	_, ok = From(nil)
	require.False(t, ok)
}

func TestFromSkipsCarriersWithoutProblem(t *testing.T) {
	conflict := MustNew(nil, BlankType(), "Conflict", "already exists", http.StatusConflict)

	t.Run("Should find the problem below a nil carrier", func(t *testing.T) {
		err := WrapError(nil, fmt.Errorf("store: %w", NewError(conflict)))

		p, ok := From(err)
		require.True(t, ok)
		require.Equal(t, "Conflict", p.Title())
	})

	t.Run("Should search joined errors", func(t *testing.T) {
		err := errors.Join(NewError(nil), errors.New("other"), NewError(conflict))

		p, ok := From(err)
		require.True(t, ok)
		require.Equal(t, "already exists", p.Detail())
	})

	t.Run("Typed nil carrier should not panic", func(t *testing.T) {
		var pe *Error

		_, ok := From(pe)
		require.False(t, ok)
	})
}
