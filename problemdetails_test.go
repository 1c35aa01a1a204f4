package problemdetails

import (
	"errors"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return u
}

func TestNew(t *testing.T) {
	t.Run("Should return the given values", func(t *testing.T) {
		typ := mustParse(t, "https://example.com/problems/out-of-stock")
		instance := mustParse(t, "/orders/12/items/3")

		p, err := New(typ, instance, "Out of stock", "Item 3 is no longer available", http.StatusConflict)
		require.NoError(t, err)

		require.Equal(t, typ.String(), p.Type().String())
		require.Equal(t, instance.String(), p.Instance().String())
		require.Equal(t, "Out of stock", p.Title())
		require.Equal(t, "Item 3 is no longer available", p.Detail())
		require.Equal(t, Status(http.StatusConflict), p.Status())
	})

	t.Run("Nil type should default to about:blank", func(t *testing.T) {
		p, err := New(nil, mustParse(t, "urn:req:42"), "Not Found", "The widget 7 does not exist", http.StatusNotFound)
		require.NoError(t, err)

		require.Equal(t, UnsetType, p.Type().String())
		require.Equal(t, "urn:req:42", p.Instance().String())
		require.Equal(t, 404, p.Status().Code())
	})

	t.Run("Blank title or detail should fail with ErrInvalidArgument", func(t *testing.T) {
		instance := mustParse(t, "urn:req:1")

		for _, blank := range []string{"", "   ", "\t\n"} {
			_, err := New(nil, instance, "title", blank, http.StatusBadRequest)
			requireArgumentError(t, err, "detail", ErrInvalidArgument)

			_, err = New(nil, instance, blank, "detail", http.StatusBadRequest)
			requireArgumentError(t, err, "title", ErrInvalidArgument)
		}
	})

	t.Run("Detail should be checked before title and instance", func(t *testing.T) {
		_, err := New(nil, nil, "", "", http.StatusBadRequest)
		requireArgumentError(t, err, "detail", ErrInvalidArgument)

		_, err = New(nil, nil, "", "x", http.StatusBadRequest)
		requireArgumentError(t, err, "title", ErrInvalidArgument)
	})

	t.Run("Nil instance should fail with ErrNullArgument", func(t *testing.T) {
		_, err := New(nil, nil, "Bad Request", "x", http.StatusBadRequest)
		requireArgumentError(t, err, "instance", ErrNullArgument)
		require.False(t, errors.Is(err, ErrInvalidArgument))
	})

	t.Run("Status should not be range checked", func(t *testing.T) {
		p, err := New(nil, mustParse(t, "urn:req:3"), "Odd", "odd status", Status(4001))
		require.NoError(t, err)
		require.Equal(t, Status(4001), p.Status())
	})

	t.Run("Mutating returned or given URLs should not change the value", func(t *testing.T) {
		typ := mustParse(t, "https://example.com/problems/a")
		instance := mustParse(t, "https://user:pw@example.com/req/1")

		p, err := New(typ, instance, "A", "a", http.StatusTeapot)
		require.NoError(t, err)

		typ.Path = "/changed"
		instance.User = url.User("someone")

		got := p.Instance()
		got.Host = "evil.example.com"

		require.Equal(t, "https://example.com/problems/a", p.Type().String())
		require.Equal(t, "https://user:pw@example.com/req/1", p.Instance().String())
		require.Equal(t, p.Instance().String(), p.Instance().String())
	})
}

func TestMustNew(t *testing.T) {
	require.Panics(t, func() {
		MustNew(nil, nil, "title", "detail", http.StatusBadRequest)
	})

	require.NotPanics(t, func() {
		MustNew(nil, BlankType(), "title", "detail", http.StatusBadRequest)
	})
}

func TestArgumentError(t *testing.T) {
	_, err := New(nil, nil, "title", "detail", http.StatusBadRequest)
	require.EqualError(t, err, "null argument: the instance used to initialize a ProblemDetails was nil")

	_, err = New(nil, BlankType(), " ", "detail", http.StatusBadRequest)
	require.EqualError(t, err, "invalid argument: the title used to initialize a ProblemDetails was empty or whitespace")
}

func requireArgumentError(t *testing.T, err error, param string, kind error) {
	t.Helper()

	require.ErrorIs(t, err, kind)

	var argErr *ArgumentError
	require.ErrorAs(t, err, &argErr)
	require.Equal(t, param, argErr.Param)
	require.Equal(t, "ProblemDetails", argErr.Type)
}
