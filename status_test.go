package problemdetails

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	s, err := ParseStatus(http.StatusNotFound)
	require.NoError(t, err)
	require.Equal(t, 404, s.Code())
	require.Equal(t, "Not Found", s.Text())
	require.Equal(t, "404 Not Found", s.String())

	s, err = ParseStatus(599)
	require.NoError(t, err)
	require.Equal(t, "Status 599", s.Text())

	for _, code := range []int{0, 99, 600, 4001, -1} {
		_, err := ParseStatus(code)
		require.ErrorIs(t, err, ErrInvalidStatus)
	}
}
