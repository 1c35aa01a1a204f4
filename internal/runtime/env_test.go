package runtime

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnvValid(t *testing.T) {
	require.True(t, Development.Valid())
	require.True(t, Test.Valid())
	require.True(t, Production.Valid())
	require.False(t, Env("staging").Valid())
}

func TestNewLogger(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() {
		slog.SetDefault(prev)
	})

	logger := NewLogger("widgets", Development)
	require.NotNil(t, logger)
	require.Same(t, logger, slog.Default())
}
