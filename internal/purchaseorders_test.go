package internal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDateRange(t *testing.T) {
	horizon := time.Date(9999, time.December, 31, 23, 59, 59, 0, time.UTC)

	t.Run("both bounds", func(t *testing.T) {
		from, to, err := dateRange("2026-01-01", "2026-06-30")
		require.NoError(t, err)
		require.Equal(t, time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), from)
		require.Equal(t, time.Date(2026, time.June, 30, 0, 0, 0, 0, time.UTC), to)
	})

	t.Run("from only is open-ended upward", func(t *testing.T) {
		from, to, err := dateRange("2026-01-01", "")
		require.NoError(t, err)
		require.Equal(t, time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), from)
		require.Equal(t, horizon, to)
	})

	t.Run("to only is open-ended downward", func(t *testing.T) {
		from, to, err := dateRange("", "2026-06-30")
		require.NoError(t, err)
		require.True(t, from.IsZero())
		require.Equal(t, time.Date(2026, time.June, 30, 0, 0, 0, 0, time.UTC), to)
	})

	t.Run("rfc3339 bound", func(t *testing.T) {
		from, _, err := dateRange("2026-01-01T09:30:00Z", "")
		require.NoError(t, err)
		require.Equal(t, time.Date(2026, time.January, 1, 9, 30, 0, 0, time.UTC), from)
	})

	t.Run("malformed bound", func(t *testing.T) {
		_, _, err := dateRange("last tuesday", "")
		require.Error(t, err)
	})
}
