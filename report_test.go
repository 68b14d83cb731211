package peneloop

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEngine_Report(t *testing.T) {
	t.Parallel()

	t.Run("fails before any partition is computed", func(t *testing.T) {
		engine := New(testSources(2), testPages(1, 2))

		err := engine.Report(&bytes.Buffer{})

		require.ErrorIs(t, err, ErrNoPartition)
	})

	t.Run("renders the last computed partition", func(t *testing.T) {
		engine := New(testSources(3), testPages(4, 2, 6, 1, 3))

		_, err := engine.Partition(RoundRobin)
		require.NoError(t, err)

		buf := &bytes.Buffer{}
		require.NoError(t, engine.Report(buf))

		out := buf.String()
		require.Contains(t, out, "round_robin")
		require.Contains(t, out, engine.RunID().String())
		for _, id := range []string{"s1", "s2", "s3"} {
			require.Contains(t, out, id)
		}
		// s1 holds p0 and p3 with weights 4 and 1.
		require.Contains(t, out, "4,1")
		// Totals footer.
		require.Contains(t, out, "16")
	})

	t.Run("report follows the most recent partition", func(t *testing.T) {
		engine := New(testSources(3), testPages(4, 2, 6, 1, 3))

		_, err := engine.Partition(RoundRobin)
		require.NoError(t, err)
		_, err = engine.Partition(BestFitDecreasing)
		require.NoError(t, err)

		buf := &bytes.Buffer{}
		require.NoError(t, engine.Report(buf))
		require.Contains(t, buf.String(), "best_fit_decreasing")
		require.NotContains(t, buf.String(), "round_robin")
	})

	t.Run("renders empty bins", func(t *testing.T) {
		engine := New(testSources(2), nil)

		_, err := engine.Partition(ContiguousChunk)
		require.NoError(t, err)

		buf := &bytes.Buffer{}
		require.NoError(t, engine.Report(buf))
		require.Contains(t, buf.String(), "s2")
	})
}
