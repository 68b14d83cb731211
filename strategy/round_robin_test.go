package strategy

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Callidon/peneloop-fedx/types"
)

func TestRoundRobin_Partition(t *testing.T) {
	t.Parallel()

	t.Run("assigns page i to bin i mod sources", func(t *testing.T) {
		strat := NewRoundRobin()
		pages := testPages(4, 2, 6, 1, 3)

		pairs, err := strat.Partition(testSources(3), pages)

		require.NoError(t, err)
		require.Equal(t, []types.Page{pages[0], pages[3]}, pairs[0].Pages)
		require.Equal(t, []types.Page{pages[1], pages[4]}, pairs[1].Pages)
		require.Equal(t, []types.Page{pages[2]}, pairs[2].Pages)
	})

	t.Run("distributes page count evenly", func(t *testing.T) {
		strat := NewRoundRobin()
		pages := testPages(1, 1, 1, 1, 1, 1, 1, 1, 1)

		pairs, err := strat.Partition(testSources(3), pages)

		require.NoError(t, err)
		for _, pair := range pairs {
			require.Len(t, pair.Pages, 3)
		}
	})

	t.Run("handles uneven distribution", func(t *testing.T) {
		strat := NewRoundRobin()
		pages := testPages(1, 1, 1, 1, 1)

		pairs, err := strat.Partition(testSources(2), pages)

		require.NoError(t, err)
		require.Len(t, pairs[0].Pages, 3)
		require.Len(t, pairs[1].Pages, 2)
	})

	t.Run("empty page list yields all-empty bins", func(t *testing.T) {
		strat := NewRoundRobin()

		pairs, err := strat.Partition(testSources(2), nil)

		require.NoError(t, err)
		require.Len(t, pairs, 2)
		require.Empty(t, pairs[0].Pages)
		require.Empty(t, pairs[1].Pages)
	})
}
