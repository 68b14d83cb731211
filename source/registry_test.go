package source

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Callidon/peneloop-fedx/types"
)

func TestRegistry_RegisterAndList(t *testing.T) {
	t.Run("lists sources in registration order", func(t *testing.T) {
		reg := NewRegistry()
		reg.Register(types.Source{ID: "dbpedia", Endpoint: "http://dbpedia.org/sparql"})
		reg.Register(types.Source{ID: "wikidata", Endpoint: "https://query.wikidata.org/sparql"})
		reg.Register(types.Source{ID: "geonames", Endpoint: "http://geonames.org/sparql"})

		sources, err := reg.ListSources(context.Background())

		require.NoError(t, err)
		require.Len(t, sources, 3)
		require.Equal(t, "dbpedia", sources[0].ID)
		require.Equal(t, "wikidata", sources[1].ID)
		require.Equal(t, "geonames", sources[2].ID)
	})

	t.Run("re-registering keeps original position", func(t *testing.T) {
		reg := NewRegistry()
		reg.Register(types.Source{ID: "dbpedia", Endpoint: "http://old.example.org/sparql"})
		reg.Register(types.Source{ID: "wikidata"})
		reg.Register(types.Source{ID: "dbpedia", Endpoint: "http://dbpedia.org/sparql"})

		sources, err := reg.ListSources(context.Background())

		require.NoError(t, err)
		require.Len(t, sources, 2)
		require.Equal(t, "dbpedia", sources[0].ID)
		require.Equal(t, "http://dbpedia.org/sparql", sources[0].Endpoint)
	})

	t.Run("empty registry lists nothing", func(t *testing.T) {
		reg := NewRegistry()

		sources, err := reg.ListSources(context.Background())

		require.NoError(t, err)
		require.Empty(t, sources)
	})
}

func TestRegistry_LookupAndDeregister(t *testing.T) {
	reg := NewRegistry()
	reg.Register(types.Source{ID: "dbpedia", Endpoint: "http://dbpedia.org/sparql"})

	src, ok := reg.Lookup("dbpedia")
	require.True(t, ok)
	require.Equal(t, "http://dbpedia.org/sparql", src.Endpoint)

	_, ok = reg.Lookup("missing")
	require.False(t, ok)

	require.True(t, reg.Deregister("dbpedia"))
	require.False(t, reg.Deregister("dbpedia"))
	require.Equal(t, 0, reg.Len())
}

func TestRegistry_ConcurrentRegistration(t *testing.T) {
	reg := NewRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			reg.Register(types.Source{
				ID:       fmt.Sprintf("s%d", i),
				Endpoint: fmt.Sprintf("http://s%d.example.org/sparql", i),
			})
		}(i)
	}
	wg.Wait()

	require.Equal(t, 32, reg.Len())

	sources, err := reg.ListSources(context.Background())
	require.NoError(t, err)
	require.Len(t, sources, 32)

	// Every registered source is present exactly once.
	seen := make(map[string]bool, len(sources))
	for _, src := range sources {
		require.False(t, seen[src.ID])
		seen[src.ID] = true
	}
}
