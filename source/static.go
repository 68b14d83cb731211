package source

import (
	"context"
	"sync"

	"github.com/Callidon/peneloop-fedx/types"
)

// Static implements a source provider with a fixed list of sources.
type Static struct {
	mu      sync.RWMutex
	sources []types.Source
}

var _ types.SourceProvider = (*Static)(nil)

// NewStatic creates a new static source provider.
//
// The provider returns a fixed, ordered list of sources that never changes.
// Useful for testing and scenarios where the federation members are known at
// query planning time.
//
// Parameters:
//   - sources: Fixed ordered list of sources
//
// Returns:
//   - *Static: Initialized static provider
//
// Example:
//
//	src := source.NewStatic([]types.Source{
//	    {ID: "dbpedia", Endpoint: "http://dbpedia.org/sparql"},
//	    {ID: "wikidata", Endpoint: "https://query.wikidata.org/sparql"},
//	})
//	engine, err := peneloop.NewFromProvider(ctx, src, pages)
func NewStatic(sources []types.Source) *Static {
	return &Static{
		sources: sources,
	}
}

// ListSources returns the static list of sources, in configured order.
//
// Returns:
//   - []types.Source: Copy of the fixed source list
//   - error: Always nil (never fails)
func (s *Static) ListSources(_ context.Context) ([]types.Source, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]types.Source, len(s.sources))
	copy(result, s.sources)

	return result, nil
}

// Update replaces the source list.
//
// This allows the static provider to simulate federation membership changes,
// which is useful for testing.
//
// Parameters:
//   - sources: New ordered list of sources
func (s *Static) Update(sources []types.Source) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sources = make([]types.Source, len(sources))
	copy(s.sources, sources)
}
