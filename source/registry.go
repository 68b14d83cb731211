package source

import (
	"context"
	"sort"
	"sync/atomic"

	"github.com/puzpuzpuz/xsync/v3"

	"github.com/Callidon/peneloop-fedx/types"
)

// Registry implements a goroutine-safe source provider for endpoints that
// join the federation dynamically during setup.
//
// Sources are keyed by ID and listed in registration order, so the partition
// order of a federation is stable across engines built from the same registry.
// Re-registering an existing ID updates the endpoint but keeps its original
// position.
type Registry struct {
	entries *xsync.MapOf[string, registryEntry]
	nextSeq atomic.Uint64
}

// registryEntry pins a source to its registration sequence number.
type registryEntry struct {
	source types.Source
	seq    uint64
}

var _ types.SourceProvider = (*Registry)(nil)

// NewRegistry creates a new empty source registry.
//
// Returns:
//   - *Registry: Initialized registry, safe for concurrent use
//
// Example:
//
//	reg := source.NewRegistry()
//	reg.Register(types.Source{ID: "dbpedia", Endpoint: "http://dbpedia.org/sparql"})
//	reg.Register(types.Source{ID: "wikidata", Endpoint: "https://query.wikidata.org/sparql"})
//	engine, err := peneloop.NewFromProvider(ctx, reg, pages)
func NewRegistry() *Registry {
	return &Registry{
		entries: xsync.NewMapOf[string, registryEntry](),
	}
}

// Register adds a source to the registry or updates an existing one.
//
// The source keeps its original registration position when its ID is already
// present; only the endpoint is updated.
//
// Parameters:
//   - src: Source to register (keyed by src.ID)
func (r *Registry) Register(src types.Source) {
	seq := r.nextSeq.Add(1)
	existing, loaded := r.entries.LoadOrStore(src.ID, registryEntry{source: src, seq: seq})
	if loaded {
		r.entries.Store(src.ID, registryEntry{source: src, seq: existing.seq})
	}
}

// Deregister removes a source from the registry.
//
// Parameters:
//   - id: ID of the source to remove
//
// Returns:
//   - bool: true if the source was present
func (r *Registry) Deregister(id string) bool {
	_, present := r.entries.LoadAndDelete(id)

	return present
}

// Lookup returns the source registered under the given ID.
//
// Parameters:
//   - id: Source ID
//
// Returns:
//   - types.Source: The registered source (zero value when absent)
//   - bool: true if the source was present
func (r *Registry) Lookup(id string) (types.Source, bool) {
	entry, ok := r.entries.Load(id)

	return entry.source, ok
}

// Len returns the number of registered sources.
func (r *Registry) Len() int {
	return r.entries.Size()
}

// ListSources returns all registered sources, in registration order.
//
// Returns:
//   - []types.Source: Sources ordered by registration sequence
//   - error: Always nil (never fails)
func (r *Registry) ListSources(_ context.Context) ([]types.Source, error) {
	entries := make([]registryEntry, 0, r.entries.Size())
	r.entries.Range(func(_ string, entry registryEntry) bool {
		entries = append(entries, entry)

		return true
	})

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].seq < entries[j].seq
	})

	sources := make([]types.Source, len(entries))
	for i, entry := range entries {
		sources[i] = entry.source
	}

	return sources, nil
}
