package types

import "context"

// SourceProvider discovers and provides the ordered list of federated sources.
//
// Implementations can resolve sources from various places:
//   - Static: fixed list known at query planning time
//   - Registry: endpoints registered dynamically during federation setup
//   - Custom: any service-description or catalog lookup
//
// The provider is consulted once per engine construction; the engine never
// re-resolves sources after configuration.
type SourceProvider interface {
	// ListSources returns all available sources, in federation order.
	//
	// Implementations should:
	//   - Return consistent results for the same backend state
	//   - Handle context cancellation gracefully
	//
	// Parameters:
	//   - ctx: Context for cancellation and timeout
	//
	// Returns:
	//   - []Source: Ordered list of sources
	//   - error: Discovery error (nil on success)
	ListSources(ctx context.Context) ([]Source, error)
}
