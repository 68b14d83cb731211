package strategy

import "github.com/Callidon/peneloop-fedx/types"

// RoundRobin implements cyclic round-robin partitioning.
type RoundRobin struct{}

var _ types.PartitionStrategy = (*RoundRobin)(nil)

// NewRoundRobin creates a new round-robin strategy.
//
// The strategy distributes pages cyclically across sources in input order:
// page i goes to bin i mod sources. This balances page count but not weight,
// and preserves the input page order within each bin.
//
// Returns:
//   - *RoundRobin: Initialized round-robin strategy
func NewRoundRobin() *RoundRobin {
	return &RoundRobin{}
}

// Partition distributes pages cyclically across the sources.
//
// Parameters:
//   - sources: Ordered list of federated sources
//   - pages: Ordered list of binding pages
//
// Returns:
//   - []types.Pair: One pair per source, in source order; pages within each
//     bin keep their input order
//   - error: types.ErrEmptySourceList when sources is empty
func (rr *RoundRobin) Partition(sources []types.Source, pages []types.Page) ([]types.Pair, error) {
	if len(sources) == 0 {
		return nil, types.ErrEmptySourceList
	}

	pairs := emptyPairs(sources)
	for i, page := range pages {
		idx := i % len(pairs)
		pairs[idx].Pages = append(pairs[idx].Pages, page)
	}

	return pairs, nil
}
