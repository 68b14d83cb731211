package strategy

import (
	"fmt"

	"github.com/Callidon/peneloop-fedx/types"
)

// ContiguousChunk implements contiguous chunk partitioning.
type ContiguousChunk struct{}

var _ types.PartitionStrategy = (*ContiguousChunk)(nil)

// NewContiguousChunk creates a new contiguous chunk strategy.
//
// The strategy splits the unsorted input page sequence into consecutive
// chunks of size ceil(pages/sources), assigning the i-th chunk to the i-th
// source. The final chunk may be smaller, and trailing sources receive empty
// bins when there are fewer chunks than sources.
//
// WARNING: this strategy does not consider page weight and therefore does not
// balance load between sources. It is the fastest policy when locality of
// consecutive pages matters more than balance.
//
// Returns:
//   - *ContiguousChunk: Initialized contiguous chunk strategy
func NewContiguousChunk() *ContiguousChunk {
	return &ContiguousChunk{}
}

// Partition distributes pages as consecutive chunks of equal page count.
//
// Parameters:
//   - sources: Ordered list of federated sources
//   - pages: Ordered list of binding pages
//
// Returns:
//   - []types.Pair: One pair per source, in source order
//   - error: types.ErrEmptySourceList when sources is empty,
//     types.ErrSourceExhausted if a page maps past the last source
func (c *ContiguousChunk) Partition(sources []types.Source, pages []types.Page) ([]types.Pair, error) {
	if len(sources) == 0 {
		return nil, types.ErrEmptySourceList
	}

	pairs := emptyPairs(sources)
	if len(pages) == 0 {
		return pairs, nil
	}

	chunkSize := (len(pages) + len(sources) - 1) / len(sources)
	for i, page := range pages {
		idx := i / chunkSize
		if idx >= len(pairs) {
			return nil, fmt.Errorf("%w: page %d maps to bin %d of %d", types.ErrSourceExhausted, i, idx, len(pairs))
		}
		pairs[idx].Pages = append(pairs[idx].Pages, page)
	}

	return pairs, nil
}

// emptyPairs creates one empty (source, pages) pair per source, in order.
func emptyPairs(sources []types.Source) []types.Pair {
	pairs := make([]types.Pair, len(sources))
	for i, src := range sources {
		pairs[i] = types.Pair{Source: src, Pages: []types.Page{}}
	}

	return pairs
}
