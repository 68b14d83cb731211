package strategy

import (
	"sort"

	"github.com/Callidon/peneloop-fedx/types"
)

// BestFitDecreasing implements greedy bin packing by decreasing page weight.
type BestFitDecreasing struct{}

var _ types.PartitionStrategy = (*BestFitDecreasing)(nil)

// NewBestFitDecreasing creates a new best-fit decreasing strategy.
//
// The strategy sorts pages by descending weight (stable, so equal-weight
// pages keep their input order) and assigns each page to the bin with the
// smallest accumulated weight, breaking ties by earliest bin index. This
// yields the most balanced distribution of the built-in strategies: the
// weight difference between any two bins is bounded by the largest single
// page weight.
//
// Returns:
//   - *BestFitDecreasing: Initialized best-fit decreasing strategy
func NewBestFitDecreasing() *BestFitDecreasing {
	return &BestFitDecreasing{}
}

// Partition distributes pages using the best-fit decreasing algorithm.
//
// The algorithm:
//  1. Sort pages by descending weight (ties keep input order)
//  2. Initialize one empty bin per source
//  3. Assign each page to the currently lightest bin (earliest index on ties)
//
// Sorting is O(n log n); assignment is O(n·m) for n pages and m sources,
// which is acceptable since m is the small number of federated sources.
//
// Parameters:
//   - sources: Ordered list of federated sources
//   - pages: Ordered list of binding pages
//
// Returns:
//   - []types.Pair: One pair per source, in source order; pages within each
//     bin appear in descending-weight assignment order
//   - error: types.ErrEmptySourceList when sources is empty
func (b *BestFitDecreasing) Partition(sources []types.Source, pages []types.Page) ([]types.Pair, error) {
	if len(sources) == 0 {
		return nil, types.ErrEmptySourceList
	}

	// Sort a copy: the input page order belongs to the caller.
	sorted := make([]types.Page, len(pages))
	copy(sorted, pages)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Weight() > sorted[j].Weight()
	})

	pairs := emptyPairs(sources)

	// Accumulated bin weights, updated incrementally to keep assignment at
	// O(n·m) instead of recomputing each bin weight per page.
	weights := make([]int, len(pairs))
	for _, page := range sorted {
		lightest := 0
		for j := 1; j < len(weights); j++ {
			if weights[j] < weights[lightest] {
				lightest = j
			}
		}
		pairs[lightest].Pages = append(pairs[lightest].Pages, page)
		weights[lightest] += page.Weight()
	}

	return pairs, nil
}
