package types

// PartitionStrategy computes a page partition for a set of federated sources.
//
// Strategies implement different distribution algorithms:
//   - ContiguousChunk: Consecutive chunks of equal page count (no weight balancing)
//   - BestFitDecreasing: Greedy bin packing by decreasing weight (best balance)
//   - RoundRobin: Cyclic distribution (balances page count)
//
// Strategy implementations must:
//   - Be deterministic (same input → same output)
//   - Return exactly one pair per source, in source order, empty bins included
//   - Never mutate the input slices
//   - Be stateless (no side effects between calls)
type PartitionStrategy interface {
	// Partition distributes the pages across the sources.
	//
	// Every input page is assigned to exactly one source (no loss, no
	// duplication). An empty page list is valid and yields all-empty bins.
	//
	// Parameters:
	//   - sources: Ordered list of federated sources (must be non-empty)
	//   - pages: Ordered list of binding pages to distribute
	//
	// Returns:
	//   - []Pair: One (source, pages) pair per source, in source order
	//   - error: ErrEmptySourceList when sources is empty, ErrSourceExhausted
	//     on internal inconsistency
	Partition(sources []Source, pages []Page) ([]Pair, error)
}
