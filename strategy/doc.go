// Package strategy provides built-in partitioning algorithm implementations.
//
// Partitioning strategies determine how binding pages are distributed across
// federated sources. The package includes three built-in strategies:
//
//   - BestFitDecreasing: Greedy bin packing by decreasing page weight (recommended for skewed page sizes)
//   - RoundRobin: Cyclic distribution in input order
//   - ContiguousChunk: Consecutive equal-count chunks (fastest, no balancing)
//
// # Strategy Selection Guide
//
// BestFitDecreasing:
//   - Use when page sizes vary significantly
//   - Produces the most balanced distribution: for any two bins, the weight
//     difference is bounded by the largest single page weight
//   - Sorts first, so pages do not keep their input order within bins
//   - O(n log n) sort plus O(n·m) assignment for n pages and m sources
//
// RoundRobin:
//   - Use when page sizes are roughly uniform
//   - Balances page count but not weight, preserves input order per bin
//   - O(n) time
//
// ContiguousChunk:
//   - Use when locality of consecutive pages matters more than balance
//   - Splits the input into chunks of ceil(n/m) consecutive pages
//   - Does not consider page weight at all
//
// All strategies return exactly one (source, pages) pair per source, in the
// configured source order, with empty bins included. Custom strategies can be
// implemented by satisfying the types.PartitionStrategy interface.
package strategy
