package types

// MetricsCollector defines methods for recording partitioning metrics.
//
// Implementations should be non-blocking and handle failures gracefully.
// The engine calls these methods synchronously on the partitioning path, so
// implementations must be cheap.
type MetricsCollector interface {
	// RecordPartition records a successful partition computation.
	//
	// Parameters:
	//   - algorithm: Canonical algorithm name
	//   - sources: Number of configured sources
	//   - pages: Number of distributed pages
	//   - duration: Computation time in seconds
	RecordPartition(algorithm string, sources, pages int, duration float64)

	// RecordImbalance records the bin weight spread of a computed partition.
	//
	// Parameters:
	//   - algorithm: Canonical algorithm name
	//   - minWeight: Smallest bin weight
	//   - maxWeight: Largest bin weight
	RecordImbalance(algorithm string, minWeight, maxWeight int)

	// RecordPartitionError records a failed partition request.
	//
	// Parameters:
	//   - algorithm: Canonical algorithm name ("unknown(n)" for invalid selectors)
	RecordPartitionError(algorithm string)
}
