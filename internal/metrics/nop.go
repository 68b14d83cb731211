package metrics

import "github.com/Callidon/peneloop-fedx/types"

// NopMetrics implements a no-op metrics collector.
//
// All metrics are discarded. Useful for testing or when external
// metrics collection is used.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
//
// Returns:
//   - *NopMetrics: A new no-op metrics collector instance
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// RecordPartition discards the partition metric.
func (n *NopMetrics) RecordPartition(_ /* algorithm */ string, _ /* sources */, _ /* pages */ int, _ /* duration */ float64) {
	// No-op
}

// RecordImbalance discards the imbalance metric.
func (n *NopMetrics) RecordImbalance(_ /* algorithm */ string, _ /* minWeight */, _ /* maxWeight */ int) {
	// No-op
}

// RecordPartitionError discards the error metric.
func (n *NopMetrics) RecordPartitionError(_ /* algorithm */ string) {
	// No-op
}
