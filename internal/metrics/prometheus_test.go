package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func TestPrometheusCollector_RegistersOnFirstSample(t *testing.T) {
	reg := prometheus.NewRegistry()
	collector := NewPrometheus(reg, "test")

	// Nothing registered before the first sample.
	families, err := reg.Gather()
	require.NoError(t, err)
	require.Empty(t, families)

	collector.RecordPartition("round_robin", 3, 5, 0.0001)
	collector.RecordImbalance("round_robin", 4, 6)
	collector.RecordPartitionError("unknown(42)")

	families, err = reg.Gather()
	require.NoError(t, err)

	names := make(map[string]bool, len(families))
	for _, mf := range families {
		names[mf.GetName()] = true
	}

	require.True(t, names["test_engine_partitions_total"])
	require.True(t, names["test_engine_partition_duration_seconds"])
	require.True(t, names["test_engine_partition_errors_total"])
	require.True(t, names["test_engine_bin_weight_min"])
	require.True(t, names["test_engine_bin_weight_max"])
	require.True(t, names["test_engine_bin_weight_spread"])
}

func TestPrometheusCollector_Defaults(t *testing.T) {
	collector := NewPrometheus(nil, "")

	require.Equal(t, "peneloop", collector.namespace)
	require.NotNil(t, collector.reg)
}

func TestNopMetrics(t *testing.T) {
	collector := NewNop()

	require.NotPanics(t, func() {
		collector.RecordPartition("round_robin", 3, 5, 0.0001)
		collector.RecordImbalance("round_robin", 0, 0)
		collector.RecordPartitionError("round_robin")
	})
}
