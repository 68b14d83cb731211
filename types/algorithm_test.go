package types

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestAlgorithmString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "contiguous_chunk", ContiguousChunk.String())
	require.Equal(t, "best_fit_decreasing", BestFitDecreasing.String())
	require.Equal(t, "round_robin", RoundRobin.String())
	require.Equal(t, "unknown(42)", Algorithm(42).String())
}

func TestParseAlgorithm(t *testing.T) {
	t.Parallel()

	for _, alg := range []Algorithm{ContiguousChunk, BestFitDecreasing, RoundRobin} {
		parsed, err := ParseAlgorithm(alg.String())
		require.NoError(t, err)
		require.Equal(t, alg, parsed)
	}

	_, err := ParseAlgorithm("first_fit")
	require.ErrorIs(t, err, ErrUnknownAlgorithm)
	require.Contains(t, err.Error(), "first_fit")
}

func TestAlgorithmValid(t *testing.T) {
	t.Parallel()

	require.True(t, ContiguousChunk.Valid())
	require.True(t, BestFitDecreasing.Valid())
	require.True(t, RoundRobin.Valid())
	require.False(t, Algorithm(-1).Valid())
	require.False(t, Algorithm(3).Valid())
}

func TestAlgorithmYAMLRoundTrip(t *testing.T) {
	t.Parallel()

	type cfg struct {
		Algorithm Algorithm `yaml:"algorithm"`
	}

	out, err := yaml.Marshal(cfg{Algorithm: BestFitDecreasing})
	require.NoError(t, err)
	require.Contains(t, string(out), "best_fit_decreasing")

	var decoded cfg
	require.NoError(t, yaml.Unmarshal(out, &decoded))
	require.Equal(t, BestFitDecreasing, decoded.Algorithm)
}

func TestAlgorithmYAMLUnknown(t *testing.T) {
	t.Parallel()

	var alg Algorithm
	err := yaml.Unmarshal([]byte(`"first_fit"`), &alg)
	require.ErrorIs(t, err, ErrUnknownAlgorithm)

	_, err = yaml.Marshal(Algorithm(42))
	require.Error(t, err)
}
