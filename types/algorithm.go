package types

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Algorithm selects one of the partitioning algorithms.
//
// The enumeration is closed: the engine fails with ErrUnknownAlgorithm on any
// value outside the three defined constants instead of silently falling back
// to a default.
type Algorithm int

const (
	// ContiguousChunk splits the input page sequence into consecutive chunks
	// of size ceil(pages/sources), assigning the i-th chunk to the i-th
	// source. Fast but does not balance load.
	ContiguousChunk Algorithm = iota

	// BestFitDecreasing sorts pages by descending weight and assigns each
	// page to the currently lightest bin. The most balanced of the three.
	BestFitDecreasing

	// RoundRobin assigns page i to bin i mod sources, preserving input order
	// per bin. Balances page count but not weight.
	RoundRobin
)

// String returns the canonical name of the algorithm.
func (a Algorithm) String() string {
	switch a {
	case ContiguousChunk:
		return "contiguous_chunk"
	case BestFitDecreasing:
		return "best_fit_decreasing"
	case RoundRobin:
		return "round_robin"
	default:
		return fmt.Sprintf("unknown(%d)", int(a))
	}
}

// Valid reports whether the algorithm is one of the defined constants.
func (a Algorithm) Valid() bool {
	switch a {
	case ContiguousChunk, BestFitDecreasing, RoundRobin:
		return true
	default:
		return false
	}
}

// ParseAlgorithm parses a canonical algorithm name as produced by String.
//
// Parameters:
//   - name: Algorithm name ("contiguous_chunk", "best_fit_decreasing", "round_robin")
//
// Returns:
//   - Algorithm: Parsed algorithm constant
//   - error: ErrUnknownAlgorithm (wrapped with the offending name) when the
//     name does not match a defined algorithm
func ParseAlgorithm(name string) (Algorithm, error) {
	switch name {
	case "contiguous_chunk":
		return ContiguousChunk, nil
	case "best_fit_decreasing":
		return BestFitDecreasing, nil
	case "round_robin":
		return RoundRobin, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}

// MarshalYAML encodes the algorithm as its canonical name, so algorithm
// selection can live in yaml configuration files.
func (a Algorithm) MarshalYAML() (any, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(a))
	}

	return a.String(), nil
}

// UnmarshalYAML decodes an algorithm from its canonical name.
func (a *Algorithm) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}

	parsed, err := ParseAlgorithm(name)
	if err != nil {
		return err
	}
	*a = parsed

	return nil
}
