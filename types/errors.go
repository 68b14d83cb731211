package types

import "errors"

// Sentinel errors for the PeNeLoop partition engine.
//
// These errors provide type-safe error checking using errors.Is() and
// errors.As(). All components should use these sentinel errors for known
// error conditions and wrap them with context using fmt.Errorf("%w: ...").
//
// All partitioning errors indicate caller misuse or internal inconsistency
// rather than transient conditions: they are surfaced immediately with no
// local recovery or retry.
var (
	// ErrEmptySourceList is returned when a partition is requested with zero
	// configured sources. An empty page list is NOT an error: it yields a
	// valid partition with all bins empty.
	ErrEmptySourceList = errors.New("no sources configured for partitioning")

	// ErrUnknownAlgorithm is returned when an algorithm selector does not
	// match one of the three defined algorithms. The engine never falls back
	// to a default algorithm.
	ErrUnknownAlgorithm = errors.New("unknown partition algorithm")

	// ErrSourceExhausted is returned when an algorithm would produce more
	// bins than configured sources. This is structurally impossible given
	// the bin count == source count invariant, but it is checked defensively.
	ErrSourceExhausted = errors.New("more bins produced than configured sources")

	// ErrNoPartition is returned when a partition report is requested before
	// any partition has been computed.
	ErrNoPartition = errors.New("no partition computed")
)
