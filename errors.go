package peneloop

import "github.com/Callidon/peneloop-fedx/types"

// Sentinel errors returned by the Engine.
//
// These are the canonical errors from the types subpackage, re-exported so
// callers can match with errors.Is without importing types directly.
var (
	// ErrEmptySourceList is returned when a partition is requested with zero
	// configured sources.
	ErrEmptySourceList = types.ErrEmptySourceList

	// ErrUnknownAlgorithm is returned when the algorithm selector does not
	// match one of the three defined algorithms.
	ErrUnknownAlgorithm = types.ErrUnknownAlgorithm

	// ErrSourceExhausted is returned when an algorithm would produce more
	// bins than configured sources.
	ErrSourceExhausted = types.ErrSourceExhausted

	// ErrNoPartition is returned when a report is requested before any
	// partition has been computed.
	ErrNoPartition = types.ErrNoPartition
)
