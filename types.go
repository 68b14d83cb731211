package peneloop

import "github.com/Callidon/peneloop-fedx/types"

// Re-export types from the types subpackage.
//
// This file provides a stable public API for the library's core types and
// interfaces. It uses type aliases to re-export definitions from the `types`
// subpackage, which contains the actual implementations.
//
// This pattern solves the "import cycle" problem by allowing internal
// packages to depend on `types` without depending on the root `peneloop`
// package, while still providing a convenient `peneloop.Partition`,
// `peneloop.Algorithm`, etc. for users.
type (
	Binding   = types.Binding
	Page      = types.Page
	Source    = types.Source
	Bin       = types.Bin
	Pair      = types.Pair
	Partition = types.Partition
	Algorithm = types.Algorithm
)

// Re-export interfaces from the types subpackage for convenience.
type (
	PartitionStrategy = types.PartitionStrategy
	SourceProvider    = types.SourceProvider
	Logger            = types.Logger
	MetricsCollector  = types.MetricsCollector
)

// Re-export Algorithm constants from the types subpackage.
const (
	ContiguousChunk   = types.ContiguousChunk
	BestFitDecreasing = types.BestFitDecreasing
	RoundRobin        = types.RoundRobin
)
