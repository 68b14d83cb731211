// Package types provides core type definitions and interfaces for the PeNeLoop
// partition engine.
//
// This package contains shared types that are used across multiple packages in
// the library. By keeping these types in a separate package, we avoid import
// cycles between the main peneloop package and its internal implementations.
//
// Key types:
//   - Binding: One matched assignment of variables to RDF terms
//   - Page: Ordered batch of bindings, the atomic unit of partitioning work
//   - Source: Federated endpoint that evaluates pages in parallel
//   - Partition: Ordered assignment of every page to exactly one source
//   - Algorithm: Closed enumeration of partitioning algorithms
//   - PartitionStrategy: Algorithm implementation interface
//   - Logger: Structured logging interface
//   - MetricsCollector: Metrics recording interface
package types
