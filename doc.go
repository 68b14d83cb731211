// Package peneloop provides a partitioning engine for the parallel bound join
// over federated SPARQL sources.
//
// The engine distributes intermediate-result binding pages across a fixed,
// ordered set of federated sources so that each source receives a share of
// work for parallel execution. It is purely computational: no network I/O, no
// dynamic rebalancing, no runtime feedback. It operates on pre-computed page
// sizes only; fetching pages and merging results belong to the surrounding
// join evaluator.
//
// # Quick Start
//
//	import (
//	    peneloop "github.com/Callidon/peneloop-fedx"
//	    "github.com/Callidon/peneloop-fedx/types"
//	)
//
//	sources := []types.Source{
//	    {ID: "dbpedia", Endpoint: "http://dbpedia.org/sparql"},
//	    {ID: "wikidata", Endpoint: "https://query.wikidata.org/sparql"},
//	}
//
//	engine := peneloop.New(sources, pages)
//	partition, err := engine.Partition(peneloop.BestFitDecreasing)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	engine.Report(os.Stdout)
//
// # Algorithms
//
//   - BestFitDecreasing: Greedy bin packing by decreasing page weight; the
//     most balanced distribution (bin weight spread bounded by the largest
//     single page)
//   - RoundRobin: Cyclic distribution in input order; balances page count
//   - ContiguousChunk: Consecutive chunks of ceil(pages/sources) pages; fast
//     but does not balance load
//
// The algorithm enumeration is closed: an unrecognized selector fails with
// ErrUnknownAlgorithm instead of silently falling back to a default.
//
// # Concurrency
//
// An Engine is not safe for concurrent use. Construct a fresh engine per
// partitioning request, or guard a shared engine with external locking. The
// source.Registry provider IS goroutine-safe and can feed many engines.
//
// See the strategy package for algorithm details and the source package for
// source provisioning.
package peneloop
