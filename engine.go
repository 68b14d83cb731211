package peneloop

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Callidon/peneloop-fedx/internal/logging"
	"github.com/Callidon/peneloop-fedx/internal/metrics"
	"github.com/Callidon/peneloop-fedx/strategy"
	"github.com/Callidon/peneloop-fedx/types"
)

// Engine partitions binding pages across an ordered set of federated sources.
//
// An engine is configured once at construction with its sources and pages;
// neither is consumed or cleared by computation. Each call to Partition
// computes a fresh partition and replaces the previously computed one.
//
// The engine's internal state is mutable and NOT safe for concurrent use:
// construct a fresh engine per partitioning request, or guard a shared engine
// with external locking.
type Engine struct {
	runID   uuid.UUID
	sources []types.Source
	pages   []types.Page

	contiguous types.PartitionStrategy
	bestFit    types.PartitionStrategy
	roundRobin types.PartitionStrategy

	last *types.Partition

	logger  types.Logger
	metrics types.MetricsCollector
}

// New creates a new partition engine over the given sources and pages.
//
// Configuration is a single explicit step: the source and page lists are
// copied at construction and cannot be extended afterwards. Sources must be
// non-empty for partitioning to be meaningful; pages may be empty, which
// yields a partition of all-empty bins.
//
// Parameters:
//   - sources: Ordered list of federated sources, no duplicates
//   - pages: Ordered list of binding pages to distribute
//   - opts: Optional configuration (WithLogger, WithMetrics)
//
// Returns:
//   - *Engine: Initialized engine
//
// Example:
//
//	engine := peneloop.New(sources, pages, peneloop.WithLogger(logger))
//	partition, err := engine.Partition(peneloop.BestFitDecreasing)
func New(sources []types.Source, pages []types.Page, opts ...Option) *Engine {
	options := engineOptions{}
	for _, opt := range opts {
		opt(&options)
	}
	if options.logger == nil {
		options.logger = logging.NewNop()
	}
	if options.metrics == nil {
		options.metrics = metrics.NewNop()
	}

	e := &Engine{
		runID:      uuid.New(),
		sources:    make([]types.Source, len(sources)),
		pages:      make([]types.Page, len(pages)),
		contiguous: strategy.NewContiguousChunk(),
		bestFit:    strategy.NewBestFitDecreasing(),
		roundRobin: strategy.NewRoundRobin(),
		logger:     options.logger,
		metrics:    options.metrics,
	}
	copy(e.sources, sources)
	copy(e.pages, pages)

	return e
}

// NewFromProvider creates a new partition engine with sources resolved from a
// SourceProvider.
//
// Parameters:
//   - ctx: Context for source discovery cancellation and timeout
//   - provider: SourceProvider to resolve the ordered source list from
//   - pages: Ordered list of binding pages to distribute
//   - opts: Optional configuration (WithLogger, WithMetrics)
//
// Returns:
//   - *Engine: Initialized engine
//   - error: Source discovery error (nil on success)
//
// Example:
//
//	reg := source.NewRegistry()
//	reg.Register(types.Source{ID: "dbpedia", Endpoint: "http://dbpedia.org/sparql"})
//	engine, err := peneloop.NewFromProvider(ctx, reg, pages)
func NewFromProvider(ctx context.Context, provider types.SourceProvider, pages []types.Page, opts ...Option) (*Engine, error) {
	sources, err := provider.ListSources(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sources: %w", err)
	}

	return New(sources, pages, opts...), nil
}

// Partition computes the page partition for the given algorithm.
//
// The computation is deterministic: the same configured state and algorithm
// always yield an identical partition. The result replaces any previously
// computed partition; the configured sources and pages are left untouched.
//
// Parameters:
//   - alg: Algorithm selector (ContiguousChunk, BestFitDecreasing, RoundRobin)
//
// Returns:
//   - *types.Partition: One (source, pages) pair per configured source, in
//     source order
//   - error: ErrUnknownAlgorithm for selectors outside the closed enumeration,
//     ErrEmptySourceList when no sources are configured
func (e *Engine) Partition(alg types.Algorithm) (*types.Partition, error) {
	strat, err := e.strategyFor(alg)
	if err != nil {
		e.metrics.RecordPartitionError(alg.String())

		return nil, err
	}

	start := time.Now()
	pairs, err := strat.Partition(e.sources, e.pages)
	if err != nil {
		e.metrics.RecordPartitionError(alg.String())
		e.logger.Error("partition failed",
			"run_id", e.runID.String(),
			"algorithm", alg.String(),
			"error", err.Error(),
		)

		return nil, err
	}

	partition := &types.Partition{Algorithm: alg, Pairs: pairs}
	e.last = partition

	duration := time.Since(start).Seconds()
	minWeight, maxWeight := partition.WeightSpread()
	e.metrics.RecordPartition(alg.String(), len(e.sources), len(e.pages), duration)
	e.metrics.RecordImbalance(alg.String(), minWeight, maxWeight)
	e.logger.Debug("partition computed",
		"run_id", e.runID.String(),
		"algorithm", alg.String(),
		"sources", len(e.sources),
		"pages", len(e.pages),
		"min_bin_weight", minWeight,
		"max_bin_weight", maxWeight,
	)

	return partition, nil
}

// strategyFor maps an algorithm selector to its strategy. The enumeration is
// closed: anything else fails instead of falling back to a default.
func (e *Engine) strategyFor(alg types.Algorithm) (types.PartitionStrategy, error) {
	switch alg {
	case types.ContiguousChunk:
		return e.contiguous, nil
	case types.BestFitDecreasing:
		return e.bestFit, nil
	case types.RoundRobin:
		return e.roundRobin, nil
	default:
		return nil, fmt.Errorf("%w: %d", types.ErrUnknownAlgorithm, int(alg))
	}
}

// Last returns the most recently computed partition, or nil when Partition
// has not been called successfully yet.
func (e *Engine) Last() *types.Partition {
	return e.last
}

// RunID returns the engine's run identifier, used to correlate log entries
// and reports produced by this engine instance.
func (e *Engine) RunID() uuid.UUID {
	return e.runID
}

// Sources returns a copy of the configured source list, in order.
func (e *Engine) Sources() []types.Source {
	sources := make([]types.Source, len(e.sources))
	copy(sources, e.sources)

	return sources
}

// Pages returns a copy of the configured page list, in order.
func (e *Engine) Pages() []types.Page {
	pages := make([]types.Page, len(e.pages))
	copy(pages, e.pages)

	return pages
}
