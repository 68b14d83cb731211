package peneloop

// Option configures an Engine with optional dependencies.
type Option func(*engineOptions)

// engineOptions holds optional Engine configuration.
type engineOptions struct {
	logger  Logger
	metrics MetricsCollector
}

// WithLogger sets a custom structured logger.
//
// Parameters:
//   - logger: Logger implementation (e.g. logging.NewSlogDefault())
//
// Returns:
//   - Option: Functional option for New
//
// Example:
//
//	engine := peneloop.New(sources, pages, peneloop.WithLogger(logger))
func WithLogger(logger Logger) Option {
	return func(o *engineOptions) {
		o.logger = logger
	}
}

// WithMetrics sets a metrics collector.
//
// Parameters:
//   - metrics: MetricsCollector implementation (e.g. metrics.NewPrometheus(nil, ""))
//
// Returns:
//   - Option: Functional option for New
//
// Example:
//
//	collector := metrics.NewPrometheus(nil, "peneloop")
//	engine := peneloop.New(sources, pages, peneloop.WithMetrics(collector))
func WithMetrics(metrics MetricsCollector) Option {
	return func(o *engineOptions) {
		o.metrics = metrics
	}
}
