package moldiv

import (
	"github.com/moldiv/moldiv/descriptor"
)

type options struct {
	calculator       *descriptor.Calculator
	metricsCollector MetricsCollector
	logger           *Logger
	parallelism      int
}

// Option configures Profiler behavior.
type Option func(*options)

// WithCalculator configures the descriptor calculator, e.g. one built
// with descriptor.WithConnectedRingSystems. If nil is passed, the default
// calculator is used.
func WithCalculator(c *descriptor.Calculator) Option {
	return func(o *options) {
		if c == nil {
			c = descriptor.New()
		}
		o.calculator = c
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// operations. Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &moldiv.BasicMetricsCollector{}
//	p := moldiv.New(moldiv.WithMetricsCollector(metrics))
//	// ... later:
//	stats := metrics.GetStats()
func WithMetricsCollector(collector MetricsCollector) Option {
	return func(o *options) {
		if collector == nil {
			collector = NoopMetricsCollector{}
		}
		o.metricsCollector = collector
	}
}

// WithLogger configures structured logging. Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithParallelism configures the number of goroutines used for batch
// descriptor computation and the threshold sweep. Values <= 1 keep both
// fully sequential. Results are identical either way; only wall-clock
// time changes.
func WithParallelism(n int) Option {
	return func(o *options) {
		o.parallelism = n
	}
}
