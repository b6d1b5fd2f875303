package moldiv

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/moldiv/moldiv/descriptor"
	"github.com/moldiv/moldiv/spatial"
)

// Profiler runs the descriptor/spread pipeline over structure
// populations. It is immutable after construction and safe for
// concurrent use.
type Profiler struct {
	calc        *descriptor.Calculator
	logger      *Logger
	metrics     MetricsCollector
	parallelism int
}

// New creates a Profiler.
func New(opts ...Option) *Profiler {
	o := options{
		calculator:       descriptor.New(),
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
		parallelism:      1,
	}

	for _, fn := range opts {
		fn(&o)
	}

	return &Profiler{
		calc:        o.calculator,
		logger:      o.logger,
		metrics:     o.metricsCollector,
		parallelism: o.parallelism,
	}
}

// Describe computes the descriptor vector of every structure and returns
// the vectors as rows, in input order. The first toolkit failure aborts
// the batch and is reported as an ErrStructure carrying the position of
// the offending structure.
func (p *Profiler) Describe(ctx context.Context, structures []descriptor.Structure) ([][]float64, error) {
	if len(structures) == 0 {
		return nil, ErrNoStructures
	}

	start := time.Now()
	out := make([][]float64, len(structures))

	var err error
	if p.parallelism > 1 {
		g, ctx := errgroup.WithContext(ctx)
		g.SetLimit(p.parallelism)
		for i, s := range structures {
			i, s := i, s
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				v, err := p.calc.Calculate(s)
				if err != nil {
					return &ErrStructure{Index: i, cause: err}
				}
				out[i] = v.Slice()
				return nil
			})
		}
		err = g.Wait()
	} else {
		for i, s := range structures {
			v, cerr := p.calc.Calculate(s)
			if cerr != nil {
				err = &ErrStructure{Index: i, cause: cerr}
				break
			}
			out[i] = v.Slice()
		}
	}

	p.metrics.RecordDescribe(len(structures), time.Since(start), err)
	p.logger.LogDescribe(ctx, len(structures), err)

	if err != nil {
		return nil, err
	}
	return out, nil
}

// Score computes the sum of spreads for a distance matrix, applying the
// Profiler's parallelism to the threshold sweep.
func (p *Profiler) Score(ctx context.Context, d spatial.Matrix, coeff float64, opts ...spatial.SumOption) (float64, error) {
	if p.parallelism > 1 {
		opts = append(opts, spatial.WithConcurrency(p.parallelism))
	}

	start := time.Now()
	score, err := spatial.SumOfSpreads(d, coeff, opts...)

	p.metrics.RecordScore(time.Since(start), err)
	p.logger.LogScore(ctx, coeff, score, err)

	return score, err
}

// Compare describes both structure sets, builds the pairwise distance
// matrix between them and returns the sum of spreads. Rows of the matrix
// correspond to setA, columns to setB.
func (p *Profiler) Compare(ctx context.Context, setA, setB []descriptor.Structure, coeff float64, opts ...spatial.SumOption) (float64, error) {
	va, err := p.Describe(ctx, setA)
	if err != nil {
		return 0, err
	}

	vb, err := p.Describe(ctx, setB)
	if err != nil {
		return 0, err
	}

	d, err := spatial.Distances(va, vb)
	if err != nil {
		return 0, err
	}

	return p.Score(ctx, d, coeff, opts...)
}
