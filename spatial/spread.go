package spatial

import (
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
)

const (
	defaultMaxThreshold    = 3.0
	defaultStepDenominator = 500.0
)

// Spread returns the fraction of rows of d containing at least one entry
// strictly less than t.
//
// When d is a self-comparison matrix (see IsValidDistanceMatrix) the
// diagonal entries are ignored, so a point never counts as its own
// nearest neighbor. The result is in [0, 1] and monotonic non-decreasing
// in t.
func Spread(d Matrix, t float64) (float64, error) {
	if err := d.Validate(); err != nil {
		return 0, err
	}
	return spread(d, t, IsValidDistanceMatrix(d)), nil
}

// spread assumes d has been validated. selfCmp skips diagonal entries.
func spread(d Matrix, t float64, selfCmp bool) float64 {
	hits := 0
	for i, row := range d {
		for j, v := range row {
			if selfCmp && i == j {
				continue
			}
			if v < t {
				hits++
				break
			}
		}
	}
	return float64(hits) / float64(len(d))
}

type sumOptions struct {
	minT        float64
	maxT        float64
	step        float64
	stepSet     bool
	diff        Matrix
	concurrency int
}

// SumOption configures SumOfSpreads.
type SumOption func(*sumOptions)

// WithRange sets the threshold interval [min, max]. Defaults to [0, 3].
func WithRange(min, max float64) SumOption {
	return func(o *sumOptions) {
		o.minT = min
		o.maxT = max
	}
}

// WithStep sets the step size used to derive the number of sampled
// thresholds. If unset, max/500 is used. A non-positive step is rejected
// with ErrInvalidStep.
func WithStep(step float64) SumOption {
	return func(o *sumOptions) {
		o.step = step
		o.stepSet = true
	}
}

// WithDiff subtracts the spread of m from the spread of the primary
// matrix at every sampled threshold.
func WithDiff(m Matrix) SumOption {
	return func(o *sumOptions) {
		o.diff = m
	}
}

// WithConcurrency evaluates the sampled thresholds on up to n goroutines.
// Thresholds are independent of each other, and per-threshold results are
// accumulated in ascending threshold order regardless of evaluation
// order, so the sum is identical to a sequential run.
func WithConcurrency(n int) SumOption {
	return func(o *sumOptions) {
		o.concurrency = n
	}
}

// SumOfSpreads sums Spread(d, t) over a sweep of distance thresholds, a
// Riemann-sum approximation of the integral of spread over the threshold
// range. Thresholds are multiplied by coeff to rescale the distance
// units. With WithDiff, the per-threshold difference of the two spreads
// is summed instead.
//
// A step larger than the threshold range produces an empty sweep and a
// sum of 0.
func SumOfSpreads(d Matrix, coeff float64, opts ...SumOption) (float64, error) {
	o := sumOptions{maxT: defaultMaxThreshold}
	for _, fn := range opts {
		fn(&o)
	}

	step := o.step
	if !o.stepSet {
		step = o.maxT / defaultStepDenominator
	}

	sweep, err := NewSweep(o.minT, o.maxT, step, coeff)
	if err != nil {
		return 0, err
	}

	if err := d.Validate(); err != nil {
		return 0, err
	}
	selfCmp := IsValidDistanceMatrix(d)

	var diffSelfCmp bool
	if o.diff != nil {
		if err := o.diff.Validate(); err != nil {
			return 0, err
		}
		diffSelfCmp = IsValidDistanceMatrix(o.diff)
	}

	ts := sweep.Thresholds()
	if len(ts) == 0 {
		return 0, nil
	}

	at := func(t float64) float64 {
		s := spread(d, t, selfCmp)
		if o.diff != nil {
			s -= spread(o.diff, t, diffSelfCmp)
		}
		return s
	}

	sums := make([]float64, len(ts))
	if o.concurrency > 1 {
		var g errgroup.Group
		g.SetLimit(o.concurrency)
		for i, t := range ts {
			i, t := i, t
			g.Go(func() error {
				sums[i] = at(t)
				return nil
			})
		}
		_ = g.Wait() // workers never return an error
	} else {
		for i, t := range ts {
			sums[i] = at(t)
		}
	}

	return floats.Sum(sums), nil
}
