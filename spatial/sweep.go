package spatial

import (
	"gonum.org/v1/gonum/floats"
)

// Sweep is a finite sequence of distance thresholds spanning a closed
// interval. It stores only its parameters; Thresholds materializes the
// sequence, so a Sweep can be reused and inspected independently of any
// summation over it.
type Sweep struct {
	min   float64
	max   float64
	coeff float64
	n     int
}

// NewSweep builds the threshold sweep for [min, max] with the given step
// size and scaling coefficient. The sweep holds floor((max-min)/step)
// sample points spaced evenly across the closed interval, endpoints
// included; each threshold is multiplied by coeff to rescale the distance
// units. A step larger than the interval yields an empty sweep.
func NewSweep(min, max, step, coeff float64) (*Sweep, error) {
	if step <= 0 {
		return nil, ErrInvalidStep
	}

	return &Sweep{
		min:   min,
		max:   max,
		coeff: coeff,
		n:     int((max - min) / step),
	}, nil
}

// Len returns the number of thresholds in the sweep.
func (s *Sweep) Len() int {
	if s.n < 0 {
		return 0
	}
	return s.n
}

// Thresholds materializes the sweep in ascending order. The result is a
// fresh slice on every call.
func (s *Sweep) Thresholds() []float64 {
	switch {
	case s.n <= 0:
		return nil
	case s.n == 1:
		return []float64{s.coeff * s.min}
	}

	ts := make([]float64, s.n)
	floats.Span(ts, s.min, s.max)
	floats.Scale(s.coeff, ts)
	return ts
}
