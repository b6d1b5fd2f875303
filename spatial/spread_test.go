package spatial

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpread(t *testing.T) {
	tests := []struct {
		name     string
		d        Matrix
		t        float64
		expected float64
	}{
		// The diagonal of a symmetric zero-diagonal matrix is ignored, so
		// only the off-diagonal distance 5 is compared.
		{"SelfBelowThreshold", Matrix{{0, 5}, {5, 0}}, 4, 0},
		{"SelfAboveThreshold", Matrix{{0, 5}, {5, 0}}, 6, 1},
		{"ZeroThreshold", Matrix{{0, 5}, {5, 0}}, 0, 0},
		// 1x1 self-comparison has no off-diagonal entries left.
		{"SingleSelf", Matrix{{0}}, 100, 0},
		// Rectangular matrices keep every entry, zeros included.
		{"RectangularKeepsZeros", Matrix{{0, 5}}, 0.1, 1},
		// Asymmetric square matrices are not self-comparisons.
		{"AsymmetricKeepsDiagonal", Matrix{{0, 1}, {2, 0}}, 0.5, 1},
		{"PartialRows", Matrix{{1, 9}, {9, 9}, {2, 9}}, 3, 2.0 / 3.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Spread(tt.d, tt.t)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, got, 1e-12)
		})
	}
}

func TestSpreadMonotonic(t *testing.T) {
	d := Matrix{{3, 7}, {1, 9}, {8, 8}}

	prev := 0.0
	for _, threshold := range []float64{0, 1, 2, 4, 8, 9, 100} {
		got, err := Spread(d, threshold)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, got, prev)
		prev = got
	}
	assert.Equal(t, 1.0, prev)
}

func TestSpreadInvalidShape(t *testing.T) {
	var shapeErr *ErrInvalidShape

	_, err := Spread(Matrix{{1, 2}, {3}}, 1)
	require.ErrorAs(t, err, &shapeErr)

	_, err = Spread(nil, 1)
	require.ErrorAs(t, err, &shapeErr)
}

func TestSumOfSpreads(t *testing.T) {
	t.Run("AllRowsAlwaysWithin", func(t *testing.T) {
		// Every sampled threshold is above every distance, so each of the
		// four thresholds contributes a spread of 1.
		d := Matrix{{0, 0}}
		got, err := SumOfSpreads(d, 1, WithRange(1, 3), WithStep(0.5))
		require.NoError(t, err)
		assert.InDelta(t, 4.0, got, 1e-12)
	})

	t.Run("DiffAgainstItselfIsZero", func(t *testing.T) {
		d := Matrix{{0, 5}, {5, 0}}
		got, err := SumOfSpreads(d, 2.5, WithDiff(d))
		require.NoError(t, err)
		assert.Equal(t, 0.0, got)
	})

	t.Run("DiffSubtractsPerThreshold", func(t *testing.T) {
		d := Matrix{{1, 1}}
		diff := Matrix{{2, 2}}

		// Thresholds 1.5 and 3: d spreads 1 at both, diff spreads 0 then 1.
		got, err := SumOfSpreads(d, 1, WithRange(1.5, 3), WithStep(0.75))
		require.NoError(t, err)
		assert.InDelta(t, 2.0, got, 1e-12)

		got, err = SumOfSpreads(d, 1, WithRange(1.5, 3), WithStep(0.75), WithDiff(diff))
		require.NoError(t, err)
		assert.InDelta(t, 1.0, got, 1e-12)
	})

	t.Run("EmptySweep", func(t *testing.T) {
		got, err := SumOfSpreads(Matrix{{1}}, 1, WithStep(10))
		require.NoError(t, err)
		assert.Equal(t, 0.0, got)
	})

	t.Run("DefaultSweepOutOfReach", func(t *testing.T) {
		// All distances above the default [0, 3] range.
		got, err := SumOfSpreads(Matrix{{0, 5}, {5, 0}}, 1)
		require.NoError(t, err)
		assert.Equal(t, 0.0, got)
	})

	t.Run("InvalidStep", func(t *testing.T) {
		_, err := SumOfSpreads(Matrix{{1}}, 1, WithStep(0))
		assert.ErrorIs(t, err, ErrInvalidStep)

		_, err = SumOfSpreads(Matrix{{1}}, 1, WithStep(-1))
		assert.ErrorIs(t, err, ErrInvalidStep)
	})

	t.Run("InvalidShape", func(t *testing.T) {
		var shapeErr *ErrInvalidShape

		_, err := SumOfSpreads(Matrix{{1, 2}, {3}}, 1)
		require.ErrorAs(t, err, &shapeErr)

		_, err = SumOfSpreads(Matrix{{1}}, 1, WithDiff(Matrix{{1, 2}, {3}}))
		require.ErrorAs(t, err, &shapeErr)
	})
}

func TestSumOfSpreadsConcurrencyDeterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	d := make(Matrix, 20)
	for i := range d {
		d[i] = make([]float64, 15)
		for j := range d[i] {
			d[i][j] = rng.Float64() * 4
		}
	}

	sequential, err := SumOfSpreads(d, 1.5)
	require.NoError(t, err)

	concurrent, err := SumOfSpreads(d, 1.5, WithConcurrency(8))
	require.NoError(t, err)

	// Per-threshold results are summed in ascending threshold order either
	// way, so the sums are bit-identical.
	assert.Equal(t, sequential, concurrent)
}

func BenchmarkSumOfSpreads(b *testing.B) {
	rng := rand.New(rand.NewSource(1))

	d := make(Matrix, 100)
	for i := range d {
		d[i] = make([]float64, 100)
		for j := range d[i] {
			d[i][j] = rng.Float64() * 3
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := SumOfSpreads(d, 1); err != nil {
			b.Fatal(err)
		}
	}
}
