package spatial_test

import (
	"fmt"

	"github.com/moldiv/moldiv/spatial"
)

func ExampleSpread() {
	// Symmetric with a zero diagonal: a self-comparison, so the diagonal
	// is ignored and only the distance 5 between the two points counts.
	d := spatial.Matrix{
		{0, 5},
		{5, 0},
	}

	below, _ := spatial.Spread(d, 4)
	above, _ := spatial.Spread(d, 6)

	fmt.Println(below, above)
	// Output: 0 1
}

func ExampleSumOfSpreads() {
	a := [][]float64{{0, 0}, {2, 0}}
	b := [][]float64{{4, 0}}

	d, _ := spatial.Distances(a, b)
	score, _ := spatial.SumOfSpreads(d, 1, spatial.WithRange(0, 6), spatial.WithStep(2))

	fmt.Printf("%.1f\n", score)
	// Output: 1.5
}
