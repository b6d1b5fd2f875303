// Package moldiv computes fixed-length descriptor vectors for chemical
// structures and the nearest-neighbor spread statistics used to compare
// two populations of such vectors. Its scores characterize how separable
// or diverse benchmark datasets (for example active vs. decoy compound
// sets) are in descriptor space.
//
// The chemistry itself lives behind the descriptor.Structure interface;
// moldiv only arranges toolkit-supplied attributes into vectors and runs
// the distance-threshold sweep over them.
//
// # Quick Start
//
//	ctx := context.Background()
//	p := moldiv.New(moldiv.WithParallelism(4))
//
//	// actives and decoys implement descriptor.Structure.
//	score, err := p.Compare(ctx, actives, decoys, 1.0)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("sum of spreads:", score)
//
// The pipeline stages are available individually for callers that want to
// reuse vectors or matrices:
//
//	va, _ := p.Describe(ctx, actives)
//	vd, _ := p.Describe(ctx, decoys)
//	d, _ := spatial.Distances(va, vd)
//	score, _ := p.Score(ctx, d, 1.0, spatial.WithRange(0, 3))
//
// All operations are pure functions over their inputs; a Profiler holds
// no state beyond its configuration and is safe for concurrent use.
package moldiv
