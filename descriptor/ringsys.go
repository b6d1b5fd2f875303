package descriptor

// RingSystems counts disjoint ring systems with a single pass over rings
// in the order given: a ring sharing no atom with any earlier ring starts
// a new system, and every ring's atoms join the running seen-set.
//
// The result can depend on ring order. A ring that bridges two systems
// already counted separately does not merge them, so orderings where a
// bridging ring appears after both neighbors overcount by one. Use
// ConnectedRingSystems when order independence matters.
func RingSystems(rings []Ring) int {
	seen := make(map[int]struct{})

	n := 0
	for _, ring := range rings {
		fresh := true
		for _, a := range ring {
			if _, ok := seen[a]; ok {
				fresh = false
				break
			}
		}
		if fresh {
			n++
		}
		for _, a := range ring {
			seen[a] = struct{}{}
		}
	}

	return n
}

// ConnectedRingSystems counts ring systems as connected components of the
// ring graph: two rings are connected when they share at least one atom.
// The result is independent of ring order.
func ConnectedRingSystems(rings []Ring) int {
	parent := make([]int, len(rings))
	for i := range parent {
		parent[i] = i
	}

	var find func(int) int
	find = func(i int) int {
		for parent[i] != i {
			parent[i] = parent[parent[i]] // path halving
			i = parent[i]
		}
		return i
	}

	// Union rings through the first ring seen with each atom.
	owner := make(map[int]int)
	for i, ring := range rings {
		for _, a := range ring {
			j, ok := owner[a]
			if !ok {
				owner[a] = i
				continue
			}
			ri, rj := find(i), find(j)
			if ri != rj {
				parent[ri] = rj
			}
		}
	}

	n := 0
	for i := range parent {
		if find(i) == i {
			n++
		}
	}

	return n
}
