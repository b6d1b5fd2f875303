package descriptor

import (
	"fmt"

	"github.com/samber/lo"
)

// ChiralTag is the per-atom chirality assignment reported by the toolkit.
type ChiralTag int

const (
	// ChiralUnspecified marks an atom with no chirality assigned.
	ChiralUnspecified ChiralTag = iota
	// ChiralTetrahedralCW marks a clockwise tetrahedral center.
	ChiralTetrahedralCW
	// ChiralTetrahedralCCW marks a counter-clockwise tetrahedral center.
	ChiralTetrahedralCCW
	// ChiralOther covers every non-tetrahedral assignment.
	ChiralOther
)

func (c ChiralTag) String() string {
	switch c {
	case ChiralUnspecified:
		return "Unspecified"
	case ChiralTetrahedralCW:
		return "TetrahedralCW"
	case ChiralTetrahedralCCW:
		return "TetrahedralCCW"
	case ChiralOther:
		return "Other"
	default:
		return fmt.Sprintf("Unknown(%d)", int(c))
	}
}

// Ring holds the atom indices of one elementary cycle in a structure's
// bond graph. Indices are unique within a ring; order carries no meaning.
type Ring []int

// Structure is the read surface the Calculator needs from a chemistry
// toolkit. Implementations are expected to be immutable: AddHydrogens and
// AssignStereochemistry return derived structures rather than mutating the
// receiver.
//
// ChiralTags must only be read from a structure returned by
// AssignStereochemistry; before that the tags are undefined.
type Structure interface {
	// AddHydrogens returns a representation with implicit hydrogens
	// materialized as explicit atoms. Idempotent.
	AddHydrogens() (Structure, error)

	// AssignStereochemistry computes per-atom chirality tags.
	AssignStereochemistry() (Structure, error)

	// NumAtoms returns the total atom count, including explicit hydrogens.
	NumAtoms() int

	// NumHeavyAtoms returns the count of non-hydrogen atoms.
	NumHeavyAtoms() int

	// AtomicNums returns the atomic number of every atom, in atom order.
	AtomicNums() []int

	// ChiralTags returns the chirality tag of every atom, in atom order.
	ChiralTags() []ChiralTag

	// Rings returns the elementary rings of the structure.
	Rings() []Ring

	// NumHAcceptors returns the hydrogen-bond acceptor count.
	NumHAcceptors() int

	// NumHDonors returns the hydrogen-bond donor count.
	NumHDonors() int

	// Crippen returns the Crippen lipophilicity estimate (cLogP) and the
	// molar refractivity from the same estimator.
	Crippen() (logP, mr float64)
}

// Size is the number of fields in a Vector.
const Size = 17

// Field indices into a Vector. The ten element-count fields are ordered
// by ascending alphabetical order of the element symbol.
const (
	FieldNumAtoms = iota
	FieldNumHeavyAtoms
	FieldNumB
	FieldNumBr
	FieldNumC
	FieldNumCl
	FieldNumF
	FieldNumI
	FieldNumN
	FieldNumO
	FieldNumP
	FieldNumS
	FieldNumHAcceptors
	FieldNumHDonors
	FieldCLogP
	FieldNumChiralCenters
	FieldNumRingSystems
)

// trackedElements maps the element-count fields, in field order, to
// atomic numbers: B, Br, C, Cl, F, I, N, O, P, S.
var trackedElements = [...]int{5, 35, 6, 17, 9, 53, 7, 8, 15, 16}

// Vector is the fixed-order descriptor vector of a structure. All fields
// are non-negative counts except FieldCLogP, which is real-valued.
type Vector [Size]float64

// Slice returns the vector as a freshly allocated slice.
func (v Vector) Slice() []float64 {
	out := make([]float64, Size)
	copy(out, v[:])
	return out
}

// Calculator computes descriptor vectors. The zero value is not usable;
// construct with New.
type Calculator struct {
	ringSystems func([]Ring) int
}

// Option configures a Calculator.
type Option func(*Calculator)

// WithConnectedRingSystems switches the ring-system field to the
// order-independent union-find count (ConnectedRingSystems) instead of the
// default single-pass count (RingSystems). The two differ only for ring
// orderings where a bridging ring appears after its neighbors.
func WithConnectedRingSystems() Option {
	return func(c *Calculator) {
		c.ringSystems = ConnectedRingSystems
	}
}

// New creates a Calculator.
func New(opts ...Option) *Calculator {
	c := &Calculator{
		ringSystems: RingSystems,
	}

	for _, fn := range opts {
		fn(c)
	}

	return c
}

// Calculate computes the descriptor vector for s.
//
// The structure is first prepared by materializing explicit hydrogens and
// assigning stereochemistry; failures from either toolkit call propagate
// unrecovered. Given the same structure, Calculate is deterministic.
func (c *Calculator) Calculate(s Structure) (Vector, error) {
	s, err := s.AddHydrogens()
	if err != nil {
		return Vector{}, fmt.Errorf("add hydrogens: %w", err)
	}

	s, err = s.AssignStereochemistry()
	if err != nil {
		return Vector{}, fmt.Errorf("assign stereochemistry: %w", err)
	}

	var v Vector
	v[FieldNumAtoms] = float64(s.NumAtoms())
	v[FieldNumHeavyAtoms] = float64(s.NumHeavyAtoms())

	counts := lo.CountValues(s.AtomicNums())
	for i, z := range trackedElements {
		v[FieldNumB+i] = float64(counts[z])
	}

	v[FieldNumHAcceptors] = float64(s.NumHAcceptors())
	v[FieldNumHDonors] = float64(s.NumHDonors())

	logP, _ := s.Crippen() // molar refractivity is not part of the vector
	v[FieldCLogP] = logP

	v[FieldNumChiralCenters] = float64(lo.CountBy(s.ChiralTags(), func(t ChiralTag) bool {
		return t == ChiralTetrahedralCW || t == ChiralTetrahedralCCW
	}))

	v[FieldNumRingSystems] = float64(c.ringSystems(s.Rings()))

	return v, nil
}
