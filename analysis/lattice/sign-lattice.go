package lattice

// SignLattice represents the five-element sign lattice over the
// integers:
//
//	    ⊤
//	  ╱ | ╲
//	 -  0  +
//	  ╲ | ╱
//	    ⊥
//
// The three sign elements are mutually incomparable.
type SignLattice struct {
	lattice
}

// signLattice is a singleton instantiation of the sign lattice.
var signLattice = &SignLattice{}

// Sign returns the sign lattice.
func (latticeFactory) Sign() *SignLattice {
	return signLattice
}

// Top retrieves the ⊤ element of the sign lattice.
func (*SignLattice) Top() Element {
	return signTop
}

// Bot retrieves the ⊥ element of the sign lattice.
func (*SignLattice) Bot() Element {
	return signBot
}

// Sign converts the sign lattice to its concrete type form.
// Is used when the sign lattice is masked by the Lattice interface.
func (*SignLattice) Sign() *SignLattice {
	// Will always succeed.
	return signLattice
}

// Eq checks that l2 is the sign lattice.
func (l1 *SignLattice) Eq(l2 Lattice) bool {
	// First try to get away with referential equality
	if l1 == l2 {
		return true
	}
	_, ok := l2.(*SignLattice)
	return ok
}

func (*SignLattice) String() string {
	return colorize.Lattice("Sign")
}
