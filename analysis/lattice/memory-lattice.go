package lattice

// MemoryLattice represents the lattice of abstract memories: the
// pointwise lift of the sign lattice over the unbounded domain of
// variable names. A variable without a binding is implicitly bound
// to sign ⊥, so the empty memory is the ⊥ element.
type MemoryLattice struct {
	lattice
}

// memoryLattice is a singleton instantiation of the memory lattice.
var memoryLattice = &MemoryLattice{}

// Memory returns the memory lattice.
func (latticeFactory) Memory() *MemoryLattice {
	return memoryLattice
}

// Top is unsupported: the variable domain is unbounded, so the memory
// lattice has no representable ⊤ element.
func (*MemoryLattice) Top() Element {
	panic(errUnsupportedOperation)
}

// Bot retrieves the ⊥ element of the memory lattice, the empty memory.
func (*MemoryLattice) Bot() Element {
	return memBot
}

// Memory converts the memory lattice to its concrete type form.
// Is used when the memory lattice is masked by the Lattice interface.
func (*MemoryLattice) Memory() *MemoryLattice {
	// Will always succeed.
	return memoryLattice
}

// Eq checks that l2 is the memory lattice.
func (l1 *MemoryLattice) Eq(l2 Lattice) bool {
	// First try to get away with referential equality
	if l1 == l2 {
		return true
	}
	_, ok := l2.(*MemoryLattice)
	return ok
}

func (*MemoryLattice) String() string {
	return colorize.Lattice("Memory")
}
