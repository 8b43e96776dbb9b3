package lattice

import "testing"

func TestFactories(t *testing.T) {
	if l := Create().Lattice().Sign(); !l.Eq(signLattice) {
		t.Errorf("Create().Lattice().Sign() = %s, expected the sign lattice singleton", l)
	}
	if l := Create().Lattice().Memory(); !l.Eq(memoryLattice) {
		t.Errorf("Create().Lattice().Memory() = %s, expected the memory lattice singleton", l)
	}
	if e := Create().Element().Abstract(-5); !e.eq(signNegative) {
		t.Errorf("Create().Element().Abstract(-5) = %s, expected %s", e, signNegative)
	}
	if m := Create().Element().Memory(map[string]Sign{"a": signZero}); !m.Get("a").eq(signZero) {
		t.Errorf("Create().Element().Memory bound a to %s, expected %s", m.Get("a"), signZero)
	}
}
