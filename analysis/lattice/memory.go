package lattice

import (
	"fmt"
	"sort"

	i "github.com/cs-au-dk/absign/utils/indenter"

	"github.com/benbjohnson/immutable"
)

// Memory is a member of the memory lattice: a persistent finite
// mapping from variable names to sign elements. Memories are
// immutable; updates return fresh memories sharing structure with
// the original.
type Memory struct {
	element
	mp *immutable.Map[string, Sign]
}

// memBot is the empty memory, the ⊥ element of the memory lattice.
var memBot = Memory{element{memoryLattice}, immutable.NewMap[string, Sign](nil)}

// Memory creates a memory from the given bindings. A nil bindings map
// yields ⊥, the empty memory.
func (elementFactory) Memory(bindings map[string]Sign) Memory {
	el := memBot
	for x, v := range bindings {
		el.mp = el.mp.Set(x, v)
	}
	return el
}

// Memory safely converts to a memory element.
func (m Memory) Memory() Memory {
	return m
}

// Size returns the number of bindings in the memory.
func (m Memory) Size() int {
	return m.mp.Len()
}

// Get returns the sign bound to x, or ⊥ if x is unbound. An unbound
// variable models "never assigned along this path" and is not an error.
func (m Memory) Get(x string) Sign {
	if v, found := m.mp.Get(x); found {
		return v
	}
	return signBot
}

// GetOk returns the sign bound to x. The boolean indicates whether an
// explicit binding was found.
func (m Memory) GetOk(x string) (Sign, bool) {
	return m.mp.Get(x)
}

// Update binds x to v, overwriting any previous binding.
func (m Memory) Update(x string, v Sign) Memory {
	m.mp = m.mp.Set(x, v)
	return m
}

// ForEach visits every explicit binding in unspecified order.
func (m Memory) ForEach(do func(x string, v Sign)) {
	for iter := m.mp.Iterator(); !iter.Done(); {
		x, v, _ := iter.Next()
		do(x, v)
	}
}

// Keys returns the explicitly bound variable names in sorted order.
func (m Memory) Keys() []string {
	keys := make([]string, 0, m.Size())
	m.ForEach(func(x string, _ Sign) {
		keys = append(keys, x)
	})
	sort.Strings(keys)
	return keys
}

// Height is the sum of the heights of all bound signs.
func (m Memory) Height() (h int) {
	m.ForEach(func(_ string, v Sign) {
		h += v.Height()
	})
	return
}

// Leq computes m1 ⊑ m2. Performs lattice dynamic type checking.
func (e1 Memory) Leq(e2 Element) bool {
	checkLatticeMatch(e1.lattice, e2.Lattice(), "⊑")
	return e1.leq(e2)
}

// leq computes m1 ⊑ m2: every binding of m1 must be ⊑ the
// corresponding binding of m2, where unbound variables count as ⊥.
func (e1 Memory) leq(e2 Element) bool {
	switch e2 := e2.(type) {
	case Memory:
		res := true
		e1.ForEach(func(x string, v Sign) {
			res = res && v.leq(e2.Get(x))
		})
		return res
	default:
		panic(errPatternMatch(e2))
	}
}

// Geq computes m1 ⊒ m2. Performs lattice dynamic type checking.
func (e1 Memory) Geq(e2 Element) bool {
	checkLatticeMatch(e1.lattice, e2.Lattice(), "⊒")
	return e1.geq(e2)
}

// geq computes m1 ⊒ m2.
func (e1 Memory) geq(e2 Element) bool {
	switch e2 := e2.(type) {
	case Memory:
		return e2.leq(e1)
	default:
		panic(errPatternMatch(e2))
	}
}

// Eq computes m1 = m2. Performs lattice dynamic type checking.
func (e1 Memory) Eq(e2 Element) bool {
	checkLatticeMatch(e1.lattice, e2.Lattice(), "=")
	return e1.eq(e2)
}

// eq computes m1 = m2, pointwise equality modulo ⊥ bindings.
func (e1 Memory) eq(e2 Element) bool {
	return e1.leq(e2) && e1.geq(e2)
}

// Join computes m1 ⊔ m2. Performs lattice dynamic type checking.
func (e1 Memory) Join(e2 Element) Element {
	checkLatticeMatch(e1.Lattice(), e2.Lattice(), "⊔")
	return e1.join(e2)
}

// join computes m1 ⊔ m2.
func (e1 Memory) join(e2 Element) Element {
	switch e2 := e2.(type) {
	case Memory:
		return e1.MonoJoin(e2)
	default:
		panic(errPatternMatch(e2))
	}
}

// MonoJoin is a monomorphic variant of m1 ⊔ m2 for memories. The
// result is defined over the union of the bound variables, each bound
// to the join of its signs in the two memories.
func (e1 Memory) MonoJoin(e2 Memory) Memory {
	switch {
	case e1.Size() == 0:
		return e2
	case e2.Size() == 0:
		return e1
	case e1.mp == e2.mp:
		return e1
	case e1.Size() < e2.Size():
		e1, e2 = e2, e1
	}

	e2.ForEach(func(x string, v Sign) {
		prev := e1.Get(x)
		if !v.eq(prev) {
			e1 = e1.Update(x, v.MonoJoin(prev))
		}
	})

	return e1
}

// Meet computes m1 ⊓ m2. Performs lattice dynamic type checking.
func (e1 Memory) Meet(e2 Element) Element {
	checkLatticeMatch(e1.Lattice(), e2.Lattice(), "⊓")
	return e1.meet(e2)
}

// meet computes m1 ⊓ m2.
func (e1 Memory) meet(e2 Element) Element {
	switch e2 := e2.(type) {
	case Memory:
		return e1.MonoMeet(e2)
	default:
		panic(errPatternMatch(e2))
	}
}

// MonoMeet is a monomorphic variant of m1 ⊓ m2 for memories.
func (e1 Memory) MonoMeet(e2 Memory) Memory {
	res := memBot
	e1.ForEach(func(x string, v Sign) {
		if met := v.MonoMeet(e2.Get(x)); !met.IsBot() {
			res = res.Update(x, met)
		}
	})
	return res
}

func (m Memory) String() string {
	name := m.Lattice().String()
	if m.Size() == 0 {
		return name + ": Empty"
	}

	buf := make([]func() string, 0, m.Size())
	for _, x := range m.Keys() {
		x := x
		v := m.Get(x)
		buf = append(buf, func() string {
			return fmt.Sprintf("%s ↦ %s", colorize.Key(x), v)
		})
	}

	return i.Indenter().Start(name + ": {").NestThunkedSep(",", buf...).End("}")
}
