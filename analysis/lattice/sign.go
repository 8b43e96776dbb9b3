package lattice

// signTag discriminates the five members of the sign lattice.
type signTag uint8

const (
	tagBot signTag = iota
	tagNegative
	tagZero
	tagPositive
	tagTop
)

// Sign is a member of the sign lattice. The zero value is ⊥.
type Sign struct {
	element
	tag signTag
}

// Sign elements carry no state beyond their tag, so the five members
// are shared singletons.
var (
	signBot      = Sign{element{signLattice}, tagBot}
	signNegative = Sign{element{signLattice}, tagNegative}
	signZero     = Sign{element{signLattice}, tagZero}
	signPositive = Sign{element{signLattice}, tagPositive}
	signTop      = Sign{element{signLattice}, tagTop}
)

// Abstract is the abstraction function α, mapping a concrete integer
// to the sign element that describes it.
func (elementFactory) Abstract(n int) Sign {
	switch {
	case n < 0:
		return signNegative
	case n > 0:
		return signPositive
	default:
		return signZero
	}
}

// Sign safely converts to a sign element.
func (e Sign) Sign() Sign {
	return e
}

// IsBot checks whether the sign element is ⊥.
func (e Sign) IsBot() bool {
	return e.tag == tagBot
}

// IsTop checks whether the sign element is ⊤.
func (e Sign) IsTop() bool {
	return e.tag == tagTop
}

// Symbol returns the fixed, uncolored display symbol of the element.
func (e Sign) Symbol() string {
	switch e.tag {
	case tagBot:
		return "Bot"
	case tagNegative:
		return "-"
	case tagZero:
		return "0"
	case tagPositive:
		return "+"
	case tagTop:
		return "Top"
	default:
		panic(errPatternMatch(e.tag))
	}
}

func (e Sign) String() string {
	return colorize.Element(e.Symbol())
}

// Height is 0 for ⊥, 2 for ⊤ and 1 for the sign elements.
func (e Sign) Height() int {
	switch e.tag {
	case tagBot:
		return 0
	case tagTop:
		return 2
	default:
		return 1
	}
}

// Leq computes s1 ⊑ s2. Performs lattice dynamic type checking.
func (e1 Sign) Leq(e2 Element) bool {
	checkLatticeMatch(e1.lattice, e2.Lattice(), "⊑")
	return e1.leq(e2)
}

// leq computes s1 ⊑ s2.
func (e1 Sign) leq(e2 Element) bool {
	switch e2 := e2.(type) {
	case Sign:
		switch {
		case e1.tag == tagBot:
			return true
		case e2.tag == tagTop:
			return true
		default:
			return e1.tag == e2.tag
		}
	default:
		panic(errPatternMatch(e2))
	}
}

// Geq computes s1 ⊒ s2. Performs lattice dynamic type checking.
func (e1 Sign) Geq(e2 Element) bool {
	checkLatticeMatch(e1.lattice, e2.Lattice(), "⊒")
	return e1.geq(e2)
}

// geq computes s1 ⊒ s2.
func (e1 Sign) geq(e2 Element) bool {
	switch e2 := e2.(type) {
	case Sign:
		return e2.leq(e1)
	default:
		panic(errPatternMatch(e2))
	}
}

// Eq computes s1 = s2. Performs lattice dynamic type checking.
func (e1 Sign) Eq(e2 Element) bool {
	checkLatticeMatch(e1.lattice, e2.Lattice(), "=")
	return e1.eq(e2)
}

// eq computes s1 = s2.
func (e1 Sign) eq(e2 Element) bool {
	switch e2 := e2.(type) {
	case Sign:
		return e1.tag == e2.tag
	default:
		panic(errPatternMatch(e2))
	}
}

// Join computes s1 ⊔ s2. Performs lattice dynamic type checking.
func (e1 Sign) Join(e2 Element) Element {
	checkLatticeMatch(e1.Lattice(), e2.Lattice(), "⊔")
	return e1.join(e2)
}

// join computes s1 ⊔ s2.
func (e1 Sign) join(e2 Element) Element {
	switch e2 := e2.(type) {
	case Sign:
		return e1.MonoJoin(e2)
	default:
		panic(errPatternMatch(e2))
	}
}

// MonoJoin is a monomorphic variant of s1 ⊔ s2 for sign elements.
func (e1 Sign) MonoJoin(e2 Sign) Sign {
	switch {
	case e1.tag == e2.tag:
		return e1
	case e1.tag == tagBot:
		return e2
	case e2.tag == tagBot:
		return e1
	default:
		return signTop
	}
}

// Meet computes s1 ⊓ s2. Performs lattice dynamic type checking.
func (e1 Sign) Meet(e2 Element) Element {
	checkLatticeMatch(e1.Lattice(), e2.Lattice(), "⊓")
	return e1.meet(e2)
}

// meet computes s1 ⊓ s2.
func (e1 Sign) meet(e2 Element) Element {
	switch e2 := e2.(type) {
	case Sign:
		return e1.MonoMeet(e2)
	default:
		panic(errPatternMatch(e2))
	}
}

// MonoMeet is a monomorphic variant of s1 ⊓ s2 for sign elements.
func (e1 Sign) MonoMeet(e2 Sign) Sign {
	switch {
	case e1.tag == e2.tag:
		return e1
	case e1.tag == tagTop:
		return e2
	case e2.tag == tagTop:
		return e1
	default:
		return signBot
	}
}
