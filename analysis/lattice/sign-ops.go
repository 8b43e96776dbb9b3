package lattice

// Abstract operators of the sign domain. Every operator is ⊥-dominant:
// ⊥ describes no concrete integer, so no result can be observed.
// ⊤ propagates next, before the sign tables apply.
//
// Comparison operators yield truth signs. The language has no separate
// boolean type; zero is the only false value, so "definitely false"
// is 0 and "true" is +.

// Plus computes the abstract sum s1 + s2. Adding zero is neutral,
// equal signs are preserved, and opposite signs lose all information.
func (e1 Sign) Plus(e2 Sign) Sign {
	switch {
	case e1.tag == tagBot || e2.tag == tagBot:
		return signBot
	case e1.tag == tagTop || e2.tag == tagTop:
		return signTop
	case e1.tag == tagZero:
		return e2
	case e2.tag == tagZero:
		return e1
	case e1.tag == e2.tag:
		return e1
	default:
		return signTop
	}
}

// Equals computes the truth sign of s1 == s2. Two integers described
// by the same sign may be equal; integers of distinct signs cannot.
func (e1 Sign) Equals(e2 Sign) Sign {
	switch {
	case e1.tag == tagBot || e2.tag == tagBot:
		return signBot
	case e1.tag == tagTop || e2.tag == tagTop:
		return signTop
	case e1.tag == e2.tag:
		return signPositive
	default:
		return signZero
	}
}

// LessThan computes the truth sign of s1 < s2 according to the
// concrete truth table on signs. Comparisons within the same nonzero
// sign are undetermined.
func (e1 Sign) LessThan(e2 Sign) Sign {
	switch {
	case e1.tag == tagBot || e2.tag == tagBot:
		return signBot
	case e1.tag == tagTop || e2.tag == tagTop:
		return signTop
	case e1.tag == tagNegative && e2.tag != tagNegative:
		return signPositive
	case e1.tag == tagZero && e2.tag == tagPositive:
		return signPositive
	case e1.tag == tagZero && e2.tag != tagPositive:
		return signZero
	case e1.tag == tagPositive && e2.tag != tagPositive:
		return signZero
	default:
		// - < -  and  + < +
		return signTop
	}
}

// TruthNot computes the truth sign of !s. Only zero is false, so any
// nonzero sign, including -, negates to 0.
func (e Sign) TruthNot() Sign {
	switch e.tag {
	case tagBot:
		return signBot
	case tagTop:
		return signTop
	case tagZero:
		return signPositive
	default:
		return signZero
	}
}
