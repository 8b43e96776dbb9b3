package absint

import (
	L "github.com/cs-au-dk/absign/analysis/lattice"
	"github.com/cs-au-dk/absign/lang"
)

// Refinement refines an abstract memory under the assumption that a
// condition holds. Implementations must be sound: no concrete state
// satisfying the condition may be dropped. Refinement only affects
// precision, never soundness, so the identity is always a valid
// implementation.
type Refinement interface {
	// Refine returns an approximation of mem restricted to the states
	// in which cond evaluates to true.
	Refine(cond lang.Expression, mem L.Memory) L.Memory
}

// NoRefinement is the identity refinement. It is the default and the
// main precision-limiting choice of the analysis: without it, branch
// and loop conditions contribute no information to the memories they
// guard.
type NoRefinement struct{}

func (NoRefinement) Refine(cond lang.Expression, mem L.Memory) L.Memory {
	return mem
}

// MeetRefinement narrows variables that occur directly in a condition
// by meeting their sign with the sign the condition forces on them.
// Conditions it cannot decompose refine to the identity.
type MeetRefinement struct{}

func (r MeetRefinement) Refine(cond lang.Expression, mem L.Memory) L.Memory {
	switch cond := cond.(type) {
	case lang.Variable:
		// cond is true-ish, i.e. nonzero. The nonzero signs have no
		// upper bound below ⊤, so only a definitely-zero binding can
		// be narrowed, to the unreachable ⊥.
		if mem.Get(cond.Name).Eq(L.Consts().Zero()) {
			return mem.Update(cond.Name, L.Consts().Bot())
		}
		return mem

	case lang.Equal:
		return refineEqual(cond.Left, cond.Right, mem)

	case lang.Less:
		return refineLess(cond.Left, cond.Right, mem)

	case lang.Not:
		return r.refineNegated(cond.Operand, mem)

	default:
		return mem
	}
}

// refineNegated refines mem under the assumption that cond is false.
func (r MeetRefinement) refineNegated(cond lang.Expression, mem L.Memory) L.Memory {
	switch cond := cond.(type) {
	case lang.Variable:
		// cond is false, so the variable is zero.
		return meetVariable(cond.Name, L.Consts().Zero(), mem)

	case lang.Not:
		// Double negation only cancels for truth values produced by
		// comparisons; the operand itself may be any nonzero integer.
		// Restricting to its truthiness is still sound.
		return r.Refine(cond.Operand, mem)

	case lang.Less:
		return refineGeq(cond.Left, cond.Right, mem)

	default:
		// A failed equality carries no sign information: the
		// complement of a single sign is not expressible below ⊤.
		return mem
	}
}

// refineEqual refines mem under e1 == e2, narrowing any directly
// occurring variable to the meet with the other side's sign.
func refineEqual(e1, e2 lang.Expression, mem L.Memory) L.Memory {
	v1 := EvaluateExpression(e1, mem)
	v2 := EvaluateExpression(e2, mem)

	if x, ok := e1.(lang.Variable); ok {
		mem = meetVariable(x.Name, v2, mem)
	}
	if y, ok := e2.(lang.Variable); ok {
		mem = meetVariable(y.Name, v1, mem)
	}
	return mem
}

// refineLess refines mem under e1 < e2. The sign domain can only
// express the consequence when the bound side has a definite sign:
// anything below a non-positive value is negative, and anything above
// a non-negative value is positive.
func refineLess(e1, e2 lang.Expression, mem L.Memory) L.Memory {
	zero, neg, pos := L.Consts().Zero(), L.Consts().Negative(), L.Consts().Positive()

	if x, ok := e1.(lang.Variable); ok {
		if bound := EvaluateExpression(e2, mem); bound.Eq(neg) || bound.Eq(zero) {
			mem = meetVariable(x.Name, neg, mem)
		}
	}
	if y, ok := e2.(lang.Variable); ok {
		if bound := EvaluateExpression(e1, mem); bound.Eq(pos) || bound.Eq(zero) {
			mem = meetVariable(y.Name, pos, mem)
		}
	}
	return mem
}

// refineGeq refines mem under e1 >= e2, the negation of e1 < e2.
func refineGeq(e1, e2 lang.Expression, mem L.Memory) L.Memory {
	neg, pos := L.Consts().Negative(), L.Consts().Positive()

	if x, ok := e1.(lang.Variable); ok {
		// x >= (something positive) forces x positive. A zero bound
		// only forces non-negativity, which the domain cannot express.
		if EvaluateExpression(e2, mem).Eq(pos) {
			mem = meetVariable(x.Name, pos, mem)
		}
	}
	if y, ok := e2.(lang.Variable); ok {
		if EvaluateExpression(e1, mem).Eq(neg) {
			mem = meetVariable(y.Name, neg, mem)
		}
	}
	return mem
}

func meetVariable(x string, v L.Sign, mem L.Memory) L.Memory {
	return mem.Update(x, mem.Get(x).MonoMeet(v))
}
