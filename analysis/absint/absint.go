// Package absint computes a sound over-approximation of the reachable
// states of a toy-language program by abstract interpretation over the
// sign domain. The analysis is flow-insensitive at branches: both arms
// of every conditional are explored and their results joined.
package absint

import (
	"log"

	L "github.com/cs-au-dk/absign/analysis/lattice"
	"github.com/cs-au-dk/absign/lang"
)

// AnalysisCtxt bundles the knobs of a single analysis run.
type AnalysisCtxt struct {
	// Refinement restricts abstract memories under known path conditions.
	Refinement Refinement
	// MaxIterations bounds every fixpoint computation of the run.
	// 0 disables the bound. The sign and memory lattices have finite
	// height, so the bound only triggers for genuinely diverging
	// transformers, e.g. ones operating outside the analyzed program's
	// variables.
	MaxIterations uint
	// Observer, when set, receives every fixpoint iterate before the
	// convergence test.
	Observer func(iteration int, mem L.Memory)
}

// DefaultCtxt is the baseline analysis context: no condition
// refinement, no iteration bound, no observer.
func DefaultCtxt() AnalysisCtxt {
	return AnalysisCtxt{Refinement: NoRefinement{}}
}

// Analyze runs prog from the ⊥ memory with the default context. The
// result maps every assigned variable to a sign describing all its
// possible run-time values.
func Analyze(prog lang.Statement) L.Memory {
	mem, err := DefaultCtxt().Analyze(prog)
	if err != nil {
		// Unreachable: the default context has no iteration bound.
		log.Fatalln("Analysis failed:", err)
	}
	return mem
}

// Analyze runs prog from the ⊥ memory.
func (C AnalysisCtxt) Analyze(prog lang.Statement) (L.Memory, error) {
	return C.statement(prog, L.Consts().BotMemory())
}

// EvaluateExpression computes the abstract value of e in mem.
func EvaluateExpression(e lang.Expression, mem L.Memory) L.Sign {
	switch e := e.(type) {
	case lang.Number:
		return L.Elements().Abstract(e.Value)
	case lang.Variable:
		return mem.Get(e.Name)
	case lang.Add:
		return EvaluateExpression(e.Left, mem).Plus(EvaluateExpression(e.Right, mem))
	case lang.Equal:
		return EvaluateExpression(e.Left, mem).Equals(EvaluateExpression(e.Right, mem))
	case lang.Less:
		return EvaluateExpression(e.Left, mem).LessThan(EvaluateExpression(e.Right, mem))
	case lang.Not:
		return EvaluateExpression(e.Operand, mem).TruthNot()
	default:
		panic(errPatternMatch(e))
	}
}

// statement transforms mem through s.
func (C AnalysisCtxt) statement(s lang.Statement, mem L.Memory) (L.Memory, error) {
	switch s := s.(type) {
	case lang.Read:
		// External input is maximally unknown.
		return mem.Update(s.Name, L.Consts().Top()), nil

	case lang.Write:
		// Output does not affect the analyzed state.
		return mem, nil

	case lang.Assign:
		return mem.Update(s.Name, EvaluateExpression(s.Expr, mem)), nil

	case lang.Seq:
		mem, err := C.statement(s.First, mem)
		if err != nil {
			return mem, err
		}
		return C.statement(s.Second, mem)

	case lang.If:
		thn, err := C.statement(s.Then, C.Refinement.Refine(s.Cond, mem))
		if err != nil {
			return thn, err
		}
		els, err := C.statement(s.Else, C.Refinement.Refine(lang.Not{Operand: s.Cond}, mem))
		if err != nil {
			return els, err
		}
		return thn.MonoJoin(els), nil

	case lang.While:
		inv, err := C.Fixpoint(func(mem L.Memory) (L.Memory, error) {
			return C.statement(s.Body, mem)
		}, C.Refinement.Refine(s.Cond, mem))
		if err != nil {
			return inv, err
		}
		// Runs that never enter the loop reach the exit with the entry
		// memory, so the exit condition is refined against its join
		// with the loop invariant.
		return C.Refinement.Refine(lang.Not{Operand: s.Cond}, mem.MonoJoin(inv)), nil

	default:
		panic(errPatternMatch(s))
	}
}
