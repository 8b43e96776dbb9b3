package absint

import (
	L "github.com/cs-au-dk/absign/analysis/lattice"
)

// Fixpoint computes a memory above m0 that is stable under f, by
// Kleene iteration with an accumulating join:
//
//	m ← m ⊔ f(m), until f(m) ⊑ m
//
// Every non-final iterate strictly increases in the memory lattice,
// and the lattice height is finite in the variables f touches, so the
// iteration terminates whenever f stays within a finite variable set.
// The configured MaxIterations bound guards against transformers that
// do not.
func (C AnalysisCtxt) Fixpoint(f func(L.Memory) (L.Memory, error), m0 L.Memory) (L.Memory, error) {
	mem := m0
	for iteration := 1; ; iteration++ {
		if C.Observer != nil {
			C.Observer(iteration, mem)
		}

		next, err := f(mem)
		if err != nil {
			return mem, err
		}
		if next.Leq(mem) {
			return mem, nil
		}

		mem = mem.MonoJoin(next)

		if C.MaxIterations > 0 && uint(iteration) >= C.MaxIterations {
			return mem, ErrFixpointDiverged
		}
	}
}
