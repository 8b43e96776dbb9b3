package lattice

import "testing"

func TestMemoryComparison(t *testing.T) {
	aP := elFact.Memory(map[string]Sign{"a": signPositive})
	bN := elFact.Memory(map[string]Sign{"b": signNegative})
	abPN := elFact.Memory(map[string]Sign{"a": signPositive, "b": signNegative})
	aT := elFact.Memory(map[string]Sign{"a": signTop})
	aBot := elFact.Memory(map[string]Sign{"a": signBot})

	tests := []struct {
		a, b      Element
		predicate func(Element) bool
		symbol    string
		expected  bool
	}{
		{memBot, memBot, memBot.Leq, "⊑", true},
		{memBot, aP, memBot.Leq, "⊑", true},
		{aP, memBot, aP.Leq, "⊑", false},
		{aP, aP, aP.Leq, "⊑", true},
		{aP, abPN, aP.Leq, "⊑", true},
		{bN, abPN, bN.Leq, "⊑", true},
		{abPN, aP, abPN.Leq, "⊑", false},
		{aP, aT, aP.Leq, "⊑", true},
		{aT, aP, aT.Leq, "⊑", false},
		{aP, bN, aP.Leq, "⊑", false},
		{abPN, aP, abPN.Geq, "⊒", true},
		{aP, abPN, aP.Geq, "⊒", false},
		// An explicit ⊥ binding is the same as no binding.
		{aBot, memBot, aBot.Eq, "=", true},
		{aP, aP, aP.Eq, "=", true},
		{aP, aT, aP.Eq, "=", false},
	}

	for _, test := range tests {
		res := test.predicate(test.b)
		if res != test.expected {
			t.Errorf("%s %s %s = %v, expected %v\n", test.a, test.symbol, test.b, res, test.expected)
		} else {
			t.Logf("%s %s %s = %v\n", test.a, test.symbol, test.b, res)
		}
	}
}

func TestMemoryJoin(t *testing.T) {
	aP := elFact.Memory(map[string]Sign{"a": signPositive})
	aN := elFact.Memory(map[string]Sign{"a": signNegative})
	bN := elFact.Memory(map[string]Sign{"b": signNegative})
	abPN := elFact.Memory(map[string]Sign{"a": signPositive, "b": signNegative})
	aT := elFact.Memory(map[string]Sign{"a": signTop})

	tests := []struct {
		a, b, expected Memory
	}{
		{memBot, memBot, memBot},
		{memBot, aP, aP},
		{aP, memBot, aP},
		{aP, aP, aP},
		{aP, bN, abPN},
		{bN, aP, abPN},
		{aP, aN, aT},
		{aP, abPN, abPN},
		{aT, abPN, elFact.Memory(map[string]Sign{"a": signTop, "b": signNegative})},
	}

	for _, test := range tests {
		res := test.a.MonoJoin(test.b)
		if !res.Eq(test.expected) {
			t.Errorf("%s ⊔ %s = %s, expected %s\n", test.a, test.b, res, test.expected)
		} else {
			t.Logf("%s ⊔ %s = %s\n", test.a, test.b, res)
		}
	}

	// The join is an upper bound of both operands.
	mems := []Memory{memBot, aP, aN, bN, abPN, aT}
	for _, m1 := range mems {
		for _, m2 := range mems {
			joined := m1.MonoJoin(m2)
			if !m1.Leq(joined) || !m2.Leq(joined) {
				t.Errorf("%s ⊔ %s = %s is not an upper bound", m1, m2, joined)
			}
		}
	}
}

func TestMemoryUpdate(t *testing.T) {
	m1 := elFact.Memory(map[string]Sign{"a": signPositive})

	m2 := m1.Update("b", signNegative)
	if expected := elFact.Memory(map[string]Sign{
		"a": signPositive,
		"b": signNegative,
	}); !m2.Eq(expected) {
		t.Errorf("%s[ b ↦ %s ] = %s, expected %s", m1, signNegative, m2, expected)
	}

	m3 := m2.Update("a", signZero)
	if res := m3.Get("a"); !res.eq(signZero) {
		t.Errorf("overwriting binding a yielded %s, expected %s", res, signZero)
	}

	// Memories are persistent; updates must not affect the original.
	if res := m1.Get("b"); !res.IsBot() {
		t.Errorf("update leaked into the original memory: b ↦ %s", res)
	}
	if res := m2.Get("a"); !res.eq(signPositive) {
		t.Errorf("overwrite leaked into the intermediate memory: a ↦ %s", res)
	}
}

func TestMemoryGet(t *testing.T) {
	m := elFact.Memory(map[string]Sign{"a": signPositive})

	// Unbound variables are implicitly ⊥, never an error.
	if res := m.Get("zzz"); !res.IsBot() {
		t.Errorf("lookup of an unbound variable yielded %s, expected ⊥", res)
	}
	if _, found := m.GetOk("zzz"); found {
		t.Error("GetOk claimed a binding for an unbound variable")
	}
	if res, found := m.GetOk("a"); !found || !res.eq(signPositive) {
		t.Errorf("GetOk(a) = %s, %v, expected %s, true", res, found, signPositive)
	}
}

func TestMemoryHeight(t *testing.T) {
	tests := []struct {
		m        Memory
		expected int
	}{
		{memBot, 0},
		{elFact.Memory(map[string]Sign{"a": signPositive}), 1},
		{elFact.Memory(map[string]Sign{"a": signTop, "b": signZero}), 3},
	}

	for _, test := range tests {
		if h := test.m.Height(); h != test.expected {
			t.Errorf("height of %s = %d, expected %d", test.m, h, test.expected)
		}
	}
}
