package lattice

import "testing"

func allSigns() []Sign {
	return []Sign{signBot, signNegative, signZero, signPositive, signTop}
}

func TestSignComparison(t *testing.T) {
	for _, s := range allSigns() {
		if !signBot.leq(s) {
			t.Errorf("⊥ ⊑ %s = false, expected true", s)
		}
		if !s.leq(signTop) {
			t.Errorf("%s ⊑ Top = false, expected true", s)
		}
		if !s.leq(s) {
			t.Errorf("%s ⊑ %s = false, expected true", s, s)
		}
	}

	// The sign elements are mutually incomparable.
	distinct := []Sign{signNegative, signZero, signPositive}
	for _, a := range distinct {
		for _, b := range distinct {
			if a.tag == b.tag {
				continue
			}
			if a.Leq(b) {
				t.Errorf("%s ⊑ %s = true, expected false", a, b)
			}
		}
	}

	// Transitivity, by enumeration.
	for _, a := range allSigns() {
		for _, b := range allSigns() {
			for _, c := range allSigns() {
				if a.leq(b) && b.leq(c) && !a.leq(c) {
					t.Errorf("⊑ is not transitive on %s, %s, %s", a, b, c)
				}
			}
		}
	}

	// Antisymmetry, by enumeration.
	for _, a := range allSigns() {
		for _, b := range allSigns() {
			if a.leq(b) && b.leq(a) && !a.eq(b) {
				t.Errorf("⊑ is not antisymmetric on %s, %s", a, b)
			}
		}
	}
}

func TestSignJoin(t *testing.T) {
	tests := []struct {
		a, b, expected Sign
	}{
		{signBot, signBot, signBot},
		{signBot, signNegative, signNegative},
		{signBot, signTop, signTop},
		{signZero, signZero, signZero},
		{signNegative, signZero, signTop},
		{signNegative, signPositive, signTop},
		{signZero, signPositive, signTop},
		{signPositive, signTop, signTop},
		{signTop, signTop, signTop},
	}

	for _, test := range tests {
		for _, pair := range [][2]Sign{{test.a, test.b}, {test.b, test.a}} {
			res := pair[0].MonoJoin(pair[1])
			if !res.eq(test.expected) {
				t.Errorf("%s ⊔ %s = %s, expected %s", pair[0], pair[1], res, test.expected)
			} else {
				t.Logf("%s ⊔ %s = %s", pair[0], pair[1], res)
			}
		}
	}

	// The join is an upper bound of both operands.
	for _, a := range allSigns() {
		for _, b := range allSigns() {
			joined := a.MonoJoin(b)
			if !a.leq(joined) || !b.leq(joined) {
				t.Errorf("%s ⊔ %s = %s is not an upper bound", a, b, joined)
			}
		}
	}
}

func TestSignMeet(t *testing.T) {
	tests := []struct {
		a, b, expected Sign
	}{
		{signTop, signNegative, signNegative},
		{signTop, signTop, signTop},
		{signZero, signZero, signZero},
		{signNegative, signPositive, signBot},
		{signZero, signPositive, signBot},
		{signBot, signPositive, signBot},
	}

	for _, test := range tests {
		for _, pair := range [][2]Sign{{test.a, test.b}, {test.b, test.a}} {
			res := pair[0].MonoMeet(pair[1])
			if !res.eq(test.expected) {
				t.Errorf("%s ⊓ %s = %s, expected %s", pair[0], pair[1], res, test.expected)
			}
		}
	}

	// The meet is a lower bound of both operands.
	for _, a := range allSigns() {
		for _, b := range allSigns() {
			met := a.MonoMeet(b)
			if !met.leq(a) || !met.leq(b) {
				t.Errorf("%s ⊓ %s = %s is not a lower bound", a, b, met)
			}
		}
	}
}

func TestAbstraction(t *testing.T) {
	tests := []struct {
		n        int
		expected Sign
	}{
		{-42, signNegative},
		{-1, signNegative},
		{0, signZero},
		{1, signPositive},
		{1000, signPositive},
	}

	for _, test := range tests {
		if res := elFact.Abstract(test.n); !res.eq(test.expected) {
			t.Errorf("α(%d) = %s, expected %s", test.n, res, test.expected)
		}
	}
}

// boolSign encodes a concrete truth value the way the language does:
// true is 1, false is 0.
func boolSign(b bool) Sign {
	if b {
		return elFact.Abstract(1)
	}
	return elFact.Abstract(0)
}

func TestSignOperatorSoundness(t *testing.T) {
	samples := []int{-7, -3, -1, 0, 1, 2, 5, 11}

	for _, a := range samples {
		for _, b := range samples {
			sa, sb := elFact.Abstract(a), elFact.Abstract(b)

			if res := sa.Plus(sb); !elFact.Abstract(a + b).leq(res) {
				t.Errorf("α(%d) + α(%d) = %s does not describe %d", a, b, res, a+b)
			}
			// Comparison results are truth signs. A concretely true
			// outcome must be described by a true-ish result. Equals
			// also answers + ("possibly true") for unequal values of
			// the same sign, so only its true outcomes are constrained.
			if res := sa.Equals(sb); a == b && !boolSign(true).leq(res) {
				t.Errorf("α(%d) == α(%d) = %s does not describe %v", a, b, res, a == b)
			}
			if res := sa.LessThan(sb); !boolSign(a < b).leq(res) {
				t.Errorf("α(%d) < α(%d) = %s does not describe %v", a, b, res, a < b)
			}
			if res := sa.TruthNot(); !boolSign(a == 0).leq(res) {
				t.Errorf("!α(%d) = %s does not describe %v", a, res, a == 0)
			}
		}
	}
}

func TestSignOperators(t *testing.T) {
	tests := []struct {
		op       string
		a, b     Sign
		expected Sign
	}{
		{"+", signPositive, signPositive, signPositive},
		{"+", signPositive, signZero, signPositive},
		{"+", signNegative, signZero, signNegative},
		{"+", signZero, signZero, signZero},
		{"+", signPositive, signNegative, signTop},
		{"+", signTop, signPositive, signTop},
		{"+", signBot, signTop, signBot},
		{"==", signZero, signZero, signPositive},
		{"==", signPositive, signPositive, signPositive},
		{"==", signPositive, signNegative, signZero},
		{"==", signTop, signZero, signTop},
		{"==", signBot, signZero, signBot},
		{"<", signNegative, signPositive, signPositive},
		{"<", signNegative, signZero, signPositive},
		{"<", signZero, signPositive, signPositive},
		{"<", signZero, signZero, signZero},
		{"<", signPositive, signNegative, signZero},
		{"<", signPositive, signZero, signZero},
		{"<", signNegative, signNegative, signTop},
		{"<", signPositive, signPositive, signTop},
		{"<", signTop, signNegative, signTop},
		{"<", signBot, signNegative, signBot},
	}

	ops := map[string]func(Sign, Sign) Sign{
		"+":  Sign.Plus,
		"==": Sign.Equals,
		"<":  Sign.LessThan,
	}

	for _, test := range tests {
		res := ops[test.op](test.a, test.b)
		if !res.eq(test.expected) {
			t.Errorf("%s %s %s = %s, expected %s", test.a, test.op, test.b, res, test.expected)
		} else {
			t.Logf("%s %s %s = %s", test.a, test.op, test.b, res)
		}
	}
}

func TestTruthNot(t *testing.T) {
	tests := []struct {
		a, expected Sign
	}{
		{signBot, signBot},
		{signTop, signTop},
		{signZero, signPositive},
		// Any nonzero sign is true-ish, so both - and + negate to 0.
		{signNegative, signZero},
		{signPositive, signZero},
	}

	for _, test := range tests {
		if res := test.a.TruthNot(); !res.eq(test.expected) {
			t.Errorf("!%s = %s, expected %s", test.a, res, test.expected)
		}
	}
}
