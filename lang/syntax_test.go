package lang

import "testing"

func TestStringRendering(t *testing.T) {
	x, y := Variable{Name: "x"}, Variable{Name: "y"}

	tests := []struct {
		node     interface{ String() string }
		expected string
	}{
		{Number{Value: 0}, "0"},
		{Number{Value: -1}, "-1"},
		{x, "x"},
		{Add{Left: x, Right: Number{Value: 1}}, "(x + 1)"},
		{Equal{Left: x, Right: Number{Value: 0}}, "(x == 0)"},
		{Less{Left: x, Right: Number{Value: 10}}, "(x < 10)"},
		{Not{Operand: x}, "!x"},
		{Not{Operand: Less{Left: x, Right: y}}, "!(x < y)"},
		{Read{Name: "x"}, "read x"},
		{Write{Expr: x}, "write x"},
		{Assign{Name: "x", Expr: Add{Left: x, Right: Number{Value: 1}}}, "x := (x + 1)"},
		{
			If{
				Cond: Number{Value: 1},
				Then: Assign{Name: "x", Expr: Number{Value: 0}},
				Else: Assign{Name: "x", Expr: Number{Value: 1}},
			},
			"if 1 { x := 0 } else { x := 1 }",
		},
		{
			While{
				Cond: Less{Left: x, Right: Number{Value: 10}},
				Body: Assign{Name: "x", Expr: Add{Left: x, Right: Number{Value: 1}}},
			},
			"while (x < 10) { x := (x + 1) }",
		},
		{
			Seq{First: Read{Name: "x"}, Second: Write{Expr: x}},
			"read x; write x",
		},
	}

	for _, test := range tests {
		if res := test.node.String(); res != test.expected {
			t.Errorf("%T rendered as %q, expected %q", test.node, res, test.expected)
		}
	}
}

func TestBlock(t *testing.T) {
	a := Read{Name: "a"}
	b := Read{Name: "b"}
	c := Read{Name: "c"}

	if res := Block(a); res != Statement(a) {
		t.Errorf("Block of a single statement = %s, expected the statement itself", res)
	}

	// Block folds to the right.
	res, ok := Block(a, b, c).(Seq)
	if !ok || res.First != Statement(a) {
		t.Fatalf("Block(a, b, c) = %s, expected a leading sequence", res)
	}
	inner, ok := res.Second.(Seq)
	if !ok || inner.First != Statement(b) || inner.Second != Statement(c) {
		t.Errorf("Block(a, b, c) folded as %s", res)
	}

	defer func() {
		if recover() == nil {
			t.Error("Block() of no statements did not panic")
		}
	}()
	Block()
}
