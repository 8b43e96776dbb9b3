// Package testutil bundles the hand-written toy programs used to
// exercise the analysis. They are fixtures for tests and the command
// line driver, and are deliberately not part of the core API.
package testutil

import "github.com/cs-au-dk/absign/lang"

// Program is a named toy program fixture.
type Program struct {
	Name string
	Body lang.Statement
}

func num(n int) lang.Number     { return lang.Number{Value: n} }
func vr(x string) lang.Variable { return lang.Variable{Name: x} }

func assign(x string, e lang.Expression) lang.Assign {
	return lang.Assign{Name: x, Expr: e}
}

// Programs returns all bundled example programs in a fixed order.
func Programs() []Program {
	return []Program{{
		// x := 0
		Name: "assign-zero",
		Body: assign("x", num(0)),
	}, {
		// x := 1; y := -1
		Name: "assign-pair",
		Body: lang.Block(
			assign("x", num(1)),
			assign("y", num(-1)),
		),
	}, {
		// read x; while (x < 10) x := x + 1
		Name: "read-loop",
		Body: lang.Block(
			lang.Read{Name: "x"},
			lang.While{
				Cond: lang.Less{Left: vr("x"), Right: num(10)},
				Body: assign("x", lang.Add{Left: vr("x"), Right: num(1)}),
			},
		),
	}, {
		// if (1) x := 0 else x := 1
		Name: "constant-branch",
		Body: lang.If{
			Cond: num(1),
			Then: assign("x", num(0)),
			Else: assign("x", num(1)),
		},
	}, {
		// i := 0; s := 0; while (i < 100) { s := s + i; i := i + 1 }
		Name: "sum-loop",
		Body: lang.Block(
			assign("i", num(0)),
			assign("s", num(0)),
			lang.While{
				Cond: lang.Less{Left: vr("i"), Right: num(100)},
				Body: lang.Block(
					assign("s", lang.Add{Left: vr("s"), Right: vr("i")}),
					assign("i", lang.Add{Left: vr("i"), Right: num(1)}),
				),
			},
		),
	}, {
		// x := -1; while (x < 0) x := x + 1
		Name: "counter-negative",
		Body: lang.Block(
			assign("x", num(-1)),
			lang.While{
				Cond: lang.Less{Left: vr("x"), Right: num(0)},
				Body: assign("x", lang.Add{Left: vr("x"), Right: num(1)}),
			},
		),
	}, {
		// read n; write n; p := n == 0; write p
		Name: "write-parity",
		Body: lang.Block(
			lang.Read{Name: "n"},
			lang.Write{Expr: vr("n")},
			assign("p", lang.Equal{Left: vr("n"), Right: num(0)}),
			lang.Write{Expr: vr("p")},
		),
	}, {
		// read x; if (x == 0) y := x else y := 0
		Name: "equality-guard",
		Body: lang.Block(
			lang.Read{Name: "x"},
			lang.If{
				Cond: lang.Equal{Left: vr("x"), Right: num(0)},
				Then: assign("y", vr("x")),
				Else: assign("y", num(0)),
			},
		),
	}}
}

// ProgramNamed retrieves a bundled program by name.
func ProgramNamed(name string) (Program, bool) {
	for _, p := range Programs() {
		if p.Name == name {
			return p, true
		}
	}
	return Program{}, false
}
