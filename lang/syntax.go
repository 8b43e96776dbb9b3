// Package lang defines the abstract syntax of the analyzed toy language.
//
// Programs are trees of statements built from expressions. There is no
// concrete syntax: callers construct trees directly. Both sums are
// closed; consumers dispatch with exhaustive type switches that panic
// on an unknown node, so extending the language surfaces as a panic at
// every dispatch site that must be updated.
package lang

import (
	"fmt"
	"strconv"
)

// Expression is the closed sum of expression forms.
type Expression interface {
	fmt.Stringer
	expression()
}

type (
	// Number is an integer literal.
	Number struct {
		Value int
	}

	// Variable is a variable occurrence.
	Variable struct {
		Name string
	}

	// Add is the sum of two expressions.
	Add struct {
		Left, Right Expression
	}

	// Equal compares two expressions for equality. Truth values are
	// integers: zero is false, everything else is true.
	Equal struct {
		Left, Right Expression
	}

	// Less is the strict less-than comparison of two expressions.
	Less struct {
		Left, Right Expression
	}

	// Not negates the truth value of its operand.
	Not struct {
		Operand Expression
	}
)

func (Number) expression()   {}
func (Variable) expression() {}
func (Add) expression()      {}
func (Equal) expression()    {}
func (Less) expression()     {}
func (Not) expression()      {}

func (e Number) String() string {
	return strconv.Itoa(e.Value)
}

func (e Variable) String() string {
	return e.Name
}

func (e Add) String() string {
	return fmt.Sprintf("(%s + %s)", e.Left, e.Right)
}

func (e Equal) String() string {
	return fmt.Sprintf("(%s == %s)", e.Left, e.Right)
}

func (e Less) String() string {
	return fmt.Sprintf("(%s < %s)", e.Left, e.Right)
}

func (e Not) String() string {
	return "!" + e.Operand.String()
}

// Statement is the closed sum of statement forms.
type Statement interface {
	fmt.Stringer
	statement()
}

type (
	// Read binds a variable to an external input.
	Read struct {
		Name string
	}

	// Write outputs the value of an expression.
	Write struct {
		Expr Expression
	}

	// Assign binds a variable to the value of an expression.
	Assign struct {
		Name string
		Expr Expression
	}

	// If branches on the truth value of a condition.
	If struct {
		Cond Expression
		Then Statement
		Else Statement
	}

	// While repeats its body as long as the condition is true.
	While struct {
		Cond Expression
		Body Statement
	}

	// Seq composes two statements, left to right.
	Seq struct {
		First, Second Statement
	}
)

func (Read) statement()   {}
func (Write) statement()  {}
func (Assign) statement() {}
func (If) statement()     {}
func (While) statement()  {}
func (Seq) statement()    {}

func (s Read) String() string {
	return "read " + s.Name
}

func (s Write) String() string {
	return "write " + s.Expr.String()
}

func (s Assign) String() string {
	return fmt.Sprintf("%s := %s", s.Name, s.Expr)
}

func (s If) String() string {
	return fmt.Sprintf("if %s { %s } else { %s }", s.Cond, s.Then, s.Else)
}

func (s While) String() string {
	return fmt.Sprintf("while %s { %s }", s.Cond, s.Body)
}

func (s Seq) String() string {
	return fmt.Sprintf("%s; %s", s.First, s.Second)
}

// Block right-folds the given statements into nested sequences.
// It panics on an empty argument list.
func Block(stmts ...Statement) Statement {
	if len(stmts) == 0 {
		panic("Block requires at least one statement")
	}
	res := stmts[len(stmts)-1]
	for i := len(stmts) - 2; i >= 0; i-- {
		res = Seq{First: stmts[i], Second: res}
	}
	return res
}
