package question

import (
	"fmt"
	"strconv"
	"strings"
)

// Operator is one of the five integer operations an Arithmetic question uses.
type Operator int

const (
	OpSum Operator = iota
	OpSub
	OpMul
	OpDiv
	OpMod
)

// Symbol returns the operator as shown in the prompt.
func (o Operator) Symbol() string {
	switch o {
	case OpSum:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "div"
	case OpMod:
		return "mod"
	}
	panic(fmt.Sprintf("question: unknown operator %d", int(o)))
}

func (o Operator) kind() Kind {
	switch o {
	case OpSum:
		return KindSum
	case OpSub:
		return KindSub
	case OpMul:
		return KindMul
	case OpDiv:
		return KindDiv
	case OpMod:
		return KindMod
	}
	panic(fmt.Sprintf("question: unknown operator %d", int(o)))
}

// Apply computes a op b with Go's integer semantics: division truncates
// toward zero and the remainder takes the sign of the dividend.
func (o Operator) Apply(a, b int) int {
	switch o {
	case OpSum:
		return a + b
	case OpSub:
		return a - b
	case OpMul:
		return a * b
	case OpDiv:
		return a / b
	case OpMod:
		return a % b
	}
	panic(fmt.Sprintf("question: unknown operator %d", int(o)))
}

// Arithmetic asks for the result of a binary integer operation.
type Arithmetic struct {
	Op Operator
	A  int
	B  int
}

var _ Question = Arithmetic{}

// Sum returns the question "a + b = ?".
func Sum(a, b int) Arithmetic { return Arithmetic{Op: OpSum, A: a, B: b} }

// Sub returns the question "a - b = ?".
func Sub(a, b int) Arithmetic { return Arithmetic{Op: OpSub, A: a, B: b} }

// Mul returns the question "a * b = ?".
func Mul(a, b int) Arithmetic { return Arithmetic{Op: OpMul, A: a, B: b} }

// Div returns the question "a div b = ?". It panics if b is zero.
func Div(a, b int) Arithmetic {
	mustNonZero(b)
	return Arithmetic{Op: OpDiv, A: a, B: b}
}

// Mod returns the question "a mod b = ?". It panics if b is zero.
func Mod(a, b int) Arithmetic {
	mustNonZero(b)
	return Arithmetic{Op: OpMod, A: a, B: b}
}

func mustNonZero(b int) {
	if b == 0 {
		panic("question: zero divisor")
	}
}

func (q Arithmetic) Kind() Kind { return q.Op.kind() }

func (q Arithmetic) Prompt() string {
	return fmt.Sprintf("%d %s %d = ?", q.A, q.Op.Symbol(), q.B)
}

// Solution returns the exact integer result.
func (q Arithmetic) Solution() int {
	return q.Op.Apply(q.A, q.B)
}

func (q Arithmetic) Check(raw string) (bool, error) {
	raw = strings.TrimSpace(raw)
	n, err := strconv.Atoi(raw)
	if err != nil {
		return false, notInteger(raw)
	}
	return n == q.Solution(), nil
}
