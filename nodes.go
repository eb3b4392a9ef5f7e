package calcolatrice

import (
	"strconv"
	"strings"
)

// Shape is one of the four forms of expression.
type Shape int8

const (
	shapeNone Shape = iota

	ShapeFactorial  // number!
	ShapeUnaryFunc  // name number
	ShapeBinaryFunc // name number number
	ShapeBinaryOp   // number op number
)

func (s Shape) String() string {
	switch s {
	case ShapeFactorial:
		return "Factorial"
	case ShapeUnaryFunc:
		return "UnaryFunc"
	case ShapeBinaryFunc:
		return "BinaryFunc"
	case ShapeBinaryOp:
		return "BinaryOp"
	}
	return "Shape(" + strconv.Itoa(int(s)) + ")"
}

// String formats the expression with explicit grouping, e.g. "(5)!",
// "sin(0)", "root(2, 4)", or "(1 + 1)".
func (e *Expr) String() string {
	var b strings.Builder
	switch e.shape {
	case ShapeFactorial:
		b.WriteByte('(')
		b.WriteString(e.args[0].text)
		b.WriteString(")!")
	case ShapeUnaryFunc, ShapeBinaryFunc:
		b.WriteString(strings.ToLower(e.op.text))
		b.WriteByte('(')
		for i, a := range e.args {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(a.text)
		}
		b.WriteByte(')')
	case ShapeBinaryOp:
		b.WriteByte('(')
		b.WriteString(e.args[0].text)
		b.WriteByte(' ')
		b.WriteString(e.op.text)
		b.WriteByte(' ')
		b.WriteString(e.args[1].text)
		b.WriteByte(')')
	default:
		// Invalid expressions use invalid characters.
		b.WriteString("$#$")
	}
	return b.String()
}
