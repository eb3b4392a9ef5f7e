package calcolatrice

import "strings"

// Eval computes the value of the expression. Failures are *Error values whose
// Kind is DivisionByZero, NonIntegerFactorialOperand, NegativeFactorialOperand,
// ZeroRootDegree, or EvenRootOfNegative.
//
// Results follow IEEE-754, so e.g. "tan 1.5707963267948966" is very large,
// "170!" is finite, and "171!" is +Inf. None of those is an error.
func (e *Expr) Eval() (float64, error) {
	var (
		r   float64
		err error
		at  lexToken
	)
	switch e.shape {
	case ShapeFactorial:
		r, err = factorial(e.vals[0])
		at = e.args[0]
	case ShapeUnaryFunc, ShapeBinaryFunc:
		r, err = e.fn.call(e.vals)
		at = e.op
	case ShapeBinaryOp:
		r, err = e.oper(e.vals[0], e.vals[1])
		at = e.op
	default:
		panic("calcolatrice: Eval on invalid Expr " + e.shape.String())
	}
	if err != nil {
		k := err.(ErrorKind) // panic if not ErrorKind
		ev := Error{Kind: k, Col: at.pos}
		switch k {
		case DivisionByZero:
			ev.Text = strings.ToLower(at.text)
		case NonIntegerFactorialOperand, NegativeFactorialOperand:
			ev.Text = at.text
		}
		return 0, &ev
	}
	return r, nil
}

// Evaluate parses and evaluates an expression. Leading and trailing
// whitespace is ignored. Errors are always *Error; use errors.Is with an
// ErrorKind, or KindOf, to distinguish them.
func Evaluate(expr string) (float64, error) {
	e, err := Parse(expr)
	if err != nil {
		return 0, err
	}
	return e.Eval()
}
