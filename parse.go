package calcolatrice

import (
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Expr is a parsed expression. Its numbers are parsed and its function or
// operator is known to exist, but arithmetic errors such as division by zero
// are found only by Eval. An Expr is immutable and safe for concurrent use.
type Expr struct {
	shape Shape
	// op is the function name, operator, or "!" for factorials.
	op lexToken
	// args are the numeric terms and vals their values.
	args []lexToken
	vals []float64

	fn   function
	oper func(l, r float64) (float64, error)
}

// Shape returns the form of the expression.
func (e *Expr) Shape() Shape {
	return e.shape
}

// Parse classifies an expression and parses its terms. The classification
// is, in order:
//
//  1. If the trimmed input ends with "!", the rest of it is the operand of a
//     factorial, regardless of any whitespace inside it.
//  2. Two terms are a function name and its argument.
//  3. Three terms starting with a function name are a function and its two
//     arguments.
//  4. Any other three terms are a number, an operator, and a number.
//
// Any other number of terms is an InvalidFormat error. Numbers are parsed
// before the function or operator is checked, so "bar x" is an InvalidNumber
// error rather than UnknownFunction.
func Parse(expr string) (*Expr, error) {
	trimmed := strings.TrimSpace(expr)
	if trimmed == "" {
		return nil, &Error{Kind: EmptyExpression}
	}
	if strings.HasSuffix(trimmed, "!") {
		return parseFactorial(expr, trimmed)
	}
	toks := lex(expr).all()
	switch len(toks) {
	case 2:
		return parseCall(toks[0], toks[1:])
	case 3:
		if lookup(toks[0].text) != nil {
			return parseCall(toks[0], toks[1:])
		}
		return parseBinaryOp(toks)
	}
	err := &Error{Kind: InvalidFormat, Col: toks[0].pos, Args: len(toks)}
	if len(toks) > 3 {
		err.Col = toks[3].pos
	}
	return nil, err
}

func parseFactorial(expr, trimmed string) (*Expr, error) {
	// Locate the operand within the untrimmed input for its position.
	lead := len(expr) - len(strings.TrimLeftFunc(expr, unicode.IsSpace))
	body := trimmed[:len(trimmed)-1]
	operand := strings.TrimSpace(body)
	bang := lexToken{text: "!", off: lead + len(body)}
	bang.pos = col(expr, bang.off)
	arg := bang
	arg.text = operand
	if operand != "" {
		arg.off = lead
		arg.pos = col(expr, lead)
	}
	x, err := parseNum(arg)
	if err != nil {
		return nil, err
	}
	e := Expr{
		shape: ShapeFactorial,
		op:    bang,
		args:  []lexToken{arg},
		vals:  []float64{x},
	}
	return &e, nil
}

func parseCall(name lexToken, args []lexToken) (*Expr, error) {
	vals, err := parseNums(args)
	if err != nil {
		return nil, err
	}
	fn := lookup(name.text)
	if fn == nil {
		return nil, &Error{Kind: UnknownFunction, Text: name.text, Col: name.pos}
	}
	if !fn.canCall(len(args)) {
		return nil, &Error{Kind: UnknownFunction, Text: strings.ToLower(name.text), Col: name.pos, Args: len(args)}
	}
	e := Expr{
		shape: ShapeUnaryFunc,
		op:    name,
		args:  args,
		vals:  vals,
		fn:    fn,
	}
	if len(args) == 2 {
		e.shape = ShapeBinaryFunc
	}
	return &e, nil
}

func parseBinaryOp(toks []lexToken) (*Expr, error) {
	args := []lexToken{toks[0], toks[2]}
	vals, err := parseNums(args)
	if err != nil {
		return nil, err
	}
	op := toks[1]
	f := operators[op.text]
	if f == nil {
		return nil, &Error{Kind: UnknownOperator, Text: op.text, Col: op.pos}
	}
	e := Expr{
		shape: ShapeBinaryOp,
		op:    op,
		args:  args,
		vals:  vals,
		oper:  f,
	}
	return &e, nil
}

func parseNums(toks []lexToken) ([]float64, error) {
	vals := make([]float64, len(toks))
	for i, tok := range toks {
		x, err := parseNum(tok)
		if err != nil {
			return nil, err
		}
		vals[i] = x
	}
	return vals, nil
}

// parseNum parses a finite number.
func parseNum(tok lexToken) (float64, error) {
	x, err := strconv.ParseFloat(tok.text, 64)
	if err != nil || math.IsInf(x, 0) || math.IsNaN(x) {
		return 0, &Error{Kind: InvalidNumber, Text: tok.text, Col: tok.pos}
	}
	return x, nil
}

// col converts a byte offset in s to a 1-based rune position.
func col(s string, off int) int {
	return utf8.RuneCountInString(s[:off]) + 1
}
