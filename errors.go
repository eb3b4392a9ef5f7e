package calcolatrice

import (
	"errors"
	"strconv"
)

// ErrorKind classifies evaluation failures. An ErrorKind is itself an error,
// so errors.Is(err, DivisionByZero) reports whether err is a division by zero.
type ErrorKind int8

const (
	kindNone ErrorKind = iota

	EmptyExpression            // input is empty or all whitespace
	InvalidFormat              // not one of the four expression shapes
	InvalidNumber              // a numeric term is not a finite number
	UnknownFunction            // unrecognized name, or wrong number of arguments
	UnknownOperator            // operator symbol not in Operators
	DivisionByZero             // sec, inv, or / with a zero denominator
	NonIntegerFactorialOperand // factorial of a fractional or huge number
	NegativeFactorialOperand   // factorial of a negative integer
	ZeroRootDegree             // root with degree 0
	EvenRootOfNegative         // root of a negative value with even degree
)

var kindNames = [...]string{
	kindNone:                   "None",
	EmptyExpression:            "EmptyExpression",
	InvalidFormat:              "InvalidFormat",
	InvalidNumber:              "InvalidNumber",
	UnknownFunction:            "UnknownFunction",
	UnknownOperator:            "UnknownOperator",
	DivisionByZero:             "DivisionByZero",
	NonIntegerFactorialOperand: "NonIntegerFactorialOperand",
	NegativeFactorialOperand:   "NegativeFactorialOperand",
	ZeroRootDegree:             "ZeroRootDegree",
	EvenRootOfNegative:         "EvenRootOfNegative",
}

var kindMsgs = [...]string{
	kindNone:                   "no error",
	EmptyExpression:            "empty expression",
	InvalidFormat:              "invalid format",
	InvalidNumber:              "invalid number",
	UnknownFunction:            "unknown function",
	UnknownOperator:            "unknown operator",
	DivisionByZero:             "division by zero",
	NonIntegerFactorialOperand: "factorial requires an integer",
	NegativeFactorialOperand:   "factorial of a negative number",
	ZeroRootDegree:             "root degree cannot be zero",
	EvenRootOfNegative:         "even root of a negative number",
}

func (k ErrorKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "ErrorKind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

func (k ErrorKind) Error() string {
	if k < 0 || int(k) >= len(kindMsgs) {
		return k.String()
	}
	return kindMsgs[k]
}

// Arithmetic returns whether k is a failure of the arithmetic itself, as
// opposed to malformed input. Arithmetic failures are division by zero,
// negative factorials, zero root degrees, and even roots of negatives.
func (k ErrorKind) Arithmetic() bool {
	switch k {
	case DivisionByZero, NegativeFactorialOperand, ZeroRootDegree, EvenRootOfNegative:
		return true
	}
	return false
}

// Error is an evaluation failure. It implements InputError.
type Error struct {
	// Kind is the class of failure. Error unwraps to it.
	Kind ErrorKind
	// Text is the term that caused the error: the number, function name, or
	// operator. It is empty for EmptyExpression, InvalidFormat, and root
	// failures.
	Text string
	// Col is the 1-based rune position of Text in the original input, or 0
	// if there is no such position.
	Col int
	// Args is the number of arguments given to a recognized function that
	// cannot be called with that many, or the number of terms in an
	// expression of invalid format. Otherwise it is 0.
	Args int
}

func (err *Error) Error() string {
	var msg string
	switch err.Kind {
	case InvalidFormat:
		msg = "cannot evaluate " + strconv.Itoa(err.Args) + " terms; use e.g. \"1 + 1\", \"sin 0\", \"root 2 4\", or \"5!\""
	case InvalidNumber:
		msg = "invalid number " + strconv.Quote(err.Text)
	case UnknownFunction:
		if err.Args > 0 {
			msg = "cannot call " + err.Text + " with " + plural(err.Args, "argument")
		} else {
			msg = "unknown function " + strconv.Quote(err.Text)
		}
	case UnknownOperator:
		msg = "unknown operator " + strconv.Quote(err.Text)
	case DivisionByZero:
		msg = "division by zero"
		if err.Text != "" && err.Text != "/" {
			msg += " in " + err.Text
		}
	case NonIntegerFactorialOperand, NegativeFactorialOperand:
		msg = err.Kind.Error() + ": " + err.Text
	default:
		msg = err.Kind.Error()
	}
	return errpos(err.Col, msg)
}

func (err *Error) Unwrap() error {
	return err.Kind
}

func (err *Error) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	if pos <= 0 {
		return msg
	}
	return strconv.Itoa(pos) + ": " + msg
}

func plural(n int, s string) string {
	if n == 1 {
		return "1 " + s
	}
	return strconv.Itoa(n) + " " + s + "s"
}

// KindOf returns the kind of an evaluation error. If err is nil or did not
// come from this package, the result is 0, which is not a valid kind.
func KindOf(err error) ErrorKind {
	var k ErrorKind
	if errors.As(err, &k) {
		return k
	}
	return kindNone
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the term that caused the error.
	Pos() int
}

var _ InputError = (*Error)(nil)
