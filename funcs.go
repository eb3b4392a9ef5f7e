package calcolatrice

import (
	"math"
	"sort"
	"strings"
)

// function is a named calculator function of fixed arity. Failures are
// returned as bare ErrorKinds; the caller attaches position information.
type function interface {
	call(args []float64) (float64, error)
	canCall(n int) bool
}

type monadic func(x float64) (float64, error)

func (f monadic) call(args []float64) (float64, error) {
	return f(args[0])
}

func (monadic) canCall(n int) bool {
	return n == 1
}

// total wraps a function defined on every real.
func total(f func(float64) float64) monadic {
	return func(x float64) (float64, error) {
		return f(x), nil
	}
}

type dyadic func(x, y float64) (float64, error)

func (f dyadic) call(args []float64) (float64, error) {
	return f(args[0], args[1])
}

func (dyadic) canCall(n int) bool {
	return n == 2
}

var globalfuncs = map[string]function{
	"sin":  total(math.Sin),
	"cos":  total(math.Cos),
	"tan":  total(math.Tan),
	"sec":  monadic(sec),
	"inv":  monadic(inv),
	"root": dyadic(root),
}

// lookup finds a function by its case-insensitive name.
func lookup(name string) function {
	return globalfuncs[strings.ToLower(name)]
}

// Funcs returns the names of the recognized functions in sorted order.
func Funcs() []string {
	v := make([]string, 0, len(globalfuncs))
	for k := range globalfuncs {
		v = append(v, k)
	}
	sort.Strings(v)
	return v
}

func sec(x float64) (float64, error) {
	c := math.Cos(x)
	if c == 0 {
		return 0, DivisionByZero
	}
	return 1 / c, nil
}

func inv(x float64) (float64, error) {
	if x == 0 {
		return 0, DivisionByZero
	}
	return 1 / x, nil
}

// root computes value^(1/degree). Negative values give negative results
// unless the degree is even. The parity test is a floating-point remainder,
// so a degree like 2.5 is odd and a negative value yields a real result.
func root(degree, value float64) (float64, error) {
	if degree == 0 {
		return 0, ZeroRootDegree
	}
	if value < 0 {
		if math.Mod(degree, 2) == 0 {
			return 0, EvenRootOfNegative
		}
		return -math.Pow(-value, 1/degree), nil
	}
	return math.Pow(value, 1/degree), nil
}

// Operators contains the runes which are considered to be operators.
const Operators = "+-*/^"

var operators = map[string]func(l, r float64) (float64, error){
	"+": func(l, r float64) (float64, error) { return l + r, nil },
	"-": func(l, r float64) (float64, error) { return l - r, nil },
	"*": func(l, r float64) (float64, error) { return l * r, nil },
	"/": func(l, r float64) (float64, error) {
		if r == 0 {
			return 0, DivisionByZero
		}
		return l / r, nil
	},
	"^": func(l, r float64) (float64, error) { return math.Pow(l, r), nil },
}

// factorial computes x! for integral x. Products past the largest float64 are
// +Inf.
func factorial(x float64) (float64, error) {
	// int64(x) is undefined outside [-2^63, 2^63).
	if x != math.Trunc(x) || x >= 1<<63 || x < -1<<63 {
		return 0, NonIntegerFactorialOperand
	}
	n := int64(x)
	if n < 0 {
		return 0, NegativeFactorialOperand
	}
	r := 1.0
	for i := int64(2); i <= n && !math.IsInf(r, 1); i++ {
		r *= float64(i)
	}
	return r, nil
}
