package calcolatrice

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorKinds(t *testing.T) {
	for k := EmptyExpression; k <= EvenRootOfNegative; k++ {
		assert.NotEqual(t, "", kindNames[k], int(k))
		assert.NotEqual(t, "", kindMsgs[k], int(k))
		assert.NotContains(t, k.String(), "ErrorKind(")
	}
	assert.Equal(t, "ErrorKind(42)", ErrorKind(42).String())
	assert.Equal(t, "ErrorKind(-1)", ErrorKind(-1).Error())
	assert.Equal(t, "DivisionByZero", DivisionByZero.String())
	assert.Equal(t, "division by zero", DivisionByZero.Error())

	arith := map[ErrorKind]bool{
		DivisionByZero:           true,
		NegativeFactorialOperand: true,
		ZeroRootDegree:           true,
		EvenRootOfNegative:       true,
	}
	for k := EmptyExpression; k <= EvenRootOfNegative; k++ {
		assert.Equal(t, arith[k], k.Arithmetic(), k.String())
	}
}

func TestErrorUnwrap(t *testing.T) {
	err := fmt.Errorf("evaluating: %w", &Error{Kind: ZeroRootDegree, Col: 1})
	assert.True(t, errors.Is(err, ZeroRootDegree))
	assert.False(t, errors.Is(err, DivisionByZero))
	assert.Equal(t, ZeroRootDegree, KindOf(err))
	assert.Equal(t, kindNone, KindOf(nil))
	assert.Equal(t, kindNone, KindOf(errors.New("other")))
	assert.Equal(t, InvalidFormat, KindOf(InvalidFormat))
}

func TestErrorMessages(t *testing.T) {
	cases := []struct {
		err  *Error
		want string
	}{
		{&Error{Kind: EmptyExpression}, "empty expression"},
		{&Error{Kind: InvalidFormat, Col: 1, Args: 1}, `1: cannot evaluate 1 terms; use e.g. "1 + 1", "sin 0", "root 2 4", or "5!"`},
		{&Error{Kind: InvalidNumber, Text: "1.2.3", Col: 3}, `3: invalid number "1.2.3"`},
		{&Error{Kind: UnknownFunction, Text: "bar", Col: 1}, `1: unknown function "bar"`},
		{&Error{Kind: UnknownFunction, Text: "root", Col: 1, Args: 1}, "1: cannot call root with 1 argument"},
		{&Error{Kind: UnknownFunction, Text: "sin", Col: 2, Args: 2}, "2: cannot call sin with 2 arguments"},
		{&Error{Kind: UnknownOperator, Text: "&", Col: 3}, `3: unknown operator "&"`},
		{&Error{Kind: DivisionByZero, Text: "/", Col: 4}, "4: division by zero"},
		{&Error{Kind: DivisionByZero, Text: "sec", Col: 1}, "1: division by zero in sec"},
		{&Error{Kind: NonIntegerFactorialOperand, Text: "2.5", Col: 1}, "1: factorial requires an integer: 2.5"},
		{&Error{Kind: NegativeFactorialOperand, Text: "-4", Col: 1}, "1: factorial of a negative number: -4"},
		{&Error{Kind: ZeroRootDegree, Col: 1}, "1: root degree cannot be zero"},
		{&Error{Kind: EvenRootOfNegative, Col: 1}, "1: even root of a negative number"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.err.Error())
	}
}
