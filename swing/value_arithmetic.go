package swing

import (
	"errors"
	"fmt"
	"math"
)

var (
	errDivisionByZero  = errors.New("Division by zero") //nolint:staticcheck // user-facing message
	errIntegerOverflow = errors.New("integer overflow")
)

type binaryFunc func(left, right Value) (Value, error)

// checkOperands reports whether both operands are integers, rejecting kinds
// outside the closed variant set.
func checkOperands(left, right Value) (bool, error) {
	for _, v := range [...]Value{left, right} {
		switch v.kind {
		case KindInt, KindFloat:
		default:
			return false, fmt.Errorf("unsupported operand kind %s", v.kind)
		}
	}
	return left.kind == KindInt && right.kind == KindInt, nil
}

func addValues(left, right Value) (Value, error) {
	ints, err := checkOperands(left, right)
	if err != nil {
		return Value{}, err
	}
	if !ints {
		return NewFloat(left.Float() + right.Float()), nil
	}
	a, b := left.i, right.i
	sum := a + b
	if (a^sum)&(b^sum) < 0 {
		return Value{}, errIntegerOverflow
	}
	return NewInt(sum), nil
}

func subtractValues(left, right Value) (Value, error) {
	ints, err := checkOperands(left, right)
	if err != nil {
		return Value{}, err
	}
	if !ints {
		return NewFloat(left.Float() - right.Float()), nil
	}
	a, b := left.i, right.i
	diff := a - b
	if (a^b)&(a^diff) < 0 {
		return Value{}, errIntegerOverflow
	}
	return NewInt(diff), nil
}

func multiplyValues(left, right Value) (Value, error) {
	ints, err := checkOperands(left, right)
	if err != nil {
		return Value{}, err
	}
	if !ints {
		return NewFloat(left.Float() * right.Float()), nil
	}
	a, b := left.i, right.i
	if a == 0 || b == 0 {
		return NewInt(0), nil
	}
	product := a * b
	if product/b != a || (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return Value{}, errIntegerOverflow
	}
	return NewInt(product), nil
}

// divideValues always yields a float, like true division.
func divideValues(left, right Value) (Value, error) {
	if _, err := checkOperands(left, right); err != nil {
		return Value{}, err
	}
	if right.IsZero() {
		return Value{}, errDivisionByZero
	}
	return NewFloat(left.Float() / right.Float()), nil
}

func compareWith(pred func(c int) bool) binaryFunc {
	return func(left, right Value) (Value, error) {
		ints, err := checkOperands(left, right)
		if err != nil {
			return Value{}, err
		}
		var c int
		if ints {
			c = compareOrdered(left.i, right.i)
		} else {
			c = compareOrdered(left.Float(), right.Float())
		}
		return NewBool(pred(c)), nil
	}
}

func compareOrdered[T int64 | float64](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func equalValues(left, right Value) (Value, error) {
	if _, err := checkOperands(left, right); err != nil {
		return Value{}, err
	}
	return NewBool(left.Equal(right)), nil
}

func notEqualValues(left, right Value) (Value, error) {
	if _, err := checkOperands(left, right); err != nil {
		return Value{}, err
	}
	return NewBool(!left.Equal(right)), nil
}

func andValues(left, right Value) (Value, error) {
	if _, err := checkOperands(left, right); err != nil {
		return Value{}, err
	}
	return NewBool(left.Truthy() && right.Truthy()), nil
}

func orValues(left, right Value) (Value, error) {
	if _, err := checkOperands(left, right); err != nil {
		return Value{}, err
	}
	return NewBool(left.Truthy() || right.Truthy()), nil
}

var (
	arithmeticOps = map[TokenKind]binaryFunc{
		TokenPlus:  addValues,
		TokenMinus: subtractValues,
		TokenMul:   multiplyValues,
		TokenDiv:   divideValues,
		TokenEqEq:  equalValues,
		TokenNotEq: notEqualValues,
		TokenLt:    compareWith(func(c int) bool { return c < 0 }),
		TokenGt:    compareWith(func(c int) bool { return c > 0 }),
		TokenLte:   compareWith(func(c int) bool { return c <= 0 }),
		TokenGte:   compareWith(func(c int) bool { return c >= 0 }),
	}
	keywordOps = map[string]binaryFunc{
		KeywordAnd: andValues,
		KeywordOr:  orValues,
	}
)

func lookupBinary(kind TokenKind, keyword string) (binaryFunc, bool) {
	if kind == TokenKeyword {
		fn, ok := keywordOps[keyword]
		return fn, ok
	}
	fn, ok := arithmeticOps[kind]
	return fn, ok
}
