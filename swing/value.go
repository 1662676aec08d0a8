package swing

import (
	"math"
	"strconv"
	"strings"
)

// ValueKind enumerates the closed set of runtime value variants.
type ValueKind int

const (
	KindInt ValueKind = iota
	KindFloat
)

func (k ValueKind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	default:
		return "unknown(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is a number together with the Context it was produced in. The
// context reference is used for error attribution only.
type Value struct {
	kind ValueKind
	i    int64
	f    float64
	ctx  *Context
}

func NewInt(n int64) Value {
	return Value{kind: KindInt, i: n}
}

func NewFloat(f float64) Value {
	return Value{kind: KindFloat, f: f}
}

// NewBool returns the integer 1 for true and 0 for false.
func NewBool(b bool) Value {
	if b {
		return NewInt(1)
	}
	return NewInt(0)
}

func (v Value) Kind() ValueKind { return v.kind }

// Int returns the integer payload, truncating floats.
func (v Value) Int() int64 {
	if v.kind == KindFloat {
		return int64(v.f)
	}
	return v.i
}

// Float returns the value as a float64.
func (v Value) Float() float64 {
	if v.kind == KindFloat {
		return v.f
	}
	return float64(v.i)
}

// Context returns the context the value was produced in, or nil.
func (v Value) Context() *Context { return v.ctx }

// WithContext returns a copy of v attributed to ctx.
func (v Value) WithContext(ctx *Context) Value {
	v.ctx = ctx
	return v
}

// IsZero reports whether the value is numerically zero.
func (v Value) IsZero() bool {
	if v.kind == KindFloat {
		return v.f == 0
	}
	return v.i == 0
}

// Truthy treats every non-zero number as true.
func (v Value) Truthy() bool {
	return !v.IsZero()
}

// Equal compares numerically; 2 and 2.0 are equal.
func (v Value) Equal(other Value) bool {
	if v.kind == KindInt && other.kind == KindInt {
		return v.i == other.i
	}
	return v.Float() == other.Float()
}

// String renders integers without a decimal point and floats with one.
func (v Value) String() string {
	if v.kind == KindInt {
		return strconv.FormatInt(v.i, 10)
	}
	return formatFloat(v.f)
}

func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	abs := math.Abs(f)
	if abs != 0 && (abs >= 1e16 || abs < 1e-4) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}
