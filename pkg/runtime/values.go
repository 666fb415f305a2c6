package runtime

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind identifies the runtime value category.
type Kind int

const (
	KindString Kind = iota
	KindBool
	KindNil
	KindInteger
	KindFloat
)

// String returns the LOLCODE type name.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "YARN"
	case KindBool:
		return "TROOF"
	case KindNil:
		return "NOOB"
	case KindInteger:
		return "NUMBR"
	case KindFloat:
		return "NUMBAR"
	default:
		return fmt.Sprintf("unknown_kind_%d", int(k))
	}
}

// Value is the shared behaviour for all runtime values.
type Value interface {
	Kind() Kind
}

//-----------------------------------------------------------------------------
// Scalars
//-----------------------------------------------------------------------------

type StringValue struct {
	Val string
}

func (v StringValue) Kind() Kind { return KindString }

type BoolValue struct {
	Val bool
}

func (v BoolValue) Kind() Kind { return KindBool }

type NilValue struct{}

func (NilValue) Kind() Kind { return KindNil }

type IntegerValue struct {
	Val int64
}

func (v IntegerValue) Kind() Kind { return KindInteger }

type FloatValue struct {
	Val float64
}

func (v FloatValue) Kind() Kind { return KindFloat }

// IsNil reports whether v is absent or NOOB.
func IsNil(v Value) bool {
	if v == nil {
		return true
	}
	_, ok := v.(NilValue)
	return ok
}

// IsNumeric reports whether v is a NUMBR or NUMBAR.
func IsNumeric(v Value) bool {
	switch v.(type) {
	case IntegerValue, FloatValue:
		return true
	default:
		return false
	}
}

// AsFloat widens a numeric value. The second result is false for non-numbers.
func AsFloat(v Value) (float64, bool) {
	switch n := v.(type) {
	case IntegerValue:
		return float64(n.Val), true
	case FloatValue:
		return n.Val, true
	default:
		return 0, false
	}
}

// Truthy applies the conditional truth rules: FAIL, zero, the empty YARN and
// NOOB are false, everything else is true.
func Truthy(v Value) bool {
	switch val := v.(type) {
	case nil:
		return false
	case BoolValue:
		return val.Val
	case IntegerValue:
		return val.Val != 0
	case FloatValue:
		return val.Val != 0
	case StringValue:
		return val.Val != ""
	case NilValue:
		return false
	default:
		return true
	}
}

// Format renders a value the way VISIBLE prints it.
func Format(v Value) string {
	switch val := v.(type) {
	case nil:
		return "NOOB"
	case StringValue:
		return val.Val
	case BoolValue:
		if val.Val {
			return "WIN"
		}
		return "FAIL"
	case IntegerValue:
		return strconv.FormatInt(val.Val, 10)
	case FloatValue:
		return formatFloat(val.Val)
	case NilValue:
		return "NOOB"
	default:
		return fmt.Sprintf("<%s>", v.Kind())
	}
}

// Integral floats keep a trailing ".0" so NUMBAR never reads as NUMBR.
func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	if abs := math.Abs(f); abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	text := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(text, ".") {
		text += ".0"
	}
	return text
}

// Equal compares by kind and value. NUMBR and NUMBAR compare numerically.
func Equal(a, b Value) bool {
	if IsNil(a) || IsNil(b) {
		return IsNil(a) && IsNil(b)
	}
	if ai, ok := a.(IntegerValue); ok {
		if bi, ok := b.(IntegerValue); ok {
			return ai.Val == bi.Val
		}
	}
	if IsNumeric(a) && IsNumeric(b) {
		af, _ := AsFloat(a)
		bf, _ := AsFloat(b)
		return af == bf
	}
	switch av := a.(type) {
	case StringValue:
		bv, ok := b.(StringValue)
		return ok && av.Val == bv.Val
	case BoolValue:
		bv, ok := b.(BoolValue)
		return ok && av.Val == bv.Val
	default:
		return false
	}
}

// Compare orders two values of compatible kinds, returning -1, 0 or 1. The
// second result is false when the kinds have no natural ordering.
func Compare(a, b Value) (int, bool) {
	if ai, ok := a.(IntegerValue); ok {
		if bi, ok := b.(IntegerValue); ok {
			return compareOrdered(ai.Val, bi.Val), true
		}
	}
	if IsNumeric(a) && IsNumeric(b) {
		af, _ := AsFloat(a)
		bf, _ := AsFloat(b)
		return compareOrdered(af, bf), true
	}
	switch av := a.(type) {
	case StringValue:
		if bv, ok := b.(StringValue); ok {
			return strings.Compare(av.Val, bv.Val), true
		}
	case BoolValue:
		if bv, ok := b.(BoolValue); ok {
			return compareOrdered(boolRank(av.Val), boolRank(bv.Val)), true
		}
	}
	return 0, false
}

func compareOrdered[T int64 | float64 | int](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}
