// Package jsontree provides a generic, order-preserving representation of a
// JSON document as a tree of tagged variant values, together with a parser
// and serializer for converting between the tree and JSON text.
//
// The tree is the exchange format between the typedjson codec and JSON text:
// the encoder builds a tree and serializes it in one step, the decoder parses
// text into a tree and walks it. Object member order is preserved on both
// paths.
package jsontree

import (
	"fmt"
	"math"
	"strconv"
)

// Kind identifies the variant held by a Value.
type Kind byte

// Enumeration of JSON value kinds.
const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Value describes a single JSON value.
//
// The following types implement Value:
//   - Null
//   - Bool
//   - Number
//   - String
//   - Array
//   - Object
//
// The set is closed: values produced by Parse and accepted by Encode are
// always one of the above.
type Value interface {
	Kind() Kind
	sealed()
}

var (
	_ Value = Null{}
	_ Value = Bool(false)
	_ Value = Number("")
	_ Value = String("")
	_ Value = Array(nil)
	_ Value = Object{}
)

// Null is the JSON null literal.
type Null struct{}

// Kind returns KindNull.
func (Null) Kind() Kind { return KindNull }

func (Null) sealed() {}

// Bool is a JSON boolean.
type Bool bool

// Kind returns KindBool.
func (Bool) Kind() Kind { return KindBool }

func (Bool) sealed() {}

// Number is a JSON number held as its literal text. Keeping the literal
// preserves integer exactness and the distinction between "3" and "3.0"
// across a parse/serialize round trip.
type Number string

// Kind returns KindNumber.
func (Number) Kind() Kind { return KindNumber }

func (Number) sealed() {}

func (n Number) String() string { return string(n) }

// Int64 returns the number as an int64. It fails if the literal is not an
// integer or does not fit.
func (n Number) Int64() (int64, error) {
	return strconv.ParseInt(string(n), 10, 64)
}

// Uint64 returns the number as a uint64. It fails if the literal is not a
// non-negative integer or does not fit.
func (n Number) Uint64() (uint64, error) {
	return strconv.ParseUint(string(n), 10, 64)
}

// Float64 returns the number as a float64.
func (n Number) Float64() (float64, error) {
	return strconv.ParseFloat(string(n), 64)
}

// Int returns a Number holding the given integer.
func Int(v int64) Number {
	return Number(strconv.FormatInt(v, 10))
}

// Uint returns a Number holding the given unsigned integer.
func Uint(v uint64) Number {
	return Number(strconv.FormatUint(v, 10))
}

// Float returns a Number holding the given floating-point value. Float
// panics if v is NaN or infinite: JSON has no representation for those, and
// callers are expected to apply a non-finite strategy before boxing.
func Float(v float64) Number {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		panic(fmt.Sprintf("jsontree: cannot represent %v as a JSON number", v))
	}
	return Number(formatFloat(v))
}

// formatFloat renders a finite float64 the way encoding/json does: fixed
// notation for the common magnitude range, exponent notation outside it.
func formatFloat(v float64) string {
	abs := math.Abs(v)
	format := byte('f')
	if abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		format = 'e'
	}
	return string(strconv.AppendFloat(nil, v, format, -1, 64))
}

// String is a JSON string.
type String string

// Kind returns KindString.
func (String) Kind() Kind { return KindString }

func (String) sealed() {}

// Array is an ordered JSON array.
type Array []Value

// Kind returns KindArray.
func (Array) Kind() Kind { return KindArray }

func (Array) sealed() {}

// Equal reports whether two values are structurally equal. Numbers compare
// by literal text, objects compare member-wise ignoring member order.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch av := a.(type) {
	case Null:
		return true
	case Bool:
		return av == b.(Bool)
	case Number:
		return av == b.(Number)
	case String:
		return av == b.(String)
	case Array:
		bv := b.(Array)
		if len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !Equal(av[i], bv[i]) {
				return false
			}
		}
		return true
	case Object:
		bv := b.(Object)
		if av.Len() != bv.Len() {
			return false
		}
		for key, val := range av.Pairs() {
			other, ok := bv.Get(key)
			if !ok || !Equal(val, other) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
