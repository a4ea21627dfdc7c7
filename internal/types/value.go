package types

import (
	"encoding/hex"
	"encoding/json"
	"iter"
	"maps"
	"slices"
	"strconv"
)

// Kind identifies the variant held by a Value.
type Kind uint8

const (
	// KindInvalid is the zero Value.
	KindInvalid Kind = iota
	// KindInt is a signed integer.
	KindInt
	// KindUint is an unsigned integer.
	KindUint
	// KindFloat is a floating point number.
	KindFloat
	// KindText is a string.
	KindText
	// KindBool is a boolean.
	KindBool
	// KindBytes is an opaque byte string.
	KindBytes
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindUint:
		return "uint"
	case KindFloat:
		return "float"
	case KindText:
		return "text"
	case KindBool:
		return "bool"
	case KindBytes:
		return "bytes"
	default:
		return "invalid"
	}
}

// Value is a decoded header field.
//
// The variant is fixed when the field is decoded, so consumers switch on
// Kind once instead of type-asserting interface values.
type Value struct {
	raw  []byte
	text string
	num  uint64
	flt  float64
	kind Kind
}

// Int returns a Value holding a signed integer.
func Int(v int64) Value { return Value{kind: KindInt, num: uint64(v)} }

// Uint returns a Value holding an unsigned integer.
func Uint(v uint64) Value { return Value{kind: KindUint, num: v} }

// Float returns a Value holding a float.
func Float(v float64) Value { return Value{kind: KindFloat, flt: v} }

// Text returns a Value holding a string.
func Text(v string) Value { return Value{kind: KindText, text: v} }

// Bool returns a Value holding a boolean.
func Bool(v bool) Value {
	var n uint64
	if v {
		n = 1
	}
	return Value{kind: KindBool, num: n}
}

// Bytes returns a Value holding an opaque byte string. b is copied.
func Bytes(b []byte) Value { return Value{kind: KindBytes, raw: slices.Clone(b)} }

// Kind returns the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// Int returns the signed integer held by v.
func (v Value) Int() (int64, bool) { return int64(v.num), v.kind == KindInt }

// Uint returns the unsigned integer held by v.
func (v Value) Uint() (uint64, bool) { return v.num, v.kind == KindUint }

// Float returns the float held by v.
func (v Value) Float() (float64, bool) { return v.flt, v.kind == KindFloat }

// Text returns the string held by v.
func (v Value) Text() (string, bool) { return v.text, v.kind == KindText }

// Bool returns the boolean held by v.
func (v Value) Bool() (bool, bool) { return v.num != 0, v.kind == KindBool }

// Bytes returns the byte string held by v. The slice must not be modified.
func (v Value) Bytes() ([]byte, bool) { return v.raw, v.kind == KindBytes }

// IsEmpty reports whether v is the zero Value or an empty string.
func (v Value) IsEmpty() bool {
	switch v.kind {
	case KindInvalid:
		return true
	case KindText:
		return v.text == ""
	default:
		return false
	}
}

// String formats v for display.
func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(int64(v.num), 10)
	case KindUint:
		return strconv.FormatUint(v.num, 10)
	case KindFloat:
		return strconv.FormatFloat(v.flt, 'f', -1, 64)
	case KindText:
		return v.text
	case KindBool:
		return strconv.FormatBool(v.num != 0)
	case KindBytes:
		return hex.EncodeToString(v.raw)
	default:
		return ""
	}
}

// Any returns v as a plain Go value (int64, uint64, float64, string, bool,
// []byte or nil).
func (v Value) Any() any {
	switch v.kind {
	case KindInt:
		return int64(v.num)
	case KindUint:
		return v.num
	case KindFloat:
		return v.flt
	case KindText:
		return v.text
	case KindBool:
		return v.num != 0
	case KindBytes:
		return v.raw
	default:
		return nil
	}
}

// MarshalJSON encodes v as its natural JSON type. Byte strings are
// encoded as base64 like any []byte.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Any())
}

// Values maps field names to decoded values.
type Values map[string]Value

// Get returns the value stored under key.
func (vs Values) Get(key string) (Value, bool) {
	v, ok := vs[key]
	return v, ok
}

// Has reports whether key is present with a non-empty value.
func (vs Values) Has(key string) bool {
	v, ok := vs[key]
	return ok && !v.IsEmpty()
}

// Keys returns the keys in sorted order.
func (vs Values) Keys() []string {
	return slices.Sorted(maps.Keys(vs))
}

// All returns an iterator over the entries in key order.
//
// Example:
//
//	for key, value := range file.Tags.All() {
//		fmt.Printf("%s: %s\n", key, value)
//	}
func (vs Values) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for _, key := range vs.Keys() {
			if !yield(key, vs[key]) {
				return
			}
		}
	}
}
