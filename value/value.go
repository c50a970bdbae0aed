package value

import (
	"fmt"
	"strings"

	"github.com/probeops/pinglog/errs"
)

// Kind identifies the dynamic type of a decoded Value.
type Kind uint8

const (
	KindInvalid Kind = iota // KindInvalid is the zero Kind; no valid Value carries it.
	KindNil                 // KindNil represents the MessagePack nil value.
	KindBool                // KindBool represents a boolean.
	KindInt                 // KindInt represents a signed or unsigned integer.
	KindFloat               // KindFloat represents a 32- or 64-bit float.
	KindString              // KindString represents a UTF-8 string.
	KindBinary              // KindBinary represents a raw byte blob.
	KindArray               // KindArray represents an ordered sequence of values.
)

func (k Kind) String() string {
	switch k {
	case KindNil:
		return "Nil"
	case KindBool:
		return "Bool"
	case KindInt:
		return "Int"
	case KindFloat:
		return "Float"
	case KindString:
		return "String"
	case KindBinary:
		return "Binary"
	case KindArray:
		return "Array"
	default:
		return "Invalid"
	}
}

// Value is a single decoded MessagePack value: a tagged variant over the
// kinds the telemetry log can contain. Values are immutable after decoding.
//
// Accessors come in checked form only (returning an error on a kind
// mismatch); the caller is expected to discriminate with Kind, IsString or
// IsArray before extracting.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
	bin  []byte
	arr  []Value
}

// NewNil returns the nil value.
func NewNil() Value { return Value{kind: KindNil} }

// NewBool returns a boolean value.
func NewBool(b bool) Value { return Value{kind: KindBool, b: b} }

// NewInt returns an integer value.
func NewInt(i int64) Value { return Value{kind: KindInt, i: i} }

// NewFloat returns a floating-point value.
func NewFloat(f float64) Value { return Value{kind: KindFloat, f: f} }

// NewString returns a string value.
func NewString(s string) Value { return Value{kind: KindString, s: s} }

// NewBinary returns a binary value. The slice is not copied.
func NewBinary(b []byte) Value { return Value{kind: KindBinary, bin: b} }

// NewArray returns an array value. The slice is not copied.
func NewArray(elems ...Value) Value { return Value{kind: KindArray, arr: elems} }

// Kind returns the dynamic type tag of the value.
func (v Value) Kind() Kind { return v.kind }

// IsString reports whether the value is a UTF-8 string.
func (v Value) IsString() bool { return v.kind == KindString }

// IsArray reports whether the value is an ordered sequence of values.
func (v Value) IsArray() bool { return v.kind == KindArray }

func (v Value) errUnexpected(want Kind) error {
	return fmt.Errorf("%w: want %s, got %s", errs.ErrUnexpectedType, want, v.kind)
}

// Str returns the string payload, or an error if the value is not a string.
func (v Value) Str() (string, error) {
	if v.kind != KindString {
		return "", v.errUnexpected(KindString)
	}

	return v.s, nil
}

// Int returns the integer payload, or an error if the value is not an integer.
func (v Value) Int() (int64, error) {
	if v.kind != KindInt {
		return 0, v.errUnexpected(KindInt)
	}

	return v.i, nil
}

// Float returns the floating-point payload, or an error if the value is not a float.
func (v Value) Float() (float64, error) {
	if v.kind != KindFloat {
		return 0, v.errUnexpected(KindFloat)
	}

	return v.f, nil
}

// Bool returns the boolean payload, or an error if the value is not a boolean.
func (v Value) Bool() (bool, error) {
	if v.kind != KindBool {
		return false, v.errUnexpected(KindBool)
	}

	return v.b, nil
}

// Bytes returns the binary payload, or an error if the value is not binary.
func (v Value) Bytes() ([]byte, error) {
	if v.kind != KindBinary {
		return nil, v.errUnexpected(KindBinary)
	}

	return v.bin, nil
}

// Array returns the element slice, or an error if the value is not an array.
// The returned slice shares memory with the value; do not modify it.
func (v Value) Array() ([]Value, error) {
	if v.kind != KindArray {
		return nil, v.errUnexpected(KindArray)
	}

	return v.arr, nil
}

// String renders the value for human-readable output.
func (v Value) String() string {
	switch v.kind {
	case KindNil:
		return "nil"
	case KindBool:
		return fmt.Sprintf("%t", v.b)
	case KindInt:
		return fmt.Sprintf("%d", v.i)
	case KindFloat:
		return fmt.Sprintf("%g", v.f)
	case KindString:
		return v.s
	case KindBinary:
		return fmt.Sprintf("0x%x", v.bin)
	case KindArray:
		var sb strings.Builder
		sb.WriteByte('[')
		for i, e := range v.arr {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(e.String())
		}
		sb.WriteByte(']')

		return sb.String()
	default:
		return "<invalid>"
	}
}
