package value

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/probeops/pinglog/errs"
)

func TestValue_Kinds(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		kind Kind
	}{
		{"nil", NewNil(), KindNil},
		{"bool", NewBool(true), KindBool},
		{"int", NewInt(42), KindInt},
		{"float", NewFloat(1.5), KindFloat},
		{"string", NewString("x"), KindString},
		{"binary", NewBinary([]byte{1, 2}), KindBinary},
		{"array", NewArray(NewInt(1)), KindArray},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.kind, tt.v.Kind())
		})
	}
}

func TestValue_Accessors(t *testing.T) {
	s, err := NewString("hello").Str()
	require.NoError(t, err)
	require.Equal(t, "hello", s)

	i, err := NewInt(-7).Int()
	require.NoError(t, err)
	require.Equal(t, int64(-7), i)

	f, err := NewFloat(2.25).Float()
	require.NoError(t, err)
	require.Equal(t, 2.25, f)

	b, err := NewBool(true).Bool()
	require.NoError(t, err)
	require.True(t, b)

	bin, err := NewBinary([]byte{0xde}).Bytes()
	require.NoError(t, err)
	require.Equal(t, []byte{0xde}, bin)

	arr, err := NewArray(NewInt(1), NewInt(2)).Array()
	require.NoError(t, err)
	require.Len(t, arr, 2)
}

func TestValue_Accessors_KindMismatch(t *testing.T) {
	_, err := NewInt(1).Str()
	require.ErrorIs(t, err, errs.ErrUnexpectedType)

	_, err = NewString("x").Int()
	require.ErrorIs(t, err, errs.ErrUnexpectedType)

	_, err = NewInt(1).Array()
	require.ErrorIs(t, err, errs.ErrUnexpectedType)

	_, err = NewArray().Float()
	require.ErrorIs(t, err, errs.ErrUnexpectedType)
}

func TestValue_Discriminators(t *testing.T) {
	require.True(t, NewString("x").IsString())
	require.False(t, NewString("x").IsArray())
	require.True(t, NewArray().IsArray())
	require.False(t, NewInt(1).IsString())
}

func TestValue_String(t *testing.T) {
	require.Equal(t, "nil", NewNil().String())
	require.Equal(t, "42", NewInt(42).String())
	require.Equal(t, "hello", NewString("hello").String())
	require.Equal(t, "[1 2 [3]]",
		NewArray(NewInt(1), NewInt(2), NewArray(NewInt(3))).String())
	require.Equal(t, "[]", NewArray().String())
}

func TestKind_String(t *testing.T) {
	require.Equal(t, "String", KindString.String())
	require.Equal(t, "Array", KindArray.String())
	require.Equal(t, "Invalid", KindInvalid.String())
}
