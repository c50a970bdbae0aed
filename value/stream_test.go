package value

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/probeops/pinglog/errs"
)

// drain pulls every value until the stream signals a clean end.
func drain(t *testing.T, s *Stream) []Value {
	t.Helper()

	var out []Value
	for {
		v, ok, err := s.Next()
		require.NoError(t, err)
		if !ok {
			return out
		}
		out = append(out, v)
	}
}

func TestStream_Next_MixedValues(t *testing.T) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	require.NoError(t, enc.EncodeString("2020-01-01T00:00:00"))
	require.NoError(t, enc.EncodeInt(1000))
	require.NoError(t, enc.EncodeUint(2))
	require.NoError(t, enc.EncodeInt(-3))
	require.NoError(t, enc.EncodeFloat64(0.5))
	require.NoError(t, enc.EncodeBool(true))
	require.NoError(t, enc.EncodeNil())
	require.NoError(t, enc.EncodeBytes([]byte{0xaa, 0xbb}))

	got := drain(t, NewStream(&buf))

	want := []Value{
		NewString("2020-01-01T00:00:00"),
		NewInt(1000),
		NewInt(2),
		NewInt(-3),
		NewFloat(0.5),
		NewBool(true),
		NewNil(),
		NewBinary([]byte{0xaa, 0xbb}),
	}
	require.Equal(t, want, got)
}

func TestStream_Next_Arrays(t *testing.T) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	require.NoError(t, enc.EncodeArrayLen(0))
	require.NoError(t, enc.EncodeArrayLen(3))
	require.NoError(t, enc.EncodeInt(7))
	require.NoError(t, enc.EncodeString("x"))
	require.NoError(t, enc.EncodeArrayLen(1))
	require.NoError(t, enc.EncodeInt(9))

	got := drain(t, NewStream(&buf))

	require.Len(t, got, 2)
	require.Equal(t, NewArray(), got[0])
	require.Equal(t, NewArray(NewInt(7), NewString("x"), NewArray(NewInt(9))), got[1])
}

func TestStream_Next_EmptyInput(t *testing.T) {
	s := NewStream(bytes.NewReader(nil))

	v, ok, err := s.Next()
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, Value{}, v)

	// Exhausted streams keep signaling a clean end.
	_, ok, err = s.Next()
	require.NoError(t, err)
	require.False(t, ok)
}

func TestStream_Next_LargeValues(t *testing.T) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	require.NoError(t, enc.EncodeUint(1<<40)) // forces a uint64 marker path
	require.NoError(t, enc.EncodeInt(-(1 << 40)))

	got := drain(t, NewStream(&buf))

	require.Equal(t, []Value{NewInt(1 << 40), NewInt(-(1 << 40))}, got)
}

func TestStream_Next_UnsupportedMap(t *testing.T) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	require.NoError(t, enc.EncodeMapLen(1))
	require.NoError(t, enc.EncodeString("k"))
	require.NoError(t, enc.EncodeInt(1))

	s := NewStream(&buf)
	_, _, err := s.Next()
	require.ErrorIs(t, err, errs.ErrUnsupportedType)
}

func TestStream_Next_TruncatedArray(t *testing.T) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	require.NoError(t, enc.EncodeArrayLen(3))
	require.NoError(t, enc.EncodeInt(1))
	// Two elements missing: the value is torn, not a clean end.

	s := NewStream(&buf)
	_, _, err := s.Next()
	require.Error(t, err)
}

func TestStream_Next_TruncatedString(t *testing.T) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	require.NoError(t, enc.EncodeString("truncate me please"))
	raw := buf.Bytes()[:buf.Len()-4]

	s := NewStream(bytes.NewReader(raw))
	_, _, err := s.Next()
	require.Error(t, err)
}
