package value

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/vmihailenco/msgpack/v5/msgpcode"

	"github.com/probeops/pinglog/errs"
)

// Stream is a forward-only pull source of decoded values over a MessagePack
// byte stream. Each call to Next yields the next top-level value or signals
// end of input.
//
// The stream discriminates value kinds from the MessagePack marker byte
// before decoding, so callers always receive an explicit tagged Value rather
// than an interface{} they would have to type-inspect.
//
// Note: Stream is NOT safe for concurrent use.
type Stream struct {
	dec *msgpack.Decoder
}

// NewStream creates a value stream reading from r.
//
// The stream buffers internally; r does not need to be buffered.
func NewStream(r io.Reader) *Stream {
	return &Stream{dec: msgpack.NewDecoder(r)}
}

// Next pulls the next value from the stream.
//
// Returns:
//   - Value: the decoded value when ok is true
//   - bool: false when the stream is cleanly exhausted (not an error)
//   - error: decode or I/O failure; the stream is unusable afterwards
//
// A clean end of input is only reported at a value boundary. Running out of
// bytes in the middle of a value is a hard decode failure.
func (s *Stream) Next() (Value, bool, error) {
	code, err := s.dec.PeekCode()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Value{}, false, nil
		}

		return Value{}, false, fmt.Errorf("peek value marker: %w", err)
	}

	v, err := s.read(code)
	if err != nil {
		return Value{}, false, err
	}

	return v, true, nil
}

// read decodes one value whose marker byte has already been peeked.
// Array elements recurse through readNested so a torn element surfaces as
// io.ErrUnexpectedEOF instead of a clean end.
func (s *Stream) read(code byte) (Value, error) {
	switch {
	case msgpcode.IsString(code):
		str, err := s.dec.DecodeString()
		if err != nil {
			return Value{}, fmt.Errorf("decode string: %w", err)
		}

		return NewString(str), nil

	case msgpcode.IsFixedNum(code),
		code == msgpcode.Int8, code == msgpcode.Int16,
		code == msgpcode.Int32, code == msgpcode.Int64:
		i, err := s.dec.DecodeInt64()
		if err != nil {
			return Value{}, fmt.Errorf("decode int: %w", err)
		}

		return NewInt(i), nil

	case code == msgpcode.Uint8, code == msgpcode.Uint16,
		code == msgpcode.Uint32, code == msgpcode.Uint64:
		u, err := s.dec.DecodeUint64()
		if err != nil {
			return Value{}, fmt.Errorf("decode uint: %w", err)
		}
		if u > math.MaxInt64 {
			return Value{}, fmt.Errorf("%w: %d", errs.ErrIntegerOverflow, u)
		}

		return NewInt(int64(u)), nil

	case code == msgpcode.Float, code == msgpcode.Double:
		f, err := s.dec.DecodeFloat64()
		if err != nil {
			return Value{}, fmt.Errorf("decode float: %w", err)
		}

		return NewFloat(f), nil

	case code == msgpcode.True, code == msgpcode.False:
		b, err := s.dec.DecodeBool()
		if err != nil {
			return Value{}, fmt.Errorf("decode bool: %w", err)
		}

		return NewBool(b), nil

	case code == msgpcode.Nil:
		if err := s.dec.DecodeNil(); err != nil {
			return Value{}, fmt.Errorf("decode nil: %w", err)
		}

		return NewNil(), nil

	case msgpcode.IsBin(code):
		b, err := s.dec.DecodeBytes()
		if err != nil {
			return Value{}, fmt.Errorf("decode binary: %w", err)
		}

		return NewBinary(b), nil

	case msgpcode.IsFixedArray(code), code == msgpcode.Array16, code == msgpcode.Array32:
		length, err := s.dec.DecodeArrayLen()
		if err != nil {
			return Value{}, fmt.Errorf("decode array length: %w", err)
		}

		elems := make([]Value, 0, length)
		for i := 0; i < length; i++ {
			elem, err := s.readNested()
			if err != nil {
				return Value{}, fmt.Errorf("decode array element %d: %w", i, err)
			}
			elems = append(elems, elem)
		}

		return NewArray(elems...), nil

	case msgpcode.IsFixedMap(code), code == msgpcode.Map16, code == msgpcode.Map32:
		return Value{}, fmt.Errorf("%w: map", errs.ErrUnsupportedType)

	case msgpcode.IsExt(code):
		return Value{}, fmt.Errorf("%w: extension", errs.ErrUnsupportedType)

	default:
		return Value{}, fmt.Errorf("%w: marker 0x%02x", errs.ErrUnsupportedType, code)
	}
}

func (s *Stream) readNested() (Value, error) {
	code, err := s.dec.PeekCode()
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}

		return Value{}, err
	}

	return s.read(code)
}
