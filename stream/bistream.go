package stream

import (
	"encoding/binary"
	"math"

	"github.com/corvidlabs/biocodec/errs"
)

// BiStream is an input stream wrapping a caller-owned, immutable byte
// slice with a read cursor. It does not take ownership of data and never
// copies it except where a returned string must outlive the slice's
// backing array; raw and nested-blob reads return aliases.
type BiStream struct {
	data        []byte
	pos         int
	lengthAsInt bool
}

// NewBiStream wraps data for reading from offset 0.
func NewBiStream(data []byte) *BiStream {
	return &BiStream{data: data}
}

// Available returns the number of unread bytes remaining.
func (s *BiStream) Available() int { return len(s.data) - s.pos }

// Position returns the current read cursor offset.
func (s *BiStream) Position() int { return s.pos }

// LengthAsInt reports the current length-mode bit.
func (s *BiStream) LengthAsInt() bool { return s.lengthAsInt }

// SetLengthAsInt sets the length-mode bit, returning the previous value so
// callers can restore it after reading a nested record.
func (s *BiStream) SetLengthAsInt(v bool) bool {
	prev := s.lengthAsInt
	s.lengthAsInt = v
	return prev
}

func (s *BiStream) take(n int) ([]byte, error) {
	if n < 0 || s.Available() < n {
		return nil, errs.ErrTruncated
	}
	b := s.data[s.pos : s.pos+n]
	s.pos += n
	return b, nil
}

// ReadRaw consumes and returns the next n bytes verbatim. The returned
// slice aliases the stream's backing array.
func (s *BiStream) ReadRaw(n int) ([]byte, error) {
	return s.take(n)
}

// ReadUint8 consumes a single byte.
func (s *BiStream) ReadUint8() (uint8, error) {
	b, err := s.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadBool consumes a single byte as a boolean.
func (s *BiStream) ReadBool() (bool, error) {
	b, err := s.ReadUint8()
	if err != nil {
		return false, err
	}
	return b != 0, nil
}

// ReadUint16 consumes a big-endian uint16.
func (s *BiStream) ReadUint16() (uint16, error) {
	b, err := s.take(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

// ReadUint32 consumes a big-endian uint32.
func (s *BiStream) ReadUint32() (uint32, error) {
	b, err := s.take(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

// ReadUint64 consumes a big-endian uint64.
func (s *BiStream) ReadUint64() (uint64, error) {
	b, err := s.take(8)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b), nil
}

// ReadInt16 consumes a Short value.
func (s *BiStream) ReadInt16() (int16, error) {
	v, err := s.ReadUint16()
	return int16(v), err
}

// ReadInt32 consumes an Integer value.
func (s *BiStream) ReadInt32() (int32, error) {
	v, err := s.ReadUint32()
	return int32(v), err
}

// ReadInt64 consumes a Long (or Time) value.
func (s *BiStream) ReadInt64() (int64, error) {
	v, err := s.ReadUint64()
	return int64(v), err
}

// ReadFloat32 consumes a Float value.
func (s *BiStream) ReadFloat32() (float32, error) {
	v, err := s.ReadUint32()
	return math.Float32frombits(v), err
}

// ReadFloat64 consumes a Double value.
func (s *BiStream) ReadFloat64() (float64, error) {
	v, err := s.ReadUint64()
	return math.Float64frombits(v), err
}

// ReadLength reads a length prefix in the current length mode.
func (s *BiStream) ReadLength() (int, error) {
	if s.lengthAsInt {
		v, err := s.ReadUint32()
		return int(v), err
	}
	v, err := s.ReadUint16()
	return int(v), err
}

// ReadTagCode reads a tag's numeric code, u16 big-endian by default or a
// single byte when narrow is set (dictionary uses 8-bit tag codes).
func (s *BiStream) ReadTagCode(narrow bool) (uint16, error) {
	if narrow {
		v, err := s.ReadUint8()
		return uint16(v), err
	}
	return s.ReadUint16()
}

// TagHeader is the [type][container][tagCode] triplet preceding a tag's
// payload.
type TagHeader struct {
	Type      uint8
	Container uint8
	Code      uint16
}

// ReadTagHeader reads a tag header.
func (s *BiStream) ReadTagHeader(narrowCode bool) (TagHeader, error) {
	var h TagHeader

	typ, err := s.ReadUint8()
	if err != nil {
		return h, err
	}
	container, err := s.ReadUint8()
	if err != nil {
		return h, err
	}
	code, err := s.ReadTagCode(narrowCode)
	if err != nil {
		return h, err
	}

	h.Type, h.Container, h.Code = typ, container, code
	return h, nil
}

// ReadBioBytes reads [length][bytes] using the current length mode. The
// returned slice aliases the stream's backing array; callers that need to
// retain it across the caller-owned slice's lifetime must copy it.
func (s *BiStream) ReadBioBytes() ([]byte, error) {
	n, err := s.ReadLength()
	if err != nil {
		return nil, err
	}
	return s.take(n)
}

// ReadASCIIString reads a length-prefixed ASCII string.
func (s *BiStream) ReadASCIIString() (string, error) {
	b, err := s.ReadBioBytes()
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ReadUTFString reads a length-prefixed UTF-8 string.
func (s *BiStream) ReadUTFString() (string, error) {
	b, err := s.ReadBioBytes()
	if err != nil {
		return "", err
	}
	return string(b), nil
}
