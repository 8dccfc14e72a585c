// Package stream implements the codec's byte-level read/write primitives
// (spec §4.1): a growable output stream (BoStream) and an immutable-slice
// input stream (BiStream), both carrying a per-record length-mode bit that
// selects u16 vs u32 length prefixes.
//
// The wire format fixes big-endian multibyte encoding throughout, so unlike
// the teacher's encoding package (which abstracts byte order behind a
// pluggable EndianEngine to support both little- and big-endian columnar
// blobs), these streams write directly via encoding/binary.BigEndian — a
// swappable engine would be unused generality here.
package stream

import (
	"encoding/binary"
	"math"

	"github.com/corvidlabs/biocodec/internal/pool"
)

// BoStream is a growable output stream used to build a record body (or an
// outer frame's payload) incrementally. Its length-mode bit controls the
// width writeLength and writeBioBytes use; the caller sets it per record
// from BioObj.isLarge and must save/restore it around nested records.
type BoStream struct {
	buf         *pool.ByteBuffer
	lengthAsInt bool
}

// NewBoStream allocates a BoStream backed by a pooled buffer.
func NewBoStream() *BoStream {
	return &BoStream{buf: pool.GetRecordBuffer()}
}

// Release returns the backing buffer to the pool. The BoStream must not be
// used afterward.
func (s *BoStream) Release() {
	pool.PutRecordBuffer(s.buf)
	s.buf = nil
}

// Bytes returns the bytes written so far. The returned slice aliases the
// stream's backing array and is only valid until the next write or Release.
func (s *BoStream) Bytes() []byte { return s.buf.Bytes() }

// Len returns the number of bytes written so far.
func (s *BoStream) Len() int { return s.buf.Len() }

// Truncate discards everything written after offset n, rewinding the
// stream as if those writes never happened. Used to retract a tag header
// written speculatively before its payload turned out to be omittable.
func (s *BoStream) Truncate(n int) { s.buf.SetLength(n) }

// LengthAsInt reports the current length-mode bit.
func (s *BoStream) LengthAsInt() bool { return s.lengthAsInt }

// SetLengthAsInt sets the length-mode bit, returning the previous value so
// callers can restore it after writing a nested record.
func (s *BoStream) SetLengthAsInt(v bool) bool {
	prev := s.lengthAsInt
	s.lengthAsInt = v
	return prev
}

// WriteRaw appends data verbatim, with no length prefix.
func (s *BoStream) WriteRaw(data []byte) {
	s.buf.MustWrite(data)
}

// WriteUint8 appends a single byte.
func (s *BoStream) WriteUint8(v uint8) {
	start := s.buf.ExtendOrGrow(1)
	s.buf.B[start] = v
}

// WriteBool appends a boolean as a single byte (0 or 1).
func (s *BoStream) WriteBool(v bool) {
	if v {
		s.WriteUint8(1)
	} else {
		s.WriteUint8(0)
	}
}

// WriteUint16 appends v big-endian.
func (s *BoStream) WriteUint16(v uint16) {
	start := s.buf.ExtendOrGrow(2)
	binary.BigEndian.PutUint16(s.buf.B[start:], v)
}

// WriteUint32 appends v big-endian.
func (s *BoStream) WriteUint32(v uint32) {
	start := s.buf.ExtendOrGrow(4)
	binary.BigEndian.PutUint32(s.buf.B[start:], v)
}

// WriteUint64 appends v big-endian.
func (s *BoStream) WriteUint64(v uint64) {
	start := s.buf.ExtendOrGrow(8)
	binary.BigEndian.PutUint64(s.buf.B[start:], v)
}

// WriteInt16 appends a Short value.
func (s *BoStream) WriteInt16(v int16) { s.WriteUint16(uint16(v)) }

// WriteInt32 appends an Integer value.
func (s *BoStream) WriteInt32(v int32) { s.WriteUint32(uint32(v)) }

// WriteInt64 appends a Long (or Time) value.
func (s *BoStream) WriteInt64(v int64) { s.WriteUint64(uint64(v)) }

// WriteFloat32 appends a Float value.
func (s *BoStream) WriteFloat32(v float32) { s.WriteUint32(math.Float32bits(v)) }

// WriteFloat64 appends a Double value.
func (s *BoStream) WriteFloat64(v float64) { s.WriteUint64(math.Float64bits(v)) }

// WriteLength writes n using the current length mode: u16 big-endian when
// lengthAsInt is false, u32 big-endian when true.
func (s *BoStream) WriteLength(n int) {
	if s.lengthAsInt {
		s.WriteUint32(uint32(n))
	} else {
		s.WriteUint16(uint16(n))
	}
}

// WriteTagCode writes a tag's numeric code, u16 big-endian by default or a
// single byte when the owning dictionary uses narrow (u8) tag codes.
func (s *BoStream) WriteTagCode(code uint16, narrow bool) {
	if narrow {
		s.WriteUint8(uint8(code))
	} else {
		s.WriteUint16(code)
	}
}

// WriteTagHeader writes the [type:1][container:1][tagCode] triplet that
// precedes every tag's payload.
func (s *BoStream) WriteTagHeader(typ uint8, container uint8, code uint16, narrowCode bool) {
	s.WriteUint8(typ)
	s.WriteUint8(container)
	s.WriteTagCode(code, narrowCode)
}

// WriteBioBytes writes [length][bytes] using the current length mode. Used
// for nested BioObject/Properties blobs and for String/UtfString/JavaObject
// scalar payloads.
func (s *BoStream) WriteBioBytes(data []byte) {
	s.WriteLength(len(data))
	s.WriteRaw(data)
}

// WriteASCIIString writes an ASCII string as [len][bytes].
func (s *BoStream) WriteASCIIString(str string) {
	s.WriteBioBytes([]byte(str))
}

// WriteUTFString writes a UTF-8 string as [len][bytes].
func (s *BoStream) WriteUTFString(str string) {
	s.WriteBioBytes([]byte(str))
}
