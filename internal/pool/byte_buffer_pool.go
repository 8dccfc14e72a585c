// Package pool provides pooled growable byte buffers backing stream.BoStream,
// so repeated Encode calls do not allocate a fresh backing array every time.
package pool

import (
	"io"
	"sync"
)

// Default and threshold sizes for the record-body buffer pool. A bio
// record body is typically much smaller than the columnar blobs the
// teacher's pool was sized for, so these are scaled down accordingly.
const (
	RecordBufferDefaultSize  = 4 * 1024  // 4KiB
	RecordBufferMaxThreshold = 256 * 1024 // 256KiB
)

// ByteBuffer is a growable byte buffer with explicit capacity management,
// used as BoStream's backing store.
type ByteBuffer struct {
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the specified default size.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset empties the buffer but keeps its backing array.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the capacity of the buffer.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// MustWrite appends data, growing the buffer if necessary.
func (bb *ByteBuffer) MustWrite(data []byte) {
	bb.B = append(bb.B, data...)
}

// Slice returns bb.B[start:end]. Panics if the indices are out of bounds.
func (bb *ByteBuffer) Slice(start, end int) []byte {
	if start < 0 || end < start || end > cap(bb.B) {
		panic("pool: Slice: invalid indices")
	}

	return bb.B[start:end]
}

// SetLength sets the length of the buffer to n. Panics if n is negative or
// greater than the capacity.
func (bb *ByteBuffer) SetLength(n int) {
	if n < 0 || n > cap(bb.B) {
		panic("pool: SetLength: invalid length")
	}
	bb.B = bb.B[:n]
}

// Extend extends the buffer by n bytes if there is sufficient spare capacity.
func (bb *ByteBuffer) Extend(n int) bool {
	curLen := len(bb.B)
	if cap(bb.B)-curLen < n {
		return false
	}

	bb.B = bb.B[:curLen+n]

	return true
}

// ExtendOrGrow extends the buffer by n bytes, reallocating if necessary, and
// returns the start offset of the newly extended region.
func (bb *ByteBuffer) ExtendOrGrow(n int) int {
	start := len(bb.B)
	if bb.Extend(n) {
		return start
	}

	bb.Grow(n)
	bb.B = bb.B[:start+n]

	return start
}

// Grow ensures the buffer can hold requiredBytes more bytes without
// reallocating.
//
// Growth strategy: for small buffers (<4x RecordBufferDefaultSize), grow by
// RecordBufferDefaultSize to minimize reallocations; for larger buffers,
// grow by 25% of current capacity.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return
	}

	growBy := RecordBufferDefaultSize
	if cap(bb.B) > 4*RecordBufferDefaultSize {
		growBy = cap(bb.B) / 4
	}

	if growBy < requiredBytes {
		growBy = requiredBytes
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// Write implements io.Writer.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.B = append(bb.B, data...)
	return len(data), nil
}

// WriteTo implements io.WriterTo.
func (bb *ByteBuffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(bb.B)
	return int64(n), err
}

// ByteBufferPool pools ByteBuffers to minimize allocations across Encode
// calls.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a new ByteBufferPool with buffers of the given
// default size. Buffers larger than maxThreshold are dropped on Put rather
// than retained, to bound pool memory.
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a ByteBuffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool for reuse.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var recordPool = NewByteBufferPool(RecordBufferDefaultSize, RecordBufferMaxThreshold)

// GetRecordBuffer retrieves a ByteBuffer from the default record-body pool.
func GetRecordBuffer() *ByteBuffer {
	return recordPool.Get()
}

// PutRecordBuffer returns a ByteBuffer to the default record-body pool.
func PutRecordBuffer(bb *ByteBuffer) {
	recordPool.Put(bb)
}
