package compress

import (
	"sync"

	"github.com/pierrec/lz4/v4"
)

// lz4CompressorPool pools lz4.Compressor instances; they carry internal
// match-finder state worth reusing across calls.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4Codec backs format.CompressionLZ4. LZ4 has the fastest decompression
// of the three real algorithms, at the cost of a weaker ratio — a
// reasonable default for latency-sensitive producers.
type LZ4Codec struct{}

var _ Codec = (*LZ4Codec)(nil)

// NewLZ4Codec creates a new LZ4 codec.
func NewLZ4Codec() LZ4Codec {
	return LZ4Codec{}
}

// Compress compresses data using an LZ4 block (no LZ4 frame header, since
// the outer bio frame already carries the original length).
func (c LZ4Codec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	dst := make([]byte, lz4.CompressBlockBound(len(data)))

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		// Incompressible input: CompressBlock declines to emit a block
		// rather than grow past the input size. The raw-sized fallback
		// below never gets handed to Decompress, since the frame codec
		// only keeps the compressed form when it is strictly smaller
		// than the original plus its length prefix (spec.md invariant 6).
		return append([]byte(nil), data...), nil
	}

	return dst[:n], nil
}

// Decompress reverses Compress. origLen sizes the destination buffer
// exactly, since LZ4 blocks carry no length of their own.
func (c LZ4Codec) Decompress(data []byte, origLen int) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	dst := make([]byte, origLen)
	n, err := lz4.UncompressBlock(data, dst)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}
