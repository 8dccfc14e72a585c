package compress

import (
	"fmt"

	"github.com/corvidlabs/biocodec/format"
)

// Compressor compresses an inner frame payload before it is written to the
// wire.
type Compressor interface {
	// Compress compresses data and returns the compressed result.
	//
	// Memory management:
	//   - Returned slice is newly allocated and owned by the caller
	//   - Input slice is not modified
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses Compressor. origLen is the uncompressed length
// recorded in the outer frame (spec.md §6.1's origLen:u32-be) and is
// passed through so algorithms that need a size hint (LZ4) or that can use
// one to avoid buffer growth (Zstd) don't have to guess. S2 ignores it.
type Decompressor interface {
	Decompress(data []byte, origLen int) ([]byte, error)
}

// Codec combines both directions. A codec instance is stateless and safe
// for concurrent use by multiple Codec (frame) instances.
type Codec interface {
	Compressor
	Decompressor
}

// CreateCodec is a factory function that creates a Codec for the given
// compression type.
func CreateCodec(compressionType format.CompressionType) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCodec(), nil
	case format.CompressionZstd:
		return NewZstdCodec(), nil
	case format.CompressionS2:
		return NewS2Codec(), nil
	case format.CompressionLZ4:
		return NewLZ4Codec(), nil
	default:
		return nil, fmt.Errorf("compress: unsupported compression type: %s", compressionType)
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCodec(),
	format.CompressionZstd: NewZstdCodec(),
	format.CompressionS2:   NewS2Codec(),
	format.CompressionLZ4:  NewLZ4Codec(),
}

// GetCodec retrieves a shared, read-only Codec instance for the given
// compression type. The map is built once at package init and never
// mutated, so concurrent callers need no locking.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("compress: unsupported compression type: %s", compressionType)
}
