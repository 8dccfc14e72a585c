//go:build gozstd

package compress

import "github.com/valyala/gozstd"

// Compress compresses data using cgo-accelerated Zstandard.
func (c ZstdCodec) Compress(data []byte) ([]byte, error) {
	return gozstd.CompressLevel(nil, data, 3), nil
}

// Decompress reverses Compress. origLen sizes the destination buffer
// up front to avoid reallocation.
func (c ZstdCodec) Decompress(data []byte, origLen int) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	dst := make([]byte, 0, origLen)

	return gozstd.Decompress(dst, data)
}
