package compress

import "github.com/klauspost/compress/s2"

// S2Codec backs format.CompressionS2: fast with a good ratio, well suited
// to the modest record-sized payloads a bio frame typically carries.
type S2Codec struct{}

var _ Codec = (*S2Codec)(nil)

// NewS2Codec creates a new S2 codec.
func NewS2Codec() S2Codec {
	return S2Codec{}
}

// Compress compresses data using S2.
func (c S2Codec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

// Decompress reverses Compress. origLen is unused; S2's block format
// already self-describes its decoded length.
func (c S2Codec) Decompress(data []byte, _ int) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Decode(nil, data)
}
