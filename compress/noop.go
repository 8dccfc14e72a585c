package compress

// NoOpCodec bypasses compression entirely. It backs format.CompressionNone
// and is also the frame codec's compressor when none is supplied to
// frame.NewCodec. When a configured compressor fails to shrink the payload
// by the required margin, the frame codec writes the raw payload itself
// rather than going through this codec.
type NoOpCodec struct{}

var _ Codec = (*NoOpCodec)(nil)

// NewNoOpCodec creates a no-op codec.
func NewNoOpCodec() NoOpCodec {
	return NoOpCodec{}
}

// Compress returns data unchanged.
//
// Note: the returned slice shares the input's backing array. Callers must
// not mutate data after calling this if they still hold the result.
func (c NoOpCodec) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns data unchanged.
func (c NoOpCodec) Decompress(data []byte, _ int) ([]byte, error) {
	return data, nil
}
