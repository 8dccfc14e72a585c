package compress

// ZstdCodec backs format.CompressionZstd: the best compression ratio of
// the supported algorithms, at moderate speed — a good default for
// records that are archived or shipped over a constrained link.
//
// The actual implementation lives in zstd_pure.go (pure-Go
// klauspost/compress/zstd, selected by default) or zstd_cgo.go
// (cgo-accelerated github.com/valyala/gozstd, opt-in via the "gozstd"
// build tag so a default build never requires a native zstd toolchain),
// matching the split the teacher uses for the same reason.
type ZstdCodec struct{}

var _ Codec = (*ZstdCodec)(nil)

// NewZstdCodec creates a new Zstd codec.
func NewZstdCodec() ZstdCodec {
	return ZstdCodec{}
}
