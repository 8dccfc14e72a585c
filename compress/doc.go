// Package compress provides the pluggable compressor used by the frame
// codec's optional compression stage (spec.md §4.2 step 4: "compressed
// form is chosen only when compressed.len + 4 < inner.len").
//
// # Supported algorithms
//
//   - None: no compression, the frame carries the payload verbatim
//   - Zstd: best ratio, moderate speed (github.com/klauspost/compress/zstd,
//     or github.com/valyala/gozstd under the "gozstd" build tag)
//   - S2: fast, good ratio (github.com/klauspost/compress/s2)
//   - LZ4: very fast decompression (github.com/pierrec/lz4/v4)
//
// Compress/Decompress are treated as synchronous pure byte transforms: any
// error they return is surfaced to the caller as a wrapped parser error,
// never swallowed. Decompress always receives the original (uncompressed)
// length recorded in the outer frame, since the wire format carries it
// explicitly rather than relying on each algorithm's own length framing.
package compress
