// Package compress implements the chunk compression envelope.
//
// # Overview
//
// Every chunk in a container may be stored raw or zlib-deflated; the
// choice is recorded in the ASCII case of the chunk tag's second byte,
// not in the payload itself, so decompression never needs to sniff the
// stream.
//
//	codec, _ := compress.NewZlibCompressor(6)
//	compressed, _ := codec.Compress(payload)
//	original, _ := codec.Decompress(compressed)
//
// # No-op passthrough
//
// WriteEnvelope picks the codec itself: level 0 (or below) selects
// NewNoOpCompressor, which copies the payload through unchanged so the
// envelope's compression flag stays raw; any level above 0 selects
// NewZlibCompressor.
//
// # Why zlib only
//
// The container format has exactly one compression flag bit. A second
// or third backend (zstd, lz4, s2, all present in the library this
// package is descended from) has no wire-format slot to select it from,
// so this package carries only the one algorithm the format can express.
package compress
