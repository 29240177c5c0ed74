package compress

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/zlib"

	"github.com/panzi/xzib/errs"
)

// ZlibCompressor deflates a chunk payload through klauspost/compress's
// zlib implementation, the same wire-compatible zlib stream the
// standard library's compress/zlib produces, at higher throughput.
type ZlibCompressor struct {
	level int
}

var _ Codec = ZlibCompressor{}

// NewZlibCompressor returns a codec at the given zlib level (0-9, so
// zlib.BestSpeed and zlib.BestCompression are accepted; negative levels
// such as zlib.DefaultCompression are rejected).
func NewZlibCompressor(level int) (ZlibCompressor, error) {
	if level < 0 || level > 9 {
		return ZlibCompressor{}, errs.NewInvalidParams("compression level must be 0..9")
	}
	return ZlibCompressor{level: level}, nil
}

// Compress deflates data at the codec's configured level.
func (c ZlibCompressor) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := zlib.NewWriterLevel(&buf, c.level)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(data); err != nil {
		w.Close()
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decompress inflates a zlib stream previously produced by Compress.
func (c ZlibCompressor) Decompress(data []byte) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, errs.NewReadErrorCause(errs.ReadBrokenFile, "invalid zlib stream", err)
	}
	defer r.Close()

	out, err := io.ReadAll(r)
	if err != nil {
		return nil, errs.NewReadErrorCause(errs.ReadBrokenFile, "truncated zlib stream", err)
	}
	return out, nil
}
