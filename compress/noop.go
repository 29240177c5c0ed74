package compress

// NoOpCompressor bypasses compression: used for chunk writes at
// compression level 0, where the envelope's byte-1 flag stays raw.
type NoOpCompressor struct{}

var _ Codec = NoOpCompressor{}

// NewNoOpCompressor returns a no-op codec.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns an unchanged copy of data.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return append([]byte(nil), data...), nil
}

// Decompress returns data unchanged.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
