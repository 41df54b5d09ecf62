package wire

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"io"

	"github.com/golang/snappy"
	"github.com/klauspost/compress/zstd"
)

// Compressor applies symmetric compression to a serialized wire payload.
// Persisted snapshot files use this to shrink the fixed-layout binary
// records before writing them to disk; the rollout stream sends its
// frames uncompressed. Grounded on the teacher's
// internal/grpc/compress.go Compressor interface.
type Compressor interface {
	//1.- Name returns the codec identifier recorded alongside the payload.
	Name() string
	//2.- Compress encodes the provided payload into a compressed representation.
	Compress(data []byte) ([]byte, error)
	//3.- Decompress restores the original payload from its compressed form.
	Decompress(data []byte) ([]byte, error)
}

// NewCompressor resolves a Compressor by name: "gzip", "snappy", "zstd",
// or "" / "none" for a passthrough.
func NewCompressor(name string) (Compressor, error) {
	switch name {
	case "", "none":
		return noopCompressor{}, nil
	case "gzip":
		return gzipCompressor{}, nil
	case "snappy":
		return snappyCompressor{}, nil
	case "zstd":
		return zstdCompressor{}, nil
	default:
		return nil, fmt.Errorf("wire: unknown compressor %q", name)
	}
}

type noopCompressor struct{}

func (noopCompressor) Name() string                        { return "none" }
func (noopCompressor) Compress(data []byte) ([]byte, error) { return data, nil }
func (noopCompressor) Decompress(data []byte) ([]byte, error) { return data, nil }

// gzipCompressor wraps the standard library gzip implementation, kept as
// the teacher's own default codec.
type gzipCompressor struct{}

func (gzipCompressor) Name() string { return "gzip" }

func (gzipCompressor) Compress(data []byte) ([]byte, error) {
	//1.- Allocate a buffer so we can reuse the compressed bytes without copying.
	var buf bytes.Buffer
	writer := gzip.NewWriter(&buf)
	if _, err := writer.Write(data); err != nil {
		writer.Close()
		return nil, fmt.Errorf("gzip write: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("gzip close: %w", err)
	}
	return buf.Bytes(), nil
}

func (gzipCompressor) Decompress(data []byte) ([]byte, error) {
	//1.- Guard against nil payloads to simplify caller logic.
	if len(data) == 0 {
		return nil, fmt.Errorf("gzip decompress: empty payload")
	}
	reader, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("gzip reader: %w", err)
	}
	defer reader.Close()
	//2.- Copy the uncompressed bytes into a buffer for the caller.
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, reader); err != nil {
		return nil, fmt.Errorf("gzip copy: %w", err)
	}
	return buf.Bytes(), nil
}

// snappyCompressor wraps github.com/golang/snappy, a direct teacher
// dependency previously wired only through the now-dropped grpc/protobuf
// path.
type snappyCompressor struct{}

func (snappyCompressor) Name() string { return "snappy" }

func (snappyCompressor) Compress(data []byte) ([]byte, error) {
	return snappy.Encode(nil, data), nil
}

func (snappyCompressor) Decompress(data []byte) ([]byte, error) {
	out, err := snappy.Decode(nil, data)
	if err != nil {
		return nil, fmt.Errorf("snappy decode: %w", err)
	}
	return out, nil
}

// zstdCompressor wraps github.com/klauspost/compress/zstd, the same
// situation as snappyCompressor: declared in the teacher's go.mod, used
// here directly instead of through its absent grpc callers.
type zstdCompressor struct{}

func (zstdCompressor) Name() string { return "zstd" }

func (zstdCompressor) Compress(data []byte) ([]byte, error) {
	encoder, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, fmt.Errorf("zstd writer: %w", err)
	}
	defer encoder.Close()
	return encoder.EncodeAll(data, nil), nil
}

func (zstdCompressor) Decompress(data []byte) ([]byte, error) {
	decoder, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("zstd reader: %w", err)
	}
	defer decoder.Close()
	out, err := decoder.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("zstd decode: %w", err)
	}
	return out, nil
}
