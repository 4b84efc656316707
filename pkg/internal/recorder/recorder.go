// Package recorder captures frame trajectories to a byte stream and replays
// them. A Writer accepts frames like any other sink, encodes each one through
// a pluggable trace format (NDJSON or gob), and pushes the encoded bytes
// through an optional compression layer. A Reader reverses the pipeline and
// streams the frames back out.
//
// Format and compression algorithm are fixed at construction. Reading a
// stream with the wrong algorithm or format configured surfaces as an error
// from Next, never a panic. A gob round trip reproduces frames bit-exactly;
// an NDJSON round trip is value-identical within encoding/json's float64
// round-trip guarantee.
package recorder

import (
	"compress/gzip"
	"errors"
	"io"

	"github.com/andybalholm/brotli"
	"github.com/golang/snappy"
	"github.com/joeydtaylor/meander/pkg/internal/types"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4"
)

// ErrTraceNotBegun reports use of a trace writer or reader before Begin.
var ErrTraceNotBegun = errors.New("recorder: trace format used before Begin")

const (
	COMPRESS_NONE    types.CompressionAlgorithm = 0
	COMPRESS_DEFLATE types.CompressionAlgorithm = 1
	COMPRESS_SNAPPY  types.CompressionAlgorithm = 2
	COMPRESS_ZSTD    types.CompressionAlgorithm = 3
	COMPRESS_BROTLI  types.CompressionAlgorithm = 4
	COMPRESS_LZ4     types.CompressionAlgorithm = 5
)

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// newCompressor layers the configured compression codec over w. The returned
// WriteCloser must be closed to finalize the compressed stream; closing it
// does not close w.
func newCompressor(w io.Writer, algorithm types.CompressionAlgorithm) (io.WriteCloser, error) {
	switch algorithm {
	case COMPRESS_DEFLATE:
		return gzip.NewWriter(w), nil
	case COMPRESS_SNAPPY:
		return snappy.NewBufferedWriter(w), nil
	case COMPRESS_ZSTD:
		return zstd.NewWriter(w)
	case COMPRESS_BROTLI:
		return brotli.NewWriterLevel(w, brotli.BestCompression), nil
	case COMPRESS_LZ4:
		return lz4.NewWriter(w), nil
	default:
		return nopWriteCloser{w}, nil
	}
}

// newDecompressor layers the matching decompression codec over r. The second
// return releases decoder resources and is nil for codecs that hold none.
func newDecompressor(r io.Reader, algorithm types.CompressionAlgorithm) (io.Reader, func() error, error) {
	switch algorithm {
	case COMPRESS_DEFLATE:
		gz, err := gzip.NewReader(r)
		if err != nil {
			return nil, nil, err
		}
		return gz, gz.Close, nil
	case COMPRESS_SNAPPY:
		return snappy.NewReader(r), nil, nil
	case COMPRESS_ZSTD:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, nil, err
		}
		return dec, func() error { dec.Close(); return nil }, nil
	case COMPRESS_BROTLI:
		return brotli.NewReader(r), nil, nil
	case COMPRESS_LZ4:
		return lz4.NewReader(r), nil, nil
	default:
		return r, nil, nil
	}
}

// extSuffix returns the filename suffix conventionally appended for the
// configured compression codec.
func extSuffix(algorithm types.CompressionAlgorithm) string {
	switch algorithm {
	case COMPRESS_DEFLATE:
		return ".gz"
	case COMPRESS_SNAPPY:
		return ".snappy"
	case COMPRESS_ZSTD:
		return ".zst"
	case COMPRESS_BROTLI:
		return ".br"
	case COMPRESS_LZ4:
		return ".lz4"
	default:
		return ""
	}
}
