package builder

import (
	"io"

	"github.com/joeydtaylor/meander/pkg/internal/recorder"
	"github.com/joeydtaylor/meander/pkg/internal/types"
)

// CompressionAlgorithm defines the types of compression available for traces.
type CompressionAlgorithm = types.CompressionAlgorithm

type TraceFormat = types.TraceFormat

type TraceWriter = recorder.Writer

type TraceReader = recorder.Reader

// Constants for compression algorithms.
const (
	COMPRESS_NONE    CompressionAlgorithm = recorder.COMPRESS_NONE
	COMPRESS_DEFLATE CompressionAlgorithm = recorder.COMPRESS_DEFLATE
	COMPRESS_SNAPPY  CompressionAlgorithm = recorder.COMPRESS_SNAPPY
	COMPRESS_ZSTD    CompressionAlgorithm = recorder.COMPRESS_ZSTD
	COMPRESS_BROTLI  CompressionAlgorithm = recorder.COMPRESS_BROTLI
	COMPRESS_LZ4     CompressionAlgorithm = recorder.COMPRESS_LZ4
)

// ErrTraceWriterClosed reports a write against a closed trace writer.
var ErrTraceWriterClosed = recorder.ErrWriterClosed

// ErrTraceReaderClosed reports a read against a closed trace reader.
var ErrTraceReaderClosed = recorder.ErrReaderClosed

// NewNDJSONFormat returns the newline-delimited JSON trace format.
func NewNDJSONFormat() types.TraceFormat {
	return recorder.NewNDJSONFormat()
}

// NewGobFormat returns the gob trace format. Gob round trips reproduce frames
// bit-exactly.
func NewGobFormat() types.TraceFormat {
	return recorder.NewGobFormat()
}

// NewTraceWriter creates a frame sink that records every submitted frame to
// dst through the configured format and compression codec.
func NewTraceWriter(dst io.Writer, options ...types.Option[*recorder.Writer]) (*recorder.Writer, error) {
	return recorder.NewWriter(dst, options...)
}

// TraceWriterWithFormat selects the trace format. NDJSON is the default.
func TraceWriterWithFormat(format types.TraceFormat) types.Option[*recorder.Writer] {
	return recorder.WriterWithFormat(format)
}

// TraceWriterWithCompression selects the trace compression codec.
func TraceWriterWithCompression(algorithm CompressionAlgorithm) types.Option[*recorder.Writer] {
	return recorder.WriterWithCompression(algorithm)
}

// TraceWriterWithSchemaVersion stamps the trace with a frame schema version,
// for formats that carry one.
func TraceWriterWithSchemaVersion(version string) types.Option[*recorder.Writer] {
	return recorder.WriterWithSchemaVersion(version)
}

// TraceWriterWithLogger adds a logger to the trace writer.
func TraceWriterWithLogger(loggers ...types.Logger) types.Option[*recorder.Writer] {
	return recorder.WriterWithLogger(loggers...)
}

// TraceWriterWithSensor adds a sensor notified on record writes and flushes.
func TraceWriterWithSensor(sensors ...types.FrameSensor) types.Option[*recorder.Writer] {
	return recorder.WriterWithSensor(sensors...)
}

// TraceWriterWithComponentMetadata adds component metadata overrides.
func TraceWriterWithComponentMetadata(name string, id string) types.Option[*recorder.Writer] {
	return recorder.WriterWithComponentMetadata(name, id)
}

// NewTraceReader opens a recorded trace for replay. Format and compression
// must match what the trace was written with.
func NewTraceReader(src io.Reader, options ...types.Option[*recorder.Reader]) (*recorder.Reader, error) {
	return recorder.NewReader(src, options...)
}

// TraceReaderWithFormat selects the trace format to decode.
func TraceReaderWithFormat(format types.TraceFormat) types.Option[*recorder.Reader] {
	return recorder.ReaderWithFormat(format)
}

// TraceReaderWithCompression selects the codec the trace is decompressed
// with.
func TraceReaderWithCompression(algorithm CompressionAlgorithm) types.Option[*recorder.Reader] {
	return recorder.ReaderWithCompression(algorithm)
}

// TraceReaderWithLogger adds a logger to the trace reader.
func TraceReaderWithLogger(loggers ...types.Logger) types.Option[*recorder.Reader] {
	return recorder.ReaderWithLogger(loggers...)
}

// TraceReaderWithComponentMetadata adds component metadata overrides.
func TraceReaderWithComponentMetadata(name string, id string) types.Option[*recorder.Reader] {
	return recorder.ReaderWithComponentMetadata(name, id)
}
