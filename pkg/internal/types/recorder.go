package types

import "io"

// CompressionAlgorithm identifies the codec applied to a trace on its way to
// or from the underlying byte stream.
type CompressionAlgorithm int

// TraceWriterOptions carry per-format knobs for trace writers.
type TraceWriterOptions struct {
	// e.g. schema version for the frame encoding
	SchemaVersion string
	// free-form: format-specific settings
	Extra map[string]string
}

// TraceReaderOptions carry per-format knobs for trace readers.
type TraceReaderOptions struct {
	// free-form: format-specific settings
	Extra map[string]string
}

// TraceWriter supports streaming write of frames (one at a time) to an underlying io.Writer.
type TraceWriter interface {
	// Begin initializes the writer with the destination sink and options.
	Begin(w io.Writer, opts TraceWriterOptions) error
	// Write appends one frame (buffering allowed internally).
	Write(frame Frame) error
	// Flush pushes internal buffers to the sink (optional for some formats).
	Flush() error
	// Close finalizes the stream and releases resources.
	Close() error
	// ContentType/Ext describe the produced stream for metadata and filenames.
	ContentType() string // e.g. "application/x-ndjson"
	Ext() string         // e.g. ".ndjson"
}

// TraceReader supports streaming read of frames from an underlying io.Reader.
type TraceReader interface {
	// Begin initializes the reader with the source and options.
	Begin(r io.Reader, opts TraceReaderOptions) error
	// Iterator-style decode.
	Next() bool
	Record() Frame
	Err() error
	// Close releases resources.
	Close() error
}

// TraceFormat binds a name to concrete reader/writer implementations.
type TraceFormat interface {
	// Canonical name: "ndjson", "gob"
	Name() string
	// Factory methods. Implementations may capture per-format defaults.
	NewTraceWriter() TraceWriter
	NewTraceReader() TraceReader
}
