package recorder

import "github.com/joeydtaylor/meander/pkg/internal/types"

// WriterWithFormat selects the trace format frames are encoded with.
func WriterWithFormat(format types.TraceFormat) types.Option[*Writer] {
	return func(w *Writer) {
		if format != nil {
			w.format = format
		}
	}
}

// WriterWithCompression selects the compression codec layered under the
// trace format.
func WriterWithCompression(algorithm types.CompressionAlgorithm) types.Option[*Writer] {
	return func(w *Writer) {
		w.algorithm = algorithm
	}
}

// WriterWithSchemaVersion stamps the trace with a frame schema version, for
// formats that carry one.
func WriterWithSchemaVersion(version string) types.Option[*Writer] {
	return func(w *Writer) {
		w.opts.SchemaVersion = version
	}
}

// WriterWithLogger attaches loggers to the writer.
func WriterWithLogger(loggers ...types.Logger) types.Option[*Writer] {
	return func(w *Writer) {
		w.ConnectLogger(loggers...)
	}
}

// WriterWithSensor attaches sensors notified on record writes and flushes.
func WriterWithSensor(sensors ...types.FrameSensor) types.Option[*Writer] {
	return func(w *Writer) {
		w.ConnectSensor(sensors...)
	}
}

// WriterWithComponentMetadata overrides the writer's name and id.
func WriterWithComponentMetadata(name string, id string) types.Option[*Writer] {
	return func(w *Writer) {
		w.SetComponentMetadata(name, id)
	}
}

// ReaderWithFormat selects the trace format frames are decoded with. It must
// match the format the trace was written in.
func ReaderWithFormat(format types.TraceFormat) types.Option[*Reader] {
	return func(r *Reader) {
		if format != nil {
			r.format = format
		}
	}
}

// ReaderWithCompression selects the codec the trace is decompressed with. It
// must match the codec the trace was written with.
func ReaderWithCompression(algorithm types.CompressionAlgorithm) types.Option[*Reader] {
	return func(r *Reader) {
		r.algorithm = algorithm
	}
}

// ReaderWithLogger attaches loggers to the reader.
func ReaderWithLogger(loggers ...types.Logger) types.Option[*Reader] {
	return func(r *Reader) {
		r.ConnectLogger(loggers...)
	}
}

// ReaderWithComponentMetadata overrides the reader's name and id.
func ReaderWithComponentMetadata(name string, id string) types.Option[*Reader] {
	return func(r *Reader) {
		r.SetComponentMetadata(name, id)
	}
}
