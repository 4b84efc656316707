package recorder

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/joeydtaylor/meander/pkg/internal/types"
	"github.com/joeydtaylor/meander/pkg/internal/utils"
)

// ErrReaderClosed reports a read against a trace reader that has been closed.
var ErrReaderClosed = errors.New("recorder: reader is closed")

// Reader replays a trace produced by a Writer. Format and compression codec
// must match what the trace was written with; a mismatch surfaces as an error
// from NewReader or Next, depending on where the codec notices. The source
// reader is not closed by Close; the caller retains ownership of it.
type Reader struct {
	componentMetadata types.ComponentMetadata

	mu        sync.Mutex
	src       io.Reader
	format    types.TraceFormat
	algorithm types.CompressionAlgorithm
	opts      types.TraceReaderOptions
	tr        types.TraceReader
	decClose  func() error
	frames    uint64
	closed    bool

	loggersLock sync.Mutex
	loggers     []types.Logger
}

// NewReader opens a trace for replay from src. Options choose the trace
// format (NDJSON by default) and the compression codec (none by default);
// both must mirror the writer's configuration.
func NewReader(src io.Reader, options ...types.Option[*Reader]) (*Reader, error) {
	r := &Reader{
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "TRACE_READER",
		},
		src:       src,
		format:    NewNDJSONFormat(),
		algorithm: COMPRESS_NONE,
	}

	for _, option := range options {
		if option == nil {
			continue
		}
		option(r)
	}

	if src == nil {
		return nil, errors.New("recorder: reader needs a source")
	}

	dec, decClose, err := newDecompressor(src, r.algorithm)
	if err != nil {
		return nil, fmt.Errorf("recorder: decompression setup failed: %w", err)
	}
	tr := r.format.NewTraceReader()
	if err := tr.Begin(dec, r.opts); err != nil {
		if decClose != nil {
			_ = decClose()
		}
		return nil, fmt.Errorf("recorder: %s trace setup failed: %w", r.format.Name(), err)
	}
	r.tr = tr
	r.decClose = decClose

	r.NotifyLoggers(types.DebugLevel, "component: %s, level: DEBUG, result: SUCCESS, event: NewReader, format: %s, compression: %d => Trace reader ready", r.componentMetadata, r.format.Name(), r.algorithm)

	return r, nil
}

// Next returns the next frame in the trace. After the last frame it returns
// io.EOF; any decode or decompression failure is returned as-is and repeats
// on subsequent calls.
func (r *Reader) Next() (types.Frame, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return types.Frame{}, ErrReaderClosed
	}
	if r.tr.Next() {
		r.frames++
		return r.tr.Record(), nil
	}
	if err := r.tr.Err(); err != nil {
		r.NotifyLoggers(types.ErrorLevel, "component: %s, level: ERROR, result: FAILURE, event: Next, error: %v => Failed to decode frame", r.componentMetadata, err)
		return types.Frame{}, err
	}
	return types.Frame{}, io.EOF
}

// ReadAll drains the remainder of the trace into a slice.
func (r *Reader) ReadAll() ([]types.Frame, error) {
	var frames []types.Frame
	for {
		frame, err := r.Next()
		if err == io.EOF {
			return frames, nil
		}
		if err != nil {
			return frames, err
		}
		frames = append(frames, frame)
	}
}

// Close releases decoder resources. Close is idempotent.
func (r *Reader) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil
	}
	r.closed = true

	var firstErr error
	if err := r.tr.Close(); err != nil {
		firstErr = err
	}
	if r.decClose != nil {
		if err := r.decClose(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	r.NotifyLoggers(types.InfoLevel, "component: %s, level: INFO, result: SUCCESS, event: Close, frames: %d => Trace replay closed", r.componentMetadata, r.frames)
	return firstErr
}

// FrameCount reports how many frames have been decoded so far.
func (r *Reader) FrameCount() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frames
}

// FormatName reports the canonical name of the configured trace format.
func (r *Reader) FormatName() string { return r.format.Name() }

// Compression reports the configured compression codec.
func (r *Reader) Compression() types.CompressionAlgorithm { return r.algorithm }

// ConnectLogger attaches loggers to the reader.
func (r *Reader) ConnectLogger(loggers ...types.Logger) {
	if len(loggers) == 0 {
		return
	}

	n := 0
	for _, l := range loggers {
		if l != nil {
			loggers[n] = l
			n++
		}
	}
	if n == 0 {
		return
	}
	loggers = loggers[:n]

	r.loggersLock.Lock()
	r.loggers = append(r.loggers, loggers...)
	r.loggersLock.Unlock()
}

// NotifyLoggers fans a formatted message out to every attached logger at the
// given level.
func (r *Reader) NotifyLoggers(level types.LogLevel, format string, args ...interface{}) {
	r.loggersLock.Lock()
	loggers := make([]types.Logger, len(r.loggers))
	copy(loggers, r.loggers)
	r.loggersLock.Unlock()

	if len(loggers) == 0 {
		return
	}

	msg := fmt.Sprintf(format, args...)
	for _, logger := range loggers {
		if logger == nil {
			continue
		}
		if logger.GetLevel() <= level {
			switch level {
			case types.DebugLevel:
				logger.Debug(msg)
			case types.InfoLevel:
				logger.Info(msg)
			case types.WarnLevel:
				logger.Warn(msg)
			case types.ErrorLevel:
				logger.Error(msg)
			case types.DPanicLevel:
				logger.DPanic(msg)
			case types.PanicLevel:
				logger.Panic(msg)
			case types.FatalLevel:
				logger.Fatal(msg)
			}
		}
	}
}

// GetComponentMetadata returns the reader's metadata.
func (r *Reader) GetComponentMetadata() types.ComponentMetadata { return r.componentMetadata }

// SetComponentMetadata overrides the reader's name and id.
func (r *Reader) SetComponentMetadata(name string, id string) {
	r.componentMetadata.Name = name
	r.componentMetadata.ID = id
}
