package recorder

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/joeydtaylor/meander/pkg/internal/types"
	"github.com/joeydtaylor/meander/pkg/internal/utils"
)

// ErrWriterClosed reports a write against a trace writer that has been closed.
var ErrWriterClosed = errors.New("recorder: writer is closed")

// Writer is a frame sink that persists every submitted frame to an underlying
// byte stream through a trace format and an optional compression codec.
// Format, codec, and destination are fixed at construction; after NewWriter
// returns, the writer is ready to accept frames. The destination writer is
// not closed by Close; the caller retains ownership of it.
type Writer struct {
	componentMetadata types.ComponentMetadata

	mu        sync.Mutex
	dst       io.Writer
	format    types.TraceFormat
	algorithm types.CompressionAlgorithm
	opts      types.TraceWriterOptions
	tw        types.TraceWriter
	comp      io.WriteCloser
	frames    uint64
	closed    bool

	loggersLock sync.Mutex
	loggers     []types.Logger

	sensorsLock sync.Mutex
	sensors     []types.FrameSensor
}

// NewWriter opens a trace over dst. Options choose the trace format (NDJSON
// by default), the compression codec (none by default), and attach loggers
// and sensors. The compression and encoding layers are set up eagerly, so a
// codec that cannot initialize surfaces here rather than on first Submit.
func NewWriter(dst io.Writer, options ...types.Option[*Writer]) (*Writer, error) {
	w := &Writer{
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "TRACE_WRITER",
		},
		dst:       dst,
		format:    NewNDJSONFormat(),
		algorithm: COMPRESS_NONE,
	}

	for _, option := range options {
		if option == nil {
			continue
		}
		option(w)
	}

	if dst == nil {
		return nil, errors.New("recorder: writer needs a destination")
	}

	comp, err := newCompressor(dst, w.algorithm)
	if err != nil {
		return nil, fmt.Errorf("recorder: compression setup failed: %w", err)
	}
	tw := w.format.NewTraceWriter()
	if err := tw.Begin(comp, w.opts); err != nil {
		return nil, fmt.Errorf("recorder: %s trace setup failed: %w", w.format.Name(), err)
	}
	w.comp = comp
	w.tw = tw

	w.NotifyLoggers(types.DebugLevel, "component: %s, level: DEBUG, result: SUCCESS, event: NewWriter, format: %s, compression: %d => Trace writer ready", w.componentMetadata, w.format.Name(), w.algorithm)

	return w, nil
}

// Submit implements types.FrameSubmitter. A canceled context rejects the
// frame before anything is encoded.
func (w *Writer) Submit(ctx context.Context, frame types.Frame) error {
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return err
		}
	}
	return w.Write(frame)
}

// Write encodes one frame onto the trace.
func (w *Writer) Write(frame types.Frame) error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return ErrWriterClosed
	}
	if err := w.tw.Write(frame); err != nil {
		w.mu.Unlock()
		w.NotifyLoggers(types.ErrorLevel, "component: %s, level: ERROR, result: FAILURE, event: Write, seq: %d, error: %v => Failed to encode frame", w.componentMetadata, frame.Seq, err)
		for _, sensor := range w.snapshotSensors() {
			sensor.InvokeOnRecordError(w.componentMetadata, err)
		}
		return err
	}
	w.frames++
	w.mu.Unlock()

	for _, sensor := range w.snapshotSensors() {
		sensor.InvokeOnRecordWrite(w.componentMetadata, frame)
	}
	return nil
}

// Flush pushes format and compression buffers down to the destination so the
// trace written so far is decodable by a concurrent reader.
func (w *Writer) Flush() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return ErrWriterClosed
	}
	if err := w.tw.Flush(); err != nil {
		w.mu.Unlock()
		w.NotifyLoggers(types.ErrorLevel, "component: %s, level: ERROR, result: FAILURE, event: Flush, error: %v => Failed to flush trace buffers", w.componentMetadata, err)
		for _, sensor := range w.snapshotSensors() {
			sensor.InvokeOnRecordError(w.componentMetadata, err)
		}
		return err
	}
	if f, ok := w.comp.(interface{ Flush() error }); ok {
		if err := f.Flush(); err != nil {
			w.mu.Unlock()
			w.NotifyLoggers(types.ErrorLevel, "component: %s, level: ERROR, result: FAILURE, event: Flush, error: %v => Failed to flush trace buffers", w.componentMetadata, err)
			for _, sensor := range w.snapshotSensors() {
				sensor.InvokeOnRecordError(w.componentMetadata, err)
			}
			return err
		}
	}
	w.mu.Unlock()

	for _, sensor := range w.snapshotSensors() {
		sensor.InvokeOnRecordFlush(w.componentMetadata)
	}
	w.NotifyLoggers(types.DebugLevel, "component: %s, level: DEBUG, result: SUCCESS, event: Flush => Flushed trace buffers", w.componentMetadata)
	return nil
}

// Close finalizes the trace. The format writer drains its buffers into the
// compression layer before that layer writes its trailer; both run even if
// the first fails, and the first error wins. Close is idempotent.
func (w *Writer) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	frames := w.frames

	var firstErr error
	if err := w.tw.Close(); err != nil {
		firstErr = err
	}
	if err := w.comp.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	w.mu.Unlock()

	if firstErr != nil {
		w.NotifyLoggers(types.ErrorLevel, "component: %s, level: ERROR, result: FAILURE, event: Close, error: %v => Failed to finalize trace", w.componentMetadata, firstErr)
		for _, sensor := range w.snapshotSensors() {
			sensor.InvokeOnRecordError(w.componentMetadata, firstErr)
		}
		return firstErr
	}
	w.NotifyLoggers(types.InfoLevel, "component: %s, level: INFO, result: SUCCESS, event: Close, frames: %d => Trace finalized", w.componentMetadata, frames)
	return nil
}

// FrameCount reports how many frames have been written so far.
func (w *Writer) FrameCount() uint64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.frames
}

// FormatName reports the canonical name of the configured trace format.
func (w *Writer) FormatName() string { return w.format.Name() }

// Compression reports the configured compression codec.
func (w *Writer) Compression() types.CompressionAlgorithm { return w.algorithm }

// ContentType describes the encoded stream before compression.
func (w *Writer) ContentType() string { return w.format.NewTraceWriter().ContentType() }

// Ext returns the conventional filename extension for the trace, including
// the compression suffix, e.g. ".ndjson.zst".
func (w *Writer) Ext() string { return w.format.NewTraceWriter().Ext() + extSuffix(w.algorithm) }

// ConnectLogger attaches loggers to the writer.
func (w *Writer) ConnectLogger(loggers ...types.Logger) {
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

	w.loggersLock.Lock()
	w.loggers = append(w.loggers, loggers...)
	w.loggersLock.Unlock()
}

// ConnectSensor attaches sensors notified on every record write and flush.
func (w *Writer) ConnectSensor(sensors ...types.FrameSensor) {
	if len(sensors) == 0 {
		return
	}

	n := 0
	for _, sn := range sensors {
		if sn != nil {
			sensors[n] = sn
			n++
		}
	}
	if n == 0 {
		return
	}
	sensors = sensors[:n]

	w.sensorsLock.Lock()
	w.sensors = append(w.sensors, sensors...)
	w.sensorsLock.Unlock()

	for _, sn := range sensors {
		w.NotifyLoggers(types.DebugLevel, "component: %s, level: DEBUG, result: SUCCESS, event: ConnectSensor, target: %v => Connected sensor", w.componentMetadata, sn.GetComponentMetadata())
	}
}

// NotifyLoggers fans a formatted message out to every attached logger at the
// given level.
func (w *Writer) NotifyLoggers(level types.LogLevel, format string, args ...interface{}) {
	w.loggersLock.Lock()
	loggers := make([]types.Logger, len(w.loggers))
	copy(loggers, w.loggers)
	w.loggersLock.Unlock()

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

// GetComponentMetadata returns the writer's metadata.
func (w *Writer) GetComponentMetadata() types.ComponentMetadata { return w.componentMetadata }

// SetComponentMetadata overrides the writer's name and id.
func (w *Writer) SetComponentMetadata(name string, id string) {
	w.componentMetadata.Name = name
	w.componentMetadata.ID = id
}

func (w *Writer) snapshotSensors() []types.FrameSensor {
	w.sensorsLock.Lock()
	sensors := make([]types.FrameSensor, len(w.sensors))
	copy(sensors, w.sensors)
	w.sensorsLock.Unlock()
	return sensors
}
