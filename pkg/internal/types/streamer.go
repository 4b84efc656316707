package types

import (
	"context"
	"time"
)

// Streamer drives a clocked walk over a curve, evaluating it at a fixed time
// step and submitting the resulting frames to every connected output until it
// is stopped, its frame limit is reached, or its context is cancelled.
type Streamer interface {
	// Start begins the clocked evaluation loop. It returns an error if the
	// streamer is already running or has no curve to walk.
	Start(ctx context.Context) error

	// Stop halts the evaluation loop and releases the streamer's resources.
	Stop() error

	// IsStarted reports whether the streamer is currently running.
	IsStarted() bool

	// Restart stops the streamer and starts it again from step zero.
	Restart(ctx context.Context) error

	// ConnectCurve sets the curve the streamer walks. Panics once the
	// streamer has started.
	ConnectCurve(curve VectorEvaluator)

	// ConnectOutput attaches one or more frame sinks. Every emitted frame is
	// submitted to each connected output in order. Panics once the streamer
	// has started.
	ConnectOutput(...FrameSubmitter)

	// ConnectLogger attaches one or more loggers used for diagnostics during streaming.
	ConnectLogger(...Logger)

	// ConnectSensor attaches one or more sensors. Sensors observe stream lifecycle
	// events and per-frame activity without participating in the data path.
	// Panics once the streamer has started.
	ConnectSensor(...FrameSensor)

	// ConnectMeter attaches one or more meters fed directly with every
	// emitted frame. Panics once the streamer has started.
	ConnectMeter(...FrameMeter)

	// SetTimeStep fixes the curve-time increment per frame. Panics once the
	// streamer has started.
	SetTimeStep(dt float64)

	// SetInterval sets the wall-clock pacing between frames. Zero means no
	// pacing: frames are emitted as fast as outputs accept them. Panics once
	// the streamer has started.
	SetInterval(d time.Duration)

	// SetFrameLimit caps the number of frames emitted per run. Zero means
	// unlimited. Panics once the streamer has started.
	SetFrameLimit(n uint64)

	// GetTimeStep returns the configured curve-time increment.
	GetTimeStep() float64

	// GetInterval returns the configured wall-clock pacing.
	GetInterval() time.Duration

	// GetFrameLimit returns the configured per-run frame cap.
	GetFrameLimit() uint64

	// GetOutputs returns the currently connected outputs.
	GetOutputs() []FrameSubmitter

	// NotifyLoggers sends a formatted log message to all attached loggers at a specified log level.
	NotifyLoggers(level LogLevel, format string, args ...interface{})

	// GetComponentMetadata retrieves the metadata associated with the streamer, such as its unique
	// identifier, name, and type. This information can be crucial for system management and monitoring.
	GetComponentMetadata() ComponentMetadata

	// SetComponentMetadata sets specific metadata fields for the streamer, such as its name and identifier.
	SetComponentMetadata(name string, id string)
}
