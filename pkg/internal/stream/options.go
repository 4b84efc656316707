package stream

import (
	"time"

	"github.com/joeydtaylor/meander/pkg/internal/types"
)

// WithCurve sets the curve the streamer walks.
func WithCurve(curve types.VectorEvaluator) types.Option[types.Streamer] {
	return func(s types.Streamer) {
		s.ConnectCurve(curve)
	}
}

// WithOutput registers frame sinks for the streamer.
func WithOutput(outputs ...types.FrameSubmitter) types.Option[types.Streamer] {
	return func(s types.Streamer) {
		s.ConnectOutput(outputs...)
	}
}

// WithLogger registers loggers for the streamer.
func WithLogger(l ...types.Logger) types.Option[types.Streamer] {
	return func(s types.Streamer) {
		s.ConnectLogger(l...)
	}
}

// WithSensor registers sensors for the streamer.
func WithSensor(sensors ...types.FrameSensor) types.Option[types.Streamer] {
	return func(s types.Streamer) {
		s.ConnectSensor(sensors...)
	}
}

// WithMeter registers meters fed directly with every emitted frame.
func WithMeter(meters ...types.FrameMeter) types.Option[types.Streamer] {
	return func(s types.Streamer) {
		s.ConnectMeter(meters...)
	}
}

// WithTimeStep fixes the curve-time increment per frame.
func WithTimeStep(dt float64) types.Option[types.Streamer] {
	return func(s types.Streamer) {
		s.SetTimeStep(dt)
	}
}

// WithInterval sets the wall-clock pacing between frames. Zero or negative
// means no pacing.
func WithInterval(d time.Duration) types.Option[types.Streamer] {
	return func(s types.Streamer) {
		s.SetInterval(d)
	}
}

// WithFrameLimit caps the number of frames emitted per run. Zero means
// unlimited.
func WithFrameLimit(n uint64) types.Option[types.Streamer] {
	return func(s types.Streamer) {
		s.SetFrameLimit(n)
	}
}

// WithComponentMetadata overrides the streamer's name and id.
func WithComponentMetadata(name string, id string) types.Option[types.Streamer] {
	return func(s types.Streamer) {
		s.SetComponentMetadata(name, id)
	}
}
