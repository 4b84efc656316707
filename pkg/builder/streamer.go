package builder

import (
	"context"
	"time"

	"github.com/joeydtaylor/meander/pkg/internal/stream"
	"github.com/joeydtaylor/meander/pkg/internal/types"
)

type Streamer = types.Streamer

type Frame = types.Frame

type FrameSubmitter = types.FrameSubmitter

// DefaultTimeStep is the curve-time increment a streamer uses when none is
// configured.
const DefaultTimeStep = stream.DefaultTimeStep

// NewStreamer creates a streamer that walks a curve at a fixed time step and
// submits the resulting frames to its connected outputs.
func NewStreamer(ctx context.Context, options ...types.Option[types.Streamer]) types.Streamer {
	return stream.NewStreamer(ctx, options...)
}

// StreamerWithCurve sets the curve the streamer walks.
func StreamerWithCurve(curve types.VectorEvaluator) types.Option[types.Streamer] {
	return stream.WithCurve(curve)
}

// StreamerWithOutput attaches frame sinks to the streamer.
func StreamerWithOutput(outputs ...types.FrameSubmitter) types.Option[types.Streamer] {
	return stream.WithOutput(outputs...)
}

// StreamerWithLogger adds a logger to the streamer.
func StreamerWithLogger(loggers ...types.Logger) types.Option[types.Streamer] {
	return stream.WithLogger(loggers...)
}

// StreamerWithSensor adds a sensor to the streamer.
func StreamerWithSensor(sensors ...types.FrameSensor) types.Option[types.Streamer] {
	return stream.WithSensor(sensors...)
}

// StreamerWithMeter adds a meter fed with every emitted frame.
func StreamerWithMeter(meters ...types.FrameMeter) types.Option[types.Streamer] {
	return stream.WithMeter(meters...)
}

// StreamerWithTimeStep fixes the curve-time increment per frame.
func StreamerWithTimeStep(dt float64) types.Option[types.Streamer] {
	return stream.WithTimeStep(dt)
}

// StreamerWithInterval sets the wall-clock pacing between frames. Zero means
// frames are emitted as fast as outputs accept them.
func StreamerWithInterval(d time.Duration) types.Option[types.Streamer] {
	return stream.WithInterval(d)
}

// StreamerWithFrameLimit caps the number of frames emitted per run. Zero
// means unlimited.
func StreamerWithFrameLimit(n uint64) types.Option[types.Streamer] {
	return stream.WithFrameLimit(n)
}

// StreamerWithComponentMetadata adds component metadata overrides.
func StreamerWithComponentMetadata(name string, id string) types.Option[types.Streamer] {
	return stream.WithComponentMetadata(name, id)
}
