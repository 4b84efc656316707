package builder

import (
	"github.com/joeydtaylor/meander/pkg/internal/meter"
	"github.com/joeydtaylor/meander/pkg/internal/types"
)

// MetricName is a type alias for metric names used in the Meter.
type MetricName string

type FrameMeter = types.FrameMeter

type Envelope = types.Envelope

type HostStats = types.HostStats

// Here we re-export the metric name constants from the types package
const (
	MetricStreamRunningCount     MetricName = MetricName(types.MetricStreamRunningCount)
	MetricStreamFrameCount       MetricName = MetricName(types.MetricStreamFrameCount)
	MetricStreamSubmitErrorCount MetricName = MetricName(types.MetricStreamSubmitErrorCount)
	MetricStreamRestartCount     MetricName = MetricName(types.MetricStreamRestartCount)
	MetricStreamCancelCount      MetricName = MetricName(types.MetricStreamCancelCount)
	MetricRecorderWriteCount     MetricName = MetricName(types.MetricRecorderWriteCount)
	MetricRecorderFlushCount     MetricName = MetricName(types.MetricRecorderFlushCount)
	MetricRecorderErrorCount     MetricName = MetricName(types.MetricRecorderErrorCount)
	MetricProcessDuration        MetricName = MetricName(types.MetricProcessDuration)
)

// NewMeter creates a meter that accumulates counters, per-dimension envelope
// bounds, and host resource readings for a running stream.
func NewMeter(options ...types.Option[types.FrameMeter]) types.FrameMeter {
	return meter.NewMeter(options...)
}

// MeterWithLogger adds a logger to the Meter.
func MeterWithLogger(logger ...types.Logger) types.Option[types.FrameMeter] {
	return meter.WithLogger(logger...)
}

// MeterWithComponentMetadata adds component metadata overrides.
func MeterWithComponentMetadata(name string, id string) types.Option[types.FrameMeter] {
	return meter.WithComponentMetadata(name, id)
}
