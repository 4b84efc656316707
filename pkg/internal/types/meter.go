package types

import "time"

// Metric names tracked by meters attached to streamers and trace writers.
const (
	MetricStreamRunningCount     = "stream_running_count"
	MetricStreamFrameCount       = "stream_frame_count"
	MetricStreamSubmitErrorCount = "stream_submit_error_count"
	MetricStreamRestartCount     = "stream_restart_count"
	MetricStreamCancelCount      = "stream_cancel_count"
	MetricRecorderWriteCount     = "recorder_write_count"
	MetricRecorderFlushCount     = "recorder_flush_count"
	MetricRecorderErrorCount     = "recorder_error_count"
	MetricProcessDuration        = "process_duration"
)

// HostStats is a point-in-time reading of the host resources consumed while a
// stream is running.
type HostStats struct {
	CPUPercent     float64 // Total CPU utilization across all cores, in percent.
	MemUsedPercent float64 // Virtual memory in use, in percent of total.
	NumGoroutine   int     // Goroutines alive at the time of the reading.
	Timestamp      int64   // Unix timestamp of the reading, in nanoseconds.
}

// Envelope tracks the running per-dimension bounds of the frames a meter has
// observed. Min and Max have one entry per dimension.
type Envelope struct {
	Min    []float64
	Max    []float64
	Frames uint64 // Number of frames folded into the bounds.
}

// FrameMeter accumulates counters and per-dimension statistics for a running
// stream, and exposes point-in-time host resource readings.
type FrameMeter interface {
	// IncrementCount adds one to the named counter, creating it at zero first
	// if it has not been seen before.
	IncrementCount(metricName string)
	DecrementCount(metricName string)
	GetMetricCount(metricName string) uint64
	SetMetricCount(metricName string, count uint64)
	GetMetricNames() []string

	// Snapshot returns a copy of every counter, keyed by metric name. Mutating
	// the returned map does not affect the meter.
	Snapshot() map[string]uint64

	// ObserveFrame folds one frame into the per-dimension envelope and bumps
	// the frame counter.
	ObserveFrame(frame Frame)

	// GetEnvelope returns a copy of the per-dimension bounds accumulated so
	// far. The second return is false until at least one frame was observed.
	GetEnvelope() (Envelope, bool)

	// FrameRate reports observed frames per second since the meter was
	// created or last reset.
	FrameRate() float64

	// LastFrameAt reports the wall-clock instant of the most recently
	// observed frame. The second return is false until at least one frame
	// was observed.
	LastFrameAt() (time.Time, bool)

	// HostSnapshot samples current host CPU and memory utilization.
	HostSnapshot() (HostStats, error)

	StartTimer(metricName string)
	StopTimer(metricName string) time.Duration

	// ResetMetrics clears all counters, timers, and the envelope.
	ResetMetrics()

	GetComponentMetadata() ComponentMetadata
	SetComponentMetadata(name string, id string)
	ConnectLogger(...Logger)
	NotifyLoggers(level LogLevel, format string, args ...interface{})
}
