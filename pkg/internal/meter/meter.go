// Package meter accumulates counters and per-dimension statistics for running
// streams. A Meter is fed by sensors or directly by components; it keeps
// monotonic counters, a running min/max envelope of every observed frame, and
// point-in-time host resource readings.
package meter

import (
	"sync"
	"time"

	"github.com/joeydtaylor/meander/pkg/internal/types"
	"github.com/joeydtaylor/meander/pkg/internal/utils"
)

type Meter struct {
	componentMetadata types.ComponentMetadata
	mutex             sync.Mutex
	counts            map[string]uint64
	startTimes        map[string]time.Time
	envelopeMin       []float64
	envelopeMax       []float64
	observedFrames    uint64
	lastFrameAt       time.Time
	startTime         time.Time
	loggers           []types.Logger
	loggersLock       sync.Mutex
}

// NewMeter constructs a Meter with optional configuration.
func NewMeter(options ...types.Option[types.FrameMeter]) types.FrameMeter {
	m := &Meter{
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "METER",
		},
		counts:     make(map[string]uint64),
		startTimes: make(map[string]time.Time),
		startTime:  time.Now(),
		loggers:    make([]types.Logger, 0),
	}

	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(m)
	}

	return m
}

// IncrementCount adds one to the named counter.
func (m *Meter) IncrementCount(metricName string) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.counts[metricName]++
}

// DecrementCount subtracts one from the named counter, stopping at zero.
func (m *Meter) DecrementCount(metricName string) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if m.counts[metricName] > 0 {
		m.counts[metricName]--
	}
}

// GetMetricCount returns the current value of the named counter.
func (m *Meter) GetMetricCount(metricName string) uint64 {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.counts[metricName]
}

// SetMetricCount overwrites the named counter.
func (m *Meter) SetMetricCount(metricName string, count uint64) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.counts[metricName] = count
}

// GetMetricNames returns the names of every counter seen so far.
func (m *Meter) GetMetricNames() []string {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	names := make([]string, 0, len(m.counts))
	for name := range m.counts {
		names = append(names, name)
	}
	return names
}

// Snapshot returns a copy of every counter, keyed by metric name. Mutating
// the returned map does not affect the meter.
func (m *Meter) Snapshot() map[string]uint64 {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	snapshot := make(map[string]uint64, len(m.counts))
	for name, count := range m.counts {
		snapshot[name] = count
	}
	return snapshot
}

// StartTimer records the start instant of the named timer.
func (m *Meter) StartTimer(metricName string) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.startTimes[metricName] = time.Now()
}

// StopTimer returns the elapsed time since the matching StartTimer and clears
// the timer. A StopTimer without a matching start returns zero.
func (m *Meter) StopTimer(metricName string) time.Duration {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	start, ok := m.startTimes[metricName]
	if !ok {
		return 0
	}
	delete(m.startTimes, metricName)
	return time.Since(start)
}

// ResetMetrics clears all counters, timers, and the envelope, and restarts
// the rate window.
func (m *Meter) ResetMetrics() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.counts = make(map[string]uint64)
	m.startTimes = make(map[string]time.Time)
	m.envelopeMin = nil
	m.envelopeMax = nil
	m.observedFrames = 0
	m.lastFrameAt = time.Time{}
	m.startTime = time.Now()
}
