package meter

import (
	"math"
	"time"

	"github.com/joeydtaylor/meander/pkg/internal/types"
)

// ObserveFrame folds one frame into the per-dimension envelope and bumps the
// frame counter. Frames of differing widths grow the envelope to the widest
// frame seen; narrower frames leave the extra dimensions untouched.
func (m *Meter) ObserveFrame(frame types.Frame) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	for len(m.envelopeMin) < len(frame.Values) {
		m.envelopeMin = append(m.envelopeMin, math.Inf(1))
		m.envelopeMax = append(m.envelopeMax, math.Inf(-1))
	}
	for i, v := range frame.Values {
		if v < m.envelopeMin[i] {
			m.envelopeMin[i] = v
		}
		if v > m.envelopeMax[i] {
			m.envelopeMax[i] = v
		}
	}

	m.observedFrames++
	m.lastFrameAt = time.Now()
	m.counts[types.MetricStreamFrameCount]++
}

// GetEnvelope returns a copy of the per-dimension bounds accumulated so far.
// The second return is false until at least one frame was observed.
func (m *Meter) GetEnvelope() (types.Envelope, bool) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.observedFrames == 0 {
		return types.Envelope{}, false
	}
	env := types.Envelope{
		Min:    append([]float64(nil), m.envelopeMin...),
		Max:    append([]float64(nil), m.envelopeMax...),
		Frames: m.observedFrames,
	}
	return env, true
}

// LastFrameAt reports the wall-clock instant of the most recently observed
// frame. The second return is false until at least one frame was observed.
func (m *Meter) LastFrameAt() (time.Time, bool) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.observedFrames == 0 {
		return time.Time{}, false
	}
	return m.lastFrameAt, true
}

// FrameRate reports observed frames per second since the meter was created or
// last reset.
func (m *Meter) FrameRate() float64 {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	elapsed := time.Since(m.startTime).Seconds()
	if elapsed <= 0 {
		return 0
	}
	return float64(m.observedFrames) / elapsed
}
