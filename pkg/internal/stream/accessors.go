package stream

import (
	"sync/atomic"
	"time"

	"github.com/joeydtaylor/meander/pkg/internal/types"
)

// GetComponentMetadata returns the streamer metadata.
func (s *Streamer) GetComponentMetadata() types.ComponentMetadata {
	return s.componentMetadata
}

// IsStarted reports whether the streamer is running.
func (s *Streamer) IsStarted() bool {
	return atomic.LoadInt32(&s.started) == 1
}

// GetTimeStep returns the configured curve-time increment per frame.
func (s *Streamer) GetTimeStep() float64 {
	s.configLock.Lock()
	defer s.configLock.Unlock()
	return s.dt
}

// GetInterval returns the configured wall-clock pacing between frames.
func (s *Streamer) GetInterval() time.Duration {
	s.configLock.Lock()
	defer s.configLock.Unlock()
	return s.interval
}

// GetFrameLimit returns the configured per-run frame cap.
func (s *Streamer) GetFrameLimit() uint64 {
	s.configLock.Lock()
	defer s.configLock.Unlock()
	return s.frameLimit
}

// GetOutputs returns the currently connected outputs.
func (s *Streamer) GetOutputs() []types.FrameSubmitter {
	s.configLock.Lock()
	defer s.configLock.Unlock()
	return append([]types.FrameSubmitter(nil), s.outputs...)
}
