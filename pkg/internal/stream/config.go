package stream

import (
	"time"

	"github.com/joeydtaylor/meander/pkg/internal/types"
)

// SetComponentMetadata updates the streamer metadata.
// Panics if called after Start.
func (s *Streamer) SetComponentMetadata(name string, id string) {
	s.requireNotStarted("SetComponentMetadata")

	s.componentMetadata = types.ComponentMetadata{Name: name, ID: id, Type: s.componentMetadata.Type}
}

// SetTimeStep fixes the curve-time increment per frame. Zero and negative
// values are legal: the curve then revisits or walks backward through curve
// time.
// Panics if called after Start.
func (s *Streamer) SetTimeStep(dt float64) {
	s.requireNotStarted("SetTimeStep")

	s.configLock.Lock()
	s.dt = dt
	s.configLock.Unlock()
}

// SetInterval sets the wall-clock pacing between frames. Zero or negative
// means no pacing: frames are emitted as fast as outputs accept them.
// Panics if called after Start.
func (s *Streamer) SetInterval(d time.Duration) {
	s.requireNotStarted("SetInterval")

	if d < 0 {
		d = 0
	}

	s.configLock.Lock()
	s.interval = d
	s.configLock.Unlock()
}

// SetFrameLimit caps the number of frames emitted per run. Zero means
// unlimited.
// Panics if called after Start.
func (s *Streamer) SetFrameLimit(n uint64) {
	s.requireNotStarted("SetFrameLimit")

	s.configLock.Lock()
	s.frameLimit = n
	s.configLock.Unlock()
}
