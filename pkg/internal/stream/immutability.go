package stream

import "sync/atomic"

// requireNotStarted panics if the streamer has already been started.
func (s *Streamer) requireNotStarted(action string) {
	if atomic.LoadInt32(&s.started) == 1 {
		panic("streamer: " + action + " called after Start")
	}
}
