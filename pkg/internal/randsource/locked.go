package randsource

import (
	"sync"

	"github.com/joeydtaylor/meander/pkg/internal/types"
)

// Locked serializes access to an underlying random source so that it can be
// shared across goroutines.
type Locked struct {
	mu  sync.Mutex
	src types.RandomSource
}

// NewLocked wraps src in a mutex. A nil src falls back to an auto-seeded
// Source.
func NewLocked(src types.RandomSource) *Locked {
	if src == nil {
		src = NewAuto()
	}
	return &Locked{src: src}
}

// Float64InRange returns a uniformly distributed value in [low, high).
func (l *Locked) Float64InRange(low float64, high float64) float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.src.Float64InRange(low, high)
}
