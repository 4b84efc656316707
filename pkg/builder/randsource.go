package builder

import (
	"github.com/joeydtaylor/meander/pkg/internal/randsource"
	"github.com/joeydtaylor/meander/pkg/internal/types"
)

type RandomSource = types.RandomSource

// NewRandomSource returns a deterministic PCG-backed source. Equal seeds
// reproduce equal curves.
func NewRandomSource(seed uint64) RandomSource {
	return randsource.New(seed)
}

// NewAutoSeededRandomSource returns a source seeded from the operating
// system's entropy pool.
func NewAutoSeededRandomSource() RandomSource {
	return randsource.NewAuto()
}

// NewLockedRandomSource wraps src with a mutex so independent goroutines can
// sample curves from one source.
func NewLockedRandomSource(src RandomSource) RandomSource {
	return randsource.NewLocked(src)
}
