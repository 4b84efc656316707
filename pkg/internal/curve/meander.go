package curve

import (
	"fmt"

	"github.com/joeydtaylor/meander/pkg/internal/types"
)

// Meander is an ordered, fixed-size collection of independent one-dimensional
// curves evaluated together. Each evaluation yields one value in [0, 1] per
// dimension, all sampled at the same instant, so the output traces a smooth
// random walk through the unit hypercube.
//
// The dimension count is fixed at construction and the backing curves are
// never mutated afterward; a Meander is a value and may be copied and shared
// freely across goroutines.
type Meander struct {
	curves []Meander1D
}

// NewMeander builds a multi-dimensional curve from explicit per-dimension
// curves. The slice is copied, so later mutation of the argument does not
// affect the Meander.
func NewMeander(curves []Meander1D) Meander {
	owned := make([]Meander1D, len(curves))
	copy(owned, curves)
	return Meander{curves: owned}
}

// SampleMeander draws dims independent one-dimensional curves from src in
// dimension order. dims = 0 is valid and yields a curve whose evaluations are
// empty. Negative dims is a programming error and panics.
func SampleMeander(dims int, src types.RandomSource) Meander {
	if dims < 0 {
		panic(fmt.Sprintf("curve: negative dimension count %d", dims))
	}
	curves := make([]Meander1D, dims)
	for i := range curves {
		curves[i] = SampleMeander1D(src)
	}
	return Meander{curves: curves}
}

// Dims reports the number of dimensions produced by Evaluate.
func (m Meander) Dims() int {
	return len(m.curves)
}

// Curves returns a copy of the per-dimension curves.
func (m Meander) Curves() []Meander1D {
	out := make([]Meander1D, len(m.curves))
	copy(out, m.curves)
	return out
}

// Evaluate returns one value in [0, 1] per dimension at time t. The returned
// slice is freshly allocated on every call; entry i is the evaluation of the
// ith dimension's curve. Evaluation never mutates the Meander.
func (m Meander) Evaluate(t float64) []float64 {
	out := make([]float64, len(m.curves))
	for i := range m.curves {
		out[i] = m.curves[i].Evaluate(t)
	}
	return out
}

// TimeSteps returns a cursor that walks this curve at the fixed time step dt,
// starting at t = 0. The cursor aliases the Meander's backing storage, which
// is safe because curves are immutable; use IntoTimeSteps for a
// self-contained cursor.
func (m Meander) TimeSteps(dt float64) *TimeSteps {
	return &TimeSteps{meander: m, dt: dt}
}

// IntoTimeSteps returns a cursor over a deep copy of the curve data. The
// cursor is fully self-contained: it shares no storage with the Meander it
// came from. Output is identical to TimeSteps with the same dt.
func (m Meander) IntoTimeSteps(dt float64) *TimeSteps {
	return &TimeSteps{meander: NewMeander(m.curves), dt: dt}
}
