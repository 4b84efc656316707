package curve

import "github.com/joeydtaylor/meander/pkg/internal/types"

// Meander1DComponents is the number of oscillators averaged by a Meander1D.
// The arity is structural: it is an array, not a slice, so a Meander1D always
// carries exactly this many components.
const Meander1DComponents = 3

// Meander1D is a one-dimensional random curve: the arithmetic mean of three
// independently sampled oscillators. Averaging oscillators of differing
// frequencies and phases produces a signal that does not repeat with the
// simple periodicity of any single component while staying bounded in [0, 1].
type Meander1D struct {
	components [Meander1DComponents]UnitSinusoid
}

// NewMeander1D builds a curve from three explicit oscillators.
func NewMeander1D(components [Meander1DComponents]UnitSinusoid) Meander1D {
	return Meander1D{components: components}
}

// SampleMeander1D draws three independent oscillators from src in index
// order, consuming exactly six draws.
func SampleMeander1D(src types.RandomSource) Meander1D {
	var components [Meander1DComponents]UnitSinusoid
	for i := range components {
		components[i] = SampleUnitSinusoid(src)
	}
	return Meander1D{components: components}
}

// Components returns a copy of the curve's oscillators.
func (m Meander1D) Components() [Meander1DComponents]UnitSinusoid {
	return m.components
}

// Evaluate returns the mean of the three component oscillators at time t.
// The result lies in [0, 1] for every finite t.
func (m Meander1D) Evaluate(t float64) float64 {
	var sum float64
	for i := range m.components {
		sum += m.components[i].Evaluate(t)
	}
	return sum / Meander1DComponents
}
