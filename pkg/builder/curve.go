// Package builder is the public entry point of the meander library. It
// re-exports the internal components behind a uniform construction grammar:
// NewX creates a component, XWithY returns an option for it, and type aliases
// expose the shared contracts without importing internal packages.
package builder

import (
	"github.com/joeydtaylor/meander/pkg/internal/curve"
	"github.com/joeydtaylor/meander/pkg/internal/types"
)

type UnitSinusoid = curve.UnitSinusoid

type Meander1D = curve.Meander1D

type Meander = curve.Meander

type TimeSteps = curve.TimeSteps

type Evaluator = types.Evaluator

type VectorEvaluator = types.VectorEvaluator

// Frequency bounds for sampled oscillators, in hertz.
const (
	FrequencyMin = curve.FrequencyMin
	FrequencyMax = curve.FrequencyMax
)

// Meander1DComponents is the number of oscillators blended into one
// Meander1D.
const Meander1DComponents = curve.Meander1DComponents

// NewUnitSinusoid builds an oscillator with an explicit frequency and phase
// offset. The frequency must be positive and finite, and the phase must lie
// in [0, 1/frequency).
func NewUnitSinusoid(frequency float64, phase float64) (UnitSinusoid, error) {
	return curve.NewUnitSinusoid(frequency, phase)
}

// SampleUnitSinusoid draws an oscillator with random frequency and phase.
func SampleUnitSinusoid(src types.RandomSource) UnitSinusoid {
	return curve.SampleUnitSinusoid(src)
}

// NewMeander1D blends explicit oscillators into a one-dimensional curve.
func NewMeander1D(components [Meander1DComponents]UnitSinusoid) Meander1D {
	return curve.NewMeander1D(components)
}

// SampleMeander1D draws a one-dimensional curve with random components.
func SampleMeander1D(src types.RandomSource) Meander1D {
	return curve.SampleMeander1D(src)
}

// NewMeander combines one-dimensional curves into a multi-dimensional one.
func NewMeander(curves []Meander1D) Meander {
	return curve.NewMeander(curves)
}

// SampleMeander draws a dims-dimensional curve whose dimensions are sampled
// independently. Panics if dims is negative.
func SampleMeander(dims int, src types.RandomSource) Meander {
	return curve.SampleMeander(dims, src)
}
