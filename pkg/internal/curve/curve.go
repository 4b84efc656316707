// Package curve provides the core signal model of the Meander toolkit: smooth,
// bounded, non-repeating random curves built from randomly sampled sinusoidal
// oscillators. It produces values guaranteed to lie in [0, 1] for any finite
// time input, making the output directly usable as normalized intensities,
// color channels, or animation parameters.
//
// The model is layered. A UnitSinusoid is a single oscillator with a random
// frequency and phase whose output is mapped into [0, 1] through the haversine
// transform. A Meander1D averages three independently sampled oscillators so
// the combined signal loses the mechanical periodicity of any single one. A
// Meander bundles a fixed number of independent Meander1D curves and evaluates
// them together, yielding one bounded value per dimension at each instant.
//
// Key properties of the curve types include:
// - Evaluation is pure: no internal state changes, safe for concurrent use.
// - All outputs are bounded in [0, 1] for every finite time input.
// - Sampling consumes an injected randomness source, so identical sources
//   reproduce identical curves.
// - Time iteration is available through explicit cursor types that walk a
//   curve at a fixed time step.
//
// All randomness is consumed at construction time. Once built, a curve is an
// immutable value; nothing in this package mutates a curve after sampling.
package curve

import (
	"fmt"
	"math"

	"github.com/joeydtaylor/meander/pkg/internal/types"
)

// Sampling bounds for UnitSinusoid frequencies, in cycles per unit time.
const (
	FrequencyMin = 1.0
	FrequencyMax = 10.0
)

const twoPi = 2 * math.Pi

// haversine maps any real angle into [0, 1], peaking at odd multiples of pi.
func haversine(theta float64) float64 {
	return (1 - math.Cos(theta)) / 2
}

// UnitSinusoid is a single sinusoidal oscillator with a fixed frequency and
// phase, evaluated through the haversine transform so its output always lies
// in [0, 1]. The zero value is a degenerate oscillator that evaluates to a
// constant 0; useful oscillators come from NewUnitSinusoid or
// SampleUnitSinusoid.
type UnitSinusoid struct {
	frequency float64 // Cycles per unit time. Positive for any sampled or validated oscillator.
	phase     float64 // Fractional offset within one cycle, in [0, 1/frequency).
}

// NewUnitSinusoid builds an oscillator from explicit parameters. The frequency
// must be positive and finite, and the phase must lie in [0, 1/frequency) so
// it stays a fractional offset within a single cycle.
func NewUnitSinusoid(frequency float64, phase float64) (UnitSinusoid, error) {
	if math.IsNaN(frequency) || math.IsInf(frequency, 0) || frequency <= 0 {
		return UnitSinusoid{}, fmt.Errorf("curve: frequency must be positive and finite, got %v", frequency)
	}
	if math.IsNaN(phase) || phase < 0 || phase >= 1/frequency {
		return UnitSinusoid{}, fmt.Errorf("curve: phase %v outside [0, %v)", phase, 1/frequency)
	}
	return UnitSinusoid{frequency: frequency, phase: phase}, nil
}

// SampleUnitSinusoid draws a random oscillator from src: one uniform draw in
// [FrequencyMin, FrequencyMax) for the frequency, then one uniform draw in
// [0, 1/frequency) for the phase. Exactly two draws are consumed, in that
// order, so a reproducible source yields a reproducible oscillator.
func SampleUnitSinusoid(src types.RandomSource) UnitSinusoid {
	frequency := src.Float64InRange(FrequencyMin, FrequencyMax)
	phase := src.Float64InRange(0, 1/frequency)
	return UnitSinusoid{frequency: frequency, phase: phase}
}

// Frequency returns the oscillator's frequency in cycles per unit time.
func (u UnitSinusoid) Frequency() float64 {
	return u.frequency
}

// Phase returns the oscillator's phase offset.
func (u UnitSinusoid) Phase() float64 {
	return u.phase
}

// Evaluate returns haversine(2π · frequency · (t + phase)). The result lies in
// [0, 1] for every finite t. Pure function of the oscillator and t.
func (u UnitSinusoid) Evaluate(t float64) float64 {
	return haversine(twoPi * u.frequency * (t + u.phase))
}
