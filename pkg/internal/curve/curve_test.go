package curve_test

import (
	"math"
	"testing"

	"github.com/joeydtaylor/meander/pkg/internal/curve"
	"github.com/joeydtaylor/meander/pkg/internal/randsource"
)

// rangeCall records one draw request made against a scripted source.
type rangeCall struct {
	low  float64
	high float64
}

// scriptedSource returns preset fractions of each requested range, recording
// every call so tests can assert on draw order and bounds.
type scriptedSource struct {
	t         *testing.T
	fractions []float64
	calls     []rangeCall
}

func newScriptedSource(t *testing.T, fractions ...float64) *scriptedSource {
	return &scriptedSource{t: t, fractions: fractions}
}

func (s *scriptedSource) Float64InRange(low float64, high float64) float64 {
	s.t.Helper()
	if len(s.calls) >= len(s.fractions) {
		s.t.Fatalf("unexpected draw %d: only %d scripted", len(s.calls)+1, len(s.fractions))
	}
	f := s.fractions[len(s.calls)]
	s.calls = append(s.calls, rangeCall{low: low, high: high})
	return low + f*(high-low)
}

func (s *scriptedSource) assertExhausted() {
	s.t.Helper()
	if len(s.calls) != len(s.fractions) {
		s.t.Fatalf("expected %d draws, got %d", len(s.fractions), len(s.calls))
	}
}

func mustUnitSinusoid(t *testing.T, frequency, phase float64) curve.UnitSinusoid {
	t.Helper()
	u, err := curve.NewUnitSinusoid(frequency, phase)
	if err != nil {
		t.Fatalf("NewUnitSinusoid(%v, %v) error: %v", frequency, phase, err)
	}
	return u
}

func TestNewUnitSinusoid_Valid(t *testing.T) {
	u := mustUnitSinusoid(t, 2.0, 0.25)
	if got := u.Frequency(); got != 2.0 {
		t.Fatalf("Frequency() = %v, expected 2.0", got)
	}
	if got := u.Phase(); got != 0.25 {
		t.Fatalf("Phase() = %v, expected 0.25", got)
	}

	// Frequencies outside the sampling bounds are still legal as long as
	// they are positive.
	if _, err := curve.NewUnitSinusoid(1.0, 0.0); err != nil {
		t.Fatalf("expected frequency 1.0 to be accepted: %v", err)
	}
	if _, err := curve.NewUnitSinusoid(0.5, 1.5); err != nil {
		t.Fatalf("expected frequency 0.5 with phase 1.5 to be accepted: %v", err)
	}
}

func TestNewUnitSinusoid_RejectsInvalid(t *testing.T) {
	cases := []struct {
		name      string
		frequency float64
		phase     float64
	}{
		{"zero frequency", 0.0, 0.0},
		{"negative frequency", -2.0, 0.0},
		{"nan frequency", math.NaN(), 0.0},
		{"inf frequency", math.Inf(1), 0.0},
		{"negative phase", 2.0, -0.1},
		{"phase at cycle boundary", 2.0, 0.5},
		{"phase beyond cycle", 2.0, 0.75},
		{"nan phase", 2.0, math.NaN()},
	}

	for _, tc := range cases {
		if _, err := curve.NewUnitSinusoid(tc.frequency, tc.phase); err == nil {
			t.Errorf("%s: expected error for frequency=%v phase=%v", tc.name, tc.frequency, tc.phase)
		}
	}
}

func TestUnitSinusoid_EvaluateConcreteValues(t *testing.T) {
	u := mustUnitSinusoid(t, 2.0, 0.0)

	if got := u.Evaluate(0.0); got != 0.0 {
		t.Fatalf("Evaluate(0.0) = %v, expected exactly 0.0", got)
	}

	// At t = 0.25 the angle is exactly pi, so the output peaks.
	if got := u.Evaluate(0.25); math.Abs(got-1.0) > 1e-15 {
		t.Fatalf("Evaluate(0.25) = %v, expected 1.0", got)
	}

	// Half way up the first rise the angle is pi/2.
	if got := u.Evaluate(0.125); math.Abs(got-0.5) > 1e-15 {
		t.Fatalf("Evaluate(0.125) = %v, expected 0.5", got)
	}
}

func TestUnitSinusoid_PhaseShiftsTimeOrigin(t *testing.T) {
	base := mustUnitSinusoid(t, 2.0, 0.0)
	shifted := mustUnitSinusoid(t, 2.0, 0.1)

	for _, tv := range []float64{0.0, 0.3, 1.7, -2.2} {
		want := base.Evaluate(tv + 0.1)
		got := shifted.Evaluate(tv)
		if math.Abs(got-want) > 1e-12 {
			t.Fatalf("shifted.Evaluate(%v) = %v, expected %v", tv, got, want)
		}
	}
}

func TestUnitSinusoid_EvaluateBounded(t *testing.T) {
	src := randsource.New(11)
	for n := 0; n < 50; n++ {
		u := curve.SampleUnitSinusoid(src)
		for _, tv := range []float64{-1e9, -273.15, -1.0, -1e-9, 0.0, 1e-9, 0.5, 1.0, 42.0, 1e6, 1e12} {
			v := u.Evaluate(tv)
			if v < 0.0 || v > 1.0 {
				t.Fatalf("Evaluate(%v) = %v out of [0, 1] for frequency=%v phase=%v", tv, v, u.Frequency(), u.Phase())
			}
		}
	}
}

func TestSampleUnitSinusoid_DrawOrderAndRanges(t *testing.T) {
	src := newScriptedSource(t, 0.5, 0.25)
	u := curve.SampleUnitSinusoid(src)
	src.assertExhausted()

	first := src.calls[0]
	if first.low != curve.FrequencyMin || first.high != curve.FrequencyMax {
		t.Fatalf("first draw over [%v, %v), expected [%v, %v)", first.low, first.high, curve.FrequencyMin, curve.FrequencyMax)
	}

	wantFrequency := curve.FrequencyMin + 0.5*(curve.FrequencyMax-curve.FrequencyMin)
	if got := u.Frequency(); got != wantFrequency {
		t.Fatalf("Frequency() = %v, expected %v", got, wantFrequency)
	}

	second := src.calls[1]
	if second.low != 0.0 || second.high != 1/wantFrequency {
		t.Fatalf("second draw over [%v, %v), expected [0, %v)", second.low, second.high, 1/wantFrequency)
	}
	if got := u.Phase(); got != 0.25*(1/wantFrequency) {
		t.Fatalf("Phase() = %v, expected %v", got, 0.25*(1/wantFrequency))
	}
}

func TestSampleUnitSinusoid_SampledParametersInRange(t *testing.T) {
	src := randsource.New(5)
	for n := 0; n < 1000; n++ {
		u := curve.SampleUnitSinusoid(src)
		if u.Frequency() < curve.FrequencyMin || u.Frequency() >= curve.FrequencyMax {
			t.Fatalf("frequency %v outside [%v, %v)", u.Frequency(), curve.FrequencyMin, curve.FrequencyMax)
		}
		if u.Phase() < 0 || u.Phase() >= 1/u.Frequency() {
			t.Fatalf("phase %v outside [0, %v)", u.Phase(), 1/u.Frequency())
		}
	}
}

func TestSampleUnitSinusoid_Reproducible(t *testing.T) {
	a := curve.SampleUnitSinusoid(randsource.New(1234))
	b := curve.SampleUnitSinusoid(randsource.New(1234))

	if a.Frequency() != b.Frequency() || a.Phase() != b.Phase() {
		t.Fatalf("identical seeds produced different oscillators: %+v vs %+v",
			[2]float64{a.Frequency(), a.Phase()}, [2]float64{b.Frequency(), b.Phase()})
	}

	for _, tv := range []float64{0.0, 0.1, 2.5, -7.75} {
		if a.Evaluate(tv) != b.Evaluate(tv) {
			t.Fatalf("identical oscillators disagree at t=%v", tv)
		}
	}
}
