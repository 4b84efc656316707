package analysis_test

import (
	"math"
	"testing"

	"github.com/joeydtaylor/meander/pkg/internal/analysis"
	"github.com/joeydtaylor/meander/pkg/internal/curve"
	"github.com/joeydtaylor/meander/pkg/internal/randsource"
)

type constantCurve struct {
	value float64
}

func (c constantCurve) Evaluate(t float64) float64 { return c.value }

type linearCurve struct {
	slope float64
}

func (c linearCurve) Evaluate(t float64) float64 { return c.slope * t }

func TestSpectrumRecoversSinusoidFrequency(t *testing.T) {
	// 4.25 Hz over 8 s is exactly 34 cycles, so the line lands on one bin
	// with no leakage.
	u, err := curve.NewUnitSinusoid(4.25, 0.05)
	if err != nil {
		t.Fatalf("NewUnitSinusoid error: %v", err)
	}

	const (
		sampleRate = 256.0
		n          = 2048
	)
	samples := analysis.Trace(u, 1/sampleRate, n)

	info := analysis.Spectrum(samples, sampleRate)
	if got := info.DominantFrequency; math.Abs(got-4.25) > sampleRate/n {
		t.Fatalf("expected dominant frequency near 4.25 Hz, got %v", got)
	}
	if info.DominantPower <= 0 {
		t.Fatalf("expected positive dominant power, got %v", info.DominantPower)
	}
	if info.SNR < 10 {
		t.Fatalf("expected a clean spectral line, got SNR %v dB", info.SNR)
	}
}

func TestSpectrumExcludesDCBin(t *testing.T) {
	samples := analysis.Trace(constantCurve{value: 0.75}, 0.01, 512)

	info := analysis.Spectrum(samples, 100)
	if info.DominantFrequency != 0 {
		t.Fatalf("expected zero dominant frequency for a constant signal, got %v", info.DominantFrequency)
	}
	if info.DominantPower > 1e-12 {
		t.Fatalf("expected no power above DC, got %v", info.DominantPower)
	}

	wantEnergy := 512 * 0.75 * 0.75
	if math.Abs(info.TotalEnergy-wantEnergy) > 1e-9 {
		t.Fatalf("expected total energy %v, got %v", wantEnergy, info.TotalEnergy)
	}
}

func TestSpectrumFindsMeanderComponentRange(t *testing.T) {
	src := randsource.New(7)
	m := curve.SampleMeander1D(src)

	const (
		sampleRate = 128.0
		n          = 4096
	)
	samples := analysis.Trace(m, 1/sampleRate, n)

	info := analysis.Spectrum(samples, sampleRate)
	if info.DominantFrequency <= curve.FrequencyMin-1 || info.DominantFrequency >= curve.FrequencyMax+1 {
		t.Fatalf("expected dominant frequency near the component band (%v, %v), got %v",
			curve.FrequencyMin, curve.FrequencyMax, info.DominantFrequency)
	}
}

func TestSpectrumEmptyInput(t *testing.T) {
	info := analysis.Spectrum(nil, 100)
	if info.TotalEnergy != 0 || info.DominantFrequency != 0 || len(info.PowerSpectrum) != 0 {
		t.Fatalf("expected zero-valued info for empty input, got %+v", info)
	}
}

func TestTraceMatchesDirectEvaluation(t *testing.T) {
	c := linearCurve{slope: 2}
	samples := analysis.Trace(c, 0.25, 8)

	if len(samples) != 8 {
		t.Fatalf("expected 8 samples, got %d", len(samples))
	}
	for i, v := range samples {
		want := 2 * (float64(i) * 0.25)
		if math.Float64bits(v) != math.Float64bits(want) {
			t.Fatalf("expected %v at step %d, got %v", want, i, v)
		}
	}
}

func TestCrossCorrelation(t *testing.T) {
	a := []float64{0, 1, 2, 3, 4, 5}
	b := []float64{10, 12, 14, 16, 18, 20}
	if got := analysis.CrossCorrelation(a, b); math.Abs(got-1) > 1e-12 {
		t.Fatalf("expected correlation 1 for a linear rescaling, got %v", got)
	}

	inverted := []float64{5, 4, 3, 2, 1, 0}
	if got := analysis.CrossCorrelation(a, inverted); math.Abs(got+1) > 1e-12 {
		t.Fatalf("expected correlation -1 for an inverted run, got %v", got)
	}

	if got := analysis.CrossCorrelation(a, []float64{1, 2}); !math.IsNaN(got) {
		t.Fatalf("expected NaN for mismatched lengths, got %v", got)
	}
	if got := analysis.CrossCorrelation(nil, nil); !math.IsNaN(got) {
		t.Fatalf("expected NaN for empty inputs, got %v", got)
	}
}

func TestMeanderDimensionsDecorrelated(t *testing.T) {
	src := randsource.New(99)
	m := curve.SampleMeander(2, src)

	const (
		dt = 1.0 / 64
		n  = 8192
	)
	curves := m.Curves()
	a := analysis.Trace(curves[0], dt, n)
	b := analysis.Trace(curves[1], dt, n)

	if got := analysis.CrossCorrelation(a, b); math.Abs(got) > 0.5 {
		t.Fatalf("expected independently sampled dimensions to decorrelate, got %v", got)
	}
	if got := analysis.CrossCorrelation(a, a); math.Abs(got-1) > 1e-12 {
		t.Fatalf("expected a curve to correlate with itself, got %v", got)
	}
}
