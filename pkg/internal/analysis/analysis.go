// Package analysis provides frequency-domain inspection of sampled curves.
// It exists so the properties the generator promises — a handful of blended
// sinusoids, bounded output, dimension independence — can be checked on real
// samples instead of taken on faith.
package analysis

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/joeydtaylor/meander/pkg/internal/types"
)

// SpectrumInfo summarizes the frequency content of a sampled signal.
type SpectrumInfo struct {
	// PowerSpectrum holds |X_k|^2 for the first half of the FFT bins,
	// DC included.
	PowerSpectrum []float64

	// DominantFrequency is the center frequency of the strongest bin above
	// DC, in hertz. Zero when no bin above DC carries power.
	DominantFrequency float64

	// DominantPower is the power of the dominant bin.
	DominantPower float64

	// TotalPower sums the power spectrum above DC.
	TotalPower float64

	// TotalEnergy sums v^2 over the time-domain samples.
	TotalEnergy float64

	// SNR is the dominant bin's power against the rest of the spectrum above
	// DC, in dB. +Inf when the dominant bin carries all of it.
	SNR float64
}

// Spectrum runs an FFT over samples taken at sampleRate and reports the power
// spectrum together with the dominant spectral line. The DC bin is excluded
// from the peak search: generated curves sit around 0.5, so their mean would
// otherwise drown out every oscillation.
func Spectrum(samples []float64, sampleRate float64) SpectrumInfo {
	var info SpectrumInfo
	if len(samples) == 0 {
		return info
	}

	for _, v := range samples {
		info.TotalEnergy += v * v
	}

	spectrum := fft.FFTReal(samples)
	half := len(spectrum) / 2
	if half == 0 {
		return info
	}

	info.PowerSpectrum = make([]float64, half)
	for i := range info.PowerSpectrum {
		m := cmplx.Abs(spectrum[i])
		info.PowerSpectrum[i] = m * m
	}

	dominantIndex := 0
	for i := 1; i < half; i++ {
		if info.PowerSpectrum[i] > info.DominantPower {
			info.DominantPower = info.PowerSpectrum[i]
			dominantIndex = i
		}
	}
	info.TotalPower = floats.Sum(info.PowerSpectrum[1:])
	info.DominantFrequency = float64(dominantIndex) * sampleRate / float64(len(samples))

	noisePower := info.TotalPower - info.DominantPower
	if noisePower > 0 {
		info.SNR = 10 * math.Log10(info.DominantPower/noisePower)
	} else if info.DominantPower > 0 {
		info.SNR = math.Inf(1)
	}
	return info
}

// Trace samples one curve at n uniformly spaced steps of dt, starting at
// t = 0. Step time is computed by multiplication, matching the streamer's
// clock, so a trace and a streamed run of the same curve agree bit for bit.
func Trace(curve types.Evaluator, dt float64, n int) []float64 {
	out := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, curve.Evaluate(float64(i)*dt))
	}
	return out
}

// CrossCorrelation reports the Pearson correlation of two equally long sample
// runs, in [-1, 1]. It returns NaN when the lengths differ or are zero.
// Dimensions of one generated curve should correlate near zero; a curve
// against itself reports one.
func CrossCorrelation(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return math.NaN()
	}
	return stat.Correlation(a, b, nil)
}
