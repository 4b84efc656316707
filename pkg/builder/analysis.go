package builder

import (
	"github.com/joeydtaylor/meander/pkg/internal/analysis"
	"github.com/joeydtaylor/meander/pkg/internal/types"
)

type SpectrumInfo = analysis.SpectrumInfo

// AnalyzeSpectrum runs an FFT over samples taken at sampleRate and reports
// the power spectrum, dominant spectral line, total energy, and SNR. The DC
// bin is excluded from the peak search.
func AnalyzeSpectrum(samples []float64, sampleRate float64) SpectrumInfo {
	return analysis.Spectrum(samples, sampleRate)
}

// TraceSamples evaluates one curve at n uniformly spaced steps of dt,
// starting at t = 0.
func TraceSamples(curve types.Evaluator, dt float64, n int) []float64 {
	return analysis.Trace(curve, dt, n)
}

// CrossCorrelation reports the Pearson correlation of two equally long sample
// runs, in [-1, 1]. NaN when the lengths differ or are zero.
func CrossCorrelation(a, b []float64) float64 {
	return analysis.CrossCorrelation(a, b)
}
