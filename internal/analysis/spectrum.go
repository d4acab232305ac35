package analysis

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// PowerSpectrum returns the magnitude spectrum of a coordinate series,
// one bin per frequency up to Nyquist. Any series length is accepted;
// the FFT pads internally.
func PowerSpectrum(series []float64) []float64 {
	if len(series) < 2 {
		return nil
	}
	bins := fft.FFTReal(series)
	ps := make([]float64, len(bins)/2)
	for i := range ps {
		ps[i] = cmplx.Abs(bins[i])
	}
	return ps
}

// DominantFrequency returns the frequency (in 1/time units of dt) of
// the strongest non-DC spectral component, or 0 for a flat series. For
// a periodic orbit this locates the cycle frequency; chaotic runs show
// broadband spectra with no sharp winner.
func DominantFrequency(series []float64, dt float64) float64 {
	ps := PowerSpectrum(series)
	if len(ps) < 2 || dt <= 0 {
		return 0
	}
	best := 1
	for i := 2; i < len(ps); i++ {
		if ps[i] > ps[best] {
			best = i
		}
	}
	n := len(ps) * 2
	return float64(best) / (float64(n) * dt)
}
