package analysis

import (
	"math"
	"testing"

	"github.com/san-kum/lorenzviz/internal/lorenz"
)

func TestLyapunovPositiveForChaoticParams(t *testing.T) {
	p := lorenz.DefaultParams()
	lambda := LyapunovExponent(p, lorenz.State{X: 0, Y: 1, Z: 0}, 0.01, 50.0, 1e-8)

	if lambda <= 0 {
		t.Errorf("expected positive exponent for classic parameters, got %v", lambda)
	}
}

func TestLyapunovNegativeForStableParams(t *testing.T) {
	// ρ < 1: the origin is globally stable, trajectories converge
	p := lorenz.Params{Sigma: 10, Rho: 0.5, Beta: 8.0 / 3.0}
	lambda := LyapunovExponent(p, lorenz.State{X: 1, Y: 1, Z: 1}, 0.01, 50.0, 1e-8)

	if lambda >= 0 {
		t.Errorf("expected negative exponent for stable parameters, got %v", lambda)
	}
}

func TestLyapunovDegenerateInputs(t *testing.T) {
	p := lorenz.DefaultParams()
	s := lorenz.State{X: 0, Y: 1, Z: 0}

	if got := LyapunovExponent(p, s, 0, 10, 1e-8); got != 0 {
		t.Errorf("zero dt: expected 0, got %v", got)
	}
	if got := LyapunovExponent(p, s, 0.01, 0, 1e-8); got != 0 {
		t.Errorf("zero duration: expected 0, got %v", got)
	}
	if got := LyapunovExponent(p, s, 0.01, 10, 0); got != 0 {
		t.Errorf("zero perturbation: expected 0, got %v", got)
	}
}

func TestPowerSpectrumSine(t *testing.T) {
	const n = 512
	series := make([]float64, n)
	for i := range series {
		series[i] = math.Sin(2 * math.Pi * 8 * float64(i) / n)
	}

	ps := PowerSpectrum(series)
	if len(ps) != n/2 {
		t.Fatalf("expected %d bins, got %d", n/2, len(ps))
	}

	best := 0
	for i := range ps {
		if ps[i] > ps[best] {
			best = i
		}
	}
	if best != 8 {
		t.Errorf("expected peak at bin 8, got %d", best)
	}
}

func TestDominantFrequencySine(t *testing.T) {
	const (
		n  = 512
		dt = 0.01
		f  = 2.0
	)
	series := make([]float64, n)
	for i := range series {
		series[i] = math.Sin(2 * math.Pi * f * float64(i) * dt)
	}

	got := DominantFrequency(series, dt)
	if math.Abs(got-f) > 0.3 {
		t.Errorf("expected frequency near %v, got %v", f, got)
	}
}

func TestDominantFrequencyDegenerate(t *testing.T) {
	if got := DominantFrequency(nil, 0.01); got != 0 {
		t.Errorf("nil series: expected 0, got %v", got)
	}
	if got := DominantFrequency([]float64{1, 1, 1, 1}, 0); got != 0 {
		t.Errorf("zero dt: expected 0, got %v", got)
	}
}
