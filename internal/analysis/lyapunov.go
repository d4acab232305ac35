// Package analysis provides chaos diagnostics for simulated runs: the
// largest Lyapunov exponent and power spectra of coordinate series.
package analysis

import (
	"math"

	"github.com/san-kum/lorenzviz/internal/lorenz"
)

// LyapunovExponent estimates the largest Lyapunov exponent by the
// trajectory separation method: run two trajectories a tiny
// perturbation apart, accumulate the log of their separation growth,
// and renormalize whenever they drift too far apart. A positive value
// indicates chaos; the classic Lorenz parameters give λ ≈ 0.9.
func LyapunovExponent(p lorenz.Params, s0 lorenz.State, dt, duration, perturbation float64) float64 {
	if dt <= 0 || duration <= 0 || perturbation <= 0 {
		return 0
	}

	a := s0
	b := lorenz.State{X: s0.X + perturbation, Y: s0.Y, Z: s0.Z}
	d0 := perturbation

	sumLog := 0.0
	count := 0

	for t := 0.0; t < duration; t += dt {
		a = lorenz.Step(a, p, dt)
		b = lorenz.Step(b, p, dt)
		if !a.IsFinite() || !b.IsFinite() {
			break
		}

		sep := b.Sub(a).Norm()
		if sep == 0 {
			continue
		}
		sumLog += math.Log(sep / d0)
		count++

		// Renormalize to keep the pair in the linear regime.
		if sep > 1.0 {
			scale := d0 / sep
			b = lorenz.State{
				X: a.X + (b.X-a.X)*scale,
				Y: a.Y + (b.Y-a.Y)*scale,
				Z: a.Z + (b.Z-a.Z)*scale,
			}
		}
	}

	if count == 0 {
		return 0
	}
	return sumLog / (float64(count) * dt)
}
