package lorenz

import "math"

// State is one point of the system in phase space.
type State struct {
	X, Y, Z float64
}

// IsFinite reports whether every component is a finite number.
func (s State) IsFinite() bool {
	return !math.IsNaN(s.X) && !math.IsInf(s.X, 0) &&
		!math.IsNaN(s.Y) && !math.IsInf(s.Y, 0) &&
		!math.IsNaN(s.Z) && !math.IsInf(s.Z, 0)
}

func (s State) Sub(o State) State {
	return State{s.X - o.X, s.Y - o.Y, s.Z - o.Z}
}

func (s State) Norm() float64 {
	return math.Sqrt(s.X*s.X + s.Y*s.Y + s.Z*s.Z)
}

// Params are the three coefficients of the Lorenz vector field.
type Params struct {
	Sigma, Rho, Beta float64
}

// DefaultParams returns the classic chaotic regime.
func DefaultParams() Params { return Params{Sigma: 10.0, Rho: 28.0, Beta: 8.0 / 3.0} }

// Valid reports whether all coefficients are positive and finite.
func (p Params) Valid() bool {
	for _, v := range []float64{p.Sigma, p.Rho, p.Beta} {
		if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Derivative evaluates the Lorenz vector field at s. Pure function:
// identical inputs produce bit-identical outputs.
func Derivative(s State, p Params) State {
	return State{
		X: p.Sigma * (s.Y - s.X),
		Y: s.X*(p.Rho-s.Z) - s.Y,
		Z: s.X*s.Y - p.Beta*s.Z,
	}
}
