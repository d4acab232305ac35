package lorenz

// Step advances s by one fixed step dt under the vector field defined
// by p, using classical 4th-order Runge-Kutta. The arithmetic order is
// fixed so trajectories are reproducible run to run; the caller is
// responsible for checking the result with [State.IsFinite] when dt or
// the parameters are extreme.
func Step(s State, p Params, dt float64) State {
	half := 0.5 * dt

	k1 := Derivative(s, p)
	k2 := Derivative(State{s.X + half*k1.X, s.Y + half*k1.Y, s.Z + half*k1.Z}, p)
	k3 := Derivative(State{s.X + half*k2.X, s.Y + half*k2.Y, s.Z + half*k2.Z}, p)
	k4 := Derivative(State{s.X + dt*k3.X, s.Y + dt*k3.Y, s.Z + dt*k3.Z}, p)

	sixth := dt / 6.0
	return State{
		X: s.X + sixth*(k1.X+2*k2.X+2*k3.X+k4.X),
		Y: s.Y + sixth*(k1.Y+2*k2.Y+2*k3.Y+k4.Y),
		Z: s.Z + sixth*(k1.Z+2*k2.Z+2*k3.Z+k4.Z),
	}
}
