// Package lorenz is the numerical kernel: the Lorenz vector field and a
// fixed-step RK4 integrator over it.
//
// The system
//
//	dx/dt = σ(y − x)
//	dy/dt = x(ρ − z) − y
//	dz/dt = xy − βz
//
// is chaotic for the classic parameters (σ=10, ρ=28, β=8/3): nearby
// trajectories separate exponentially, so any nondeterminism in the
// arithmetic destroys reproducibility. Both [Derivative] and [Step] are
// pure functions with a fixed evaluation order and no hidden state.
//
// The package has no dependency on rendering or UI and is safe to use
// from any goroutine.
package lorenz
