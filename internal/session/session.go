// Package session owns the run-state of one simulation: parameters,
// step size, the bounded trajectory of visited points, and the
// paused/running flag. All control surfaces (GUI, TUI, CLI) drive the
// simulation exclusively through a Session; there is no package-level
// mutable state.
package session

import (
	"fmt"
	"math"

	"github.com/san-kum/lorenzviz/internal/lorenz"
	"github.com/san-kum/lorenzviz/internal/trajectory"
)

// Config is the validated boundary into a session. Zero values are
// rejected, not defaulted; use Default for a ready-to-run setup.
type Config struct {
	Params        lorenz.Params
	Seed          lorenz.State
	Dt            float64
	StepsPerFrame int
	MaxPoints     int
}

// Default is the classic chaotic run: σ=10 ρ=28 β=8/3 seeded just off
// the origin, which lies on the attractor's basin.
func Default() Config {
	return Config{
		Params:        lorenz.DefaultParams(),
		Seed:          lorenz.State{X: 0, Y: 1, Z: 0},
		Dt:            0.01,
		StepsPerFrame: 5,
		MaxPoints:     50000,
	}
}

func (c Config) validate() error {
	if c.Dt <= 0 || math.IsNaN(c.Dt) || math.IsInf(c.Dt, 0) {
		return fmt.Errorf("%w: dt must be positive and finite, got %v", ErrInvalidConfig, c.Dt)
	}
	if c.StepsPerFrame < 1 {
		return fmt.Errorf("%w: steps per frame must be at least 1, got %d", ErrInvalidConfig, c.StepsPerFrame)
	}
	if c.MaxPoints < 1 {
		return fmt.Errorf("%w: max points must be at least 1, got %d", ErrInvalidConfig, c.MaxPoints)
	}
	if !c.Params.Valid() {
		return fmt.Errorf("%w: parameters must be positive and finite, got %+v", ErrInvalidConfig, c.Params)
	}
	return nil
}

// Session is a single simulation run. It is single-threaded: one owner
// interleaves Tick and Snapshot on the same goroutine, so no locking is
// needed. Parameters are read once at the start of each step and never
// change mid-step.
type Session struct {
	cfg     Config
	state   lorenz.State
	traj    *trajectory.Ring
	running bool
	time    float64
	steps   int
}

// New validates cfg and creates a paused session whose trajectory holds
// exactly the seed state.
func New(cfg Config) (*Session, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	traj, err := trajectory.New(cfg.Seed, cfg.MaxPoints)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return &Session{cfg: cfg, state: cfg.Seed, traj: traj}, nil
}

func (s *Session) Running() bool         { return s.running }
func (s *Session) Pause()                { s.running = false }
func (s *Session) Resume()               { s.running = true }
func (s *Session) Toggle()               { s.running = !s.running }
func (s *Session) State() lorenz.State   { return s.state }
func (s *Session) Params() lorenz.Params { return s.cfg.Params }
func (s *Session) Dt() float64           { return s.cfg.Dt }
func (s *Session) StepsPerFrame() int    { return s.cfg.StepsPerFrame }
func (s *Session) MaxPoints() int        { return s.cfg.MaxPoints }
func (s *Session) Time() float64         { return s.time }
func (s *Session) Steps() int            { return s.steps }
func (s *Session) Len() int              { return s.traj.Len() }

// Step advances the system by one dt and appends the new state. If the
// integrator produces a non-finite state it is discarded, the session
// auto-pauses, and ErrDiverged is returned; the trajectory keeps its
// last valid contents.
func (s *Session) Step() error {
	next := lorenz.Step(s.state, s.cfg.Params, s.cfg.Dt)
	if !next.IsFinite() {
		s.running = false
		return fmt.Errorf("%w at t=%.4f after %d steps", ErrDiverged, s.time, s.steps)
	}
	s.state = next
	s.time += s.cfg.Dt
	s.steps++
	s.traj.Append(next)
	return nil
}

// Tick performs one frame's worth of steps. It is a no-op while paused.
// The capacity bound is enforced per step, not per frame, so the
// trajectory never transiently exceeds MaxPoints.
func (s *Session) Tick() error {
	if !s.running {
		return nil
	}
	for i := 0; i < s.cfg.StepsPerFrame; i++ {
		if err := s.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Reset clears the trajectory back to the seed state and rewinds the
// clock. The running/paused flag is left as-is.
func (s *Session) Reset() {
	s.state = s.cfg.Seed
	s.time = 0
	s.steps = 0
	s.traj.Reset(s.cfg.Seed)
}

// Reseed replaces the initial condition and restarts from it.
func (s *Session) Reseed(seed lorenz.State) error {
	if !seed.IsFinite() {
		return fmt.Errorf("%w: seed must be finite, got %+v", ErrInvalidConfig, seed)
	}
	s.cfg.Seed = seed
	s.Reset()
	return nil
}

// SetParams swaps the vector-field coefficients between frames. The
// trajectory is kept; the attractor simply morphs from the current
// state onward.
func (s *Session) SetParams(p lorenz.Params) error {
	if !p.Valid() {
		return fmt.Errorf("%w: parameters must be positive and finite, got %+v", ErrInvalidConfig, p)
	}
	s.cfg.Params = p
	return nil
}

func (s *Session) SetDt(dt float64) error {
	if dt <= 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		return fmt.Errorf("%w: dt must be positive and finite, got %v", ErrInvalidConfig, dt)
	}
	s.cfg.Dt = dt
	return nil
}

func (s *Session) SetStepsPerFrame(n int) error {
	if n < 1 {
		return fmt.Errorf("%w: steps per frame must be at least 1, got %d", ErrInvalidConfig, n)
	}
	s.cfg.StepsPerFrame = n
	return nil
}

// SetMaxPoints rebounds the trajectory, evicting oldest points if the
// new bound is smaller than the current length.
func (s *Session) SetMaxPoints(n int) error {
	if n < 1 {
		return fmt.Errorf("%w: max points must be at least 1, got %d", ErrInvalidConfig, n)
	}
	if err := s.traj.EnforceBound(n); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	s.cfg.MaxPoints = n
	return nil
}

// Snapshot copies the trajectory, oldest first, into dst for one
// rendering pass. See [trajectory.Ring.Snapshot].
func (s *Session) Snapshot(dst []lorenz.State) []lorenz.State {
	return s.traj.Snapshot(dst)
}
