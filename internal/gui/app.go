// Package gui is the interactive raylib front end: a 3D view of the
// accumulating trajectory with an orbit camera and a live parameter
// panel. All simulation state lives in the session; the GUI only issues
// Tick/Reset/Snapshot calls and draws what comes back.
package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/lorenzviz/internal/audio"
	"github.com/san-kum/lorenzviz/internal/camera"
	"github.com/san-kum/lorenzviz/internal/config"
	"github.com/san-kum/lorenzviz/internal/lorenz"
	"github.com/san-kum/lorenzviz/internal/session"
)

// Theme colors.
var (
	ColBg      = rl.NewColor(13, 13, 26, 255)
	ColCold    = rl.NewColor(60, 120, 255, 255)
	ColWarm    = rl.NewColor(255, 90, 50, 255)
	ColSelect  = rl.NewColor(255, 255, 255, 255)
	ColText    = rl.NewColor(150, 150, 150, 255)
	ColTextDim = rl.NewColor(70, 70, 70, 255)
	ColError   = rl.NewColor(255, 80, 80, 255)
)

// Tunable parameters shown in the panel, in display order.
var panelParams = []string{"sigma", "rho", "beta", "dt", "steps/frame", "max points"}

type App struct {
	Session *session.Session
	Orbit   *camera.Camera
	Sonic   *audio.Sonifier

	cfg      *config.Config
	snapshot []lorenz.State // reused across frames
	diverged bool

	inPanel  bool
	paramSel int

	width, height int
}

// New builds the app around a validated session. The camera starts
// pulled back along the x axis, level with the attractor's centre.
func New(cfg *config.Config) (*App, error) {
	sess, err := session.New(cfg.Session())
	if err != nil {
		return nil, err
	}
	return &App{
		Session: sess,
		Orbit:   camera.New(80, 45, 20),
		cfg:     cfg,
		width:   cfg.Window.Width,
		height:  cfg.Window.Height,
	}, nil
}

// Run opens the window and blocks in the frame loop until close.
func Run(cfg *config.Config, withAudio bool) error {
	app, err := New(cfg)
	if err != nil {
		return err
	}

	rl.InitWindow(int32(app.width), int32(app.height), "lorenzviz")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.Window.FPS))
	rl.SetExitKey(0)

	if withAudio {
		app.toggleAudio()
	}
	defer func() {
		if app.Sonic != nil {
			app.Sonic.Stop()
		}
	}()

	app.Session.Resume()
	for !rl.WindowShouldClose() {
		if !app.Update() {
			break
		}
		app.Draw()
	}
	return nil
}

// Update processes one frame of input and simulation. It returns false
// when the user asked to quit.
func (a *App) Update() bool {
	if rl.IsKeyPressed(rl.KeyQ) || rl.IsKeyPressed(rl.KeyEscape) {
		return false
	}

	if rl.IsKeyPressed(rl.KeyTab) {
		a.inPanel = !a.inPanel
	}
	if a.inPanel {
		a.updatePanel()
	}

	// a diverged run stays paused until reset
	if rl.IsKeyPressed(rl.KeySpace) && !a.diverged {
		a.Session.Toggle()
	}
	if rl.IsKeyPressed(rl.KeyR) {
		a.Session.Reset()
		a.diverged = false
	}
	if rl.IsKeyPressed(rl.KeyC) {
		a.Orbit.Reset()
	}
	if rl.IsKeyPressed(rl.KeyA) {
		a.toggleAudio()
	}

	a.updateCamera()

	if err := a.Session.Tick(); err != nil {
		// Session has auto-paused; keep the last valid trajectory on
		// screen and show the divergence notice until reset.
		a.diverged = true
	}

	if a.Sonic != nil && a.Session.Running() {
		st := a.Session.State()
		speed := lorenz.Derivative(st, a.Session.Params()).Norm()
		a.Sonic.Observe(st.Z, speed)
	}
	return true
}

// toggleAudio starts or stops the sonifier at runtime. A failed start
// just leaves the run silent.
func (a *App) toggleAudio() {
	if a.Sonic != nil && a.Sonic.Active() {
		a.Sonic.Stop()
		return
	}
	if a.Sonic == nil {
		a.Sonic = audio.NewSonifier()
	}
	if err := a.Sonic.Start(); err != nil {
		fmt.Printf("audio unavailable: %v\n", err)
		a.Sonic = nil
	}
}

func (a *App) updateCamera() {
	if rl.IsMouseButtonDown(rl.MouseLeftButton) && !a.inPanel {
		delta := rl.GetMouseDelta()
		a.Orbit.Rotate(float64(delta.X)*0.3, float64(-delta.Y)*0.3)
	}
	if rl.IsMouseButtonDown(rl.MouseRightButton) {
		delta := rl.GetMouseDelta()
		a.Orbit.Pan(float64(-delta.X), float64(delta.Y))
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		a.Orbit.Zoom(float64(-wheel) * 3.0)
	}
}

func (a *App) updatePanel() {
	if rl.IsKeyPressed(rl.KeyDown) || rl.IsKeyPressed(rl.KeyJ) {
		a.paramSel = (a.paramSel + 1) % len(panelParams)
	}
	if rl.IsKeyPressed(rl.KeyUp) || rl.IsKeyPressed(rl.KeyK) {
		a.paramSel--
		if a.paramSel < 0 {
			a.paramSel = len(panelParams) - 1
		}
	}

	dir := 0.0
	if rl.IsKeyPressed(rl.KeyRight) || rl.IsKeyPressed(rl.KeyL) {
		dir = 1
	}
	if rl.IsKeyPressed(rl.KeyLeft) || rl.IsKeyPressed(rl.KeyH) {
		dir = -1
	}
	if dir == 0 {
		return
	}
	if rl.IsKeyDown(rl.KeyLeftShift) {
		dir *= 10
	}
	a.adjustParam(panelParams[a.paramSel], dir)
}

// adjustParam nudges one tunable. Invalid values (say sigma stepped to
// zero) are rejected by the session and the old value stays.
func (a *App) adjustParam(name string, dir float64) {
	p := a.Session.Params()
	switch name {
	case "sigma":
		p.Sigma += dir * 0.5
		a.Session.SetParams(p)
	case "rho":
		p.Rho += dir * 0.5
		a.Session.SetParams(p)
	case "beta":
		p.Beta += dir * 0.1
		a.Session.SetParams(p)
	case "dt":
		a.Session.SetDt(a.Session.Dt() + dir*0.001)
	case "steps/frame":
		a.Session.SetStepsPerFrame(a.Session.StepsPerFrame() + int(dir))
	case "max points":
		a.Session.SetMaxPoints(a.Session.MaxPoints() + int(dir)*1000)
	}
}

func (a *App) paramValue(name string) string {
	p := a.Session.Params()
	switch name {
	case "sigma":
		return fmt.Sprintf("%.2f", p.Sigma)
	case "rho":
		return fmt.Sprintf("%.2f", p.Rho)
	case "beta":
		return fmt.Sprintf("%.3f", p.Beta)
	case "dt":
		return fmt.Sprintf("%.4f", a.Session.Dt())
	case "steps/frame":
		return fmt.Sprintf("%d", a.Session.StepsPerFrame())
	case "max points":
		return fmt.Sprintf("%d", a.Session.MaxPoints())
	}
	return ""
}
