package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	a.drawTrajectory()
	a.drawHUD()
	if a.inPanel {
		a.drawPanel()
	}

	rl.EndDrawing()
}

// rlCamera converts the orbit camera pose for this frame. The world is
// Z-up, so raylib's up vector follows suit.
func (a *App) rlCamera() rl.Camera3D {
	pos := a.Orbit.Position()
	tgt := a.Orbit.Target
	return rl.NewCamera3D(
		rl.NewVector3(float32(pos.X), float32(pos.Y), float32(pos.Z)),
		rl.NewVector3(float32(tgt.X), float32(tgt.Y), float32(tgt.Z)),
		rl.NewVector3(0, 0, 1),
		float32(a.Orbit.FOV),
		rl.CameraPerspective,
	)
}

// gradient maps a normalized trajectory index to a cold-to-warm ramp,
// so the oldest points read blue and the newest read orange.
func gradient(t float64) rl.Color {
	lerp := func(a, b uint8) uint8 { return uint8(float64(a) + t*(float64(b)-float64(a))) }
	return rl.NewColor(
		lerp(ColCold.R, ColWarm.R),
		lerp(ColCold.G, ColWarm.G),
		lerp(ColCold.B, ColWarm.B),
		255,
	)
}

func (a *App) drawTrajectory() {
	a.snapshot = a.Session.Snapshot(a.snapshot)
	count := len(a.snapshot)

	rl.BeginMode3D(a.rlCamera())

	prev := rl.NewVector3(
		float32(a.snapshot[0].X), float32(a.snapshot[0].Y), float32(a.snapshot[0].Z))
	for i := 1; i < count; i++ {
		cur := rl.NewVector3(
			float32(a.snapshot[i].X), float32(a.snapshot[i].Y), float32(a.snapshot[i].Z))
		rl.DrawLine3D(prev, cur, gradient(float64(i)/float64(count)))
		prev = cur
	}

	// head marker
	st := a.Session.State()
	rl.DrawSphere(rl.NewVector3(float32(st.X), float32(st.Y), float32(st.Z)), 0.5, ColSelect)

	rl.EndMode3D()
}

func (a *App) drawHUD() {
	rl.DrawText("lorenzviz", 30, 30, 24, ColSelect)

	status := "RUNNING"
	col := ColSelect
	if a.diverged {
		status = "DIVERGED - PRESS R"
		col = ColError
	} else if !a.Session.Running() {
		status = "PAUSED"
		col = ColTextDim
	}
	rl.DrawText(status, int32(a.width)-220, 30, 16, col)

	p := a.Session.Params()
	rl.DrawText(fmt.Sprintf("sigma %.2f  rho %.2f  beta %.3f  dt %.4f", p.Sigma, p.Rho, p.Beta, a.Session.Dt()),
		30, int32(a.height)-60, 14, ColText)
	rl.DrawText(fmt.Sprintf("%d FPS  %d points  t=%.1f", int32(rl.GetFPS()), a.Session.Len(), a.Session.Time()),
		30, int32(a.height)-35, 14, ColTextDim)
	rl.DrawText("[SPACE] PAUSE  [R] RESET  [C] CAMERA  [A] AUDIO  [TAB] PARAMS  [Q] QUIT",
		int32(a.width)-620, int32(a.height)-35, 14, ColTextDim)

	if a.Sonic != nil && a.Sonic.Active() {
		rl.DrawText("AUDIO ON", 30, 60, 14, ColText)
	}
}

func (a *App) drawPanel() {
	x, y := int32(a.width)-310, int32(70)
	rl.DrawRectangle(x-15, y-15, 300, int32(len(panelParams))*28+60, rl.NewColor(0, 0, 0, 180))
	rl.DrawText("parameters", x, y, 18, ColSelect)
	y += 35

	for i, name := range panelParams {
		line := fmt.Sprintf("  %-12s %s", name, a.paramValue(name))
		col := ColText
		if i == a.paramSel {
			line = ">" + line[1:]
			col = ColSelect
		}
		rl.DrawText(line, x, y, 16, col)
		y += 28
	}
	rl.DrawText("ARROWS ADJUST  SHIFT x10", x, y+5, 12, ColTextDim)
}
