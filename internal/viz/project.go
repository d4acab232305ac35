package viz

import (
	"math"

	"github.com/san-kum/lorenzviz/internal/lorenz"
)

// Projector turns world coordinates into canvas sub-pixels: rotate
// around the attractor's centre, scale by zoom, then a simple
// perspective divide. Keyboard-driven, coarse, and cheap — the terminal
// view needs nothing fancier.
type Projector struct {
	RotX, RotY, RotZ float64
	Zoom             float64
	Centre           lorenz.State // rotation pivot, the attractor's middle
	eyeDist          float64
}

func NewProjector() *Projector {
	return &Projector{Zoom: 1.0, Centre: lorenz.State{Z: 25}, eyeDist: 120}
}

func (p *Projector) RotateX(a float64) { p.RotX += a }
func (p *Projector) RotateY(a float64) { p.RotY += a }
func (p *Projector) ZoomIn()           { p.Zoom = math.Min(10, p.Zoom*1.2) }
func (p *Projector) ZoomOut()          { p.Zoom = math.Max(0.1, p.Zoom/1.2) }

func (p *Projector) Reset() {
	p.RotX, p.RotY, p.RotZ = 0, 0, 0
	p.Zoom = 1.0
}

// Project maps a state to canvas sub-pixel coordinates. ok is false
// when the point is behind the eye or off-canvas.
func (p *Projector) Project(s lorenz.State, sw, sh int) (x, y int, ok bool) {
	// recentre, then rotate around X, then Y
	px := s.X - p.Centre.X
	py := s.Y - p.Centre.Y
	pz := s.Z - p.Centre.Z

	cx, sx := math.Cos(p.RotX), math.Sin(p.RotX)
	py, pz = py*cx-pz*sx, py*sx+pz*cx
	cy, sy := math.Cos(p.RotY), math.Sin(p.RotY)
	px, pz = px*cy+pz*sy, -px*sy+pz*cy

	px *= p.Zoom
	py *= p.Zoom
	pz *= p.Zoom

	if pz >= p.eyeDist-1 {
		return 0, 0, false
	}
	scale := p.eyeDist / (p.eyeDist - pz)

	minDim := float64(sh)
	if float64(sw) < minDim {
		minDim = float64(sw)
	}
	pixPerUnit := minDim / 60.0

	x = int(px*scale*pixPerUnit) + sw/2
	y = int(-py*scale*pixPerUnit) + sh/2
	return x, y, x >= 0 && x < sw && y >= 0 && y < sh
}
