package viz

import (
	"strings"
	"testing"

	"github.com/san-kum/lorenzviz/internal/lorenz"
)

func TestCanvasSetAndClear(t *testing.T) {
	c := NewCanvas(10, 5)

	empty := c.String()
	if strings.ContainsFunc(empty, func(r rune) bool { return r != 0x2800 && r != '\n' }) {
		t.Error("new canvas should be blank")
	}

	c.Set(0, 0)
	if c.String() == empty {
		t.Error("Set had no effect")
	}

	c.Clear()
	if c.String() != empty {
		t.Error("Clear did not blank the canvas")
	}
}

func TestCanvasIgnoresOutOfRange(t *testing.T) {
	c := NewCanvas(4, 4)
	before := c.String()

	c.Set(-1, 0)
	c.Set(0, -3)
	c.Set(1000, 0)
	c.Set(0, 1000)

	if c.String() != before {
		t.Error("out-of-range Set must be ignored")
	}
}

func TestCanvasDrawLineEndpoints(t *testing.T) {
	c := NewCanvas(20, 10)
	c.DrawLine(0, 0, 30, 30)

	// both endpoints and something between must be lit
	lit := 0
	for _, r := range c.String() {
		if r != 0x2800 && r != '\n' {
			lit++
		}
	}
	if lit < 3 {
		t.Errorf("expected a rasterized line, got %d lit cells", lit)
	}
}

func TestProjectorCentreLandsMidScreen(t *testing.T) {
	p := NewProjector()
	sw, sh := 180, 112

	x, y, ok := p.Project(lorenz.State{X: 0, Y: 0, Z: 25}, sw, sh)
	if !ok {
		t.Fatal("centre point should be visible")
	}
	if x != sw/2 || y != sh/2 {
		t.Errorf("expected centre (%d,%d), got (%d,%d)", sw/2, sh/2, x, y)
	}
}

func TestProjectorZoomBounds(t *testing.T) {
	p := NewProjector()
	for i := 0; i < 100; i++ {
		p.ZoomIn()
	}
	if p.Zoom > 10 {
		t.Errorf("zoom should cap at 10, got %v", p.Zoom)
	}
	for i := 0; i < 100; i++ {
		p.ZoomOut()
	}
	if p.Zoom < 0.1 {
		t.Errorf("zoom should floor at 0.1, got %v", p.Zoom)
	}
}

func TestProjectorResetRestoresPose(t *testing.T) {
	p := NewProjector()
	p.RotateX(1.5)
	p.RotateY(-0.7)
	p.ZoomIn()
	p.Reset()

	if p.RotX != 0 || p.RotY != 0 || p.RotZ != 0 || p.Zoom != 1.0 {
		t.Errorf("pose not restored: %+v", p)
	}
}

func TestProjectorRotationMovesPoints(t *testing.T) {
	p := NewProjector()
	sw, sh := 180, 112
	s := lorenz.State{X: 10, Y: 0, Z: 25}

	x0, y0, _ := p.Project(s, sw, sh)
	p.RotateY(0.8)
	x1, y1, _ := p.Project(s, sw, sh)

	if x0 == x1 && y0 == y1 {
		t.Error("rotation did not move the projected point")
	}
}
