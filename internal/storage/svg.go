package storage

import (
	"fmt"
	"io"
	"strings"

	"github.com/san-kum/lorenzviz/internal/lorenz"
)

// Plane selects which two state coordinates an SVG export projects onto.
type Plane int

const (
	PlaneXZ Plane = iota // the classic butterfly silhouette
	PlaneXY
	PlaneYZ
)

func (p Plane) axes(s lorenz.State) (float64, float64) {
	switch p {
	case PlaneXY:
		return s.X, s.Y
	case PlaneYZ:
		return s.Y, s.Z
	default:
		return s.X, s.Z
	}
}

// ExportSVG writes the trajectory as a single SVG polyline, projected
// onto the chosen plane and fitted to the viewport with 10% padding.
// Fewer than two points is an error since there is nothing to draw.
func ExportSVG(w io.Writer, states []lorenz.State, plane Plane, width, height int) error {
	if len(states) < 2 {
		return fmt.Errorf("svg export needs at least 2 points, have %d", len(states))
	}

	minX, minY := plane.axes(states[0])
	maxX, maxY := minX, minY
	for _, s := range states[1:] {
		x, y := plane.axes(s)
		if x < minX {
			minX = x
		}
		if x > maxX {
			maxX = x
		}
		if y < minY {
			minY = y
		}
		if y > maxY {
			maxY = y
		}
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	minY -= rangeY * 0.1
	rangeX *= 1.2
	rangeY *= 1.2

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="#4a9eff" stroke-width="0.8" d="M`,
		width, height, width, height)

	for i, s := range states {
		px, py := plane.axes(s)
		x := (px - minX) / rangeX * float64(width)
		y := float64(height) - (py-minY)/rangeY*float64(height)
		if i == 0 {
			fmt.Fprintf(&sb, "%.1f,%.1f", x, y)
		} else {
			fmt.Fprintf(&sb, " L%.1f,%.1f", x, y)
		}
	}

	sb.WriteString("\"/>\n</svg>\n")
	_, err := io.WriteString(w, sb.String())
	return err
}

// ParsePlane maps a CLI flag value to a Plane.
func ParsePlane(name string) (Plane, error) {
	switch strings.ToLower(name) {
	case "xz", "":
		return PlaneXZ, nil
	case "xy":
		return PlaneXY, nil
	case "yz":
		return PlaneYZ, nil
	}
	return PlaneXZ, fmt.Errorf("unknown plane %q (want xz, xy, or yz)", name)
}
