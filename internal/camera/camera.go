// Package camera implements a spherical orbit camera: a position on a
// sphere around a target point, driven by yaw/pitch/distance, with
// distance-scaled panning. Pure math, no rendering dependency.
package camera

import "math"

// Vec3 is a right-handed, Z-up world vector.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3      { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3      { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{v.Y*o.Z - v.Z*o.Y, v.Z*o.X - v.X*o.Z, v.X*o.Y - v.Y*o.X}
}

func (v Vec3) Norm() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

func (v Vec3) Normalize() Vec3 {
	if n := v.Norm(); n != 0 {
		return v.Scale(1 / n)
	}
	return Vec3{}
}

const (
	minDistance = 5.0
	maxDistance = 200.0
	maxPitch    = 89.0 // avoid gimbal lock at the poles
)

// Camera orbits a target point. Yaw and pitch are degrees; distance is
// world units. The attractor sits around z≈25, so the default target is
// lifted to centre it.
type Camera struct {
	Distance   float64
	Yaw, Pitch float64
	Target     Vec3
	FOV        float64
	Near, Far  float64

	defaults struct {
		distance, yaw, pitch float64
		target               Vec3
	}
}

// New returns a camera at the given spherical pose, looking at the
// attractor centre. The construction pose becomes the Reset pose.
func New(distance, yaw, pitch float64) *Camera {
	c := &Camera{
		Distance: distance,
		Yaw:      yaw,
		Pitch:    pitch,
		Target:   Vec3{0, 0, 25},
		FOV:      45.0,
		Near:     0.1,
		Far:      1000.0,
	}
	c.defaults.distance = distance
	c.defaults.yaw = yaw
	c.defaults.pitch = pitch
	c.defaults.target = c.Target
	return c
}

// Position converts the spherical pose to Cartesian world coordinates.
func (c *Camera) Position() Vec3 {
	yaw := c.Yaw * math.Pi / 180
	pitch := c.Pitch * math.Pi / 180
	return c.Target.Add(Vec3{
		X: c.Distance * math.Cos(pitch) * math.Cos(yaw),
		Y: c.Distance * math.Cos(pitch) * math.Sin(yaw),
		Z: c.Distance * math.Sin(pitch),
	})
}

// Rotate orbits by the given deltas in degrees. Pitch is clamped short
// of the poles and yaw wraps to [0, 360).
func (c *Camera) Rotate(deltaYaw, deltaPitch float64) {
	c.Yaw += deltaYaw
	c.Pitch += deltaPitch

	if c.Pitch > maxPitch {
		c.Pitch = maxPitch
	}
	if c.Pitch < -maxPitch {
		c.Pitch = -maxPitch
	}
	c.Yaw = math.Mod(c.Yaw, 360)
	if c.Yaw < 0 {
		c.Yaw += 360
	}
}

// Zoom moves along the view ray; positive delta backs away. Distance is
// clamped so the camera neither enters the attractor nor loses it.
func (c *Camera) Zoom(delta float64) {
	c.Distance += delta
	if c.Distance < minDistance {
		c.Distance = minDistance
	}
	if c.Distance > maxDistance {
		c.Distance = maxDistance
	}
}

// Pan slides the target in the view plane, scaled by distance so a
// screen-space drag covers the same apparent ground at any zoom.
func (c *Camera) Pan(deltaX, deltaY float64) {
	forward := c.Target.Sub(c.Position()).Normalize()
	right := forward.Cross(Vec3{0, 0, 1}).Normalize()
	up := right.Cross(forward)

	speed := c.Distance * 0.01
	c.Target = c.Target.Add(right.Scale(deltaX * speed))
	c.Target = c.Target.Add(up.Scale(deltaY * speed))
}

// Reset restores the construction pose.
func (c *Camera) Reset() {
	c.Distance = c.defaults.distance
	c.Yaw = c.defaults.yaw
	c.Pitch = c.defaults.pitch
	c.Target = c.defaults.target
}
