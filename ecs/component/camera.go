package component

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Camera orbits Target. Alpha is the angle around the vertical axis, Beta the
// angle from the vertical.
type Camera struct {
	Alpha     float64
	Beta      float64
	Radius    float64
	MinRadius float64
	MaxRadius float64
	Target    mgl64.Vec3
}

// Position is the eye position on the orbit sphere.
func (c Camera) Position() mgl64.Vec3 {
	sinB := math.Sin(c.Beta)
	return c.Target.Add(mgl64.Vec3{
		c.Radius * math.Cos(c.Alpha) * sinB,
		c.Radius * math.Cos(c.Beta),
		c.Radius * math.Sin(c.Alpha) * sinB,
	})
}

// Zoom changes the radius by delta, clamped to the limits.
func (c *Camera) Zoom(delta float64) {
	r := c.Radius - delta
	if c.MinRadius > 0 && r < c.MinRadius {
		r = c.MinRadius
	}
	if c.MaxRadius > 0 && r > c.MaxRadius {
		r = c.MaxRadius
	}
	c.Radius = r
}

var CameraComponent = NewComponent[Camera]()
