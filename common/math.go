package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
)

const (
	BaseWidth  = 1280
	BaseHeight = 720
)

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Forward is the unit facing on the ground plane for a yaw in radians.
// Yaw 0 faces +z.
func Forward(yaw float64) mgl64.Vec3 {
	return mgl64.Vec3{math.Sin(yaw), 0, math.Cos(yaw)}
}

// YawTowards is the yaw that faces from -> to on the ground plane.
func YawTowards(from, to mgl64.Vec3) float64 {
	return math.Atan2(to.X()-from.X(), to.Z()-from.Z())
}

// Planar projects onto the ground plane as a chipmunk vector (x, z).
func Planar(v mgl64.Vec3) cp.Vector {
	return cp.Vector{X: v.X(), Y: v.Z()}
}

// Direction is the unit vector from -> to, or zero when they coincide.
func Direction(from, to mgl64.Vec3) mgl64.Vec3 {
	d := to.Sub(from)
	if d.Len() == 0 {
		return mgl64.Vec3{}
	}
	return d.Normalize()
}
