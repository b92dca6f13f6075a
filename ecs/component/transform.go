package component

import "github.com/go-gl/mathgl/mgl64"

// Transform is the authoritative placement of an entity. The compose system
// copies it onto the entity's scene root every frame.
type Transform struct {
	Position mgl64.Vec3
	// Yaw in radians; 0 faces +z.
	Yaw   float64
	Scale float64
}

var TransformComponent = NewComponent[Transform]()
