package system

import (
	"math"

	"github.com/milk9111/sandkeep/ecs"
	"github.com/milk9111/sandkeep/ecs/component"
	"github.com/milk9111/sandkeep/input"
)

const (
	orbitStep = 0.03
	minBeta   = 0.1
	maxBeta   = math.Pi/2 - 0.05
)

// CameraSystem follows the hero and applies orbit and zoom input.
type CameraSystem struct{}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

func (c *CameraSystem) Update(w *ecs.World) {
	_, cam, ok := ecs.First(w, component.CameraComponent.Kind())
	if !ok {
		return
	}
	e, _, tr, ok := findHero(w)
	if !ok {
		return
	}
	cam.Target = tr.Position

	in, ok := ecs.Get(w, e, component.InputComponent.Kind())
	if !ok {
		return
	}
	if in.Down(input.KeyOrbitLeft) {
		cam.Alpha -= orbitStep
	}
	if in.Down(input.KeyOrbitRight) {
		cam.Alpha += orbitStep
	}
	if in.Down(input.KeyOrbitUp) {
		cam.Beta -= orbitStep
	}
	if in.Down(input.KeyOrbitDown) {
		cam.Beta += orbitStep
	}
	cam.Beta = math.Max(minBeta, math.Min(maxBeta, cam.Beta))
	if in.Zoom != 0 {
		cam.Zoom(in.Zoom)
	}
}
