package entity

import (
	"fmt"

	"github.com/milk9111/sandkeep/ecs"
	"github.com/milk9111/sandkeep/ecs/component"
	"github.com/milk9111/sandkeep/prefabs"
)

func NewCamera(w *ecs.World, spec prefabs.CameraSpec) (ecs.Entity, error) {
	camera := ecs.CreateEntity(w)

	minR, maxR := spec.MinRadius, spec.MaxRadius
	if minR <= 0 {
		minR = 5
	}
	if maxR <= 0 {
		maxR = 20
	}
	radius := spec.Radius
	if radius <= 0 {
		radius = 10
	}

	if err := ecs.Add(w, camera, component.CameraComponent.Kind(), &component.Camera{
		Alpha:     spec.Alpha,
		Beta:      spec.Beta,
		Radius:    radius,
		MinRadius: minR,
		MaxRadius: maxR,
	}); err != nil {
		return 0, fmt.Errorf("camera: add camera: %w", err)
	}
	return camera, nil
}
