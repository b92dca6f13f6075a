package entity

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/sandkeep/ecs"
	"github.com/milk9111/sandkeep/ecs/component"
	"github.com/milk9111/sandkeep/prefabs"
)

// NewProp assembles static scenery on the terrain at (x, z).
func NewProp(w *ecs.World, recipe *prefabs.Recipe, name string, x, z float64) (ecs.Entity, error) {
	if w == nil || recipe == nil {
		return 0, fmt.Errorf("prop %s: world and recipe are required", name)
	}

	prop := ecs.CreateEntity(w)
	pos := mgl64.Vec3{x, w.Terrain.Height(x, z), z}
	if _, err := addBody(w, prop, recipe, name, pos, 1); err != nil {
		ecs.DestroyEntity(w, prop)
		return 0, fmt.Errorf("prop %s: %w", name, err)
	}

	if err := ecs.Add(w, prop, component.PropComponent.Kind(), &component.Prop{Name: name}); err != nil {
		return 0, fmt.Errorf("prop %s: add prop: %w", name, err)
	}
	return prop, nil
}
