package entity

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/sandkeep/assembler"
	"github.com/milk9111/sandkeep/ecs"
	"github.com/milk9111/sandkeep/ecs/component"
	"github.com/milk9111/sandkeep/prefabs"
	"github.com/milk9111/sandkeep/scene"
)

// addBody assembles recipe at position and attaches Transform, Body and
// Limbs to e.
func addBody(w *ecs.World, e ecs.Entity, recipe *prefabs.Recipe, name string, position mgl64.Vec3, scale float64) (*assembler.Assembled, error) {
	built, err := assembler.Assemble(w.Scene, w.Materials, recipe, position, name)
	if err != nil {
		return nil, err
	}

	if scale == 0 {
		scale = 1
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		Position: position,
		Scale:    scale,
	}); err != nil {
		w.Scene.Release(built.Root)
		return nil, fmt.Errorf("add transform: %w", err)
	}

	if err := ecs.Add(w, e, component.BodyComponent.Kind(), &component.Body{
		Root:   built.Root,
		Parts:  built.Parts,
		Recipe: recipe.Name,
	}); err != nil {
		w.Scene.Release(built.Root)
		return nil, fmt.Errorf("add body: %w", err)
	}

	limbs := built.FindLimbs()
	if err := ecs.Add(w, e, component.LimbsComponent.Kind(), &component.Limbs{
		LegR: limbs.LegR,
		LegL: limbs.LegL,
		ArmR: limbs.ArmR,
		ArmL: limbs.ArmL,
	}); err != nil {
		w.Scene.Release(built.Root)
		return nil, fmt.Errorf("add limbs: %w", err)
	}

	w.Events().Push(ecs.Event{Type: ecs.EventSpawn, Data: ecs.SpawnEvent{Entity: e, Name: name, Recipe: recipe.Name}})
	return built, nil
}

// discard undoes a partly built entity: its scene nodes are released and the
// entity is destroyed.
func discard(w *ecs.World, e ecs.Entity, root scene.NodeID) {
	w.Scene.Release(root)
	ecs.DestroyEntity(w, e)
}
