package entity

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/sandkeep/ecs"
	"github.com/milk9111/sandkeep/ecs/component"
	"github.com/milk9111/sandkeep/prefabs"
)

// MobParams places and tunes one mob.
type MobParams struct {
	Name       string
	X, Z       float64
	HP         int
	Scale      float64
	Speed      float64
	AggroRange float64
}

// NewMob assembles a mob on the terrain at (X, Z). Its walk cycle starts at a
// random phase so groups do not march in step.
func NewMob(w *ecs.World, recipe *prefabs.Recipe, p MobParams) (ecs.Entity, error) {
	if w == nil || recipe == nil {
		return 0, fmt.Errorf("mob %s: world and recipe are required", p.Name)
	}

	mob := ecs.CreateEntity(w)

	pos := mgl64.Vec3{p.X, w.Terrain.Height(p.X, p.Z), p.Z}
	built, err := addBody(w, mob, recipe, p.Name, pos, p.Scale)
	if err != nil {
		ecs.DestroyEntity(w, mob)
		return 0, fmt.Errorf("mob %s: %w", p.Name, err)
	}

	if err := ecs.Add(w, mob, component.MobComponent.Kind(), &component.Mob{Name: p.Name}); err != nil {
		discard(w, mob, built.Root)
		return 0, fmt.Errorf("mob %s: add mob: %w", p.Name, err)
	}

	if err := ecs.Add(w, mob, component.StatsComponent.Kind(), &component.Stats{
		HP:         p.HP,
		MaxHP:      p.HP,
		Speed:      p.Speed,
		AggroRange: p.AggroRange,
	}); err != nil {
		discard(w, mob, built.Root)
		return 0, fmt.Errorf("mob %s: add stats: %w", p.Name, err)
	}

	if err := ecs.Add(w, mob, component.AIStateComponent.Kind(), &component.AIState{Current: component.StateIdle}); err != nil {
		discard(w, mob, built.Root)
		return 0, fmt.Errorf("mob %s: add ai state: %w", p.Name, err)
	}

	phase := 0.0
	if w.Rand != nil {
		phase = w.Rand.Float64() * 100
	}
	if err := ecs.Add(w, mob, component.AnimComponent.Kind(), &component.Anim{Phase: phase, Breath: 1}); err != nil {
		discard(w, mob, built.Root)
		return 0, fmt.Errorf("mob %s: add anim: %w", p.Name, err)
	}

	return mob, nil
}
