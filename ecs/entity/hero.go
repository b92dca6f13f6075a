package entity

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/sandkeep/ecs"
	"github.com/milk9111/sandkeep/ecs/component"
	"github.com/milk9111/sandkeep/input"
	"github.com/milk9111/sandkeep/prefabs"
)

const HeroName = "hero"

// NewHero assembles the hero at the world origin, standing on the terrain.
func NewHero(w *ecs.World, recipe *prefabs.Recipe, spec prefabs.HeroSpec) (ecs.Entity, error) {
	if w == nil || recipe == nil {
		return 0, fmt.Errorf("hero: world and recipe are required")
	}

	hero := ecs.CreateEntity(w)

	pos := mgl64.Vec3{0, w.Terrain.Height(0, 0) + spec.HeightOffset, 0}
	built, err := addBody(w, hero, recipe, HeroName, pos, 1)
	if err != nil {
		ecs.DestroyEntity(w, hero)
		return 0, fmt.Errorf("hero: %w", err)
	}

	if err := ecs.Add(w, hero, component.HeroComponent.Kind(), &component.Hero{
		Name:   HeroName,
		HP:     spec.HP,
		MaxHP:  spec.HP,
		Damage: spec.Damage,
	}); err != nil {
		discard(w, hero, built.Root)
		return 0, fmt.Errorf("hero: add hero: %w", err)
	}

	if err := ecs.Add(w, hero, component.AnimComponent.Kind(), &component.Anim{Breath: 1}); err != nil {
		discard(w, hero, built.Root)
		return 0, fmt.Errorf("hero: add anim: %w", err)
	}

	if err := ecs.Add(w, hero, component.AttackComponent.Kind(), &component.Attack{}); err != nil {
		discard(w, hero, built.Root)
		return 0, fmt.Errorf("hero: add attack: %w", err)
	}

	if err := ecs.Add(w, hero, component.InputComponent.Kind(), &component.Input{Snapshot: input.Snapshot{}}); err != nil {
		discard(w, hero, built.Root)
		return 0, fmt.Errorf("hero: add input: %w", err)
	}

	if err := ecs.Add(w, hero, component.TargetingComponent.Kind(), &component.Targeting{}); err != nil {
		discard(w, hero, built.Root)
		return 0, fmt.Errorf("hero: add targeting: %w", err)
	}

	return hero, nil
}
