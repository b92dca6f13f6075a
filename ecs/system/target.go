package system

import (
	"github.com/milk9111/sandkeep/common"
	"github.com/milk9111/sandkeep/ecs"
	"github.com/milk9111/sandkeep/ecs/component"
	"github.com/milk9111/sandkeep/prefabs"
)

// TargetSystem selects the closest living mob in front of the hero.
type TargetSystem struct {
	Range float64
	Arc   float64
}

func NewTargetSystem(spec prefabs.TargetingSpec) *TargetSystem {
	return &TargetSystem{Range: spec.Range, Arc: spec.Arc}
}

func (t *TargetSystem) Update(w *ecs.World) {
	e, _, tr, ok := findHero(w)
	if !ok {
		return
	}
	targeting, ok := ecs.Get(w, e, component.TargetingComponent.Kind())
	if !ok {
		return
	}

	facing := common.Forward(tr.Yaw)
	best := t.Range
	*targeting = component.Targeting{}

	ecs.ForEach2(w, component.MobComponent.Kind(), component.TransformComponent.Kind(),
		func(m ecs.Entity, mob *component.Mob, mtr *component.Transform) {
			if ecs.Has(w, m, component.DeadComponent.Kind()) {
				return
			}
			dist := mtr.Position.Sub(tr.Position).Len()
			if dist >= best {
				return
			}
			if common.Direction(tr.Position, mtr.Position).Dot(facing) <= t.Arc {
				return
			}
			best = dist
			targeting.Target = uint64(m)
			targeting.Name = mob.Name
		})
}
