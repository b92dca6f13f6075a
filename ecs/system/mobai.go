package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/sandkeep/ecs"
	"github.com/milk9111/sandkeep/ecs/component"
	"github.com/milk9111/sandkeep/prefabs"
)

// MobAISystem drives every living mob through IDLE, CHASE and ATTACK based
// on its distance to the hero.
type MobAISystem struct {
	AttackRange  float64
	HeightOffset float64
	FSM          *FSMDef
}

func NewMobAISystem(spec prefabs.MobSpec) *MobAISystem {
	return &MobAISystem{AttackRange: spec.AttackRange, HeightOffset: spec.HeightOffset, FSM: DefaultMobFSM()}
}

func (m *MobAISystem) Update(w *ecs.World) {
	_, _, hero, ok := findHero(w)
	if !ok {
		return
	}

	ecs.ForEach3(w, component.StatsComponent.Kind(), component.AIStateComponent.Kind(), component.TransformComponent.Kind(),
		func(e ecs.Entity, stats *component.Stats, state *component.AIState, tr *component.Transform) {
			if ecs.Has(w, e, component.DeadComponent.Kind()) {
				return
			}
			tr.Position[1] = w.Terrain.Height(tr.Position.X(), tr.Position.Z()) + m.HeightOffset

			anim, _ := ecs.Get(w, e, component.AnimComponent.Kind())
			limbs, _ := ecs.Get(w, e, component.LimbsComponent.Kind())

			moving := m.think(w, stats, state, tr, hero.Position)
			animateLimbs(w.Scene, limbs, anim, moving, false)

			if anim != nil {
				if state.Current == component.StateIdle {
					anim.Breath = breath(w.Now())
				} else {
					anim.Breath = 1
				}
			}
		})
}

// think runs one FSM step for the mob and reports whether it walked.
func (m *MobAISystem) think(w *ecs.World, stats *component.Stats, state *component.AIState, tr *component.Transform, target mgl64.Vec3) bool {
	if m.FSM == nil {
		m.FSM = DefaultMobFSM()
	}
	ctx := &AIActionContext{World: w, Stats: stats, Mob: tr, Hero: target}
	dist := tr.Position.Sub(target).Len()
	processEvents(m.FSM, state, ctx, sensorEvents(dist, stats.AggroRange, m.AttackRange))
	applyActions(m.FSM.States[state.Current].While, ctx)
	return ctx.Moving
}
