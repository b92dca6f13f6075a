package system

import (
	"math"
	"time"

	"github.com/milk9111/sandkeep/common"
	"github.com/milk9111/sandkeep/ecs"
	"github.com/milk9111/sandkeep/ecs/component"
	"github.com/milk9111/sandkeep/logger"
	"github.com/milk9111/sandkeep/prefabs"
	"github.com/sirupsen/logrus"
)

// CombatSystem resolves the hero's melee swing.
type CombatSystem struct {
	Reach     float64
	Arc       float64
	Knockback float64
	Swing     time.Duration
	Lockout   time.Duration
}

func NewCombatSystem(spec prefabs.CombatSpec) *CombatSystem {
	return &CombatSystem{
		Reach:     spec.Reach,
		Arc:       spec.Arc,
		Knockback: spec.Knockback,
		Swing:     time.Duration(spec.SwingMS) * time.Millisecond,
		Lockout:   time.Duration(spec.LockoutMS) * time.Millisecond,
	}
}

func (c *CombatSystem) Update(w *ecs.World) {
	e, hero, tr, ok := findHero(w)
	if !ok {
		return
	}
	in, ok := ecs.Get(w, e, component.InputComponent.Kind())
	if !ok || !in.Primary {
		return
	}
	attack, ok := ecs.Get(w, e, component.AttackComponent.Kind())
	if !ok || attack.InProgress {
		return
	}

	attack.InProgress = true
	w.Schedule(c.Lockout, "attack_unlock", func(w *ecs.World) {
		if a, ok := ecs.Get(w, e, component.AttackComponent.Kind()); ok {
			a.InProgress = false
		}
	})

	c.swingArm(w, e, attack)
	c.resolveHits(w, e, hero, tr)
}

// swingArm chops the right arm down and schedules it back to where it was.
func (c *CombatSystem) swingArm(w *ecs.World, e ecs.Entity, attack *component.Attack) {
	limbs, ok := ecs.Get(w, e, component.LimbsComponent.Kind())
	if !ok {
		return
	}
	arm := limbs.ArmR
	node := w.Scene.Node(arm)
	if node == nil {
		return
	}

	attack.ArmBase = node.Rotation.X()
	attack.Swinging = true
	node.Rotation[0] -= math.Pi / 2

	base := attack.ArmBase
	w.Schedule(c.Swing, "arm_revert", func(w *ecs.World) {
		if n := w.Scene.Node(arm); n != nil {
			n.Rotation[0] = base
		}
		if a, ok := ecs.Get(w, e, component.AttackComponent.Kind()); ok {
			a.Swinging = false
		}
	})
}

func (c *CombatSystem) resolveHits(w *ecs.World, attacker ecs.Entity, hero *component.Hero, tr *component.Transform) {
	facing := common.Forward(tr.Yaw)

	ecs.ForEach3(w, component.MobComponent.Kind(), component.StatsComponent.Kind(), component.TransformComponent.Kind(),
		func(e ecs.Entity, mob *component.Mob, stats *component.Stats, mtr *component.Transform) {
			if ecs.Has(w, e, component.DeadComponent.Kind()) {
				return
			}
			if mtr.Position.Sub(tr.Position).Len() >= c.Reach {
				return
			}
			dir := common.Direction(tr.Position, mtr.Position)
			if dir.Dot(facing) <= c.Arc {
				return
			}

			killed := stats.Damage(hero.Damage)
			mtr.Position = mtr.Position.Add(dir.Mul(c.Knockback))

			w.Events().Push(ecs.Event{Type: ecs.EventHit, Data: ecs.HitEvent{
				Attacker: attacker,
				Target:   e,
				Damage:   hero.Damage,
				HPLeft:   stats.HP,
			}})
			logger.Log.WithFields(logrus.Fields{"mob": mob.Name, "hp": stats.HP}).Debug("hit mob")

			if killed {
				kill(w, e, mob)
			}
		})
}

// kill marks e dead and releases its geometry. The entity itself stays as a
// tombstone carrying the Dead tag.
func kill(w *ecs.World, e ecs.Entity, mob *component.Mob) {
	if state, ok := ecs.Get(w, e, component.AIStateComponent.Kind()); ok {
		state.Current = component.StateDead
	}
	_ = ecs.Add(w, e, component.DeadComponent.Kind(), &component.Dead{})

	if body, ok := ecs.Get(w, e, component.BodyComponent.Kind()); ok {
		w.Scene.Release(body.Root)
		ecs.Remove(w, e, component.BodyComponent.Kind())
	}

	w.Events().Push(ecs.Event{Type: ecs.EventKill, Data: ecs.KillEvent{Entity: e, Name: mob.Name}})
	logger.Log.WithField("mob", mob.Name).Info("mob killed")
}
