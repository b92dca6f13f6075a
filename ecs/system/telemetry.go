package system

import (
	"github.com/milk9111/sandkeep/ecs"
	"github.com/milk9111/sandkeep/ecs/component"
	"github.com/milk9111/sandkeep/logger"
	"github.com/milk9111/sandkeep/telemetry"
	"github.com/sirupsen/logrus"
)

// TelemetrySystem publishes a snapshot of the hero, its target and the
// living mobs once the hero exists. It also logs this tick's combat events.
type TelemetrySystem struct {
	Sink telemetry.Sink

	last telemetry.Snapshot
}

func NewTelemetrySystem(sink telemetry.Sink) *TelemetrySystem {
	return &TelemetrySystem{Sink: sink}
}

// Last is the most recently published snapshot.
func (t *TelemetrySystem) Last() telemetry.Snapshot {
	return t.last
}

func (t *TelemetrySystem) Update(w *ecs.World) {
	logEvents(w)

	e, hero, tr, ok := findHero(w)
	if !ok {
		return
	}

	snap := telemetry.Snapshot{
		Tick:      w.Tick(),
		HeroHP:    hero.HP,
		HeroMaxHP: hero.MaxHP,
		Hero:      telemetry.Planar{X: tr.Position.X(), Z: tr.Position.Z()},
		Heading:   tr.Yaw,
		Mobs:      []telemetry.Planar{},
	}

	if targeting, ok := ecs.Get(w, e, component.TargetingComponent.Kind()); ok && targeting.Has() {
		target := ecs.Entity(targeting.Target)
		if stats, ok := ecs.Get(w, target, component.StatsComponent.Kind()); ok {
			snap.Target = &telemetry.Target{Name: targeting.Name, HP: stats.HP, MaxHP: stats.MaxHP}
		}
	}

	ecs.ForEach2(w, component.MobComponent.Kind(), component.TransformComponent.Kind(),
		func(m ecs.Entity, _ *component.Mob, mtr *component.Transform) {
			if ecs.Has(w, m, component.DeadComponent.Kind()) {
				return
			}
			snap.Mobs = append(snap.Mobs, telemetry.Planar{X: mtr.Position.X(), Z: mtr.Position.Z()})
		})

	t.last = snap
	if t.Sink != nil {
		t.Sink.Publish(snap)
	}
}

func logEvents(w *ecs.World) {
	for _, evt := range w.Events().Peek() {
		switch data := evt.Data.(type) {
		case ecs.HitEvent:
			logger.Log.WithFields(logrus.Fields{
				"target": data.Target.String(),
				"damage": data.Damage,
				"hp":     data.HPLeft,
			}).Debug("hit")
		case ecs.KillEvent:
			logger.Log.WithField("mob", data.Name).Debug("kill")
		case ecs.SpawnEvent:
			logger.Log.WithFields(logrus.Fields{"name": data.Name, "recipe": data.Recipe}).Debug("spawn")
		}
	}
}
