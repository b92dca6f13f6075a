package system

import (
	"github.com/milk9111/sandkeep/ecs"
	"github.com/milk9111/sandkeep/input"
	"github.com/milk9111/sandkeep/prefabs"
	"github.com/milk9111/sandkeep/telemetry"
)

// Systems are the runtime systems in the order they must run each tick.
type Systems struct {
	Input     *InputSystem
	Task      *TaskSystem
	Spawn     *SpawnSystem
	Hero      *HeroControlSystem
	Combat    *CombatSystem
	MobAI     *MobAISystem
	Target    *TargetSystem
	Telemetry *TelemetrySystem
	Camera    *CameraSystem
	Compose   *ComposeSystem
}

// NewSystems builds every system from spec.
func NewSystems(spec *prefabs.WorldSpec, src input.Source, loader *prefabs.Loader, sink telemetry.Sink) *Systems {
	return &Systems{
		Input:     NewInputSystem(src),
		Task:      NewTaskSystem(),
		Spawn:     NewSpawnSystem(loader, spec.Hero),
		Hero:      NewHeroControlSystem(spec.Hero),
		Combat:    NewCombatSystem(spec.Combat),
		MobAI:     NewMobAISystem(spec.Mob),
		Target:    NewTargetSystem(spec.Targeting),
		Telemetry: NewTelemetrySystem(sink),
		Camera:    NewCameraSystem(),
		Compose:   NewComposeSystem(),
	}
}

// Scheduler orders the systems for World.Step.
func (s *Systems) Scheduler() *ecs.Scheduler {
	return ecs.NewScheduler(
		s.Input,
		s.Task,
		s.Spawn,
		s.Hero,
		s.Combat,
		s.MobAI,
		s.Target,
		s.Telemetry,
		s.Camera,
		s.Compose,
	)
}
