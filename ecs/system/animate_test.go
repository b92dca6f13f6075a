package system

import (
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/sandkeep/collision"
	"github.com/milk9111/sandkeep/ecs"
	"github.com/milk9111/sandkeep/ecs/component"
	"github.com/milk9111/sandkeep/input"
	"github.com/milk9111/sandkeep/prefabs"
	"github.com/milk9111/sandkeep/scene"
)

const eps = 1e-9

func jointX(w *ecs.World, id scene.NodeID) float64 {
	return w.Scene.Node(id).Rotation.X()
}

func TestWalkCycle(t *testing.T) {
	for _, ticks := range []int{1, 2, 3, 5, 8} {
		t.Run(fmt.Sprintf("%d ticks", ticks), func(t *testing.T) {
			w := ecs.NewWorld()
			hero := spawnHero(t, w)
			src := &input.Static{State: input.Hold(input.KeyForward)}
			sched := ecs.NewScheduler(NewInputSystem(src), NewHeroControlSystem(heroSpec()))
			for i := 0; i < ticks; i++ {
				w.Step(frame, sched)
			}

			phase := walkPhaseStep * float64(ticks)
			sin := math.Sin(phase)
			anim, _ := ecs.Get(w, hero, component.AnimComponent.Kind())
			if math.Abs(anim.Phase-phase) > eps {
				t.Fatalf("phase = %v, want %v", anim.Phase, phase)
			}

			limbs, _ := ecs.Get(w, hero, component.LimbsComponent.Kind())
			joints := []struct {
				name string
				id   scene.NodeID
				want float64
			}{
				{"right leg", limbs.LegR, 0.8 * sin},
				{"left leg", limbs.LegL, -0.8 * sin},
				{"right arm", limbs.ArmR, -0.6 * sin},
				{"left arm", limbs.ArmL, 0.6 * sin},
			}
			for _, j := range joints {
				if got := jointX(w, j.id); math.Abs(got-j.want) > eps {
					t.Fatalf("%s = %v, want %v", j.name, got, j.want)
				}
			}
		})
	}
}

func TestIdleBreath(t *testing.T) {
	tests := []struct {
		at   time.Duration
		want float64
	}{
		{250 * time.Millisecond, 1 + 0.02*math.Sin(0.5)},
		{500 * time.Millisecond, 1 + 0.02*math.Sin(1)},
		{750 * time.Millisecond, 1 + 0.02*math.Sin(1.5)},
	}
	for _, tt := range tests {
		t.Run(tt.at.String(), func(t *testing.T) {
			w := ecs.NewWorld()
			spawnHero(t, w)
			mob := spawnMob(t, w, "g", 0, 20, 10)

			w.Step(tt.at, ecs.NewScheduler(NewMobAISystem(prefabs.MobSpec{AttackRange: 1.5, HeightOffset: 1})))

			anim, _ := ecs.Get(w, mob, component.AnimComponent.Kind())
			if math.Abs(anim.Breath-tt.want) > eps {
				t.Fatalf("breath = %v, want %v", anim.Breath, tt.want)
			}
		})
	}
}

func TestSwingHoldsRightArm(t *testing.T) {
	w := ecs.NewWorld()
	hero := spawnHero(t, w)
	snap := input.Hold(input.KeyForward)
	snap.Primary = true
	src := &input.Static{State: snap}
	sched := ecs.NewScheduler(NewInputSystem(src), NewTaskSystem(), NewHeroControlSystem(heroSpec()), combat())

	w.Step(frame, sched)
	limbs, _ := ecs.Get(w, hero, component.LimbsComponent.Kind())
	swung := -0.6*math.Sin(walkPhaseStep) - math.Pi/2
	if got := jointX(w, limbs.ArmR); math.Abs(got-swung) > eps {
		t.Fatalf("right arm = %v, want %v", got, swung)
	}

	w.Step(frame, sched)
	if got := jointX(w, limbs.ArmR); math.Abs(got-swung) > eps {
		t.Fatalf("walk cycle moved the swinging arm to %v", got)
	}
	if got, want := jointX(w, limbs.LegR), 0.8*math.Sin(2*walkPhaseStep); math.Abs(got-want) > eps {
		t.Fatalf("right leg = %v, want %v", got, want)
	}
	if got, want := jointX(w, limbs.ArmL), 0.6*math.Sin(2*walkPhaseStep); math.Abs(got-want) > eps {
		t.Fatalf("left arm = %v, want %v", got, want)
	}
}

func TestBlockedMoveDoesNotWalk(t *testing.T) {
	t.Run("mob", func(t *testing.T) {
		w := ecs.NewWorld()
		w.Colliders.Add(collision.Segment{A: cp.Vector{X: -5, Y: 8}, B: cp.Vector{X: 5, Y: 8}, Thickness: 2})
		spawnHero(t, w)
		mob := spawnMob(t, w, "g", 0, 9.52, 10)

		w.Step(frame, ecs.NewScheduler(NewMobAISystem(prefabs.MobSpec{AttackRange: 1.5, HeightOffset: 1})))

		tr, _ := ecs.Get(w, mob, component.TransformComponent.Kind())
		if tr.Position.X() != 0 || tr.Position.Z() != 9.52 {
			t.Fatalf("mob should be held by the wall, got %v", tr.Position)
		}
		state, _ := ecs.Get(w, mob, component.AIStateComponent.Kind())
		if state.Current != component.StateChase {
			t.Fatalf("state = %v, want CHASE", state.Current)
		}
		anim, _ := ecs.Get(w, mob, component.AnimComponent.Kind())
		if anim.Moving {
			t.Fatalf("blocked mob should not play its walk cycle")
		}
		limbs, _ := ecs.Get(w, mob, component.LimbsComponent.Kind())
		if jointX(w, limbs.LegR) != 0 {
			t.Fatalf("legs should rest while blocked")
		}
	})

	t.Run("hero", func(t *testing.T) {
		w := ecs.NewWorld()
		w.Colliders.Add(collision.Segment{A: cp.Vector{X: -5, Y: 0.95}, B: cp.Vector{X: 5, Y: 0.95}, Thickness: 0.8})
		hero := spawnHero(t, w)
		src := &input.Static{State: input.Hold(input.KeyForward)}

		w.Step(frame, ecs.NewScheduler(NewInputSystem(src), NewHeroControlSystem(heroSpec())))

		tr, _ := ecs.Get(w, hero, component.TransformComponent.Kind())
		if tr.Position.X() != 0 || tr.Position.Z() != 0 || tr.Position.Y() != 11 {
			t.Fatalf("hero should stand still against the wall, got %v", tr.Position)
		}
		anim, _ := ecs.Get(w, hero, component.AnimComponent.Kind())
		if anim.Moving || anim.Phase != 0 {
			t.Fatalf("blocked hero should not walk, got %+v", anim)
		}
	})
}
