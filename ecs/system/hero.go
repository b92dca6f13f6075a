package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/sandkeep/common"
	"github.com/milk9111/sandkeep/ecs"
	"github.com/milk9111/sandkeep/ecs/component"
	"github.com/milk9111/sandkeep/input"
	"github.com/milk9111/sandkeep/prefabs"
)

const bodyRadius = 0.5

// findHero returns the hero entity and its transform, if it has spawned.
func findHero(w *ecs.World) (ecs.Entity, *component.Hero, *component.Transform, bool) {
	e, hero, ok := ecs.First(w, component.HeroComponent.Kind())
	if !ok {
		return 0, nil, nil, false
	}
	tr, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return 0, nil, nil, false
	}
	return e, hero, tr, true
}

// HeroControlSystem moves the hero relative to the camera, animates its
// limbs and keeps it on the ground.
type HeroControlSystem struct {
	Speed        float64
	HeightOffset float64
	Bob          float64
}

func NewHeroControlSystem(spec prefabs.HeroSpec) *HeroControlSystem {
	return &HeroControlSystem{Speed: spec.Speed, HeightOffset: spec.HeightOffset, Bob: spec.Bob}
}

func (h *HeroControlSystem) Update(w *ecs.World) {
	e, _, tr, ok := findHero(w)
	if !ok {
		return
	}

	in, _ := ecs.Get(w, e, component.InputComponent.Kind())
	anim, _ := ecs.Get(w, e, component.AnimComponent.Kind())
	limbs, _ := ecs.Get(w, e, component.LimbsComponent.Kind())
	attack, _ := ecs.Get(w, e, component.AttackComponent.Kind())

	forward, right := h.basis(w, tr.Position)

	var move mgl64.Vec3
	if in != nil {
		if in.Down(input.KeyForward) {
			move = move.Add(forward)
		}
		if in.Down(input.KeyBack) {
			move = move.Sub(forward)
		}
		if in.Down(input.KeyRight) {
			move = move.Add(right)
		}
		if in.Down(input.KeyLeft) {
			move = move.Sub(right)
		}
	}

	moving := move.Len() > 1e-9
	if moving {
		step := move.Normalize().Mul(h.Speed)
		next := tr.Position.Add(step)
		if w.Colliders.Blocked(common.Planar(tr.Position), common.Planar(next), bodyRadius) {
			moving = false
		} else {
			tr.Position = next
		}
		tr.Yaw = math.Atan2(step.X(), step.Z())
	}

	holdArm := attack != nil && attack.Swinging
	animateLimbs(w.Scene, limbs, anim, moving, holdArm)

	y := w.Terrain.Height(tr.Position.X(), tr.Position.Z()) + h.HeightOffset
	if moving && anim != nil {
		y += math.Abs(math.Sin(anim.Phase*2) * h.Bob)
	}
	tr.Position[1] = y
}

// basis returns the camera-relative ground forward and right vectors. Right
// is up x forward, which is screen-right when looking down on the x/z plane.
func (h *HeroControlSystem) basis(w *ecs.World, hero mgl64.Vec3) (forward, right mgl64.Vec3) {
	forward = mgl64.Vec3{0, 0, 1}
	if _, cam, ok := ecs.First(w, component.CameraComponent.Kind()); ok {
		d := hero.Sub(cam.Position())
		d[1] = 0
		if d.Len() > 1e-9 {
			forward = d.Normalize()
		}
	}
	right = mgl64.Vec3{forward.Z(), 0, -forward.X()}
	return forward, right
}
