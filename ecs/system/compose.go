package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/sandkeep/ecs"
	"github.com/milk9111/sandkeep/ecs/component"
)

// ComposeSystem copies every transform onto its body root and recomputes
// the world matrices of the scene. It runs last.
type ComposeSystem struct{}

func NewComposeSystem() *ComposeSystem {
	return &ComposeSystem{}
}

func (c *ComposeSystem) Update(w *ecs.World) {
	ecs.ForEach2(w, component.TransformComponent.Kind(), component.BodyComponent.Kind(),
		func(e ecs.Entity, tr *component.Transform, body *component.Body) {
			root := w.Scene.Node(body.Root)
			if root == nil {
				return
			}
			breath := 1.0
			if anim, ok := ecs.Get(w, e, component.AnimComponent.Kind()); ok && anim.Breath != 0 {
				breath = anim.Breath
			}
			root.Position = tr.Position
			root.Rotation = mgl64.Vec3{0, tr.Yaw, 0}
			root.Scaling = mgl64.Vec3{tr.Scale, tr.Scale * breath, tr.Scale}
		})
	w.Scene.Compose()
}
