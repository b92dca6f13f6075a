package system

import (
	"github.com/milk9111/sandkeep/ecs"
	"github.com/milk9111/sandkeep/ecs/component"
	"github.com/milk9111/sandkeep/input"
)

// InputSystem copies one snapshot per tick onto every entity that takes
// input.
type InputSystem struct {
	Source input.Source
}

func NewInputSystem(src input.Source) *InputSystem {
	return &InputSystem{Source: src}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil || i.Source == nil {
		return
	}

	snap := i.Source.Snapshot()
	ecs.ForEach(w, component.InputComponent.Kind(), func(e ecs.Entity, in *component.Input) {
		in.Snapshot = snap
	})
}
