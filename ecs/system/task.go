package system

import (
	"github.com/milk9111/sandkeep/ecs"
)

// TaskSystem runs deferred work that has come due, such as arm reverts and
// attack lockout releases.
type TaskSystem struct{}

func NewTaskSystem() *TaskSystem {
	return &TaskSystem{}
}

func (t *TaskSystem) Update(w *ecs.World) {
	w.RunDueTasks()
}
