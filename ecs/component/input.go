package component

import "github.com/milk9111/sandkeep/input"

// Input stores this tick's input for an entity.
type Input struct {
	input.Snapshot
}

var InputComponent = NewComponent[Input]()
