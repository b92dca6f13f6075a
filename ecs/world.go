package ecs

import (
	"math/rand"
	"time"

	"github.com/milk9111/sandkeep/collision"
	"github.com/milk9111/sandkeep/ecs/component"
	"github.com/milk9111/sandkeep/scene"
	"github.com/milk9111/sandkeep/terrain"
)

// World is the explicit context handed to every system: entities and their
// components plus the shared scene, material cache, terrain, colliders, clock
// and deferred tasks.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*SparseSet
	events   EventQueue
	tasks    Tasks

	Scene     *scene.Graph
	Materials *scene.Materials
	Terrain   terrain.Field
	Colliders *collision.World
	Rand      *rand.Rand

	now  time.Duration
	tick uint64
}

// NewWorld creates an empty world on the default terrain with a seeded RNG.
func NewWorld() *World {
	return NewWorldWithSeed(1)
}

func NewWorldWithSeed(seed int64) *World {
	return &World{
		stores:    make(map[component.ComponentID]*SparseSet),
		Scene:     scene.NewGraph(),
		Materials: scene.NewMaterials(),
		Terrain:   terrain.Default(),
		Colliders: collision.NewWorld(),
		Rand:      rand.New(rand.NewSource(seed)),
	}
}

// Now is the world clock: the total simulated time since creation.
func (w *World) Now() time.Duration {
	if w == nil {
		return 0
	}
	return w.now
}

// Tick is the number of completed updates.
func (w *World) Tick() uint64 {
	if w == nil {
		return 0
	}
	return w.tick
}

// Advance moves the clock forward without running systems.
func (w *World) Advance(dt time.Duration) {
	if w == nil || dt < 0 {
		return
	}
	w.now += dt
}

// Step advances the clock by dt, runs the scheduler once and clears the
// frame's events.
func (w *World) Step(dt time.Duration, s *Scheduler) {
	if w == nil {
		return
	}
	w.Advance(dt)
	s.Update(w)
	w.tick++
	w.events.flush()
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// Schedule queues fn to run once the clock reaches Now()+delay.
func (w *World) Schedule(delay time.Duration, name string, fn func(w *World)) {
	if w == nil || fn == nil {
		return
	}
	if delay < 0 {
		delay = 0
	}
	w.tasks.push(&Task{At: w.now + delay, Name: name, Run: fn})
}

// RunDueTasks runs every task due at or before Now, including tasks scheduled
// by those tasks when they are already due. It returns how many ran.
func (w *World) RunDueTasks() int {
	if w == nil {
		return 0
	}
	ran := 0
	for {
		task := w.tasks.popDue(w.now)
		if task == nil {
			return ran
		}
		task.Run(w)
		ran++
	}
}

// PendingTasks is the number of scheduled tasks not yet run.
func (w *World) PendingTasks() int {
	if w == nil {
		return 0
	}
	return w.tasks.Len()
}

func (w *World) store(id component.ComponentID, create bool) *SparseSet {
	if w.stores == nil {
		if !create {
			return nil
		}
		w.stores = make(map[component.ComponentID]*SparseSet)
	}
	s, ok := w.stores[id]
	if !ok && create {
		s = &SparseSet{}
		w.stores[id] = s
	}
	return s
}
