package system

import (
	"fmt"

	"github.com/milk9111/sandkeep/ecs"
	"github.com/milk9111/sandkeep/ecs/entity"
	"github.com/milk9111/sandkeep/logger"
	"github.com/milk9111/sandkeep/prefabs"
	"github.com/sirupsen/logrus"
)

type SpawnKind int

const (
	SpawnHero SpawnKind = iota
	SpawnMobs
	SpawnProp
)

func (k SpawnKind) String() string {
	switch k {
	case SpawnHero:
		return "hero"
	case SpawnMobs:
		return "mobs"
	case SpawnProp:
		return "prop"
	}
	return "unknown"
}

// SpawnOrder is what to build once a recipe arrives. One recipe fetch can
// place several mobs.
type SpawnOrder struct {
	Kind SpawnKind
	Mobs []entity.MobParams
	Name string
	X, Z float64
}

// SpawnSystem turns finished recipe loads into entities. Loads run in the
// background; results are only applied here, on the frame thread.
type SpawnSystem struct {
	Loader *prefabs.Loader
	Hero   prefabs.HeroSpec

	spawned int
	failed  int
}

func NewSpawnSystem(loader *prefabs.Loader, hero prefabs.HeroSpec) *SpawnSystem {
	return &SpawnSystem{Loader: loader, Hero: hero}
}

// Enqueue starts fetching recipe for order.
func (s *SpawnSystem) Enqueue(recipe string, order SpawnOrder) {
	s.Loader.Request(prefabs.Request{Name: recipe, Tag: order})
}

// QueueWorld requests the hero, every spawn group and every prop of spec.
// Mob positions are rolled now from the world RNG.
func (s *SpawnSystem) QueueWorld(w *ecs.World, spec *prefabs.WorldSpec) {
	if w == nil || spec == nil {
		return
	}

	for _, group := range spec.Spawns {
		order := SpawnOrder{Kind: SpawnMobs}
		for i := 0; i < group.Count; i++ {
			order.Mobs = append(order.Mobs, entity.MobParams{
				Name:       fmt.Sprintf("%s%d", group.Prefix, i),
				X:          group.X.Offset + w.Rand.Float64()*group.X.Range,
				Z:          group.Z.Offset + w.Rand.Float64()*group.Z.Range,
				HP:         group.HP,
				Scale:      group.Scale,
				Speed:      spec.Mob.Speed,
				AggroRange: spec.Mob.AggroRange,
			})
		}
		s.Enqueue(group.Recipe, order)
	}

	for _, prop := range spec.Props {
		s.Enqueue(prop.Recipe, SpawnOrder{Kind: SpawnProp, Name: prop.Name, X: prop.X, Z: prop.Z})
	}

	s.Enqueue(spec.Hero.Recipe, SpawnOrder{Kind: SpawnHero})
}

// Spawned and Failed count applied and rejected orders.
func (s *SpawnSystem) Spawned() int { return s.spawned }
func (s *SpawnSystem) Failed() int  { return s.failed }

func (s *SpawnSystem) Update(w *ecs.World) {
	if w == nil || s.Loader == nil {
		return
	}

	for _, res := range s.Loader.Drain() {
		order, ok := res.Tag.(SpawnOrder)
		if !ok {
			continue
		}
		log := logger.Log.WithFields(logrus.Fields{"recipe": res.Name, "kind": order.Kind})

		if res.Err != nil {
			s.failed++
			log.WithError(res.Err).Error("recipe load failed, skipping spawn")
			continue
		}

		if err := s.apply(w, res.Recipe, order); err != nil {
			s.failed++
			log.WithError(err).Error("spawn failed")
			continue
		}
		s.spawned++
		log.Debug("spawned")
	}
}

func (s *SpawnSystem) apply(w *ecs.World, recipe *prefabs.Recipe, order SpawnOrder) error {
	switch order.Kind {
	case SpawnHero:
		_, err := entity.NewHero(w, recipe, s.Hero)
		return err
	case SpawnMobs:
		for _, p := range order.Mobs {
			if _, err := entity.NewMob(w, recipe, p); err != nil {
				return err
			}
		}
		return nil
	case SpawnProp:
		_, err := entity.NewProp(w, recipe, order.Name, order.X, order.Z)
		return err
	}
	return fmt.Errorf("spawn: unknown kind %d", order.Kind)
}
