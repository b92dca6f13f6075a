package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/sandkeep/common"
	"github.com/milk9111/sandkeep/ecs"
	"github.com/milk9111/sandkeep/ecs/component"
)

type Action func(ctx *AIActionContext)

// AIActionContext is what a state action may read and change for one mob
// during one tick.
type AIActionContext struct {
	World  *ecs.World
	Stats  *component.Stats
	Mob    *component.Transform
	Hero   mgl64.Vec3
	Moving bool
}

type StateDef struct {
	OnEnter []Action
	While   []Action
}

type FSMDef struct {
	Initial     component.StateID
	States      map[component.StateID]StateDef
	Transitions map[component.StateID]map[component.EventID]component.StateID
}

var actionRegistry = map[string]Action{
	"face_hero": func(ctx *AIActionContext) {
		ctx.Mob.Yaw = common.YawTowards(ctx.Mob.Position, ctx.Hero)
	},
	// A step into a collider leaves Moving false.
	"move_forward": func(ctx *AIActionContext) {
		next := ctx.Mob.Position.Add(common.Forward(ctx.Mob.Yaw).Mul(ctx.Stats.Speed))
		if ctx.World.Colliders.Blocked(common.Planar(ctx.Mob.Position), common.Planar(next), bodyRadius) {
			return
		}
		ctx.Mob.Position = next
		ctx.Moving = true
	},
}

// DefaultMobFSM idles until the hero comes within aggro range, chases it and
// stops to attack once in reach.
func DefaultMobFSM() *FSMDef {
	return &FSMDef{
		Initial: component.StateIdle,
		States: map[component.StateID]StateDef{
			component.StateIdle: {},
			component.StateChase: {
				While: []Action{actionRegistry["face_hero"], actionRegistry["move_forward"]},
			},
			component.StateAttack: {
				While: []Action{actionRegistry["face_hero"]},
			},
		},
		Transitions: map[component.StateID]map[component.EventID]component.StateID{
			component.StateIdle: {
				component.EventSeesHero: component.StateChase,
			},
			component.StateChase: {
				component.EventLosesHero:     component.StateIdle,
				component.EventInAttackRange: component.StateAttack,
			},
			component.StateAttack: {
				component.EventLosesHero:      component.StateIdle,
				component.EventOutAttackRange: component.StateChase,
			},
		},
	}
}

// sensorEvents reports what the mob perceives this tick. Attack range is only
// sensed while the hero is in sight.
func sensorEvents(dist, aggroRange, attackRange float64) []component.EventID {
	if dist >= aggroRange {
		return []component.EventID{component.EventLosesHero}
	}
	if dist <= attackRange {
		return []component.EventID{component.EventSeesHero, component.EventInAttackRange}
	}
	return []component.EventID{component.EventSeesHero, component.EventOutAttackRange}
}

func processEvents(fsm *FSMDef, state *component.AIState, ctx *AIActionContext, events []component.EventID) {
	if fsm == nil || state == nil {
		return
	}
	if state.Current == "" {
		state.Current = fsm.Initial
	}
	for _, ev := range events {
		next, ok := fsm.Transitions[state.Current][ev]
		if !ok || next == state.Current {
			continue
		}
		state.Current = next
		applyActions(fsm.States[next].OnEnter, ctx)
	}
}

func applyActions(actions []Action, ctx *AIActionContext) {
	for _, a := range actions {
		if a != nil {
			a(ctx)
		}
	}
}
