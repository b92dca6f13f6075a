package component

// StateID identifies an AI FSM state.
type StateID string

const (
	StateIdle   StateID = "IDLE"
	StateChase  StateID = "CHASE"
	StateAttack StateID = "ATTACK"
	StateDead   StateID = "DEAD"
)

// EventID names a sensor event that can move a mob between states.
type EventID string

const (
	EventSeesHero       EventID = "sees_hero"
	EventLosesHero      EventID = "loses_hero"
	EventInAttackRange  EventID = "in_attack_range"
	EventOutAttackRange EventID = "out_attack_range"
)

// AIState stores the current FSM state.
type AIState struct {
	Current StateID
}

var AIStateComponent = NewComponent[AIState]()
