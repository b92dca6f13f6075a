package component

// Hero is the player-controlled character.
type Hero struct {
	Name   string
	HP     int
	MaxHP  int
	Damage int
}

// Attack is the hero's swing state. InProgress locks out new swings;
// Swinging holds the right arm out of the walk cycle.
type Attack struct {
	InProgress bool
	Swinging   bool
	ArmBase    float64
}

// Targeting is the mob the hero currently faces, if any.
type Targeting struct {
	Target uint64
	Name   string
}

// Has reports whether a target is selected.
func (t Targeting) Has() bool {
	return t.Target != 0
}

var HeroComponent = NewComponent[Hero]()
var AttackComponent = NewComponent[Attack]()
var TargetingComponent = NewComponent[Targeting]()
