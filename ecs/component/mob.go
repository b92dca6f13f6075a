package component

// Mob marks a hostile creature.
type Mob struct {
	Name string
}

// Stats are the combat and movement numbers of a mob.
type Stats struct {
	HP         int
	MaxHP      int
	Speed      float64
	AggroRange float64
}

// Damage lowers HP by amount, clamped to [0, MaxHP], and reports whether
// this call took it to zero.
func (s *Stats) Damage(amount int) bool {
	if s == nil || s.HP <= 0 {
		return false
	}
	s.HP -= amount
	if s.HP > s.MaxHP {
		s.HP = s.MaxHP
	}
	if s.HP <= 0 {
		s.HP = 0
		return true
	}
	return false
}

var MobComponent = NewComponent[Mob]()
var StatsComponent = NewComponent[Stats]()
