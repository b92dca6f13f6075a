package component

// Anim is the walk-cycle state shared by the hero and mobs.
type Anim struct {
	Phase  float64
	Moving bool
	// Breath multiplies the root's vertical scale; 1 means none.
	Breath float64
}

var AnimComponent = NewComponent[Anim]()
