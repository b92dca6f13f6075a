package component

// Dead marks a mob killed in combat. Dead entities are skipped by every
// runtime system.
type Dead struct{}

var DeadComponent = NewComponent[Dead]()

// Prop is static scenery assembled from a recipe.
type Prop struct {
	Name string
}

var PropComponent = NewComponent[Prop]()
