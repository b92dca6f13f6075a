package component

import "github.com/milk9111/sandkeep/scene"

// Body links an entity to its assembled scene hierarchy.
type Body struct {
	Root   scene.NodeID
	Parts  map[string]scene.NodeID
	Recipe string
}

// Limbs are the animated joints. Missing joints hold scene.NoNode.
type Limbs struct {
	LegR, LegL, ArmR, ArmL scene.NodeID
}

var BodyComponent = NewComponent[Body]()
var LimbsComponent = NewComponent[Limbs]()
