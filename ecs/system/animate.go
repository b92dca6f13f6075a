package system

import (
	"math"
	"time"

	"github.com/milk9111/sandkeep/ecs/component"
	"github.com/milk9111/sandkeep/scene"
)

const (
	walkPhaseStep   = 0.2
	legSwing        = 0.8
	armSwing        = 0.6
	breathAmplitude = 0.02
	breathPeriodMS  = 500.0
)

// animateLimbs advances the walk cycle while moving and resets every joint
// when standing still. With holdArmR set the right arm is left alone.
func animateLimbs(g *scene.Graph, limbs *component.Limbs, anim *component.Anim, moving, holdArmR bool) {
	if anim == nil {
		return
	}
	anim.Moving = moving
	if limbs == nil {
		if moving {
			anim.Phase += walkPhaseStep
		}
		return
	}

	var legR, legL, armR, armL float64
	if moving {
		anim.Phase += walkPhaseStep
		sin := math.Sin(anim.Phase)
		legR, legL = sin*legSwing, -sin*legSwing
		armR, armL = -sin*armSwing, sin*armSwing
	}

	setJoint(g, limbs.LegR, legR)
	setJoint(g, limbs.LegL, legL)
	if !holdArmR {
		setJoint(g, limbs.ArmR, armR)
	}
	setJoint(g, limbs.ArmL, armL)
}

// setJoint sets the rotation of a limb about its local X axis.
func setJoint(g *scene.Graph, id scene.NodeID, x float64) {
	if n := g.Node(id); n != nil {
		n.Rotation[0] = x
	}
}

// breath is the idle vertical scale at world time now.
func breath(now time.Duration) float64 {
	ms := float64(now) / float64(time.Millisecond)
	return 1 + math.Sin(ms/breathPeriodMS)*breathAmplitude
}
