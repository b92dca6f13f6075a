// Package assembler turns recipes into scene hierarchies.
package assembler

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/sandkeep/logger"
	"github.com/milk9111/sandkeep/prefabs"
	"github.com/milk9111/sandkeep/scene"
	"github.com/sirupsen/logrus"
)

const (
	torusTessellation = 20
	placeholderSize   = 0.5
)

// Limb keywords matched against part ids.
const (
	KeywordLegR = "leg_upper_r"
	KeywordLegL = "leg_upper_l"
	KeywordArmR = "arm_upper_r"
	KeywordArmL = "arm_upper_l"
)

// Assembled is the output of Assemble: a synthetic root plus one node per
// recipe part.
type Assembled struct {
	Name  string
	Root  scene.NodeID
	Parts map[string]scene.NodeID
	order []string
}

// Nodes returns the root followed by every part node in recipe order.
func (a *Assembled) Nodes() []scene.NodeID {
	out := make([]scene.NodeID, 0, len(a.order)+1)
	out = append(out, a.Root)
	for _, id := range a.order {
		out = append(out, a.Parts[id])
	}
	return out
}

// Limbs are the animated joints of a humanoid or quadruped. Missing joints are
// scene.NoNode.
type Limbs struct {
	LegR, LegL, ArmR, ArmL scene.NodeID
}

// FindLimbs scans part ids for the limb keywords. When several parts match,
// the last one in recipe order wins.
func (a *Assembled) FindLimbs() Limbs {
	limbs := Limbs{LegR: scene.NoNode, LegL: scene.NoNode, ArmR: scene.NoNode, ArmL: scene.NoNode}
	for _, id := range a.order {
		node := a.Parts[id]
		switch {
		case strings.Contains(id, KeywordLegR):
			limbs.LegR = node
		case strings.Contains(id, KeywordLegL):
			limbs.LegL = node
		case strings.Contains(id, KeywordArmR):
			limbs.ArmR = node
		case strings.Contains(id, KeywordArmL):
			limbs.ArmL = node
		}
	}
	return limbs
}

// RootName is the name given to the synthetic root of an entity.
func RootName(name string) string {
	return "mob_root_" + name
}

// Assemble builds one node per recipe part under a fresh root placed at
// position. Materials come from mats so equal (colour, kind) pairs are shared
// across every recipe assembled with the same cache.
func Assemble(g *scene.Graph, mats *scene.Materials, recipe *prefabs.Recipe, position mgl64.Vec3, name string) (*Assembled, error) {
	if g == nil {
		return nil, fmt.Errorf("assembler: assemble %s: nil graph", name)
	}
	if recipe == nil {
		return nil, fmt.Errorf("assembler: assemble %s: nil recipe", name)
	}

	root := g.AddTransform(RootName(name), scene.NoNode)
	g.Node(root).Position = position

	out := &Assembled{
		Name:  name,
		Root:  root,
		Parts: make(map[string]scene.NodeID, len(recipe.Parts)),
		order: make([]string, 0, len(recipe.Parts)),
	}

	log := logger.Log.WithFields(logrus.Fields{"recipe": recipe.Name, "entity": name})

	for _, part := range recipe.Parts {
		mesh, ok := MeshFor(part)
		if !ok {
			log.WithFields(logrus.Fields{"part": part.ID, "shape": part.Shape}).Warn("unknown shape, using placeholder box")
		}

		parent, ok := out.Parts[part.ParentID]
		if !ok {
			if part.ParentID != "" {
				log.WithFields(logrus.Fields{"part": part.ID, "parent": part.ParentID}).Debug("parent not assembled yet, attaching to root")
			}
			parent = root
		}

		id := g.AddMesh(part.ID+"_"+name, mesh, parent)
		node := g.Node(id)
		node.Position = part.Position
		if part.Rotation != nil {
			node.Rotation = mgl64.Vec3{
				mgl64.DegToRad(part.Rotation[0]),
				mgl64.DegToRad(part.Rotation[1]),
				mgl64.DegToRad(part.Rotation[2]),
			}
		}

		if part.ColorHex != "" && mats != nil {
			mat, err := mats.ForColor(part.ColorHex, part.Material)
			if err != nil {
				log.WithError(err).WithField("part", part.ID).Warn("skipping material")
			} else {
				node.Material = mat
			}
		}

		if _, dup := out.Parts[part.ID]; !dup {
			out.order = append(out.order, part.ID)
		}
		out.Parts[part.ID] = id
	}

	return out, nil
}

// MeshFor maps a recipe part to a primitive. The second result is false when
// the shape is unknown and a placeholder box was returned.
func MeshFor(part prefabs.RecipePart) (*scene.Mesh, bool) {
	s := part.Scale
	switch part.Shape {
	case prefabs.ShapeBox:
		return scene.Box(s[0], s[1], s[2]), true
	case prefabs.ShapeSphere:
		return scene.Sphere(s[0], s[1], s[2]), true
	case prefabs.ShapeCylinder:
		return scene.Cylinder(s[1], s[0], s[2]), true
	case prefabs.ShapeCone:
		return scene.Cylinder(s[1], 0, s[2]), true
	case prefabs.ShapeCapsule:
		return scene.Capsule(s[1], s[0]/2), true
	case prefabs.ShapeTorus:
		return scene.Torus(s[0], s[2]*0.5, torusTessellation), true
	}
	return scene.Box(placeholderSize, placeholderSize, placeholderSize), false
}
