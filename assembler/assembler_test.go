package assembler

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/sandkeep/prefabs"
	"github.com/milk9111/sandkeep/scene"
)

func part(id, shape, parent string) prefabs.RecipePart {
	return prefabs.RecipePart{
		ID:       id,
		Shape:    shape,
		Scale:    mgl64.Vec3{1, 2, 3},
		Position: mgl64.Vec3{0, 1, 0},
		ColorHex: "#336699",
		ParentID: parent,
	}
}

func TestAssembleNodeCount(t *testing.T) {
	recipe := &prefabs.Recipe{Name: "r", Parts: []prefabs.RecipePart{
		part("torso", prefabs.ShapeBox, ""),
		part("head", prefabs.ShapeSphere, "torso"),
		part("arm_upper_r", prefabs.ShapeCapsule, "torso"),
		part("hand", prefabs.ShapeSphere, "arm_upper_r"),
	}}
	g := scene.NewGraph()

	a, err := Assemble(g, scene.NewMaterials(), recipe, mgl64.Vec3{5, 11, -3}, "grunt_0")
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}

	if got, want := len(a.Nodes()), len(recipe.Parts)+1; got != want {
		t.Fatalf("nodes = %d, want %d", got, want)
	}
	if g.Len() != len(recipe.Parts)+1 {
		t.Fatalf("graph has %d nodes", g.Len())
	}
	for _, p := range recipe.Parts {
		id, ok := a.Parts[p.ID]
		if !ok {
			t.Fatalf("part %s missing from map", p.ID)
		}
		if g.Node(id).Name != p.ID+"_grunt_0" {
			t.Fatalf("unexpected node name %q", g.Node(id).Name)
		}
	}

	root := g.Node(a.Root)
	if root.Name != "mob_root_grunt_0" || root.Position != (mgl64.Vec3{5, 11, -3}) || root.Mesh != nil {
		t.Fatalf("unexpected root %+v", root)
	}
	if g.Node(a.Parts["hand"]).Parent != a.Parts["arm_upper_r"] {
		t.Fatalf("hand should hang off the arm")
	}
	if g.Node(a.Parts["torso"]).Parent != a.Root {
		t.Fatalf("torso should hang off the root")
	}
}

func TestAssembleForwardParentFallsBackToRoot(t *testing.T) {
	recipe := &prefabs.Recipe{Name: "r", Parts: []prefabs.RecipePart{
		part("hand", prefabs.ShapeSphere, "arm"),
		part("arm", prefabs.ShapeBox, ""),
		part("ghost", prefabs.ShapeBox, "nobody"),
	}}
	g := scene.NewGraph()

	a, err := Assemble(g, scene.NewMaterials(), recipe, mgl64.Vec3{}, "x")
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	for _, id := range []string{"hand", "ghost"} {
		if g.Node(a.Parts[id]).Parent != a.Root {
			t.Fatalf("%s should fall back to root", id)
		}
	}
}

func TestAssembleUnknownShapeUsesPlaceholder(t *testing.T) {
	recipe := &prefabs.Recipe{Name: "r", Parts: []prefabs.RecipePart{
		part("thing", "Pyramid", ""),
	}}
	g := scene.NewGraph()

	a, err := Assemble(g, scene.NewMaterials(), recipe, mgl64.Vec3{}, "x")
	if err != nil {
		t.Fatalf("unknown shape must not fail: %v", err)
	}
	mesh := g.Node(a.Parts["thing"]).Mesh
	if mesh.Kind != scene.MeshBox || mesh.Width != 0.5 || mesh.Height != 0.5 || mesh.Depth != 0.5 {
		t.Fatalf("unexpected placeholder %+v", mesh)
	}
}

func TestMeshFor(t *testing.T) {
	tests := []struct {
		shape string
		check func(m *scene.Mesh) bool
	}{
		{prefabs.ShapeBox, func(m *scene.Mesh) bool {
			return m.Kind == scene.MeshBox && m.Width == 1 && m.Height == 2 && m.Depth == 3
		}},
		{prefabs.ShapeSphere, func(m *scene.Mesh) bool {
			return m.Kind == scene.MeshSphere && m.DiameterX == 1 && m.DiameterY == 2 && m.DiameterZ == 3
		}},
		{prefabs.ShapeCylinder, func(m *scene.Mesh) bool {
			return m.Kind == scene.MeshCylinder && m.Height == 2 && m.DiameterTop == 1 && m.DiameterBottom == 3
		}},
		{prefabs.ShapeCone, func(m *scene.Mesh) bool {
			return m.Kind == scene.MeshCylinder && m.Height == 2 && m.DiameterTop == 0 && m.DiameterBottom == 3
		}},
		{prefabs.ShapeCapsule, func(m *scene.Mesh) bool {
			return m.Kind == scene.MeshCapsule && m.Height == 2 && m.Radius == 0.5
		}},
		{prefabs.ShapeTorus, func(m *scene.Mesh) bool {
			return m.Kind == scene.MeshTorus && m.Diameter == 1 && m.Thickness == 1.5 && m.Tessellation == 20
		}},
	}

	for _, tt := range tests {
		t.Run(tt.shape, func(t *testing.T) {
			m, ok := MeshFor(part("p", tt.shape, ""))
			if !ok || !tt.check(m) {
				t.Fatalf("unexpected mesh %+v (known=%v)", m, ok)
			}
		})
	}
}

func TestAssembleRotationAndMaterials(t *testing.T) {
	p := part("blade", prefabs.ShapeBox, "")
	p.Rotation = &mgl64.Vec3{90, 0, -45}
	p.Material = scene.MaterialMetal
	recipe := &prefabs.Recipe{Name: "r", Parts: []prefabs.RecipePart{p, part("plain", prefabs.ShapeBox, "")}}

	g := scene.NewGraph()
	mats := scene.NewMaterials()
	first, _ := Assemble(g, mats, recipe, mgl64.Vec3{}, "a")
	second, _ := Assemble(g, mats, recipe, mgl64.Vec3{}, "b")

	rot := g.Node(first.Parts["blade"]).Rotation
	if math.Abs(rot.X()-math.Pi/2) > 1e-12 || math.Abs(rot.Z()+math.Pi/4) > 1e-12 {
		t.Fatalf("rotation not converted to radians: %v", rot)
	}
	if mats.Allocations() != 2 {
		t.Fatalf("expected 2 materials (metal + standard), got %d", mats.Allocations())
	}
	if g.Node(first.Parts["blade"]).Material != g.Node(second.Parts["blade"]).Material {
		t.Fatalf("material not shared between assemblies")
	}
}

func TestFindLimbs(t *testing.T) {
	recipe := &prefabs.Recipe{Name: "r", Parts: []prefabs.RecipePart{
		part("torso", prefabs.ShapeBox, ""),
		part("leg_upper_r", prefabs.ShapeCapsule, "torso"),
		part("leg_upper_l", prefabs.ShapeCapsule, "torso"),
		part("arm_upper_r", prefabs.ShapeCapsule, "torso"),
	}}
	a, err := Assemble(scene.NewGraph(), scene.NewMaterials(), recipe, mgl64.Vec3{}, "x")
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}

	limbs := a.FindLimbs()
	if limbs.LegR != a.Parts["leg_upper_r"] || limbs.LegL != a.Parts["leg_upper_l"] || limbs.ArmR != a.Parts["arm_upper_r"] {
		t.Fatalf("unexpected limbs %+v", limbs)
	}
	if limbs.ArmL != scene.NoNode {
		t.Fatalf("missing arm should be NoNode, got %d", limbs.ArmL)
	}
}

func TestAssembleEmbeddedRecipes(t *testing.T) {
	names, err := prefabs.RecipeNames()
	if err != nil {
		t.Fatalf("RecipeNames: %v", err)
	}
	g := scene.NewGraph()
	mats := scene.NewMaterials()
	for _, name := range names {
		recipe, err := prefabs.LoadRecipe(name)
		if err != nil {
			t.Fatalf("LoadRecipe(%s): %v", name, err)
		}
		a, err := Assemble(g, mats, recipe, mgl64.Vec3{}, name)
		if err != nil {
			t.Fatalf("Assemble(%s): %v", name, err)
		}
		if len(a.Nodes()) != len(recipe.Parts)+1 {
			t.Fatalf("%s: %d nodes for %d parts", name, len(a.Nodes()), len(recipe.Parts))
		}
	}
}

func TestAssembleNilGraph(t *testing.T) {
	if _, err := Assemble(nil, nil, &prefabs.Recipe{}, mgl64.Vec3{}, "x"); err == nil {
		t.Fatalf("expected error for nil graph")
	}
}
