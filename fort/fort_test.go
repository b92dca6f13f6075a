package fort

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/sandkeep/collision"
	"github.com/milk9111/sandkeep/scene"
)

func TestBuildLayout(t *testing.T) {
	g := scene.NewGraph()
	mats := scene.NewMaterials()

	f, err := Build(g, mats, mgl64.Vec2{0, 0}, 10)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if len(f.Towers) != 4 {
		t.Fatalf("expected 4 towers, got %d", len(f.Towers))
	}
	if g.Node(f.GateHeader) == nil || g.Node(f.Portcullis) == nil {
		t.Fatalf("gate parts missing")
	}
	if g.Node(f.Keep) == nil || g.Node(f.KeepDoor) == nil {
		t.Fatalf("keep parts missing")
	}
	if len(f.Walls) != 5 {
		t.Fatalf("expected 5 wall segments, got %d", len(f.Walls))
	}

	// perimeter 4*40, minus the 10-unit gate, minus 2 units at both ends of
	// every wall where it meets a tower (4 corners * 2 walls * 2 units)
	want := 4*courtyardSize - 2*gateHalfWidth - 4*2*cornerInset
	if got := f.WallLength(); math.Abs(got-want) > 1e-9 || want != 134 {
		t.Fatalf("wall length = %v, want %v", got, want)
	}

	if got, want := g.Len(), 4*10+5+33+2+2; got != want {
		t.Fatalf("node count = %d, want %d", got, want)
	}
}

func TestTowerGeometry(t *testing.T) {
	g := scene.NewGraph()
	f, err := Build(g, scene.NewMaterials(), mgl64.Vec2{100, -50}, 3)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	tw := f.Towers[0]
	if tw.Center != (mgl64.Vec2{80, -70}) {
		t.Fatalf("first tower at %v", tw.Center)
	}
	body := g.Node(tw.Body)
	if body.Mesh.Kind != scene.MeshCylinder || body.Mesh.DiameterTop != 6 || body.Mesh.Height != 10 {
		t.Fatalf("unexpected tower body mesh %+v", body.Mesh)
	}
	if body.Position.Y() != 3+5 || !body.Collidable {
		t.Fatalf("tower body y=%v collidable=%v", body.Position.Y(), body.Collidable)
	}
	if top := g.Node(tw.Top); top.Mesh.DiameterTop != 7 || top.Position.Y() != 13 {
		t.Fatalf("unexpected tower top %+v at %v", top.Mesh, top.Position)
	}
	if len(tw.Blocks) != 8 {
		t.Fatalf("expected 8 crenellations, got %d", len(tw.Blocks))
	}
	for i, id := range tw.Blocks {
		n := g.Node(id)
		angle := math.Pi / 4 * float64(i)
		planar := mgl64.Vec2{n.Position.X() - 80, n.Position.Z() + 70}
		if math.Abs(planar.Len()-3) > 1e-9 {
			t.Fatalf("block %d at radius %v", i, planar.Len())
		}
		if math.Abs(n.Rotation.Y()+angle) > 1e-9 {
			t.Fatalf("block %d yaw %v, want %v", i, n.Rotation.Y(), -angle)
		}
	}
}

func TestWallCrenellationsFollowDirection(t *testing.T) {
	g := scene.NewGraph()
	f, err := Build(g, scene.NewMaterials(), mgl64.Vec2{0, 0}, 10)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	east := f.Walls[3]
	if east.Length() != 36 || len(east.Blocks) != 9 {
		t.Fatalf("east wall length=%v blocks=%d", east.Length(), len(east.Blocks))
	}
	for i, id := range east.Blocks {
		n := g.Node(id)
		wantZ := -18 + float64(i*4+1)
		if n.Position.X() != 20 || math.Abs(n.Position.Z()-wantZ) > 1e-9 || n.Position.Y() != 16.5 {
			t.Fatalf("block %d at %v, want (20, 16.5, %v)", i, n.Position, wantZ)
		}
	}

	body := g.Node(east.Node)
	if body.Mesh.Width != 36 || body.Mesh.Height != 6 || body.Mesh.Depth != 2 {
		t.Fatalf("unexpected wall mesh %+v", body.Mesh)
	}
	if math.Abs(body.Rotation.Y()+math.Pi/2) > 1e-9 {
		t.Fatalf("east wall yaw %v, want -pi/2", body.Rotation.Y())
	}
}

func TestMaterialsShared(t *testing.T) {
	g := scene.NewGraph()
	mats := scene.NewMaterials()
	first, _ := Build(g, mats, mgl64.Vec2{0, 0}, 0)
	second, _ := Build(g, mats, mgl64.Vec2{200, 0}, 0)

	if mats.Allocations() != 2 {
		t.Fatalf("expected only stone and wood, got %d materials", mats.Allocations())
	}
	if first.Keep == second.Keep {
		t.Fatalf("geometry must not be reused between builds")
	}
	if g.Node(first.Keep).Material != g.Node(second.Keep).Material {
		t.Fatalf("stone material should be shared")
	}
	if g.Node(first.Portcullis).Material != Wood(mats) {
		t.Fatalf("portcullis should be wood")
	}
}

func TestFootprintsBlockWallsButNotGate(t *testing.T) {
	f, err := Build(scene.NewGraph(), scene.NewMaterials(), mgl64.Vec2{0, 0}, 10)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	fp := f.Footprints()
	if len(fp) != 4+5+1 {
		t.Fatalf("expected 10 footprints, got %d", len(fp))
	}

	w := collision.NewWorld(fp...)
	through := func(x float64) bool {
		from := f.Center.Add(mgl64.Vec2{x, -23})
		to := f.Center.Add(mgl64.Vec2{x, -21.2})
		return w.Blocked(vec(from), vec(to), 0.5)
	}
	if through(0) {
		t.Fatalf("gate gap should be walkable")
	}
	if !through(-10) {
		t.Fatalf("south wall should block")
	}
}
