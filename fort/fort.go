// Package fort assembles the static fortification: four corner towers, walls
// with a gate gap on the south side, a gatehouse and a central keep.
package fort

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/sandkeep/collision"
	"github.com/milk9111/sandkeep/scene"
)

const (
	courtyardSize = 40.0
	wallHeight    = 6.0
	wallDepth     = 2.0
	towerHeight   = 10.0
	towerDiameter = 6.0
	topDiameter   = 7.0
	rimRadius     = 3.0
	rimBlocks     = 8
	cornerInset   = 2.0
	gateHalfWidth = 5.0
)

// Wall is one straight wall segment on the planar (x, z) plane.
type Wall struct {
	Node   scene.NodeID
	From   mgl64.Vec2
	To     mgl64.Vec2
	Blocks []scene.NodeID
}

// Length of the wall body.
func (w Wall) Length() float64 {
	return w.To.Sub(w.From).Len()
}

// Tower is a corner tower.
type Tower struct {
	Body   scene.NodeID
	Top    scene.NodeID
	Blocks []scene.NodeID
	Center mgl64.Vec2
}

// Fort is the output of Build. It owns no runtime state.
type Fort struct {
	Center     mgl64.Vec2
	BaseHeight float64

	Towers     []Tower
	Walls      []Wall
	GateHeader scene.NodeID
	Portcullis scene.NodeID
	Keep       scene.NodeID
	KeepDoor   scene.NodeID

	footprints []collision.Footprint
}

// WallLength is the summed length of every wall body.
func (f *Fort) WallLength() float64 {
	total := 0.0
	for _, w := range f.Walls {
		total += w.Length()
	}
	return total
}

// Footprints returns the planar footprints of the collidable parts.
func (f *Fort) Footprints() []collision.Footprint {
	return append([]collision.Footprint(nil), f.footprints...)
}

type builder struct {
	g     *scene.Graph
	stone *scene.Material
	wood  *scene.Material
	base  float64
	fort  *Fort
}

// Build emits a fort centred on center (x, z) standing on baseHeight. Every
// call creates fresh geometry; only the stone and wood materials are shared
// through mats.
func Build(g *scene.Graph, mats *scene.Materials, center mgl64.Vec2, baseHeight float64) (*Fort, error) {
	if g == nil || mats == nil {
		return nil, fmt.Errorf("fort: build: graph and materials are required")
	}
	b := &builder{
		g:     g,
		stone: Stone(mats),
		wood:  Wood(mats),
		base:  baseHeight,
		fort:  &Fort{Center: center, BaseHeight: baseHeight},
	}

	cx, cz := center.X(), center.Y()
	half := courtyardSize / 2

	b.tower(cx-half, cz-half)
	b.tower(cx+half, cz-half)
	b.tower(cx-half, cz+half)
	b.tower(cx+half, cz+half)

	// north
	b.wall(mgl64.Vec2{cx - half + cornerInset, cz + half}, mgl64.Vec2{cx + half - cornerInset, cz + half})
	// south, split around the gate
	b.wall(mgl64.Vec2{cx - half + cornerInset, cz - half}, mgl64.Vec2{cx - gateHalfWidth, cz - half})
	b.wall(mgl64.Vec2{cx + gateHalfWidth, cz - half}, mgl64.Vec2{cx + half - cornerInset, cz - half})
	// east
	b.wall(mgl64.Vec2{cx + half, cz - half + cornerInset}, mgl64.Vec2{cx + half, cz + half - cornerInset})
	// west
	b.wall(mgl64.Vec2{cx - half, cz - half + cornerInset}, mgl64.Vec2{cx - half, cz + half - cornerInset})

	b.gate(cx, cz-half)
	b.keep(cx, cz)

	return b.fort, nil
}

// Stone is the shared masonry material.
func Stone(mats *scene.Materials) *scene.Material {
	return mats.Named("stoneMat", func() *scene.Material {
		return &scene.Material{
			Texture:      "floor.png",
			TextureScale: 5,
			Diffuse:      scene.Color{R: 0.55, G: 0.52, B: 0.48},
			Specular:     scene.Color{R: 0.1, G: 0.1, B: 0.1},
		}
	})
}

// Wood is the shared timber material.
func Wood(mats *scene.Materials) *scene.Material {
	return mats.Named("woodMat", func() *scene.Material {
		return &scene.Material{
			Texture:      "wood.jpg",
			TextureScale: 1,
			Diffuse:      scene.Color{R: 0.45, G: 0.3, B: 0.15},
		}
	})
}

func (b *builder) mesh(name string, mesh *scene.Mesh, mat *scene.Material, pos mgl64.Vec3, yaw float64) scene.NodeID {
	id := b.g.AddMesh(name, mesh, scene.NoNode)
	n := b.g.Node(id)
	n.Material = mat
	n.Position = pos
	n.Rotation = mgl64.Vec3{0, yaw, 0}
	return id
}

func (b *builder) tower(x, z float64) {
	t := Tower{Center: mgl64.Vec2{x, z}}

	t.Body = b.mesh("tower", scene.Cylinder(towerHeight, towerDiameter, towerDiameter), b.stone,
		mgl64.Vec3{x, b.base + towerHeight/2, z}, 0)
	b.g.Node(t.Body).Collidable = true
	b.fort.footprints = append(b.fort.footprints, collision.Circle{
		Center: cp.Vector{X: x, Y: z},
		Radius: towerDiameter / 2,
	})

	t.Top = b.mesh("towerTop", scene.Cylinder(1, topDiameter, topDiameter), b.stone,
		mgl64.Vec3{x, b.base + towerHeight, z}, 0)

	for i := 0; i < rimBlocks; i++ {
		angle := 2 * math.Pi / rimBlocks * float64(i)
		pos := mgl64.Vec3{x + math.Cos(angle)*rimRadius, b.base + towerHeight + 0.5, z + math.Sin(angle)*rimRadius}
		t.Blocks = append(t.Blocks, b.mesh("cren", scene.Box(1, 1, 1), b.stone, pos, -angle))
	}

	b.fort.Towers = append(b.fort.Towers, t)
}

// wall places the body at the midpoint and the crenellations by walking the
// unit direction from the start point, so no parenting is involved.
func (b *builder) wall(from, to mgl64.Vec2) {
	delta := to.Sub(from)
	length := delta.Len()
	mid := from.Add(to).Mul(0.5)
	angle := math.Atan2(delta.Y(), delta.X())

	w := Wall{From: from, To: to}
	w.Node = b.mesh("wall", scene.Box(length, wallHeight, wallDepth), b.stone,
		mgl64.Vec3{mid.X(), b.base + wallHeight/2, mid.Y()}, -angle)
	b.g.Node(w.Node).Collidable = true
	b.fort.footprints = append(b.fort.footprints, collision.Segment{
		A:         cp.Vector{X: from.X(), Y: from.Y()},
		B:         cp.Vector{X: to.X(), Y: to.Y()},
		Thickness: wallDepth,
	})

	if length > 0 {
		dir := delta.Mul(1 / length)
		slots := int(math.Floor(length / 2))
		for i := 0; i < slots; i += 2 {
			p := from.Add(dir.Mul(float64(i*2 + 1)))
			w.Blocks = append(w.Blocks, b.mesh("cren", scene.Box(1, 1, wallDepth), b.stone,
				mgl64.Vec3{p.X(), b.base + wallHeight + 0.5, p.Y()}, -angle))
		}
	}

	b.fort.Walls = append(b.fort.Walls, w)
}

func (b *builder) gate(x, z float64) {
	b.fort.GateHeader = b.mesh("gateHeader", scene.Box(2*gateHalfWidth, 2, 3), b.stone,
		mgl64.Vec3{x, b.base + 5, z}, 0)
	b.fort.Portcullis = b.mesh("grate", scene.Plane(6, 5), b.wood,
		mgl64.Vec3{x, b.base + 2.5, z}, 0)
}

func (b *builder) keep(x, z float64) {
	b.fort.Keep = b.mesh("keep", scene.Box(15, 12, 15), b.stone,
		mgl64.Vec3{x, b.base + 6, z}, 0)
	b.g.Node(b.fort.Keep).Collidable = true
	b.fort.footprints = append(b.fort.footprints, collision.Box{
		Center: cp.Vector{X: x, Y: z},
		Width:  15,
		Depth:  15,
	})

	// entrance faces the gate, just proud of the south face
	b.fort.KeepDoor = b.mesh("door", scene.Plane(4, 6), b.wood,
		mgl64.Vec3{x, b.base + 3, z - 7.6}, 0)
}
