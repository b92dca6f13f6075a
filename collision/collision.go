// Package collision keeps the static footprints of collidable structure parts
// in a chipmunk space and answers planar blocking queries against them.
// Coordinates are planar: Vector.X is world x, Vector.Y is world z.
package collision

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Footprint is a static planar shape.
type Footprint interface {
	shape(body *cp.Body) *cp.Shape
}

// Circle is a round footprint such as a tower.
type Circle struct {
	Center cp.Vector
	Radius float64
}

func (c Circle) shape(body *cp.Body) *cp.Shape {
	return cp.NewCircle(body, c.Radius, c.Center)
}

// Segment is a thick line such as a wall.
type Segment struct {
	A, B      cp.Vector
	Thickness float64
}

func (s Segment) shape(body *cp.Body) *cp.Shape {
	return cp.NewSegment(body, s.A, s.B, s.Thickness/2)
}

// Box is an axis-aligned rectangle such as the keep.
type Box struct {
	Center cp.Vector
	Width  float64
	Depth  float64
}

func (b Box) shape(body *cp.Body) *cp.Shape {
	return cp.NewBox2(body, cp.NewBBForExtents(b.Center, b.Width/2, b.Depth/2), 0)
}

// World is a set of static footprints.
type World struct {
	space *cp.Space
	count int
}

func NewWorld(footprints ...Footprint) *World {
	w := &World{space: cp.NewSpace()}
	for _, f := range footprints {
		w.Add(f)
	}
	return w
}

// Add inserts a static footprint.
func (w *World) Add(f Footprint) {
	if w == nil || f == nil {
		return
	}
	w.space.AddShape(f.shape(w.space.StaticBody))
	w.count++
}

// Len is the number of footprints.
func (w *World) Len() int {
	if w == nil {
		return 0
	}
	return w.count
}

// Clearance is the signed distance from p to the nearest footprint within
// maxDistance: negative inside a shape, +Inf when nothing is that close.
func (w *World) Clearance(p cp.Vector, maxDistance float64) float64 {
	if w == nil || w.count == 0 {
		return math.Inf(1)
	}
	info := w.space.PointQueryNearest(p, maxDistance, cp.SHAPE_FILTER_ALL)
	if info == nil || info.Shape == nil {
		return math.Inf(1)
	}
	return info.Distance
}

// Blocked reports whether moving a body of the given radius from one point
// to another would push it into a footprint. Moves that leave a shape the
// body already overlaps are allowed so nothing gets stuck.
func (w *World) Blocked(from, to cp.Vector, radius float64) bool {
	if w == nil || w.count == 0 {
		return false
	}
	reach := radius + 1
	after := w.Clearance(to, reach)
	if after >= radius {
		return false
	}
	before := w.Clearance(from, reach)
	return after < before
}
