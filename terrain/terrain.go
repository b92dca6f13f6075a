// Package terrain is the height field the world is sculpted from. Heights are
// computed on demand; nothing is cached.
package terrain

import "math"

// Wave is one sin/cos pair: A*sin(F*x) + A*cos(F*z).
type Wave struct {
	Amplitude float64
	Frequency float64
}

func (w Wave) at(x, z float64) float64 {
	return math.Sin(x*w.Frequency)*w.Amplitude + math.Cos(z*w.Frequency)*w.Amplitude
}

// Field describes dune terrain with a flat plateau around the origin.
type Field struct {
	Macro Wave
	Micro Wave

	PlateauHeight float64
	PlateauRadius float64
	BlendRadius   float64
}

// Default returns the desert field the fort sits on.
func Default() Field {
	return Field{
		Macro:         Wave{Amplitude: 5, Frequency: 0.02},
		Micro:         Wave{Amplitude: 1, Frequency: 0.1},
		PlateauHeight: 10,
		PlateauRadius: 35,
		BlendRadius:   55,
	}
}

// Dunes returns the raw wave elevation, ignoring the plateau.
func (f Field) Dunes(x, z float64) float64 {
	return f.Macro.at(x, z) + f.Micro.at(x, z)
}

// Height returns the elevation at (x, z). Inside PlateauRadius it is the
// plateau height, beyond BlendRadius the dunes, and in between a linear blend
// of the two by normalized distance.
func (f Field) Height(x, z float64) float64 {
	dist := math.Hypot(x, z)
	if dist < f.PlateauRadius {
		return f.PlateauHeight
	}
	if dist < f.BlendRadius {
		ratio := (dist - f.PlateauRadius) / (f.BlendRadius - f.PlateauRadius)
		return f.PlateauHeight*(1-ratio) + f.Dunes(x, z)*ratio
	}
	return f.Dunes(x, z)
}

// Grid is a square vertex grid centred on the origin, row-major by z then x.
type Grid struct {
	Size         float64
	Subdivisions int
	Heights      []float64
}

// Stride is the number of vertices per row.
func (g Grid) Stride() int {
	return g.Subdivisions + 1
}

// Vertex returns the world position of vertex (col, row).
func (g Grid) Vertex(col, row int) (x, y, z float64) {
	step := g.Size / float64(g.Subdivisions)
	x = -g.Size/2 + float64(col)*step
	z = -g.Size/2 + float64(row)*step
	return x, g.Heights[row*g.Stride()+col], z
}

// Grid displaces a flat size x size ground with the given subdivisions.
func (f Field) Grid(size float64, subdivisions int) Grid {
	if subdivisions < 1 {
		subdivisions = 1
	}
	g := Grid{Size: size, Subdivisions: subdivisions}
	stride := g.Stride()
	g.Heights = make([]float64, stride*stride)
	step := size / float64(subdivisions)
	for row := 0; row < stride; row++ {
		z := -size/2 + float64(row)*step
		for col := 0; col < stride; col++ {
			x := -size/2 + float64(col)*step
			g.Heights[row*stride+col] = f.Height(x, z)
		}
	}
	return g
}
