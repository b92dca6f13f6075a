package terrain

import (
	"math"
	"testing"
)

func TestHeightDeterministic(t *testing.T) {
	f := Default()
	points := [][2]float64{{0, 0}, {12.5, -3}, {40, 40}, {-300, 77}, {1e6, -1e6}}
	for _, p := range points {
		a := f.Height(p[0], p[1])
		b := f.Height(p[0], p[1])
		if a != b {
			t.Fatalf("height(%v) not deterministic: %v != %v", p, a, b)
		}
	}
}

func TestHeightRegions(t *testing.T) {
	f := Default()
	tests := []struct {
		name string
		x, z float64
		want func(x, z float64) float64
	}{
		{"origin", 0, 0, func(_, _ float64) float64 { return 10 }},
		{"inside_plateau_edge", 34.999, 0, func(_, _ float64) float64 { return 10 }},
		{"plateau_boundary", 35, 0, func(_, _ float64) float64 { return 10 }},
		{"beyond_blend", 80, -10, f.Dunes},
		{"blend_boundary", 0, 55, f.Dunes},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := f.Height(tc.x, tc.z)
			want := tc.want(tc.x, tc.z)
			if math.Abs(got-want) > 1e-9 {
				t.Fatalf("height(%v,%v) = %v, want %v", tc.x, tc.z, got, want)
			}
		})
	}
}

func TestHeightBlendIsContinuous(t *testing.T) {
	f := Default()
	const eps = 1e-7
	for _, angle := range []float64{0, 0.7, 2.1, math.Pi, 4.4} {
		cx, cz := math.Cos(angle), math.Sin(angle)

		inner := f.Height(cx*(35+eps), cz*(35+eps))
		if math.Abs(inner-f.PlateauHeight) > 1e-4 {
			t.Fatalf("angle %v: just outside plateau got %v, want ~%v", angle, inner, f.PlateauHeight)
		}

		outer := f.Height(cx*(55-eps), cz*(55-eps))
		dunes := f.Dunes(cx*55, cz*55)
		if math.Abs(outer-dunes) > 1e-4 {
			t.Fatalf("angle %v: approaching blend radius got %v, want ~%v", angle, outer, dunes)
		}
	}
}

func TestHeightBlendMidpoint(t *testing.T) {
	f := Default()
	x := 45.0
	want := 0.5*f.PlateauHeight + 0.5*f.Dunes(x, 0)
	if got := f.Height(x, 0); math.Abs(got-want) > 1e-9 {
		t.Fatalf("midpoint height = %v, want %v", got, want)
	}
}

func TestGrid(t *testing.T) {
	f := Default()
	g := f.Grid(100, 4)
	if g.Stride() != 5 || len(g.Heights) != 25 {
		t.Fatalf("unexpected grid shape stride=%d len=%d", g.Stride(), len(g.Heights))
	}
	for row := 0; row < g.Stride(); row++ {
		for col := 0; col < g.Stride(); col++ {
			x, y, z := g.Vertex(col, row)
			if y != f.Height(x, z) {
				t.Fatalf("vertex (%d,%d) height %v != field %v", col, row, y, f.Height(x, z))
			}
		}
	}
	if x, _, z := g.Vertex(2, 2); x != 0 || z != 0 {
		t.Fatalf("centre vertex at (%v,%v), want origin", x, z)
	}
}
