package main

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/sandkeep/telemetry"
)

// cell is one rune placed on the terminal grid.
type cell struct {
	X, Y  int
	Rune  rune
	Style tcell.Style
}

// plot lays out s on a w x h grid centred on the hero, north up. Terminal
// rows are about twice as tall as columns, so z is squashed by half.
func plot(s telemetry.Snapshot, w, h int, scale float64) []cell {
	if w <= 0 || h <= 0 || scale <= 0 {
		return nil
	}
	cx, cy := w/2, h/2
	place := func(p telemetry.Planar) (int, int, bool) {
		x := cx + int(math.Round((p.X-s.Hero.X)/scale))
		y := cy - int(math.Round((p.Z-s.Hero.Z)/(scale*2)))
		return x, y, x >= 0 && x < w && y >= 0 && y < h
	}

	var cells []cell
	mobStyle := tcell.StyleDefault.Foreground(tcell.ColorRed)
	for _, m := range s.Mobs {
		if x, y, ok := place(m); ok {
			cells = append(cells, cell{X: x, Y: y, Rune: 'm', Style: mobStyle})
		}
	}

	heading := telemetry.Planar{
		X: s.Hero.X + math.Sin(s.Heading)*scale,
		Z: s.Hero.Z + math.Cos(s.Heading)*scale*2,
	}
	if x, y, ok := place(heading); ok && (x != cx || y != cy) {
		cells = append(cells, cell{X: x, Y: y, Rune: arrow(s.Heading), Style: tcell.StyleDefault.Foreground(tcell.ColorYellow)})
	}
	cells = append(cells, cell{X: cx, Y: cy, Rune: '@', Style: tcell.StyleDefault.Foreground(tcell.ColorGreen)})
	return cells
}

// arrow picks the glyph closest to a yaw, where 0 faces north (+z).
func arrow(yaw float64) rune {
	glyphs := []rune{'^', '/', '>', '\\', 'v', '/', '<', '\\'}
	octant := int(math.Round(yaw/(math.Pi/4))) % 8
	if octant < 0 {
		octant += 8
	}
	return glyphs[octant]
}
