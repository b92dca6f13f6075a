// Package render draws the world top-down with ebiten vector shapes.
package render

import (
	"image/color"
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/sandkeep/common"
	"github.com/milk9111/sandkeep/ecs"
	"github.com/milk9111/sandkeep/ecs/component"
	"github.com/milk9111/sandkeep/prefabs"
	"github.com/milk9111/sandkeep/scene"
	"github.com/milk9111/sandkeep/terrain"
	"golang.org/x/image/colornames"
)

const (
	// groundExtent is the side of the shaded terrain image in world units.
	groundExtent = 400.0
	groundStep   = 2.0
	viewScale    = 120.0
)

const (
	groundKey = "ground"
	whiteKey  = "white"
)

// Renderer draws the scene top-down with x east and z north, centred on the
// camera target. Meshes are drawn as their ground footprints, highest last.
type Renderer struct {
	world      *ecs.World
	images     *Images
	background color.Color
	sand       color.Color
}

// view maps world positions to screen pixels.
type view struct {
	center mgl64.Vec3
	ppu    float64
}

// viewFor centres on the camera target and scales with the orbit radius.
func viewFor(w *ecs.World) view {
	v := view{ppu: viewScale / 10}
	if _, cam, ok := ecs.First(w, component.CameraComponent.Kind()); ok && cam.Radius > 0 {
		v.center = cam.Target
		v.ppu = viewScale / cam.Radius
	}
	return v
}

func (v view) project(p mgl64.Vec3) (float32, float32) {
	return float32(common.BaseWidth/2 + (p.X()-v.center.X())*v.ppu),
		float32(common.BaseHeight/2 - (p.Z()-v.center.Z())*v.ppu)
}

type drawItem struct {
	node   *scene.Node
	world  mgl64.Mat4
	height float64
}

func NewRenderer(w *ecs.World, spec prefabs.GroundSpec) *Renderer {
	return &Renderer{
		world:      w,
		images:     NewImages(),
		background: spec.Background.Or(color.NRGBA{R: 0x87, G: 0xce, B: 0xeb, A: 0xff}),
		sand:       spec.Color.Or(color.NRGBA{R: 0xc7, G: 0xa3, B: 0x70, A: 0xff}),
	}
}

func (r *Renderer) white() *ebiten.Image {
	return r.images.GetOrBuild(whiteKey, func() *ebiten.Image {
		img := ebiten.NewImage(1, 1)
		img.Fill(color.White)
		return img
	})
}

func (r *Renderer) ground() *ebiten.Image {
	return r.images.GetOrBuild(groundKey, func() *ebiten.Image {
		px := int(groundExtent / groundStep)
		img := ebiten.NewImage(px, px)
		img.WritePixels(groundPixels(r.world.Terrain, r.sand))
		return img
	})
}

// groundPixels bakes the height field into RGBA rows, north first, darker in
// the hollows.
func groundPixels(field terrain.Field, base color.Color) []byte {
	px := int(groundExtent / groundStep)
	br, bg, bb, _ := base.RGBA()

	pixels := make([]byte, px*px*4)
	for row := 0; row < px; row++ {
		for col := 0; col < px; col++ {
			x := -groundExtent/2 + (float64(col)+0.5)*groundStep
			z := groundExtent/2 - (float64(row)+0.5)*groundStep
			h := field.Height(x, z)
			shade := common.Lerp(0.7, 1.05, common.Clamp((h+6)/18, 0, 1))

			i := (row*px + col) * 4
			pixels[i] = channel(br, shade)
			pixels[i+1] = channel(bg, shade)
			pixels[i+2] = channel(bb, shade)
			pixels[i+3] = 0xff
		}
	}
	return pixels
}

func channel(v uint32, shade float64) byte {
	return byte(common.Clamp(float64(v>>8)*shade, 0, 255))
}

func (r *Renderer) Draw(screen *ebiten.Image) {
	screen.Fill(r.background)
	v := viewFor(r.world)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(groundStep*v.ppu, groundStep*v.ppu)
	gx, gy := v.project(mgl64.Vec3{-groundExtent / 2, 0, groundExtent / 2})
	op.GeoM.Translate(float64(gx), float64(gy))
	screen.DrawImage(r.ground(), op)

	var items []drawItem
	r.world.Scene.Each(func(id scene.NodeID, n *scene.Node) {
		if n.Mesh == nil || n.Mesh.Kind == scene.MeshGround {
			return
		}
		m := r.world.Scene.World(id)
		items = append(items, drawItem{node: n, world: m, height: m.Col(3).Y()})
	})
	sort.SliceStable(items, func(i, j int) bool { return items[i].height < items[j].height })

	for _, it := range items {
		r.drawNode(screen, it, v)
	}

	r.drawOverlay(screen, v)
}

func (r *Renderer) drawNode(screen *ebiten.Image, it drawItem, v view) {
	project, ppu := v.project, v.ppu
	clr := nodeColor(it.node)
	hx, hz := it.node.Mesh.Footprint()

	switch it.node.Mesh.Kind {
	case scene.MeshBox, scene.MeshPlane:
		corners := [4]mgl64.Vec3{{-hx, 0, -hz}, {hx, 0, -hz}, {hx, 0, hz}, {-hx, 0, hz}}
		if hz == 0 {
			x0, y0 := project(mgl64.TransformCoordinate(corners[0], it.world))
			x1, y1 := project(mgl64.TransformCoordinate(corners[1], it.world))
			vector.StrokeLine(screen, x0, y0, x1, y1, 2, clr, true)
			return
		}
		var path vector.Path
		for i, c := range corners {
			x, y := project(mgl64.TransformCoordinate(c, it.world))
			if i == 0 {
				path.MoveTo(x, y)
			} else {
				path.LineTo(x, y)
			}
		}
		path.Close()
		r.fillPath(screen, &path, clr)
	case scene.MeshTorus:
		x, y := project(it.world.Col(3).Vec3())
		radius := hx * it.world.Col(0).Vec3().Len() * ppu
		vector.StrokeCircle(screen, x, y, float32(radius), float32(math.Max(1, it.node.Mesh.Thickness*ppu/2)), clr, true)
	default:
		x, y := project(it.world.Col(3).Vec3())
		radius := math.Max(hx*it.world.Col(0).Vec3().Len(), hz*it.world.Col(2).Vec3().Len()) * ppu
		vector.DrawFilledCircle(screen, x, y, float32(math.Max(1, radius)), clr, true)
	}
}

func (r *Renderer) fillPath(screen *ebiten.Image, path *vector.Path, clr color.Color) {
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	cr, cg, cb, ca := clr.RGBA()
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 0, 0
		vs[i].ColorR = float32(cr) / 0xffff
		vs[i].ColorG = float32(cg) / 0xffff
		vs[i].ColorB = float32(cb) / 0xffff
		vs[i].ColorA = float32(ca) / 0xffff
	}
	screen.DrawTriangles(vs, is, r.white(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// drawOverlay marks the hero's heading and ring-highlights its target.
func (r *Renderer) drawOverlay(screen *ebiten.Image, v view) {
	project, ppu := v.project, v.ppu
	e, _, ok := ecs.First(r.world, component.HeroComponent.Kind())
	if !ok {
		return
	}
	tr, ok := ecs.Get(r.world, e, component.TransformComponent.Kind())
	if !ok {
		return
	}
	x0, y0 := project(tr.Position)
	x1, y1 := project(tr.Position.Add(common.Forward(tr.Yaw).Mul(2)))
	vector.StrokeLine(screen, x0, y0, x1, y1, 2, colornames.Yellow, true)

	targeting, ok := ecs.Get(r.world, e, component.TargetingComponent.Kind())
	if !ok || !targeting.Has() {
		return
	}
	mtr, ok := ecs.Get(r.world, ecs.Entity(targeting.Target), component.TransformComponent.Kind())
	if !ok {
		return
	}
	tx, ty := project(mtr.Position)
	vector.StrokeCircle(screen, tx, ty, float32(1.2*ppu*mtr.Scale), 2, colornames.Red, true)
}

func nodeColor(n *scene.Node) color.Color {
	if n.Material == nil {
		return colornames.Gray
	}
	d := n.Material.Diffuse
	return color.NRGBA{
		R: uint8(common.Clamp(d.R, 0, 1) * 255),
		G: uint8(common.Clamp(d.G, 0, 1) * 255),
		B: uint8(common.Clamp(d.B, 0, 1) * 255),
		A: 0xff,
	}
}
