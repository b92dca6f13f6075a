package main

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/sandkeep/common"
	"github.com/milk9111/sandkeep/telemetry"
	"golang.org/x/image/font/basicfont"
)

var (
	hudTextColor = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	hudHurtColor = color.NRGBA{R: 0xff, G: 0x60, B: 0x60, A: 0xff}
)

// HUD shows the hero's health, the current target and the pause panel. It
// receives telemetry snapshots on the frame thread.
type HUD struct {
	ui *ebitenui.UI

	health *widget.Text
	target *widget.Text
	mobs   *widget.Text
	pause  *widget.Container

	last telemetry.Snapshot
}

func NewHUD(g *Game) *HUD {
	h := &HUD{}

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	label := func(c color.Color) *widget.Text {
		return widget.NewText(widget.TextOpts.Text("", &face, c))
	}
	h.health = label(hudTextColor)
	h.target = label(hudHurtColor)
	h.mobs = label(hudTextColor)

	status := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(imageui.NewNineSliceColor(color.NRGBA{A: 140})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(4),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 8, Bottom: 8, Left: 10, Right: 10}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
		),
	)
	status.AddChild(h.health)
	status.AddChild(h.target)
	status.AddChild(h.mobs)

	h.pause = newPausePanel(g, &face)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(status)
	root.AddChild(h.pause)

	h.ui = &ebitenui.UI{Container: root}
	return h
}

// newPausePanel builds a centered panel with Resume and Quit buttons using
// colored nine-slices, so no theme fonts are needed.
func newPausePanel(g *Game, face *ebtext.Face) *widget.Container {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{A: 200})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})
	btnTextColor := &widget.ButtonTextColor{Idle: hudTextColor}
	center := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	title := widget.NewText(
		widget.TextOpts.Text("Paused", face, hudTextColor),
		widget.TextOpts.WidgetOpts(center),
	)
	resume := widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
		widget.ButtonOpts.Text("Resume", face, btnTextColor),
		widget.ButtonOpts.WidgetOpts(center),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			g.paused = false
		}),
	)
	quit := widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
		widget.ButtonOpts.Text("Quit", face, btnTextColor),
		widget.ButtonOpts.WidgetOpts(center),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			g.quit = true
		}),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.BaseWidth/3, common.BaseHeight/3),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)
	panel.AddChild(title)
	panel.AddChild(resume)
	panel.AddChild(quit)
	panel.GetWidget().Visibility = widget.Visibility_Hide
	return panel
}

func (h *HUD) Publish(s telemetry.Snapshot) {
	h.last = s
}

func (h *HUD) Update(paused bool) {
	s := h.last
	h.health.Label = fmt.Sprintf("HP %d / %d", s.HeroHP, s.HeroMaxHP)
	if s.Target != nil {
		h.target.Label = fmt.Sprintf("%s  %d / %d", s.Target.Name, s.Target.HP, s.Target.MaxHP)
	} else {
		h.target.Label = ""
	}
	h.mobs.Label = fmt.Sprintf("Mobs %d", len(s.Mobs))

	if paused {
		h.pause.GetWidget().Visibility = widget.Visibility_Show
	} else {
		h.pause.GetWidget().Visibility = widget.Visibility_Hide
	}
	h.ui.Update()
}

func (h *HUD) Draw(screen *ebiten.Image) {
	h.ui.Draw(screen)
}
