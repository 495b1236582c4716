package main

import (
	"fmt"
	"image/color"

	"github.com/milk9111/cutscene/common"
	"github.com/milk9111/cutscene/ecs"
	"github.com/milk9111/cutscene/ecs/component"
	"github.com/milk9111/cutscene/system"
	"golang.org/x/image/font/basicfont"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
)

// HUD is a corner panel showing the scene, the boss and the sequence step.
type HUD struct {
	UI *ebitenui.UI

	scene    *widget.Text
	boss     *widget.Text
	sequence *widget.Text
	help     *widget.Text
}

// NewHUD builds the panel from colored nine-slices and the built-in basic
// font, so no theme assets are needed.
func NewHUD() *HUD {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 160})

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	grey := color.NRGBA{R: 0xaa, G: 0xaa, B: 0xaa, A: 0xff}
	label := func(clr color.Color) *widget.Text {
		return widget.NewText(
			widget.TextOpts.Text("", &face, clr),
			widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
		)
	}

	h := &HUD{
		scene:    label(white),
		boss:     label(white),
		sequence: label(white),
		help:     label(grey),
	}
	h.help.Label = "K attack   R restart   F3 debug   F12 quit"

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(6),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 10, Bottom: 10, Left: 14, Right: 14}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.BaseWidth/4, 0),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionStart, VerticalPosition: widget.AnchorLayoutPositionStart}),
		),
	)
	panel.AddChild(h.scene)
	panel.AddChild(h.boss)
	panel.AddChild(h.sequence)
	panel.AddChild(h.help)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	h.UI = &ebitenui.UI{Container: root}
	return h
}

// Refresh copies the world state into the labels.
func (h *HUD) Refresh(w *system.World) {
	if h == nil || w == nil {
		return
	}
	h.scene.Label = fmt.Sprintf("scene: %s", w.Scene)

	h.boss.Label = "boss: none"
	if hp, ok := ecs.Get(w.ECS, w.Room.Boss, component.HealthComponent.Kind()); ok {
		name := "boss"
		if b, ok := ecs.Get(w.ECS, w.Room.Boss, component.BossComponent.Kind()); ok && b.DisplayName != "" {
			name = b.DisplayName
		}
		h.boss.Label = fmt.Sprintf("%s: %d/%d hp", name, hp.Current, hp.Initial)
	}

	h.sequence.Label = "sequence: -"
	if ctrl := w.Controller(); ctrl != nil {
		h.sequence.Label = fmt.Sprintf("sequence: %s / %s", ctrl.State(), ctrl.Step())
		if w.GameClock.Frozen() {
			h.sequence.Label += " (frozen)"
		}
	}
}
