package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/cutscene/common"
	"github.com/milk9111/cutscene/ecs"
	"github.com/milk9111/cutscene/ecs/component"
	"golang.org/x/image/colornames"
)

// RenderSystem draws the room as flat shapes seen through the camera.
type RenderSystem struct {
	Debug bool
}

func NewRenderSystem(debug bool) *RenderSystem {
	return &RenderSystem{Debug: debug}
}

func (rs *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}
	screen.Fill(colornames.Midnightblue)

	camX, camY, zoom := 0.0, 0.0, 1.0
	if camEntity, ok := ecs.First(w, component.CameraComponent.Kind()); ok {
		cam, _ := ecs.Get(w, camEntity, component.CameraComponent.Kind())
		if t, ok := ecs.Get(w, camEntity, component.TransformComponent.Kind()); ok {
			camX, camY = t.X, t.Y
		}
		if cam != nil && cam.Zoom > 0 {
			zoom = cam.Zoom
		}
	}
	scale := common.PixelsPerUnit * zoom
	toScreen := func(x, y float64) (float32, float32) {
		return float32((x-camX)*scale + common.BaseWidth/2), float32((y-camY)*scale + common.BaseHeight/2)
	}
	box := func(x, y, wdt, hgt float64, clr color.Color) {
		sx, sy := toScreen(x-wdt/2, y-hgt/2)
		vector.FillRect(screen, sx, sy, float32(wdt*scale), float32(hgt*scale), clr, false)
	}

	ecs.ForEach2(w, component.WalkTargetComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, _ *component.WalkTarget, t *component.Transform) {
		sx, sy := toScreen(t.X, t.Y)
		vector.StrokeCircle(screen, sx, sy, float32(0.3*scale), 2, colornames.Gold, true)
	})

	ecs.ForEach2(w, component.DoorComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, door *component.Door, t *component.Transform) {
		clr := color.Color(colornames.Saddlebrown)
		if anim, ok := ecs.Get(w, e, component.AnimatorComponent.Kind()); ok && anim.Current == component.DoorOpenState {
			clr = colornames.Peru
		}
		if door.Opened {
			clr = colornames.Darkolivegreen
		}
		box(t.X, t.Y, 1, 2.4, clr)
	})

	ecs.ForEach2(w, component.BossComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, _ *component.Boss, t *component.Transform) {
		clr := color.Color(colornames.Purple)
		if rt, ok := ecs.Get(w, e, component.BossRuntimeComponent.Kind()); ok && rt.Dead {
			clr = colornames.Dimgray
		}
		box(t.X, t.Y, 1.6, 2, clr)
	})

	ecs.ForEach2(w, component.PlayerTagComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, _ *component.PlayerTag, t *component.Transform) {
		wdt, hgt := 0.8, 1.6
		if pb, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok && pb.Width > 0 && pb.Height > 0 {
			wdt, hgt = pb.Width, pb.Height
		}
		box(t.X, t.Y, wdt, hgt, colornames.Crimson)

		if !rs.Debug {
			return
		}
		if pb, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok {
			sx, sy := toScreen(t.X, t.Y)
			ex, ey := toScreen(t.X+pb.Velocity.X, t.Y+pb.Velocity.Y)
			vector.StrokeLine(screen, sx, sy, ex, ey, 2, colornames.Lightgrey, true)
		}
	})
}
