package client

import (
	"fmt"
	"image/color"

	"github.com/automoto/tilerun/components"
	"github.com/automoto/tilerun/systems"
	"github.com/automoto/tilerun/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/colornames"
)

func objectColor(obj *resolv.Object) color.RGBA {
	switch {
	case obj.HasTags(tags.ResolvPlayer):
		return colornames.Blue
	case obj.HasTags(tags.ResolvRamp):
		return colornames.Lime
	case obj.HasTags(tags.ResolvCeiling):
		return colornames.Magenta
	case obj.HasTags(tags.ResolvIcy):
		return colornames.Cyan
	case obj.HasTags(tags.ResolvSolid):
		return colornames.Grey
	}
	return colornames.Yellow
}

// DrawDebug outlines every object of the collision space inside the view.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	settings := systems.GetOrCreateSettings(e.World)
	if !settings.ShowDebug {
		return
	}
	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	camX, camY := cameraOffset(e.World)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	viewW, viewH := float64(width), float64(height)

	for _, obj := range space.Objects() {
		if obj.X+obj.W < camX || obj.X > camX+viewW || obj.Y+obj.H < camY || obj.Y > camY+viewH {
			continue
		}
		vector.StrokeRect(screen,
			float32(obj.X-camX), float32(obj.Y-camY),
			float32(obj.W), float32(obj.H),
			1, objectColor(obj), false)
	}
}

// DrawHUD prints the actor's state in the top-left corner.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	actor := components.Actor.Get(entry)
	v := actor.View()

	name := ""
	if level, ok := systems.GetLevel(e.World); ok {
		name = level.Name
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s  %s  respawns %d", name, actor.State, actor.Respawns), 4, 4)

	settings := systems.GetOrCreateSettings(e.World)
	if !settings.ShowDebug {
		return
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("x %.1f y %.1f  vx %.2f vy %.2f  costume %d", v.X, v.Y, v.XVel, v.YVel, v.Costume), 4, 20)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("tps %.0f  fps %.0f  overlaps %v", ebiten.ActualTPS(), ebiten.ActualFPS(), systems.Overlaps(entry)), 4, 36)
}

