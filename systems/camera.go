package systems

import (
	"math"

	"github.com/automoto/tilerun/components"
	"github.com/automoto/tilerun/config"
	"github.com/automoto/tilerun/shared/gamemath"
	"github.com/automoto/tilerun/tags"
	"github.com/yohamta/donburi"
)

// UpdateCamera moves the view toward the first player, keeping it inside the
// level. The camera jumps straight to its target after a respawn or load.
func UpdateCamera(w donburi.World) {
	cameraEntry, ok := components.Camera.First(w)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return
	}
	actor := components.Actor.Get(playerEntry)

	level, ok := GetLevel(w)
	if !ok {
		return
	}

	viewW := float64(config.C.Width)
	viewH := float64(config.C.Height)
	targetX := gamemath.CameraOffset(actor.X+actor.W/2, viewW, level.World.PixelWidth())
	targetY := gamemath.CameraOffset(actor.Y+actor.H/2, viewH, level.World.PixelHeight())

	if camera.Snap || config.Camera.FollowSmoothing >= 1 {
		camera.Position.X = targetX
		camera.Position.Y = targetY
		camera.Snap = false
		return
	}

	s := gamemath.Clamp(config.Camera.FollowSmoothing, 0, 1)
	camera.Position.X = math.Round(camera.Position.X + (targetX-camera.Position.X)*s)
	camera.Position.Y = math.Round(camera.Position.Y + (targetY-camera.Position.Y)*s)
}

// SnapCamera makes the next UpdateCamera jump to its target.
func SnapCamera(w donburi.World) {
	if cameraEntry, ok := components.Camera.First(w); ok {
		components.Camera.Get(cameraEntry).Snap = true
	}
}
