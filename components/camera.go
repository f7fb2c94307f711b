package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position math.Vec2 // Top-left corner of the view in world pixels
	Snap     bool      // Jump straight to the target on the next update
}

var Camera = donburi.NewComponentType[CameraData]()
