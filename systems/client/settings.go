package client

import (
	"github.com/automoto/tilerun/systems"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettings toggles the debug overlay and persists the change.
func UpdateSettings(e *ecs.ECS) {
	if systems.UpdateSettings(e.World) {
		SaveSettings(systems.GetOrCreateSettings(e.World))
	}
}
