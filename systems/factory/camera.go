package factory

import (
	"github.com/automoto/tilerun/archetypes"
	"github.com/automoto/tilerun/components"
	"github.com/yohamta/donburi"
)

func CreateCamera(w donburi.World) *donburi.Entry {
	camera := archetypes.Camera.Spawn(w)
	components.Camera.Set(camera, &components.CameraData{Snap: true})
	components.Fade.Set(camera, &components.FadeData{})
	return camera
}

func CreateSettings(w donburi.World, s components.SettingsData) *donburi.Entry {
	settings := archetypes.Settings.Spawn(w)
	components.Settings.Set(settings, &s)
	return settings
}
