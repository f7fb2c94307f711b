package systems

import (
	"github.com/automoto/tilerun/components"
	cfg "github.com/automoto/tilerun/config"
	"github.com/automoto/tilerun/systems/factory"
	"github.com/automoto/tilerun/tags"
	"github.com/yohamta/donburi"
)

func GetOrCreateSettings(w donburi.World) *components.SettingsData {
	entry, ok := components.Settings.First(w)
	if !ok {
		entry = factory.CreateSettings(w, components.SettingsData{ShowDebug: cfg.Debug.ShowSpace})
	}
	return components.Settings.Get(entry)
}

// UpdateSettings toggles the debug overlay. It reports whether anything
// changed so the caller can persist the new state.
func UpdateSettings(w donburi.World) bool {
	settings := GetOrCreateSettings(w)
	changed := false
	tags.Player.Each(w, func(e *donburi.Entry) {
		if components.Input.Get(e).JustPressed(cfg.ActionToggleDebug) {
			settings.ShowDebug = !settings.ShowDebug
			changed = true
		}
	})
	return changed
}
