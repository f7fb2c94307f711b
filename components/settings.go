package components

import "github.com/yohamta/donburi"

// SettingsData is client state that survives restarts.
type SettingsData struct {
	ShowDebug bool
	LastLevel string
}

var Settings = donburi.NewComponentType[SettingsData]()
