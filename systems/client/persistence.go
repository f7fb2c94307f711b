package client

import (
	"encoding/json"
	"log"

	"github.com/automoto/tilerun/components"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	ShowDebug bool   `json:"showDebug"`
	LastLevel string `json:"lastLevel"`
}

var gdataManager *gdata.Manager

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	return nil
}

// LoadSettings loads settings from disk. It returns nil when nothing has been
// saved yet or persistence is unavailable.
func LoadSettings() *SavedSettings {
	if gdataManager == nil {
		return nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil
	}
	if len(data) == 0 {
		return nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil
	}
	return &settings
}

// SaveSettings saves the current settings component to disk
func SaveSettings(s *components.SettingsData) {
	if gdataManager == nil {
		return
	}

	data, err := json.Marshal(SavedSettings{
		ShowDebug: s.ShowDebug,
		LastLevel: s.LastLevel,
	})
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return
	}
	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
	}
}

// ApplySavedSettings copies saved values into the settings component.
func ApplySavedSettings(s *components.SettingsData, saved *SavedSettings) {
	if saved == nil {
		return
	}
	s.ShowDebug = s.ShowDebug || saved.ShowDebug
	if s.LastLevel == "" {
		s.LastLevel = saved.LastLevel
	}
}
