package config

import (
	"time"

	"github.com/automoto/tilerun/shared/sim"
)

// Config holds general window configuration
type Config struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Scale  int    `yaml:"scale"`
	Title  string `yaml:"title"`
	TPS    int    `yaml:"tps"`
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing float64 `yaml:"followSmoothing"` // How fast the camera follows the actor (0.0-1.0)
}

// FadeConfig controls the black overlay shown after a respawn
type FadeConfig struct {
	Seconds  float32 `yaml:"seconds"`
	MaxAlpha float32 `yaml:"maxAlpha"`
}

// LevelConfig contains level defaults and file locations
type LevelConfig struct {
	DefaultWidth  int           `yaml:"defaultWidth"`  // Columns of a generated level
	DefaultHeight int           `yaml:"defaultHeight"` // Rows of a generated level
	Dir           string        `yaml:"dir"`           // Directory listed for level files
	WatchDebounce time.Duration `yaml:"watchDebounce"` // Quiet period before a changed file is reloaded
}

// DebugConfig contains debug/testing options
type DebugConfig struct {
	ShowSpace   bool `yaml:"showSpace"`   // Draw the collision space overlay
	LogOverlaps bool `yaml:"logOverlaps"` // Log resolv overlaps of the actor each frame
	LogRespawns bool `yaml:"logRespawns"`
}

// Global configuration instances
var C *Config
var Sim sim.Params
var Camera CameraConfig
var Fade FadeConfig
var Level LevelConfig
var Debug DebugConfig

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		Scale:  2,
		Title:  "tilerun",
		TPS:    60,
	}

	Sim = sim.DefaultParams()

	Camera = CameraConfig{
		FollowSmoothing: 0.25,
	}

	Fade = FadeConfig{
		Seconds:  0.4,
		MaxAlpha: 1,
	}

	Level = LevelConfig{
		DefaultWidth:  100,
		DefaultHeight: 20,
		Dir:           "levels",
		WatchDebounce: 100 * time.Millisecond,
	}

	Debug = DebugConfig{
		LogRespawns: true,
	}
}
