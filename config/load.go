package config

import (
	"fmt"
	"os"

	"github.com/automoto/tilerun/shared/sim"
	"gopkg.in/yaml.v3"
)

// fileConfig is the on-disk shape of an overrides file. Sections that are
// absent keep their current values.
type fileConfig struct {
	Window Config                  `yaml:"window"`
	Sim    sim.Params              `yaml:"sim"`
	Camera CameraConfig            `yaml:"camera"`
	Fade   FadeConfig              `yaml:"fade"`
	Level  LevelConfig             `yaml:"level"`
	Debug  DebugConfig             `yaml:"debug"`
	Input  map[string]InputBinding `yaml:"input"`
}

// LoadFile reads a YAML overrides file and applies it on top of the current
// configuration.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := Load(data); err != nil {
		return fmt.Errorf("config: %s: %w", path, err)
	}
	return nil
}

// Load applies YAML overrides from data. Nothing is changed when data fails
// to parse or names an unknown action.
func Load(data []byte) error {
	f := fileConfig{
		Window: *C,
		Sim:    Sim,
		Camera: Camera,
		Fade:   Fade,
		Level:  Level,
		Debug:  Debug,
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("parse overrides: %w", err)
	}

	bindings := make(map[ActionID]InputBinding, len(Input.Bindings))
	for id, b := range Input.Bindings {
		bindings[id] = b
	}
	for name, b := range f.Input {
		id, ok := ActionByName(name)
		if !ok || id == ActionNone {
			return fmt.Errorf("unknown input action %q", name)
		}
		bindings[id] = b
	}

	window := f.Window
	C = &window
	Sim = f.Sim
	Camera = f.Camera
	Fade = f.Fade
	Level = f.Level
	Debug = f.Debug
	Input.Bindings = bindings
	return nil
}
