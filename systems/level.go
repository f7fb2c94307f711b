package systems

import (
	"log"
	"path/filepath"
	"strings"

	"github.com/automoto/tilerun/components"
	cfg "github.com/automoto/tilerun/config"
	"github.com/automoto/tilerun/shared/leveldata"
	"github.com/automoto/tilerun/tags"
	"github.com/yohamta/donburi"
)

// GetLevel returns the current level, if one has been created.
func GetLevel(w donburi.World) (*components.LevelData, bool) {
	entry, ok := components.Level.First(w)
	if !ok {
		return nil, false
	}
	level := components.Level.Get(entry)
	if level.World == nil {
		return nil, false
	}
	return level, true
}

// SavePath is where the level is written: its own file for level text, or a
// .lvl next to an imported map.
func SavePath(level *components.LevelData) string {
	if level.Path == "" {
		return filepath.Join(cfg.Level.Dir, level.Name+leveldata.LevelExt)
	}
	if strings.EqualFold(filepath.Ext(level.Path), leveldata.LevelExt) {
		return level.Path
	}
	return strings.TrimSuffix(level.Path, filepath.Ext(level.Path)) + leveldata.LevelExt
}

// UpdateLevelSave writes the level as text when the save action is pressed.
func UpdateLevelSave(w donburi.World) {
	saving := false
	tags.Player.Each(w, func(e *donburi.Entry) {
		if components.Input.Get(e).JustPressed(cfg.ActionSaveLevel) {
			saving = true
		}
	})
	if !saving {
		return
	}
	if _, err := SaveLevel(w); err != nil {
		log.Printf("Warning: Could not save level: %v", err)
	}
}

// SaveLevel writes the current level to SavePath and returns that path.
func SaveLevel(w donburi.World) (string, error) {
	level, ok := GetLevel(w)
	if !ok {
		return "", nil
	}
	path := SavePath(level)
	if err := leveldata.SaveFile(path, level.World.Grid()); err != nil {
		return "", err
	}
	log.Printf("Saved level %q to %s", level.Name, path)
	return path, nil
}
