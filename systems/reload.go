package systems

import (
	"errors"
	"log"

	"github.com/automoto/tilerun/archetypes"
	"github.com/automoto/tilerun/components"
	cfg "github.com/automoto/tilerun/config"
	"github.com/automoto/tilerun/shared/leveldata"
	"github.com/yohamta/donburi"
)

// StartReload watches the current level's file and reloads it on change.
// Levels without a file are not watched.
func StartReload(w donburi.World) error {
	level, ok := GetLevel(w)
	if !ok || level.Path == "" {
		return nil
	}
	watcher, err := leveldata.NewWatcher(cfg.Level.WatchDebounce, level.Path)
	if err != nil {
		return err
	}
	entry := archetypes.Reload.Spawn(w)
	components.Reload.Set(entry, &components.ReloadData{Watcher: watcher})
	log.Printf("Watching %s for changes", level.Path)
	return nil
}

// StopReload closes the level watcher, if any.
func StopReload(w donburi.World) {
	entry, ok := components.Reload.First(w)
	if !ok {
		return
	}
	reload := components.Reload.Get(entry)
	if reload.Watcher != nil {
		_ = reload.Watcher.Close()
		reload.Watcher = nil
	}
}

// UpdateReload drains pending file events without blocking. A file that
// fails to parse leaves the running level untouched.
func UpdateReload(w donburi.World) {
	entry, ok := components.Reload.First(w)
	if !ok {
		return
	}
	reload := components.Reload.Get(entry)
	if reload.Watcher == nil {
		return
	}

	for {
		select {
		case path, ok := <-reload.Watcher.Events:
			if !ok {
				reload.Watcher = nil
				return
			}
			ReloadLevel(w, reload, path)
		case err, ok := <-reload.Watcher.Errors:
			if ok {
				log.Printf("Warning: level watcher: %v", err)
			}
			return
		default:
			return
		}
	}
}

// ReloadLevel replaces the level grid with the contents of path.
func ReloadLevel(w donburi.World, reload *components.ReloadData, path string) {
	level, ok := GetLevel(w)
	if !ok {
		return
	}
	grid, err := leveldata.LoadFile(path)
	if err != nil {
		reload.Failed++
		var lfe *leveldata.LevelFormatError
		if errors.As(err, &lfe) {
			log.Printf("Warning: keeping previous level, %s is malformed at offset %d: %s", path, lfe.Offset, lfe.Reason)
		} else {
			log.Printf("Warning: keeping previous level: %v", err)
		}
		return
	}
	level.World.Load(grid)
	reload.Reloads++
	log.Printf("Reloaded level %q from %s: %dx%d tiles, generation %d",
		level.Name, path, grid.Width, grid.Height, level.World.Generation())
}
