package components

import (
	"github.com/automoto/tilerun/shared/leveldata"
	"github.com/yohamta/donburi"
)

// ReloadData holds the file watcher of a hot-reloading level.
type ReloadData struct {
	Watcher *leveldata.Watcher
	Reloads int
	Failed  int
}

var Reload = donburi.NewComponentType[ReloadData]()
