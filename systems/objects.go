package systems

import (
	"log"

	"github.com/automoto/tilerun/components"
	cfg "github.com/automoto/tilerun/config"
	"github.com/automoto/tilerun/tags"
	"github.com/yohamta/donburi"
)

// UpdateObjects moves each player's resolv box to its actor and refreshes
// its cells in the space.
func UpdateObjects(w donburi.World) {
	tags.Player.Each(w, func(e *donburi.Entry) {
		actor := components.Actor.Get(e)
		obj := components.Object.Get(e)
		obj.X = actor.X
		obj.Y = actor.Y
		obj.Update()

		if cfg.Debug.LogOverlaps {
			logOverlaps(e)
		}
	})
}

// Overlaps returns the tags of every solid object touching the entry's box.
func Overlaps(e *donburi.Entry) []string {
	obj := components.Object.Get(e)
	check := obj.Check(0, 0, tags.ResolvSolid)
	if check == nil {
		return nil
	}
	var found []string
	for _, o := range check.Objects {
		if o.HasTags(tags.ResolvRamp) {
			found = append(found, tags.ResolvRamp)
		} else if o.HasTags(tags.ResolvCeiling) {
			found = append(found, tags.ResolvCeiling)
		} else {
			found = append(found, tags.ResolvSolid)
		}
	}
	return found
}

func logOverlaps(e *donburi.Entry) {
	if found := Overlaps(e); len(found) > 0 {
		actor := components.Actor.Get(e)
		log.Printf("Actor at %.1f,%.1f (%s) overlaps %v", actor.X, actor.Y, actor.State, found)
	}
}
