package client

import (
	"log"

	"github.com/automoto/tilerun/components"
	cfg "github.com/automoto/tilerun/config"
	"github.com/automoto/tilerun/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// keyBindings is cfg.Input resolved to ebiten keys.
var keyBindings [cfg.ActionCount][]ebiten.Key

// ResolveBindings turns the configured key names into ebiten keys. Unknown
// names are logged and skipped.
func ResolveBindings() {
	keyBindings = [cfg.ActionCount][]ebiten.Key{}
	for action, binding := range cfg.Input.Bindings {
		for _, name := range binding.Keys {
			var k ebiten.Key
			if err := k.UnmarshalText([]byte(name)); err != nil {
				log.Printf("Warning: unknown key %q bound to %s", name, action)
				continue
			}
			keyBindings[action] = append(keyBindings[action], k)
		}
	}
}

// UpdateInput polls the keyboard into every player's InputData.
// Must run BEFORE the simulation systems.
func UpdateInput(e *ecs.ECS) {
	var next [cfg.ActionCount]bool
	for action, keys := range keyBindings {
		for _, k := range keys {
			if ebiten.IsKeyPressed(k) {
				next[action] = true
				break
			}
		}
	}

	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		components.Input.Get(entry).Advance(next)
	})
}
