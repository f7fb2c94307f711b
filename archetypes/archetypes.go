package archetypes

import (
	"github.com/automoto/tilerun/components"
	"github.com/automoto/tilerun/tags"
	"github.com/yohamta/donburi"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Actor,
		components.Object,
		components.Input,
	)
	Block = newArchetype(
		tags.Block,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
		components.Fade,
	)
	Settings = newArchetype(
		components.Settings,
	)
	Reload = newArchetype(
		components.Reload,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

// Spawn creates an entity with the archetype's components plus cs. It takes
// the bare world so the headless runner can build entities without a
// renderer.
func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	return w.Entry(w.Create(append(a.components, cs...)...))
}
