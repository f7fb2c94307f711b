package core

import (
	"github.com/automoto/tilerun/components"
	cfg "github.com/automoto/tilerun/config"
	"github.com/automoto/tilerun/shared/leveldata"
	"github.com/automoto/tilerun/shared/sim"
	"github.com/automoto/tilerun/systems"
	"github.com/automoto/tilerun/systems/factory"
	"github.com/yohamta/donburi"
)

// Session is one level and one player driven without a window. It runs the
// same systems as the client, minus input polling and rendering.
type Session struct {
	world  donburi.World
	player *donburi.Entry
	frame  int
}

// Report summarizes a session's state.
type Report struct {
	Level      string        `yaml:"level"`
	Frames     int           `yaml:"frames"`
	State      string        `yaml:"state"`
	Respawns   int           `yaml:"respawns"`
	Generation uint64        `yaml:"generation"`
	Actor      sim.ActorView `yaml:"actor"`
}

func NewSession(grid *leveldata.Grid, name, path string) *Session {
	w := donburi.NewWorld()
	level := factory.CreateLevel(w, grid, name, path)
	world := components.Level.Get(level).World
	factory.CreateSpace(w, world)
	factory.CreateCamera(w)
	player := factory.CreatePlayer(w, world)
	return &Session{world: w, player: player}
}

// World is the session's ECS world.
func (s *Session) World() donburi.World { return s.world }

// Frame is the number of frames stepped so far.
func (s *Session) Frame() int { return s.frame }

// Step feeds one frame of input and runs the simulation systems.
func (s *Session) Step(input [cfg.ActionCount]bool) {
	components.Input.Get(s.player).Advance(input)
	systems.Update(s.world)
	s.frame++
}

// Run plays the whole script.
func (s *Session) Run(script Script) Report {
	for i := 0; ; i++ {
		input, ok := script.At(i)
		if !ok {
			break
		}
		s.Step(input)
	}
	return s.Report()
}

func (s *Session) Report() Report {
	actor := components.Actor.Get(s.player)
	r := Report{
		Frames:   s.frame,
		State:    actor.State.String(),
		Respawns: actor.Respawns,
		Actor:    actor.View(),
	}
	if level, ok := systems.GetLevel(s.world); ok {
		r.Level = level.Name
		r.Generation = level.World.Generation()
	}
	return r
}

// Close stops any level watcher the session started.
func (s *Session) Close() {
	systems.StopReload(s.world)
}
