package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Block  = donburi.NewTag().SetName("Block")
)

// Resolv tags for the collision space mirror
const (
	ResolvSolid   = "solid"
	ResolvRamp    = "ramp"
	ResolvCeiling = "ceiling"
	ResolvIcy     = "icy"
	ResolvDecor   = "decor"
	ResolvSpawn   = "spawn"
	ResolvPlayer  = "Player"
)
