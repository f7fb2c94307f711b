package systems

import "github.com/yohamta/donburi"

// Simulation lists the per-frame systems shared by the window client and the
// headless runner, in the order they must run. Input is sampled before them.
var Simulation = []func(donburi.World){
	UpdateReload,
	SyncSpace,
	UpdateActors,
	UpdateObjects,
	UpdateCamera,
	UpdateFade,
}

// Update runs every Simulation system once.
func Update(w donburi.World) {
	for _, system := range Simulation {
		system(w)
	}
}
