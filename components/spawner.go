package components

import (
	"math/rand/v2"

	"github.com/yohamta/donburi"
)

// SpawnerData is the singleton repeating ball timer.
type SpawnerData struct {
	Elapsed float64 // seconds since the last spawn
	Count   int     // balls spawned so far
	Rand    *rand.Rand
}

var Spawner = donburi.NewComponentType[SpawnerData]()
