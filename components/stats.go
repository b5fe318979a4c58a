package components

import "github.com/yohamta/donburi"

// StatsData counts what happened to balls this session.
type StatsData struct {
	Spawned int
	Hits    int
	Misses  int
	Swipes  int
}

var Stats = donburi.NewComponentType[StatsData]()
