package systems

import (
	"math/rand/v2"
	"time"

	"github.com/automoto/cutball/components"
	cfg "github.com/automoto/cutball/config"
	"github.com/automoto/cutball/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSpawner advances the repeating spawn timer by one tick and spawns a
// ball for every full interval that elapsed.
func UpdateSpawner(ecs *ecs.ECS) {
	spawner := GetOrCreateSpawner(ecs)
	spawner.Elapsed += cfg.DT()

	// tolerance absorbs rounding from summing fixed ticks
	for spawner.Elapsed+1e-9 >= cfg.Spawner.Interval {
		spawner.Elapsed -= cfg.Spawner.Interval
		SpawnBall(ecs)
	}
}

// SpawnBall creates one ball at a random spawn point and gives it an upward
// jump.
func SpawnBall(ecs *ecs.ECS) *donburi.Entry {
	spawner := GetOrCreateSpawner(ecs)
	x, y := SpawnPosition(spawner.Rand, stageSpawnZone(ecs))

	ball := factory.CreateBall(ecs, x, y)
	Jump(ball, cfg.Ball.JumpForce)

	spawner.Count++
	GetOrCreateStats(ecs).Spawned++
	return ball
}

// SpawnPosition picks a ball center. x is uniform within one ball width of
// either edge; y comes from the stage spawn zone when there is one, else
// from mid-screen plus or minus the configured jitter.
func SpawnPosition(rng *rand.Rand, zone *spawnZone) (float64, float64) {
	margin := cfg.Ball.Width
	x := margin + rng.Float64()*(float64(cfg.C.Width)-2*margin)

	var y float64
	if zone != nil {
		y = zone.top + rng.Float64()*(zone.bottom-zone.top)
	} else {
		mid := float64(cfg.C.Height) / 2
		y = mid + (rng.Float64()*2-1)*cfg.Spawner.YJitter
	}
	return x, y
}

type spawnZone struct {
	top, bottom float64
}

func stageSpawnZone(ecs *ecs.ECS) *spawnZone {
	entry, ok := components.Stage.First(ecs.World)
	if !ok {
		return nil
	}
	stage := components.Stage.Get(entry).Stage
	if stage == nil || stage.SpawnZone == nil {
		return nil
	}
	return &spawnZone{
		top:    stage.SpawnZone.Y,
		bottom: stage.SpawnZone.Y + stage.SpawnZone.Height,
	}
}

// Jump applies an upward impulse to a dynamic body.
func Jump(e *donburi.Entry, force float64) {
	body := components.Body.Get(e)
	if body.Static {
		return
	}
	body.VelY = -force
}

// NewRand returns the spawner's random source. A zero seed draws from the clock.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// GetOrCreateSpawner returns the singleton Spawner component, creating it if needed
func GetOrCreateSpawner(ecs *ecs.ECS) *components.SpawnerData {
	entry, ok := components.Spawner.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Spawner))
		components.Spawner.SetValue(entry, components.SpawnerData{
			Rand: NewRand(cfg.Spawner.Seed),
		})
	}
	return components.Spawner.Get(entry)
}

// GetOrCreateStats returns the singleton Stats component, creating it if needed
func GetOrCreateStats(ecs *ecs.ECS) *components.StatsData {
	entry, ok := components.Stats.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Stats))
	}
	return components.Stats.Get(entry)
}
