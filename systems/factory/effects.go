package factory

import (
	"github.com/automoto/cutball/archetypes"
	"github.com/automoto/cutball/assets/animations"
	"github.com/automoto/cutball/components"
	cfg "github.com/automoto/cutball/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SpawnVFXCentered creates a visual effect centered at the given position.
// Frames are resolved at draw time, so no images are touched here.
func SpawnVFXCentered(ecs *ecs.ECS, x, y float64, effectType cfg.StateID, scale float64) *donburi.Entry {
	size, ok := cfg.VFXFrameSizes[effectType]
	if !ok {
		return nil
	}
	dir := cfg.VFXDirs[effectType]

	animData := createVFXAnimation(dir, effectType, size.W, size.H)
	if animData == nil {
		return nil
	}

	var entry *donburi.Entry
	if scale != 1.0 {
		entry = archetypes.VFXEffect.Spawn(ecs, components.VFXScale)
		components.VFXScale.Set(entry, &components.VFXScaleData{Scale: scale})
	} else {
		entry = archetypes.VFXEffect.Spawn(ecs)
	}

	obj := resolv.NewObject(x-float64(size.W)/2, y-float64(size.H)/2, float64(size.W), float64(size.H))
	obj.Data = entry
	components.Object.Set(entry, &components.ObjectData{Object: obj})

	components.Animation.Set(entry, animData)
	animData.SetAnimation(effectType)

	components.AutoDestroy.Set(entry, &components.AutoDestroyData{
		FramesRemaining:   -1,
		DestroyOnAnimLoop: true,
	})

	return entry
}

// SpawnKaboom spawns the burst effect shown when a ball is cut.
func SpawnKaboom(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	return SpawnVFXCentered(ecs, x, y, cfg.StateKaboom, 1.0)
}

func createVFXAnimation(dir string, effectType cfg.StateID, frameWidth, frameHeight int) *components.AnimationData {
	def, ok := cfg.SheetAnimations[dir][effectType]
	if !ok {
		return nil
	}

	return &components.AnimationData{
		Animations: map[cfg.StateID]*animations.Animation{
			effectType: animations.FromDef(def),
		},
		Dir:          dir,
		FrameWidth:   frameWidth,
		FrameHeight:  frameHeight,
		CurrentSheet: cfg.StateNone,
	}
}
