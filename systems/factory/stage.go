package factory

import (
	"fmt"

	"github.com/automoto/cutball/archetypes"
	"github.com/automoto/cutball/assets"
	"github.com/automoto/cutball/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateStage loads the stage layout and spawns its avatar when enabled.
func CreateStage(ecs *ecs.ECS, stagePath string, withAvatar bool) (*donburi.Entry, error) {
	stage, err := assets.NewStageLoader().LoadStage(stagePath)
	if err != nil {
		return nil, err
	}

	entry := archetypes.Stage.Spawn(ecs)
	components.Stage.SetValue(entry, components.StageData{Stage: stage})

	if withAvatar && stage.Avatar {
		if _, err := CreateDecoration(ecs, "avatar", stage.AvatarX, stage.AvatarY, 0); err != nil {
			return entry, err
		}
	}

	return entry, nil
}

// CreateDecoration spawns a static sprite centered at (x, y).
func CreateDecoration(ecs *ecs.ECS, sprite string, x, y float64, z int) (*donburi.Entry, error) {
	w, h, err := assets.SpriteSize(sprite)
	if err != nil {
		return nil, fmt.Errorf("failed to create decoration: %w", err)
	}

	entry := archetypes.Decoration.Spawn(ecs)
	obj := resolv.NewObject(x-float64(w)/2, y-float64(h)/2, float64(w), float64(h))
	obj.Data = entry
	components.Object.Set(entry, &components.ObjectData{Object: obj})
	components.Decoration.SetValue(entry, components.DecorationData{Sprite: sprite, Z: z})

	return entry, nil
}
