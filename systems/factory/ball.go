package factory

import (
	"github.com/automoto/cutball/archetypes"
	"github.com/automoto/cutball/components"
	cfg "github.com/automoto/cutball/config"
	"github.com/automoto/cutball/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBall spawns a ball centered at (x, y) and registers it in the space.
func CreateBall(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	ball := archetypes.Ball.Spawn(ecs)

	w, h := cfg.Ball.Width, cfg.Ball.Height
	obj := resolv.NewObject(x-w/2, y-h/2, w, h, tags.ResolvBall)
	obj.Data = ball
	addToSpace(ecs, obj)
	components.Object.Set(ball, &components.ObjectData{Object: obj})

	components.Hitbox.SetValue(ball, components.HitboxData{
		Kind:    cfg.Ball.Hitbox,
		Width:   w,
		Height:  h,
		Radius:  cfg.Ball.Radius,
		Padding: cfg.Ball.CollisionPadding,
	})

	components.Body.SetValue(ball, components.BodyData{
		GravityMult: 1,
		MaxFall:     cfg.Physics.MaxFallSpeed,
		Static:      cfg.Ball.Static,
	})

	ballData := components.BallData{Spin: cfg.Ball.SpinSpeed}
	sprite := components.SpriteData{Alpha: 1}
	if cfg.Ball.Decorated {
		sprite.Name = "ball"
		ballData.Layers = []components.BallLayer{
			{Sprite: "bean", Scale: 0.8, SpinDir: 1},
		}
	}
	components.Sprite.SetValue(ball, sprite)
	components.Ball.SetValue(ball, ballData)

	return ball
}
