package factory

import (
	"github.com/automoto/cutball/archetypes"
	"github.com/automoto/cutball/components"
	cfg "github.com/automoto/cutball/config"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCutHalves splits a ball at cfg.Swipe.CutPercent of its height into
// two pieces that drift apart and fade out.
func CreateCutHalves(ecs *ecs.ECS, ball *donburi.Entry) (top, bottom *donburi.Entry) {
	obj := components.Object.Get(ball)
	body := components.Body.Get(ball)
	sprite := components.Sprite.Get(ball)

	cut := cfg.Swipe.CutPercent
	topH := obj.H * cut

	top = createCutHalf(ecs, obj.X, obj.Y, obj.W, topH, components.CutHalfData{
		Sprite: sprite.Name,
		Top:    true,
		From:   0,
		To:     cut,
		Spin:   -cfg.CutHalf.SpinSpeed,
	}, body.VelX-cfg.CutHalf.SplitSpeed, body.VelY-cfg.CutHalf.SplitSpeed)

	bottom = createCutHalf(ecs, obj.X, obj.Y+topH, obj.W, obj.H-topH, components.CutHalfData{
		Sprite: sprite.Name,
		From:   cut,
		To:     1,
		Spin:   cfg.CutHalf.SpinSpeed,
	}, body.VelX+cfg.CutHalf.SplitSpeed, body.VelY)

	return top, bottom
}

func createCutHalf(ecs *ecs.ECS, x, y, w, h float64, data components.CutHalfData, velX, velY float64) *donburi.Entry {
	half := archetypes.CutHalf.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h)
	obj.Data = half
	components.Object.Set(half, &components.ObjectData{Object: obj})

	data.Alpha = 1
	data.Fade = gween.New(1, 0, float32(cfg.CutHalf.Duration), ease.OutQuad)
	components.CutHalf.SetValue(half, data)

	components.Body.SetValue(half, components.BodyData{
		VelX:        velX,
		VelY:        velY,
		GravityMult: cfg.CutHalf.GravityMult,
		MaxFall:     cfg.Physics.MaxFallSpeed,
	})

	return half
}
