package systems

import (
	"image"
	"image/color"

	"github.com/automoto/cutball/assets"
	"github.com/automoto/cutball/components"
	cfg "github.com/automoto/cutball/config"
	"github.com/automoto/cutball/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// DrawStage clears the screen and draws the stage background when enabled.
func DrawStage(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.UI.BackgroundColor)

	if !cfg.Stage.Background {
		return
	}
	entry, ok := components.Stage.First(ecs.World)
	if !ok {
		return
	}
	stage := components.Stage.Get(entry).Stage
	if stage == nil || stage.Background == "" {
		return
	}

	bg := assets.GetImage(stage.Background)
	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Scale(
		float64(screen.Bounds().Dx())/float64(bg.Bounds().Dx()),
		float64(screen.Bounds().Dy())/float64(bg.Bounds().Dy()),
	)
	screen.DrawImage(bg, drawOp)
}

// DrawDecorations renders static sprites such as the avatar.
func DrawDecorations(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Decoration.Each(ecs.World, func(e *donburi.Entry) {
		deco := components.Decoration.Get(e)
		o := components.Object.Get(e)
		cx, cy := o.Center()
		drawSpriteCentered(screen, assets.GetSprite(deco.Sprite), cx, cy, o.W, o.H, 0, 1)
	})
}

// DrawBalls renders each ball as its sprite plus decoration layers, or as a
// plain shape matching its hitbox when it has no sprite.
func DrawBalls(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Ball.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		sprite := components.Sprite.Get(e)
		cx, cy := o.Center()

		if sprite.Name == "" {
			hb := components.Hitbox.Get(e)
			if hb.Kind == cfg.HitboxRect {
				vector.FillRect(screen, float32(cx-hb.Width/2), float32(cy-hb.Height/2),
					float32(hb.Width), float32(hb.Height), cfg.UI.ObjectColor, false)
			} else {
				vector.FillCircle(screen, float32(cx), float32(cy), float32(hb.Radius), cfg.UI.ObjectColor, true)
			}
			return
		}

		drawSpriteCentered(screen, assets.GetSprite(sprite.Name), cx, cy, o.W, o.H, sprite.Rotation, sprite.Alpha)

		ball := components.Ball.Get(e)
		for _, layer := range ball.Layers {
			drawSpriteCentered(screen, assets.GetSprite(layer.Sprite), cx, cy,
				o.W*layer.Scale, o.H*layer.Scale, layer.Rotation, 1)
		}
	})
}

// DrawCutHalves renders the fading pieces of cut balls.
func DrawCutHalves(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.CutHalf.Each(ecs.World, func(e *donburi.Entry) {
		half := components.CutHalf.Get(e)
		o := components.Object.Get(e)
		cx, cy := o.Center()

		if half.Sprite == "" {
			c := fadeColor(cfg.UI.ObjectColor, half.Alpha)
			vector.FillRect(screen, float32(o.X), float32(o.Y), float32(o.W), float32(o.H), c, false)
			return
		}

		full := assets.GetSprite(half.Sprite)
		h := full.Bounds().Dy()
		top := int(half.From * float64(h))
		bottom := int(half.To * float64(h))
		if bottom <= top {
			return
		}
		drawSpriteCentered(screen, assets.GetSlice(half.Sprite, top, bottom), cx, cy, o.W, o.H, half.Rotation, half.Alpha)
	})
}

// DrawMarkers renders hit markers as shrinking circles.
func DrawMarkers(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Marker.Each(ecs.World, func(e *donburi.Entry) {
		shrink := components.Shrink.Get(e)
		if shrink.Scale <= 0 {
			return
		}
		o := components.Object.Get(e)
		cx, cy := o.Center()
		r := cfg.Marker.Radius * shrink.Scale
		vector.FillCircle(screen, float32(cx), float32(cy), float32(r), cfg.Marker.Color, true)
	})
}

// DrawAnimated renders VFX entities from their current animation frame.
func DrawAnimated(ecs *ecs.ECS, screen *ebiten.Image) {
	components.Animation.Each(ecs.World, func(e *donburi.Entry) {
		animData := components.Animation.Get(e)
		if animData.CurrentAnimation == nil {
			return
		}
		o := components.Object.Get(e)

		frame := animData.CurrentAnimation.Frame()
		sx := frame * animData.FrameWidth
		srcRect := image.Rect(sx, 0, sx+animData.FrameWidth, animData.FrameHeight)
		img := assets.GetFrame(animData.Dir, animData.CurrentSheet, frame, srcRect)

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()

		// anchor at center of sprite
		drawOp.GeoM.Translate(-float64(animData.FrameWidth)/2, -float64(animData.FrameHeight)/2)
		if e.HasComponent(components.VFXScale) {
			s := components.VFXScale.Get(e).Scale
			drawOp.GeoM.Scale(s, s)
		}
		cx, cy := o.Center()
		drawOp.GeoM.Translate(cx, cy)

		screen.DrawImage(img, drawOp)
	})
}

// drawSpriteCentered draws img scaled to w×h, rotated about its center, with
// its center at (cx, cy).
func drawSpriteCentered(screen, img *ebiten.Image, cx, cy, w, h, rotation float64, alpha float32) {
	iw, ih := float64(img.Bounds().Dx()), float64(img.Bounds().Dy())
	if iw == 0 || ih == 0 {
		return
	}

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Translate(-iw/2, -ih/2)
	drawOp.GeoM.Scale(w/iw, h/ih)
	drawOp.GeoM.Rotate(rotation)
	drawOp.GeoM.Translate(cx, cy)
	if alpha < 1 {
		drawOp.ColorScale.ScaleAlpha(alpha)
	}
	screen.DrawImage(img, drawOp)
}

// fadeColor scales every channel of a premultiplied color by a.
func fadeColor(c color.RGBA, a float32) color.RGBA {
	return color.RGBA{
		R: uint8(float32(c.R) * a),
		G: uint8(float32(c.G) * a),
		B: uint8(float32(c.B) * a),
		A: uint8(float32(c.A) * a),
	}
}
