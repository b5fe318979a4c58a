package factory

import (
	"testing"

	"github.com/automoto/cutball/components"
	cfg "github.com/automoto/cutball/config"
	"github.com/automoto/cutball/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newWorld(t *testing.T, withSpace bool) *ecs.ECS {
	t.Helper()
	ball, swipe := cfg.Ball, cfg.Swipe
	t.Cleanup(func() { cfg.Ball, cfg.Swipe = ball, swipe })

	e := ecs.NewECS(donburi.NewWorld())
	if withSpace {
		CreateSpace(e, cfg.C.Width, cfg.C.Height, 16, 16)
	}
	return e
}

func TestCreateBall(t *testing.T) {
	e := newWorld(t, true)
	cfg.Ball.Width, cfg.Ball.Height = 32, 32
	cfg.Ball.Hitbox = cfg.HitboxCircle
	cfg.Ball.Decorated = true

	ball := CreateBall(e, 88, 128)

	if !ball.HasComponent(tags.Ball) {
		t.Error("expected ball tag")
	}
	obj := components.Object.Get(ball)
	if cx, cy := obj.Center(); cx != 88 || cy != 128 {
		t.Errorf("expected center (88, 128), got (%v, %v)", cx, cy)
	}
	if obj.Space == nil {
		t.Error("expected ball registered in the space")
	}
	if !obj.HasTags(tags.ResolvBall) {
		t.Error("expected resolv ball tag")
	}
	if obj.Data.(*donburi.Entry) != ball {
		t.Error("expected object data to point back at the entry")
	}

	hb := components.Hitbox.Get(ball)
	if hb.Kind != cfg.HitboxCircle || hb.Radius != cfg.Ball.Radius {
		t.Errorf("unexpected hitbox %+v", *hb)
	}
	if sprite := components.Sprite.Get(ball); sprite.Name != "ball" {
		t.Errorf("expected decorated sprite, got %q", sprite.Name)
	}
	if layers := components.Ball.Get(ball).Layers; len(layers) != 1 || layers[0].Sprite != "bean" {
		t.Errorf("expected bean layer, got %+v", layers)
	}
}

func TestCreateBallPlain(t *testing.T) {
	e := newWorld(t, false)
	cfg.Ball.Decorated = false

	ball := CreateBall(e, 10, 10)

	if sprite := components.Sprite.Get(ball); sprite.Name != "" {
		t.Errorf("plain balls draw as shapes, got sprite %q", sprite.Name)
	}
	if components.Object.Get(ball).Space != nil {
		t.Error("no space in this world, ball should not be registered")
	}
}

func TestCreateMarker(t *testing.T) {
	e := newWorld(t, true)
	marker := CreateMarker(e, 20, 30)

	if !marker.HasComponent(tags.Marker) {
		t.Error("expected marker tag")
	}
	if cx, cy := components.Object.Get(marker).Center(); cx != 20 || cy != 30 {
		t.Errorf("expected center (20, 30), got (%v, %v)", cx, cy)
	}
	if components.Object.Get(marker).Space != nil {
		t.Error("markers should stay out of the space")
	}
	life := components.Lifespan.Get(marker)
	if life.Remaining != cfg.Marker.Lifespan || life.Total != cfg.Marker.Lifespan {
		t.Errorf("unexpected lifespan %+v", *life)
	}
	if s := components.Shrink.Get(marker).Scale; s != 1 {
		t.Errorf("expected initial scale 1, got %v", s)
	}
}

func TestCreateCutHalves(t *testing.T) {
	e := newWorld(t, true)
	cfg.Swipe.CutPercent = 0.35

	ball := CreateBall(e, 88, 128)
	top, bottom := CreateCutHalves(e, ball)

	topData := components.CutHalf.Get(top)
	bottomData := components.CutHalf.Get(bottom)
	if !topData.Top || bottomData.Top {
		t.Error("expected exactly the first piece marked as top")
	}
	if topData.From != 0 || topData.To != 0.35 || bottomData.From != 0.35 || bottomData.To != 1 {
		t.Errorf("unexpected split fractions top %v-%v bottom %v-%v",
			topData.From, topData.To, bottomData.From, bottomData.To)
	}
	if topData.Fade == nil || topData.Alpha != 1 {
		t.Error("expected fade tween starting opaque")
	}
	if topData.Spin*bottomData.Spin >= 0 {
		t.Error("halves should spin in opposite directions")
	}
}

func TestSpawnKaboom(t *testing.T) {
	e := newWorld(t, true)
	burst := SpawnKaboom(e, 40, 50)
	if burst == nil {
		t.Fatal("expected burst entity")
	}

	anim := components.Animation.Get(burst)
	if anim.CurrentAnimation == nil {
		t.Fatal("expected animation set")
	}
	if anim.Dir != "sfx" || anim.FrameWidth != 32 {
		t.Errorf("unexpected animation sheet %q %d", anim.Dir, anim.FrameWidth)
	}
	if cx, cy := components.Object.Get(burst).Center(); cx != 40 || cy != 50 {
		t.Errorf("expected center (40, 50), got (%v, %v)", cx, cy)
	}
}

func TestSpawnVFXUnknown(t *testing.T) {
	e := newWorld(t, true)
	if entry := SpawnVFXCentered(e, 0, 0, cfg.StateID(99), 1); entry != nil {
		t.Error("expected nil for unknown effect")
	}
}

func TestCreateStage(t *testing.T) {
	e := newWorld(t, true)

	entry, err := CreateStage(e, "stages/arcade.tmx", true)
	if err != nil {
		t.Fatalf("CreateStage: %v", err)
	}
	stage := components.Stage.Get(entry).Stage
	if stage.SpawnZone == nil {
		t.Error("expected spawn zone")
	}

	var avatar *donburi.Entry
	tags.Decoration.Each(e.World, func(d *donburi.Entry) { avatar = d })
	if avatar == nil {
		t.Fatal("expected avatar decoration")
	}
	if cx, cy := components.Object.Get(avatar).Center(); cx != 32 || cy != 224 {
		t.Errorf("expected avatar centered at (32, 224), got (%v, %v)", cx, cy)
	}
}

func TestCreateStageWithoutAvatar(t *testing.T) {
	e := newWorld(t, true)
	if _, err := CreateStage(e, "stages/arcade.tmx", false); err != nil {
		t.Fatal(err)
	}
	n := 0
	tags.Decoration.Each(e.World, func(*donburi.Entry) { n++ })
	if n != 0 {
		t.Errorf("expected no decorations, got %d", n)
	}
}

func TestCreateStageMissing(t *testing.T) {
	e := newWorld(t, true)
	if _, err := CreateStage(e, "stages/nope.tmx", true); err == nil {
		t.Error("expected error for missing stage")
	}
}
