package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/cutball/assets"
	cfg "github.com/automoto/cutball/config"
	"github.com/automoto/cutball/systems"
	"github.com/automoto/cutball/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ArcadeScene runs the falling-ball game for the current variant
type ArcadeScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
}

// NewArcadeScene creates a new arcade scene
func NewArcadeScene(sc SceneChanger) *ArcadeScene {
	return &ArcadeScene{sceneChanger: sc}
}

func (as *ArcadeScene) Update() {
	as.once.Do(as.configure)
	as.ecs.Update()

	if pause := systems.GetOrCreatePause(as.ecs); pause.QuitToTitle {
		as.sceneChanger.ChangeScene(NewTitleScene(as.sceneChanger))
	}
}

func (as *ArcadeScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if as.ecs == nil {
		return
	}
	as.ecs.Draw(screen)
}

func (as *ArcadeScene) configure() {
	// Preload assets to avoid lag on first use (important for WASM)
	systems.PreloadAllSFX()
	assets.PreloadAllAnimations()

	as.ecs = NewArcadeECS()
	as.ecs.AddRenderer(cfg.Default, systems.DrawStage)
	as.ecs.AddRenderer(cfg.Default, systems.DrawDecorations)
	as.ecs.AddRenderer(cfg.Default, systems.DrawBalls)
	as.ecs.AddRenderer(cfg.Default, systems.DrawCutHalves)
	as.ecs.AddRenderer(cfg.Default, systems.DrawAnimated)
	as.ecs.AddRenderer(cfg.Default, systems.DrawMarkers)
	as.ecs.AddRenderer(cfg.Default, systems.DrawInspect)
	as.ecs.AddRenderer(cfg.HUD, systems.DrawHUD)
	as.ecs.AddRenderer(cfg.HUD, systems.DrawPause)
}

// NewArcadeECS builds the arcade world and its update systems without
// renderers, so the simulation can be stepped headless.
func NewArcadeECS() *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())

	// Audio system (runs first, even when paused for menu sounds)
	e.AddSystem(systems.UpdateAudio)

	// Systems that always run
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdatePause)
	e.AddSystem(systems.UpdateInspect)

	// Gameplay systems are frozen while paused
	e.AddSystem(systems.WithGameplayChecks(systems.UpdatePointer))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateSwipe))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateSpawner))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdatePhysics))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateObjects))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateOffscreen))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateLifespans))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateEffects))

	factory.CreateSpace(e, cfg.C.Width, cfg.C.Height, cfg.Physics.SpaceCellWidth, cfg.Physics.SpaceCellHeight)

	if cfg.Stage.Background || cfg.Stage.Avatar {
		if _, err := factory.CreateStage(e, cfg.Stage.Path, cfg.Stage.Avatar); err != nil {
			log.Printf("Warning: Could not load stage %s: %v", cfg.Stage.Path, err)
		}
	}

	if cfg.Ball.Static {
		// The first prototype cuts a single resting ball in the middle of the screen
		factory.CreateBall(e, float64(cfg.C.Width)/2, float64(cfg.C.Height)/2)
	}

	return e
}
