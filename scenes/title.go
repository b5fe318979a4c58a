package scenes

import (
	"image/color"
	"log"
	"os"
	"sync"

	"github.com/automoto/cutball/components"
	"github.com/automoto/cutball/systems"
	"github.com/automoto/cutball/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// TitleScene lets the player pick a variant before starting the arcade
type TitleScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	menu         *components.MenuData
	ui           *ui.TitleUI
	once         sync.Once
}

// NewTitleScene creates a new title scene
func NewTitleScene(sc SceneChanger) *TitleScene {
	return &TitleScene{sceneChanger: sc}
}

func (ts *TitleScene) Update() {
	ts.once.Do(ts.configure)
	ts.ecs.Update()
	if ts.ui != nil {
		ts.ui.Update()
	}

	if ts.menu.ExitRequested {
		os.Exit(0)
	}
	if ts.menu.StartRequested {
		ts.sceneChanger.ChangeScene(NewArcadeScene(ts.sceneChanger))
	}
}

func (ts *TitleScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ts.ui != nil {
		ts.ui.UI.Draw(screen)
	}
}

func (ts *TitleScene) configure() {
	ts.ecs = ecs.NewECS(donburi.NewWorld())

	// Audio system (runs first to initialize audio context)
	ts.ecs.AddSystem(systems.UpdateAudio)
	ts.ecs.AddSystem(systems.UpdateInput)
	ts.ecs.AddSystem(systems.UpdateTitle)

	// Prime the input state so a key still held from the pause menu does not
	// count as a fresh press on the first frame.
	systems.UpdateInput(ts.ecs)

	ts.menu = systems.GetOrCreateMenu(ts.ecs)

	titleUI, err := ui.NewTitleUI(ts.menu,
		func() { systems.RequestStart(ts.ecs, ts.menu) },
		func() { systems.CycleVariant(ts.ecs, ts.menu) },
		func() { systems.ToggleInspect(ts.menu) },
		func() { ts.menu.ExitRequested = true },
	)
	if err != nil {
		log.Printf("Warning: Could not build title UI: %v", err)
		return
	}
	ts.ui = titleUI
}
