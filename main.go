package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/cutball/config"
	"github.com/automoto/cutball/fonts"
	"github.com/automoto/cutball/scenes"
	"github.com/automoto/cutball/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewArcadeScene(g)
	} else {
		g.scene = scenes.NewTitleScene(g)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

// windowScale returns the largest integer scale that fits the monitor
func windowScale() int {
	mw, mh := ebiten.Monitor().Size()
	scale := min(mw/config.C.Width, mh/config.C.Height)
	return max(scale, 1)
}

func main() {
	variant := flag.String("variant", "", "prototype variant: rect, circle, pointer or polish")
	inspect := flag.Bool("inspect", false, "draw the attack ray, hitboxes and counters")
	skipMenu := flag.Bool("skip-menu", false, "start the arcade without the title screen")
	configPath := flag.String("config", "", "YAML file with configuration overrides")
	mute := flag.Bool("mute", false, "start with sound effects muted")
	flag.Parse()

	if err := config.Load(config.VariantID(*variant), *configPath); err != nil {
		log.Fatal(err)
	}
	config.Debug.Inspect = config.Debug.Inspect || *inspect
	config.Debug.SkipMenu = *skipMenu
	if *mute {
		systems.SetSFXVolume(0)
	}

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	scale := windowScale()
	ebiten.SetWindowSize(config.C.Width*scale, config.C.Height*scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetTPS(config.C.TPS)

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
