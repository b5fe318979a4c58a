package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	_ "image/png"
	"path"

	"github.com/automoto/cutball/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/lafriks/go-tiled"
)

var (
	//go:embed all:stages
	stageFS embed.FS

	//go:embed all:images
	imageFS embed.FS
)

// Rect is an axis-aligned area read from a stage object.
type Rect struct {
	X, Y, Width, Height float64
}

// Stage is the decorative layout of the arcade screen.
type Stage struct {
	Name   string
	Width  int
	Height int

	// Background is the embedded image path of the first rendered image layer.
	Background string

	Avatar    bool
	AvatarX   float64
	AvatarY   float64
	SpawnZone *Rect
}

type StageLoader struct{}

func NewStageLoader() *StageLoader {
	return &StageLoader{}
}

// LoadStage parses a Tiled map from the embedded stages directory.
func (l *StageLoader) LoadStage(stagePath string) (*Stage, error) {
	stageMap, err := tiled.LoadFile(stagePath, tiled.WithFileSystem(stageFS))
	if err != nil {
		return nil, fmt.Errorf("failed to load stage %s: %w", stagePath, err)
	}

	stage := &Stage{
		Name:   stagePath,
		Width:  stageMap.Width * stageMap.TileWidth,
		Height: stageMap.Height * stageMap.TileHeight,
	}

	for _, og := range stageMap.ObjectGroups {
		switch og.Name {
		case "Avatar":
			if len(og.Objects) > 0 {
				o := og.Objects[0]
				stage.Avatar = true
				stage.AvatarX = o.X
				stage.AvatarY = o.Y
			}
		case "SpawnZone":
			if len(og.Objects) > 0 {
				o := og.Objects[0]
				stage.SpawnZone = &Rect{X: o.X, Y: o.Y, Width: o.Width, Height: o.Height}
			}
		}
	}

	for _, imgLayer := range stageMap.ImageLayers {
		if !imgLayer.Properties.GetBool("render") || imgLayer.Image == nil {
			continue
		}
		// image sources are relative to the stage file; images live in their own embed
		stage.Background = path.Join(path.Dir(stagePath), imgLayer.Image.Source)
		break
	}

	return stage, nil
}

// MustLoadStage is LoadStage for embedded stages that are known to exist.
func (l *StageLoader) MustLoadStage(stagePath string) *Stage {
	stage, err := l.LoadStage(stagePath)
	if err != nil {
		panic(err)
	}
	return stage
}

type ImageLoader struct {
	cache      map[string]*ebiten.Image
	frameCache map[string]*ebiten.Image
}

func NewImageLoader() *ImageLoader {
	return &ImageLoader{
		cache:      make(map[string]*ebiten.Image),
		frameCache: make(map[string]*ebiten.Image),
	}
}

func (l *ImageLoader) MustLoadImage(path string) *ebiten.Image {
	if img, ok := l.cache[path]; ok {
		return img
	}

	imgBytes, err := imageFS.ReadFile(path)
	if err != nil {
		panic(fmt.Sprintf("Failed to read image file %s: %v", path, err))
	}

	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(imgBytes))
	if err != nil {
		panic(fmt.Sprintf("Failed to create image from bytes for %s: %v", path, err))
	}

	l.cache[path] = img

	return img
}

// GetFrame returns a cached sub-image for a specific animation frame.
// This prevents creating thousands of duplicate *ebiten.Image structs for the same frame.
func (l *ImageLoader) GetFrame(dir string, state config.StateID, frameIndex int, srcRect image.Rectangle) *ebiten.Image {
	key := fmt.Sprintf("%s/%s/%d", dir, state.String(), frameIndex)
	if img, ok := l.frameCache[key]; ok {
		return img
	}

	sheet := l.MustLoadImage(sheetPath(dir, state))

	frame := sheet.SubImage(srcRect).(*ebiten.Image)
	l.frameCache[key] = frame

	return frame
}

// GetSlice returns a cached horizontal band of a sprite, rows [top, bottom).
func (l *ImageLoader) GetSlice(name string, top, bottom int) *ebiten.Image {
	key := fmt.Sprintf("%s#%d-%d", name, top, bottom)
	if img, ok := l.frameCache[key]; ok {
		return img
	}

	sprite := l.MustLoadImage(spritePath(name))
	w := sprite.Bounds().Dx()
	slice := sprite.SubImage(image.Rect(0, top, w, bottom)).(*ebiten.Image)
	l.frameCache[key] = slice

	return slice
}

var (
	imageLoader = NewImageLoader()
)

func spritePath(name string) string {
	return fmt.Sprintf("images/sprites/%s.png", name)
}

func sheetPath(dir string, state config.StateID) string {
	return fmt.Sprintf("images/spritesheets/%s/%s.png", dir, state.String())
}

// GetSprite returns a sprite from images/sprites by base name.
func GetSprite(name string) *ebiten.Image {
	return imageLoader.MustLoadImage(spritePath(name))
}

// GetImage returns an embedded image by its full path.
func GetImage(path string) *ebiten.Image {
	return imageLoader.MustLoadImage(path)
}

func GetSlice(name string, top, bottom int) *ebiten.Image {
	return imageLoader.GetSlice(name, top, bottom)
}

func GetFrame(dir string, state config.StateID, frameIndex int, srcRect image.Rectangle) *ebiten.Image {
	return imageLoader.GetFrame(dir, state, frameIndex, srcRect)
}

func GetSheet(dir string, state config.StateID) *ebiten.Image {
	return imageLoader.MustLoadImage(sheetPath(dir, state))
}

// SpriteSize reads a sprite's dimensions from its PNG header without
// creating a GPU image.
func SpriteSize(name string) (int, int, error) {
	data, err := imageFS.ReadFile(spritePath(name))
	if err != nil {
		return 0, 0, fmt.Errorf("failed to read sprite %s: %w", name, err)
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0, fmt.Errorf("failed to decode sprite %s: %w", name, err)
	}
	return cfg.Width, cfg.Height, nil
}

// PreloadAllAnimations preloads all sprite sheets and frames to avoid lag on first render.
func PreloadAllAnimations() {
	for state, size := range config.VFXFrameSizes {
		dir := config.VFXDirs[state]
		def, ok := config.SheetAnimations[dir][state]
		if !ok {
			continue
		}

		_ = GetSheet(dir, state)

		step := def.Step
		if step <= 0 {
			step = 1
		}
		for i := def.First; i <= def.Last; i += step {
			sx := i * size.W
			srcRect := image.Rect(sx, 0, sx+size.W, size.H)
			_ = GetFrame(dir, state, i, srcRect)
		}
	}

	for _, name := range []string{"ball", "bean", "avatar"} {
		_ = GetSprite(name)
	}
}
