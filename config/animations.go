package config

type AnimationDef struct {
	First int
	Last  int
	Step  int
	Speed float32
}

// VFXFrameSize is the pixel size of one frame in a VFX sheet
type VFXFrameSize struct {
	W, H int
}

// SheetAnimations maps a sprite sheet directory (e.g., "sfx")
// to its specific set of animation definitions.
var SheetAnimations = map[string]map[StateID]AnimationDef{
	"sfx": {
		StateKaboom: {First: 0, Last: 7, Step: 1, Speed: 2}, // 32x32 frames
	},
}

// VFXFrameSizes holds frame dimensions per effect
var VFXFrameSizes = map[StateID]VFXFrameSize{
	StateKaboom: {32, 32},
}

// VFXDirs holds the sheet directory per effect
var VFXDirs = map[StateID]string{
	StateKaboom: "sfx",
}
