package components

import (
	cfg "github.com/automoto/cutball/config"
	"github.com/yohamta/donburi"
)

// MenuData stores the title screen selections
type MenuData struct {
	Variant        cfg.VariantID
	Inspect        bool
	StartRequested bool
	ExitRequested  bool
}

// Menu is the component type for title screen state
var Menu = donburi.NewComponentType[MenuData]()
