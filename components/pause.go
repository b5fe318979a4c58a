package components

import "github.com/yohamta/donburi"

// PauseMenuOption represents menu items in the pause menu
type PauseMenuOption int

const (
	MenuResume PauseMenuOption = iota
	MenuTitle
	MenuExit
)

// PauseData stores the pause state and menu selection
type PauseData struct {
	IsPaused       bool
	SelectedOption PauseMenuOption
	// QuitToTitle is set when the player picks Title; the scene consumes it.
	QuitToTitle bool
}

var Pause = donburi.NewComponentType[PauseData]()
