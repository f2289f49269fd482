package components

import "github.com/yohamta/donburi"

// PauseMenuOption represents menu items in the pause menu
type PauseMenuOption int

const (
	MenuResume PauseMenuOption = iota
	MenuSettings
	MenuMainMenu
)

// PauseData stores the pause state and menu selection
type PauseData struct {
	IsPaused       bool
	SelectedOption PauseMenuOption
	ToMainMenu     bool // set when the player picks Main Menu; the scene acts on it
}

var Pause = donburi.NewComponentType[PauseData]()
