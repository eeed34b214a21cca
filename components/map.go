package components

import "github.com/yohamta/donburi"

// MapData is the state of the level select screen.
type MapData struct {
	SelectedIndex int
	Unlocked      int // highest playable level
	Completed     bool
}

var Map = donburi.NewComponentType[MapData]()
