package components

import "github.com/yohamta/donburi"

// PauseOption is an entry of the pause menu, in display order.
type PauseOption int

const (
	PauseResume PauseOption = iota
	PauseLeave              // back to the map without recording progress
	PauseQuit
	pauseOptionCount
)

// Step moves delta entries through the menu, wrapping at both ends.
func (o PauseOption) Step(delta int) PauseOption {
	n := int(pauseOptionCount)
	return PauseOption(((int(o)+delta)%n + n) % n)
}

// PauseData is the pause overlay of the running scene.
type PauseData struct {
	Open   bool
	Cursor PauseOption
}

var Pause = donburi.NewComponentType[PauseData]()
