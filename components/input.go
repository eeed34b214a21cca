package components

import (
	cfg "github.com/automoto/muffinattack/config"
	"github.com/yohamta/donburi"
)

// InputDevice is the kind of device that produced the latest input. Hints
// are worded for it.
type InputDevice int

const (
	DeviceKeyboard InputDevice = iota
	DeviceXbox
	DevicePlayStation
)

// ActionSet is a bitset of held actions.
type ActionSet uint32

func (s ActionSet) Has(id cfg.ActionID) bool {
	return s&(1<<uint(id)) != 0
}

func (s *ActionSet) Add(id cfg.ActionID) {
	*s |= 1 << uint(id)
}

// InputData holds this frame's and the previous frame's actions.
type InputData struct {
	Held     ActionSet
	PrevHeld ActionSet
	Device   InputDevice
}

// Advance starts a new frame with nothing held.
func (in *InputData) Advance() {
	in.PrevHeld = in.Held
	in.Held = 0
}

// Pressed reports whether id is held this frame.
func (in *InputData) Pressed(id cfg.ActionID) bool {
	return in.Held.Has(id)
}

// JustPressed reports whether id went down this frame.
func (in *InputData) JustPressed(id cfg.ActionID) bool {
	return in.Held.Has(id) && !in.PrevHeld.Has(id)
}

var Input = donburi.NewComponentType[InputData]()
