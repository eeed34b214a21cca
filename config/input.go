package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID is a logical input action. Values index components.ActionSet.
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveUp
	ActionMoveDown
	ActionPause
	ActionMenuUp
	ActionMenuDown
	ActionMenuSelect
	ActionMenuBack
	ActionCount
)

// Binding lists the keys and standard layout gamepad buttons that hold an action.
type Binding struct {
	Keys    []ebiten.Key
	Buttons []ebiten.StandardGamepadButton
}

// InputConfig maps devices to actions.
type InputConfig struct {
	Bindings map[ActionID]Binding

	// The left stick holds StickUp / StickDown past StickDeadzone.
	StickDeadzone float64
	StickUp       []ActionID
	StickDown     []ActionID
}

var Input InputConfig

func init() {
	up := Binding{
		Keys:    []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
		Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftTop},
	}
	down := Binding{
		Keys:    []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
		Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftBottom},
	}

	Input = InputConfig{
		StickDeadzone: 0.25,
		StickUp:       []ActionID{ActionMoveUp, ActionMenuUp},
		StickDown:     []ActionID{ActionMoveDown, ActionMenuDown},
		Bindings: map[ActionID]Binding{
			ActionMoveUp:   up,
			ActionMenuUp:   up,
			ActionMoveDown: down,
			ActionMenuDown: down,
			ActionPause: {
				Keys:    []ebiten.Key{ebiten.KeyEscape, ebiten.KeyP},
				Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterRight}, // Start / Options
			},
			ActionMenuSelect: {
				Keys:    []ebiten.Key{ebiten.KeyEnter, ebiten.KeySpace},
				Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom}, // A / Cross
			},
			ActionMenuBack: {
				Keys:    []ebiten.Key{ebiten.KeyBackspace},
				Buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightRight}, // B / Circle
			},
		},
	}
}
