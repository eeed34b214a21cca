package systems

import (
	"strings"

	"github.com/automoto/muffinattack/components"
	cfg "github.com/automoto/muffinattack/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reused every frame
var gamepadIDs []ebiten.GamepadID

// Gamepad names are only looked up once per id.
var gamepadDevices = map[ebiten.GamepadID]components.InputDevice{}

var playStationNames = []string{"playstation", "dualshock", "dualsense", "ps4", "ps5"}

// UpdateInput polls the keyboard and every standard layout gamepad into the
// Input component. It runs before every system that reads actions.
func UpdateInput(e *ecs.ECS) {
	input := getOrCreateInput(e)
	input.Advance()

	keyboard := pollKeyboard(&input.Held)
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
	gamepad, ok := pollGamepads(&input.Held, gamepadIDs)

	switch {
	case ok:
		input.Device = gamepadDevice(gamepad)
	case keyboard:
		input.Device = components.DeviceKeyboard
	}
}

func pollKeyboard(held *components.ActionSet) (used bool) {
	for id, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				held.Add(id)
				used = true
			}
		}
	}
	return used
}

// pollGamepads adds the buttons and the left stick of every gamepad and
// returns the last one that held anything.
func pollGamepads(held *components.ActionSet, ids []ebiten.GamepadID) (last ebiten.GamepadID, used bool) {
	for _, gp := range ids {
		if !ebiten.IsStandardGamepadLayoutAvailable(gp) {
			continue
		}
		for id, binding := range cfg.Input.Bindings {
			for _, btn := range binding.Buttons {
				if ebiten.IsStandardGamepadButtonPressed(gp, btn) {
					held.Add(id)
					last, used = gp, true
				}
			}
		}

		var stick []cfg.ActionID
		switch v := ebiten.StandardGamepadAxisValue(gp, ebiten.StandardGamepadAxisLeftStickVertical); {
		case v < -cfg.Input.StickDeadzone:
			stick = cfg.Input.StickUp
		case v > cfg.Input.StickDeadzone:
			stick = cfg.Input.StickDown
		}
		for _, id := range stick {
			held.Add(id)
			last, used = gp, true
		}
	}
	return last, used
}

func gamepadDevice(gp ebiten.GamepadID) components.InputDevice {
	if d, ok := gamepadDevices[gp]; ok {
		return d
	}
	d := components.DeviceXbox
	name := strings.ToLower(ebiten.GamepadName(gp))
	for _, s := range playStationNames {
		if strings.Contains(name, s) {
			d = components.DevicePlayStation
			break
		}
	}
	gamepadDevices[gp] = d
	return d
}

func getOrCreateInput(e *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}
