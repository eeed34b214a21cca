package systems

import (
	"os"

	"github.com/automoto/muffinattack/components"
	cfg "github.com/automoto/muffinattack/config"
	"github.com/automoto/muffinattack/fonts"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause opens and closes the pause overlay and runs its menu. It runs
// after UpdateInput and before the gameplay systems it gates.
func UpdatePause(e *ecs.ECS) {
	pause := GetOrCreatePause(e)
	input := getOrCreateInput(e)

	if input.JustPressed(cfg.ActionPause) {
		setPaused(e, pause, !pause.Open)
		return
	}
	if !pause.Open {
		return
	}

	switch {
	case input.JustPressed(cfg.ActionMenuUp):
		pause.Cursor = pause.Cursor.Step(-1)
		PlaySFX(e, cfg.SoundMenuNavigate)
	case input.JustPressed(cfg.ActionMenuDown):
		pause.Cursor = pause.Cursor.Step(1)
		PlaySFX(e, cfg.SoundMenuNavigate)
	case input.JustPressed(cfg.ActionMenuSelect):
		PlaySFX(e, cfg.SoundMenuSelect)
		choosePauseOption(e, pause)
	}
}

// setPaused keeps the music in step with the overlay.
func setPaused(e *ecs.ECS, pause *components.PauseData, open bool) {
	pause.Open = open
	if open {
		pause.Cursor = components.PauseResume
		PauseMusic(e)
		return
	}
	ResumeMusic(e)
}

func choosePauseOption(e *ecs.ECS, pause *components.PauseData) {
	switch pause.Cursor {
	case components.PauseResume:
		setPaused(e, pause, false)
	case components.PauseLeave:
		pause.Open = false
		if level, ok := getLevel(e); ok {
			log.Debug("leaving level from pause menu", "level", level.Number)
			level.Transition = cfg.SceneMap
		}
	case components.PauseQuit:
		os.Exit(0)
	}
}

// DrawPause dims the screen and lists the pause options.
func DrawPause(e *ecs.ECS, screen *ebiten.Image) {
	pause := GetOrCreatePause(e)
	if !pause.Open {
		return
	}

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.FillRect(screen, 0, 0, float32(w), float32(h), cfg.Pause.OverlayColor, false)

	row := cfg.Pause.MenuItemHeight + cfg.Pause.MenuItemGap
	top := (float64(h) - float64(len(cfg.Pause.MenuOptions))*row) / 2
	for i, label := range cfg.Pause.MenuOptions {
		clr := cfg.Pause.TextColorNormal
		if components.PauseOption(i) == pause.Cursor {
			clr = cfg.Pause.TextColorSelected
		}
		y := top + float64(i)*row + cfg.Pause.MenuItemHeight
		drawCentered(screen, label, fonts.Bold.Get(), w, int(y), clr)
	}

	hint := pauseHint(getOrCreateInput(e).Device)
	drawCentered(screen, hint, fonts.Small.Get(), w, h-12, cfg.Pause.TextColorNormal)
}

func pauseHint(d components.InputDevice) string {
	switch d {
	case components.DevicePlayStation:
		return "D-Pad: Choose   Cross: Confirm   Options: Back to the sky"
	case components.DeviceXbox:
		return "D-Pad: Choose   A: Confirm   Start: Back to the sky"
	}
	return "Arrows: Choose   Enter: Confirm   Esc: Back to the sky"
}

// WithPauseCheck skips system while the pause overlay is open.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if GetOrCreatePause(e).Open {
			return
		}
		system(e)
	}
}

// WithGameplayChecks wraps a gameplay system. The level also stops updating
// once it has asked for a scene change.
func WithGameplayChecks(system ecs.System) ecs.System {
	return WithPauseCheck(func(e *ecs.ECS) {
		if level, ok := getLevel(e); ok && level.Transition != cfg.SceneNone {
			return
		}
		system(e)
	})
}

func GetOrCreatePause(e *ecs.ECS) *components.PauseData {
	entry, ok := components.Pause.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Pause))
	}
	return components.Pause.Get(entry)
}
