package systems

import (
	"fmt"
	"os"

	"github.com/automoto/muffinattack/components"
	cfg "github.com/automoto/muffinattack/config"
	"github.com/automoto/muffinattack/fonts"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// levelPlayable reports whether level n ships with a layout.
func levelPlayable(n int) bool {
	return n == cfg.Level.Number
}

// NewUpdateMap creates the level select system. createLevelScene builds the
// scene for a level number.
func NewUpdateMap(sceneChanger SceneChanger, createLevelScene func(number int) interface{}) ecs.System {
	return func(e *ecs.ECS) {
		m := GetOrCreateMap(e)
		input := getOrCreateInput(e)

		numOptions := len(cfg.Map.LevelNames)
		if input.JustPressed(cfg.ActionMenuUp) {
			PlaySFX(e, cfg.SoundMenuNavigate)
			m.SelectedIndex = (m.SelectedIndex - 1 + numOptions) % numOptions
		}
		if input.JustPressed(cfg.ActionMenuDown) {
			PlaySFX(e, cfg.SoundMenuNavigate)
			m.SelectedIndex = (m.SelectedIndex + 1) % numOptions
		}

		if input.JustPressed(cfg.ActionMenuSelect) {
			number := m.SelectedIndex + 1
			switch {
			case number > m.Unlocked:
				log.Debug("level locked", "level", number)
			case !levelPlayable(number):
				log.Info("level not available", "level", number)
			default:
				PlaySFX(e, cfg.SoundMenuSelect)
				StopMusic(e)
				sceneChanger.ChangeScene(createLevelScene(number))
			}
		}

		if input.JustPressed(cfg.ActionMenuBack) || input.JustPressed(cfg.ActionPause) {
			os.Exit(0)
		}
	}
}

// DrawMap renders the level list. Locked levels are greyed out.
func DrawMap(e *ecs.ECS, screen *ebiten.Image) {
	m := GetOrCreateMap(e)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.Map.BackgroundColor, false)

	title := "Equestria"
	if m.Completed {
		title = "Equestria is safe!"
	}
	drawCentered(screen, title, fonts.Title.Get(), int(width), int(cfg.Map.TitleY), cfg.Map.TitleColor)

	menuFont := fonts.Bold.Get()
	for i, name := range cfg.Map.LevelNames {
		y := cfg.Map.MenuStartY + float64(i)*(cfg.Map.MenuItemHeight+cfg.Map.MenuItemGap)

		textColor := cfg.Map.TextColorNormal
		switch {
		case i+1 > m.Unlocked:
			textColor = cfg.Map.TextColorLocked
		case i == m.SelectedIndex:
			textColor = cfg.Map.TextColorSelected
		}
		label := fmt.Sprintf("%d. %s", i+1, name)
		if i == m.SelectedIndex {
			label = "> " + label
		}
		text.Draw(screen, label, menuFont, int(width*0.3), int(y+cfg.Map.MenuItemHeight), textColor) //nolint:staticcheck
	}

	hint := mapHint(getOrCreateInput(e).Device)
	drawCentered(screen, hint, fonts.Small.Get(), int(width), int(height)-12, cfg.Map.TextColorNormal)
}

func mapHint(d components.InputDevice) string {
	switch d {
	case components.DevicePlayStation:
		return "Left Stick/D-Pad: Navigate   Cross: Fly"
	case components.DeviceXbox:
		return "Left Stick/D-Pad: Navigate   A: Fly"
	}
	return "Arrows: Navigate   Enter: Fly   Esc: Quit"
}

// GetOrCreateMap returns the singleton Map component. Progress is read from
// the store when it is created.
func GetOrCreateMap(e *ecs.ECS) *components.MapData {
	entry, ok := components.Map.First(e.World)
	if !ok {
		unlocked, completed := LoadProgress(ProgressStore())
		entry = e.World.Entry(e.World.Create(components.Map))
		components.Map.SetValue(entry, components.MapData{
			SelectedIndex: min(unlocked, cfg.Level.Number) - 1,
			Unlocked:      unlocked,
			Completed:     completed,
		})
	}
	return components.Map.Get(entry)
}
