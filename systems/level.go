package systems

import (
	"errors"
	"fmt"

	"github.com/automoto/muffinattack/assets"
	"github.com/automoto/muffinattack/components"
	cfg "github.com/automoto/muffinattack/config"
	"github.com/automoto/muffinattack/systems/factory"
	"github.com/automoto/muffinattack/tags"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var errNoLevel = errors.New("no level entity")

// Sheets registered by every level, in registration order.
var levelSheets = []string{cfg.SheetWalk, cfg.SheetFly, cfg.SheetRun, cfg.SheetStand}

func getLevelEntry(e *ecs.ECS) (*donburi.Entry, bool) {
	return components.Level.First(e.World)
}

func getLevel(e *ecs.ECS) (*components.LevelData, bool) {
	entry, ok := getLevelEntry(e)
	if !ok {
		return nil, false
	}
	return components.Level.Get(entry), true
}

// getSpace returns the collision space, nil before Load.
func getSpace(e *ecs.ECS) *resolv.Space {
	entry, ok := components.Space.First(e.World)
	if !ok {
		return nil
	}
	return components.Space.Get(entry)
}

func getPlayerObject(e *ecs.ECS) (components.ObjectData, bool) {
	entry, ok := tags.Player.First(e.World)
	if !ok {
		return components.ObjectData{}, false
	}
	return *components.Object.Get(entry), true
}

func screenSize() (float64, float64) {
	return float64(cfg.C.Width), float64(cfg.C.Height)
}

// PreloadLevel registers the player's sheets and reads the level layout.
func PreloadLevel(e *ecs.ECS, layoutPath string) error {
	entry, ok := getLevelEntry(e)
	if !ok {
		return errNoLevel
	}
	level := components.Level.Get(entry)

	layout, err := assets.NewLevelLoader().LoadLevel(layoutPath)
	if err != nil {
		return err
	}
	level.Layout = layout
	level.Number = layout.Number

	for _, name := range levelSheets {
		if err := RegisterSpritesheet(e, name); err != nil {
			return fmt.Errorf("register %s: %w", name, err)
		}
	}
	return nil
}

// PreloadLevelBitmaps loads every image the level draws, pre-scaled to the
// screen. Missing files give placeholders.
func PreloadLevelBitmaps(e *ecs.ECS) {
	entry, ok := getLevelEntry(e)
	if !ok {
		return
	}
	level := components.Level.Get(entry)
	bm := components.Bitmaps.Get(entry)
	sheets := components.Spritesheets.Get(entry)
	store := bm.Store
	w, h := screenSize()

	for _, sheet := range sheets.Sheets {
		tw, th := sheet.TargetSize(cfg.C.Height)
		sheet.Image = store.LoadScaled(sheet.SheetDef.Image, tw*sheet.Cols, th*sheet.Rows)
	}
	if sheets.Active == nil {
		SelectSpritesheet(e, cfg.SheetStand)
	} else {
		sheets.Target = store.NewImage(sheets.TargetW, sheets.TargetH)
	}

	if level.Layout == nil {
		log.Warn("level bitmaps requested before the layout was loaded")
		return
	}
	layerW := int(h * cfg.Parallax.LayerAspect)
	for i, def := range level.Layout.Layers {
		bm.Layers[i] = store.LoadScaled(def.Image, layerW, int(h))
	}
	bm.Obstacle = store.LoadScaled(level.Layout.Obstacle, int(w*cfg.Obstacle.Width), int(h*cfg.Obstacle.Height))

	iconW, iconH := meterIconSize()
	bm.Meter = store.LoadScaled(level.Layout.Meter, int(iconW), int(iconH))
	bm.MeterBuf = store.NewImage(int(w*cfg.Meter.TrackWidth+iconW), int(iconH))

	bm.Welcome = store.NewImage(int(w), int(h/2))
	renderWelcomeCard(bm.Welcome, level.Number, level.Layout.Title)
}

// LoadLevel resets the level to its starting state and starts the script.
func LoadLevel(e *ecs.ECS) {
	entry, ok := getLevelEntry(e)
	if !ok {
		return
	}
	level := components.Level.Get(entry)

	level.HP = 1
	level.Speed = 0
	level.PlayerX = cfg.Level.StartX
	level.PlayerY = cfg.Level.StartY
	level.SheetSpeed = cfg.Level.StartSheetSpeed
	level.HandleInput = false
	level.Flying = false
	level.Colliding = false
	level.MeterAlpha = 0
	level.Failed = false
	level.Transition = cfg.SceneNone
	if level.Layout != nil {
		for i, def := range level.Layout.Layers {
			level.Scroll[i] = def.Offset
		}
	}

	components.Overlay.SetValue(entry, components.OverlayData{})

	space := getSpace(e)
	if space == nil {
		factory.CreateSpace(e, cfg.C.Width, cfg.C.Height, 16, 16)
		space = getSpace(e)
	}
	RemoveObstacles(e)
	if _, ok := tags.Player.First(e.World); !ok {
		x, y, pw, ph := playerRect(e)
		factory.CreatePlayer(e, space, x, y, pw, ph)
	}

	script := components.Script.Get(entry)
	script.Timeline.Init(e)
	BuildLevelScript(script.Timeline)
	log.Debug("level loaded", "level", level.Number, "tps", level.TPS)
}

// UnloadLevel tears the level down. Music goes first so no DESTROY handler
// can restart it.
func UnloadLevel(e *ecs.ECS) {
	entry, ok := getLevelEntry(e)
	if !ok {
		return
	}

	StopMusic(e)
	components.Script.Get(entry).Timeline.Destroy()
	RemoveObstacles(e)

	space := getSpace(e)
	if player, ok := tags.Player.First(e.World); ok {
		if obj := components.Object.Get(player); obj.Object != nil && space != nil {
			space.Remove(obj.Object)
		}
		e.World.Remove(player.Entity())
	}

	UnloadLevelBitmaps(e)
	components.Spritesheets.Get(entry).Clear()
	log.Debug("level unloaded", "level", components.Level.Get(entry).Number)
}

// UnloadLevelBitmaps releases every image PreloadLevelBitmaps created.
func UnloadLevelBitmaps(e *ecs.ECS) {
	entry, ok := getLevelEntry(e)
	if !ok {
		return
	}
	bm := components.Bitmaps.Get(entry)
	sheets := components.Spritesheets.Get(entry)
	store := bm.Store

	for _, sheet := range sheets.Sheets {
		store.Release(sheet.Image)
		sheet.Image = nil
	}
	store.Release(sheets.Target)
	sheets.Target = nil

	for i := range bm.Layers {
		store.Release(bm.Layers[i])
		bm.Layers[i] = nil
	}
	for _, img := range []**ebiten.Image{&bm.Obstacle, &bm.Meter, &bm.MeterBuf, &bm.Welcome} {
		store.Release(*img)
		*img = nil
	}
}

// LevelLayout returns the layout read by PreloadLevel, nil before that.
func LevelLayout(e *ecs.ECS) *assets.Level {
	level, ok := getLevel(e)
	if !ok {
		return nil
	}
	return level.Layout
}

// LevelTransition returns the scene the level asked for, SceneNone while it runs.
func LevelTransition(e *ecs.ECS) cfg.SceneID {
	level, ok := getLevel(e)
	if !ok {
		return cfg.SceneNone
	}
	return level.Transition
}
