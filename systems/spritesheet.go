package systems

import (
	"image"

	"github.com/automoto/muffinattack/assets"
	"github.com/automoto/muffinattack/components"
	cfg "github.com/automoto/muffinattack/config"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// RegisterSpritesheet reads the metadata of sheet name and appends it to the
// level's registry. Its image is loaded with the level bitmaps.
func RegisterSpritesheet(e *ecs.ECS, name string) error {
	entry, ok := getLevelEntry(e)
	if !ok {
		return errNoLevel
	}
	def, err := assets.LoadSheetDef(name)
	if err != nil {
		return err
	}
	components.Spritesheets.Get(entry).Register(def)
	return nil
}

// SelectSpritesheet switches the player to sheet name. An unknown name is
// logged once and the current sheet stays active.
func SelectSpritesheet(e *ecs.ECS, name string) bool {
	entry, ok := getLevelEntry(e)
	if !ok {
		return false
	}
	sheets := components.Spritesheets.Get(entry)
	store := components.Bitmaps.Get(entry).Store
	if err := sheets.Select(name, cfg.C.Height, store); err != nil {
		log.Error("could not select spritesheet", "name", name, "err", err)
		return false
	}
	return true
}

// UpdateAnimation advances the active sheet. A zero sheet speed holds the
// current frame.
func UpdateAnimation(e *ecs.ECS) {
	entry, ok := getLevelEntry(e)
	if !ok {
		return
	}
	level := components.Level.Get(entry)
	sheets := components.Spritesheets.Get(entry)
	if sheets.Active == nil || level.SheetSpeed == 0 || sheets.Active.Speed == 0 {
		return
	}
	sheets.Anim.Update(level.Step(1), level.SheetSpeed/sheets.Active.Speed)
}

// playerRect is the player's on-screen rectangle in pixels.
func playerRect(e *ecs.ECS) (x, y, w, h float64) {
	entry, ok := getLevelEntry(e)
	if !ok {
		return 0, 0, 0, 0
	}
	level := components.Level.Get(entry)
	sheets := components.Spritesheets.Get(entry)
	sw, sh := screenSize()
	w, h = float64(sheets.TargetW), float64(sheets.TargetH)
	return level.PlayerX*sw + sw*cfg.Level.PlayerXOffset - w, level.PlayerY * sh, w, h
}

// syncPlayerObject moves the player's collision box to its on-screen rectangle.
func syncPlayerObject(e *ecs.ECS) {
	obj, ok := getPlayerObject(e)
	if !ok || obj.Object == nil {
		return
	}
	obj.X, obj.Y, obj.W, obj.H = playerRect(e)
	obj.Update()
}

// DrawPlayer copies the current frame into the player's backing image and
// draws it, tinted red while the player touches an obstacle.
func DrawPlayer(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := getLevelEntry(e)
	if !ok {
		return
	}
	level := components.Level.Get(entry)
	sheets := components.Spritesheets.Get(entry)
	sheet := sheets.Active
	if sheet == nil || sheet.Image == nil || sheets.Target == nil {
		return
	}

	frame := sheets.Anim.Frame()
	tw, th := sheets.TargetW, sheets.TargetH
	sx, sy := (frame%sheet.Cols)*tw, (frame/sheet.Cols)*th
	src := sheet.Image.SubImage(image.Rect(sx, sy, sx+tw, sy+th)).(*ebiten.Image)

	sheets.Target.Clear()
	sheets.Target.DrawImage(src, nil)

	x, y, _, _ := playerRect(e)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	if level.Colliding {
		op.ColorScale.Scale(1, 0, 0, 1)
	}
	screen.DrawImage(sheets.Target, op)
}
