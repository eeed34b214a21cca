package components

import (
	"errors"
	"fmt"

	"github.com/automoto/muffinattack/assets"
	"github.com/automoto/muffinattack/assets/animations"
	cfg "github.com/automoto/muffinattack/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

var ErrUnknownSpritesheet = errors.New("unknown spritesheet")

// Spritesheet is a registered sheet. Image holds the whole grid, pre-scaled so
// one cell is exactly the render target size.
type Spritesheet struct {
	assets.SheetDef
	Image *ebiten.Image
}

// TargetSize is the on-screen size of one frame for a screen of height screenH.
func (s *Spritesheet) TargetSize(screenH int) (w, h int) {
	base := float64(screenH) * cfg.Level.SpriteHeight * s.Scale
	return int(base * s.Aspect), int(base)
}

// SpritesheetsData is the registry of the player's sheets and the active one.
type SpritesheetsData struct {
	Sheets []*Spritesheet
	Active *Spritesheet
	Anim   animations.Animation

	// Target is the player's backing image, sized for the active sheet.
	Target  *ebiten.Image
	TargetW int
	TargetH int
}

// Register appends a sheet; registration order is kept.
func (s *SpritesheetsData) Register(def assets.SheetDef) *Spritesheet {
	sheet := &Spritesheet{SheetDef: def}
	s.Sheets = append(s.Sheets, sheet)
	return sheet
}

// Find is a linear search by name.
func (s *SpritesheetsData) Find(name string) *Spritesheet {
	for _, sheet := range s.Sheets {
		if sheet.Name == name {
			return sheet
		}
	}
	return nil
}

// Select makes name the active sheet, rewinds the animation and reallocates the
// backing image through images. On a miss nothing changes.
func (s *SpritesheetsData) Select(name string, screenH int, images assets.ImageStore) error {
	if len(s.Sheets) == 0 {
		return fmt.Errorf("%w: %s (no sheets registered)", ErrUnknownSpritesheet, name)
	}
	sheet := s.Find(name)
	if sheet == nil {
		return fmt.Errorf("%w: %s", ErrUnknownSpritesheet, name)
	}

	s.Active = sheet
	s.Anim = animations.Animation{Frames: sheet.Frames()}
	s.TargetW, s.TargetH = sheet.TargetSize(screenH)
	if images != nil {
		images.Release(s.Target)
		s.Target = images.NewImage(s.TargetW, s.TargetH)
	}
	return nil
}

// Clear drops every sheet. Images must have been released already.
func (s *SpritesheetsData) Clear() {
	clear(s.Sheets)
	s.Sheets = s.Sheets[:0]
	s.Active = nil
	s.Target = nil
	s.TargetW, s.TargetH = 0, 0
}

var Spritesheets = donburi.NewComponentType[SpritesheetsData]()
