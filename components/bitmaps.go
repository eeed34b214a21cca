package components

import (
	"github.com/automoto/muffinattack/assets"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// BitmapsData holds the level's images and the store they came from.
type BitmapsData struct {
	Store assets.ImageStore

	Layers   [len(assets.LayerNames)]*ebiten.Image
	Obstacle *ebiten.Image
	Meter    *ebiten.Image // icon drawn on the left of the health bar
	MeterBuf *ebiten.Image // offscreen meter, redrawn every frame
	Welcome  *ebiten.Image // level title card
}

var Bitmaps = donburi.NewComponentType[BitmapsData]()
