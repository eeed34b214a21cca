package components

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// Fade is a full screen image drawn with Alpha in [0,255].
type Fade struct {
	Alpha float64
	Image *ebiten.Image
}

// OverlayData is what the script asks to be drawn on top of the level.
type OverlayData struct {
	Fades   []*Fade
	Welcome float64 // title card alpha, 0 hides it
	Letter  bool
	Banner  string // drawn over the fades when non-empty
}

func (o *OverlayData) AddFade(f *Fade) {
	o.Fades = append(o.Fades, f)
}

func (o *OverlayData) RemoveFade(f *Fade) {
	if i := slices.Index(o.Fades, f); i >= 0 {
		o.Fades = slices.Delete(o.Fades, i, i+1)
	}
}

var Overlay = donburi.NewComponentType[OverlayData]()
