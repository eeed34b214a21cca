package systems

import (
	"math"

	"github.com/automoto/muffinattack/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateParallax scrolls every layer by the level speed times its rate. Drift
// applies even while the level stands still.
func UpdateParallax(e *ecs.ECS) {
	level, ok := getLevel(e)
	if !ok || level.Layout == nil {
		return
	}
	for i, def := range level.Layout.Layers {
		delta := level.Step(def.Drift)
		if level.Speed > 0 {
			delta += level.Step(level.Speed) * def.Rate
		}
		level.Scroll[i] = wrapUnit(level.Scroll[i] + delta)
	}
}

// wrapUnit maps v into [0,1).
func wrapUnit(v float64) float64 {
	v = math.Mod(v, 1)
	if v < 0 {
		v++
	}
	return v
}

// DrawParallaxBack draws the layers behind the player.
func DrawParallaxBack(e *ecs.ECS, screen *ebiten.Image) {
	drawLayers(e, screen, components.CloudsLayer, components.StageLayer)
}

// DrawParallaxFront draws the layers over the player.
func DrawParallaxFront(e *ecs.ECS, screen *ebiten.Image) {
	drawLayers(e, screen, components.ForegroundLayer, components.ForegroundLayer)
}

// drawLayers draws layers from..to twice, side by side, so the wrap point is
// never visible.
func drawLayers(e *ecs.ECS, screen *ebiten.Image, from, to int) {
	entry, ok := getLevelEntry(e)
	if !ok {
		return
	}
	level := components.Level.Get(entry)
	bm := components.Bitmaps.Get(entry)

	for i := from; i <= to; i++ {
		img := bm.Layers[i]
		if img == nil {
			continue
		}
		w := float64(img.Bounds().Dx())
		opacity := 1.0
		if level.Layout != nil && level.Layout.Layers[i].Opacity > 0 {
			opacity = level.Layout.Layers[i].Opacity
		}
		for _, x := range [2]float64{-level.Scroll[i] * w, (1 - level.Scroll[i]) * w} {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(x, 0)
			op.ColorScale.ScaleAlpha(float32(opacity))
			screen.DrawImage(img, op)
		}
	}
}
