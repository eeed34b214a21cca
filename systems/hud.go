package systems

import (
	"github.com/automoto/muffinattack/components"
	cfg "github.com/automoto/muffinattack/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var meterDrawOp = &ebiten.DrawImageOptions{}

func meterIconSize() (w, h float64) {
	sw, _ := screenSize()
	w = sw * cfg.Meter.IconWidth
	return w, w * cfg.Meter.IconAspect
}

// DrawMeter renders the health meter in the bottom-right corner. It is
// redrawn into its buffer every frame and faded in by the script.
func DrawMeter(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := getLevelEntry(ecs)
	if !ok {
		return
	}
	level := components.Level.Get(entry)
	bm := components.Bitmaps.Get(entry)
	buf := bm.MeterBuf
	if level.MeterAlpha <= 0 || buf == nil {
		return
	}

	sw, sh := screenSize()
	bw, bh := float32(buf.Bounds().Dx()), float32(buf.Bounds().Dy())
	buf.Clear()

	// Track with round ends
	r := 0.2 * bh
	tx0, tx1, ty := 0.1*bw+r, bw-r, 0.5*bh
	vector.FillRect(buf, tx0, ty-r, tx1-tx0, 2*r, cfg.Meter.TrackColor, true)
	vector.FillCircle(buf, tx0, ty, r, cfg.Meter.TrackColor, true)
	vector.FillCircle(buf, tx1, ty, r, cfg.Meter.TrackColor, true)

	barW := float32(sw * cfg.Meter.BarWidth)
	barH := float32(sh * cfg.Meter.BarHeight)
	barX, barY := bw-barW, (bh-barH)/2
	fillW := barW * float32(cfg.Meter.BarFill)
	vector.FillRect(buf, barX, barY, fillW, barH, cfg.Meter.BarColor, false)
	vector.FillRect(buf, barX, barY, fillW*float32(level.HP), barH, cfg.Meter.FillColor, false)

	if bm.Meter != nil {
		buf.DrawImage(bm.Meter, nil)
	}

	meterDrawOp.GeoM.Reset()
	meterDrawOp.ColorScale.Reset()
	meterDrawOp.GeoM.Translate(sw*cfg.Meter.Right-float64(bw), sh*cfg.Meter.Bottom-float64(bh))
	meterDrawOp.ColorScale.ScaleAlpha(float32(min(level.MeterAlpha, 255) / 255))
	screen.DrawImage(buf, meterDrawOp)
}
