package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/muffinattack/components"
	cfg "github.com/automoto/muffinattack/config"
	"github.com/automoto/muffinattack/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// renderWelcomeCard draws the level number and title into img. Screen
// coordinates are used so the card lines up when drawn at the top of the screen.
func renderWelcomeCard(img *ebiten.Image, number int, title string) {
	if img == nil || !fonts.Loaded(fonts.Title) {
		return
	}
	_, sh := screenSize()
	img.Fill(cfg.Overlay.CardColor)
	w := img.Bounds().Dx()
	drawCentered(img, fmt.Sprintf(cfg.Overlay.WelcomeTitle, number), fonts.Title.Get(), w, int(sh*0.1), cfg.Overlay.TextColor)
	drawCentered(img, title, fonts.Bold.Get(), w, int(sh*0.275), cfg.Overlay.TextColor)
}

func drawCentered(dst *ebiten.Image, s string, face font.Face, width, y int, clr color.Color) {
	bounds := text.BoundString(face, s) //nolint:staticcheck
	text.Draw(dst, s, face, (width-bounds.Dx())/2, y, clr) //nolint:staticcheck
}

// DrawOverlay renders what the script shows over the level: the welcome
// card, the letter, the fades and the failure banner.
func DrawOverlay(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := getLevelEntry(ecs)
	if !ok {
		return
	}
	overlay := components.Overlay.Get(entry)
	bm := components.Bitmaps.Get(entry)
	sw, sh := screenSize()

	if overlay.Welcome > 0 && bm.Welcome != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(0, sh/4)
		op.ColorScale.ScaleAlpha(float32(min(overlay.Welcome, 255) / 255))
		screen.DrawImage(bm.Welcome, op)
	}

	if overlay.Letter && fonts.Loaded(fonts.Title) {
		drawLetter(screen, sw, sh)
	}

	for _, fade := range overlay.Fades {
		if fade.Image == nil || fade.Alpha <= 0 {
			continue
		}
		op := &ebiten.DrawImageOptions{}
		op.ColorScale.ScaleAlpha(float32(min(fade.Alpha, 255) / 255))
		screen.DrawImage(fade.Image, op)
	}

	if overlay.Banner != "" && fonts.Loaded(fonts.Title) {
		drawCentered(screen, overlay.Banner, fonts.Title.Get(), int(sw), int(sh/2), cfg.Overlay.TextColor)
	}
}

func drawLetter(screen *ebiten.Image, sw, sh float64) {
	x, y := sw*0.2, sh*0.35
	vector.FillRect(screen, float32(x), float32(y), float32(sw*0.6), float32(sh*0.45), cfg.Overlay.LetterBg, false)

	drawCentered(screen, cfg.Overlay.LetterTitle, fonts.Bold.Get(), int(sw), int(sh*0.45), cfg.Ink)
	lineY := sh*0.45 + cfg.Overlay.LineHeight*1.5
	for _, line := range cfg.Overlay.LetterBody {
		drawCentered(screen, line, fonts.Regular.Get(), int(sw), int(lineY), cfg.Ink)
		lineY += cfg.Overlay.LineHeight
	}
	drawCentered(screen, cfg.Overlay.LetterHint, fonts.Small.Get(), int(sw), int(y+sh*0.45-8), cfg.Ink)
}
