package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/muffinattack/components"
	cfg "github.com/automoto/muffinattack/config"
	"github.com/automoto/muffinattack/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every collision box and prints the level state when
// debugging is enabled.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Enabled {
		return
	}

	if space := getSpace(ecs); space != nil {
		for _, obj := range space.Objects() {
			c := color.RGBA{0, 255, 255, 255} // Cyan default
			if obj.HasTags(tags.ResolvPlayer) {
				c = color.RGBA{0, 0, 255, 255}
			} else if obj.HasTags(tags.ResolvObstacle) {
				c = color.RGBA{255, 0, 0, 255}
			}

			x, y := float32(obj.X), float32(obj.Y)
			w, h := float32(obj.W), float32(obj.H)
			vector.FillRect(screen, x, y, w, 1, c, false)     // Top
			vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
			vector.FillRect(screen, x, y, 1, h, c, false)     // Left
			vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
		}
	}

	entry, ok := getLevelEntry(ecs)
	if !ok {
		return
	}
	level := components.Level.Get(entry)
	fg, bg := components.Script.Get(entry).Timeline.Len()
	current := "-"
	if a := components.Script.Get(entry).Timeline.Current(); a != nil {
		current = a.Name
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"TPS %.0f  hp %.3f  speed %.5f  obstacles %d\nscript %s  fg %d bg %d",
		ebiten.ActualTPS(), level.HP, level.Speed, ObstacleCount(ecs), current, fg, bg,
	))
}
