package components

import (
	"math/rand"

	"github.com/automoto/muffinattack/assets"
	cfg "github.com/automoto/muffinattack/config"
	"github.com/yohamta/donburi"
)

// LevelData is the mutable state of the running level. Positions are
// fractions of the screen.
type LevelData struct {
	Layout *assets.Level
	Number int
	TPS    int
	Rand   *rand.Rand // obstacle spawns

	// Parallax offsets in [0,1), indexed like assets.LayerNames.
	Scroll [len(assets.LayerNames)]float64
	Speed  float64

	PlayerX     float64
	PlayerY     float64
	Flying      bool
	HandleInput bool
	SheetSpeed  float64
	Colliding   bool // player overlapped at least one obstacle this frame

	HP         float64
	MeterAlpha float64

	Failed     bool
	Transition cfg.SceneID // scene requested by the script, SceneNone while playing
}

// Step scales a per-tick constant tuned for 60 TPS to the level's tick rate.
func (l *LevelData) Step(v float64) float64 {
	if l.TPS <= 0 {
		return v
	}
	return v * 60 / float64(l.TPS)
}

// StageOffset is the offset of the layer the player stands on.
func (l *LevelData) StageOffset() float64 {
	return l.Scroll[StageLayer]
}

// Indexes into LevelData.Scroll and the layer images.
const (
	CloudsLayer = iota
	BackgroundLayer
	StageLayer
	ForegroundLayer
)

var Level = donburi.NewComponentType[LevelData]()
