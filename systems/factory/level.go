package factory

import (
	"math/rand"

	"github.com/automoto/muffinattack/archetypes"
	"github.com/automoto/muffinattack/assets"
	"github.com/automoto/muffinattack/components"
	"github.com/automoto/muffinattack/timeline"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel spawns the level entity. Its layout and bitmaps are loaded later
// by the level lifecycle functions.
func CreateLevel(e *ecs.ECS, images assets.ImageStore, tps int, seed int64) *donburi.Entry {
	level := archetypes.Level.Spawn(e)

	components.Level.SetValue(level, components.LevelData{
		TPS:  tps,
		Rand: rand.New(rand.NewSource(seed)),
	})
	components.Bitmaps.SetValue(level, components.BitmapsData{Store: images})
	components.Script.SetValue(level, components.ScriptData{
		Timeline: timeline.New(tps, timeline.WithLogger[*ecs.ECS](log.Default())),
	})

	return level
}
