package archetypes

import (
	"slices"

	"github.com/automoto/muffinattack/components"
	cfg "github.com/automoto/muffinattack/config"
	"github.com/automoto/muffinattack/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Entities of the level world.
var (
	Level = define("level",
		components.Level,
		components.Spritesheets,
		components.Bitmaps,
		components.Overlay,
		components.Script,
	)
	Player   = define("player", tags.Player, components.Object)
	Obstacle = define("obstacle", tags.Obstacle, components.Obstacle, components.Object)
	Space    = define("space", components.Space)
)

// Archetype is a named component set.
type Archetype struct {
	Name       string
	components []donburi.IComponentType
}

func define(name string, cs ...donburi.IComponentType) *Archetype {
	return &Archetype{Name: name, components: cs}
}

// Spawn creates an entity with the archetype's components plus extra, on
// the default layer.
func (a *Archetype) Spawn(e *ecs.ECS, extra ...donburi.IComponentType) *donburi.Entry {
	cs := append(slices.Clip(a.components), extra...)
	return e.World.Entry(e.Create(cfg.Default, cs...))
}
