package factory

import (
	"github.com/automoto/muffinattack/archetypes"
	"github.com/automoto/muffinattack/components"
	"github.com/automoto/muffinattack/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer adds the player's collision box to space. The player's position
// lives in LevelData; the box is resynced from it every frame.
func CreatePlayer(ecs *ecs.ECS, space *resolv.Space, x, y, w, h float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	space.Add(obj)

	return player
}
