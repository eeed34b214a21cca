package factory

import (
	"github.com/automoto/muffinattack/archetypes"
	"github.com/automoto/muffinattack/components"
	"github.com/automoto/muffinattack/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateObstacle spawns o with a collision box of w x h pixels at its
// on-screen position.
func CreateObstacle(ecs *ecs.ECS, space *resolv.Space, o components.ObstacleData, screenW, screenH, w, h float64) *donburi.Entry {
	obstacle := archetypes.Obstacle.Spawn(ecs)
	components.Obstacle.SetValue(obstacle, o)

	obj := resolv.NewObject(o.X/100*screenW, o.Y/100*screenH, w, h, tags.ResolvObstacle)
	obj.Data = obstacle
	components.Object.SetValue(obstacle, components.ObjectData{Object: obj})
	space.Add(obj)

	return obstacle
}

// DestroyObstacle removes the obstacle's box from space and the entity from the world.
func DestroyObstacle(ecs *ecs.ECS, space *resolv.Space, entry *donburi.Entry) {
	if !entry.Valid() {
		return
	}
	if obj := components.Object.Get(entry); obj.Object != nil && space != nil {
		space.Remove(obj.Object)
	}
	ecs.World.Remove(entry.Entity())
}
