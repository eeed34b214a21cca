package components

import (
	"github.com/automoto/muffinattack/timeline"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ScriptData holds the level's timeline. Callbacks receive the level world.
type ScriptData struct {
	Timeline *timeline.Timeline[*ecs.ECS]
}

var Script = donburi.NewComponentType[ScriptData]()
