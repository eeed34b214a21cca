package systems

import (
	"github.com/automoto/muffinattack/components"
	cfg "github.com/automoto/muffinattack/config"
	"github.com/automoto/muffinattack/timeline"
	"github.com/yohamta/donburi/ecs"
)

// KeyEvent is handed to the level script when an action is pressed.
type KeyEvent struct {
	Action cfg.ActionID
}

// Action is a step of the level script.
type Action = timeline.Action[*ecs.ECS]

// UpdateScript forwards this frame's presses to the script and runs one tick of it.
func UpdateScript(e *ecs.ECS) {
	entry, ok := getLevelEntry(e)
	if !ok {
		return
	}
	tl := components.Script.Get(entry).Timeline
	if tl == nil {
		return
	}

	input := getOrCreateInput(e)
	for id := cfg.ActionNone + 1; id < cfg.ActionCount; id++ {
		if id == cfg.ActionPause {
			continue
		}
		if input.JustPressed(id) {
			tl.HandleEvent(KeyEvent{Action: id})
		}
	}
	tl.Process()
}

// tickSeconds is the length of one tick of the level.
func tickSeconds(level *components.LevelData) float32 {
	return 1 / float32(max(level.TPS, 1))
}
