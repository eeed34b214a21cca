package systems

import (
	"github.com/automoto/muffinattack/components"
	cfg "github.com/automoto/muffinattack/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer moves the player up and down once the script hands over
// control. Dropping below the run line lands the player; rising above it
// takes off again.
func UpdatePlayer(ecs *ecs.ECS) {
	level, ok := getLevel(ecs)
	if !ok {
		return
	}
	if level.HandleInput {
		input := getOrCreateInput(ecs)
		step := level.Step(cfg.Level.InputStep)
		if input.Pressed(cfg.ActionMoveUp) {
			level.PlayerY -= step
		}
		if input.Pressed(cfg.ActionMoveDown) {
			level.PlayerY += step
		}

		if level.PlayerY > cfg.Level.RunThresholdY && level.Flying {
			SelectSpritesheet(ecs, cfg.SheetRun)
			level.Flying = false
		} else if level.PlayerY <= cfg.Level.RunThresholdY && !level.Flying {
			SelectSpritesheet(ecs, cfg.SheetFly)
			level.Flying = true
			level.SheetSpeed = cfg.Level.FlySheetSpeed
		}
		if !level.Flying {
			level.SheetSpeed = runSheetSpeed(level)
		}
		level.PlayerY = min(max(level.PlayerY, 0), cfg.Level.MaxY)
	}
	syncPlayerObject(ecs)
}

// runSheetSpeed makes the run cycle faster as the level speeds up. A stopped
// level holds the frame.
func runSheetSpeed(level *components.LevelData) float64 {
	if level.Speed <= 0 {
		return 0
	}
	return cfg.Level.RunSheetFactor / level.Speed
}
