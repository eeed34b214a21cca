package systems

import (
	"time"

	"github.com/automoto/muffinattack/components"
	cfg "github.com/automoto/muffinattack/config"
	"github.com/automoto/muffinattack/systems/factory"
	"github.com/automoto/muffinattack/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var obstacleQuery = donburi.NewQuery(filter.Contains(tags.Obstacle))

// spawnRoll reports whether an obstacle spawns this tick. The window shrinks
// with the tick rate so the expected spawns per second stay the same.
func spawnRoll(level *components.LevelData) bool {
	norm := int(cfg.Obstacle.SpawnNorm / float64(max(level.TPS, 1)))
	window := cfg.Obstacle.SpawnWindow / max(norm, 1)
	return level.Rand.Intn(max(window, 1)) <= cfg.Obstacle.SpawnThreshold
}

// SpawnObstacle adds one obstacle at the right edge at a random height.
func SpawnObstacle(e *ecs.ECS) *donburi.Entry {
	entry, ok := getLevelEntry(e)
	if !ok {
		return nil
	}
	level := components.Level.Get(entry)
	bm := components.Bitmaps.Get(entry)
	space := getSpace(e)
	if space == nil {
		return nil
	}

	o := components.ObstacleData{
		X:     cfg.Obstacle.SpawnX,
		Y:     float64(level.Rand.Intn(cfg.Obstacle.SpawnYRange) - 1),
		Speed: 1,
		Data:  level.Rand.Intn(2) == 1,
		Image: bm.Obstacle,
	}
	if level.Rand.Float64() < cfg.Obstacle.OscillateChance {
		o.Callback = MoveUpDown
	}

	w, h := screenSize()
	return factory.CreateObstacle(e, space, o, w, h, w*cfg.Obstacle.Width, h*cfg.Obstacle.Height)
}

// MoveUpDown bounces an obstacle between the top and bottom of the screen.
// Data true means it is going up.
func MoveUpDown(level *components.LevelData, o *components.ObstacleData) {
	step := level.Step(cfg.Obstacle.OscillateStep)
	if o.Data {
		o.Y -= step
		if o.Y <= 0 {
			o.Data = false
		}
	} else {
		o.Y += step
		if o.Y >= 100 {
			o.Data = true
		}
	}
}

// UpdateObstacles moves every obstacle with the stage, removes the ones that
// left the screen and applies collision damage. Health drops at most once
// per frame however many obstacles touch the player.
func UpdateObstacles(e *ecs.ECS) {
	level, ok := getLevel(e)
	if !ok {
		return
	}
	space := getSpace(e)
	w, h := screenSize()
	dx := level.Step(level.Speed) * cfg.Obstacle.ScrollFactor

	var gone []*donburi.Entry
	obstacleQuery.Each(e.World, func(entry *donburi.Entry) {
		o := components.Obstacle.Get(entry)
		o.X -= dx * o.Speed
		if o.Callback != nil {
			o.Callback(level, o)
		}
		o.Colliding = false
		if o.X <= cfg.Obstacle.DespawnX {
			gone = append(gone, entry)
			return
		}
		obj := components.Object.Get(entry)
		obj.X, obj.Y = o.X/100*w, o.Y/100*h
		obj.Update()
	})
	for _, entry := range gone {
		factory.DestroyObstacle(e, space, entry)
	}

	wasColliding := level.Colliding
	level.Colliding = collidePlayer(e)
	if !level.Colliding {
		return
	}
	if !wasColliding {
		PlaySFX(e, cfg.SoundHit)
	}
	level.HP = max(level.HP-cfg.Level.HealthDecrement, 0)
	if level.HP == 0 && !level.Failed {
		FailLevel(e)
	}
}

// collidePlayer marks every obstacle overlapping the player and reports
// whether there was any.
func collidePlayer(e *ecs.ECS) bool {
	syncPlayerObject(e)
	player, ok := getPlayerObject(e)
	if !ok || player.Object == nil {
		return false
	}
	check := player.Check(0, 0, tags.ResolvObstacle)
	if check == nil {
		return false
	}

	hit := false
	for _, obj := range check.ObjectsByTags(tags.ResolvObstacle) {
		entry, ok := obj.Data.(*donburi.Entry)
		if !ok || !entry.Valid() || !player.Overlaps(obj) {
			continue
		}
		components.Obstacle.Get(entry).Colliding = true
		hit = true
	}
	return hit
}

// RemoveObstacles deletes every obstacle and its collision box.
func RemoveObstacles(e *ecs.ECS) {
	space := getSpace(e)
	var all []*donburi.Entry
	obstacleQuery.Each(e.World, func(entry *donburi.Entry) {
		all = append(all, entry)
	})
	for _, entry := range all {
		factory.DestroyObstacle(e, space, entry)
	}
}

// ObstacleCount is the number of live obstacles.
func ObstacleCount(e *ecs.ECS) int {
	return obstacleQuery.Count(e.World)
}

// FailLevel ends the level without recording progress.
func FailLevel(e *ecs.ECS) {
	entry, ok := getLevelEntry(e)
	if !ok {
		return
	}
	level := components.Level.Get(entry)
	level.Failed = true
	level.HandleInput = false
	components.Overlay.Get(entry).Banner = cfg.Overlay.FailureMessage
	components.Script.Get(entry).Timeline.AddBackgroundAction(fadeOut, nil, time.Second, "FadeOut")
}

// DrawObstacles draws every obstacle, tinted while it touches the player.
func DrawObstacles(e *ecs.ECS, screen *ebiten.Image) {
	w, h := screenSize()
	obstacleQuery.Each(e.World, func(entry *donburi.Entry) {
		o := components.Obstacle.Get(entry)
		if o.Image == nil {
			return
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(o.X/100*w, o.Y/100*h)
		if o.Colliding {
			op.ColorScale.ScaleWithColor(cfg.Obstacle.Tint)
		}
		screen.DrawImage(o.Image, op)
	})
}
