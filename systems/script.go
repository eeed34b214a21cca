package systems

import (
	"math"
	"time"

	"github.com/automoto/muffinattack/components"
	cfg "github.com/automoto/muffinattack/config"
	"github.com/automoto/muffinattack/timeline"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// BuildLevelScript queues the whole level: the opening cutscene, the flight
// and the obstacle run.
func BuildLevelScript(tl *timeline.Timeline[*ecs.ECS]) {
	tl.AddBackgroundAction(fadeIn, nil, 0, "FadeIn")
	tl.AddDelay(time.Second)
	tl.AddQueuedBackgroundAction(welcome, nil, 0, "Welcome")
	tl.AddDelay(time.Second)
	tl.AddAction(walk, nil, "Walk")
	tl.AddAction(move, nil, "Move")
	tl.AddAction(stop, nil, "Stop")
	tl.AddDelay(time.Second)
	if a := tl.AddAction(letter, nil, "Letter"); a != nil {
		a.OnEvent = confirmLetter
	}
	tl.AddDelay(500 * time.Millisecond)
	tl.AddQueuedBackgroundAction(accelerate, nil, 0, "Accelerate")
	tl.AddAction(fly, nil, "Fly")
	tl.AddDelay(5 * time.Second)
	tl.AddAction(generateObstacles, nil, "GenerateObstacles")
	tl.AddDelay(5 * time.Second)
	tl.AddAction(passLevel, nil, "PassLevel")
}

// fadeArgs returns the fade of a, allocating it with its full-screen image
// and tween on first use.
func fadeArgs(e *ecs.ECS, a *Action, from, to float32) (*components.Fade, *gween.Tween) {
	if a.Args == nil {
		entry, _ := getLevelEntry(e)
		fade := &components.Fade{Alpha: float64(from)}
		if store := components.Bitmaps.Get(entry).Store; store != nil {
			fade.Image = store.NewImage(cfg.C.Width, cfg.C.Height)
			if fade.Image != nil {
				fade.Image.Fill(cfg.Black)
			}
		}
		components.Overlay.Get(entry).AddFade(fade)

		seconds := float32(math.Abs(float64(to-from)) / cfg.Level.FadeRate)
		a.Args = timeline.AddToArgs(a.Args, fade)
		a.Args = timeline.AddToArgs(a.Args, gween.New(from, to, seconds, ease.Linear))
	}
	fade, _ := timeline.Arg[*components.Fade](a.Args, 0)
	tween, _ := timeline.Arg[*gween.Tween](a.Args, 1)
	return fade, tween
}

func releaseFade(e *ecs.ECS, a *Action) {
	if fade, ok := timeline.Arg[*components.Fade](a.Args, 0); ok {
		entry, _ := getLevelEntry(e)
		components.Overlay.Get(entry).RemoveFade(fade)
		if store := components.Bitmaps.Get(entry).Store; store != nil {
			store.Release(fade.Image)
		}
	}
	a.Args = timeline.DestroyArgs(a.Args)
}

func stepFade(e *ecs.ECS, a *Action, from, to float32) bool {
	level, _ := getLevel(e)
	fade, tween := fadeArgs(e, a, from, to)
	v, done := tween.Update(tickSeconds(level))
	fade.Alpha = float64(v)
	return done
}

// fadeIn uncovers the level and starts its music when done.
func fadeIn(e *ecs.ECS, a *Action, p timeline.Phase) bool {
	switch p {
	case timeline.PhaseInit:
		fadeArgs(e, a, 255, 0)
	case timeline.PhaseRunning:
		return stepFade(e, a, 255, 0)
	case timeline.PhaseDestroy:
		releaseFade(e, a)
		StartLevelMusic(e)
	}
	return false
}

// fadeOut covers the level and hands over to the map.
func fadeOut(e *ecs.ECS, a *Action, p timeline.Phase) bool {
	switch p {
	case timeline.PhaseInit:
		fadeArgs(e, a, 0, 256)
		FadeOutMusic(e)
	case timeline.PhaseRunning:
		if !stepFade(e, a, 0, 256) {
			return false
		}
		if level, ok := getLevel(e); ok {
			level.Transition = cfg.SceneMap
		}
		return true
	case timeline.PhaseDestroy:
		releaseFade(e, a)
	}
	return false
}

// welcome fades the title card in, holds it, then fades it out.
func welcome(e *ecs.ECS, a *Action, p timeline.Phase) bool {
	entry, _ := getLevelEntry(e)
	overlay := components.Overlay.Get(entry)
	rate := float32(cfg.Level.FadeRate)

	switch p {
	case timeline.PhaseInit:
		hold := float32(cfg.Level.WelcomeHold)
		a.Args = timeline.AddToArgs(a.Args, gween.New(0, hold, hold/rate, ease.Linear))
		a.Args = timeline.AddToArgs(a.Args, new(bool))
	case timeline.PhaseRunning:
		tween, ok := timeline.Arg[*gween.Tween](a.Args, 0)
		fadingOut, _ := timeline.Arg[*bool](a.Args, 1)
		if !ok || fadingOut == nil {
			return true
		}
		v, done := tween.Update(tickSeconds(components.Level.Get(entry)))
		overlay.Welcome = min(float64(v), 255)
		if !done {
			return false
		}
		if *fadingOut {
			overlay.Welcome = 0
			return true
		}
		*fadingOut = true
		a.Args[0] = gween.New(255, 0, 255/rate, ease.Linear)
	case timeline.PhaseDestroy:
		overlay.Welcome = 0
		a.Args = timeline.DestroyArgs(a.Args)
	}
	return false
}

func walk(e *ecs.ECS, a *Action, p timeline.Phase) bool {
	level, _ := getLevel(e)
	switch p {
	case timeline.PhaseRunning:
		if a.Args == nil {
			SelectSpritesheet(e, cfg.SheetWalk)
			a.Args = timeline.AddToArgs(a.Args, true)
		}
		level.PlayerX += level.Step(cfg.Level.WalkStep)
		return level.PlayerX >= cfg.Level.WalkTargetX
	case timeline.PhaseDestroy:
		a.Args = timeline.DestroyArgs(a.Args)
	}
	return false
}

// move scrolls the stage until the player reaches the letter spot.
func move(e *ecs.ECS, a *Action, p timeline.Phase) bool {
	if p != timeline.PhaseRunning {
		return false
	}
	level, _ := getLevel(e)
	level.Speed = cfg.Level.MoveSpeed
	return level.StageOffset() >= cfg.Level.MoveStageTarget
}

func stop(e *ecs.ECS, a *Action, p timeline.Phase) bool {
	if p != timeline.PhaseRunning {
		return false
	}
	level, _ := getLevel(e)
	level.Speed = 0
	SelectSpritesheet(e, cfg.SheetStand)
	return true
}

// letter shows the letter until the player confirms it.
func letter(e *ecs.ECS, a *Action, p timeline.Phase) bool {
	entry, _ := getLevelEntry(e)
	overlay := components.Overlay.Get(entry)
	switch p {
	case timeline.PhaseInit:
		overlay.Letter = true
		a.Args = timeline.AddToArgs(a.Args, new(bool))
	case timeline.PhaseRunning:
		confirmed, ok := timeline.Arg[*bool](a.Args, 0)
		return !ok || *confirmed
	case timeline.PhaseDestroy:
		overlay.Letter = false
		a.Args = timeline.DestroyArgs(a.Args)
	}
	return false
}

func confirmLetter(e *ecs.ECS, a *Action, ev timeline.Event) bool {
	key, ok := ev.(KeyEvent)
	if !ok || key.Action != cfg.ActionMenuSelect {
		return false
	}
	confirmed, ok := timeline.Arg[*bool](a.Args, 0)
	if !ok {
		return false
	}
	*confirmed = true
	PlaySFX(e, cfg.SoundMenuSelect)
	return true
}

func accelerate(e *ecs.ECS, a *Action, p timeline.Phase) bool {
	if p != timeline.PhaseRunning {
		return false
	}
	level, _ := getLevel(e)
	level.Speed += level.Step(cfg.Level.AccelStep)
	if level.Speed >= cfg.Level.MaxSpeed {
		level.Speed = cfg.Level.MaxSpeed
		return true
	}
	return false
}

// fly takes off and gives the player control at cruising height.
func fly(e *ecs.ECS, a *Action, p timeline.Phase) bool {
	entry, _ := getLevelEntry(e)
	level := components.Level.Get(entry)
	switch p {
	case timeline.PhaseRunning:
		if a.Args == nil {
			SelectSpritesheet(e, cfg.SheetFly)
			level.Flying = true
			level.SheetSpeed = cfg.Level.FlySheetSpeed
			components.Script.Get(entry).Timeline.AddBackgroundAction(showMeter, nil, 0, "ShowMeter")
			a.Args = timeline.AddToArgs(a.Args, true)
		}
		level.PlayerY -= level.Step(cfg.Level.FlyStep)
		if level.PlayerY > cfg.Level.FlyTargetY {
			return false
		}
		level.HandleInput = true
		return true
	case timeline.PhaseDestroy:
		a.Args = timeline.DestroyArgs(a.Args)
	}
	return false
}

func showMeter(e *ecs.ECS, a *Action, p timeline.Phase) bool {
	level, _ := getLevel(e)
	switch p {
	case timeline.PhaseInit:
		// Same pace as MeterFadeStep alpha per 60 Hz tick
		seconds := float32(255 / (cfg.Level.MeterFadeStep * 60))
		a.Args = timeline.AddToArgs(a.Args, gween.New(float32(level.MeterAlpha), 255, seconds, ease.Linear))
	case timeline.PhaseRunning:
		tween, ok := timeline.Arg[*gween.Tween](a.Args, 0)
		if !ok {
			level.MeterAlpha = 255
			return true
		}
		v, done := tween.Update(tickSeconds(level))
		level.MeterAlpha = float64(v)
		return done
	case timeline.PhaseDestroy:
		a.Args = timeline.DestroyArgs(a.Args)
	}
	return false
}

// generateObstacles spawns obstacles at random until the level's quota is reached.
func generateObstacles(e *ecs.ECS, a *Action, p timeline.Phase) bool {
	switch p {
	case timeline.PhaseInit:
		a.Args = timeline.AddToArgs(a.Args, new(int))
	case timeline.PhaseRunning:
		spawned, ok := timeline.Arg[*int](a.Args, 0)
		if !ok {
			return true
		}
		level, _ := getLevel(e)
		if spawnRoll(level) && SpawnObstacle(e) != nil {
			*spawned++
		}
		return *spawned >= cfg.Obstacle.SpawnCap
	case timeline.PhaseDestroy:
		a.Args = timeline.DestroyArgs(a.Args)
	}
	return false
}

// passLevel records the level as passed and fades out. A level that failed in
// the meantime, or is torn down before reaching this point, records nothing.
func passLevel(e *ecs.ECS, a *Action, p timeline.Phase) bool {
	entry, _ := getLevelEntry(e)
	level := components.Level.Get(entry)
	switch p {
	case timeline.PhaseInit:
		a.Args = timeline.AddToArgs(a.Args, true)
	case timeline.PhaseRunning:
		return true
	case timeline.PhaseDestroy:
		started := a.Args != nil
		a.Args = timeline.DestroyArgs(a.Args)
		if !started || level.Failed {
			return false
		}
		LevelPassed(ProgressStore(), level.Number)
		components.Script.Get(entry).Timeline.AddBackgroundAction(fadeOut, nil, 0, "FadeOut")
	}
	return false
}
