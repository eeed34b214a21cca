package systems

import (
	"math"
	"math/rand"
	"testing"

	"github.com/automoto/muffinattack/components"
	cfg "github.com/automoto/muffinattack/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func spawnAt(t *testing.T, e *ecs.ECS, x, y float64) *donburi.Entry {
	t.Helper()
	entry := SpawnObstacle(e)
	if entry == nil {
		t.Fatal("obstacle not spawned")
	}
	o := components.Obstacle.Get(entry)
	o.X, o.Y = x, y
	o.Callback = nil
	return entry
}

func TestObstacleRemovedOffscreen(t *testing.T) {
	e := newTestLevel(t)
	level := testLevel(t, e)
	level.Speed = cfg.Level.MaxSpeed
	level.PlayerX = 0.3

	gone := spawnAt(t, e, -9.9, 10)
	keep := spawnAt(t, e, 50, 10)

	UpdateObstacles(e)

	if n := ObstacleCount(e); n != 1 || gone.Valid() {
		t.Fatalf("%d obstacles, want 1", n)
	}
	x := components.Obstacle.Get(keep).X
	if want := 50 - cfg.Level.MaxSpeed*cfg.Obstacle.ScrollFactor; math.Abs(x-want) > 1e-9 {
		t.Errorf("x %v, want %v", x, want)
	}
	// the player's box and the remaining obstacle
	if n := len(getSpace(e).Objects()); n != 2 {
		t.Errorf("%d collision objects, want 2", n)
	}
}

func TestCollisionCostsHealthOncePerFrame(t *testing.T) {
	e := newTestLevel(t)
	level := testLevel(t, e)
	level.PlayerX = 0.3
	level.PlayerY = 0.6

	// The player box spans roughly x 36..49 %, y 60..85 %.
	entryA := spawnAt(t, e, 40, 62)
	entryB := spawnAt(t, e, 42, 65)
	entryFar := spawnAt(t, e, 90, 5)

	UpdateObstacles(e)

	a, b, far := components.Obstacle.Get(entryA), components.Obstacle.Get(entryB), components.Obstacle.Get(entryFar)
	if want := 1 - cfg.Level.HealthDecrement; math.Abs(level.HP-want) > 1e-12 {
		t.Errorf("hp %v, want %v", level.HP, want)
	}
	if !level.Colliding || !a.Colliding || !b.Colliding {
		t.Errorf("colliding: player %v a %v b %v", level.Colliding, a.Colliding, b.Colliding)
	}
	if far.Colliding {
		t.Error("distant obstacle marked as colliding")
	}

	a.X, b.X = 90, 95
	UpdateObstacles(e)
	if level.Colliding || components.Obstacle.Get(entryA).Colliding {
		t.Error("collision flags not cleared")
	}
	if want := 1 - cfg.Level.HealthDecrement; math.Abs(level.HP-want) > 1e-12 {
		t.Errorf("hp %v changed without a collision", level.HP)
	}
}

func TestEmptyHealthFailsLevel(t *testing.T) {
	e := newTestLevel(t)
	level := testLevel(t, e)
	_, overlay, script := testEntryData(t, e)
	level.PlayerX = 0.3
	level.HP = cfg.Level.HealthDecrement / 2
	spawnAt(t, e, 40, 62)
	_, bgBefore := script.Timeline.Len()

	UpdateObstacles(e)
	UpdateObstacles(e)

	if level.HP != 0 || !level.Failed {
		t.Fatalf("hp %v failed %v", level.HP, level.Failed)
	}
	if overlay.Banner != cfg.Overlay.FailureMessage {
		t.Errorf("banner %q", overlay.Banner)
	}
	if _, bg := script.Timeline.Len(); bg != bgBefore+1 {
		t.Errorf("%d background actions, want one fade out added", bg-bgBefore)
	}
	if got := ProgressStore().GetInt(cfg.ProgressSection, cfg.ProgressLevel, 1); got != 1 {
		t.Errorf("failed level unlocked level %d", got)
	}
}

func TestMoveUpDown(t *testing.T) {
	level := &components.LevelData{TPS: 60}
	tests := []struct {
		name      string
		o         components.ObstacleData
		wantY     float64
		wantGoing bool
	}{
		{"up", components.ObstacleData{Y: 50, Data: true}, 49.5, true},
		{"down", components.ObstacleData{Y: 50}, 50.5, false},
		{"top flips", components.ObstacleData{Y: 0.25, Data: true}, -0.25, false},
		{"bottom flips", components.ObstacleData{Y: 99.75}, 100.25, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := tt.o
			MoveUpDown(level, &o)
			if o.Y != tt.wantY || o.Data != tt.wantGoing {
				t.Errorf("y %v up %v, want %v %v", o.Y, o.Data, tt.wantY, tt.wantGoing)
			}
		})
	}

	// Half the tick rate moves twice as far per tick.
	slow := &components.LevelData{TPS: 30}
	o := components.ObstacleData{Y: 50}
	MoveUpDown(slow, &o)
	if o.Y != 51 {
		t.Errorf("y %v at 30 TPS, want 51", o.Y)
	}
}

func TestGenerateObstaclesStopsAtCap(t *testing.T) {
	e := newTestLevel(t)
	_, _, script := testEntryData(t, e)
	script.Timeline.Destroy()
	script.Timeline.Init(e)
	script.Timeline.AddAction(generateObstacles, nil, "GenerateObstacles")

	ticks := 0
	for !script.Timeline.Idle() {
		script.Timeline.Process()
		ticks++
		if ticks > 100000 {
			t.Fatal("spawner never finished")
		}
	}
	if n := ObstacleCount(e); n != cfg.Obstacle.SpawnCap {
		t.Errorf("%d obstacles, want %d", n, cfg.Obstacle.SpawnCap)
	}
	// about 3% of ticks spawn at 60 TPS
	if ticks < cfg.Obstacle.SpawnCap*10 {
		t.Errorf("cap reached after only %d ticks", ticks)
	}

	for i := 0; i < 100; i++ {
		script.Timeline.Process()
	}
	if n := ObstacleCount(e); n != cfg.Obstacle.SpawnCap {
		t.Errorf("%d obstacles after the spawner finished", n)
	}
}

func TestSpawnRollRate(t *testing.T) {
	for _, tps := range []int{30, 60, 120} {
		level := &components.LevelData{TPS: tps, Rand: rand.New(rand.NewSource(7))}
		hits := 0
		const seconds = 200
		for i := 0; i < seconds*tps; i++ {
			if spawnRoll(level) {
				hits++
			}
		}
		// 3 in 100 ticks at 60 TPS is 1.8 spawns per second
		if rate := float64(hits) / seconds; rate < 1.2 || rate > 2.4 {
			t.Errorf("%d TPS: %.2f spawns per second", tps, rate)
		}
	}
}

func TestScriptArgsReleasedOnDestroy(t *testing.T) {
	e := newTestLevel(t)
	_, overlay, script := testEntryData(t, e)
	tl := script.Timeline
	tl.Destroy()
	tl.Init(e)

	actions := []*Action{
		tl.AddBackgroundAction(fadeIn, nil, 0, "FadeIn"),
		tl.AddBackgroundAction(welcome, nil, 0, "Welcome"),
		tl.AddBackgroundAction(generateObstacles, nil, 0, "GenerateObstacles"),
		tl.AddAction(letter, nil, "Letter"),
	}
	for i := 0; i < 3; i++ {
		tl.Process()
	}
	if len(overlay.Fades) != 1 || !overlay.Letter || overlay.Welcome == 0 {
		t.Fatalf("overlay not shown: %+v", overlay)
	}

	tl.Destroy()
	for _, a := range actions {
		if a.Args != nil {
			t.Errorf("%s kept args %v", a.Name, a.Args)
		}
	}
	if len(overlay.Fades) != 0 || overlay.Letter || overlay.Welcome != 0 {
		t.Errorf("overlay left behind: %+v", overlay)
	}
	if !tl.Idle() {
		t.Error("timeline not empty")
	}
}
