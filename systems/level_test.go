package systems

import (
	"bytes"
	"os"
	"strings"
	"testing"

	cfg "github.com/automoto/muffinattack/config"
	"github.com/automoto/muffinattack/tags"
	"github.com/charmbracelet/log"
)

func TestLoadLevelInitialState(t *testing.T) {
	e := newTestLevel(t)
	level := testLevel(t, e)
	sheets, overlay, script := testEntryData(t, e)

	if level.HP != 1 || level.Speed != 0 || level.MeterAlpha != 0 {
		t.Errorf("hp %v speed %v meter %v, want 1 0 0", level.HP, level.Speed, level.MeterAlpha)
	}
	if level.PlayerX != -0.2 || level.PlayerY != 0.6 || level.SheetSpeed != 2.4 {
		t.Errorf("player (%v, %v) sheet speed %v", level.PlayerX, level.PlayerY, level.SheetSpeed)
	}
	if level.HandleInput || level.Flying {
		t.Error("input and flying should start disabled")
	}
	want := [4]float64{0, 0, 0.1, 0.2}
	if level.Scroll != want {
		t.Errorf("scroll %v, want %v", level.Scroll, want)
	}

	var names []string
	for _, s := range sheets.Sheets {
		names = append(names, s.Name)
	}
	if got := strings.Join(names, ","); got != "walk,fly,run,stand" {
		t.Errorf("sheets %s", got)
	}
	if sheets.Active == nil || sheets.Active.Name != cfg.SheetStand {
		t.Errorf("active sheet %v, want stand", sheets.Active)
	}
	if ObstacleCount(e) != 0 {
		t.Errorf("%d obstacles at load", ObstacleCount(e))
	}
	if len(overlay.Fades) != 0 || overlay.Letter {
		t.Error("overlay not reset")
	}

	fg, bg := script.Timeline.Len()
	if fg != 15 || bg != 1 {
		t.Errorf("script has %d foreground / %d background actions, want 15 / 1", fg, bg)
	}
}

func TestLevelScript(t *testing.T) {
	e := newTestLevel(t)
	level := testLevel(t, e)
	sheets, overlay, _ := testEntryData(t, e)

	// The fade-in covers the screen on the first tick and is gone within a second.
	tick(e)
	if len(overlay.Fades) != 1 {
		t.Fatalf("%d fades after the first tick, want 1", len(overlay.Fades))
	}
	tickUntil(t, e, 60, "fade in", func() bool { return len(overlay.Fades) == 0 })

	var welcomeMax float64
	tickUntil(t, e, 3000, "letter", func() bool {
		welcomeMax = max(welcomeMax, overlay.Welcome)
		return overlay.Letter
	})
	if welcomeMax != 255 {
		t.Errorf("welcome card peaked at %v, want 255", welcomeMax)
	}
	if level.PlayerX < cfg.Level.WalkTargetX {
		t.Errorf("player stopped at x %v before the walk target", level.PlayerX)
	}
	if level.StageOffset() < cfg.Level.MoveStageTarget {
		t.Errorf("stage offset %v, want >= %v", level.StageOffset(), cfg.Level.MoveStageTarget)
	}
	if level.Speed != 0 || sheets.Active.Name != cfg.SheetStand {
		t.Errorf("speed %v sheet %s while reading the letter", level.Speed, sheets.Active.Name)
	}

	// The letter waits for the player.
	for i := 0; i < 300; i++ {
		tick(e)
	}
	if !overlay.Letter {
		t.Fatal("letter closed without input")
	}
	press(e, cfg.ActionMenuSelect)
	tick(e)
	release(e)
	tick(e)
	if overlay.Letter {
		t.Fatal("letter still open after confirming")
	}

	tickUntil(t, e, 600, "player control", func() bool { return level.HandleInput })
	if !level.Flying || sheets.Active.Name != cfg.SheetFly {
		t.Errorf("flying %v sheet %s after take off", level.Flying, sheets.Active.Name)
	}
	if level.PlayerY > cfg.Level.FlyTargetY {
		t.Errorf("player y %v above cruising height", level.PlayerY)
	}
	if level.MeterAlpha < 254 {
		t.Errorf("meter alpha %v, want fully shown", level.MeterAlpha)
	}
	tickUntil(t, e, 600, "full speed", func() bool { return level.Speed == cfg.Level.MaxSpeed })
}

func TestPlayerInput(t *testing.T) {
	e := newTestLevel(t)
	level := testLevel(t, e)
	sheets, _, _ := testEntryData(t, e)
	SelectSpritesheet(e, cfg.SheetFly)
	level.HandleInput = true
	level.Flying = true
	level.Speed = cfg.Level.MaxSpeed
	level.PlayerY = 0.599

	press(e, cfg.ActionMoveDown)
	UpdatePlayer(e)
	if level.Flying || sheets.Active.Name != cfg.SheetRun {
		t.Fatalf("flying %v sheet %s below the run line", level.Flying, sheets.Active.Name)
	}
	if want := cfg.Level.RunSheetFactor / cfg.Level.MaxSpeed; level.SheetSpeed != want {
		t.Errorf("run sheet speed %v, want %v", level.SheetSpeed, want)
	}

	for i := 0; i < 200; i++ {
		UpdatePlayer(e)
	}
	if level.PlayerY != cfg.Level.MaxY {
		t.Errorf("y %v, want clamped to %v", level.PlayerY, cfg.Level.MaxY)
	}

	release(e)
	press(e, cfg.ActionMoveUp)
	for i := 0; i < 60; i++ {
		UpdatePlayer(e)
	}
	if !level.Flying || sheets.Active.Name != cfg.SheetFly || level.SheetSpeed != cfg.Level.FlySheetSpeed {
		t.Errorf("flying %v sheet %s speed %v above the run line", level.Flying, sheets.Active.Name, level.SheetSpeed)
	}
}

func TestSelectUnknownSpritesheet(t *testing.T) {
	e := newTestLevel(t)
	sheets, _, _ := testEntryData(t, e)
	before := sheets.Active
	w, h := sheets.TargetW, sheets.TargetH

	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	if SelectSpritesheet(e, "gallop") {
		t.Fatal("unknown sheet selected")
	}
	if lines := strings.Count(strings.TrimSpace(buf.String()), "\n") + 1; buf.Len() == 0 || lines != 1 {
		t.Errorf("logged %q, want exactly one line", buf.String())
	}
	if sheets.Active != before || sheets.TargetW != w || sheets.TargetH != h {
		t.Error("selection changed on a miss")
	}
}

func TestUnloadLevel(t *testing.T) {
	e := newTestLevel(t)
	_, overlay, script := testEntryData(t, e)
	for i := 0; i < 5; i++ {
		SpawnObstacle(e)
	}
	tick(e)

	UnloadLevel(e)

	sheets, _, _ := testEntryData(t, e)
	if ObstacleCount(e) != 0 {
		t.Errorf("%d obstacles left", ObstacleCount(e))
	}
	if n := len(getSpace(e).Objects()); n != 0 {
		t.Errorf("%d collision objects left", n)
	}
	if _, ok := tags.Player.First(e.World); ok {
		t.Error("player left in the world")
	}
	if len(sheets.Sheets) != 0 || sheets.Active != nil {
		t.Error("sheet registry not cleared")
	}
	if !script.Timeline.Idle() {
		t.Error("script still has actions")
	}
	if len(overlay.Fades) != 0 {
		t.Errorf("%d fades left after unload", len(overlay.Fades))
	}

	// A second run starts from scratch.
	if err := PreloadLevel(e, cfg.Level.MapPath); err != nil {
		t.Fatal(err)
	}
	PreloadLevelBitmaps(e)
	LoadLevel(e)
	if fg, _ := script.Timeline.Len(); fg != 15 {
		t.Errorf("reloaded script has %d foreground actions", fg)
	}
}

func TestPassLevelRecordsProgressAndLeaves(t *testing.T) {
	e := newTestLevel(t)
	level := testLevel(t, e)
	_, _, script := testEntryData(t, e)

	script.Timeline.Destroy()
	script.Timeline.Init(e)
	script.Timeline.AddAction(passLevel, nil, "PassLevel")

	tickUntil(t, e, 120, "map transition", func() bool { return level.Transition == cfg.SceneMap })
	if got := ProgressStore().GetInt(cfg.ProgressSection, cfg.ProgressLevel, 0); got != 2 {
		t.Errorf("unlocked level %d, want 2", got)
	}
}
