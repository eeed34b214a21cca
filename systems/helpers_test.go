package systems

import (
	"testing"

	"github.com/automoto/muffinattack/components"
	cfg "github.com/automoto/muffinattack/config"
	"github.com/automoto/muffinattack/persistence"
	"github.com/automoto/muffinattack/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// fakeImages hands out no real images so tests never touch the graphics driver.
type fakeImages struct {
	loaded []string
}

func (f *fakeImages) LoadScaled(path string, w, h int) *ebiten.Image {
	f.loaded = append(f.loaded, path)
	return nil
}

func (f *fakeImages) NewImage(w, h int) *ebiten.Image { return nil }

func (f *fakeImages) Release(*ebiten.Image) {}

func newTestLevel(t *testing.T) *ecs.ECS {
	t.Helper()
	SetProgressStore(persistence.NewStore(nil))

	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateLevel(e, &fakeImages{}, 60, 1)
	if err := PreloadLevel(e, cfg.Level.MapPath); err != nil {
		t.Fatalf("PreloadLevel: %v", err)
	}
	PreloadLevelBitmaps(e)
	LoadLevel(e)
	return e
}

// tick runs the gameplay systems in scene order, without polling devices.
func tick(e *ecs.ECS) {
	UpdatePlayer(e)
	UpdateObstacles(e)
	UpdateAnimation(e)
	UpdateParallax(e)
	UpdateScript(e)
}

// tickUntil ticks until cond holds, failing after limit ticks.
func tickUntil(t *testing.T, e *ecs.ECS, limit int, what string, cond func() bool) int {
	t.Helper()
	for i := 0; i < limit; i++ {
		if cond() {
			return i
		}
		tick(e)
	}
	t.Fatalf("%s not reached after %d ticks", what, limit)
	return limit
}

func press(e *ecs.ECS, id cfg.ActionID) {
	input := getOrCreateInput(e)
	input.PrevHeld = input.Held
	input.Held.Add(id)
}

func release(e *ecs.ECS) {
	getOrCreateInput(e).Advance()
}

func testLevel(t *testing.T, e *ecs.ECS) *components.LevelData {
	t.Helper()
	level, ok := getLevel(e)
	if !ok {
		t.Fatal("no level entity")
	}
	return level
}

func testEntryData(t *testing.T, e *ecs.ECS) (*components.SpritesheetsData, *components.OverlayData, *components.ScriptData) {
	t.Helper()
	entry, ok := getLevelEntry(e)
	if !ok {
		t.Fatal("no level entity")
	}
	return components.Spritesheets.Get(entry), components.Overlay.Get(entry), components.Script.Get(entry)
}
