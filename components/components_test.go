package components

import (
	"errors"
	"testing"

	"github.com/automoto/muffinattack/assets"
	cfg "github.com/automoto/muffinattack/config"
	"github.com/solarlune/resolv"
)

func newObject(x, y, w, h float64) *resolv.Object {
	return resolv.NewObject(x, y, w, h)
}

func testSheets() *SpritesheetsData {
	s := &SpritesheetsData{}
	s.Register(assets.SheetDef{Name: "walk", Rows: 3, Cols: 4, Blanks: 1, Speed: 1, Aspect: 1.12, Scale: 1})
	s.Register(assets.SheetDef{Name: "stand", Rows: 2, Cols: 3, Speed: 0.5, Aspect: 0.9, Scale: 1})
	return s
}

func TestSelectSpritesheet(t *testing.T) {
	s := testSheets()
	if err := s.Select("walk", 360, nil); err != nil {
		t.Fatal(err)
	}
	s.Anim.Update(1, 1)
	s.Anim.Update(1, 1)

	if err := s.Select("stand", 360, nil); err != nil {
		t.Fatal(err)
	}
	if s.Active.Name != "stand" || s.Anim.Frame() != 0 || s.Anim.Frames != 6 {
		t.Errorf("active %s frame %d of %d", s.Active.Name, s.Anim.Frame(), s.Anim.Frames)
	}
	if s.TargetW != 81 || s.TargetH != 90 {
		t.Errorf("target %dx%d, want 81x90", s.TargetW, s.TargetH)
	}
}

func TestSelectUnknownKeepsSelection(t *testing.T) {
	s := testSheets()
	if err := s.Select("walk", 360, nil); err != nil {
		t.Fatal(err)
	}
	w, h := s.TargetW, s.TargetH

	err := s.Select("gallop", 360, nil)
	if !errors.Is(err, ErrUnknownSpritesheet) {
		t.Fatalf("err = %v, want ErrUnknownSpritesheet", err)
	}
	if s.Active.Name != "walk" || s.TargetW != w || s.TargetH != h {
		t.Error("selection changed on a miss")
	}

	empty := &SpritesheetsData{}
	if err := empty.Select("walk", 360, nil); !errors.Is(err, ErrUnknownSpritesheet) {
		t.Errorf("empty registry: err = %v", err)
	}
}

func TestRegisterKeepsOrder(t *testing.T) {
	s := testSheets()
	if s.Sheets[0].Name != "walk" || s.Sheets[1].Name != "stand" {
		t.Errorf("order %s, %s", s.Sheets[0].Name, s.Sheets[1].Name)
	}
	if s.Find("stand") != s.Sheets[1] || s.Find("run") != nil {
		t.Error("Find")
	}
	s.Clear()
	if len(s.Sheets) != 0 || s.Active != nil {
		t.Error("Clear left sheets behind")
	}
}

func TestLevelStep(t *testing.T) {
	tests := []struct {
		tps  int
		want float64
	}{
		{60, 0.5},
		{30, 1},
		{120, 0.25},
		{0, 0.5},
	}
	for _, tt := range tests {
		l := &LevelData{TPS: tt.tps}
		if got := l.Step(0.5); got != tt.want {
			t.Errorf("Step at %d TPS = %v, want %v", tt.tps, got, tt.want)
		}
	}
}

func TestOverlaps(t *testing.T) {
	a := ObjectData{Object: newObject(0, 0, 10, 10)}
	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"inside", 5, 5, true},
		{"touching edge", 10, 0, true},
		{"touching corner", 10, 10, true},
		{"apart", 10.5, 0, false},
		{"above", 0, -11, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Overlaps(newObject(tt.x, tt.y, 10, 10)); got != tt.want {
				t.Errorf("Overlaps = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFades(t *testing.T) {
	o := &OverlayData{}
	a, b := &Fade{Alpha: 1}, &Fade{Alpha: 2}
	o.AddFade(a)
	o.AddFade(b)
	o.RemoveFade(a)
	o.RemoveFade(a)
	if len(o.Fades) != 1 || o.Fades[0] != b {
		t.Errorf("fades %v", o.Fades)
	}
}

func TestActionSet(t *testing.T) {
	in := &InputData{}
	in.Held.Add(cfg.ActionMoveUp)
	if !in.Pressed(cfg.ActionMoveUp) || !in.JustPressed(cfg.ActionMoveUp) {
		t.Fatal("first frame should be a fresh press")
	}
	if in.Pressed(cfg.ActionMoveDown) {
		t.Error("unrelated action held")
	}

	in.Advance()
	in.Held.Add(cfg.ActionMoveUp)
	if !in.Pressed(cfg.ActionMoveUp) || in.JustPressed(cfg.ActionMoveUp) {
		t.Error("held action reported as a new press")
	}

	in.Advance()
	if in.Pressed(cfg.ActionMoveUp) {
		t.Error("released action still held")
	}
}

func TestPauseOptionStep(t *testing.T) {
	if got := PauseResume.Step(-1); got != PauseQuit {
		t.Errorf("up from the first entry = %v", got)
	}
	if got := PauseQuit.Step(1); got != PauseResume {
		t.Errorf("down from the last entry = %v", got)
	}
	if got := PauseResume.Step(1); got != PauseLeave {
		t.Errorf("down = %v", got)
	}
}
