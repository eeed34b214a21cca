package systems

import (
	"testing"

	cfg "github.com/automoto/muffinattack/config"
	"github.com/automoto/muffinattack/persistence"
)

func TestLevelPassed(t *testing.T) {
	tests := []struct {
		name          string
		stored        string // "" leaves the key unset
		current       int
		wantLevel     int
		wantCompleted bool
	}{
		{"first pass unlocks level 2", "", 1, 2, false},
		{"replaying an old level keeps progress", "3", 1, 3, false},
		{"highest level unlocks the next", "3", 3, 4, false},
		{"level 5 unlocks level 6", "5", 5, 6, false},
		{"out of range progress is left alone", "9", 1, 9, false},
		{"last level completes the game", "6", 6, 6, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := persistence.NewStore(nil)
			if tt.stored != "" {
				store.Set(cfg.ProgressSection, cfg.ProgressLevel, tt.stored)
			}

			LevelPassed(store, tt.current)

			if got := store.GetInt(cfg.ProgressSection, cfg.ProgressLevel, 1); got != tt.wantLevel {
				t.Errorf("level %d, want %d", got, tt.wantLevel)
			}
			if got := store.Get(cfg.ProgressSection, cfg.ProgressDone, "0") == "1"; got != tt.wantCompleted {
				t.Errorf("completed %v, want %v", got, tt.wantCompleted)
			}
		})
	}
}

func TestLoadProgress(t *testing.T) {
	tests := []struct {
		level, done   string
		wantUnlocked  int
		wantCompleted bool
	}{
		{"", "", 1, false},
		{"4", "", 4, false},
		{"6", "1", 6, true},
		{"abc", "0", 1, false},
		{"12", "", 1, false},
	}
	for _, tt := range tests {
		store := persistence.NewStore(nil)
		if tt.level != "" {
			store.Set(cfg.ProgressSection, cfg.ProgressLevel, tt.level)
		}
		if tt.done != "" {
			store.Set(cfg.ProgressSection, cfg.ProgressDone, tt.done)
		}
		unlocked, completed := LoadProgress(store)
		if unlocked != tt.wantUnlocked || completed != tt.wantCompleted {
			t.Errorf("level %q done %q: got %d %v, want %d %v",
				tt.level, tt.done, unlocked, completed, tt.wantUnlocked, tt.wantCompleted)
		}
	}
}
