package systems

import (
	"errors"
	"strconv"

	cfg "github.com/automoto/muffinattack/config"
	"github.com/automoto/muffinattack/persistence"
	"github.com/charmbracelet/log"
)

// Settings keys in the config store.
const (
	settingsSection = "Settings"
	keyMusicVolume  = "music_volume"
	keySFXVolume    = "sfx_volume"
)

var progressStore *persistence.Store

// InitPersistence opens the save data of appName. On failure progress is
// kept in memory for this run.
func InitPersistence(appName string) error {
	s, err := persistence.Open(appName)
	progressStore = s
	if err != nil {
		log.Warn("could not load saved data", "err", err)
		return err
	}
	return nil
}

// SetProgressStore replaces the store used by the scenes.
func SetProgressStore(s *persistence.Store) {
	progressStore = s
}

// ProgressStore returns the store opened by InitPersistence, or a memory-only
// one when it was never opened.
func ProgressStore() *persistence.Store {
	if progressStore == nil {
		progressStore = persistence.NewStore(nil)
	}
	return progressStore
}

// LevelPassed records that level current was finished. Finishing the highest
// unlocked level unlocks the next; finishing the last level marks the game as
// completed.
func LevelPassed(store *persistence.Store, current int) {
	if current < cfg.Level.LastLevel {
		available := store.GetInt(cfg.ProgressSection, cfg.ProgressLevel, 1) + 1
		if available < 2 || available > cfg.Level.MaxLevel {
			available = 1
		}
		if available == current+1 {
			store.SetInt(cfg.ProgressSection, cfg.ProgressLevel, available)
			log.Info("level unlocked", "level", available)
		}
	} else {
		store.Set(cfg.ProgressSection, cfg.ProgressDone, "1")
		log.Info("game completed")
	}
	saveStore(store)
}

// LoadProgress returns the highest playable level and whether the game was completed.
func LoadProgress(store *persistence.Store) (unlocked int, completed bool) {
	unlocked = store.GetInt(cfg.ProgressSection, cfg.ProgressLevel, 1)
	if unlocked < 1 || unlocked > cfg.Level.LastLevel {
		unlocked = 1
	}
	return unlocked, store.Get(cfg.ProgressSection, cfg.ProgressDone, "0") == "1"
}

// ApplySavedSettings loads the saved volumes into the audio system.
func ApplySavedSettings(store *persistence.Store) {
	SetMusicVolume(getFloat(store, settingsSection, keyMusicVolume, cfg.Audio.MusicVolume))
	SetSFXVolume(getFloat(store, settingsSection, keySFXVolume, cfg.Audio.SFXVolume))
}

// SaveVolumes stores the volumes set from the command line.
func SaveVolumes(store *persistence.Store, music, sfx float64) {
	store.Set(settingsSection, keyMusicVolume, strconv.FormatFloat(music, 'f', 2, 64))
	store.Set(settingsSection, keySFXVolume, strconv.FormatFloat(sfx, 'f', 2, 64))
	saveStore(store)
}

func getFloat(store *persistence.Store, section, key string, def float64) float64 {
	v, err := strconv.ParseFloat(store.Get(section, key, ""), 64)
	if err != nil {
		return def
	}
	return v
}

func saveStore(store *persistence.Store) {
	if err := store.Save(); err != nil && !errors.Is(err, persistence.ErrNoBackend) {
		log.Warn("could not save progress", "err", err)
	}
}
