package components

import (
	"time"

	cfg "github.com/automoto/muffinattack/config"
	"github.com/yohamta/donburi"
)

// AudioData stores the world's queued sound effects and the level music state.
type AudioData struct {
	PendingSFX []cfg.SoundID

	MusicPath string
	MusicOn   bool          // started by the script; resumed after pauses
	MusicPos  time.Duration // position stored when the level was paused
}

var Audio = donburi.NewComponentType[AudioData]()
