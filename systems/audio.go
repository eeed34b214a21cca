package systems

import (
	"io/fs"
	"sync"

	"github.com/automoto/muffinattack/assets"
	"github.com/automoto/muffinattack/components"
	cfg "github.com/automoto/muffinattack/config"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// mixer is the process wide audio state. The audio context can only be
// created once, so it outlives the scenes.
type mixer struct {
	once   sync.Once
	fsys   fs.FS
	loader *assets.AudioLoader

	music    *audio.Player
	musicKey string

	musicVolume float64
	sfxVolume   float64

	fadeLeft  int
	fadeTotal int
	fadeFrom  float64
}

var sound = &mixer{
	musicVolume: cfg.Audio.MusicVolume,
	sfxVolume:   cfg.Audio.SFXVolume,
}

// InitAudio sets the file system music and sound effects are read from.
// Must be called before the first audio system runs.
func InitAudio(fsys fs.FS) {
	sound.fsys = fsys
}

func (m *mixer) init() {
	m.once.Do(func() {
		ctx := audio.NewContext(cfg.Audio.SampleRate)
		m.loader = assets.NewAudioLoader(ctx, m.fsys)
	})
}

// closeMusic drops the current track and any fade running on it.
func (m *mixer) closeMusic() {
	if m.music != nil {
		_ = m.music.Close()
		m.music = nil
		m.musicKey = ""
	}
	m.fadeLeft = 0
}

// tickFade lowers the music volume and reports when the fade has ended.
func (m *mixer) tickFade() (ended bool) {
	if m.fadeLeft <= 0 {
		return false
	}
	m.fadeLeft--
	if m.music != nil && m.fadeTotal > 0 {
		m.music.SetVolume(m.fadeFrom * float64(m.fadeLeft) / float64(m.fadeTotal))
	}
	return m.fadeLeft == 0
}

func (m *mixer) play(id cfg.SoundID) {
	def, ok := cfg.Audio.Sounds[id]
	if !ok || m.sfxVolume <= 0 {
		return
	}
	player, err := m.loader.LoadSFX(def.Path)
	if err != nil {
		return
	}
	player.SetVolume(m.sfxVolume * def.Gain)
	player.Play()
}

// PreloadAllSFX decodes every sound effect so the first play does not stall.
func PreloadAllSFX() {
	sound.init()
	for _, def := range cfg.Audio.Sounds {
		if err := sound.loader.PreloadSFX(def.Path); err != nil {
			log.Debug("sound effect not preloaded", "path", def.Path, "err", err)
		}
	}
}

// UpdateAudio plays queued sound effects, runs the music fade and keeps the
// level music going once the script has started it.
func UpdateAudio(e *ecs.ECS) {
	sound.init()
	if sound.tickFade() {
		StopMusic(e)
	}

	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	data := components.Audio.Get(entry)
	for _, id := range data.PendingSFX {
		sound.play(id)
	}
	data.PendingSFX = data.PendingSFX[:0]

	if data.MusicOn && sound.music != nil && !sound.music.IsPlaying() && !GetOrCreatePause(e).Open {
		restoreMusic(data)
	}
}

// PlayMusic loops the track at musicPath. Missing files are skipped.
func PlayMusic(e *ecs.ECS, musicPath string) {
	sound.init()
	if sound.musicKey == musicPath {
		return
	}
	player, err := sound.loader.LoadMusic(musicPath)
	if err != nil {
		log.Debug("music not played", "path", musicPath, "err", err)
		return
	}
	StopMusic(e)

	player.SetVolume(sound.musicVolume)
	player.Play()
	sound.music, sound.musicKey = player, musicPath
}

// LoadLevelMusic prepares the level track without playing it. The script
// starts it with StartLevelMusic.
func LoadLevelMusic(e *ecs.ECS, musicPath string) error {
	sound.init()
	player, err := sound.loader.LoadMusic(musicPath)
	if err != nil {
		return err
	}
	StopMusic(e)

	player.SetVolume(sound.musicVolume)
	sound.music, sound.musicKey = player, musicPath

	data := GetOrCreateAudio(e)
	data.MusicPath = musicPath
	data.MusicOn = false
	data.MusicPos = 0
	return nil
}

// StartLevelMusic plays the loaded level track. It does nothing once the
// track has been unloaded.
func StartLevelMusic(e *ecs.ECS) {
	data := GetOrCreateAudio(e)
	if data.MusicPath == "" || sound.musicKey != data.MusicPath || sound.music == nil {
		return
	}
	data.MusicOn = true
	sound.music.Play()
}

// FadeOutMusic fades the current track out over cfg.Audio.MusicFade and then
// stops it.
func FadeOutMusic(e *ecs.ECS) {
	if sound.music == nil {
		return
	}
	sound.fadeTotal = max(int(cfg.Audio.MusicFade.Seconds()*float64(cfg.C.TPS)), 1)
	sound.fadeLeft = sound.fadeTotal
	sound.fadeFrom = sound.musicVolume
}

// StopMusic closes the current track and forgets the level music.
func StopMusic(e *ecs.ECS) {
	sound.closeMusic()
	if entry, ok := components.Audio.First(e.World); ok {
		data := components.Audio.Get(entry)
		data.MusicOn = false
		data.MusicPath = ""
		data.MusicPos = 0
	}
}

// PauseMusic stores the playback position and pauses.
func PauseMusic(e *ecs.ECS) {
	if sound.music == nil {
		return
	}
	GetOrCreateAudio(e).MusicPos = sound.music.Position()
	sound.music.Pause()
}

// ResumeMusic continues from the stored position. Level music that the script
// has not started yet stays silent.
func ResumeMusic(e *ecs.ECS) {
	if sound.music == nil {
		return
	}
	data := GetOrCreateAudio(e)
	if data.MusicPath != "" && !data.MusicOn {
		return
	}
	restoreMusic(data)
}

func restoreMusic(data *components.AudioData) {
	if err := sound.music.SetPosition(data.MusicPos); err != nil {
		log.Debug("could not restore music position", "err", err)
	}
	sound.music.Play()
}

// PlaySFX queues a sound effect for the next UpdateAudio.
func PlaySFX(e *ecs.ECS, id cfg.SoundID) {
	data := GetOrCreateAudio(e)
	data.PendingSFX = append(data.PendingSFX, id)
}

// SetMusicVolume sets the music volume, 0 to 1. A running fade keeps its
// own volume.
func SetMusicVolume(volume float64) {
	sound.musicVolume = volume
	if sound.music != nil && sound.fadeLeft == 0 {
		sound.music.SetVolume(volume)
	}
}

// SetSFXVolume sets the effects volume, 0 to 1.
func SetSFXVolume(volume float64) {
	sound.sfxVolume = volume
}

func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
	}
	return components.Audio.Get(entry)
}
