package config

import "time"

// SoundID names a sound effect.
type SoundID int

const (
	SoundNone SoundID = iota
	SoundHit
	SoundMenuNavigate
	SoundMenuSelect
)

// SoundDef is an effect file inside the data directory and its gain relative
// to the effects volume.
type SoundDef struct {
	Path string
	Gain float64
}

// AudioConfig holds the mixer defaults and the sound table. Volumes are
// replaced by the saved settings at startup.
type AudioConfig struct {
	SampleRate  int
	MusicVolume float64
	SFXVolume   float64
	MusicFade   time.Duration

	MapMusic string
	Sounds   map[SoundID]SoundDef
}

var Audio AudioConfig

func init() {
	Audio = AudioConfig{
		SampleRate:  44100,
		MusicVolume: 0.75,
		SFXVolume:   1,
		MusicFade:   time.Second,

		MapMusic: "music/map.ogg",
		Sounds: map[SoundID]SoundDef{
			SoundHit:          {Path: "sfx/hit.wav", Gain: 0.6},
			SoundMenuNavigate: {Path: "sfx/menu_navigate.wav", Gain: 1},
			SoundMenuSelect:   {Path: "sfx/menu_select.wav", Gain: 1},
		},
	}
}
