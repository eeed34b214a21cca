package assets

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// stream is a decoded OGG or WAV file.
type stream interface {
	io.ReadSeeker
	Length() int64
}

// AudioLoader reads music and sound effects from the data directory. Effects
// are decoded once and kept in memory; music is streamed.
type AudioLoader struct {
	ctx  *audio.Context
	fsys fs.FS
	sfx  map[string][]byte
}

func NewAudioLoader(ctx *audio.Context, fsys fs.FS) *AudioLoader {
	return &AudioLoader{
		ctx:  ctx,
		fsys: fsys,
		sfx:  make(map[string][]byte),
	}
}

func (l *AudioLoader) decode(name string) (stream, error) {
	if l.fsys == nil {
		return nil, fmt.Errorf("read audio %s: no data directory", name)
	}
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read audio %s: %w", name, err)
	}

	r := bytes.NewReader(data)
	rate := l.ctx.SampleRate()
	var s stream
	switch ext := strings.ToLower(path.Ext(name)); ext {
	case ".ogg":
		s, err = vorbis.DecodeWithSampleRate(rate, r)
	case ".wav":
		s, err = wav.DecodeWithSampleRate(rate, r)
	default:
		return nil, fmt.Errorf("audio %s: unsupported format %q", name, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("decode audio %s: %w", name, err)
	}
	return s, nil
}

// PreloadSFX decodes an effect into the cache.
func (l *AudioLoader) PreloadSFX(name string) error {
	if _, ok := l.sfx[name]; ok {
		return nil
	}
	s, err := l.decode(name)
	if err != nil {
		return err
	}
	pcm, err := io.ReadAll(s)
	if err != nil {
		return fmt.Errorf("decode audio %s: %w", name, err)
	}
	l.sfx[name] = pcm
	return nil
}

// LoadSFX returns a fresh player over a cached effect.
func (l *AudioLoader) LoadSFX(name string) (*audio.Player, error) {
	if err := l.PreloadSFX(name); err != nil {
		return nil, err
	}
	return l.ctx.NewPlayerFromBytes(l.sfx[name]), nil
}

// LoadMusic returns a player looping the track forever. It is not cached.
func (l *AudioLoader) LoadMusic(name string) (*audio.Player, error) {
	s, err := l.decode(name)
	if err != nil {
		return nil, err
	}
	return l.ctx.NewPlayer(audio.NewInfiniteLoop(s, s.Length()))
}
