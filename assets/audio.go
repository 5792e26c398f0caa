package assets

import (
	"bytes"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/milk9111/mageknight/prefabs"
)

// AudioDir is where sound files live, relative to the assets root.
const AudioDir = "audio"

type stream interface {
	io.ReadSeeker
	Length() int64
}

// Mixer plays effects and looping music. A numbered channel holds one sound
// at a time; a new clip on a busy channel cuts the old one off. Channel 0 is
// unmanaged.
type Mixer struct {
	ctx    *audio.Context
	logger *log.Logger
	spec   prefabs.MixerSpec

	pcm      map[string][]byte
	channels map[int]*audio.Player
	loose    []*audio.Player
	music    *audio.Player
	warned   map[string]bool
}

func NewMixer(ctx *audio.Context, spec prefabs.MixerSpec, logger *log.Logger) *Mixer {
	if logger == nil {
		logger = log.Default()
	}
	return &Mixer{
		ctx:      ctx,
		logger:   logger,
		spec:     spec,
		pcm:      make(map[string][]byte),
		channels: make(map[int]*audio.Player),
		warned:   make(map[string]bool),
	}
}

// ApplySpec updates volumes on the fly.
func (m *Mixer) ApplySpec(spec prefabs.MixerSpec) {
	m.spec = spec
	if m.music != nil {
		m.music.SetVolume(spec.MusicVolume)
	}
}

func (m *Mixer) PlayClip(file string, channel int) {
	pcm, err := m.load(file)
	if err != nil {
		m.warn(file, err)
		return
	}
	p := m.ctx.NewPlayerFromBytes(pcm)
	p.SetVolume(m.spec.SFXVolume)

	if channel > 0 {
		if old := m.channels[channel]; old != nil {
			_ = old.Close()
		}
		m.channels[channel] = p
	} else {
		m.prune()
		m.loose = append(m.loose, p)
	}
	p.Play()
}

func (m *Mixer) PlayLoop(file string) {
	s, err := m.decode(file)
	if err != nil {
		m.warn(file, err)
		return
	}
	p, err := m.ctx.NewPlayer(audio.NewInfiniteLoop(s, s.Length()))
	if err != nil {
		m.warn(file, err)
		return
	}
	if m.music != nil {
		_ = m.music.Close()
	}
	p.SetVolume(m.spec.MusicVolume)
	p.Play()
	m.music = p
}

// StopMusic silences the background loop.
func (m *Mixer) StopMusic() {
	if m.music != nil {
		m.music.Pause()
	}
}

// ResumeMusic continues a paused loop.
func (m *Mixer) ResumeMusic() {
	if m.music != nil && !m.music.IsPlaying() {
		m.music.Play()
	}
}

func (m *Mixer) prune() {
	kept := m.loose[:0]
	for _, p := range m.loose {
		if p.IsPlaying() {
			kept = append(kept, p)
			continue
		}
		_ = p.Close()
	}
	m.loose = kept
}

// load decodes a whole clip to PCM once and caches it.
func (m *Mixer) load(file string) ([]byte, error) {
	if b, ok := m.pcm[file]; ok {
		return b, nil
	}
	s, err := m.decode(file)
	if err != nil {
		return nil, err
	}
	b, err := io.ReadAll(s)
	if err != nil {
		return nil, fmt.Errorf("assets: read pcm %s: %w", file, err)
	}
	m.pcm[file] = b
	return b, nil
}

func (m *Mixer) decode(file string) (stream, error) {
	data, err := LoadFile(path.Join(AudioDir, file))
	if err != nil {
		return nil, fmt.Errorf("assets: read %s: %w", file, err)
	}
	r := bytes.NewReader(data)
	rate := m.ctx.SampleRate()

	var s stream
	switch ext := strings.ToLower(path.Ext(file)); ext {
	case ".wav":
		s, err = wav.DecodeWithSampleRate(rate, r)
	case ".mp3":
		s, err = mp3.DecodeWithSampleRate(rate, r)
	case ".ogg":
		s, err = vorbis.DecodeWithSampleRate(rate, r)
	default:
		return nil, fmt.Errorf("assets: unsupported audio format %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", file, err)
	}
	return s, nil
}

func (m *Mixer) warn(file string, err error) {
	if m.warned[file] {
		return
	}
	m.warned[file] = true
	m.logger.Warn("sound unavailable", "file", file, "err", err)
}
