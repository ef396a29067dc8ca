// Package music plays an MP3 or WAV track, or the built-in melody, as an
// endless loop through the Ebitengine audio context.
package music

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	snakeaudio "github.com/vovakirdan/snake-master/internal/audio"
)

var _ snakeaudio.Controller = (*Music)(nil)

// Music loops one track forever. Pause keeps the position so Play resumes
// where the track stopped.
type Music struct {
	mu     sync.Mutex
	player *audio.Player
	source string // file path, or "synth" for the built-in melody
}

// New opens path and prepares it as an infinite loop. MP3 and WAV files
// are supported. When path is empty or missing the built-in melody is used.
func New(path string, volume float64) (*Music, error) {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(snakeaudio.SampleRate)
	}

	src, length, name, err := openTrack(path)
	if err != nil {
		return nil, err
	}

	player, err := ctx.NewPlayer(audio.NewInfiniteLoop(src, length))
	if err != nil {
		return nil, fmt.Errorf("music: create player: %w", err)
	}
	player.SetVolume(clampVolume(volume))

	return &Music{player: player, source: name}, nil
}

// openTrack decodes the track at path, falling back to the synthesized loop.
func openTrack(path string) (io.ReadSeeker, int64, string, error) {
	if path == "" {
		buf := snakeaudio.Melody(snakeaudio.SampleRate)
		return bytes.NewReader(buf), int64(len(buf)), "synth", nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		buf := snakeaudio.Melody(snakeaudio.SampleRate)
		return bytes.NewReader(buf), int64(len(buf)), "synth", nil
	}
	if err != nil {
		return nil, 0, "", fmt.Errorf("music: read %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		s, err := mp3.DecodeWithSampleRate(snakeaudio.SampleRate, bytes.NewReader(data))
		if err != nil {
			return nil, 0, "", fmt.Errorf("music: decode mp3 %s: %w", path, err)
		}
		return s, s.Length(), path, nil
	case ".wav":
		s, err := wav.DecodeWithSampleRate(snakeaudio.SampleRate, bytes.NewReader(data))
		if err != nil {
			return nil, 0, "", fmt.Errorf("music: decode wav %s: %w", path, err)
		}
		return s, s.Length(), path, nil
	default:
		return nil, 0, "", fmt.Errorf("music: unsupported track format %q", filepath.Ext(path))
	}
}

func clampVolume(v float64) float64 {
	return min(max(v, 0), 1)
}

// Source names what is being played.
func (m *Music) Source() string {
	return m.source
}

// Play starts or resumes the loop.
func (m *Music) Play() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.player.IsPlaying() {
		m.player.Play()
	}
}

// Pause stops the loop at its current position.
func (m *Music) Pause() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.player.Pause()
}

// Close releases the player.
func (m *Music) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.player.Pause()
	if err := m.player.Close(); err != nil {
		return fmt.Errorf("music: close player: %w", err)
	}
	return nil
}
