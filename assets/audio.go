package assets

import (
	"bytes"
	"embed"
	"encoding/binary"
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

//go:embed all:audio
var audioFS embed.FS

// DecodeSFX reads an embedded sound effect into memory at its native rate.
func DecodeSFX(path string) (*beep.Buffer, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".wav" {
		return nil, fmt.Errorf("unsupported audio format: %s", ext)
	}

	data, err := audioFS.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file %s: %w", path, err)
	}

	stream, format, err := wav.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode wav %s: %w", path, err)
	}
	defer stream.Close()

	buf := beep.NewBuffer(format)
	buf.Append(stream)
	if err := stream.Err(); err != nil {
		return nil, fmt.Errorf("failed to read decoded audio %s: %w", path, err)
	}
	return buf, nil
}

// DetuneRatio converts a pitch offset in cents to a playback speed factor.
func DetuneRatio(cents float64) float64 {
	return math.Pow(2, cents/1200)
}

// RenderPCM resamples buf to sampleRate, shifted by detune cents, and returns
// 16-bit little-endian stereo PCM as expected by ebiten's audio players.
func RenderPCM(buf *beep.Buffer, sampleRate int, cents float64, quality int) []byte {
	src := buf.Streamer(0, buf.Len())
	ratio := float64(buf.Format().SampleRate) / float64(sampleRate) * DetuneRatio(cents)
	resampled := beep.ResampleRatio(quality, ratio, src)

	expected := int(float64(buf.Len())/ratio) + 1
	out := make([]byte, 0, expected*4)
	samples := make([][2]float64, 512)
	for {
		n, ok := resampled.Stream(samples)
		for _, s := range samples[:n] {
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(s[0])))
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(s[1])))
		}
		if !ok {
			break
		}
	}
	return out
}

func toInt16(v float64) int16 {
	v = math.Max(-1, math.Min(1, v))
	return int16(v * math.MaxInt16)
}

// AudioLoader handles loading and caching of audio assets
type AudioLoader struct {
	sfxCache map[string]*beep.Buffer
	context  *audio.Context
	quality  int
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context, quality int) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[string]*beep.Buffer),
		context:  ctx,
		quality:  quality,
	}
}

// PreloadSFX decodes a sound effect and caches it without creating a player.
func (l *AudioLoader) PreloadSFX(path string) error {
	if _, ok := l.sfxCache[path]; ok {
		return nil
	}

	buf, err := DecodeSFX(path)
	if err != nil {
		return err
	}
	l.sfxCache[path] = buf
	return nil
}

// LoadSFX returns a new player for the sound effect, pitch shifted by cents.
func (l *AudioLoader) LoadSFX(path string, cents float64) (*audio.Player, error) {
	if err := l.PreloadSFX(path); err != nil {
		return nil, err
	}

	pcm := RenderPCM(l.sfxCache[path], l.context.SampleRate(), cents, l.quality)
	return l.context.NewPlayerFromBytes(pcm), nil
}
