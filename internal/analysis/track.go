package analysis

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Defaults used when a track cannot be parsed or carries nonsense values.
// The only consumer of resolver output is sizing a render job, so a bad
// track degrades to a short clip instead of failing the pipeline.
const (
	DefaultFPS         = 30
	DefaultTotalFrames = 300
)

// Frame is one time sample of the precomputed audio analysis: an RMS
// amplitude and a fixed-length spectrum, both normalized to [0,1] by the
// analysis service.
type Frame struct {
	Time      float64   `json:"time"`
	Amplitude float64   `json:"amplitude"`
	Spectrum  []float64 `json:"spectrum"`
}

// Track is the full time-indexed feature track for one audio file.
// Frames are nominally spaced 1/FPS seconds apart.
type Track struct {
	Duration    float64 `json:"duration"`
	FPS         int     `json:"fps"`
	TotalFrames int     `json:"total_frames"`
	Frames      []Frame `json:"frames"`
}

// DecodeTrack parses a JSON analysis track and sanitizes it: amplitudes and
// spectrum samples are clamped to [0,1], a missing or non-positive fps
// becomes DefaultFPS, and TotalFrames is reconciled with len(Frames).
func DecodeTrack(r io.Reader) (*Track, error) {
	var t Track
	if err := json.NewDecoder(r).Decode(&t); err != nil {
		return nil, fmt.Errorf("decode track: %w", err)
	}
	t.sanitize()
	return &t, nil
}

// LoadTrack reads and decodes a track from a JSON file.
func LoadTrack(path string) (*Track, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open track: %w", err)
	}
	defer f.Close()
	return DecodeTrack(f)
}

func (t *Track) sanitize() {
	if t.FPS <= 0 {
		t.FPS = DefaultFPS
	}
	t.TotalFrames = len(t.Frames)
	if t.Duration <= 0 && t.FPS > 0 {
		t.Duration = float64(t.TotalFrames) / float64(t.FPS)
	}
	for i := range t.Frames {
		f := &t.Frames[i]
		f.Amplitude = Clamp01(f.Amplitude)
		for j, v := range f.Spectrum {
			f.Spectrum[j] = Clamp01(v)
		}
	}
}

// FrameAt returns the frame for index i, clamped to the valid range. An
// empty track yields a silent zero frame so callers never branch on length.
func (t *Track) FrameAt(i int) Frame {
	if t == nil || len(t.Frames) == 0 {
		return Frame{}
	}
	if i < 0 {
		i = 0
	}
	if i >= len(t.Frames) {
		i = len(t.Frames) - 1
	}
	return t.Frames[i]
}

// ResolveMetadata extracts (totalFrames, fps) from raw track JSON so the
// external renderer can size its output sequence. Unparseable or degenerate
// input resolves to the documented defaults rather than an error.
func ResolveMetadata(data []byte) (totalFrames, fps int) {
	var t Track
	if err := json.Unmarshal(data, &t); err != nil {
		return DefaultTotalFrames, DefaultFPS
	}
	totalFrames = t.TotalFrames
	if n := len(t.Frames); n > 0 {
		totalFrames = n
	}
	if totalFrames <= 0 {
		totalFrames = DefaultTotalFrames
	}
	fps = t.FPS
	if fps <= 0 {
		fps = DefaultFPS
	}
	return totalFrames, fps
}

// Clamp01 bounds v to [0,1]. NaN clamps to 0 so bad samples cannot
// propagate into geometry.
func Clamp01(v float64) float64 {
	if v != v || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
