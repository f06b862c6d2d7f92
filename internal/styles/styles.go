// Package styles holds the geometry generators that turn one audio frame
// into positioned, colored primitives, plus the assembler that stacks their
// output into a layered scene. Every function here is pure: identical input
// always yields an identical scene, in any evaluation order.
package styles

import (
	"sort"

	"github.com/melodyclass/scenesynth/internal/analysis"
	"github.com/melodyclass/scenesynth/internal/color"
	"github.com/melodyclass/scenesynth/internal/scene"
)

// Input is the common contract shared by all generators: one frame of audio
// features plus the visual parameters derived for that frame. Smoothed and
// Peaks are the spectrum's exponential-smoothing and peak-hold envelopes,
// precomputed by the caller from the track history.
type Input struct {
	Frame      analysis.Frame
	Bands      analysis.FrequencyBands
	Smoothed   []float64
	Peaks      []float64
	BeatPulse  float64
	FrameIndex int
	Width      int
	Height     int
	Scheme     color.Scheme
	Scale      float64
	Opacity    float64
}

type generator struct {
	primary func(Input) []scene.Layer
	decor   func(Input) scene.Layer
}

// DefaultStyle is the fallback for unknown style names, matching the
// platform's composition default.
const DefaultStyle = "circular"

var registry = map[string]generator{
	"bars": {
		primary: func(in Input) []scene.Layer { return BarsLayers(in, DefaultBarsConfig()) },
		decor:   barsDecor,
	},
	"radial": {
		primary: func(in Input) []scene.Layer { return RadialLayers(in, DefaultRadialConfig()) },
		decor:   radialDecor,
	},
	"circular": {
		primary: func(in Input) []scene.Layer { return CircularLayers(in, DefaultCircularConfig()) },
		decor:   circularDecor,
	},
}

// Names returns the known style names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Known reports whether name is a registered style.
func Known(name string) bool {
	_, ok := registry[name]
	return ok
}

// SpectrumIndex maps bucket i of numBuckets onto a spectrum of length l:
// floor(i / numBuckets * l).
func SpectrumIndex(i, numBuckets, l int) int {
	if numBuckets <= 0 {
		return 0
	}
	idx := int(float64(i) / float64(numBuckets) * float64(l))
	if idx >= l {
		idx = l - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}

// spectrumAt reads bin idx defensively; out-of-range reads are 0 so a
// malformed frame degrades to silent geometry instead of a panic.
func spectrumAt(spectrum []float64, idx int) float64 {
	if idx < 0 || idx >= len(spectrum) {
		return 0
	}
	return analysis.Clamp01(spectrum[idx])
}

func clamp01(v float64) float64 {
	if v != v || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func minDim(in Input) float64 {
	w, h := float64(in.Width), float64(in.Height)
	if w < h {
		return w
	}
	return h
}
