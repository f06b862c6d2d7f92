// Package engine is the entry point of the scene synthesis pipeline: it
// takes a precomputed audio analysis track and per-call parameters and
// returns the layered scene for one frame. The engine owns no state between
// calls, so frames may be composed in any order, concurrently, on any
// worker, with identical results.
package engine

import (
	"log"

	"github.com/melodyclass/scenesynth/internal/analysis"
	"github.com/melodyclass/scenesynth/internal/color"
	"github.com/melodyclass/scenesynth/internal/envelope"
	"github.com/melodyclass/scenesynth/internal/scene"
	"github.com/melodyclass/scenesynth/internal/styles"
)

// Fade tuning: one second of intro and outro, eased with a damping hint
// high enough to keep the rise monotone.
const (
	fadeDamping    = 15
	introScaleFrom = 0.3
)

// Params selects what to compose: the style and color scheme by name, the
// canvas size, and the frame to evaluate. TotalFrames and FPS describe the
// render window; zero values are filled from the track.
type Params struct {
	Style       string `json:"style"`
	ColorScheme string `json:"colorScheme"`
	Width       int    `json:"canvasWidth"`
	Height      int    `json:"canvasHeight"`
	FrameIndex  int    `json:"frameIndex"`
	TotalFrames int    `json:"totalFrames"`
	FPS         int    `json:"fps"`
}

// Defaults mirrors the platform's request defaults: circular style, blue
// scheme, 1080p canvas.
func Defaults() Params {
	return Params{
		Style:       styles.DefaultStyle,
		ColorScheme: color.DefaultSchemeName,
		Width:       1920,
		Height:      1080,
		FPS:         analysis.DefaultFPS,
	}
}

// Resolution maps the platform's named presets to canvas sizes. Unknown
// names resolve to 1080p.
func Resolution(name string) (width, height int) {
	switch name {
	case "720p":
		return 1280, 720
	case "4k":
		return 3840, 2160
	default:
		return 1920, 1080
	}
}

// Engine composes scenes. The logger only reports recoverable fallbacks
// (unknown style or scheme names); a nil logger silences them.
type Engine struct {
	log *log.Logger
}

// New returns an Engine logging fallbacks to logger (may be nil).
func New(logger *log.Logger) *Engine {
	return &Engine{log: logger}
}

// Compose returns the scene for params.FrameIndex of the track. Degenerate
// input degrades instead of failing: the frame index clamps to the track,
// empty spectra produce empty spectrum-driven layers, and unknown style or
// scheme names fall back to the defaults.
func (e *Engine) Compose(track *analysis.Track, p Params) scene.Scene {
	p = e.normalize(track, p)

	frame := track.FrameAt(p.FrameIndex)
	in := styles.Input{
		Frame:      frame,
		Bands:      analysis.Bands(frame.Spectrum),
		Smoothed:   analysis.SmoothSpectrum(track, p.FrameIndex, analysis.SpectrumSmoothing),
		Peaks:      analysis.PeakSpectrum(track, p.FrameIndex, analysis.PeakDecay),
		BeatPulse:  analysis.BeatPulse(track, p.FrameIndex, analysis.DefaultPulse()),
		FrameIndex: p.FrameIndex,
		Width:      p.Width,
		Height:     p.Height,
	}

	var known bool
	in.Scheme, known = color.Lookup(p.ColorScheme)
	if !known && e.log != nil {
		e.log.Printf("unknown color scheme %q, using %q", p.ColorScheme, color.DefaultSchemeName)
	}

	style := p.Style
	if !styles.Known(style) {
		if e.log != nil {
			e.log.Printf("unknown style %q, using %q", style, styles.DefaultStyle)
		}
		style = styles.DefaultStyle
	}

	fadeFrames := p.FPS
	if max := p.TotalFrames / 2; fadeFrames > max {
		fadeFrames = max
	}
	progress := envelope.FadeProgress(p.FrameIndex, p.TotalFrames, fadeFrames, fadeFrames, fadeDamping)
	in.Scale = envelope.FadeScale(progress, introScaleFrom, 1)
	in.Opacity = envelope.FadeOpacity(progress, 0, 1)

	return styles.Compose(style, in)
}

func (e *Engine) normalize(track *analysis.Track, p Params) Params {
	if p.Width <= 0 || p.Height <= 0 {
		p.Width, p.Height = Resolution("")
	}
	if p.TotalFrames <= 0 && track != nil {
		p.TotalFrames = track.TotalFrames
	}
	if p.FPS <= 0 {
		if track != nil && track.FPS > 0 {
			p.FPS = track.FPS
		} else {
			p.FPS = analysis.DefaultFPS
		}
	}
	if p.FrameIndex < 0 {
		p.FrameIndex = 0
	}
	if p.TotalFrames > 0 && p.FrameIndex >= p.TotalFrames {
		p.FrameIndex = p.TotalFrames - 1
	}
	return p
}

// Metadata resolves (totalFrames, fps) from raw track JSON for sizing a
// render job; unparseable input yields the documented defaults.
func Metadata(data []byte) (totalFrames, fps int) {
	return analysis.ResolveMetadata(data)
}
