package styles

import (
	"math"

	"github.com/melodyclass/scenesynth/internal/color"
	"github.com/melodyclass/scenesynth/internal/scatter"
	"github.com/melodyclass/scenesynth/internal/scene"
)

// CircularConfig tunes the circular style. Zero NumPoints yields empty
// band layers.
type CircularConfig struct {
	NumPoints    int
	Subdivisions int     // smoothed sub-points per control segment
	BaseRatio    float64 // base radius as fraction of min canvas dimension
	MaxExtRatio  float64 // spectrum-driven extension beyond the base radius
	WaveRatio    float64 // rolling wave amplitude
}

// DefaultCircularConfig returns the tuning used by the registered style.
func DefaultCircularConfig() CircularConfig {
	return CircularConfig{
		NumPoints:    72,
		Subdivisions: 4,
		BaseRatio:    0.14,
		MaxExtRatio:  0.16,
		WaveRatio:    0.012,
	}
}

// circularBand is one closed curve tied to a frequency band, radiating
// outward bass → mid → treble.
type circularBand struct {
	name       string
	multiplier float64
	specLo     float64
	specHi     float64
	wavePhase  float64
	stroke     float64
	filled     bool
}

var circularBands = []circularBand{
	{name: "bass", multiplier: 1.0, specLo: 0, specHi: 0.2, wavePhase: 0, stroke: 3, filled: true},
	{name: "mid", multiplier: 1.45, specLo: 0.2, specHi: 0.6, wavePhase: 2 * math.Pi / 3, stroke: 2.5},
	{name: "treble", multiplier: 1.9, specLo: 0.6, specHi: 1, wavePhase: 4 * math.Pi / 3, stroke: 1.75},
}

// CircularLayers emits one smoothed closed curve per band layer. Each
// control point's radius combines the base ring, the sampled spectrum
// value, and a rolling wave over angle and frame index; the control polygon
// is rounded with Catmull-Rom segments into a dense polyline.
func CircularLayers(in Input, cfg CircularConfig) []scene.Layer {
	l := len(in.Frame.Spectrum)
	min := minDim(in)
	cx, cy := float64(in.Width)/2, float64(in.Height)/2
	bandColors := []color.RGB{in.Scheme.Primary, in.Scheme.Secondary, in.Scheme.Accent}

	layers := make([]scene.Layer, 0, len(circularBands))
	for bi, band := range circularBands {
		layer := scene.Layer{Name: "ring-" + band.name}
		if cfg.NumPoints > 0 && l > 0 {
			base := min * cfg.BaseRatio * band.multiplier
			maxExt := min * cfg.MaxExtRatio
			wave := min * cfg.WaveRatio
			energy := ringBand(band.name, in)

			lo := int(band.specLo * float64(l))
			hi := int(band.specHi * float64(l))
			if hi <= lo {
				hi = lo + 1
			}

			// Prefer the smoothed spectrum when the caller supplied it; the
			// raw frame keeps the curve usable on its own.
			spectrum := in.Frame.Spectrum
			if len(in.Smoothed) == l {
				spectrum = in.Smoothed
			}

			control := make([]scene.Point, cfg.NumPoints)
			for i := 0; i < cfg.NumPoints; i++ {
				idx := lo + SpectrumIndex(i, cfg.NumPoints, hi-lo)
				v := spectrumAt(spectrum, idx)
				angle := float64(i) * (2 * math.Pi / float64(cfg.NumPoints))
				radius := base +
					v*maxExt*(0.6+0.4*in.Frame.Amplitude+0.3*energy+0.4*in.BeatPulse) +
					wave*math.Sin(angle*6+float64(in.FrameIndex)*0.07+band.wavePhase)

				sin, cos := math.Sincos(angle)
				control[i] = scene.Point{X: cx + cos*radius, Y: cy + sin*radius}
			}

			opacity := 0.85
			if band.filled {
				opacity = 0.3
			}
			layer.Primitives = append(layer.Primitives, scene.Path{
				Points:      smoothClosed(control, cfg.Subdivisions),
				Color:       bandColors[bi%len(bandColors)],
				StrokeWidth: band.stroke,
				Opacity:     opacity,
				Filled:      band.filled,
			})
		}
		layers = append(layers, layer)
	}
	return layers
}

// smoothClosed rounds a closed control polygon with Catmull-Rom segments,
// emitting subdiv points per segment.
func smoothClosed(control []scene.Point, subdiv int) []scene.Point {
	n := len(control)
	if n < 3 || subdiv < 1 {
		return control
	}
	out := make([]scene.Point, 0, n*subdiv)
	for i := 0; i < n; i++ {
		p0 := control[(i-1+n)%n]
		p1 := control[i]
		p2 := control[(i+1)%n]
		p3 := control[(i+2)%n]
		for s := 0; s < subdiv; s++ {
			t := float64(s) / float64(subdiv)
			out = append(out, scene.Point{
				X: catmullRom(p0.X, p1.X, p2.X, p3.X, t),
				Y: catmullRom(p0.Y, p1.Y, p2.Y, p3.Y, t),
			})
		}
	}
	return out
}

func catmullRom(p0, p1, p2, p3, t float64) float64 {
	t2 := t * t
	t3 := t2 * t
	return 0.5 * (2*p1 +
		(-p0+p2)*t +
		(2*p0-5*p1+4*p2-p3)*t2 +
		(-p0+3*p1-3*p2+p3)*t3)
}

// circularDecor layers soft nebula blobs under a sparse star field.
func circularDecor(in Input) scene.Layer {
	cx, cy := float64(in.Width)/2, float64(in.Height)/2
	maxR := math.Hypot(cx, cy)
	min := minDim(in)

	layer := scene.Layer{Name: "nebula"}
	for _, e := range scatter.Field(10, 23) {
		sin, cos := math.Sincos(e.Angle)
		layer.Primitives = append(layer.Primitives, scene.Disc{
			CX:      cx + cos*e.Dist*maxR*0.8,
			CY:      cy + sin*e.Dist*maxR*0.8,
			R:       min * 0.04 * e.Size,
			Color:   in.Scheme.Secondary,
			Opacity: 0.07 + 0.05*scatter.Twinkle(e, in.FrameIndex),
		})
	}
	for _, e := range scatter.Field(60, 5) {
		sin, cos := math.Sincos(e.Angle)
		layer.Primitives = append(layer.Primitives, scene.Disc{
			CX:      cx + cos*e.Dist*maxR,
			CY:      cy + sin*e.Dist*maxR,
			R:       e.Size * 0.7,
			Color:   in.Scheme.Accent,
			Opacity: 0.4 * scatter.Twinkle(e, in.FrameIndex),
		})
	}
	return layer
}
