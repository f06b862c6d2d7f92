package styles

import (
	"math"

	"github.com/melodyclass/scenesynth/internal/color"
	"github.com/melodyclass/scenesynth/internal/scatter"
	"github.com/melodyclass/scenesynth/internal/scene"
)

// RadialRing is one concentric spike layer tied to a frequency band.
// SpecLo/SpecHi bound the spectrum sub-range (as fractions of its length)
// the ring samples.
type RadialRing struct {
	Name        string
	Spikes      int
	InnerRatio  float64 // inner radius as fraction of min canvas dimension
	MaxLenRatio float64 // max spike extension beyond the inner radius
	SpecLo      float64
	SpecHi      float64
	StrokeWidth float64
	AngleOffset float64
}

// RadialConfig tunes the radial style.
type RadialConfig struct {
	Rings []RadialRing
}

// DefaultRadialConfig returns the three bass/mid/treble rings used by the
// registered style.
func DefaultRadialConfig() RadialConfig {
	return RadialConfig{Rings: []RadialRing{
		{Name: "bass", Spikes: 32, InnerRatio: 0.10, MaxLenRatio: 0.34, SpecLo: 0, SpecHi: 0.2, StrokeWidth: 3.5},
		{Name: "mid", Spikes: 48, InnerRatio: 0.17, MaxLenRatio: 0.26, SpecLo: 0.2, SpecHi: 0.6, StrokeWidth: 2.5, AngleOffset: math.Pi / 48},
		{Name: "treble", Spikes: 64, InnerRatio: 0.24, MaxLenRatio: 0.19, SpecLo: 0.6, SpecHi: 1, StrokeWidth: 1.5, AngleOffset: math.Pi / 32},
	}}
}

// sceneRotation is the whole-scene rotation for a frame: a slow spin that
// speeds up with amplitude, applied uniformly to every ring.
func sceneRotation(frameIndex int, amplitude float64) float64 {
	return float64(frameIndex) * 0.008 * (0.6 + 0.8*amplitude)
}

// RadialLayers emits one layer of spikes per ring. Spike length combines the
// sampled spectrum value with the overall amplitude, the ring's band energy,
// and the beat pulse; spike angles share the whole-scene rotation.
func RadialLayers(in Input, cfg RadialConfig) []scene.Layer {
	l := len(in.Frame.Spectrum)
	min := minDim(in)
	cx, cy := float64(in.Width)/2, float64(in.Height)/2
	rotation := sceneRotation(in.FrameIndex, in.Frame.Amplitude)

	ringColors := []color.RGB{in.Scheme.Primary, in.Scheme.Secondary, in.Scheme.Accent}

	layers := make([]scene.Layer, 0, len(cfg.Rings)+1)
	for ri, ring := range cfg.Rings {
		layer := scene.Layer{Name: "spikes-" + ring.Name}
		if ring.Spikes > 0 && l > 0 {
			inner := min * ring.InnerRatio
			maxLen := min * ring.MaxLenRatio
			band := ringBand(ring.Name, in)
			c := ringColors[ri%len(ringColors)]

			lo := int(ring.SpecLo * float64(l))
			hi := int(ring.SpecHi * float64(l))
			if hi <= lo {
				hi = lo + 1
			}

			for i := 0; i < ring.Spikes; i++ {
				idx := lo + SpectrumIndex(i, ring.Spikes, hi-lo)
				v := spectrumAt(in.Frame.Spectrum, idx)
				length := inner + v*maxLen*(0.6+0.4*in.Frame.Amplitude+0.35*band+0.45*in.BeatPulse)
				angle := float64(i)*(2*math.Pi/float64(ring.Spikes)) - math.Pi/2 + rotation + ring.AngleOffset

				sin, cos := math.Sincos(angle)
				layer.Primitives = append(layer.Primitives, scene.Segment{
					X1: cx + cos*inner, Y1: cy + sin*inner,
					X2: cx + cos*length, Y2: cy + sin*length,
					StrokeWidth: ring.StrokeWidth,
					Color:       c,
					Opacity:     0.85,
				})
			}
		}
		layers = append(layers, layer)
	}

	core := scene.Layer{Name: "core"}
	if l > 0 && len(cfg.Rings) > 0 {
		r := min * cfg.Rings[0].InnerRatio * 0.55 * (1 + 0.35*in.Bands.Bass + 0.3*in.BeatPulse)
		core.Primitives = append(core.Primitives, scene.Disc{
			CX: cx, CY: cy, R: r, Color: in.Scheme.Primary, Opacity: 0.9,
		})
	}
	layers = append(layers, core)
	return layers
}

func ringBand(name string, in Input) float64 {
	switch name {
	case "bass":
		return in.Bands.Bass
	case "mid":
		return in.Bands.Mid
	case "treble":
		return in.Bands.Treble
	default:
		return in.Frame.Amplitude
	}
}

// radialDecor scatters the star field behind the rings.
func radialDecor(in Input) scene.Layer {
	cx, cy := float64(in.Width)/2, float64(in.Height)/2
	maxR := math.Hypot(cx, cy)

	layer := scene.Layer{Name: "stars"}
	for _, e := range scatter.Field(90, 11) {
		sin, cos := math.Sincos(e.Angle)
		layer.Primitives = append(layer.Primitives, scene.Disc{
			CX:      cx + cos*e.Dist*maxR,
			CY:      cy + sin*e.Dist*maxR,
			R:       e.Size,
			Color:   in.Scheme.Accent,
			Opacity: 0.5 * scatter.Twinkle(e, in.FrameIndex),
		})
	}
	return layer
}
