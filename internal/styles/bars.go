package styles

import (
	"github.com/melodyclass/scenesynth/internal/scene"
)

// BarsConfig tunes the bar style. Zero NumBars yields empty layers.
type BarsConfig struct {
	NumBars        int
	MaxHeightRatio float64 // of canvas height
	BaselineRatio  float64 // baseline y as fraction of canvas height
	FillRatio      float64 // bar width as fraction of its slot
}

// DefaultBarsConfig returns the tuning used by the registered style.
func DefaultBarsConfig() BarsConfig {
	return BarsConfig{
		NumBars:        72,
		MaxHeightRatio: 0.6,
		BaselineRatio:  0.85,
		FillRatio:      0.68,
	}
}

// BarsLayers partitions the spectrum into equal buckets and emits one bar
// per bucket, a faint reflection below the baseline, and a peak marker where
// the decayed peak still sits above the live bar. Bar height scales with the
// bucket's spectrum value, the overall amplitude, and the band multiplier
// for the bar's third of the row.
func BarsLayers(in Input, cfg BarsConfig) []scene.Layer {
	l := len(in.Frame.Spectrum)
	if cfg.NumBars <= 0 || l == 0 {
		return []scene.Layer{
			{Name: "reflection"},
			{Name: "bars"},
		}
	}

	w, h := float64(in.Width), float64(in.Height)
	slot := w / float64(cfg.NumBars)
	barW := slot * cfg.FillRatio
	baseline := h * cfg.BaselineRatio
	maxH := h * cfg.MaxHeightRatio
	grad := in.Scheme.Gradient()
	amp := (0.5 + 0.5*in.Frame.Amplitude)

	bars := make([]scene.Primitive, 0, cfg.NumBars*2)
	ghosts := make([]scene.Primitive, 0, cfg.NumBars)
	for i := 0; i < cfg.NumBars; i++ {
		idx := SpectrumIndex(i, cfg.NumBars, l)
		v := spectrumAt(in.Frame.Spectrum, idx)
		mult := bandMultiplier(i, cfg.NumBars, in)
		height := v * maxH * amp * mult

		pos := 0.0
		if cfg.NumBars > 1 {
			pos = float64(i) / float64(cfg.NumBars-1)
		}
		c := grad.At(pos)
		x := float64(i)*slot + (slot-barW)/2

		bars = append(bars, scene.Bar{
			X: x, Y: baseline - height, W: barW, H: height,
			Color: c, Opacity: 0.92,
		})
		ghosts = append(ghosts, scene.Bar{
			X: x, Y: baseline + 2, W: barW, H: height * 0.35,
			Color: c, Opacity: 0.16,
		})

		peakHeight := spectrumAt(in.Peaks, idx) * maxH * amp * mult
		if peakHeight > height+1 {
			bars = append(bars, scene.Bar{
				X: x, Y: baseline - peakHeight - 3, W: barW, H: 2.5,
				Color: in.Scheme.Accent, Opacity: 0.85,
			})
		}
	}

	return []scene.Layer{
		{Name: "reflection", Primitives: ghosts},
		{Name: "bars", Primitives: bars},
	}
}

// bandMultiplier picks the band driving a bar's emphasis: the low third of
// the row follows bass, the middle third mid, the high third treble. Thirds
// are taken on the bar's fractional position so counts below three still
// spread across the bands.
func bandMultiplier(i, numBars int, in Input) float64 {
	pos := (float64(i) + 0.5) / float64(numBars)
	switch {
	case pos < 1.0/3:
		return 0.75 + 0.5*in.Bands.Bass
	case pos < 2.0/3:
		return 0.75 + 0.5*in.Bands.Mid
	default:
		return 0.75 + 0.5*in.Bands.Treble
	}
}

// barsDecor draws the faint frame grid behind the bar row.
func barsDecor(in Input) scene.Layer {
	w, h := float64(in.Width), float64(in.Height)
	baseline := h * DefaultBarsConfig().BaselineRatio
	c := in.Scheme.Secondary

	prims := []scene.Primitive{
		scene.Segment{X1: 0, Y1: baseline, X2: w, Y2: baseline, StrokeWidth: 1.5, Color: in.Scheme.Primary, Opacity: 0.4},
	}
	for _, frac := range []float64{0.25, 0.5, 0.75} {
		y := baseline - h*DefaultBarsConfig().MaxHeightRatio*frac
		prims = append(prims, scene.Segment{
			X1: 0, Y1: y, X2: w, Y2: y, StrokeWidth: 0.75, Color: c, Opacity: 0.12,
		})
	}
	return scene.Layer{Name: "grid", Primitives: prims}
}
