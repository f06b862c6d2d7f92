package styles

import (
	"math"
	"testing"

	"github.com/melodyclass/scenesynth/internal/scene"
)

func TestRadialLayersShape(t *testing.T) {
	layers := RadialLayers(testInput(), DefaultRadialConfig())
	if len(layers) != 4 {
		t.Fatalf("want 3 rings + core, got %d layers", len(layers))
	}
	wantSpikes := []int{32, 48, 64}
	for i, n := range wantSpikes {
		if got := len(layers[i].Primitives); got != n {
			t.Fatalf("ring %d: %d spikes, want %d", i, got, n)
		}
	}
	if len(layers[3].Primitives) != 1 {
		t.Fatalf("core should hold one disc, got %d", len(layers[3].Primitives))
	}
}

func TestRadialSpikesStartAtInnerRadius(t *testing.T) {
	in := testInput()
	layers := RadialLayers(in, DefaultRadialConfig())
	min := math.Min(float64(in.Width), float64(in.Height))
	cx, cy := float64(in.Width)/2, float64(in.Height)/2

	inner := min * DefaultRadialConfig().Rings[0].InnerRatio
	for _, p := range layers[0].Primitives {
		seg := p.(scene.Segment)
		r1 := math.Hypot(seg.X1-cx, seg.Y1-cy)
		if math.Abs(r1-inner) > 1e-9 {
			t.Fatalf("spike starts at radius %f, want %f", r1, inner)
		}
		r2 := math.Hypot(seg.X2-cx, seg.Y2-cy)
		if r2 < r1-1e-9 {
			t.Fatalf("spike points inward: %f < %f", r2, r1)
		}
	}
}

func TestRadialRotationAdvances(t *testing.T) {
	a := testInput()
	b := testInput()
	b.FrameIndex = a.FrameIndex + 10

	segA := RadialLayers(a, DefaultRadialConfig())[0].Primitives[0].(scene.Segment)
	segB := RadialLayers(b, DefaultRadialConfig())[0].Primitives[0].(scene.Segment)
	if segA.X2 == segB.X2 && segA.Y2 == segB.Y2 {
		t.Fatal("scene rotation should move spike 0 between frames")
	}
}

func TestRadialZeroSpikes(t *testing.T) {
	cfg := DefaultRadialConfig()
	for i := range cfg.Rings {
		cfg.Rings[i].Spikes = 0
	}
	layers := RadialLayers(testInput(), cfg)
	for _, l := range layers[:3] {
		if len(l.Primitives) != 0 {
			t.Fatalf("ring %q should be empty with zero spikes", l.Name)
		}
	}
}

func TestRadialEmptySpectrum(t *testing.T) {
	layers := RadialLayers(emptySpectrumInput(), DefaultRadialConfig())
	for _, l := range layers {
		if len(l.Primitives) != 0 {
			t.Fatalf("layer %q should be empty for an empty spectrum", l.Name)
		}
	}
}
