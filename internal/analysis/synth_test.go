package analysis

import (
	"reflect"
	"testing"
)

func TestSynthesizeShape(t *testing.T) {
	cfg := DefaultSynth()
	cfg.Duration = 2
	tr := Synthesize(cfg)

	if tr.TotalFrames != 60 || len(tr.Frames) != 60 {
		t.Fatalf("2s at 30fps should give 60 frames, got %d", tr.TotalFrames)
	}
	for i, f := range tr.Frames {
		if len(f.Spectrum) != 128 {
			t.Fatalf("frame %d: spectrum length %d, want 128", i, len(f.Spectrum))
		}
		if f.Amplitude < 0 || f.Amplitude > 1 {
			t.Fatalf("frame %d: amplitude %f outside [0,1]", i, f.Amplitude)
		}
		for j, v := range f.Spectrum {
			if v < 0 || v > 1 {
				t.Fatalf("frame %d bin %d: %f outside [0,1]", i, j, v)
			}
		}
	}
}

func TestSynthesizeDeterministic(t *testing.T) {
	cfg := DefaultSynth()
	cfg.Duration = 1
	a := Synthesize(cfg)
	b := Synthesize(cfg)
	if !reflect.DeepEqual(a, b) {
		t.Fatal("synthetic tracks for the same config should be identical")
	}
}

func TestSynthesizeZeroConfig(t *testing.T) {
	tr := Synthesize(SynthConfig{})
	if tr.TotalFrames == 0 || tr.FPS != DefaultFPS {
		t.Fatalf("zero config should fall back to defaults, got fps=%d frames=%d", tr.FPS, tr.TotalFrames)
	}
}
