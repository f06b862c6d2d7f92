package engine

import (
	"reflect"
	"testing"

	"github.com/melodyclass/scenesynth/internal/analysis"
)

func testTrack() *analysis.Track {
	cfg := analysis.DefaultSynth()
	cfg.Duration = 3
	return analysis.Synthesize(cfg)
}

func testParams() Params {
	p := Defaults()
	p.Width, p.Height = 640, 360
	p.FrameIndex = 40
	return p
}

func TestComposeDeterministic(t *testing.T) {
	tr := testTrack()
	e := New(nil)
	a := e.Compose(tr, testParams())
	b := e.Compose(tr, testParams())
	if !reflect.DeepEqual(a, b) {
		t.Fatal("two invocations for the same frame must return identical scenes")
	}
}

func TestComposeOrderIndependent(t *testing.T) {
	tr := testTrack()
	e := New(nil)
	p := testParams()

	forward := make([]int, tr.TotalFrames)
	for i := 0; i < tr.TotalFrames; i++ {
		p.FrameIndex = i
		forward[i] = e.Compose(tr, p).PrimitiveCount()
	}
	for i := tr.TotalFrames - 1; i >= 0; i-- {
		p.FrameIndex = i
		if got := e.Compose(tr, p).PrimitiveCount(); got != forward[i] {
			t.Fatalf("frame %d: reverse pass diverged (%d vs %d primitives)", i, got, forward[i])
		}
	}
}

func TestComposeClampsFrameIndex(t *testing.T) {
	tr := testTrack()
	e := New(nil)

	p := testParams()
	p.FrameIndex = 100000
	far := e.Compose(tr, p)
	p.FrameIndex = tr.TotalFrames - 1
	last := e.Compose(tr, p)
	if !reflect.DeepEqual(far, last) {
		t.Fatal("out-of-range frame should compose the last frame's scene")
	}
}

func TestComposeUnknownNamesFallBack(t *testing.T) {
	tr := testTrack()
	e := New(nil)

	p := testParams()
	p.Style = "hologram"
	p.ColorScheme = "chartreuse"
	got := e.Compose(tr, p)

	q := testParams()
	want := e.Compose(tr, q)
	if !reflect.DeepEqual(got, want) {
		t.Fatal("unknown style and scheme should fall back to the defaults")
	}
}

func TestComposeEmptyTrack(t *testing.T) {
	e := New(nil)
	s := e.Compose(&analysis.Track{}, testParams())
	if len(s.Layers) == 0 {
		t.Fatal("even an empty track composes a renderable scene")
	}
}

func TestResolution(t *testing.T) {
	if w, h := Resolution("720p"); w != 1280 || h != 720 {
		t.Fatalf("720p => (%d,%d)", w, h)
	}
	if w, h := Resolution("4k"); w != 3840 || h != 2160 {
		t.Fatalf("4k => (%d,%d)", w, h)
	}
	if w, h := Resolution("potato"); w != 1920 || h != 1080 {
		t.Fatalf("unknown preset should resolve to 1080p, got (%d,%d)", w, h)
	}
}

func TestMetadataDefaults(t *testing.T) {
	if tf, fps := Metadata([]byte("garbage")); tf != analysis.DefaultTotalFrames || fps != analysis.DefaultFPS {
		t.Fatalf("got (%d,%d) want defaults", tf, fps)
	}
}
