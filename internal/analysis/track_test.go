package analysis

import (
	"strings"
	"testing"
)

const sampleTrack = `{
  "duration": 0.1,
  "fps": 30,
  "total_frames": 3,
  "frames": [
    {"time": 0, "amplitude": 0.2, "spectrum": [0.1, 0.2, 0.3, 0.4]},
    {"time": 0.0333, "amplitude": 1.4, "spectrum": [-0.5, 0.5, 2.0, 0.9]},
    {"time": 0.0667, "amplitude": 0.6, "spectrum": [0.0, 0.1, 0.2, 0.3]}
  ]
}`

func TestDecodeTrackSanitizes(t *testing.T) {
	tr, err := DecodeTrack(strings.NewReader(sampleTrack))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if tr.TotalFrames != 3 || len(tr.Frames) != 3 {
		t.Fatalf("total_frames=%d len=%d want 3", tr.TotalFrames, len(tr.Frames))
	}
	if got := tr.Frames[1].Amplitude; got != 1 {
		t.Fatalf("amplitude not clamped: %f", got)
	}
	if got := tr.Frames[1].Spectrum[0]; got != 0 {
		t.Fatalf("negative spectrum not clamped: %f", got)
	}
	if got := tr.Frames[1].Spectrum[2]; got != 1 {
		t.Fatalf("high spectrum not clamped: %f", got)
	}
}

func TestDecodeTrackBadJSON(t *testing.T) {
	if _, err := DecodeTrack(strings.NewReader("{nope")); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestFrameAtClamps(t *testing.T) {
	tr := &Track{Frames: make([]Frame, 300), FPS: 30}
	for i := range tr.Frames {
		tr.Frames[i].Time = float64(i) / 30
	}
	if got := tr.FrameAt(1000).Time; got != tr.Frames[299].Time {
		t.Fatalf("frame 1000 resolved to time %f, want frame 299", got)
	}
	if got := tr.FrameAt(-5).Time; got != 0 {
		t.Fatalf("negative index resolved to time %f, want 0", got)
	}
}

func TestFrameAtEmptyTrack(t *testing.T) {
	var tr Track
	f := tr.FrameAt(10)
	if f.Amplitude != 0 || len(f.Spectrum) != 0 {
		t.Fatalf("empty track should yield zero frame, got %+v", f)
	}
}

func TestResolveMetadata(t *testing.T) {
	if tf, fps := ResolveMetadata([]byte(sampleTrack)); tf != 3 || fps != 30 {
		t.Fatalf("got (%d,%d) want (3,30)", tf, fps)
	}
	if tf, fps := ResolveMetadata([]byte("not json at all")); tf != DefaultTotalFrames || fps != DefaultFPS {
		t.Fatalf("bad json: got (%d,%d) want defaults", tf, fps)
	}
	if tf, fps := ResolveMetadata([]byte(`{"fps": -2}`)); tf != DefaultTotalFrames || fps != DefaultFPS {
		t.Fatalf("degenerate values: got (%d,%d) want defaults", tf, fps)
	}
}

func TestClamp01(t *testing.T) {
	cases := map[float64]float64{
		-0.5: 0,
		0:    0,
		0.5:  0.5,
		1:    1,
		1.7:  1,
	}
	for in, want := range cases {
		if got := Clamp01(in); got != want {
			t.Fatalf("Clamp01(%f)=%f want=%f", in, got, want)
		}
	}
}
