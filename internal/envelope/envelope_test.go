package envelope

import (
	"math"
	"testing"
)

// deterministic pseudo-signal for recurrence comparisons
func signal(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 0.5 + 0.5*math.Sin(float64(i)*0.71+math.Cos(float64(i)*0.13))
	}
	return out
}

func TestPeakHoldMatchesRecurrence(t *testing.T) {
	values := signal(400)
	decay := 0.92

	peak := 0.0
	for k, v := range values {
		peak *= decay
		if v > peak {
			peak = v
		}
		if got := PeakHold(values, k, decay); got != peak {
			t.Fatalf("frame %d: closed form %v, recurrence %v", k, got, peak)
		}
	}
}

func TestSmoothMatchesRecurrence(t *testing.T) {
	values := signal(400)
	smoothing := 0.35

	s := values[0]
	for k, v := range values {
		if k > 0 {
			s += (v - s) * smoothing
		}
		if got := Smooth(values, k, smoothing); got != s {
			t.Fatalf("frame %d: closed form %v, recurrence %v", k, got, s)
		}
	}
}

// A lone transient at frame 0 still contributes its decayed residue hundreds
// of frames later, exactly as the stateful recurrence would carry it.
func TestPeakHoldCarriesDistantHistory(t *testing.T) {
	values := make([]float64, 400)
	values[0] = 1

	want := 1.0
	for k := 1; k < len(values); k++ {
		want *= 0.92
	}
	if got := PeakHold(values, len(values)-1, 0.92); got != want {
		t.Fatalf("frame %d: closed form %v, recurrence %v", len(values)-1, got, want)
	}

	s := values[0]
	for k := 1; k < len(values); k++ {
		s += (values[k] - s) * 0.35
	}
	if got := Smooth(values, len(values)-1, 0.35); got != s {
		t.Fatalf("smooth frame %d: closed form %v, recurrence %v", len(values)-1, got, s)
	}
}

func TestPeakHoldOrderIndependent(t *testing.T) {
	values := signal(100)
	forward := make([]float64, len(values))
	for i := range values {
		forward[i] = PeakHold(values, i, 0.9)
	}
	for i := len(values) - 1; i >= 0; i-- {
		if got := PeakHold(values, i, 0.9); got != forward[i] {
			t.Fatalf("frame %d: reverse evaluation differs", i)
		}
	}
}

func TestPeakHoldEdge(t *testing.T) {
	if got := PeakHold(nil, 3, 0.9); got != 0 {
		t.Fatalf("empty history should yield 0, got %f", got)
	}
	values := []float64{0.4, 0.2}
	if got := PeakHold(values, 50, 0.9); got != PeakHold(values, 1, 0.9) {
		t.Fatal("out-of-range index should clamp to the last frame")
	}
}

func TestSpringHighDampingMonotone(t *testing.T) {
	const total = 120
	prev := -1.0
	for f := 0; f <= total; f++ {
		v := SpringProgress(f, total, 15)
		if v > 1.05 {
			t.Fatalf("frame %d: overshoot %f above 5%%", f, v)
		}
		// Settling ripple after the first crest is far below visual
		// precision; anything bigger is a real bounce.
		if v < prev-0.005 {
			t.Fatalf("frame %d: non-monotone rise %f -> %f", f, prev, v)
		}
		prev = v
	}
	if got := SpringProgress(total, total, 15); got != 1 {
		t.Fatalf("end of window should settle at 1, got %f", got)
	}
}

func TestSpringLowDampingBounces(t *testing.T) {
	const total = 240
	peak := 0.0
	for f := 0; f <= total; f++ {
		if v := SpringProgress(f, total, 5); v > peak {
			peak = v
		}
	}
	if peak < 1.15 {
		t.Fatalf("damping 5 should overshoot past 15%%, peaked at %f", peak)
	}
}

func TestFadeEndpoints(t *testing.T) {
	if got := FadeScale(0, 0.3, 1); got != 0.3 {
		t.Fatalf("intro start scale: got %f want 0.3", got)
	}
	if got := FadeScale(1, 0.3, 1); got != 1 {
		t.Fatalf("intro end scale: got %f want 1", got)
	}
	if got := FadeOpacity(0, 0, 1); got != 0 {
		t.Fatalf("intro start opacity: got %f want 0", got)
	}
	if got := FadeOpacity(1.2, 0, 1); got != 1 {
		t.Fatalf("overshoot opacity should clamp to 1, got %f", got)
	}
}

func TestFadeProgressMirrorsOutro(t *testing.T) {
	total, fadeFrames := 300, 30
	for f := 0; f < fadeFrames; f++ {
		in := FadeProgress(f, total, fadeFrames, fadeFrames, 15)
		out := FadeProgress(total-1-f, total, fadeFrames, fadeFrames, 15)
		if math.Abs(in-out) > 1e-12 {
			t.Fatalf("frame %d: intro %f != mirrored outro %f", f, in, out)
		}
	}
	if mid := FadeProgress(150, total, fadeFrames, fadeFrames, 15); mid != 1 {
		t.Fatalf("mid-track progress should be 1, got %f", mid)
	}
}
