// Package envelope provides the decay, smoothing, and easing shapes used by
// the scene styles, each expressed as a function of frame index over an
// immutable value history. Nothing here carries state between calls, so the
// value for frame N is the same no matter which frames were evaluated
// before it or on which worker.
package envelope

// PeakHold evaluates the peak-hold-with-decay recurrence
// p(k) = max(v(k), p(k-1)*decay) at index t by replaying the full history
// from index 0, so the result is bit-identical to the stateful recurrence.
// Tracks top out around 20k frames; the scan is cheap enough to keep exact.
func PeakHold(values []float64, t int, decay float64) float64 {
	if len(values) == 0 {
		return 0
	}
	t = clampIndex(t, len(values))
	if decay <= 0 {
		return values[t]
	}
	if decay >= 1 {
		decay = 1
	}

	peak := 0.0
	for k := 0; k <= t; k++ {
		peak *= decay
		if values[k] > peak {
			peak = values[k]
		}
	}
	return peak
}

// Smooth evaluates exponential smoothing
// s(k) = s(k-1) + (v(k) - s(k-1))*smoothing, seeded at values[0], at index t.
// Full replay from index 0, bit-identical to the stateful recurrence.
func Smooth(values []float64, t int, smoothing float64) float64 {
	if len(values) == 0 {
		return 0
	}
	t = clampIndex(t, len(values))
	if smoothing >= 1 {
		return values[t]
	}
	if smoothing <= 0 {
		return values[0]
	}

	s := values[0]
	for k := 1; k <= t; k++ {
		s += (values[k] - s) * smoothing
	}
	return s
}

func clampIndex(t, n int) int {
	if t < 0 {
		return 0
	}
	if t >= n {
		return n - 1
	}
	return t
}

// Lerp interpolates linearly between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp01 bounds v to [0,1].
func Clamp01(v float64) float64 {
	if v != v || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
