package analysis

import "math"

// PulseConfig controls beat classification and how long a detected beat
// keeps echoing through the visuals.
type PulseConfig struct {
	RiseThreshold float64
	MinAmplitude  float64
	Decay         float64
}

// DefaultPulse returns the tuning used by the bundled styles.
func DefaultPulse() PulseConfig {
	return PulseConfig{
		RiseThreshold: 0.15,
		MinAmplitude:  0.3,
		Decay:         0.88,
	}
}

// IsBeat classifies a transient from two consecutive amplitude samples. The
// previous sample is an explicit argument, never hidden state, so the result
// for frame t is the same whether t-1 was evaluated first, concurrently, or
// not at all.
func IsBeat(curr, prev, riseThreshold, minAmplitude float64) bool {
	return curr-prev > riseThreshold && curr > minAmplitude
}

// IsBeatCooldown is IsBeat with a refractory period. lastBeatFrame is the
// index of the most recent accepted beat (negative if none) and is supplied
// by the caller; the detector keeps no counter of its own.
func IsBeatCooldown(curr, prev, riseThreshold, minAmplitude float64, frameIndex, lastBeatFrame, cooldownFrames int) bool {
	if lastBeatFrame >= 0 && frameIndex-lastBeatFrame < cooldownFrames {
		return false
	}
	return IsBeat(curr, prev, riseThreshold, minAmplitude)
}

// BeatPulse returns the decaying beat emphasis in [0,1] for frameIndex,
// computed directly from the frame array: the strongest residual of any beat
// in a bounded lookback, decay^(t-k) for a beat at frame k. Scanning the
// immutable track instead of carrying an accumulator keeps the value
// identical under any frame evaluation order.
func BeatPulse(t *Track, frameIndex int, cfg PulseConfig) float64 {
	if t == nil || len(t.Frames) == 0 {
		return 0
	}
	if cfg.Decay <= 0 || cfg.Decay >= 1 {
		return 0
	}
	if frameIndex < 0 {
		frameIndex = 0
	}
	if frameIndex >= len(t.Frames) {
		frameIndex = len(t.Frames) - 1
	}

	start := frameIndex - decayWindow(cfg.Decay, 1e-4)
	if start < 0 {
		start = 0
	}
	pulse := 0.0
	weight := 1.0
	for k := frameIndex; k >= start; k-- {
		prev := 0.0
		if k > 0 {
			prev = t.Frames[k-1].Amplitude
		}
		if IsBeat(t.Frames[k].Amplitude, prev, cfg.RiseThreshold, cfg.MinAmplitude) && weight > pulse {
			pulse = weight
		}
		weight *= cfg.Decay
	}
	return pulse
}

// decayWindow returns the number of frames after which decay^n falls below
// eps, bounding the lookback cost per frame.
func decayWindow(decay, eps float64) int {
	if decay <= 0 || decay >= 1 {
		return 0
	}
	return int(math.Ceil(math.Log(eps) / math.Log(decay)))
}
