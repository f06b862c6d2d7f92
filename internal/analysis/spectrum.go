package analysis

// Spectrum envelope defaults used by the engine when deriving per-bin
// histories for the styles.
const (
	PeakDecay         = 0.92
	SpectrumSmoothing = 0.4
)

// PeakSpectrum evaluates the per-bin peak-hold recurrence
// p(k) = max(v(k), p(k-1)*decay) at frameIndex by replaying the history from
// frame 0, bit-identical to the stateful recurrence. Pure in its inputs: the
// result does not depend on which frames were evaluated before.
func PeakSpectrum(t *Track, frameIndex int, decay float64) []float64 {
	f := t.FrameAt(frameIndex)
	l := len(f.Spectrum)
	if l == 0 || decay <= 0 || decay >= 1 {
		return append([]float64(nil), f.Spectrum...)
	}
	if frameIndex >= len(t.Frames) {
		frameIndex = len(t.Frames) - 1
	}
	if frameIndex < 0 {
		frameIndex = 0
	}

	peaks := make([]float64, l)
	for k := 0; k <= frameIndex; k++ {
		spec := t.Frames[k].Spectrum
		for b := 0; b < l; b++ {
			peaks[b] *= decay
			if b < len(spec) && spec[b] > peaks[b] {
				peaks[b] = spec[b]
			}
		}
	}
	return peaks
}

// SmoothSpectrum evaluates per-bin exponential smoothing
// s(k) = s(k-1) + (v(k)-s(k-1))*smoothing at frameIndex, seeded with frame
// 0's spectrum and replayed in full; identical determinism guarantee.
// smoothing<=0 degenerates to the seed frame, smoothing>=1 to the current.
func SmoothSpectrum(t *Track, frameIndex int, smoothing float64) []float64 {
	f := t.FrameAt(frameIndex)
	l := len(f.Spectrum)
	if l == 0 || smoothing >= 1 {
		return append([]float64(nil), f.Spectrum...)
	}
	if frameIndex >= len(t.Frames) {
		frameIndex = len(t.Frames) - 1
	}
	if frameIndex < 0 {
		frameIndex = 0
	}

	smoothed := make([]float64, l)
	first := t.Frames[0].Spectrum
	for b := 0; b < l && b < len(first); b++ {
		smoothed[b] = first[b]
	}
	if smoothing <= 0 {
		return smoothed
	}
	for k := 1; k <= frameIndex; k++ {
		spec := t.Frames[k].Spectrum
		for b := 0; b < l; b++ {
			v := 0.0
			if b < len(spec) {
				v = spec[b]
			}
			smoothed[b] += (v - smoothed[b]) * smoothing
		}
	}
	return smoothed
}
