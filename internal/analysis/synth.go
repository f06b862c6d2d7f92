package analysis

import (
	"math"

	"github.com/mjibson/go-dsp/fft"
)

// SynthConfig controls the synthetic track builder.
type SynthConfig struct {
	Duration   float64 // seconds
	FPS        int
	BPM        float64 // kick rate for the percussive layer
	Bins       int     // spectrum length per frame
	SampleRate float64
}

// DefaultSynth matches the shape of tracks emitted by the analysis service:
// 30 fps, 128 spectrum bins.
func DefaultSynth() SynthConfig {
	return SynthConfig{
		Duration:   10,
		FPS:        DefaultFPS,
		BPM:        120,
		Bins:       128,
		SampleRate: 44_100,
	}
}

// Synthesize builds a deterministic track from layered sines with a
// percussive amplitude envelope, deriving each frame's spectrum from a
// hann-windowed FFT of the signal around that frame. Meant for demos and
// tests when no analysis JSON is at hand; the output honors every Track
// invariant (values in [0,1], frames spaced 1/fps).
func Synthesize(cfg SynthConfig) *Track {
	if cfg.FPS <= 0 {
		cfg.FPS = DefaultFPS
	}
	if cfg.Duration <= 0 {
		cfg.Duration = 10
	}
	if cfg.BPM <= 0 {
		cfg.BPM = 120
	}
	if cfg.Bins <= 0 {
		cfg.Bins = 128
	}
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = 44_100
	}

	total := int(cfg.Duration * float64(cfg.FPS))
	if total < 1 {
		total = 1
	}
	windowSize := 2 * cfg.Bins
	window := make([]float64, windowSize)
	hann := make([]float64, windowSize)
	for i := range hann {
		hann[i] = 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(windowSize)))
	}

	beatPeriod := 60 / cfg.BPM
	frames := make([]Frame, total)
	for i := 0; i < total; i++ {
		t0 := float64(i) / float64(cfg.FPS)
		kick := math.Exp(-8 * math.Mod(t0, beatPeriod))

		sumSq := 0.0
		for s := 0; s < windowSize; s++ {
			ts := t0 + float64(s)/cfg.SampleRate
			v := 0.8*kick*math.Sin(2*math.Pi*55*ts) +
				0.4*math.Sin(2*math.Pi*440*ts)*(0.6+0.4*math.Sin(2*math.Pi*0.25*ts)) +
				0.2*math.Sin(2*math.Pi*3200*ts)*(0.5+0.5*math.Sin(2*math.Pi*0.4*ts+1.3))
			sumSq += v * v
			window[s] = v * hann[s]
		}

		spec := fft.FFTReal(window)
		spectrum := make([]float64, cfg.Bins)
		for b := 0; b < cfg.Bins && b < len(spec); b++ {
			mag := cmplxAbs(spec[b]) / float64(cfg.Bins)
			spectrum[b] = Clamp01(mag)
		}

		rms := math.Sqrt(sumSq / float64(windowSize))
		frames[i] = Frame{
			Time:      t0,
			Amplitude: Clamp01(rms * 1.4),
			Spectrum:  spectrum,
		}
	}

	return &Track{
		Duration:    cfg.Duration,
		FPS:         cfg.FPS,
		TotalFrames: total,
		Frames:      frames,
	}
}

func cmplxAbs(c complex128) float64 {
	return math.Hypot(real(c), imag(c))
}
