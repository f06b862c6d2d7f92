// Package scatter generates the decorative element fields (stars, nebula
// blobs, particles) behind the primary geometry. The fields look random but
// come from a sine hash of the element index, so the same (count, seed)
// replays bit-identically on every call, run, and worker.
package scatter

import "math"

// Element is one decorative point in polar terms: an angle, a radial
// distance as a fraction of the field radius, a size in canvas units, an
// animation phase, and a base brightness.
type Element struct {
	Angle      float64
	Dist       float64
	Size       float64
	Phase      float64
	Brightness float64
}

// hash is the reproducible scatter hash: frac(sin(seed + i*9999) * 10000).
// Consuming it at offset indices (+100, +200, ...) decorrelates the fields
// drawn from one seed.
func hash(seed float64, i int) float64 {
	v := math.Sin(seed+float64(i)*9999) * 10000
	return v - math.Floor(v)
}

// Field produces count elements for the given seed.
func Field(count int, seed float64) []Element {
	if count <= 0 {
		return nil
	}
	out := make([]Element, count)
	for i := range out {
		out[i] = Element{
			Angle:      hash(seed, i) * 2 * math.Pi,
			Dist:       0.1 + 0.9*hash(seed, i+100),
			Size:       0.5 + 2.5*hash(seed, i+200),
			Phase:      hash(seed, i+300) * 2 * math.Pi,
			Brightness: 0.3 + 0.7*hash(seed, i+400),
		}
	}
	return out
}

// Twinkle returns the element's brightness at a frame, oscillating around
// the base value as a pure function of the frame index and the element's
// phase.
func Twinkle(e Element, frameIndex int) float64 {
	b := e.Brightness * (0.75 + 0.25*math.Sin(e.Phase+float64(frameIndex)*0.11))
	if b < 0 {
		return 0
	}
	if b > 1 {
		return 1
	}
	return b
}
