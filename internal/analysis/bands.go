package analysis

// FrequencyBands holds coarse band energies averaged from one spectrum
// frame. Bass deliberately contains the sub-bass range: the low fifth of the
// spectrum drives both the "thump" accent and the broader low-end response.
type FrequencyBands struct {
	SubBass float64
	Bass    float64
	Mid     float64
	Treble  float64
}

// Bands averages contiguous sub-ranges of the spectrum into named band
// energies. Ranges are fractions of the spectrum length: sub-bass [0,0.1),
// bass [0,0.2), mid [0.2,0.6), treble [0.6,1). An empty spectrum or empty
// sub-range averages to 0.
func Bands(spectrum []float64) FrequencyBands {
	l := len(spectrum)
	return FrequencyBands{
		SubBass: rangeMean(spectrum, 0, l/10),
		Bass:    rangeMean(spectrum, 0, l/5),
		Mid:     rangeMean(spectrum, l/5, l*3/5),
		Treble:  rangeMean(spectrum, l*3/5, l),
	}
}

func rangeMean(spectrum []float64, lo, hi int) float64 {
	if lo < 0 {
		lo = 0
	}
	if hi > len(spectrum) {
		hi = len(spectrum)
	}
	if lo >= hi {
		return 0
	}
	sum := 0.0
	for _, v := range spectrum[lo:hi] {
		sum += v
	}
	return sum / float64(hi-lo)
}
