package color

// Stop is one gradient control point. Positions must start at 0, end at 1,
// and increase monotonically.
type Stop struct {
	Pos   float64
	Color RGB
}

// Gradient is an ordered multi-stop color ramp.
type Gradient []Stop

// At samples the gradient at progress, interpolating per channel within the
// bracketing segment. Progress 0 returns the first stop exactly and 1 the
// last; values outside [0,1] clamp to the ends.
func (g Gradient) At(progress float64) RGB {
	if len(g) == 0 {
		return RGB{}
	}
	if progress <= g[0].Pos {
		return g[0].Color
	}
	last := g[len(g)-1]
	if progress >= last.Pos {
		return last.Color
	}
	for i := 1; i < len(g); i++ {
		if progress > g[i].Pos {
			continue
		}
		lo, hi := g[i-1], g[i]
		span := hi.Pos - lo.Pos
		if span <= 0 {
			return hi.Color
		}
		return Lerp(lo.Color, hi.Color, (progress-lo.Pos)/span)
	}
	return last.Color
}
