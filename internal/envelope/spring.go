package envelope

import "math"

// Spring shape constants. The damping hint maps onto the damping ratio of a
// unit-mass spring with this stiffness; time is normalized so the response
// has settled by the end of the local window.
const (
	springStiffness = 100
	springTimeSpan  = 1.2
)

// SpringProgress is the closed-form step response of a damped spring,
// evaluated at localFrame of totalLocalFrames. It rises from 0 toward 1;
// overshoot shrinks as damping grows (under 5% from damping 15 up,
// a visible bounce below ~8). No integrator loop: the same (frame, total,
// damping) always produces the same value. The return may briefly exceed 1
// at low damping; clamp at the point of use if the consumer needs [0,1].
func SpringProgress(localFrame, totalLocalFrames int, damping float64) float64 {
	if totalLocalFrames <= 0 || localFrame >= totalLocalFrames {
		return 1
	}
	if localFrame < 0 {
		return 0
	}
	if damping <= 0 {
		damping = 1
	}

	omega := math.Sqrt(springStiffness)
	zeta := damping / (2 * omega)
	t := float64(localFrame) / float64(totalLocalFrames) * springTimeSpan

	var x float64
	if zeta >= 1 {
		// Critically damped (and treated as such when overdamped): no bounce.
		wt := omega * t
		x = 1 - (1+wt)*math.Exp(-wt)
	} else {
		wd := omega * math.Sqrt(1-zeta*zeta)
		e := math.Exp(-zeta * omega * t)
		x = 1 - e*(math.Cos(wd*t)+(zeta*omega/wd)*math.Sin(wd*t))
	}
	if x < 0 {
		return 0
	}
	return x
}

// FadeScale maps eased progress to a scale factor between the configured
// endpoints (0.3 grows to 1 on intro). Overshoot passes through so a bouncy
// spring reads as a bounce in size.
func FadeScale(progress, from, to float64) float64 {
	return Lerp(from, to, progress)
}

// FadeOpacity maps eased progress to opacity, clamped to [0,1].
func FadeOpacity(progress, from, to float64) float64 {
	return Clamp01(Lerp(from, to, progress))
}

// FadeProgress combines the intro and outro response for a frame: the spring
// rise over the first introFrames and its mirror over the last outroFrames.
// Frames in the middle of the track get 1.
func FadeProgress(frameIndex, totalFrames, introFrames, outroFrames int, damping float64) float64 {
	if totalFrames <= 0 {
		return 1
	}
	in := SpringProgress(frameIndex, introFrames, damping)
	out := SpringProgress(totalFrames-1-frameIndex, outroFrames, damping)
	if out < in {
		return out
	}
	return in
}
