package styles

import (
	"github.com/melodyclass/scenesynth/internal/scene"
)

// Compose builds the full layered scene for one frame: background fill,
// then the style's decorative field, then its primary geometry, then the
// foreground beat flash. The order is the paint-order contract. Unknown
// style names compose the default style.
func Compose(style string, in Input) scene.Scene {
	g, ok := registry[style]
	if !ok {
		g = registry[DefaultStyle]
	}
	if in.Scale <= 0 {
		in.Scale = 1
	}
	in.Opacity = clamp01(in.Opacity)

	s := scene.Scene{Width: in.Width, Height: in.Height}
	s.AddLayer("background", scene.Bar{
		X: 0, Y: 0, W: float64(in.Width), H: float64(in.Height),
		Color: in.Scheme.Background, Opacity: 1,
	})

	cx, cy := float64(in.Width)/2, float64(in.Height)/2
	s.Layers = append(s.Layers, fadeLayer(g.decor(in), cx, cy, in.Scale, in.Opacity))
	for _, layer := range g.primary(in) {
		s.Layers = append(s.Layers, fadeLayer(layer, cx, cy, in.Scale, in.Opacity))
	}

	flash := scene.Layer{Name: "flash"}
	if glow := in.BeatPulse * in.Opacity; glow > 0.01 {
		flash.Primitives = append(flash.Primitives, scene.Bar{
			X: 0, Y: 0, W: float64(in.Width), H: float64(in.Height),
			Color: in.Scheme.Accent, Opacity: 0.12 * glow,
		})
	}
	s.Layers = append(s.Layers, flash)
	return s
}

// fadeLayer applies the intro/outro transform to a layer: geometry scales
// around the canvas center and opacity multiplies through.
func fadeLayer(l scene.Layer, cx, cy, scale, opacity float64) scene.Layer {
	if scale == 1 && opacity == 1 {
		return l
	}
	out := scene.Layer{Name: l.Name, Primitives: make([]scene.Primitive, 0, len(l.Primitives))}
	for _, p := range l.Primitives {
		out.Primitives = append(out.Primitives, fadePrimitive(p, cx, cy, scale, opacity))
	}
	return out
}

func fadePrimitive(p scene.Primitive, cx, cy, k, opacity float64) scene.Primitive {
	sx := func(x float64) float64 { return cx + (x-cx)*k }
	sy := func(y float64) float64 { return cy + (y-cy)*k }

	switch v := p.(type) {
	case scene.Bar:
		v.X, v.Y = sx(v.X), sy(v.Y)
		v.W *= k
		v.H *= k
		v.Opacity = clamp01(v.Opacity * opacity)
		return v
	case scene.Segment:
		v.X1, v.Y1 = sx(v.X1), sy(v.Y1)
		v.X2, v.Y2 = sx(v.X2), sy(v.Y2)
		v.StrokeWidth *= k
		v.Opacity = clamp01(v.Opacity * opacity)
		return v
	case scene.Path:
		pts := make([]scene.Point, len(v.Points))
		for i, pt := range v.Points {
			pts[i] = scene.Point{X: sx(pt.X), Y: sy(pt.Y)}
		}
		v.Points = pts
		v.StrokeWidth *= k
		v.Opacity = clamp01(v.Opacity * opacity)
		return v
	case scene.Disc:
		v.CX, v.CY = sx(v.CX), sy(v.CY)
		v.R *= k
		v.Opacity = clamp01(v.Opacity * opacity)
		return v
	default:
		return p
	}
}
