package scene

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// WriteSVG serializes the scene as an SVG document, one <g> per layer in
// paint order. Coordinates are emitted with fixed precision so identical
// scenes always produce byte-identical output.
func WriteSVG(w io.Writer, s Scene) error {
	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`,
		s.Width, s.Height, s.Width, s.Height)
	b.WriteByte('\n')

	for _, layer := range s.Layers {
		fmt.Fprintf(&b, `  <g id=%q>`, layer.Name)
		b.WriteByte('\n')
		for _, p := range layer.Primitives {
			b.WriteString("    ")
			writePrimitive(&b, p)
			b.WriteByte('\n')
		}
		b.WriteString("  </g>\n")
	}
	b.WriteString("</svg>\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func writePrimitive(b *strings.Builder, p Primitive) {
	switch v := p.(type) {
	case Bar:
		fmt.Fprintf(b, `<rect x="%s" y="%s" width="%s" height="%s" fill="%s" fill-opacity="%s"/>`,
			num(v.X), num(v.Y), num(v.W), num(v.H), v.Color.Hex(), num(v.Opacity))
	case Segment:
		fmt.Fprintf(b, `<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="%s" stroke-opacity="%s" stroke-linecap="round"/>`,
			num(v.X1), num(v.Y1), num(v.X2), num(v.Y2), v.Color.Hex(), num(v.StrokeWidth), num(v.Opacity))
	case Path:
		if len(v.Points) == 0 {
			return
		}
		var d strings.Builder
		for i, pt := range v.Points {
			if i == 0 {
				d.WriteString("M ")
			} else {
				d.WriteString(" L ")
			}
			d.WriteString(num(pt.X))
			d.WriteByte(' ')
			d.WriteString(num(pt.Y))
		}
		d.WriteString(" Z")
		if v.Filled {
			fmt.Fprintf(b, `<path d="%s" fill="%s" fill-opacity="%s"/>`,
				d.String(), v.Color.Hex(), num(v.Opacity))
		} else {
			fmt.Fprintf(b, `<path d="%s" fill="none" stroke="%s" stroke-width="%s" stroke-opacity="%s" stroke-linejoin="round"/>`,
				d.String(), v.Color.Hex(), num(v.StrokeWidth), num(v.Opacity))
		}
	case Disc:
		fmt.Fprintf(b, `<circle cx="%s" cy="%s" r="%s" fill="%s" fill-opacity="%s"/>`,
			num(v.CX), num(v.CY), num(v.R), v.Color.Hex(), num(v.Opacity))
	}
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
