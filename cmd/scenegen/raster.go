package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/melodyclass/scenesynth/internal/color"
	"github.com/melodyclass/scenesynth/internal/scene"
)

// cellCanvas rasterizes a scene into a small pixel grid for the terminal
// preview, two vertical pixels per text cell via the upper half block. This
// is a rough proofing surface; production rasterization stays with the
// external renderer.
type cellCanvas struct {
	cols, rows int
	pix        []color.RGB // cols * rows*2
}

func newCellCanvas(cols, rows int) *cellCanvas {
	return &cellCanvas{cols: cols, rows: rows, pix: make([]color.RGB, cols*rows*2)}
}

func (c *cellCanvas) width() int  { return c.cols }
func (c *cellCanvas) height() int { return c.rows * 2 }

func (c *cellCanvas) blend(x, y int, col color.RGB, opacity float64) {
	if x < 0 || x >= c.width() || y < 0 || y >= c.height() {
		return
	}
	if opacity <= 0 {
		return
	}
	if opacity > 1 {
		opacity = 1
	}
	i := y*c.cols + x
	c.pix[i] = color.Lerp(c.pix[i], col, opacity)
}

// rasterize paints layers in order; the scene's own canvas size maps onto
// the pixel grid.
func (c *cellCanvas) rasterize(s scene.Scene) {
	for i := range c.pix {
		c.pix[i] = color.RGB{}
	}
	if s.Width <= 0 || s.Height <= 0 {
		return
	}
	sx := float64(c.width()) / float64(s.Width)
	sy := float64(c.height()) / float64(s.Height)

	for _, layer := range s.Layers {
		for _, p := range layer.Primitives {
			switch v := p.(type) {
			case scene.Bar:
				c.fillRect(v.X*sx, v.Y*sy, v.W*sx, v.H*sy, v.Color, v.Opacity)
			case scene.Segment:
				c.line(v.X1*sx, v.Y1*sy, v.X2*sx, v.Y2*sy, v.Color, v.Opacity)
			case scene.Path:
				c.polyline(v.Points, sx, sy, v.Color, v.Opacity)
			case scene.Disc:
				c.disc(v.CX*sx, v.CY*sy, v.R*math.Min(sx, sy), v.Color, v.Opacity)
			}
		}
	}
}

func (c *cellCanvas) fillRect(x, y, w, h float64, col color.RGB, opacity float64) {
	x1, y1 := int(math.Floor(x)), int(math.Floor(y))
	x2, y2 := int(math.Ceil(x+w)), int(math.Ceil(y+h))
	for yy := y1; yy < y2; yy++ {
		for xx := x1; xx < x2; xx++ {
			c.blend(xx, yy, col, opacity)
		}
	}
}

func (c *cellCanvas) line(x1, y1, x2, y2 float64, col color.RGB, opacity float64) {
	steps := int(math.Max(math.Abs(x2-x1), math.Abs(y2-y1))) + 1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		c.blend(int(x1+(x2-x1)*t), int(y1+(y2-y1)*t), col, opacity)
	}
}

func (c *cellCanvas) polyline(points []scene.Point, sx, sy float64, col color.RGB, opacity float64) {
	if len(points) < 2 {
		return
	}
	for i := range points {
		a := points[i]
		b := points[(i+1)%len(points)]
		c.line(a.X*sx, a.Y*sy, b.X*sx, b.Y*sy, col, opacity)
	}
}

func (c *cellCanvas) disc(cx, cy, r float64, col color.RGB, opacity float64) {
	if r < 0.5 {
		c.blend(int(cx), int(cy), col, opacity)
		return
	}
	for yy := int(cy - r); yy <= int(cy+r); yy++ {
		for xx := int(cx - r); xx <= int(cx+r); xx++ {
			dx, dy := float64(xx)-cx, float64(yy)-cy
			if dx*dx+dy*dy <= r*r {
				c.blend(xx, yy, col, opacity)
			}
		}
	}
}

// ansi renders the grid as truecolor half-block rows.
func (c *cellCanvas) ansi() string {
	var b strings.Builder
	b.Grow(c.cols * c.rows * 24)
	for row := 0; row < c.rows; row++ {
		for col := 0; col < c.cols; col++ {
			top := c.pix[(row*2)*c.cols+col]
			bottom := c.pix[(row*2+1)*c.cols+col]
			fmt.Fprintf(&b, "\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm▀",
				top.R, top.G, top.B, bottom.R, bottom.G, bottom.B)
		}
		b.WriteString("\x1b[0m\n")
	}
	return b.String()
}
