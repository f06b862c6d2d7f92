package main

import (
	"strings"
	"testing"

	"github.com/melodyclass/scenesynth/internal/color"
	"github.com/melodyclass/scenesynth/internal/scene"
)

func TestRasterizePaintsBackground(t *testing.T) {
	c := newCellCanvas(10, 5)
	s := scene.Scene{Width: 100, Height: 100}
	s.AddLayer("background", scene.Bar{X: 0, Y: 0, W: 100, H: 100, Color: color.RGB{R: 10, G: 20, B: 30}, Opacity: 1})
	c.rasterize(s)

	for i, px := range c.pix {
		if px != (color.RGB{R: 10, G: 20, B: 30}) {
			t.Fatalf("pixel %d not painted: %+v", i, px)
		}
	}
}

func TestRasterizeLayerOrder(t *testing.T) {
	c := newCellCanvas(4, 2)
	s := scene.Scene{Width: 4, Height: 4}
	s.AddLayer("under", scene.Bar{X: 0, Y: 0, W: 4, H: 4, Color: color.RGB{R: 255, G: 0, B: 0}, Opacity: 1})
	s.AddLayer("over", scene.Bar{X: 0, Y: 0, W: 4, H: 4, Color: color.RGB{R: 0, G: 255, B: 0}, Opacity: 1})
	c.rasterize(s)
	if c.pix[0] != (color.RGB{R: 0, G: 255, B: 0}) {
		t.Fatalf("later layer should paint over earlier one, got %+v", c.pix[0])
	}
}

func TestAnsiShape(t *testing.T) {
	c := newCellCanvas(3, 2)
	out := c.ansi()
	if got := strings.Count(out, "\n"); got != 2 {
		t.Fatalf("want 2 rows, got %d", got)
	}
	if got := strings.Count(out, "▀"); got != 6 {
		t.Fatalf("want 6 cells, got %d", got)
	}
}

func TestBlendClipsBounds(t *testing.T) {
	c := newCellCanvas(2, 2)
	// Must not panic on out-of-range coordinates.
	c.blend(-1, 0, color.RGB{R: 1, G: 1, B: 1}, 1)
	c.blend(0, 100, color.RGB{R: 1, G: 1, B: 1}, 1)
	c.disc(-5, -5, 3, color.RGB{R: 1, G: 1, B: 1}, 1)
}
