// Package scene defines the renderable output of the engine: tagged
// primitives grouped into ordered layers. Layer order is part of the
// contract — later layers paint over earlier ones.
package scene

import (
	"encoding/json"

	"github.com/melodyclass/scenesynth/internal/color"
)

// Primitive is one drawable shape. The concrete types are Bar, Segment,
// Path, and Disc; each marshals to JSON with a "type" tag so vector
// clients can dispatch without reflection.
type Primitive interface {
	kind() string
}

// Point is a 2D coordinate in canvas units.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Bar is an axis-aligned filled rectangle.
type Bar struct {
	X       float64   `json:"x"`
	Y       float64   `json:"y"`
	W       float64   `json:"w"`
	H       float64   `json:"h"`
	Color   color.RGB `json:"color"`
	Opacity float64   `json:"opacity"`
}

// Segment is a stroked line.
type Segment struct {
	X1          float64   `json:"x1"`
	Y1          float64   `json:"y1"`
	X2          float64   `json:"x2"`
	Y2          float64   `json:"y2"`
	StrokeWidth float64   `json:"strokeWidth"`
	Color       color.RGB `json:"color"`
	Opacity     float64   `json:"opacity"`
}

// Path is a polyline through Points, closed and optionally filled.
type Path struct {
	Points      []Point   `json:"points"`
	Color       color.RGB `json:"color"`
	StrokeWidth float64   `json:"strokeWidth"`
	Opacity     float64   `json:"opacity"`
	Filled      bool      `json:"filled"`
}

// Disc is a filled circle.
type Disc struct {
	CX      float64   `json:"cx"`
	CY      float64   `json:"cy"`
	R       float64   `json:"r"`
	Color   color.RGB `json:"color"`
	Opacity float64   `json:"opacity"`
}

func (Bar) kind() string     { return "bar" }
func (Segment) kind() string { return "segment" }
func (Path) kind() string    { return "path" }
func (Disc) kind() string    { return "disc" }

func (b Bar) MarshalJSON() ([]byte, error) {
	type alias Bar
	return json.Marshal(struct {
		Type string `json:"type"`
		alias
	}{b.kind(), alias(b)})
}

func (s Segment) MarshalJSON() ([]byte, error) {
	type alias Segment
	return json.Marshal(struct {
		Type string `json:"type"`
		alias
	}{s.kind(), alias(s)})
}

func (p Path) MarshalJSON() ([]byte, error) {
	type alias Path
	return json.Marshal(struct {
		Type string `json:"type"`
		alias
	}{p.kind(), alias(p)})
}

func (d Disc) MarshalJSON() ([]byte, error) {
	type alias Disc
	return json.Marshal(struct {
		Type string `json:"type"`
		alias
	}{d.kind(), alias(d)})
}

// Layer is a named, ordered group of primitives.
type Layer struct {
	Name       string      `json:"name"`
	Primitives []Primitive `json:"primitives"`
}

// Scene is the full output for one frame: canvas size plus layers in paint
// order (background first, foreground last).
type Scene struct {
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Layers []Layer `json:"layers"`
}

// AddLayer appends a layer, keeping paint order.
func (s *Scene) AddLayer(name string, prims ...Primitive) {
	s.Layers = append(s.Layers, Layer{Name: name, Primitives: prims})
}

// PrimitiveCount totals primitives across all layers.
func (s Scene) PrimitiveCount() int {
	n := 0
	for _, l := range s.Layers {
		n += len(l.Primitives)
	}
	return n
}
