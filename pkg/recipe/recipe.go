// Package recipe loads JSON fixture descriptions and turns them into
// boards.
//
// A recipe lists layers and, for each layer, an ordered list of objects.
// Each object entry holds exactly one of "line", "arc", "polygon" or
// "text". Numeric fields left out of an entry take the builder defaults,
// so a line given only "x1" and "y1" becomes a stub:
//
//	{
//	  "name": "stub board",
//	  "width": 2500,
//	  "height": 2000,
//	  "layers": [
//	    {"name": "top", "objects": [{"line": {"x1": 0, "y1": 0}}]}
//	  ]
//	}
package recipe

import (
	"encoding/json"
	"fmt"
	"os"
)

// DefaultBoardName is the board name used when a recipe leaves "name" out.
const DefaultBoardName = "pcbfixture"

// Recipe describes one fixture board. A nil Name means DefaultBoardName;
// an empty string is kept.
type Recipe struct {
	Name   *string `json:"name,omitempty"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Header *Header `json:"header,omitempty"`
	Layers []Layer `json:"layers"`
}

// Header overrides selected board header settings. Unset fields keep the
// defaults.
type Header struct {
	Grid     *Grid    `json:"grid,omitempty"`
	PolyArea *float64 `json:"polyArea,omitempty"`
	Thermal  *float64 `json:"thermal,omitempty"`
	Flags    *string  `json:"flags,omitempty"`
	Groups   *string  `json:"groups,omitempty"`
	DRC      *DRC     `json:"drc,omitempty"`
	Styles   []Style  `json:"styles,omitempty"`
}

// Grid overrides the Grid record as a whole.
type Grid struct {
	Step    float64 `json:"step"`
	OffsetX float64 `json:"offsetX"`
	OffsetY float64 `json:"offsetY"`
	Visible bool    `json:"visible"`
}

// Style is one route style; a non-empty styles list replaces the defaults.
type Style struct {
	Name     string  `json:"name"`
	Thick    float64 `json:"thick"`
	Diameter float64 `json:"diameter"`
	Hole     float64 `json:"hole"`
	Keepaway float64 `json:"keepaway"`
}

// DRC overrides the design rule sizes as a whole.
type DRC struct {
	Bloat    float64 `json:"bloat"`
	Shrink   float64 `json:"shrink"`
	MinWidth float64 `json:"minWidth"`
	MinSilk  float64 `json:"minSilk"`
	MinDrill float64 `json:"minDrill"`
	MinRing  float64 `json:"minRing"`
}

// Layer is one layer block. A nil Number means "next in order".
type Layer struct {
	Number  *int     `json:"number,omitempty"`
	Name    string   `json:"name"`
	Type    string   `json:"type,omitempty"`
	Objects []Object `json:"objects"`
}

// Object holds exactly one drawable.
type Object struct {
	Line    *Line    `json:"line,omitempty"`
	Arc     *Arc     `json:"arc,omitempty"`
	Polygon *Polygon `json:"polygon,omitempty"`
	Text    *Text    `json:"text,omitempty"`
}

// Line describes a line; X2/Y2 default to a stub from (X1, Y1).
type Line struct {
	X1        float64  `json:"x1"`
	Y1        float64  `json:"y1"`
	X2        *float64 `json:"x2,omitempty"`
	Y2        *float64 `json:"y2,omitempty"`
	Thickness *float64 `json:"thickness,omitempty"`
	Clearance *float64 `json:"clearance,omitempty"`
	Flags     *string  `json:"flags,omitempty"`
}

// Arc describes an arc around (X, Y).
type Arc struct {
	X          float64  `json:"x"`
	Y          float64  `json:"y"`
	Radius     *float64 `json:"radius,omitempty"`
	Thickness  *float64 `json:"thickness,omitempty"`
	Clearance  *float64 `json:"clearance,omitempty"`
	StartAngle *float64 `json:"startAngle,omitempty"`
	DeltaAngle *float64 `json:"deltaAngle,omitempty"`
	Flags      *string  `json:"flags,omitempty"`
}

// Outline is either a rectangle [x0, y0, dx, dy] or a list of points.
// When both are given the rectangle comes first and the points are
// appended after it.
type Outline struct {
	Rect   []float64    `json:"rect,omitempty"`
	Points [][2]float64 `json:"points,omitempty"`
}

// Polygon describes a polygon with optional holes.
type Polygon struct {
	Outline
	Holes []Outline `json:"holes,omitempty"`
	Flags *string   `json:"flags,omitempty"`
}

// Text describes a text label.
type Text struct {
	X         float64  `json:"x"`
	Y         float64  `json:"y"`
	Content   string   `json:"content"`
	Scale     *float64 `json:"scale,omitempty"`
	Direction int      `json:"direction,omitempty"`
	Flags     *string  `json:"flags,omitempty"`
}

// Load reads and parses a recipe file.
func Load(path string) (*Recipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("recipe: failed to read %s: %w", path, err)
	}
	r, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("recipe: %s: %w", path, err)
	}
	return r, nil
}

// Parse decodes a recipe and checks that every object entry names exactly
// one drawable and every rectangle has four values.
func Parse(data []byte) (*Recipe, error) {
	var r Recipe
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("recipe: invalid JSON: %w", err)
	}
	if err := r.check(); err != nil {
		return nil, err
	}
	return &r, nil
}

func (r *Recipe) check() error {
	for li, layer := range r.Layers {
		for oi, obj := range layer.Objects {
			if n := obj.kinds(); n != 1 {
				return fmt.Errorf("recipe: layer %d (%q) object %d: want exactly one of line, arc, polygon, text, got %d",
					li, layer.Name, oi, n)
			}
			if obj.Polygon == nil {
				continue
			}
			if err := obj.Polygon.Outline.check(); err != nil {
				return fmt.Errorf("recipe: layer %d (%q) object %d: %w", li, layer.Name, oi, err)
			}
			for hi, h := range obj.Polygon.Holes {
				if err := h.check(); err != nil {
					return fmt.Errorf("recipe: layer %d (%q) object %d hole %d: %w", li, layer.Name, oi, hi, err)
				}
			}
		}
	}
	return nil
}

func (o Object) kinds() int {
	n := 0
	if o.Line != nil {
		n++
	}
	if o.Arc != nil {
		n++
	}
	if o.Polygon != nil {
		n++
	}
	if o.Text != nil {
		n++
	}
	return n
}

func (o Outline) check() error {
	if o.Rect != nil && len(o.Rect) != 4 {
		return fmt.Errorf("rect needs 4 values [x0, y0, dx, dy], got %d", len(o.Rect))
	}
	return nil
}
