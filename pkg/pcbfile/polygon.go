package pcbfile

import "io"

// Point is a polygon or hole vertex.
type Point struct {
	X, Y float64
}

func (p Point) write(w *writer) {
	w.printf("[%s %s]", mil(p.X), mil(p.Y))
}

// String returns the inline point fragment, e.g. "[0mil 50mil]".
func (p Point) String() string {
	return renderRecord(p)
}

// rectangle returns the corners of an axis-aligned rectangle starting at
// the origin and going +x, +x+y, +y.
func rectangle(x0, y0, dx, dy float64) []Point {
	return []Point{
		{x0, y0},
		{x0 + dx, y0},
		{x0 + dx, y0 + dy},
		{x0, y0 + dy},
	}
}

// Polygon is a filled region with optional cut-outs. The outline is closed
// implicitly; no closing point is added.
type Polygon struct {
	Flags FlagList

	points []Point
	holes  []*Hole
}

// NewPolygon returns an empty polygon flagged clearpoly.
func NewPolygon() *Polygon {
	return &Polygon{Flags: FlagList{FlagClearPoly}}
}

// AddPoint appends an outline vertex.
func (p *Polygon) AddPoint(x, y float64) {
	p.points = append(p.points, Point{x, y})
}

// SetRectangle replaces the outline with a dx by dy rectangle at (x0, y0).
func (p *Polygon) SetRectangle(x0, y0, dx, dy float64) {
	p.points = rectangle(x0, y0, dx, dy)
}

// NewHole appends an empty hole and returns it for the caller to fill.
func (p *Polygon) NewHole() *Hole {
	h := &Hole{}
	p.holes = append(p.holes, h)
	return h
}

// Points returns the outline vertices.
func (p *Polygon) Points() []Point {
	pts := make([]Point, len(p.points))
	copy(pts, p.points)
	return pts
}

// Holes returns the holes in insertion order.
func (p *Polygon) Holes() []*Hole {
	holes := make([]*Hole, len(p.holes))
	copy(holes, p.holes)
	return holes
}

func (p *Polygon) write(w *writer) {
	w.printf("  Polygon(\"%s\")\n  (\n    ", p.Flags)
	w.points(p.points)
	w.print("\n")
	// Consecutive holes are separated by a blank line.
	for i, h := range p.holes {
		if i > 0 {
			w.print("\n")
		}
		h.write(w)
	}
	w.print("  )\n")
}

func (*Polygon) drawable() {}

// WriteTo writes the Polygon block to dst.
func (p *Polygon) WriteTo(dst io.Writer) (int64, error) { return writeRecord(dst, p) }

// String returns the Polygon block.
func (p *Polygon) String() string { return renderRecord(p) }

// Hole is a cut-out owned by a Polygon.
type Hole struct {
	points []Point
}

// AddPoint appends a hole vertex.
func (h *Hole) AddPoint(x, y float64) {
	h.points = append(h.points, Point{x, y})
}

// SetRectangle replaces the hole outline with a dx by dy rectangle at
// (x0, y0).
func (h *Hole) SetRectangle(x0, y0, dx, dy float64) {
	h.points = rectangle(x0, y0, dx, dy)
}

// Points returns the hole vertices.
func (h *Hole) Points() []Point {
	pts := make([]Point, len(h.points))
	copy(pts, h.points)
	return pts
}

func (h *Hole) write(w *writer) {
	w.print("    Hole (\n      ")
	w.points(h.points)
	w.print("\n    )\n")
}

// String returns the Hole block.
func (h *Hole) String() string { return renderRecord(h) }
