package pcbfile

import "io"

// Defaults applied by the primitive constructors.
const (
	DefaultThickness  = 10
	DefaultClearance  = 2
	DefaultStubLength = 50
	DefaultArcRadius  = 50
	DefaultArcStart   = -90
	DefaultArcDelta   = 90
	DefaultTextScale  = 100
)

// Line is a straight copper segment.
type Line struct {
	X1, Y1    float64 // Start point
	X2, Y2    float64 // End point
	Thickness float64 // Copper width
	Clearance float64 // Polygon clearance
	Flags     FlagList
}

// NewLine returns a line between two points with the default thickness,
// clearance and the clearline flag.
func NewLine(x1, y1, x2, y2 float64) *Line {
	return &Line{
		X1: x1, Y1: y1,
		X2: x2, Y2: y2,
		Thickness: DefaultThickness,
		Clearance: DefaultClearance,
		Flags:     FlagList{FlagClearLine},
	}
}

// NewStub returns a DefaultStubLength vertical line starting at (x, y).
func NewStub(x, y float64) *Line {
	return NewLine(x, y, x, y+DefaultStubLength)
}

func (l *Line) write(w *writer) {
	w.printf("  Line[%s %s %s %s %s %s \"%s\"]\n",
		mil(l.X1), mil(l.Y1),
		mil(l.X2), mil(l.Y2),
		mil(l.Thickness), mil(l.Clearance),
		l.Flags)
}

func (*Line) drawable() {}

// WriteTo writes the Line record to dst.
func (l *Line) WriteTo(dst io.Writer) (int64, error) { return writeRecord(dst, l) }

// String returns the Line record.
func (l *Line) String() string { return renderRecord(l) }

// Arc is a circular arc. Angles are in degrees and written as given.
type Arc struct {
	X, Y       float64 // Center
	Radius     float64 // Written as both width and height
	Thickness  float64 // Copper width
	Clearance  float64 // Polygon clearance
	StartAngle float64 // Start angle in degrees
	DeltaAngle float64 // Sweep in degrees
	Flags      FlagList
}

// NewArc returns a quarter arc around (x, y) with the default thickness,
// clearance, angles and the clearline flag.
func NewArc(x, y, r float64) *Arc {
	return &Arc{
		X: x, Y: y,
		Radius:     r,
		Thickness:  DefaultThickness,
		Clearance:  DefaultClearance,
		StartAngle: DefaultArcStart,
		DeltaAngle: DefaultArcDelta,
		Flags:      FlagList{FlagClearLine},
	}
}

func (a *Arc) write(w *writer) {
	w.printf("  Arc[%s %s %s %s %s %s %s %s \"%s\"]\n",
		mil(a.X), mil(a.Y),
		mil(a.Radius), mil(a.Radius),
		mil(a.Thickness), mil(a.Clearance),
		formatNumber(a.StartAngle), formatNumber(a.DeltaAngle),
		a.Flags)
}

func (*Arc) drawable() {}

// WriteTo writes the Arc record to dst.
func (a *Arc) WriteTo(dst io.Writer) (int64, error) { return writeRecord(dst, a) }

// String returns the Arc record.
func (a *Arc) String() string { return renderRecord(a) }

// Text is a text label anchored at (X, Y).
type Text struct {
	X, Y      float64 // Anchor point
	Content   string  // Written between quotes without escaping
	Scale     float64 // Size in percent
	Direction int     // Rotation in 90 degree steps
	Flags     FlagList
}

// NewText returns a label with the default scale, direction 0 and the
// clearline flag.
func NewText(x, y float64, content string) *Text {
	return &Text{
		X: x, Y: y,
		Content: content,
		Scale:   DefaultTextScale,
		Flags:   FlagList{FlagClearLine},
	}
}

func (t *Text) write(w *writer) {
	w.printf("  Text[%s %s %d %s \"%s\" \"%s\"]\n",
		mil(t.X), mil(t.Y),
		t.Direction, formatNumber(t.Scale),
		t.Content, t.Flags)
}

func (*Text) drawable() {}

// WriteTo writes the Text record to dst.
func (t *Text) WriteTo(dst io.Writer) (int64, error) { return writeRecord(dst, t) }

// String returns the Text record.
func (t *Text) String() string { return renderRecord(t) }
