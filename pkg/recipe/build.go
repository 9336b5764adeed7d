package recipe

import "github.com/OpenTraceLab/pcbfixture/pkg/pcbfile"

// Build turns the recipe into a board. Objects keep their recipe order;
// entries naming no drawable are skipped.
func (r *Recipe) Build() *pcbfile.Board {
	name := DefaultBoardName
	if r.Name != nil {
		name = *r.Name
	}
	board := pcbfile.NewBoard(r.Width, r.Height, name)
	r.Header.apply(&board.Header)

	for _, l := range r.Layers {
		var layer *pcbfile.Layer
		if l.Number != nil {
			layer = board.AddLayerNumber(*l.Number, l.Name, l.Type)
		} else {
			layer = board.AddLayer(l.Name, l.Type)
		}
		for _, o := range l.Objects {
			if obj := o.build(); obj != nil {
				layer.Add(obj)
			}
		}
	}
	return board
}

func (h *Header) apply(dst *pcbfile.Header) {
	if h == nil {
		return
	}
	setFloat(&dst.PolyArea, h.PolyArea)
	setFloat(&dst.Thermal, h.Thermal)
	setFlags(&dst.Flags, h.Flags)
	if h.Groups != nil {
		dst.Groups = *h.Groups
	}
	if h.Grid != nil {
		dst.Grid = pcbfile.Grid(*h.Grid)
	}
	if h.DRC != nil {
		dst.DRC = pcbfile.DRC(*h.DRC)
	}
	if len(h.Styles) > 0 {
		dst.Styles = make([]pcbfile.Style, len(h.Styles))
		for i, s := range h.Styles {
			dst.Styles[i] = pcbfile.Style(s)
		}
	}
}

func (o Object) build() pcbfile.Object {
	switch {
	case o.Line != nil:
		return o.Line.build()
	case o.Arc != nil:
		return o.Arc.build()
	case o.Polygon != nil:
		return o.Polygon.build()
	case o.Text != nil:
		return o.Text.build()
	}
	return nil
}

func (l *Line) build() *pcbfile.Line {
	line := pcbfile.NewStub(l.X1, l.Y1)
	setFloat(&line.X2, l.X2)
	setFloat(&line.Y2, l.Y2)
	setFloat(&line.Thickness, l.Thickness)
	setFloat(&line.Clearance, l.Clearance)
	setFlags(&line.Flags, l.Flags)
	return line
}

func (a *Arc) build() *pcbfile.Arc {
	arc := pcbfile.NewArc(a.X, a.Y, pcbfile.DefaultArcRadius)
	setFloat(&arc.Radius, a.Radius)
	setFloat(&arc.Thickness, a.Thickness)
	setFloat(&arc.Clearance, a.Clearance)
	setFloat(&arc.StartAngle, a.StartAngle)
	setFloat(&arc.DeltaAngle, a.DeltaAngle)
	setFlags(&arc.Flags, a.Flags)
	return arc
}

func (p *Polygon) build() *pcbfile.Polygon {
	poly := pcbfile.NewPolygon()
	setFlags(&poly.Flags, p.Flags)
	p.Outline.fill(poly)
	for _, h := range p.Holes {
		h.fill(poly.NewHole())
	}
	return poly
}

// outlineBuilder is implemented by *pcbfile.Polygon and *pcbfile.Hole.
type outlineBuilder interface {
	SetRectangle(x0, y0, dx, dy float64)
	AddPoint(x, y float64)
}

func (o Outline) fill(dst outlineBuilder) {
	if len(o.Rect) == 4 {
		dst.SetRectangle(o.Rect[0], o.Rect[1], o.Rect[2], o.Rect[3])
	}
	for _, pt := range o.Points {
		dst.AddPoint(pt[0], pt[1])
	}
}

func (t *Text) build() *pcbfile.Text {
	text := pcbfile.NewText(t.X, t.Y, t.Content)
	setFloat(&text.Scale, t.Scale)
	text.Direction = t.Direction
	setFlags(&text.Flags, t.Flags)
	return text
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func setFlags(dst *pcbfile.FlagList, s *string) {
	if s != nil {
		*dst = pcbfile.ParseFlags(*s)
	}
}
