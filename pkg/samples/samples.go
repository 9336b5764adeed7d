// Package samples holds ready-made fixture boards for the common test
// cases: empty boards, lines, arcs, polygons with and without holes, text
// and a mixed board touching every record type.
package samples

import (
	"errors"
	"fmt"
	"sort"

	"github.com/OpenTraceLab/pcbfixture/pkg/pcbfile"
)

// ErrUnknownSample is returned by Build for names not in Names.
var ErrUnknownSample = errors.New("unknown sample")

// Board size shared by every sample.
const (
	Width  = 2500
	Height = 2000
)

var builders = map[string]func() *pcbfile.Board{
	"empty":         empty,
	"lines":         lines,
	"arcs":          arcs,
	"polygon":       polygon,
	"polygon-holes": polygonHoles,
	"text":          text,
	"mixed":         mixed,
}

// Names returns the available sample names, sorted.
func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build returns a fresh board for the named sample.
func Build(name string) (*pcbfile.Board, error) {
	build, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("samples: %w: %q", ErrUnknownSample, name)
	}
	return build(), nil
}

func newBoard(name string) *pcbfile.Board {
	return pcbfile.NewBoard(Width, Height, name)
}

func empty() *pcbfile.Board {
	return newBoard("empty")
}

// lines draws a short stub, a horizontal and a diagonal line on two
// copper layers.
func lines() *pcbfile.Board {
	b := newBoard("lines")
	top := b.AddLayer("top", "")
	top.Add(
		pcbfile.NewStub(100, 100),
		pcbfile.NewLine(100, 300, 600, 300),
		pcbfile.NewLine(100, 500, 400, 800),
	)
	bottom := b.AddLayer("bottom", "")
	wide := pcbfile.NewLine(1000, 1000, 1500, 1000)
	wide.Thickness = 40
	wide.Clearance = 10
	bottom.Add(wide)
	return b
}

// arcs draws the four quadrant arcs around one center plus a full circle.
func arcs() *pcbfile.Board {
	b := newBoard("arcs")
	top := b.AddLayer("top", "")
	for i := 0; i < 4; i++ {
		a := pcbfile.NewArc(500, 500, 100)
		a.StartAngle = float64(i*90 - 90)
		top.Add(a)
	}
	circle := pcbfile.NewArc(1200, 500, 50)
	circle.StartAngle = 0
	circle.DeltaAngle = 360
	top.Add(circle)
	return b
}

func polygon() *pcbfile.Board {
	b := newBoard("polygon")
	p := pcbfile.NewPolygon()
	p.SetRectangle(0, 0, 100, 200)
	b.AddLayer("top", "").Add(p)
	return b
}

// polygonHoles places a rectangular and a triangular hole in a full
// polygon, with a line crossing it so clearances show.
func polygonHoles() *pcbfile.Board {
	b := newBoard("polygon-holes")
	top := b.AddLayer("top", "")

	p := pcbfile.NewPolygon()
	p.Flags = pcbfile.FlagList{pcbfile.FlagClearPoly, pcbfile.FlagFullPoly}
	p.SetRectangle(100, 100, 1000, 800)
	p.NewHole().SetRectangle(200, 200, 200, 200)
	tri := p.NewHole()
	tri.AddPoint(600, 600)
	tri.AddPoint(800, 600)
	tri.AddPoint(700, 800)
	top.Add(p)
	top.Add(pcbfile.NewLine(50, 500, 1150, 500))
	return b
}

func text() *pcbfile.Board {
	b := newBoard("text")
	silk := b.AddLayer("silk", "silk")
	for dir := 0; dir < 4; dir++ {
		t := pcbfile.NewText(500, 500, fmt.Sprintf("dir %d", dir))
		t.Direction = dir
		silk.Add(t)
	}
	big := pcbfile.NewText(100, 1500, "BIG")
	big.Scale = 250
	silk.Add(big)
	return b
}

// mixed uses every record type across copper, silk and outline layers.
func mixed() *pcbfile.Board {
	b := newBoard("mixed")

	top := b.AddLayer("top", "")
	top.Add(pcbfile.NewLine(0, 0, 0, 50), pcbfile.NewArc(300, 300, 50))
	p := pcbfile.NewPolygon()
	p.SetRectangle(500, 500, 400, 300)
	p.NewHole().SetRectangle(600, 600, 50, 50)
	top.Add(p)

	bottom := b.AddLayer("bottom", "")
	bottom.Add(pcbfile.NewLine(0, 1000, 2000, 1000))

	b.AddLayer("silk", "silk").Add(pcbfile.NewText(100, 1800, "mixed fixture"))

	outline := b.AddLayer("outline", "outline")
	corners := [][4]float64{
		{0, 0, Width, 0},
		{Width, 0, Width, Height},
		{Width, Height, 0, Height},
		{0, Height, 0, 0},
	}
	for _, c := range corners {
		outline.Add(pcbfile.NewLine(c[0], c[1], c[2], c[3]))
	}
	return b
}
