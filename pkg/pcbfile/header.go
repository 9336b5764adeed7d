package pcbfile

import "strings"

// Grid describes the Grid header record.
type Grid struct {
	Step    float64 // Grid spacing in mil
	OffsetX float64 // Grid origin X
	OffsetY float64 // Grid origin Y
	Visible bool    // Whether the grid is drawn
}

// DRC holds the design rule check sizes saved with the layout.
type DRC struct {
	Bloat    float64 // Minimum copper spacing
	Shrink   float64 // Minimum overlap between touching copper
	MinWidth float64 // Minimum copper width
	MinSilk  float64 // Minimum silk width
	MinDrill float64 // Minimum drill diameter
	MinRing  float64 // Minimum annular ring
}

// Style is one route style entry of the Styles record.
type Style struct {
	Name     string  // Style name (e.g., "Signal")
	Thick    float64 // Line thickness
	Diameter float64 // Via diameter
	Hole     float64 // Via drill diameter
	Keepaway float64 // Clearance
}

// Header holds the board-wide settings written after the PCB record.
type Header struct {
	Grid     Grid     // Grid record
	PolyArea float64  // Minimum polygon island area to retain
	Thermal  float64  // Thermal scale factor
	DRC      DRC      // Design rule sizes
	Flags    FlagList // Board flags
	Groups   string   // Layer groups, e.g. "1,c:2:3:4:5:6,s:7:8"
	Styles   []Style  // Route styles, in order
}

// DefaultStyles returns the four route styles every fixture starts with.
func DefaultStyles() []Style {
	return []Style{
		{Name: "Signal", Thick: 10, Diameter: 30, Hole: 10, Keepaway: 1},
		{Name: "Power", Thick: 25, Diameter: 60, Hole: 35, Keepaway: 10},
		{Name: "Fat", Thick: 40, Diameter: 60, Hole: 35, Keepaway: 10},
		{Name: "Skinny", Thick: 6, Diameter: 24.02, Hole: 11.81, Keepaway: 6},
	}
}

// DefaultHeader returns the header settings used by NewBoard.
func DefaultHeader() Header {
	return Header{
		Grid:     Grid{Step: 1, Visible: true},
		PolyArea: 3100,
		Thermal:  0.5,
		DRC: DRC{
			Bloat:    5,
			Shrink:   5,
			MinWidth: 5,
			MinSilk:  5,
			MinDrill: 10,
			MinRing:  10,
		},
		Flags:  FlagList{FlagNameOnPCB, FlagClearNew, FlagSnapPin},
		Groups: "1,c:2:3:4:5:6,s:7:8",
		Styles: DefaultStyles(),
	}
}

func (g Grid) write(w *writer) {
	visible := 0
	if g.Visible {
		visible = 1
	}
	w.printf("Grid[%.2f%s %.4f %.4f %d]\n", g.Step, Unit, g.OffsetX, g.OffsetY, visible)
}

func (d DRC) write(w *writer) {
	w.printf("DRC[%s %s %s %s %s %s]\n",
		mil(d.Bloat), mil(d.Shrink),
		mil(d.MinWidth), mil(d.MinSilk),
		mil(d.MinDrill), mil(d.MinRing))
}

// String renders the style as "Name,thick,diameter,hole,keepaway".
func (s Style) String() string {
	var sb strings.Builder
	sb.WriteString(s.Name)
	for _, v := range []float64{s.Thick, s.Diameter, s.Hole, s.Keepaway} {
		sb.WriteString(",")
		sb.WriteString(fixedMil(v, 2))
	}
	return sb.String()
}

func (h Header) write(w *writer) {
	h.Grid.write(w)
	w.printf("PolyArea[%s]\n", formatNumber(h.PolyArea))
	w.printf("Thermal[%s]\n", formatNumber(h.Thermal))
	h.DRC.write(w)
	w.printf("Flags(\"%s\")\n", h.Flags)
	w.printf("Groups(\"%s\")\n", h.Groups)

	styles := make([]string, len(h.Styles))
	for i, s := range h.Styles {
		styles[i] = s.String()
	}
	w.printf("Styles[\"%s\"]\n", strings.Join(styles, ":"))
}
