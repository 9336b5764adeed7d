// Package pcbfile builds textual PCB layout fixtures.
//
// The output is the bracketed layout format read by the PCB tool under test:
// a board header (PCB, Grid, PolyArea, Thermal, DRC, Flags, Groups, Styles)
// followed by Layer blocks holding Line, Arc, Polygon and Text records.
// All coordinates and dimensions are in mil.
//
// # Usage
//
//	board := pcbfile.NewBoard(2500, 2000, "fixture")
//	top := board.AddLayer("top", "")
//	top.Add(pcbfile.NewLine(0, 0, 0, 50))
//
//	poly := pcbfile.NewPolygon()
//	poly.SetRectangle(0, 0, 100, 200)
//	poly.NewHole().SetRectangle(20, 20, 10, 10)
//	top.Add(poly)
//
//	if _, err := board.WriteTo(f); err != nil {
//		return err
//	}
//
// The builders never validate their input. Coordinates, angles and layer
// numbers are written exactly as given, so a fixture can deliberately hold
// out-of-range or inconsistent values.
package pcbfile
