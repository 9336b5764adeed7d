package pcbfile

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Unit is the suffix written after every coordinate and dimension.
const Unit = "mil"

// formatNumber renders v in its shortest decimal form without an exponent
// (0, 50, 0.5, -90).
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// mil renders v followed by the unit suffix.
func mil(v float64) string {
	return formatNumber(v) + Unit
}

// fixedMil renders v with prec decimals and the unit suffix ("24.02mil").
func fixedMil(v float64, prec int) string {
	return strconv.FormatFloat(v, 'f', prec, 64) + Unit
}

// writer accumulates the byte count and keeps the first error so record
// writers can emit several fragments without checking each one.
type writer struct {
	w   io.Writer
	n   int64
	err error
}

func (w *writer) print(s string) {
	if w.err != nil {
		return
	}
	n, err := io.WriteString(w.w, s)
	w.n += int64(n)
	w.err = err
}

func (w *writer) printf(format string, args ...any) {
	if w.err != nil {
		return
	}
	n, err := fmt.Fprintf(w.w, format, args...)
	w.n += int64(n)
	w.err = err
}

// points writes pts space separated, e.g. "[0mil 0mil] [100mil 0mil]".
func (w *writer) points(pts []Point) {
	for i, p := range pts {
		if i > 0 {
			w.print(" ")
		}
		p.write(w)
	}
}

// record is implemented by everything that knows how to write itself.
type record interface {
	write(w *writer)
}

func writeRecord(dst io.Writer, r record) (int64, error) {
	w := &writer{w: dst}
	r.write(w)
	return w.n, w.err
}

func renderRecord(r record) string {
	var buf bytes.Buffer
	r.write(&writer{w: &buf})
	return buf.String()
}

// Flag is a flag token such as "clearline". Any string is accepted.
type Flag string

// Object flags used by fixtures.
const (
	FlagClearLine Flag = "clearline"
	FlagClearPoly Flag = "clearpoly"
	FlagFullPoly  Flag = "fullpoly"
	FlagLock      Flag = "lock"
	FlagSelected  Flag = "selected"
	FlagFound     Flag = "found"
	FlagOnSolder  Flag = "onsolder"
	FlagRubberEnd Flag = "rubberend"
	FlagUseTherm  Flag = "usetherm"
	FlagAuto      Flag = "auto"
	FlagDRC       Flag = "drc"
)

// Board flags, written in the header Flags record.
const (
	FlagNameOnPCB   Flag = "nameonpcb"
	FlagClearNew    Flag = "clearnew"
	FlagSnapPin     Flag = "snappin"
	FlagNewFullPoly Flag = "newfullpoly"
	FlagUniqueName  Flag = "uniquename"
	FlagShowDRC     Flag = "showdrc"
)

// FlagList is an ordered list of flag tokens.
type FlagList []Flag

// String joins the flags with commas, the way they appear between quotes.
func (fl FlagList) String() string {
	parts := make([]string, len(fl))
	for i, f := range fl {
		parts[i] = string(f)
	}
	return strings.Join(parts, ",")
}

// ParseFlags splits a comma separated flag string. Empty entries are dropped.
func ParseFlags(s string) FlagList {
	var fl FlagList
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			fl = append(fl, Flag(part))
		}
	}
	return fl
}
