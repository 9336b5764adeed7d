package pcbfile

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestObjectRecords(t *testing.T) {
	customLine := NewLine(1.5, -2, 300, 400)
	customLine.Thickness = 25
	customLine.Clearance = 0
	customLine.Flags = FlagList{FlagClearLine, FlagLock}

	bareLine := NewLine(0, 0, 10, 0)
	bareLine.Flags = nil

	wideArc := NewArc(500, 500, 125)
	wideArc.StartAngle = 450
	wideArc.DeltaAngle = -720
	wideArc.Flags = FlagList{FlagUseTherm}

	rotated := NewText(100, 200, "U1 REF")
	rotated.Direction = 3
	rotated.Scale = 150
	rotated.Flags = FlagList{FlagOnSolder, FlagClearLine}

	tests := []struct {
		name string
		obj  Object
		want string
	}{
		{
			name: "line",
			obj:  NewLine(0, 0, 0, 50),
			want: "  Line[0mil 0mil 0mil 50mil 10mil 2mil \"clearline\"]\n",
		},
		{
			name: "stub",
			obj:  NewStub(20, 30),
			want: "  Line[20mil 30mil 20mil 80mil 10mil 2mil \"clearline\"]\n",
		},
		{
			name: "line with custom fields",
			obj:  customLine,
			want: "  Line[1.5mil -2mil 300mil 400mil 25mil 0mil \"clearline,lock\"]\n",
		},
		{
			name: "line without flags",
			obj:  bareLine,
			want: "  Line[0mil 0mil 10mil 0mil 10mil 2mil \"\"]\n",
		},
		{
			name: "arc",
			obj:  NewArc(0, 0, 50),
			want: "  Arc[0mil 0mil 50mil 50mil 10mil 2mil -90 90 \"clearline\"]\n",
		},
		{
			name: "arc angles are not normalized",
			obj:  wideArc,
			want: "  Arc[500mil 500mil 125mil 125mil 10mil 2mil 450 -720 \"usetherm\"]\n",
		},
		{
			name: "text",
			obj:  NewText(10, 20, "hello"),
			want: "  Text[10mil 20mil 0 100 \"hello\" \"clearline\"]\n",
		},
		{
			name: "text with direction and scale",
			obj:  rotated,
			want: "  Text[100mil 200mil 3 150 \"U1 REF\" \"onsolder,clearline\"]\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.obj.String()); diff != "" {
				t.Errorf("record mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestConstructorsDoNotShareFlags(t *testing.T) {
	a := NewLine(0, 0, 1, 1)
	b := NewLine(0, 0, 1, 1)
	a.Flags[0] = FlagSelected
	if b.Flags[0] != FlagClearLine {
		t.Errorf("flag slices are shared between lines")
	}
}

func TestLayerAddAndObjects(t *testing.T) {
	l := &Layer{Number: 2, Name: "bottom", Type: "copper"}
	line := NewLine(0, 0, 5, 5)
	text := NewText(1, 1, "t")
	l.Add(line)
	l.Add(text)

	objs := l.Objects()
	if diff := cmp.Diff([]Object{line, text}, objs); diff != "" {
		t.Errorf("Objects() mismatch (-want +got):\n%s", diff)
	}

	want := "Layer(2 \"bottom\" \"copper\")\n(\n" + line.String() + text.String() + ")\n"
	if diff := cmp.Diff(want, l.String()); diff != "" {
		t.Errorf("layer block mismatch (-want +got):\n%s", diff)
	}
}

func TestFlagList(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  FlagList
		str   string
	}{
		{name: "single", input: "clearline", want: FlagList{FlagClearLine}, str: "clearline"},
		{name: "several", input: "clearpoly, fullpoly", want: FlagList{FlagClearPoly, FlagFullPoly}, str: "clearpoly,fullpoly"},
		{name: "empty entries dropped", input: ",lock,,", want: FlagList{FlagLock}, str: "lock"},
		{name: "empty", input: "", want: nil, str: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseFlags(tt.input)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseFlags() mismatch (-want +got):\n%s", diff)
			}
			if got.String() != tt.str {
				t.Errorf("String() = %q, want %q", got.String(), tt.str)
			}
		})
	}
}

// Only the four primitives satisfy Object; boards and layers do not.
func TestObjectKinds(t *testing.T) {
	isObject := func(v any) bool {
		_, ok := v.(Object)
		return ok
	}

	tests := []struct {
		name string
		v    any
		want bool
	}{
		{name: "line", v: NewLine(0, 0, 1, 1), want: true},
		{name: "arc", v: NewArc(0, 0, 1), want: true},
		{name: "polygon", v: NewPolygon(), want: true},
		{name: "text", v: NewText(0, 0, "t"), want: true},
		{name: "board", v: NewBoard(1, 1, "inner"), want: false},
		{name: "layer", v: &Layer{Number: 1, Name: "nested"}, want: false},
		{name: "hole", v: NewPolygon().NewHole(), want: false},
		{name: "point", v: Point{}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isObject(tt.v); got != tt.want {
				t.Errorf("%T implements Object = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestLayerHoldsEachKind(t *testing.T) {
	objs := []Object{NewLine(0, 0, 1, 1), NewArc(0, 0, 1), NewPolygon(), NewText(0, 0, "t")}
	l := &Layer{Number: 1, Name: "top", Type: DefaultLayerType}
	l.Add(objs...)

	out := l.String()
	if strings.Contains(out, "PCB[") || strings.Count(out, "Layer(") != 1 {
		t.Errorf("layer block holds more than primitives:\n%s", out)
	}
	for _, o := range objs {
		if !strings.Contains(out, o.String()) {
			t.Errorf("layer block missing %q", o.String())
		}
	}
}
