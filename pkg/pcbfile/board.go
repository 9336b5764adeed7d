package pcbfile

import "io"

// DefaultLayerType is the type written for layers created without one.
const DefaultLayerType = "copper"

// Board is the top-level fixture: header settings plus an ordered list of
// layers.
type Board struct {
	Name   string  // Board name written in the PCB record
	Width  float64 // Board width in mil
	Height float64 // Board height in mil
	Header Header  // Grid, DRC, flags, groups and styles

	layers []*Layer
}

// NewBoard creates a board with the default header settings. The name,
// width and height are written as given, even when empty or negative.
func NewBoard(width, height float64, name string) *Board {
	return &Board{
		Name:   name,
		Width:  width,
		Height: height,
		Header: DefaultHeader(),
	}
}

// AddLayer appends a new layer numbered one past the current layer count
// and returns it. An empty ltype means DefaultLayerType.
func (b *Board) AddLayer(name, ltype string) *Layer {
	return b.AddLayerNumber(len(b.layers)+1, name, ltype)
}

// AddLayerNumber appends a layer with an explicit number. Numbers are not
// checked for uniqueness.
func (b *Board) AddLayerNumber(n int, name, ltype string) *Layer {
	if ltype == "" {
		ltype = DefaultLayerType
	}
	layer := &Layer{Number: n, Name: name, Type: ltype}
	b.layers = append(b.layers, layer)
	return layer
}

// Layers returns the layers in insertion order.
func (b *Board) Layers() []*Layer {
	layers := make([]*Layer, len(b.layers))
	copy(layers, b.layers)
	return layers
}

func (b *Board) write(w *writer) {
	w.printf("PCB[\"%s\" %s %s]\n", b.Name, mil(b.Width), mil(b.Height))
	b.Header.write(w)
	w.print("\n")
	for _, layer := range b.layers {
		layer.write(w)
	}
}

// WriteTo writes the complete fixture text to dst.
func (b *Board) WriteTo(dst io.Writer) (int64, error) {
	return writeRecord(dst, b)
}

// String returns the complete fixture text.
func (b *Board) String() string {
	return renderRecord(b)
}
