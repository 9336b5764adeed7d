package pcbfile

import "io"

// Object is a drawable record that can be placed on a layer: *Line, *Arc,
// *Polygon or *Text. Boards and layers are not objects.
type Object interface {
	io.WriterTo
	String() string
	write(w *writer)
	drawable()
}

var (
	_ Object = (*Line)(nil)
	_ Object = (*Arc)(nil)
	_ Object = (*Polygon)(nil)
	_ Object = (*Text)(nil)
)

// Layer is a numbered, typed group of objects.
type Layer struct {
	Number int    // Layer number written in the block header
	Name   string // Layer name (e.g., "top", "silk")
	Type   string // Layer type (e.g., "copper", "silk", "outline")

	objects []Object
}

// Add appends objects to the layer in order.
func (l *Layer) Add(objs ...Object) {
	l.objects = append(l.objects, objs...)
}

// Objects returns the layer's objects in insertion order.
func (l *Layer) Objects() []Object {
	objs := make([]Object, len(l.objects))
	copy(objs, l.objects)
	return objs
}

func (l *Layer) write(w *writer) {
	w.printf("Layer(%d \"%s\" \"%s\")\n(\n", l.Number, l.Name, l.Type)
	for _, o := range l.objects {
		o.write(w)
	}
	w.print(")\n")
}

// WriteTo writes the layer block to dst.
func (l *Layer) WriteTo(dst io.Writer) (int64, error) {
	return writeRecord(dst, l)
}

// String returns the layer block.
func (l *Layer) String() string {
	return renderRecord(l)
}
