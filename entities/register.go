package entities

import (
	godxf "github.com/reoring/godxf"
)

// Builtin lists every schema this package ships, in no particular order.
func Builtin() []*godxf.EntitySchema {
	return []*godxf.EntitySchema{
		Line, Point, Circle, Arc, Ellipse,
		Text, MText, Attrib,
		Solid, Trace, Face3D, Solid3D,
		Polyline, Vertex, SeqEnd, LWPolyline, Spline,
		Block, EndBlk, Insert,
		Dimension, Viewport,
	}
}

func init() {
	for _, sch := range Builtin() {
		godxf.MustRegister(sch, nil)
	}
}
