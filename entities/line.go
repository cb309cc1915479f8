package entities

import (
	godxf "github.com/reoring/godxf"
	"github.com/reoring/godxf/dsl"
)

// Line covers LINE: a segment between two points with optional thickness and
// extrusion direction.
var Line = dsl.Entity("LINE").
	Marker("AcDbLine").
	Slot(39, "thickness", godxf.KindDouble).
	Slot(10, "start_x", godxf.KindDouble).
	Slot(20, "start_y", godxf.KindDouble).
	Slot(30, "start_z", godxf.KindDouble).
	Slot(11, "end_x", godxf.KindDouble).
	Slot(21, "end_y", godxf.KindDouble).
	Slot(31, "end_z", godxf.KindDouble).
	Slot(210, "extrusion_x", godxf.KindDouble).
	Slot(220, "extrusion_y", godxf.KindDouble).
	Slot(230, "extrusion_z", godxf.KindDouble).Default(1.0).
	MustBuild()

// Point covers POINT. Code 50 carries the UCS x-axis angle, present from R13.
var Point = dsl.Entity("POINT").
	Marker("AcDbPoint").
	Slot(10, "x", godxf.KindDouble).
	Slot(20, "y", godxf.KindDouble).
	Slot(30, "z", godxf.KindDouble).
	Slot(39, "thickness", godxf.KindDouble).
	Slot(210, "extrusion_x", godxf.KindDouble).
	Slot(220, "extrusion_y", godxf.KindDouble).
	Slot(230, "extrusion_z", godxf.KindDouble).Default(1.0).
	Slot(50, "x_axis_angle", godxf.KindDouble).Since(godxf.R13).
	MustBuild()
