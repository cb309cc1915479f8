package entities

import (
	godxf "github.com/reoring/godxf"
	"github.com/reoring/godxf/dsl"
)

// traceLike builds the four-corner field set shared by SOLID and TRACE.
func traceLike(typ string) *godxf.EntitySchema {
	return dsl.Entity(typ).
		Marker("AcDbTrace").
		Slot(10, "p1_x", godxf.KindDouble).
		Slot(20, "p1_y", godxf.KindDouble).
		Slot(30, "p1_z", godxf.KindDouble).
		Slot(11, "p2_x", godxf.KindDouble).
		Slot(21, "p2_y", godxf.KindDouble).
		Slot(31, "p2_z", godxf.KindDouble).
		Slot(12, "p3_x", godxf.KindDouble).
		Slot(22, "p3_y", godxf.KindDouble).
		Slot(32, "p3_z", godxf.KindDouble).
		Slot(13, "p4_x", godxf.KindDouble).
		Slot(23, "p4_y", godxf.KindDouble).
		Slot(33, "p4_z", godxf.KindDouble).
		Slot(39, "thickness", godxf.KindDouble).
		Slot(210, "extrusion_x", godxf.KindDouble).
		Slot(220, "extrusion_y", godxf.KindDouble).
		Slot(230, "extrusion_z", godxf.KindDouble).Default(1.0).
		MustBuild()
}

// Solid covers SOLID, Trace covers TRACE; both share the AcDbTrace field set.
var (
	Solid = traceLike("SOLID")
	Trace = traceLike("TRACE")
)

// Face3D covers 3DFACE.
var Face3D = dsl.Entity("3DFACE").
	Marker("AcDbFace").
	Slot(10, "p1_x", godxf.KindDouble).
	Slot(20, "p1_y", godxf.KindDouble).
	Slot(30, "p1_z", godxf.KindDouble).
	Slot(11, "p2_x", godxf.KindDouble).
	Slot(21, "p2_y", godxf.KindDouble).
	Slot(31, "p2_z", godxf.KindDouble).
	Slot(12, "p3_x", godxf.KindDouble).
	Slot(22, "p3_y", godxf.KindDouble).
	Slot(32, "p3_z", godxf.KindDouble).
	Slot(13, "p4_x", godxf.KindDouble).
	Slot(23, "p4_y", godxf.KindDouble).
	Slot(33, "p4_z", godxf.KindDouble).
	Slot(70, "edge_flags", godxf.KindInt16).
	MustBuild()

// Solid3D covers 3DSOLID: modeler data as unbounded repeated proprietary
// lines, with the R2007 history handle staged under its own marker.
var Solid3D = dsl.Entity("3DSOLID").
	Marker("AcDbModelerGeometry").
	Slot(70, "modeler_version", godxf.KindInt16).Since(godxf.R13).Default(int16(1)).
	Slot(1, "proprietary_data", godxf.KindString).Since(godxf.R13).Repeated().
	Slot(3, "proprietary_data_extra", godxf.KindString).Since(godxf.R13).Repeated().
	MarkerSince("AcDb3dSolid", godxf.R2007).
	Slot(350, "history_handle", godxf.KindHandle).Since(godxf.R2007).
	MustBuild()
