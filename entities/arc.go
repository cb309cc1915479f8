package entities

import (
	godxf "github.com/reoring/godxf"
	"github.com/reoring/godxf/dsl"
)

// Circle covers CIRCLE.
var Circle = dsl.Entity("CIRCLE").
	Marker("AcDbCircle").
	Slot(39, "thickness", godxf.KindDouble).
	Slot(10, "center_x", godxf.KindDouble).
	Slot(20, "center_y", godxf.KindDouble).
	Slot(30, "center_z", godxf.KindDouble).
	Slot(40, "radius", godxf.KindDouble).
	Slot(210, "extrusion_x", godxf.KindDouble).
	Slot(220, "extrusion_y", godxf.KindDouble).
	Slot(230, "extrusion_z", godxf.KindDouble).Default(1.0).
	MustBuild()

// Arc covers ARC. The angles live under their own AcDbArc marker after the
// AcDbCircle block, the canonical example of markers interleaving with data.
var Arc = dsl.Entity("ARC").
	Marker("AcDbCircle").
	Slot(39, "thickness", godxf.KindDouble).
	Slot(10, "center_x", godxf.KindDouble).
	Slot(20, "center_y", godxf.KindDouble).
	Slot(30, "center_z", godxf.KindDouble).
	Slot(40, "radius", godxf.KindDouble).
	Slot(210, "extrusion_x", godxf.KindDouble).
	Slot(220, "extrusion_y", godxf.KindDouble).
	Slot(230, "extrusion_z", godxf.KindDouble).Default(1.0).
	Marker("AcDbArc").
	Slot(50, "start_angle", godxf.KindDouble).
	Slot(51, "end_angle", godxf.KindDouble).
	MustBuild()

// Ellipse covers ELLIPSE, introduced with R13.
var Ellipse = dsl.Entity("ELLIPSE").
	Marker("AcDbEllipse").
	Slot(10, "center_x", godxf.KindDouble).Since(godxf.R13).
	Slot(20, "center_y", godxf.KindDouble).Since(godxf.R13).
	Slot(30, "center_z", godxf.KindDouble).Since(godxf.R13).
	Slot(11, "major_x", godxf.KindDouble).Since(godxf.R13).
	Slot(21, "major_y", godxf.KindDouble).Since(godxf.R13).
	Slot(31, "major_z", godxf.KindDouble).Since(godxf.R13).
	Slot(210, "extrusion_x", godxf.KindDouble).Since(godxf.R13).
	Slot(220, "extrusion_y", godxf.KindDouble).Since(godxf.R13).
	Slot(230, "extrusion_z", godxf.KindDouble).Since(godxf.R13).Default(1.0).
	Slot(40, "ratio", godxf.KindDouble).Since(godxf.R13).Default(1.0).
	Slot(41, "start_param", godxf.KindDouble).Since(godxf.R13).
	Slot(42, "end_param", godxf.KindDouble).Since(godxf.R13).Default(6.283185307179586).
	MustBuild()
