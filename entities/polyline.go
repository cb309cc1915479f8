package entities

import (
	godxf "github.com/reoring/godxf"
	"github.com/reoring/godxf/dsl"
)

// Polyline covers the classic POLYLINE header entity; its vertices follow as
// VERTEX entities terminated by SEQEND.
var Polyline = dsl.Entity("POLYLINE").
	Marker("AcDb2dPolyline").
	Slot(66, "vertices_follow", godxf.KindInt16).Default(int16(1)).
	Slot(10, "elevation_x", godxf.KindDouble).
	Slot(20, "elevation_y", godxf.KindDouble).
	Slot(30, "elevation_z", godxf.KindDouble).
	Slot(39, "thickness", godxf.KindDouble).
	Slot(70, "flags", godxf.KindInt16).
	Slot(40, "start_width", godxf.KindDouble).
	Slot(41, "end_width", godxf.KindDouble).
	Slot(71, "mesh_m_count", godxf.KindInt16).
	Slot(72, "mesh_n_count", godxf.KindInt16).
	Slot(73, "smooth_m_density", godxf.KindInt16).
	Slot(74, "smooth_n_density", godxf.KindInt16).
	Slot(75, "smooth_type", godxf.KindInt16).
	Slot(210, "extrusion_x", godxf.KindDouble).
	Slot(220, "extrusion_y", godxf.KindDouble).
	Slot(230, "extrusion_z", godxf.KindDouble).Default(1.0).
	MustBuild()

// Vertex covers VERTEX.
var Vertex = dsl.Entity("VERTEX").
	Marker("AcDbVertex").
	Marker("AcDb2dVertex").
	Slot(10, "x", godxf.KindDouble).
	Slot(20, "y", godxf.KindDouble).
	Slot(30, "z", godxf.KindDouble).
	Slot(40, "start_width", godxf.KindDouble).
	Slot(41, "end_width", godxf.KindDouble).
	Slot(42, "bulge", godxf.KindDouble).
	Slot(70, "flags", godxf.KindInt16).
	Slot(50, "tangent_direction", godxf.KindDouble).
	MustBuild()

// SeqEnd covers SEQEND, which carries only the common bookkeeping.
var SeqEnd = dsl.Entity("SEQEND").MustBuild()

// LWPolyline covers LWPOLYLINE, introduced with R14. Per-vertex data arrives
// as repeated tags in lockstep arrival order; sequences grow without bound.
var LWPolyline = dsl.Entity("LWPOLYLINE").
	Marker("AcDbPolyline").
	Slot(90, "vertex_count", godxf.KindInt32).Since(godxf.R14).
	Slot(70, "flags", godxf.KindInt16).Since(godxf.R14).
	Slot(43, "constant_width", godxf.KindDouble).Since(godxf.R14).
	Slot(38, "elevation", godxf.KindDouble).Since(godxf.R14).
	Slot(39, "thickness", godxf.KindDouble).Since(godxf.R14).
	Slot(10, "vertex_x", godxf.KindDouble).Since(godxf.R14).Repeated().
	Slot(20, "vertex_y", godxf.KindDouble).Since(godxf.R14).Repeated().
	Slot(40, "start_width", godxf.KindDouble).Since(godxf.R14).Repeated().
	Slot(41, "end_width", godxf.KindDouble).Since(godxf.R14).Repeated().
	Slot(42, "bulge", godxf.KindDouble).Since(godxf.R14).Repeated().
	Slot(210, "extrusion_x", godxf.KindDouble).Since(godxf.R14).
	Slot(220, "extrusion_y", godxf.KindDouble).Since(godxf.R14).
	Slot(230, "extrusion_z", godxf.KindDouble).Since(godxf.R14).Default(1.0).
	MustBuild()

// Spline covers SPLINE, introduced with R13. Knots, control points and fit
// points are all unbounded sequences.
var Spline = dsl.Entity("SPLINE").
	Marker("AcDbSpline").
	Slot(210, "normal_x", godxf.KindDouble).Since(godxf.R13).
	Slot(220, "normal_y", godxf.KindDouble).Since(godxf.R13).
	Slot(230, "normal_z", godxf.KindDouble).Since(godxf.R13).Default(1.0).
	Slot(70, "flags", godxf.KindInt16).Since(godxf.R13).
	Slot(71, "degree", godxf.KindInt16).Since(godxf.R13).
	Slot(72, "knot_count", godxf.KindInt16).Since(godxf.R13).
	Slot(73, "control_count", godxf.KindInt16).Since(godxf.R13).
	Slot(74, "fit_count", godxf.KindInt16).Since(godxf.R13).
	Slot(42, "knot_tolerance", godxf.KindDouble).Since(godxf.R13).Default(1e-7).
	Slot(43, "control_tolerance", godxf.KindDouble).Since(godxf.R13).Default(1e-7).
	Slot(44, "fit_tolerance", godxf.KindDouble).Since(godxf.R13).Default(1e-10).
	Slot(40, "knot", godxf.KindDouble).Since(godxf.R13).Repeated().
	Slot(10, "control_x", godxf.KindDouble).Since(godxf.R13).Repeated().
	Slot(20, "control_y", godxf.KindDouble).Since(godxf.R13).Repeated().
	Slot(30, "control_z", godxf.KindDouble).Since(godxf.R13).Repeated().
	Slot(11, "fit_x", godxf.KindDouble).Since(godxf.R13).Repeated().
	Slot(21, "fit_y", godxf.KindDouble).Since(godxf.R13).Repeated().
	Slot(31, "fit_z", godxf.KindDouble).Since(godxf.R13).Repeated().
	MustBuild()
