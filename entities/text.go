package entities

import (
	godxf "github.com/reoring/godxf"
	"github.com/reoring/godxf/dsl"
)

// Text covers TEXT. The vertical justification sits under a second AcDbText
// marker, a convention the reference application has kept since R13.
var Text = dsl.Entity("TEXT").
	Marker("AcDbText").
	Slot(39, "thickness", godxf.KindDouble).
	Slot(10, "insert_x", godxf.KindDouble).
	Slot(20, "insert_y", godxf.KindDouble).
	Slot(30, "insert_z", godxf.KindDouble).
	Slot(40, "height", godxf.KindDouble).Default(1.0).
	Slot(1, "text", godxf.KindString).
	Slot(50, "rotation", godxf.KindDouble).
	Slot(41, "x_scale", godxf.KindDouble).Default(1.0).
	Slot(51, "oblique", godxf.KindDouble).
	Slot(7, "style", godxf.KindString).Default("STANDARD").
	Slot(71, "generation_flags", godxf.KindInt16).
	Slot(72, "h_justify", godxf.KindInt16).
	Slot(11, "align_x", godxf.KindDouble).
	Slot(21, "align_y", godxf.KindDouble).
	Slot(31, "align_z", godxf.KindDouble).
	Slot(210, "extrusion_x", godxf.KindDouble).
	Slot(220, "extrusion_y", godxf.KindDouble).
	Slot(230, "extrusion_z", godxf.KindDouble).Default(1.0).
	Marker("AcDbText").
	Slot(73, "v_justify", godxf.KindInt16).
	MustBuild()

// MText covers MTEXT, introduced with R13. Text longer than 250 characters
// continues across repeated code-3 chunks before the final code-1 tag.
var MText = dsl.Entity("MTEXT").
	Marker("AcDbMText").
	Slot(10, "insert_x", godxf.KindDouble).Since(godxf.R13).
	Slot(20, "insert_y", godxf.KindDouble).Since(godxf.R13).
	Slot(30, "insert_z", godxf.KindDouble).Since(godxf.R13).
	Slot(40, "height", godxf.KindDouble).Since(godxf.R13).Default(1.0).
	Slot(41, "ref_width", godxf.KindDouble).Since(godxf.R13).
	Slot(71, "attachment", godxf.KindInt16).Since(godxf.R13).Default(int16(1)).
	Slot(72, "drawing_direction", godxf.KindInt16).Since(godxf.R13).Default(int16(1)).
	Slot(3, "text_chunk", godxf.KindString).Since(godxf.R13).Repeated().
	Slot(1, "text", godxf.KindString).Since(godxf.R13).
	Slot(7, "style", godxf.KindString).Since(godxf.R13).Default("STANDARD").
	Slot(50, "rotation", godxf.KindDouble).Since(godxf.R13).
	Slot(73, "line_spacing_style", godxf.KindInt16).Since(godxf.R13).Default(int16(1)).
	Slot(44, "line_spacing_factor", godxf.KindDouble).Since(godxf.R13).Default(1.0).
	Slot(210, "extrusion_x", godxf.KindDouble).Since(godxf.R13).
	Slot(220, "extrusion_y", godxf.KindDouble).Since(godxf.R13).
	Slot(230, "extrusion_z", godxf.KindDouble).Since(godxf.R13).Default(1.0).
	MustBuild()

// Attrib covers ATTRIB: TEXT's field set with the attribute block appended
// under its own marker.
var Attrib = dsl.Entity("ATTRIB").
	Marker("AcDbText").
	Slot(39, "thickness", godxf.KindDouble).
	Slot(10, "insert_x", godxf.KindDouble).
	Slot(20, "insert_y", godxf.KindDouble).
	Slot(30, "insert_z", godxf.KindDouble).
	Slot(40, "height", godxf.KindDouble).Default(1.0).
	Slot(1, "value", godxf.KindString).
	Marker("AcDbAttribute").
	Slot(2, "tag", godxf.KindString).
	Slot(70, "attribute_flags", godxf.KindInt16).
	Slot(73, "field_length", godxf.KindInt16).
	Slot(50, "rotation", godxf.KindDouble).
	Slot(41, "x_scale", godxf.KindDouble).Default(1.0).
	Slot(51, "oblique", godxf.KindDouble).
	Slot(7, "style", godxf.KindString).Default("STANDARD").
	Slot(71, "generation_flags", godxf.KindInt16).
	Slot(72, "h_justify", godxf.KindInt16).
	Slot(74, "v_justify", godxf.KindInt16).
	Slot(11, "align_x", godxf.KindDouble).
	Slot(21, "align_y", godxf.KindDouble).
	Slot(31, "align_z", godxf.KindDouble).
	Slot(210, "extrusion_x", godxf.KindDouble).
	Slot(220, "extrusion_y", godxf.KindDouble).
	Slot(230, "extrusion_z", godxf.KindDouble).Default(1.0).
	MustBuild()
