package entities

import (
	godxf "github.com/reoring/godxf"
	"github.com/reoring/godxf/dsl"
)

// Dimension covers the shared DIMENSION record. Subtype-specific definition
// points are declared here as well; which ones a file populates depends on
// the dimension type flags.
var Dimension = dsl.Entity("DIMENSION").
	Marker("AcDbDimension").
	Slot(2, "block_name", godxf.KindString).
	Slot(10, "def_x", godxf.KindDouble).
	Slot(20, "def_y", godxf.KindDouble).
	Slot(30, "def_z", godxf.KindDouble).
	Slot(11, "text_mid_x", godxf.KindDouble).
	Slot(21, "text_mid_y", godxf.KindDouble).
	Slot(31, "text_mid_z", godxf.KindDouble).
	Slot(70, "dimension_type", godxf.KindInt16).
	Slot(71, "attachment", godxf.KindInt16).Since(godxf.R2000).Default(int16(5)).
	Slot(72, "line_spacing_style", godxf.KindInt16).Since(godxf.R2000).Default(int16(1)).
	Slot(41, "line_spacing_factor", godxf.KindDouble).Since(godxf.R2000).Default(1.0).
	Slot(42, "actual_measurement", godxf.KindDouble).Since(godxf.R2000).
	Slot(1, "text", godxf.KindString).
	Slot(53, "text_rotation", godxf.KindDouble).
	Slot(51, "horizontal_direction", godxf.KindDouble).
	Slot(3, "style", godxf.KindString).Default("STANDARD").
	Slot(13, "ext1_x", godxf.KindDouble).
	Slot(23, "ext1_y", godxf.KindDouble).
	Slot(33, "ext1_z", godxf.KindDouble).
	Slot(14, "ext2_x", godxf.KindDouble).
	Slot(24, "ext2_y", godxf.KindDouble).
	Slot(34, "ext2_z", godxf.KindDouble).
	Slot(50, "rotation", godxf.KindDouble).
	Slot(210, "extrusion_x", godxf.KindDouble).
	Slot(220, "extrusion_y", godxf.KindDouble).
	Slot(230, "extrusion_z", godxf.KindDouble).Default(1.0).
	MustBuild()
