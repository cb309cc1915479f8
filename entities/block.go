package entities

import (
	godxf "github.com/reoring/godxf"
	"github.com/reoring/godxf/dsl"
)

// Block covers the BLOCK begin record.
var Block = dsl.Entity("BLOCK").
	Marker("AcDbBlockBegin").
	Slot(2, "name", godxf.KindString).
	Slot(70, "flags", godxf.KindInt16).
	Slot(10, "base_x", godxf.KindDouble).
	Slot(20, "base_y", godxf.KindDouble).
	Slot(30, "base_z", godxf.KindDouble).
	Slot(3, "name2", godxf.KindString).
	Slot(1, "xref_path", godxf.KindString).
	Slot(4, "description", godxf.KindString).Since(godxf.R2000).
	MustBuild()

// EndBlk covers the ENDBLK record closing a block definition.
var EndBlk = dsl.Entity("ENDBLK").
	Marker("AcDbBlockEnd").
	MustBuild()

// Insert covers INSERT, a block reference with optional following attributes.
var Insert = dsl.Entity("INSERT").
	Marker("AcDbBlockReference").
	Slot(66, "attributes_follow", godxf.KindInt16).
	Slot(2, "block_name", godxf.KindString).
	Slot(10, "insert_x", godxf.KindDouble).
	Slot(20, "insert_y", godxf.KindDouble).
	Slot(30, "insert_z", godxf.KindDouble).
	Slot(41, "x_scale", godxf.KindDouble).Default(1.0).
	Slot(42, "y_scale", godxf.KindDouble).Default(1.0).
	Slot(43, "z_scale", godxf.KindDouble).Default(1.0).
	Slot(50, "rotation", godxf.KindDouble).
	Slot(70, "column_count", godxf.KindInt16).Default(int16(1)).
	Slot(71, "row_count", godxf.KindInt16).Default(int16(1)).
	Slot(44, "column_spacing", godxf.KindDouble).
	Slot(45, "row_spacing", godxf.KindDouble).
	Slot(210, "extrusion_x", godxf.KindDouble).
	Slot(220, "extrusion_y", godxf.KindDouble).
	Slot(230, "extrusion_z", godxf.KindDouble).Default(1.0).
	MustBuild()
