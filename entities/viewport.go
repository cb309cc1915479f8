package entities

import (
	godxf "github.com/reoring/godxf"
	"github.com/reoring/godxf/dsl"
)

// Viewport covers VIEWPORT. The R11-era fields survive in all later
// revisions; the view geometry block moved out of extended data and into
// plain group codes with R2000, hence the staged ranges below.
var Viewport = dsl.Entity("VIEWPORT").
	Marker("AcDbViewport").
	Slot(10, "center_x", godxf.KindDouble).
	Slot(20, "center_y", godxf.KindDouble).
	Slot(30, "center_z", godxf.KindDouble).
	Slot(40, "width", godxf.KindDouble).
	Slot(41, "height", godxf.KindDouble).
	Slot(68, "status", godxf.KindInt16).
	Slot(69, "viewport_id", godxf.KindInt16).
	Slot(12, "view_center_x", godxf.KindDouble).Since(godxf.R2000).
	Slot(22, "view_center_y", godxf.KindDouble).Since(godxf.R2000).
	Slot(13, "snap_base_x", godxf.KindDouble).Since(godxf.R2000).
	Slot(23, "snap_base_y", godxf.KindDouble).Since(godxf.R2000).
	Slot(14, "snap_spacing_x", godxf.KindDouble).Since(godxf.R2000).Default(10.0).
	Slot(24, "snap_spacing_y", godxf.KindDouble).Since(godxf.R2000).Default(10.0).
	Slot(15, "grid_spacing_x", godxf.KindDouble).Since(godxf.R2000).Default(10.0).
	Slot(25, "grid_spacing_y", godxf.KindDouble).Since(godxf.R2000).Default(10.0).
	Slot(16, "view_direction_x", godxf.KindDouble).Since(godxf.R2000).
	Slot(26, "view_direction_y", godxf.KindDouble).Since(godxf.R2000).
	Slot(36, "view_direction_z", godxf.KindDouble).Since(godxf.R2000).Default(1.0).
	Slot(17, "view_target_x", godxf.KindDouble).Since(godxf.R2000).
	Slot(27, "view_target_y", godxf.KindDouble).Since(godxf.R2000).
	Slot(37, "view_target_z", godxf.KindDouble).Since(godxf.R2000).
	Slot(42, "lens_length", godxf.KindDouble).Since(godxf.R2000).Default(50.0).
	Slot(43, "front_clip_z", godxf.KindDouble).Since(godxf.R2000).
	Slot(44, "back_clip_z", godxf.KindDouble).Since(godxf.R2000).
	Slot(45, "view_height", godxf.KindDouble).Since(godxf.R2000).
	Slot(50, "snap_angle", godxf.KindDouble).Since(godxf.R2000).
	Slot(51, "twist_angle", godxf.KindDouble).Since(godxf.R2000).
	Slot(72, "circle_zoom", godxf.KindInt16).Since(godxf.R2000).Default(int16(100)).
	Slot(90, "status_flags", godxf.KindInt32).Since(godxf.R2000).
	Slot(340, "clip_boundary_handle", godxf.KindHandle).Since(godxf.R2000).
	Slot(1, "ucs_per_viewport", godxf.KindString).Since(godxf.R2000).
	MustBuild()
