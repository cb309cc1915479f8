package entities_test

import (
	"context"
	"testing"

	godxf "github.com/reoring/godxf"
	"github.com/reoring/godxf/dsl"
	"github.com/reoring/godxf/entities"
)

func TestBuiltin_AllRegistered(t *testing.T) {
	for _, sch := range entities.Builtin() {
		got, ctor, ok := godxf.Lookup(sch.Type)
		if !ok {
			t.Fatalf("%s not registered", sch.Type)
		}
		if got != sch {
			t.Fatalf("%s registered with a different schema", sch.Type)
		}
		if rec := ctor(); rec.Type() != sch.Type {
			t.Fatalf("%s constructor mismatch", sch.Type)
		}
	}
}

func TestBuiltin_UniqueTypes(t *testing.T) {
	seen := map[string]bool{}
	for _, sch := range entities.Builtin() {
		if seen[sch.Type] {
			t.Fatalf("duplicate builtin type %s", sch.Type)
		}
		seen[sch.Type] = true
	}
}

func TestArc_DecodeReferenceSpan(t *testing.T) {
	in := "  5\n2F\n  8\nWalls\n100\nAcDbEntity\n100\nAcDbCircle\n" +
		" 10\n1.0\n 20\n2.0\n 30\n0.0\n 40\n7.5\n" +
		"100\nAcDbArc\n 50\n15.0\n 51\n200.0\n  0\nENDSEC\n"
	dec, err := godxf.Decode(context.Background(), entities.Arc, godxf.NewBytes([]byte(in)), godxf.R2000)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(dec.Warnings) != 0 {
		t.Fatalf("warnings: %v", dec.Warnings)
	}
	rec := dec.Record
	if rec.Handle() != "2F" || rec.Layer() != "Walls" {
		t.Fatalf("bookkeeping: handle=%q layer=%q", rec.Handle(), rec.Layer())
	}
	if v, _ := rec.Get("radius"); v != 7.5 {
		t.Fatalf("radius: %v", v)
	}
	if v, _ := rec.Get("end_angle"); v != 200.0 {
		t.Fatalf("end_angle: %v", v)
	}
	// extrusion z falls back to its declared default
	if v, _ := rec.Get("extrusion_z"); v != 1.0 {
		t.Fatalf("extrusion_z default: %v", v)
	}
}

func TestLWPolyline_GatedBelowR14(t *testing.T) {
	in := " 90\n2\n 10\n0.0\n 20\n0.0\n 10\n1.0\n 20\n1.0\n  0\nENDSEC\n"
	dec, err := godxf.Decode(context.Background(), entities.LWPolyline, godxf.NewBytes([]byte(in)), godxf.R13)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	// everything is version-gated below R14: values ignored, warnings raised
	if len(dec.Warnings) == 0 {
		t.Fatalf("expected version_gated warnings")
	}
	for _, iss := range dec.Warnings {
		if iss.Code != godxf.CodeVersionGated {
			t.Fatalf("unexpected issue %v", iss)
		}
	}
	if len(dec.Record.Seq("vertex_x")) != 0 {
		t.Fatalf("gated repeated field must stay empty")
	}
}

func TestText_DuplicateMarkerSchema(t *testing.T) {
	// TEXT keeps the vertical justification under a second AcDbText marker.
	// The schema must accept the repeated marker name and the encoder must
	// emit it at both positions.
	n := 0
	for _, s := range entities.Text.Slots {
		if s.Marker == "AcDbText" {
			n++
		}
	}
	if n != 2 {
		t.Fatalf("expected AcDbText declared twice, got %d", n)
	}

	rebuilt, err := dsl.Entity("TEXT").
		Marker("AcDbText").
		Slot(1, "text", godxf.KindString).
		Marker("AcDbText").
		Slot(73, "v_justify", godxf.KindInt16).
		Build()
	if err != nil {
		t.Fatalf("duplicate marker rejected: %v", err)
	}

	rec := godxf.NewRecord(rebuilt)
	if err := rec.Set("v_justify", int16(2)); err != nil {
		t.Fatalf("set: %v", err)
	}
	var sink tagList
	if err := godxf.Encode(context.Background(), rec, rebuilt, &sink, godxf.R2000); err != nil {
		t.Fatalf("encode: %v", err)
	}
	markers := 0
	for _, tg := range sink {
		if tg.code == 100 && tg.value == "AcDbText" {
			markers++
		}
	}
	if markers != 2 {
		t.Fatalf("expected AcDbText emitted twice, got %d in %v", markers, sink)
	}
}

type tagList []struct {
	code  int
	value string
}

func (l *tagList) WriteTag(code int, value string) error {
	*l = append(*l, struct {
		code  int
		value string
	}{code, value})
	return nil
}

func TestVertexSeqendSchemas(t *testing.T) {
	if len(entities.SeqEnd.Slots) != 0 {
		t.Fatalf("SEQEND carries no entity-specific slots")
	}
	if _, ok := entities.Vertex.SlotByName("bulge"); !ok {
		t.Fatalf("VERTEX must declare bulge")
	}
}
