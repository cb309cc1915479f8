package schemadoc_test

import (
	"strings"
	"testing"

	gojson "github.com/goccy/go-json"
	godxf "github.com/reoring/godxf"
	"github.com/reoring/godxf/dsl"
	"github.com/reoring/godxf/schemadoc"
)

func testSchema(t *testing.T) *godxf.EntitySchema {
	t.Helper()
	sch, err := dsl.Entity("ARC").
		Marker("AcDbCircle").
		Slot(40, "radius", godxf.KindDouble).Default(1.0).
		Slot(1, "data", godxf.KindString).Repeated().Since(godxf.R13).Until(godxf.R2004).
		Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	return sch
}

func TestExport(t *testing.T) {
	doc, err := schemadoc.Export(testSchema(t))
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if doc.Type != "ARC" || len(doc.Slots) != 3 {
		t.Fatalf("doc shape: %+v", doc)
	}
	if doc.Slots[0].Marker != "AcDbCircle" || doc.Slots[0].Since != "R13" {
		t.Fatalf("marker slot: %+v", doc.Slots[0])
	}
	if doc.Slots[1].Kind != "double" || doc.Slots[1].Default != 1.0 {
		t.Fatalf("radius slot: %+v", doc.Slots[1])
	}
	if !doc.Slots[2].Repeated || doc.Slots[2].Until != "R2004" {
		t.Fatalf("data slot: %+v", doc.Slots[2])
	}
}

func TestBytes_RoundTripsThroughJSON(t *testing.T) {
	b, err := schemadoc.Bytes(testSchema(t))
	if err != nil {
		t.Fatalf("bytes: %v", err)
	}
	var doc schemadoc.Doc
	if err := gojson.Unmarshal(b, &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if doc.Type != "ARC" {
		t.Fatalf("type lost: %+v", doc)
	}
	if !strings.Contains(string(b), "\"code\": 40") {
		t.Fatalf("expected indented output, got %s", b)
	}
}

func TestExport_NilSchema(t *testing.T) {
	if _, err := schemadoc.Export(nil); err == nil {
		t.Fatalf("expected error for nil schema")
	}
}
