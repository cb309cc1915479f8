package dsl_test

import (
	"testing"

	godxf "github.com/reoring/godxf"
	g "github.com/reoring/godxf/dsl"
)

func TestBuilder_SlotOrderPreserved(t *testing.T) {
	sch, err := g.Entity("ARC").
		Marker("AcDbCircle").
		Slot(40, "radius", godxf.KindDouble).
		Marker("AcDbArc").
		Slot(50, "start_angle", godxf.KindDouble).
		Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if sch.Type != "ARC" {
		t.Fatalf("type: %q", sch.Type)
	}
	if len(sch.Slots) != 4 {
		t.Fatalf("expected 4 slots, got %d", len(sch.Slots))
	}
	if sch.Slots[0].Marker != "AcDbCircle" || sch.Slots[2].Marker != "AcDbArc" {
		t.Fatalf("marker positions lost: %+v", sch.Slots)
	}
	if sch.Slots[1].Name != "radius" || sch.Slots[3].Name != "start_angle" {
		t.Fatalf("slot order lost: %+v", sch.Slots)
	}
}

func TestBuilder_StepModifiers(t *testing.T) {
	sch, err := g.Entity("THING").
		Slot(1, "data", godxf.KindString).Repeated().Since(godxf.R13).Until(godxf.R2004).
		Slot(40, "size", godxf.KindDouble).Default(1.0).
		Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	s0, ok := sch.SlotByName("data")
	if !ok || !s0.Repeated || s0.MinVersion != godxf.R13 || s0.MaxVersion != godxf.R2004 {
		t.Fatalf("modifiers lost: %+v", s0)
	}
	s1, _ := sch.SlotByName("size")
	if s1.Default != 1.0 {
		t.Fatalf("default lost: %+v", s1)
	}
}

func TestBuilder_ValidationErrors(t *testing.T) {
	cases := []struct {
		name  string
		build func() (*godxf.EntitySchema, error)
	}{
		{"duplicate field name", func() (*godxf.EntitySchema, error) {
			return g.Entity("X").
				Slot(40, "size", godxf.KindDouble).
				Slot(41, "size", godxf.KindDouble).
				Build()
		}},
		{"header field collision", func() (*godxf.EntitySchema, error) {
			return g.Entity("X").Slot(8, "layer", godxf.KindString).Build()
		}},
		{"default kind mismatch", func() (*godxf.EntitySchema, error) {
			return g.Entity("X").Slot(40, "size", godxf.KindDouble).Default("big").Build()
		}},
		{"empty type", func() (*godxf.EntitySchema, error) {
			return g.Entity("").Slot(40, "size", godxf.KindDouble).Build()
		}},
		{"empty version range", func() (*godxf.EntitySchema, error) {
			return g.Entity("X").
				Slot(40, "size", godxf.KindDouble).Since(godxf.R2004).Until(godxf.R13).
				Build()
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := tc.build(); err == nil {
				t.Fatalf("expected build error")
			}
		})
	}
}

func TestBuilder_MarkerVersions(t *testing.T) {
	sch, err := g.Entity("X").
		Marker("AcDbFirst").
		MarkerSince("AcDbSecond", godxf.R2007).
		Slot(40, "size", godxf.KindDouble).
		Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if sch.Slots[0].MinVersion != godxf.R13 {
		t.Fatalf("plain markers start at R13, got %v", sch.Slots[0].MinVersion)
	}
	if sch.Slots[1].MinVersion != godxf.R2007 {
		t.Fatalf("staged marker version lost, got %v", sch.Slots[1].MinVersion)
	}
}
