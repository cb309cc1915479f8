package godxf_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	godxf "github.com/reoring/godxf"
	"github.com/reoring/godxf/dsl"
)

// collectTags re-reads encoder output as (code, value) pairs.
func collectTags(t *testing.T, b []byte) []godxf.Tag {
	t.Helper()
	r := godxf.NewBytes(b)
	var tags []godxf.Tag
	for {
		tag, err := r.NextTag()
		if err != nil {
			return tags
		}
		tags = append(tags, tag)
	}
}

func encodeToTags(t *testing.T, rec *godxf.EntityRecord, sch *godxf.EntitySchema, v godxf.Version, opts ...godxf.EncodeOpt) []godxf.Tag {
	t.Helper()
	var buf bytes.Buffer
	w := godxf.NewWriter(&buf)
	if err := godxf.Encode(context.Background(), rec, sch, w, v, opts...); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}
	return collectTags(t, buf.Bytes())
}

func hasTag(tags []godxf.Tag, code int, value string) bool {
	for _, tg := range tags {
		if tg.Code == code && tg.Value == value {
			return true
		}
	}
	return false
}

func hasCode(tags []godxf.Tag, code int) bool {
	for _, tg := range tags {
		if tg.Code == code {
			return true
		}
	}
	return false
}

func TestEncode_DefaultElision(t *testing.T) {
	sch := arcSchema(t)
	rec := godxf.NewRecord(sch)
	if err := rec.Set("radius", 5.0); err != nil {
		t.Fatalf("set: %v", err)
	}
	// linetype left unset: defaults to BYLAYER and must not emit a code-6 tag
	tags := encodeToTags(t, rec, sch, godxf.R2000)

	if hasCode(tags, 6) {
		t.Fatalf("defaulted linetype must be elided, got %v", tags)
	}
	if !hasTag(tags, 0, "ARC") {
		t.Fatalf("expected entity keyword first, got %v", tags)
	}
	if tags[0].Code != 0 {
		t.Fatalf("keyword must come first, got %v", tags[0])
	}
	if !hasTag(tags, 40, "5") {
		t.Fatalf("expected radius tag, got %v", tags)
	}
	if !hasTag(tags, 8, "0") {
		t.Fatalf("layer always emits, got %v", tags)
	}
	// zero-valued doubles equal their default and are elided
	if hasCode(tags, 10) || hasCode(tags, 50) {
		t.Fatalf("defaulted geometry must be elided, got %v", tags)
	}
}

func TestEncode_KeepDefaults(t *testing.T) {
	sch := arcSchema(t)
	rec := godxf.NewRecord(sch)
	tags := encodeToTags(t, rec, sch, godxf.R2000, godxf.EncodeOpt{KeepDefaults: true})
	if !hasTag(tags, 6, "BYLAYER") || !hasCode(tags, 40) {
		t.Fatalf("KeepDefaults must emit defaulted fields, got %v", tags)
	}
}

func TestEncode_MarkerGating(t *testing.T) {
	sch := arcSchema(t)
	rec := godxf.NewRecord(sch)
	if err := rec.Set("radius", 2.0); err != nil {
		t.Fatalf("set: %v", err)
	}

	modern := encodeToTags(t, rec, sch, godxf.R2000)
	if !hasTag(modern, 100, "AcDbEntity") || !hasTag(modern, 100, "AcDbCircle") || !hasTag(modern, 100, "AcDbArc") {
		t.Fatalf("expected subclass markers at R2000, got %v", modern)
	}

	legacy := encodeToTags(t, rec, sch, godxf.R12)
	if hasCode(legacy, 100) {
		t.Fatalf("markers must not appear before R13, got %v", legacy)
	}
}

func TestEncode_MarkerOrderInterleaved(t *testing.T) {
	sch := arcSchema(t)
	rec := godxf.NewRecord(sch)
	if err := rec.Set("radius", 2.0); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := rec.Set("end_angle", 90.0); err != nil {
		t.Fatalf("set: %v", err)
	}
	tags := encodeToTags(t, rec, sch, godxf.R2000)

	idx := func(code int, value string) int {
		for i, tg := range tags {
			if tg.Code == code && tg.Value == value {
				return i
			}
		}
		return -1
	}
	circle, radius, arc, angle := idx(100, "AcDbCircle"), idx(40, "2"), idx(100, "AcDbArc"), idx(51, "90")
	if !(circle < radius && radius < arc && arc < angle) {
		t.Fatalf("canonical interleave violated: %v", tags)
	}
}

func TestEncode_VersionGatedSlotOmitted(t *testing.T) {
	sch, err := dsl.Entity("THING").
		Slot(40, "width", godxf.KindDouble).
		Slot(90, "flags", godxf.KindInt32).Since(godxf.R2000).
		Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	rec := godxf.NewRecord(sch)
	if err := rec.Set("flags", int32(7)); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := rec.Set("width", 1.0); err != nil {
		t.Fatalf("set: %v", err)
	}

	old := encodeToTags(t, rec, sch, godxf.R12)
	if hasCode(old, 90) {
		t.Fatalf("gated slot must not emit below its MinVersion, got %v", old)
	}
	modern := encodeToTags(t, rec, sch, godxf.R2004)
	if !hasTag(modern, 90, "7") {
		t.Fatalf("slot must emit at/after MinVersion, got %v", modern)
	}
}

func TestEncode_RepeatedFieldOrder(t *testing.T) {
	sch, err := dsl.Entity("BODYDATA").
		Slot(1, "data", godxf.KindString).Repeated().
		Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	rec := godxf.NewRecord(sch)
	for _, v := range []string{"AAA", "BBB"} {
		if err := rec.Append("data", v); err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	tags := encodeToTags(t, rec, sch, godxf.R2000)
	var got []string
	for _, tg := range tags {
		if tg.Code == 1 {
			got = append(got, tg.Value)
		}
	}
	if strings.Join(got, ",") != "AAA,BBB" {
		t.Fatalf("expected two code-1 tags in order, got %v", got)
	}
}

func TestEncode_HandleEmission(t *testing.T) {
	sch := arcSchema(t)
	rec := godxf.NewRecord(sch)

	tags := encodeToTags(t, rec, sch, godxf.R2000)
	if hasCode(tags, 5) || hasCode(tags, 330) {
		t.Fatalf("unassigned handles must not emit, got %v", tags)
	}

	if err := rec.Set(godxf.FieldHandle, "2B"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := rec.Set(godxf.FieldOwnerHandle, "1F"); err != nil {
		t.Fatalf("set: %v", err)
	}
	tags = encodeToTags(t, rec, sch, godxf.R2000)
	if !hasTag(tags, 5, "2B") || !hasTag(tags, 330, "1F") {
		t.Fatalf("assigned handles must emit, got %v", tags)
	}

	// owner handles did not exist before R13
	legacy := encodeToTags(t, rec, sch, godxf.R12)
	if hasCode(legacy, 330) {
		t.Fatalf("owner handle must not emit before R13, got %v", legacy)
	}
}

func TestEncode_Preconditions(t *testing.T) {
	ctx := context.Background()
	sch := arcSchema(t)
	rec := godxf.NewRecord(sch)
	var buf bytes.Buffer
	w := godxf.NewWriter(&buf)

	if err := godxf.Encode(ctx, nil, sch, w, godxf.R2000); err == nil {
		t.Fatalf("expected error for nil record")
	}
	if err := godxf.Encode(ctx, rec, nil, w, godxf.R2000); err == nil {
		t.Fatalf("expected error for nil schema")
	}
	if err := godxf.Encode(ctx, rec, sch, nil, godxf.R2000); err == nil {
		t.Fatalf("expected error for nil sink")
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("sink broken")
}

func TestEncode_BrokenSink(t *testing.T) {
	sch := arcSchema(t)
	rec := godxf.NewRecord(sch)
	w := godxf.NewWriter(failingWriter{})
	err := godxf.Encode(context.Background(), rec, sch, w, godxf.R2000)
	if err == nil {
		err = w.Flush()
	}
	if err == nil {
		t.Fatalf("expected failure on broken sink")
	}
}
