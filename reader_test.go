package godxf_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	godxf "github.com/reoring/godxf"
)

func TestReader_PairsAndLines(t *testing.T) {
	in := "  0\nLINE\n 10\n1.5\n"
	r := godxf.NewBytes([]byte(in))

	t1, err := r.NextTag()
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if t1.Code != 0 || t1.Value != "LINE" || t1.Line != 1 {
		t.Fatalf("unexpected tag %+v", t1)
	}
	t2, err := r.NextTag()
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if t2.Code != 10 || t2.Value != "1.5" || t2.Line != 3 {
		t.Fatalf("unexpected tag %+v", t2)
	}
	if _, err := r.NextTag(); err != io.EOF {
		t.Fatalf("expected EOF, got %v", err)
	}
}

func TestReader_CRLFAndFinalLineWithoutNewline(t *testing.T) {
	in := "  8\r\nWalls\r\n 62\r\n7"
	r := godxf.NewBytes([]byte(in))

	t1, err := r.NextTag()
	if err != nil || t1.Code != 8 || t1.Value != "Walls" {
		t.Fatalf("unexpected %+v err=%v", t1, err)
	}
	t2, err := r.NextTag()
	if err != nil || t2.Code != 62 || t2.Value != "7" {
		t.Fatalf("unexpected %+v err=%v", t2, err)
	}
}

func TestReader_SkipsComments(t *testing.T) {
	in := "999\nwritten by hand\n  8\n0\n"
	r := godxf.NewBytes([]byte(in))
	tag, err := r.NextTag()
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if tag.Code != 8 {
		t.Fatalf("expected comment skipped, got %+v", tag)
	}
}

func TestReader_Unread(t *testing.T) {
	r := godxf.NewBytes([]byte("  0\nARC\n"))
	tag, err := r.NextTag()
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	r.Unread(tag)
	again, err := r.NextTag()
	if err != nil {
		t.Fatalf("next after unread: %v", err)
	}
	if again != tag {
		t.Fatalf("expected same tag back, got %+v vs %+v", again, tag)
	}
}

func TestReader_TruncatedPairIsStreamFailure(t *testing.T) {
	r := godxf.NewBytes([]byte(" 10\n"))
	_, err := r.NextTag()
	if !errors.Is(err, godxf.ErrStreamFailure) {
		t.Fatalf("expected stream failure, got %v", err)
	}
	// sticky afterwards
	if _, err := r.NextTag(); !errors.Is(err, godxf.ErrStreamFailure) {
		t.Fatalf("expected sticky failure, got %v", err)
	}
}

func TestReader_MalformedCodeLine(t *testing.T) {
	r := godxf.NewBytes([]byte("banana\n0\n"))
	_, err := r.NextTag()
	if !errors.Is(err, godxf.ErrStreamFailure) {
		t.Fatalf("expected stream failure, got %v", err)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }

func TestReader_IOErrorPropagates(t *testing.T) {
	r := godxf.NewReader(failingReader{})
	_, err := r.NextTag()
	if !errors.Is(err, godxf.ErrStreamFailure) {
		t.Fatalf("expected stream failure, got %v", err)
	}
	if !strings.Contains(err.Error(), "disk on fire") {
		t.Fatalf("cause lost: %v", err)
	}
}
