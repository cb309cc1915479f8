package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"

	godxf "github.com/reoring/godxf"
)

// document holds everything the walker gathered from one file.
type document struct {
	*godxf.List
	version godxf.Version
}

// walk is the minimal section reader: it recognizes the HEADER $ACADVER
// variable to establish the active version, then decodes every entity in the
// ENTITIES section through the registry. Everything else is skipped.
func walk(r *godxf.Reader, override string, log *slog.Logger) (*document, error) {
	doc := &document{List: godxf.NewList(), version: godxf.R2000}
	versionSet := false
	if override != "" {
		v, err := resolveVersion(override)
		if err != nil {
			return nil, err
		}
		doc.version = v
		versionSet = true
	}

	ctx := context.Background()
	section := ""
	for {
		t, err := r.NextTag()
		if err != nil {
			if err == io.EOF {
				return doc, nil
			}
			return nil, err
		}
		switch {
		case t.Code == 0 && t.Value == "EOF":
			return doc, nil
		case t.Code == 0 && t.Value == "SECTION":
			nt, err := r.NextTag()
			if err != nil {
				return nil, err
			}
			if nt.Code == 2 {
				section = nt.Value
			}
		case t.Code == 0 && t.Value == "ENDSEC":
			section = ""
		case t.Code == 9 && section == "HEADER" && t.Value == "$ACADVER":
			nt, err := r.NextTag()
			if err != nil {
				return nil, err
			}
			if !versionSet {
				if v, ok := godxf.ParseVersion(strings.TrimSpace(nt.Value)); ok {
					doc.version = v
					versionSet = true
				} else {
					log.Warn("unrecognized $ACADVER token", "token", nt.Value)
				}
			}
		case t.Code == 0 && section == "ENTITIES":
			if err := decodeEntity(ctx, t.Value, r, doc, log); err != nil {
				return nil, err
			}
		}
	}
}

func decodeEntity(ctx context.Context, keyword string, r *godxf.Reader, doc *document, log *slog.Logger) error {
	_, ctor, ok := godxf.Lookup(keyword)
	if !ok {
		log.Warn("unknown entity type; skipping span", "type", keyword)
		return skipSpan(r)
	}
	dec, err := godxf.DecodeInto(ctx, ctor(), r, doc.version)
	if err != nil {
		return err
	}
	for _, iss := range dec.Warnings {
		log.Warn("decode diagnostic",
			"type", keyword, "code", iss.Code, "line", iss.Line, "msg", iss.Message)
	}
	return doc.Append(dec.Record)
}

// skipSpan drains tags up to the next code-0 boundary, leaving the boundary
// unread for the caller's loop.
func skipSpan(r *godxf.Reader) error {
	for {
		t, err := r.NextTag()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if t.Code == 0 {
			r.Unread(t)
			return nil
		}
	}
}

func writeSectionBegin(w *godxf.Writer, v godxf.Version) error {
	pairs := []struct {
		code  int
		value string
	}{
		{0, "SECTION"}, {2, "HEADER"},
		{9, "$ACADVER"}, {1, v.Token()},
		{0, "ENDSEC"},
		{0, "SECTION"}, {2, "ENTITIES"},
	}
	for _, p := range pairs {
		if err := w.WriteTag(p.code, p.value); err != nil {
			return err
		}
	}
	return nil
}

func writeSectionEnd(w *godxf.Writer) error {
	if err := w.WriteTag(0, "ENDSEC"); err != nil {
		return err
	}
	return w.WriteTag(0, "EOF")
}
