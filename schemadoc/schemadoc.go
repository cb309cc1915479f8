// Package schemadoc projects entity schemas into a JSON document form for
// tooling and documentation. The projection is lossless for everything the
// codec consults: codes, kinds, multiplicity, version ranges and defaults.
package schemadoc

import (
	"fmt"

	gojson "github.com/goccy/go-json"
	godxf "github.com/reoring/godxf"
)

// Doc is the JSON shape of one entity schema.
type Doc struct {
	Type  string    `json:"type"`
	Slots []SlotDoc `json:"slots"`
}

// SlotDoc is the JSON shape of one field slot or marker position.
type SlotDoc struct {
	Code     int    `json:"code"`
	Name     string `json:"name,omitempty"`
	Marker   string `json:"marker,omitempty"`
	Kind     string `json:"kind,omitempty"`
	Repeated bool   `json:"repeated,omitempty"`
	Since    string `json:"since,omitempty"`
	Until    string `json:"until,omitempty"`
	Default  any    `json:"default,omitempty"`
}

// Export builds the document form of a schema.
func Export(sch *godxf.EntitySchema) (*Doc, error) {
	if sch == nil {
		return nil, fmt.Errorf("schemadoc: nil schema")
	}
	d := &Doc{Type: sch.Type, Slots: make([]SlotDoc, 0, len(sch.Slots))}
	for _, s := range sch.Slots {
		sd := SlotDoc{Code: s.Code}
		if s.Marker != "" {
			sd.Marker = s.Marker
		} else {
			sd.Name = s.Name
			sd.Kind = s.Kind.String()
			sd.Repeated = s.Repeated
			sd.Default = s.Default
		}
		if s.MinVersion != godxf.R10 {
			sd.Since = s.MinVersion.String()
		}
		if s.MaxVersion != godxf.VersionAny {
			sd.Until = s.MaxVersion.String()
		}
		d.Slots = append(d.Slots, sd)
	}
	return d, nil
}

// Bytes renders a schema as indented JSON.
func Bytes(sch *godxf.EntitySchema) ([]byte, error) {
	d, err := Export(sch)
	if err != nil {
		return nil, err
	}
	return gojson.MarshalIndent(d, "", "  ")
}
