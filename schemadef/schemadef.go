// Package schemadef loads entity schema definitions from YAML documents.
// Vendor extension entities ship as data files this way instead of compiled
// tables, and register next to the builtin ones.
package schemadef

import (
	"fmt"

	godxf "github.com/reoring/godxf"
	"gopkg.in/yaml.v3"
)

// File is the top-level YAML document shape.
type File struct {
	Entities []EntityDef `yaml:"entities"`
}

// EntityDef declares one entity schema.
type EntityDef struct {
	Type  string    `yaml:"type"`
	Slots []SlotDef `yaml:"slots"`
}

// SlotDef declares one field slot or marker position. Exactly one of Name and
// Marker must be set.
type SlotDef struct {
	Code     int    `yaml:"code"`
	Name     string `yaml:"name"`
	Marker   string `yaml:"marker"`
	Kind     string `yaml:"kind"`
	Repeated bool   `yaml:"repeated"`
	Since    string `yaml:"since"`
	Until    string `yaml:"until"`
	Default  any    `yaml:"default"`
}

// Load parses a YAML document into validated entity schemas.
func Load(data []byte) ([]*godxf.EntitySchema, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("schemadef: %w", err)
	}
	if len(f.Entities) == 0 {
		return nil, fmt.Errorf("schemadef: no entities declared")
	}
	out := make([]*godxf.EntitySchema, 0, len(f.Entities))
	for _, e := range f.Entities {
		sch, err := buildEntity(e)
		if err != nil {
			return nil, err
		}
		out = append(out, sch)
	}
	return out, nil
}

// RegisterAll loads schemas and registers each into the registry.
func RegisterAll(rg *godxf.Registry, data []byte) error {
	schemas, err := Load(data)
	if err != nil {
		return err
	}
	for _, sch := range schemas {
		if err := rg.Register(sch, nil); err != nil {
			return err
		}
	}
	return nil
}

func buildEntity(e EntityDef) (*godxf.EntitySchema, error) {
	if e.Type == "" {
		return nil, fmt.Errorf("schemadef: entity without type keyword")
	}
	slots := make([]godxf.FieldSlot, 0, len(e.Slots))
	for i, sd := range e.Slots {
		slot, err := buildSlot(e.Type, i, sd)
		if err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}
	return godxf.NewEntitySchema(e.Type, slots)
}

func buildSlot(typ string, i int, sd SlotDef) (godxf.FieldSlot, error) {
	var zero godxf.FieldSlot
	where := fmt.Sprintf("schemadef: %s slot %d", typ, i)

	if (sd.Name == "") == (sd.Marker == "") {
		return zero, fmt.Errorf("%s: exactly one of name and marker required", where)
	}

	slot := godxf.FieldSlot{
		Code:       sd.Code,
		Name:       sd.Name,
		Marker:     sd.Marker,
		Repeated:   sd.Repeated,
		MinVersion: godxf.R10,
		MaxVersion: godxf.VersionAny,
	}

	if sd.Marker != "" {
		slot.Code = godxf.CodeSubclassMarker
		slot.Kind = godxf.KindString
		slot.MinVersion = godxf.R13
	} else {
		kind, ok := parseKind(sd.Kind, sd.Code)
		if !ok {
			return zero, fmt.Errorf("%s: unknown kind %q", where, sd.Kind)
		}
		slot.Kind = kind
	}

	if sd.Since != "" {
		v, ok := parseVersionName(sd.Since)
		if !ok {
			return zero, fmt.Errorf("%s: unknown version %q", where, sd.Since)
		}
		slot.MinVersion = v
	}
	if sd.Until != "" {
		v, ok := parseVersionName(sd.Until)
		if !ok {
			return zero, fmt.Errorf("%s: unknown version %q", where, sd.Until)
		}
		slot.MaxVersion = v
	}

	if sd.Default != nil {
		dv, err := coerceDefault(slot.Kind, sd.Default)
		if err != nil {
			return zero, fmt.Errorf("%s: %w", where, err)
		}
		slot.Default = dv
	}
	return slot, nil
}

// parseKind resolves a kind name; an empty name falls back to the group-code
// convention table.
func parseKind(name string, code int) (godxf.ValueKind, bool) {
	switch name {
	case "":
		return godxf.KindForCode(code), true
	case "string":
		return godxf.KindString, true
	case "double":
		return godxf.KindDouble, true
	case "int16":
		return godxf.KindInt16, true
	case "int32":
		return godxf.KindInt32, true
	case "bool":
		return godxf.KindBool, true
	case "handle":
		return godxf.KindHandle, true
	}
	return 0, false
}

func parseVersionName(name string) (godxf.Version, bool) {
	for v := godxf.R10; v <= godxf.R2018; v++ {
		if v.String() == name {
			return v, true
		}
	}
	if tok, ok := godxf.ParseVersion(name); ok {
		return tok, true
	}
	return 0, false
}

// coerceDefault adapts YAML's scalar types to the kind's storage type.
func coerceDefault(kind godxf.ValueKind, v any) (any, error) {
	switch kind {
	case godxf.KindDouble:
		switch n := v.(type) {
		case float64:
			return n, nil
		case int:
			return float64(n), nil
		}
	case godxf.KindInt16:
		if n, ok := v.(int); ok {
			if n < -32768 || n > 32767 {
				return nil, fmt.Errorf("default %d out of int16 range", n)
			}
			return int16(n), nil
		}
	case godxf.KindInt32:
		if n, ok := v.(int); ok {
			return int32(n), nil
		}
	case godxf.KindBool:
		if b, ok := v.(bool); ok {
			return b, nil
		}
	case godxf.KindString, godxf.KindHandle:
		if s, ok := v.(string); ok {
			return s, nil
		}
	}
	return nil, fmt.Errorf("default %v does not match kind %s", v, kind)
}
