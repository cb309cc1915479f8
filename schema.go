package godxf

import (
	"fmt"
)

// FieldSlot declares how one group code maps onto a record field within a
// single entity schema. Multiple slots may share a group code across schemas;
// uniqueness is scoped to the schema, not global.
//
// A slot with Marker set is a subclass-marker position (code 100): it carries
// no field, it pins where the marker string is emitted relative to the data
// slots around it.
type FieldSlot struct {
	Code     int
	Name     string
	Kind     ValueKind
	Repeated bool
	Marker   string

	// [MinVersion, MaxVersion] is the revision range in which the slot is
	// valid. MaxVersion is usually VersionAny ("still valid in all later
	// versions").
	MinVersion Version
	MaxVersion Version

	// Default is the substituted value when the tag is absent, typed per
	// Kind. nil means the kind's zero value.
	Default any
}

// AppliesTo reports whether the slot is valid at the given format version.
func (s FieldSlot) AppliesTo(v Version) bool {
	return v >= s.MinVersion && v <= s.MaxVersion
}

// DefaultValue returns the declared default, or the kind's zero value.
func (s FieldSlot) DefaultValue() any {
	if s.Default != nil {
		return s.Default
	}
	switch s.Kind {
	case KindDouble:
		return float64(0)
	case KindInt16:
		return int16(0)
	case KindInt32:
		return int32(0)
	case KindBool:
		return false
	default:
		return ""
	}
}

// EntitySchema is the declarative field table for one entity type. Slots is
// the canonical emission order used by the Encoder; it is not necessarily
// ascending code order because subclass markers interleave with data fields
// by convention.
type EntitySchema struct {
	Type  string
	Slots []FieldSlot

	byName map[string]int
}

// NewEntitySchema validates the slot table and builds the lookup indexes.
func NewEntitySchema(typ string, slots []FieldSlot) (*EntitySchema, error) {
	if typ == "" {
		return nil, fmt.Errorf("godxf: entity type keyword required")
	}
	sch := &EntitySchema{Type: typ, Slots: slots, byName: make(map[string]int, len(slots))}
	for i, s := range slots {
		if s.Marker != "" {
			if s.Code != CodeSubclassMarker {
				return nil, fmt.Errorf("godxf: %s: marker %q must use code 100, got %d", typ, s.Marker, s.Code)
			}
			continue
		}
		if s.Name == "" {
			return nil, fmt.Errorf("godxf: %s: slot for code %d has no field name", typ, s.Code)
		}
		if _, dup := sch.byName[s.Name]; dup {
			return nil, fmt.Errorf("godxf: %s: duplicate field name %q", typ, s.Name)
		}
		if isHeaderField(s.Name) {
			return nil, fmt.Errorf("godxf: %s: field name %q collides with a common header field", typ, s.Name)
		}
		if s.Default != nil {
			if _, err := FormatValue(s.Kind, s.Default); err != nil {
				return nil, fmt.Errorf("godxf: %s: default for %q: %w", typ, s.Name, err)
			}
		}
		if s.MaxVersion < s.MinVersion {
			return nil, fmt.Errorf("godxf: %s: %q has empty version range", typ, s.Name)
		}
		sch.byName[s.Name] = i
	}
	return sch, nil
}

// MustEntitySchema is NewEntitySchema panicking on error; intended for static
// schema tables initialized at package init time.
func MustEntitySchema(typ string, slots []FieldSlot) *EntitySchema {
	sch, err := NewEntitySchema(typ, slots)
	if err != nil {
		panic(err)
	}
	return sch
}

// SlotByName returns the data slot for a field name.
func (sch *EntitySchema) SlotByName(name string) (FieldSlot, bool) {
	i, ok := sch.byName[name]
	if !ok {
		return FieldSlot{}, false
	}
	return sch.Slots[i], true
}

// slotForCode returns the first data slot matching the group code that is
// valid at the given version.
func (sch *EntitySchema) slotForCode(code int, v Version) (FieldSlot, bool) {
	for _, s := range sch.Slots {
		if s.Marker == "" && s.Code == code && s.AppliesTo(v) {
			return s, true
		}
	}
	return FieldSlot{}, false
}

// hasGatedSlot reports whether some data slot declares the code but is out of
// range at the given version. Used to distinguish version-gated tags from
// plainly unknown ones.
func (sch *EntitySchema) hasGatedSlot(code int, v Version) bool {
	for _, s := range sch.Slots {
		if s.Marker == "" && s.Code == code && !s.AppliesTo(v) {
			return true
		}
	}
	return false
}

// markerNames lists the subclass markers valid at the given version,
// including the shared "AcDbEntity" marker.
func (sch *EntitySchema) markerNames(v Version) []string {
	names := []string{markerEntity}
	for _, s := range sch.Slots {
		if s.Marker != "" && s.AppliesTo(v) {
			names = append(names, s.Marker)
		}
	}
	return names
}

// markerEntity is the common base marker every entity carries from R13 on.
const markerEntity = "AcDbEntity"

// Common header field names. Every entity shares this bookkeeping; the
// decoder matches these codes before consulting the entity schema, and the
// encoder emits them in the fixed order below.
const (
	FieldHandle        = "handle"
	FieldOwnerHandle   = "owner_handle"
	FieldPaperSpace    = "paper_space"
	FieldLayer         = "layer"
	FieldLinetype      = "linetype"
	FieldColorNumber   = "color_number"
	FieldLinetypeScale = "linetype_scale"
	FieldInvisible     = "invisible"
)

// headerSlots is the shared bookkeeping table, in canonical emission order.
var headerSlots = []FieldSlot{
	{Code: 5, Name: FieldHandle, Kind: KindHandle, MinVersion: R10, MaxVersion: VersionAny},
	{Code: 330, Name: FieldOwnerHandle, Kind: KindHandle, MinVersion: R13, MaxVersion: VersionAny},
	{Code: 67, Name: FieldPaperSpace, Kind: KindInt16, MinVersion: R11, MaxVersion: VersionAny, Default: int16(0)},
	{Code: 8, Name: FieldLayer, Kind: KindString, MinVersion: R10, MaxVersion: VersionAny, Default: "0"},
	{Code: 6, Name: FieldLinetype, Kind: KindString, MinVersion: R10, MaxVersion: VersionAny, Default: "BYLAYER"},
	{Code: 62, Name: FieldColorNumber, Kind: KindInt16, MinVersion: R10, MaxVersion: VersionAny, Default: int16(256)},
	{Code: 48, Name: FieldLinetypeScale, Kind: KindDouble, MinVersion: R13, MaxVersion: VersionAny, Default: 1.0},
	{Code: 60, Name: FieldInvisible, Kind: KindInt16, MinVersion: R10, MaxVersion: VersionAny, Default: int16(0)},
}

func headerSlotForCode(code int, v Version) (FieldSlot, bool) {
	for _, s := range headerSlots {
		if s.Code == code && s.AppliesTo(v) {
			return s, true
		}
	}
	return FieldSlot{}, false
}

func headerSlotByName(name string) (FieldSlot, bool) {
	for _, s := range headerSlots {
		if s.Name == name {
			return s, true
		}
	}
	return FieldSlot{}, false
}

func isHeaderField(name string) bool {
	_, ok := headerSlotByName(name)
	return ok
}
