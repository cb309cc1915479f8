package dsl

import (
	godxf "github.com/reoring/godxf"
)

type entityBuilder struct {
	typ   string
	slots []godxf.FieldSlot
}

type slotStep struct {
	b *entityBuilder
	i int // index of the slot under construction
}

// Entity starts a schema for the given type keyword.
func Entity(typ string) *entityBuilder {
	return &entityBuilder{typ: typ}
}

// Marker appends a subclass-marker position valid from R13 on. Emission order
// follows call order, so markers interleave with data slots exactly as
// declared.
func (b *entityBuilder) Marker(name string) *entityBuilder {
	b.slots = append(b.slots, godxf.FieldSlot{
		Code:       godxf.CodeSubclassMarker,
		Marker:     name,
		Kind:       godxf.KindString,
		MinVersion: godxf.R13,
		MaxVersion: godxf.VersionAny,
	})
	return b
}

// MarkerSince appends a subclass-marker position valid from the given
// revision on; used for markers introduced in stages across revisions.
func (b *entityBuilder) MarkerSince(name string, min godxf.Version) *entityBuilder {
	b.slots = append(b.slots, godxf.FieldSlot{
		Code:       godxf.CodeSubclassMarker,
		Marker:     name,
		Kind:       godxf.KindString,
		MinVersion: min,
		MaxVersion: godxf.VersionAny,
	})
	return b
}

// Slot appends a data slot valid in all revisions. The returned step refines
// the slot just added; any builder-level call moves on to the next slot.
func (b *entityBuilder) Slot(code int, name string, kind godxf.ValueKind) *slotStep {
	b.slots = append(b.slots, godxf.FieldSlot{
		Code:       code,
		Name:       name,
		Kind:       kind,
		MinVersion: godxf.R10,
		MaxVersion: godxf.VersionAny,
	})
	return &slotStep{b: b, i: len(b.slots) - 1}
}

// Default sets the slot's default value (typed per its kind).
func (s *slotStep) Default(v any) *slotStep {
	s.b.slots[s.i].Default = v
	return s
}

// Repeated marks the slot as an unbounded, arrival-ordered sequence.
func (s *slotStep) Repeated() *slotStep {
	s.b.slots[s.i].Repeated = true
	return s
}

// Since restricts the slot to the given revision and later.
func (s *slotStep) Since(min godxf.Version) *slotStep {
	s.b.slots[s.i].MinVersion = min
	return s
}

// Until restricts the slot to revisions up to and including max.
func (s *slotStep) Until(max godxf.Version) *slotStep {
	s.b.slots[s.i].MaxVersion = max
	return s
}

// Delegate builder-level methods so chains read naturally after a slot step.
func (s *slotStep) Slot(code int, name string, kind godxf.ValueKind) *slotStep {
	return s.b.Slot(code, name, kind)
}
func (s *slotStep) Marker(name string) *entityBuilder { return s.b.Marker(name) }
func (s *slotStep) MarkerSince(name string, min godxf.Version) *entityBuilder {
	return s.b.MarkerSince(name, min)
}
func (s *slotStep) Build() (*godxf.EntitySchema, error) { return s.b.Build() }
func (s *slotStep) MustBuild() *godxf.EntitySchema      { return s.b.MustBuild() }

// Build validates the accumulated table into an EntitySchema.
func (b *entityBuilder) Build() (*godxf.EntitySchema, error) {
	return godxf.NewEntitySchema(b.typ, b.slots)
}

// MustBuild is Build panicking on error; intended for static tables.
func (b *entityBuilder) MustBuild() *godxf.EntitySchema {
	return godxf.MustEntitySchema(b.typ, b.slots)
}
