package godxf

import (
	"fmt"
	"sort"
)

// EntityRecord is one decoded drawing object: a field-name→value map
// populated per its schema, plus the common bookkeeping every entity carries.
// Records are mutated only during decode or through the setters here.
//
// A record may be linked into at most one List at a time through its next
// pointer; the List owns destruction order. Release refuses to run while the
// record is still linked.
type EntityRecord struct {
	schema *EntitySchema

	fields map[string]any
	seqs   map[string][]any

	next *EntityRecord
	list *List
}

// NewRecord returns an empty record for the schema. Fields read back their
// schema defaults until explicitly set.
func NewRecord(sch *EntitySchema) *EntityRecord {
	return &EntityRecord{
		schema: sch,
		fields: map[string]any{},
		seqs:   map[string][]any{},
	}
}

// Type returns the entity-type keyword ("" when the record has no schema).
func (r *EntityRecord) Type() string {
	if r.schema == nil {
		return ""
	}
	return r.schema.Type
}

// Schema returns the schema the record was built against.
func (r *EntityRecord) Schema() *EntitySchema { return r.schema }

// slotFor resolves a field name against the common header table first, then
// the entity schema.
func (r *EntityRecord) slotFor(name string) (FieldSlot, bool) {
	if s, ok := headerSlotByName(name); ok {
		return s, true
	}
	if r.schema == nil {
		return FieldSlot{}, false
	}
	return r.schema.SlotByName(name)
}

// Get returns the field value, falling back to the schema default when the
// field was never set. The second result is false for names the schema does
// not declare.
func (r *EntityRecord) Get(name string) (any, bool) {
	s, ok := r.slotFor(name)
	if !ok {
		return nil, false
	}
	if s.Repeated {
		return r.seqs[name], true
	}
	if v, ok := r.fields[name]; ok {
		return v, true
	}
	return s.DefaultValue(), true
}

// Set assigns a scalar field. The value's dynamic type must match the slot's
// kind.
func (r *EntityRecord) Set(name string, v any) error {
	s, ok := r.slotFor(name)
	if !ok {
		return fmt.Errorf("godxf: %s: no field %q", r.Type(), name)
	}
	if s.Repeated {
		return fmt.Errorf("godxf: %s: field %q is repeated; use Append", r.Type(), name)
	}
	if _, err := FormatValue(s.Kind, v); err != nil {
		return fmt.Errorf("godxf: %s: field %q: %w", r.Type(), name, err)
	}
	r.fields[name] = v
	return nil
}

// Append adds one element to a repeated field, preserving arrival order.
func (r *EntityRecord) Append(name string, v any) error {
	s, ok := r.slotFor(name)
	if !ok {
		return fmt.Errorf("godxf: %s: no field %q", r.Type(), name)
	}
	if !s.Repeated {
		return fmt.Errorf("godxf: %s: field %q is not repeated", r.Type(), name)
	}
	if _, err := FormatValue(s.Kind, v); err != nil {
		return fmt.Errorf("godxf: %s: field %q: %w", r.Type(), name, err)
	}
	r.seqs[name] = append(r.seqs[name], v)
	return nil
}

// Seq returns a repeated field's elements in arrival order (nil when empty).
func (r *EntityRecord) Seq(name string) []any { return r.seqs[name] }

// Has reports whether the field holds an explicitly assigned value (set
// during decode, defaulted by it, or assigned through a setter), as opposed
// to Get's schema-default fallback.
func (r *EntityRecord) Has(name string) bool {
	if _, ok := r.fields[name]; ok {
		return true
	}
	return len(r.seqs[name]) > 0
}

// set/appendSeq bypass kind re-validation; decode already parsed per kind.
func (r *EntityRecord) set(name string, v any) { r.fields[name] = v }

func (r *EntityRecord) appendSeq(name string, v any) { r.seqs[name] = append(r.seqs[name], v) }

func (r *EntityRecord) isSet(name string) bool {
	_, ok := r.fields[name]
	return ok
}

// ---- common bookkeeping accessors ----

func (r *EntityRecord) getString(name string) string {
	v, _ := r.Get(name)
	s, _ := v.(string)
	return s
}

// Handle returns the record's identity handle ("" when unassigned).
func (r *EntityRecord) Handle() string { return r.getString(FieldHandle) }

// OwnerHandle returns the soft-owner handle ("" when unassigned).
func (r *EntityRecord) OwnerHandle() string { return r.getString(FieldOwnerHandle) }

// Layer returns the owning layer name.
func (r *EntityRecord) Layer() string { return r.getString(FieldLayer) }

// Linetype returns the linetype name ("BYLAYER" by default).
func (r *EntityRecord) Linetype() string { return r.getString(FieldLinetype) }

// ColorNumber returns the ACI color number (256 = BYLAYER).
func (r *EntityRecord) ColorNumber() int16 {
	v, _ := r.Get(FieldColorNumber)
	n, _ := v.(int16)
	return n
}

// LinetypeScale returns the per-entity linetype scale factor.
func (r *EntityRecord) LinetypeScale() float64 {
	v, _ := r.Get(FieldLinetypeScale)
	f, _ := v.(float64)
	return f
}

// PaperSpace reports whether the entity lives in paper space.
func (r *EntityRecord) PaperSpace() bool {
	v, _ := r.Get(FieldPaperSpace)
	n, _ := v.(int16)
	return n != 0
}

// Fields snapshots all set scalar fields plus non-empty repeated fields,
// keyed by field name. Intended for diagnostics and JSON projection; mutating
// the result does not affect the record.
func (r *EntityRecord) Fields() map[string]any {
	out := make(map[string]any, len(r.fields)+len(r.seqs))
	for k, v := range r.fields {
		out[k] = v
	}
	for k, vs := range r.seqs {
		if len(vs) == 0 {
			continue
		}
		cp := make([]any, len(vs))
		copy(cp, vs)
		out[k] = cp
	}
	return out
}

// FieldNames returns the names present in Fields, sorted for stable output.
func (r *EntityRecord) FieldNames() []string {
	names := make([]string, 0, len(r.fields)+len(r.seqs))
	for k := range r.fields {
		names = append(names, k)
	}
	for k, vs := range r.seqs {
		if len(vs) > 0 {
			names = append(names, k)
		}
	}
	sort.Strings(names)
	return names
}

// Next returns the successor in the owning List (nil at the tail or when
// unlinked).
func (r *EntityRecord) Next() *EntityRecord { return r.next }

// Release drops the record's field storage. It returns ErrRecordLinked while
// the record is still reachable from a List; remove it first. This mirrors
// the unlink-before-destroy discipline: no record is destroyed while another
// component might still traverse through it.
func (r *EntityRecord) Release() error {
	if r.next != nil || r.list != nil {
		return ErrRecordLinked
	}
	r.fields = nil
	r.seqs = nil
	return nil
}
