package godxf

import (
	"context"
)

// Encode serializes one record to canonical tag order for the target format
// version: the entity-type keyword, common identity/ownership fields, the
// AcDbEntity marker (R13 and later), common drawing properties, then the
// entity-specific slots in schema-declared order. Fields equal to their
// schema default are elided unless EncodeOpt.KeepDefaults is set; slots whose
// version range excludes the target never appear.
//
// Only a broken sink is fatal. Precondition violations (nil record, schema or
// sink) are caller errors.
func Encode(ctx context.Context, rec *EntityRecord, sch *EntitySchema, sink TagSink, target Version, opts ...EncodeOpt) error {
	if rec == nil {
		return preconditionError("nil record")
	}
	if sch == nil {
		return preconditionError("nil schema")
	}
	if sink == nil {
		return preconditionError("nil tag sink")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	var opt EncodeOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}

	e := encoder{rec: rec, sink: sink, target: target, keepDefaults: opt.KeepDefaults}

	if err := e.tag(CodeEntityType, sch.Type); err != nil {
		return err
	}
	if err := e.commonHeader(); err != nil {
		return err
	}
	for _, s := range sch.Slots {
		if !s.AppliesTo(target) {
			continue
		}
		if s.Marker != "" {
			if err := e.tag(CodeSubclassMarker, s.Marker); err != nil {
				return err
			}
			continue
		}
		if err := e.slot(s); err != nil {
			return err
		}
	}
	return nil
}

type encoder struct {
	rec          *EntityRecord
	sink         TagSink
	target       Version
	keepDefaults bool
}

func (e *encoder) tag(code int, value string) error {
	return e.sink.WriteTag(code, value)
}

// commonHeader emits the shared bookkeeping in fixed order: identity and
// ownership handles (only when assigned), the AcDbEntity marker from R13 on,
// then the drawing properties. The layer always emits; the other properties
// elide their defaults like any other slot.
func (e *encoder) commonHeader() error {
	markerDone := false
	for _, s := range headerSlots {
		if !s.AppliesTo(e.target) {
			continue
		}
		switch s.Name {
		case FieldHandle, FieldOwnerHandle:
			v, _ := e.rec.Get(s.Name)
			h, _ := v.(string)
			if h == "" {
				continue
			}
			if err := e.emitValue(s, h); err != nil {
				return err
			}
			continue
		}
		if !markerDone {
			markerDone = true
			if e.target >= R13 {
				if err := e.tag(CodeSubclassMarker, markerEntity); err != nil {
					return err
				}
			}
		}
		if s.Name == FieldLayer {
			v, _ := e.rec.Get(s.Name)
			raw, err := FormatValue(s.Kind, v)
			if err != nil {
				return preconditionError("layer: " + err.Error())
			}
			if err := e.tag(s.Code, raw); err != nil {
				return err
			}
			continue
		}
		if err := e.slot(s); err != nil {
			return err
		}
	}
	return nil
}

func (e *encoder) slot(s FieldSlot) error {
	if s.Repeated {
		for _, v := range e.rec.Seq(s.Name) {
			if err := e.emitValue(s, v); err != nil {
				return err
			}
		}
		return nil
	}
	v, _ := e.rec.Get(s.Name)
	if v == nil {
		return nil
	}
	if !e.keepDefaults && valueEqual(s.Kind, v, s.DefaultValue()) {
		return nil
	}
	return e.emitValue(s, v)
}

func (e *encoder) emitValue(s FieldSlot, v any) error {
	raw, err := FormatValue(s.Kind, v)
	if err != nil {
		return preconditionError("field " + s.Name + ": " + err.Error())
	}
	return e.tag(s.Code, raw)
}
