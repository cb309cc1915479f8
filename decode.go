package godxf

import (
	"context"
	"fmt"
	"io"
)

// Decode materializes one entity occurrence from the tag stream according to
// the schema, gated by the active format version.
//
// Tags are drained until a code-0 tag is observed; that tag belongs to the
// next logical unit and is pushed back onto the source. Unknown group codes,
// unparsable values, and subclass-marker mismatches degrade to warnings on
// the returned Decoded; only a stream I/O failure (or a caller error) returns
// a non-nil error, and then no record is produced.
func Decode(ctx context.Context, sch *EntitySchema, src TagSource, active Version, opts ...DecodeOpt) (Decoded, error) {
	if sch == nil {
		return Decoded{}, preconditionError("nil schema")
	}
	return DecodeInto(ctx, NewRecord(sch), src, active, opts...)
}

// DecodeInto decodes one entity occurrence into an existing record, typically
// one produced by a registry constructor. The record's schema drives slot
// matching.
func DecodeInto(ctx context.Context, rec *EntityRecord, src TagSource, active Version, opts ...DecodeOpt) (Decoded, error) {
	var zero Decoded
	if rec == nil || rec.Schema() == nil {
		return zero, preconditionError("nil record or record without schema")
	}
	if src == nil {
		return zero, preconditionError("nil tag source")
	}
	sch := rec.Schema()

	var opt DecodeOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	var pm PresenceMap
	if opt.Presence.Collect {
		pm = PresenceMap{}
	}
	var warnings Issues
	issuesCapped := false

	warn := func(iss Issue) bool {
		if opt.MaxIssues > 0 && len(warnings) >= opt.MaxIssues {
			if !issuesCapped {
				issuesCapped = true
				warnings[len(warnings)-1] = Issue{
					Line:      iss.Line,
					Code:      CodeTruncated,
					Message:   "diagnostic limit reached; further issues dropped",
					GroupCode: -1,
				}
			}
			return !opt.FailFast
		}
		warnings = AppendIssues(warnings, iss)
		return !opt.FailFast
	}

loop:
	for {
		if err := ctx.Err(); err != nil {
			return zero, err
		}
		t, err := src.NextTag()
		if err != nil {
			if err == io.EOF {
				// Entity span ended at end of input instead of a code-0
				// boundary. Tolerated with a diagnostic; the record decoded
				// so far stands.
				warn(Issue{Line: src.Line(), Code: CodeTruncated, GroupCode: -1,
					Message: "input ended before entity terminator"})
				break loop
			}
			return zero, err
		}

		switch {
		case t.Code == CodeEntityType:
			src.Unread(t)
			break loop

		case t.Code == CodeSubclassMarker:
			if !markerExpected(sch, t.Value, active) {
				ok := warn(IssueAt(t, CodeSubclassMismatch,
					fmt.Sprintf("unexpected subclass marker %q", t.Value),
					map[string]any{"got": t.Value, "expected": sch.markerNames(active)}))
				if !ok {
					return zero, warnings
				}
			}

		default:
			slot, found := headerSlotForCode(t.Code, active)
			if !found {
				slot, found = sch.slotForCode(t.Code, active)
			}
			if !found {
				if sch.hasGatedSlot(t.Code, active) || headerGated(t.Code, active) {
					if !warn(IssueAt(t, CodeVersionGated,
						fmt.Sprintf("group code %d not valid at %s; value ignored", t.Code, active),
						map[string]any{"version": active.String()})) {
						return zero, warnings
					}
					continue
				}
				if opt.OnUnknownTag == Ignore {
					continue
				}
				if !warn(IssueAt(t, CodeUnknownGroupCode,
					fmt.Sprintf("unknown group code %d; value discarded", t.Code), nil)) {
					return zero, warnings
				}
				continue
			}

			v, perr := ParseValue(slot.Kind, t.Value)
			if perr != nil {
				if !warn(Issue{Line: t.Line, GroupCode: t.Code, Code: CodeValueParse,
					Message: fmt.Sprintf("field %q left at default", slot.Name),
					Cause:   perr,
					Params:  map[string]any{"kind": slot.Kind.String()}}) {
					return zero, warnings
				}
				continue
			}
			if slot.Repeated {
				rec.appendSeq(slot.Name, v)
			} else {
				rec.set(slot.Name, v)
			}
			if pm != nil {
				pm[slot.Name] |= PresenceSeen
			}
		}
	}

	// Fields not encountered retain their schema default.
	applyDefaults(rec, sch, active, pm)

	return Decoded{
		Record:   rec,
		Presence: applyPresenceOptions(pm, opt.Presence),
		Warnings: warnings,
	}, nil
}

func markerExpected(sch *EntitySchema, name string, v Version) bool {
	for _, m := range sch.markerNames(v) {
		if m == name {
			return true
		}
	}
	return false
}

func headerGated(code int, v Version) bool {
	for _, s := range headerSlots {
		if s.Code == code && !s.AppliesTo(v) {
			return true
		}
	}
	return false
}

func applyDefaults(rec *EntityRecord, sch *EntitySchema, v Version, pm PresenceMap) {
	fill := func(s FieldSlot) {
		if s.Marker != "" || s.Repeated || !s.AppliesTo(v) || rec.isSet(s.Name) {
			return
		}
		rec.set(s.Name, s.DefaultValue())
		if pm != nil {
			pm[s.Name] |= PresenceDefaultApplied
		}
	}
	for _, s := range headerSlots {
		fill(s)
	}
	for _, s := range sch.Slots {
		fill(s)
	}
}
