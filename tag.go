package godxf

// Tag is one (group code, raw value) pair from the wire, annotated with the
// input line its code appeared on.
type Tag struct {
	Code  int
	Value string
	Line  int
}

// Reserved group codes.
const (
	// CodeEntityType terminates an entity span; its value names the next
	// entity or a section marker and belongs to the next logical unit.
	CodeEntityType = 0
	// CodeSubclassMarker carries advisory class-hierarchy strings
	// ("AcDbEntity", "AcDbCircle", ...). Introduced in R13.
	CodeSubclassMarker = 100
	// CodeComment tags are never part of entity data.
	CodeComment = 999
)

// KindForCode maps a group code to its conventional value kind. The numeric
// range fixes the kind; schemas may narrow it (e.g. code 5 as KindHandle) but
// never contradict it. Unknown ranges fall back to KindString, the safe
// interpretation for pass-through of vendor data.
func KindForCode(c int) ValueKind {
	switch {
	case c >= 0 && c <= 9:
		return KindString
	case c >= 10 && c <= 59:
		return KindDouble
	case c >= 60 && c <= 79:
		return KindInt16
	case c >= 90 && c <= 99:
		return KindInt32
	case c == 100 || c == 102:
		return KindString
	case c == 105:
		return KindHandle
	case c >= 110 && c <= 149:
		return KindDouble
	case c >= 160 && c <= 169:
		return KindInt32
	case c >= 170 && c <= 179:
		return KindInt16
	case c >= 210 && c <= 239:
		return KindDouble
	case c >= 270 && c <= 289:
		return KindInt16
	case c >= 290 && c <= 299:
		return KindBool
	case c >= 300 && c <= 329:
		return KindString
	case c >= 330 && c <= 369:
		return KindHandle
	case c >= 370 && c <= 389:
		return KindInt16
	case c >= 390 && c <= 399:
		return KindHandle
	case c >= 400 && c <= 409:
		return KindInt16
	case c >= 410 && c <= 419:
		return KindString
	case c >= 420 && c <= 429:
		return KindInt32
	case c >= 430 && c <= 439:
		return KindString
	case c >= 440 && c <= 449:
		return KindInt32
	default:
		return KindString
	}
}
