package godxf

// Version enumerates the DXF format revisions recognized for gating purposes,
// ordered oldest to newest. FieldSlot validity ranges are expressed against
// this enumeration.
type Version int

const (
	R10 Version = iota
	R11
	R12
	R13
	R14
	R2000
	R2004
	R2007
	R2010
	R2013
	R2018

	// VersionAny is the open-ended upper bound: "still valid in all later
	// versions".
	VersionAny Version = 1 << 30
)

// versionTokens maps each revision to its $ACADVER token.
var versionTokens = map[Version]string{
	R10:   "AC1006",
	R11:   "AC1009",
	R12:   "AC1009",
	R13:   "AC1012",
	R14:   "AC1014",
	R2000: "AC1015",
	R2004: "AC1018",
	R2007: "AC1021",
	R2010: "AC1024",
	R2013: "AC1027",
	R2018: "AC1032",
}

var versionNames = map[Version]string{
	R10:        "R10",
	R11:        "R11",
	R12:        "R12",
	R13:        "R13",
	R14:        "R14",
	R2000:      "R2000",
	R2004:      "R2004",
	R2007:      "R2007",
	R2010:      "R2010",
	R2013:      "R2013",
	R2018:      "R2018",
	VersionAny: "any",
}

// Token returns the $ACADVER token for the version ("" for VersionAny).
func (v Version) Token() string { return versionTokens[v] }

func (v Version) String() string {
	if s, ok := versionNames[v]; ok {
		return s
	}
	return "unknown"
}

// ParseVersion resolves an $ACADVER token to a Version. R11 and R12 share the
// AC1009 token; AC1009 resolves to R12.
func ParseVersion(token string) (Version, bool) {
	switch token {
	case "AC1006":
		return R10, true
	case "AC1009":
		return R12, true
	case "AC1012":
		return R13, true
	case "AC1014":
		return R14, true
	case "AC1015":
		return R2000, true
	case "AC1018":
		return R2004, true
	case "AC1021":
		return R2007, true
	case "AC1024":
		return R2010, true
	case "AC1027":
		return R2013, true
	case "AC1032":
		return R2018, true
	}
	return 0, false
}

// ValueKind declares how a raw tag value is interpreted.
type ValueKind int

const (
	KindString ValueKind = iota
	KindDouble
	KindInt16
	KindInt32
	KindBool   // 290-299 range; "0"/"1" on the wire
	KindHandle // hex string identity/reference
)

func (k ValueKind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindDouble:
		return "double"
	case KindInt16:
		return "int16"
	case KindInt32:
		return "int32"
	case KindBool:
		return "bool"
	case KindHandle:
		return "handle"
	}
	return "unknown"
}

// Severity expresses the severity level for issues.
type Severity int

const (
	Ignore Severity = iota
	Warn
	Error
)

// PresenceOpt configures presence collection for Decode.
type PresenceOpt struct {
	Collect bool
	Include []string
	Exclude []string
}

// DecodeOpt bundles decoding options.
type DecodeOpt struct {
	// FailFast stops at the first warning-level issue instead of accumulating.
	FailFast bool
	// MaxIssues caps accumulated warnings; zero means unlimited.
	MaxIssues int
	// Presence controls collection of per-field presence metadata.
	Presence PresenceOpt
	// OnUnknownTag adjusts how unrecognized group codes are reported.
	// Ignore drops them silently; Warn (default) records an issue. Error is
	// treated as Warn: unknown vendor data must not abort decoding.
	OnUnknownTag Severity
}

// EncodeOpt bundles encoding options.
type EncodeOpt struct {
	// KeepDefaults emits fields even when equal to their schema default,
	// disabling default elision.
	KeepDefaults bool
}
