package godxf

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidType      = "invalid_type"
	CodeParseError       = "parse_error"
	CodeValueParse       = "value_parse"
	CodeUnknownGroupCode = "unknown_group_code"
	CodeSubclassMismatch = "subclass_mismatch"
	CodeVersionGated     = "version_gated"
	CodeOverflow         = "overflow"
	CodeTruncated        = "truncated"
	// Fatal conditions (returned as errors, never accumulated as warnings)
	CodeStreamFailure = "stream_failure"
	CodePrecondition  = "precondition"
)

// ErrStreamFailure marks terminal I/O errors on the underlying tag stream.
// After one is observed the stream must be considered unusable.
var ErrStreamFailure = errors.New("godxf: stream failure")

// ErrRecordLinked is returned when a record still linked into a List is
// released. Records must be unlinked before destruction.
var ErrRecordLinked = errors.New("godxf: record still linked")

// Issue represents a single diagnostic entry.
type Issue struct {
	Line    int    // 1-based input line the offending tag started on; 0 when unknown.
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: remediation hints, expected markers, etc.
	Cause   error  // Optional: underlying error.
	// GroupCode records the tag's group code when the issue concerns one
	// (-1 otherwise).
	GroupCode int
	// Params carries structured parameters (e.g., {"expected":"AcDbCircle"})
	// for i18n and observability.
	Params map[string]any
}

// Issues is a collection of diagnostics that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. unknown_group_code at line 12
		fmt.Fprintf(b, "%s at line %d", it.Code, it.Line)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// streamError wraps a terminal I/O failure so callers can test with
// errors.Is(err, ErrStreamFailure) while keeping the cause reachable.
func streamError(line int, cause error) error {
	return fmt.Errorf("%w at line %d: %w", ErrStreamFailure, line, cause)
}

// preconditionError reports a caller error (nil schema, nil record, ...).
func preconditionError(msg string) error {
	return fmt.Errorf("godxf: %s: %s", CodePrecondition, msg)
}
