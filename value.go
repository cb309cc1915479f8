package godxf

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseValue interprets a raw tag value per the declared kind. Numeric kinds
// tolerate surrounding whitespace; writers in the wild pad value lines.
//
// Returned dynamic types are fixed per kind: string, float64, int16, int32,
// bool, and string (normalized upper-case hex) for KindHandle.
func ParseValue(kind ValueKind, raw string) (any, error) {
	switch kind {
	case KindString:
		return raw, nil
	case KindDouble:
		f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid double %q: %w", raw, err)
		}
		return f, nil
	case KindInt16:
		n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 16)
		if err != nil {
			return nil, fmt.Errorf("invalid int16 %q: %w", raw, err)
		}
		return int16(n), nil
	case KindInt32:
		n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid int32 %q: %w", raw, err)
		}
		return int32(n), nil
	case KindBool:
		switch strings.TrimSpace(raw) {
		case "0":
			return false, nil
		case "1":
			return true, nil
		}
		return nil, fmt.Errorf("invalid bool %q", raw)
	case KindHandle:
		s := strings.TrimSpace(raw)
		if s == "" {
			return "", nil
		}
		if _, err := strconv.ParseUint(s, 16, 64); err != nil {
			return nil, fmt.Errorf("invalid handle %q: %w", raw, err)
		}
		return strings.ToUpper(s), nil
	}
	return nil, fmt.Errorf("unknown value kind %d", kind)
}

// FormatValue renders a typed value back to its raw wire form.
func FormatValue(kind ValueKind, v any) (string, error) {
	switch kind {
	case KindString:
		s, ok := v.(string)
		if !ok {
			return "", fmt.Errorf("string value expected, got %T", v)
		}
		return s, nil
	case KindDouble:
		f, ok := v.(float64)
		if !ok {
			return "", fmt.Errorf("double value expected, got %T", v)
		}
		return strconv.FormatFloat(f, 'f', -1, 64), nil
	case KindInt16:
		n, ok := v.(int16)
		if !ok {
			return "", fmt.Errorf("int16 value expected, got %T", v)
		}
		return strconv.FormatInt(int64(n), 10), nil
	case KindInt32:
		n, ok := v.(int32)
		if !ok {
			return "", fmt.Errorf("int32 value expected, got %T", v)
		}
		return strconv.FormatInt(int64(n), 10), nil
	case KindBool:
		b, ok := v.(bool)
		if !ok {
			return "", fmt.Errorf("bool value expected, got %T", v)
		}
		if b {
			return "1", nil
		}
		return "0", nil
	case KindHandle:
		s, ok := v.(string)
		if !ok {
			return "", fmt.Errorf("handle value expected, got %T", v)
		}
		return strings.ToUpper(s), nil
	}
	return "", fmt.Errorf("unknown value kind %d", kind)
}

// valueEqual compares two typed values of one kind. Used for default elision;
// exact float comparison is intentional because defaults round-trip through
// the same parser.
func valueEqual(kind ValueKind, a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch kind {
	case KindHandle:
		as, aok := a.(string)
		bs, bok := b.(string)
		return aok && bok && strings.EqualFold(as, bs)
	default:
		return a == b
	}
}
