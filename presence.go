package godxf

import "strings"

// Presence is the bit flag collected during Decode when requested.
type Presence uint8

const (
	PresenceSeen           Presence = 1 << iota // Field appeared on the wire.
	PresenceDefaultApplied                      // Default value was substituted.
)

// PresenceMap maps field names to Presence flags.
type PresenceMap map[string]Presence

// Decoded carries a decoded record together with presence metadata and the
// non-fatal diagnostics accumulated while reading it.
type Decoded struct {
	Record   *EntityRecord
	Presence PresenceMap
	Warnings Issues
}

func applyPresenceOptions(pm PresenceMap, popt PresenceOpt) PresenceMap {
	if pm == nil || !popt.Collect {
		return nil
	}
	if len(popt.Include) == 0 && len(popt.Exclude) == 0 {
		return pm
	}

	shouldInclude := func(name string) bool {
		if len(popt.Include) > 0 {
			ok := false
			for _, p := range popt.Include {
				if strings.HasPrefix(name, p) {
					ok = true
					break
				}
			}
			if !ok {
				return false
			}
		}
		for _, p := range popt.Exclude {
			if strings.HasPrefix(name, p) {
				return false
			}
		}
		return true
	}

	filtered := make(PresenceMap, len(pm))
	for k, v := range pm {
		if shouldInclude(k) {
			filtered[k] = v
		}
	}
	return filtered
}
