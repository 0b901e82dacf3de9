package assert

import (
	"errors"
	"fmt"
)

// Level represents the severity of an assertion site.
//
// Levels are totally ordered by ordinal: LevelWarning < LevelError <
// LevelNoAssertions. The ordering is the sole basis for activeness
// decisions: a site is active when its level is at or above the configured
// threshold.
//
// LevelNoAssertions is a threshold sentinel meaning "assertions disabled".
// It is never a valid level for an assertion site; the evaluator only
// exposes Warning and Error entry points so that misuse is rejected at
// compile time.
type Level uint8

// Level constants define assertion severity, least to most severe.
//
//	LevelWarning      (0) -- failure is reported, execution continues
//	LevelError        (1) -- failure produces a propagatable error
//	LevelNoAssertions (2) -- threshold sentinel, disables all sites
const (
	LevelWarning Level = iota
	LevelError
	LevelNoAssertions
)

// ErrInvalidLevel is the sentinel error for unrecognized level names.
// It surfaces misconfiguration at startup; it is never silently defaulted.
var ErrInvalidLevel = errors.New("not a valid assertion level")

// String returns the canonical name of a level. The returned name
// round-trips through ParseLevel.
func (level Level) String() string {
	switch level {
	case LevelWarning:
		return "Warning"
	case LevelError:
		return "Error"
	case LevelNoAssertions:
		return "NoAssertions"
	default:
		return "unknown"
	}
}

// ParseLevel maps a configured level name to its Level value.
//
// Names are case-exact: "Warning", "Error", and "NoAssertions" are the only
// recognized values. An empty name means the setting is absent and yields
// LevelNoAssertions, the safety-favoring default (assertions compiled out).
// Any other name is a configuration error wrapping ErrInvalidLevel.
func ParseLevel(name string) (Level, error) {
	switch name {
	case "":
		return LevelNoAssertions, nil
	case "Warning":
		return LevelWarning, nil
	case "Error":
		return LevelError, nil
	case "NoAssertions":
		return LevelNoAssertions, nil
	}

	return LevelNoAssertions, fmt.Errorf("%w: %q", ErrInvalidLevel, name)
}

// Compare orders two levels by ordinal severity. It returns -1 if a is less
// severe than b, 0 if equal, and +1 if more severe.
func Compare(a, b Level) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// IsActive reports whether an assertion site with the given level is active
// under the given threshold: site >= threshold under the total order.
//
// LevelNoAssertions is not a valid site level and is never active.
func IsActive(site, threshold Level) bool {
	if site == LevelNoAssertions {
		return false
	}

	return site >= threshold
}
