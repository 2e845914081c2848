package scan

import "fmt"

// Gate thresholds. A field at or above HighConfidence auto-fills silently;
// between LowConfidence and HighConfidence it auto-fills with a warning
// asking the user to verify; below LowConfidence it is dropped silently.
// Collapsing the middle band either way is the failure mode this split
// exists to prevent: silently trusting a shaky value, or silently losing a
// usable one.
const (
	HighConfidence = 0.70
	LowConfidence  = 0.40
)

// Level classifies a field's confidence band.
type Level int

const (
	LevelNone Level = iota // no candidate at all
	LevelLow               // candidate below LowConfidence, rejected
	LevelMedium            // accepted with warning
	LevelHigh              // accepted silently
)

func (l Level) String() string {
	switch l {
	case LevelLow:
		return "low"
	case LevelMedium:
		return "medium"
	case LevelHigh:
		return "high"
	}
	return "none"
}

// Decision is the gate verdict for one field. Derived, never stored.
type Decision struct {
	Level  Level
	Accept bool
}

// Decide classifies an extracted field against the two thresholds. It is
// deterministic and monotonic: raising confidence never flips Accept from
// true to false.
func Decide(f Field) Decision {
	switch {
	case !f.Found():
		return Decision{Level: LevelNone}
	case f.Confidence >= HighConfidence:
		return Decision{Level: LevelHigh, Accept: true}
	case f.Confidence >= LowConfidence:
		return Decision{Level: LevelMedium, Accept: true}
	default:
		return Decision{Level: LevelLow}
	}
}

// verifyWarning builds the user-facing message for a medium-confidence field.
func verifyWarning(label, value string) string {
	return fmt.Sprintf("%s \"%s\" olarak okundu, lütfen kontrol edin", label, value)
}
