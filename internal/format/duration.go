package format

import (
	"fmt"
	"time"
)

// FormatExecutionDuration formats a time.Duration for display.
// It shows microseconds for durations less than a millisecond, milliseconds for
// durations less than a second, and the default string representation otherwise.
// This approach provides a more human-readable output for short durations.
//
// Parameters:
//   - d: The duration to format.
//
// Returns:
//   - string: A formatted string representing the duration.
func FormatExecutionDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}

// Phase timing sentinels. A phase that did not run reports PhaseNotRun;
// a phase served from the parsed-operand cache reports PhaseCached.
const (
	PhaseNotRun = -1
	PhaseCached = -2
)

// FormatPhaseMillis renders a phase timing in milliseconds, mapping the
// sentinel values to their display labels.
func FormatPhaseMillis(ms int64) string {
	switch ms {
	case PhaseNotRun:
		return "n/a"
	case PhaseCached:
		return "cached"
	default:
		return fmt.Sprintf("%d ms", ms)
	}
}
