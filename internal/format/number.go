package format

import (
	"fmt"
	"strings"
)

// Display limits for large decimal results. Numbers longer than
// TruncationLimit digits are shown as leading and trailing edges with an
// elision marker in between.
const (
	TruncationLimit = 100
	DisplayEdges    = 25
)

// WrapWidth is the column at which WrapNumber breaks digit runs.
const WrapWidth = 80

// FormatNumberString inserts thousand separators into a decimal string.
// A leading sign is preserved. The input is assumed to be a valid decimal
// representation.
func FormatNumberString(s string) string {
	if s == "" {
		return ""
	}
	sign := ""
	if s[0] == '-' || s[0] == '+' {
		sign, s = s[:1], s[1:]
	}
	if len(s) <= 3 {
		return sign + s
	}
	var b strings.Builder
	b.Grow(len(s) + len(s)/3)
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return sign + b.String()
}

// TruncateNumber shortens a long decimal string to its leading and trailing
// DisplayEdges digits. Strings at or under TruncationLimit digits pass
// through unchanged.
func TruncateNumber(s string) string {
	if len(s) <= TruncationLimit {
		return s
	}
	return s[:DisplayEdges] + "..." + s[len(s)-DisplayEdges:]
}

// WrapNumber breaks a digit string into lines of at most WrapWidth
// characters, for terminal display of large results.
func WrapNumber(s string) string {
	return WrapNumberTo(s, WrapWidth)
}

// WrapNumberTo breaks a digit string into lines of at most width
// characters. Non-positive widths fall back to WrapWidth.
func WrapNumberTo(s string, width int) string {
	if width <= 0 {
		width = WrapWidth
	}
	if len(s) <= width {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + len(s)/width)
	for len(s) > width {
		b.WriteString(s[:width])
		b.WriteByte('\n')
		s = s[width:]
	}
	b.WriteString(s)
	return b.String()
}

// FormatBytes renders a byte count with a binary unit suffix.
func FormatBytes(b uint64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := uint64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(b)/float64(div), "KMGTPE"[exp])
}

// CountDigits reports the number of decimal digits in a rendered number,
// ignoring any sign.
func CountDigits(s string) int {
	if s == "" {
		return 0
	}
	if s[0] == '-' || s[0] == '+' {
		return len(s) - 1
	}
	return len(s)
}
