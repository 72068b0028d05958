package formatter

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Truncate shortens s to at most width cells, marking the cut with "…".
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(r[:width-1]) + "…"
}

// PadRight pads s with spaces to width visible cells. Styled text is
// measured without its escape sequences.
func PadRight(s string, width int) string {
	if pad := width - lipgloss.Width(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}

// PadLeft right-aligns s within width visible cells.
func PadLeft(s string, width int) string {
	if pad := width - lipgloss.Width(s); pad > 0 {
		return strings.Repeat(" ", pad) + s
	}
	return s
}

// ShortDate formats a date the way the task list shows it, e.g. "Mar 4".
func ShortDate(t time.Time) string {
	return t.Format("Jan 2")
}

// LongDate formats a date with its year, e.g. "Mar 4, 2024".
func LongDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}
