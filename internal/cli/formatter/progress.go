package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/gantt/internal/domain"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

const (
	filledRune = '█'
	emptyRune  = '░'
	milestone  = '◆'
	todayMark  = '┊'
)

// RenderProgress renders a percentage (0-100) as a bar like [████░░░░]  45%.
// Completed work is green, half done yellow, the rest red.
func RenderProgress(pct float64, width int) string {
	pct = domain.ClampPct(pct)
	if width < 2 {
		width = 2
	}

	filled := filledCells(pct, width)
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	if pct < 33 {
		style = StyleRed
	} else if pct < 66 {
		style = StyleYellow
	}

	return fmt.Sprintf("[%s] %3.0f%%", style.Render(bar), pct)
}

// filledCells is the number of cells out of n that pct covers, rounded
// to the nearest cell.
func filledCells(pct float64, n int) int {
	f := int(pct*float64(n)/100 + 0.5)
	if f > n {
		return n
	}
	if f < 0 {
		return 0
	}
	return f
}
