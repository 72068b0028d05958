package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/gantt/internal/domain"
	"github.com/alexanderramin/gantt/internal/timeline"
	"github.com/charmbracelet/lipgloss"
)

// RenderTable renders a simple aligned table with a header separator line.
// Headers are rendered with the Header style. Columns are padded to the
// maximum visible width found in each column across headers and rows.
func RenderTable(headers []string, rows [][]string) string {
	if len(headers) == 0 {
		return ""
	}

	cols := len(headers)
	widths := make([]int, cols)
	for i, h := range headers {
		widths[i] = max(widths[i], lipgloss.Width(h))
	}
	for _, row := range rows {
		for i := 0; i < cols && i < len(row); i++ {
			widths[i] = max(widths[i], lipgloss.Width(row[i]))
		}
	}

	const colGap = 2
	gap := strings.Repeat(" ", colGap)

	var b strings.Builder
	for i, h := range headers {
		cell := StyleHeader.Render(h)
		if i < cols-1 {
			cell = PadRight(cell, widths[i]) + gap
		}
		b.WriteString(cell)
	}
	b.WriteString("\n")

	for i, w := range widths {
		b.WriteString(StyleDim.Render(strings.Repeat("─", w)))
		if i < cols-1 {
			b.WriteString(gap)
		}
	}
	b.WriteString("\n")

	for _, row := range rows {
		for i := 0; i < cols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			if i < cols-1 {
				cell = PadRight(cell, widths[i]) + gap
			}
			b.WriteString(cell)
		}
		b.WriteString("\n")
	}

	return b.String()
}

// FormatGeometry tabulates the placement of every schedule row.
func FormatGeometry(snap timeline.Snapshot, s domain.Schedule) string {
	headers := []string{"ID", "Name", "Start", "End", "Progress", "Y", "X", "Width"}
	var rows [][]string
	for _, row := range scheduleRows(s) {
		it, ok := snap.Item(row.ID)
		if !ok {
			continue
		}
		name := row.Name
		if row.Task {
			name = "  " + name
		}
		rows = append(rows, []string{
			Dim(row.ID),
			name,
			ShortDate(row.Start),
			ShortDate(row.End),
			RenderProgress(row.Progress, 10),
			fmt.Sprintf("%g", it.Y),
			fmt.Sprintf("%.1f", it.Bar.X),
			fmt.Sprintf("%.1f", it.Bar.Width),
		})
	}
	return RenderTable(headers, rows)
}
