package formatter

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/alexanderramin/gantt/internal/domain"
	"github.com/alexanderramin/gantt/internal/timeline"
	"github.com/charmbracelet/lipgloss"
)

// CellPx is the chart width, in layout pixels, drawn by one terminal cell.
const CellPx = 8

// ChartOptions control the terminal chart.
type ChartOptions struct {
	// Width is the number of timeline cells to draw.
	Width int
	// Offset is the first timeline cell shown. Header and rows share it.
	Offset int
	// Columns selects the task list columns; name is always shown.
	Columns []domain.ColumnID
}

// Chart is a rendered terminal chart split into its fixed header, one
// line per schedule row and a status footer.
type Chart struct {
	Header []string
	Rows   []string
	Footer string
}

func (c Chart) String() string {
	var b strings.Builder
	for _, l := range c.Header {
		b.WriteString(l + "\n")
	}
	for _, l := range c.Rows {
		b.WriteString(l + "\n")
	}
	if c.Footer != "" {
		b.WriteString(c.Footer + "\n")
	}
	return b.String()
}

// RenderChart draws the snapshot as text.
func RenderChart(snap timeline.Snapshot, s domain.Schedule, opts ChartOptions) string {
	return LayoutChart(snap, s, opts).String()
}

type paneColumn struct {
	id    domain.ColumnID
	label string
	width int
	right bool
}

var paneColumns = []paneColumn{
	{id: domain.ColumnName, label: "Task", width: 22},
	{id: domain.ColumnStartDate, label: "Start", width: 6},
	{id: domain.ColumnEndDate, label: "End", width: 6},
	{id: domain.ColumnProgress, label: "%", width: 4, right: true},
}

func visiblePane(ids []domain.ColumnID) []paneColumn {
	var out []paneColumn
	for _, c := range paneColumns {
		if c.id == domain.ColumnName {
			out = append(out, c)
			continue
		}
		for _, id := range ids {
			if id == c.id {
				out = append(out, c)
				break
			}
		}
	}
	return out
}

// PaneWidth is the width in cells of the task list for the given columns.
func PaneWidth(ids []domain.ColumnID) int {
	cols := visiblePane(ids)
	w := len(cols) - 1
	for _, c := range cols {
		w += c.width
	}
	return w
}

// TimelineCells is how many timeline cells fit beside the task list in a
// terminal termWidth cells wide.
func TimelineCells(termWidth int, ids []domain.ColumnID) int {
	return max(termWidth-PaneWidth(ids)-2, 10)
}

// MaxOffset is the largest useful scroll offset for a timeline width cells wide.
func MaxOffset(snap timeline.Snapshot, width int) int {
	total := int(math.Ceil(snap.ContentWidth / CellPx))
	return max(total-width, 0)
}

// scheduleRow is the task list view of one schedule item.
type scheduleRow struct {
	ID        string
	Name      string
	Status    domain.Status
	Start     time.Time
	End       time.Time
	Progress  float64
	Task      bool
	Milestone bool
	Critical  bool
	Color     string
}

func scheduleRows(s domain.Schedule) []scheduleRow {
	rows := make([]scheduleRow, 0, s.ItemCount())
	for _, p := range s.Projects {
		rows = append(rows, scheduleRow{
			ID: p.ID, Name: p.Name, Status: p.Status, Start: p.Start, End: p.End,
			Progress: p.ProgressPct(), Milestone: p.IsMilestone(), Critical: p.Critical, Color: p.Color,
		})
		for _, t := range p.Tasks {
			rows = append(rows, scheduleRow{
				ID: t.ID, Name: t.Name, Status: t.Status, Start: t.Start, End: t.End,
				Progress: t.ProgressPct(), Task: true, Milestone: t.IsMilestone(), Critical: t.Critical, Color: t.Color,
			})
		}
	}
	return rows
}

// LayoutChart draws the snapshot as separate header, row and footer lines.
func LayoutChart(snap timeline.Snapshot, s domain.Schedule, opts ChartOptions) Chart {
	if len(snap.Items) == 0 {
		return Chart{Footer: Dim("No scheduled items")}
	}
	width := max(opts.Width, 1)
	cols := visiblePane(opts.Columns)
	paneW := PaneWidth(opts.Columns)

	var c Chart
	if snap.Header.TwoRows {
		top := headerTrack(snap.Header.Top, width, opts.Offset, StyleHeader)
		c.Header = append(c.Header, strings.Repeat(" ", paneW)+" "+StyleDim.Render("│")+top)
	}
	labels := make([]string, len(cols))
	for i, col := range cols {
		label := StyleHeader.Render(col.label)
		if col.right {
			labels[i] = PadLeft(label, col.width)
		} else {
			labels[i] = PadRight(label, col.width)
		}
	}
	bottom := headerTrack(snap.Header.Bottom, width, opts.Offset, StyleDim)
	c.Header = append(c.Header,
		strings.Join(labels, " ")+" "+StyleDim.Render("│")+bottom,
		StyleDim.Render(strings.Repeat("─", paneW+1)+"┼"+strings.Repeat("─", width)),
	)

	rows := scheduleRows(s)
	for i, row := range rows {
		if i >= len(snap.Items) {
			break
		}
		pane := paneCells(row, cols)
		c.Rows = append(c.Rows, pane+" "+StyleDim.Render("│")+barTrack(row, snap.Items[i], snap, width, opts.Offset))
	}

	c.Footer = Dim(fmt.Sprintf("%s view, week starts %s · %s to %s",
		snap.Scale.Resolution, snap.Scale.WeekStart, LongDate(snap.Window.Start), LongDate(snap.Window.End)))
	return c
}

func paneCells(row scheduleRow, cols []paneColumn) string {
	cells := make([]string, len(cols))
	for i, col := range cols {
		switch col.id {
		case domain.ColumnName:
			indent := ""
			if row.Task {
				indent = "  "
			}
			name := Truncate(row.Name, col.width-len(indent)-2)
			if !row.Task {
				name = Bold(name)
			}
			cells[i] = PadRight(indent+StatusDot(row.Status)+" "+name, col.width)
		case domain.ColumnStartDate:
			cells[i] = PadRight(ShortDate(row.Start), col.width)
		case domain.ColumnEndDate:
			cells[i] = PadRight(ShortDate(row.End), col.width)
		case domain.ColumnProgress:
			cells[i] = PadLeft(fmt.Sprintf("%.0f%%", row.Progress), col.width)
		}
	}
	return strings.Join(cells, " ")
}

func barTrack(row scheduleRow, it timeline.ItemGeometry, snap timeline.Snapshot, width, offset int) string {
	tr := newTrack(width, offset)
	if snap.TodayVisible {
		tr.put(int(math.Floor(snap.TodayX/CellPx)), todayMark, tr.use(StyleBlue))
	}

	style := StyleFg
	if row.Color != "" {
		style = lipgloss.NewStyle().Foreground(lipgloss.Color(row.Color))
	}
	if row.Critical {
		style = StyleRed
	}

	paint := tr.use(style)

	if it.Milestone {
		tr.put(int(math.Floor((it.Bar.X+it.Bar.Width/2)/CellPx)), milestone, paint)
		return tr.String()
	}

	from := int(math.Floor(it.Bar.X / CellPx))
	to := max(int(math.Ceil(it.Bar.End()/CellPx)), from+1)
	done := from + filledCells(row.Progress, to-from)
	for i := from; i < to; i++ {
		if i < done {
			tr.put(i, filledRune, paint)
		} else {
			tr.put(i, emptyRune, paint)
		}
	}
	return tr.String()
}

func headerTrack(units []timeline.HeaderUnit, width, offset int, style lipgloss.Style) string {
	tr := newTrack(width, offset)
	paint := tr.use(style)
	for _, u := range units {
		start := int(math.Floor(u.X / CellPx))
		end := int(math.Floor((u.X + u.Width) / CellPx))
		start = max(start, offset)
		end = min(end, offset+width)
		label := []rune(u.Label)
		if n := end - start - 1; len(label) > n {
			if n <= 0 {
				continue
			}
			label = label[:n]
		}
		for k, r := range label {
			tr.put(start+k, r, paint)
		}
	}
	return tr.String()
}

// track is one line of timeline cells addressed in absolute cell
// positions; only cells inside the scrolled window are kept.
type track struct {
	offset int
	cells  []rune
	paint  []int
	styles []lipgloss.Style
}

func newTrack(width, offset int) *track {
	t := &track{
		offset: offset,
		cells:  make([]rune, width),
		paint:  make([]int, width),
		styles: []lipgloss.Style{lipgloss.NewStyle()},
	}
	for i := range t.cells {
		t.cells[i] = ' '
	}
	return t
}

// use registers a style for subsequent put calls.
func (t *track) use(style lipgloss.Style) int {
	t.styles = append(t.styles, style)
	return len(t.styles) - 1
}

func (t *track) put(abs int, r rune, paint int) {
	i := abs - t.offset
	if i < 0 || i >= len(t.cells) {
		return
	}
	t.cells[i] = r
	t.paint[i] = paint
}

// String renders runs of equally painted cells, dropping trailing blanks.
func (t *track) String() string {
	end := len(t.cells)
	for end > 0 && t.cells[end-1] == ' ' {
		end--
	}
	var b strings.Builder
	for i := 0; i < end; {
		j := i
		for j < end && t.paint[j] == t.paint[i] {
			j++
		}
		run := string(t.cells[i:j])
		if t.paint[i] == 0 {
			b.WriteString(run)
		} else {
			b.WriteString(t.styles[t.paint[i]].Render(run))
		}
		i = j
	}
	return b.String()
}
