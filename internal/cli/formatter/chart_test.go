package formatter

import (
	"strings"
	"testing"

	"github.com/alexanderramin/gantt/internal/domain"
	"github.com/alexanderramin/gantt/internal/testutil"
	"github.com/alexanderramin/gantt/internal/timeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// timelinePart returns what follows the task list separator.
func timelinePart(line string) string {
	_, after, _ := strings.Cut(stripANSI(line), "│")
	return after
}

func TestPaneWidth(t *testing.T) {
	assert.Equal(t, 22, PaneWidth(nil))
	assert.Equal(t, 29, PaneWidth([]domain.ColumnID{domain.ColumnStartDate}))
	assert.Equal(t, 41, PaneWidth([]domain.ColumnID{
		domain.ColumnName, domain.ColumnStartDate, domain.ColumnEndDate, domain.ColumnProgress,
	}))
	// Unknown ids are ignored.
	assert.Equal(t, 22, PaneWidth([]domain.ColumnID{"owner"}))
}

func TestTimelineCells(t *testing.T) {
	assert.Equal(t, 96, TimelineCells(120, nil))
	assert.Equal(t, 10, TimelineCells(20, nil), "never narrower than ten cells")
}

func TestMaxOffset(t *testing.T) {
	snap, _ := fitOutSnapshot(t)
	assert.Equal(t, 45, MaxOffset(snap, 20))
	assert.Equal(t, 0, MaxOffset(snap, 100))
}

func TestLayoutChart_SharedOffset(t *testing.T) {
	snap, s := fitOutSnapshot(t)
	c := LayoutChart(snap, s, ChartOptions{Width: 10, Offset: 40})

	require.Len(t, c.Header, 2)
	assert.Equal(t, "11   12", timelinePart(c.Header[0]))
	require.Len(t, c.Rows, 4)
	for _, row := range c.Rows {
		assert.Empty(t, timelinePart(row), "all bars end before cell 40")
	}
}

func TestLayoutChart_RowsFitWidth(t *testing.T) {
	snap, s := fitOutSnapshot(t)
	for _, offset := range []int{0, 5, 12, 30, 60} {
		c := LayoutChart(snap, s, ChartOptions{Width: 15, Offset: offset})
		for _, line := range append(c.Header[:1], c.Rows...) {
			assert.LessOrEqual(t, len([]rune(timelinePart(line))), 15, "offset %d: %q", offset, line)
		}
	}
}

func TestLayoutChart_NameOnlyPane(t *testing.T) {
	snap, s := fitOutSnapshot(t)
	c := LayoutChart(snap, s, ChartOptions{Width: 65})

	header := stripANSI(c.Header[0])
	assert.True(t, strings.HasPrefix(header, "Task"))
	assert.NotContains(t, header, "Start")
	assert.Equal(t, "  ● Paint              │                 ┊       █████░░░░░", stripANSI(c.Rows[2]))
}

func TestLayoutChart_WeekViewHasContextRow(t *testing.T) {
	p := timeline.DefaultParams(domain.ResolutionWeek, 1200, domain.Sunday, testutil.Date(2024, 11, 5))
	snap, ok := timeline.Layout(testutil.SiteSchedule(), p)
	require.True(t, ok)

	c := LayoutChart(snap, testutil.SiteSchedule(), ChartOptions{Width: 260})
	require.Len(t, c.Header, 3)
	assert.Contains(t, stripANSI(c.Header[0]), "Nov 2024")
	assert.Len(t, c.Rows, 8)
	assert.Contains(t, stripANSI(c.Rows[7]), "◆")
	assert.Contains(t, stripANSI(c.Footer), "week view, week starts Sunday")
}

func TestLayoutChart_Empty(t *testing.T) {
	c := LayoutChart(timeline.Snapshot{}, domain.Schedule{}, ChartOptions{Width: 40})
	assert.Empty(t, c.Header)
	assert.Empty(t, c.Rows)
	assert.Equal(t, "No scheduled items\n", stripANSI(c.String()))
}

func TestFormatGeometry(t *testing.T) {
	snap, s := fitOutSnapshot(t)
	out := stripANSI(FormatGeometry(snap, s))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	require.Len(t, lines, 6)
	assert.True(t, strings.HasPrefix(lines[0], "ID"))
	assert.Contains(t, lines[4], "  Paint")
	assert.Contains(t, lines[4], "[█████░░░░░]  50%")
	assert.Contains(t, lines[4], "200.0")
}
