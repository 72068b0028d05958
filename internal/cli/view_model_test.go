package cli

import (
	"regexp"
	"strings"
	"testing"

	"github.com/alexanderramin/gantt/internal/chart"
	"github.com/alexanderramin/gantt/internal/cli/formatter"
	"github.com/alexanderramin/gantt/internal/domain"
	"github.com/alexanderramin/gantt/internal/teatest"
	"github.com/alexanderramin/gantt/internal/testutil"
	"github.com/alexanderramin/gantt/internal/timeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

// chartDriver adds viewer-specific inspection to the generic driver.
type chartDriver struct {
	*teatest.Driver
}

func siteState() chart.State {
	p := timeline.DefaultParams(domain.ResolutionWeek, 1200, domain.Sunday, testutil.Date(2024, 11, 5))
	return chart.New(p).Load(testutil.SiteSchedule())
}

func newChartDriver(t *testing.T, st chart.State, w, h int) *chartDriver {
	t.Helper()
	d := teatest.New(t, newViewModel(st), teatest.WithSize(w, h))
	d.DrainInit()
	return &chartDriver{Driver: d}
}

func (d *chartDriver) model() viewModel { return d.Model.(viewModel) }
func (d *chartDriver) state() chart.State { return d.model().state }
func (d *chartDriver) offset() int        { return d.model().offset }

func TestViewer_FitsTimelineToTerminal(t *testing.T) {
	d := newChartDriver(t, siteState(), 120, 30)
	assert.Equal(t, 77*8.0, d.state().ViewportWidth())

	d.Resize(100, 30)
	assert.Equal(t, 57*8.0, d.state().ViewportWidth())
}

func TestViewer_ResolutionKeys(t *testing.T) {
	d := newChartDriver(t, siteState(), 120, 30)

	for _, tc := range []struct {
		key  rune
		want domain.Resolution
	}{
		{'d', domain.ResolutionDay},
		{'m', domain.ResolutionMonth},
		{'q', domain.ResolutionQuarter},
		{'y', domain.ResolutionYear},
		{'w', domain.ResolutionWeek},
	} {
		d.PressKey(tc.key)
		assert.Equal(t, tc.want, d.state().Resolution())
		snap, ok := d.state().Snapshot()
		require.True(t, ok)
		assert.Equal(t, tc.want, snap.Scale.Resolution, "geometry follows the resolution")
	}
	assert.False(t, d.Quitting, "q selects the quarter view")
}

func TestViewer_CyclesWeekStart(t *testing.T) {
	d := newChartDriver(t, siteState(), 120, 30)

	d.PressKey('s')
	assert.Equal(t, domain.Monday, d.state().WeekStart())
	snap, _ := d.state().Snapshot()
	assert.Equal(t, testutil.Date(2024, 10, 28), snap.Window.Start)

	d.Type("ssssss")
	assert.Equal(t, domain.Sunday, d.state().WeekStart())
}

func TestViewer_ToggleColumnsRefitsTimeline(t *testing.T) {
	d := newChartDriver(t, siteState(), 120, 30)

	d.PressKey('3')
	assert.False(t, d.state().ColumnVisible(domain.ColumnProgress))
	assert.Equal(t, 82*8.0, d.state().ViewportWidth())
	assert.NotContains(t, stripANSI(d.View()), "  % │")

	d.PressKey('1')
	d.PressKey('2')
	assert.Equal(t, []domain.ColumnID{domain.ColumnName}, d.state().VisibleColumns())

	d.Type("123")
	assert.Len(t, d.state().VisibleColumns(), 4)
	assert.Equal(t, 77*8.0, d.state().ViewportWidth())
}

func TestViewer_HorizontalScrollIsClamped(t *testing.T) {
	d := newChartDriver(t, siteState(), 120, 30)

	d.PressLeft()
	assert.Equal(t, 0, d.offset())

	d.PressRight()
	assert.Equal(t, scrollStep, d.offset())

	for range 30 {
		d.PressRight()
	}
	assert.Equal(t, 254-77, d.offset())

	d.PressHome()
	assert.Equal(t, 0, d.offset())
}

func TestViewer_HeaderAndRowsShareOffset(t *testing.T) {
	d := newChartDriver(t, siteState(), 120, 30)
	for range 5 {
		d.PressRight()
	}
	require.Equal(t, 40, d.offset())

	snap, _ := d.state().Snapshot()
	want := formatter.LayoutChart(snap, d.state().Schedule(), formatter.ChartOptions{
		Width:   77,
		Offset:  40,
		Columns: d.state().VisibleColumns(),
	})

	view := stripANSI(d.View())
	for _, l := range want.Header {
		assert.Contains(t, view, stripANSI(l))
	}
	for _, l := range want.Rows {
		assert.Contains(t, view, stripANSI(l))
	}
}

func TestViewer_VerticalScroll(t *testing.T) {
	d := newChartDriver(t, siteState(), 120, 8)
	require.Equal(t, 3, d.model().body.Height)

	d.PressDown()
	d.PressDown()
	assert.Equal(t, 2, d.model().body.YOffset)

	d.PressUp()
	assert.Equal(t, 1, d.model().body.YOffset)
}

func TestViewer_ShowsChartAndHelp(t *testing.T) {
	d := newChartDriver(t, siteState(), 120, 30)

	view := stripANSI(d.View())
	assert.Contains(t, view, "Site Preparation")
	assert.Contains(t, view, "Nov 2024")
	assert.Contains(t, view, "q: quarter")
	assert.Contains(t, view, "week view, week starts Sunday")
}

func TestViewer_EmptySchedule(t *testing.T) {
	p := timeline.DefaultParams(domain.ResolutionWeek, 1200, domain.Sunday, testutil.Date(2024, 11, 5))
	d := newChartDriver(t, chart.New(p).Load(domain.Schedule{}), 120, 30)

	d.PressRight()
	assert.Equal(t, 0, d.offset())
	assert.Contains(t, stripANSI(d.View()), "No scheduled items")
}

func TestViewer_Quit(t *testing.T) {
	for name, press := range map[string]func(*chartDriver){
		"esc":    func(d *chartDriver) { d.PressEsc() },
		"ctrl+c": func(d *chartDriver) { d.PressCtrlC() },
	} {
		t.Run(name, func(t *testing.T) {
			d := newChartDriver(t, siteState(), 120, 30)
			press(d)
			assert.True(t, d.Quitting)
			assert.Empty(t, d.View())
		})
	}
}

func TestViewKeyMap_HelpCoversBindings(t *testing.T) {
	help := defaultViewKeys().ShortHelp()
	var keys []string
	for _, b := range help {
		keys = append(keys, b.Help().Key)
	}
	assert.Equal(t, "d w m q y s 1 2 3 ←/→ esc", strings.Join(keys, " "))
}
