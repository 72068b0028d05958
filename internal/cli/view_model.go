package cli

import (
	"strings"

	"github.com/alexanderramin/gantt/internal/chart"
	"github.com/alexanderramin/gantt/internal/cli/formatter"
	"github.com/alexanderramin/gantt/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// scrollStep is how many timeline cells one left/right press moves.
const scrollStep = 8

type viewKeyMap struct {
	Day, Week, Month, Quarter, Year key.Binding
	WeekStart                       key.Binding
	ToggleStart, ToggleEnd          key.Binding
	ToggleProgress                  key.Binding
	Left, Right, Home               key.Binding
	Quit                            key.Binding
}

func defaultViewKeys() viewKeyMap {
	return viewKeyMap{
		Day:            key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "day")),
		Week:           key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "week")),
		Month:          key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "month")),
		Quarter:        key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quarter")),
		Year:           key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "year")),
		WeekStart:      key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "week start")),
		ToggleStart:    key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "start")),
		ToggleEnd:      key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "end")),
		ToggleProgress: key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "progress")),
		Left:           key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/→", "scroll")),
		Right:          key.NewBinding(key.WithKeys("right", "l")),
		Home:           key.NewBinding(key.WithKeys("home", "0")),
		Quit:           key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
	}
}

// ShortHelp lists the bindings shown in the bottom bar.
func (k viewKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Day, k.Week, k.Month, k.Quarter, k.Year, k.WeekStart,
		k.ToggleStart, k.ToggleEnd, k.ToggleProgress, k.Left, k.Quit,
	}
}

// viewModel is the interactive chart. The header and the rows are drawn
// from one horizontal offset so they always scroll together; vertical
// scrolling of the rows is delegated to a viewport.
type viewModel struct {
	state  chart.State
	keys   viewKeyMap
	body   viewport.Model
	width  int
	height int
	cells  int
	offset int
	status string

	quitting bool
}

func newViewModel(st chart.State) viewModel {
	vp := viewport.New(0, 0)
	vp.KeyMap = rowViewportKeyMap()
	vp.MouseWheelEnabled = true

	m := viewModel{
		state:  st,
		keys:   defaultViewKeys(),
		body:   vp,
		width:  defaultTermWidth,
		height: 30,
	}
	m.resize()
	return m
}

// rowViewportKeyMap leaves letters free for the chart bindings.
func rowViewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		Up:           key.NewBinding(key.WithKeys("up", "k")),
		Down:         key.NewBinding(key.WithKeys("down", "j")),
	}
}

func (m viewModel) Init() tea.Cmd { return nil }

func (m viewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.body, cmd = m.body.Update(msg)
	return m, cmd
}

func (m viewModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Day):
		m.setResolution(domain.ResolutionDay)
	case key.Matches(msg, m.keys.Week):
		m.setResolution(domain.ResolutionWeek)
	case key.Matches(msg, m.keys.Month):
		m.setResolution(domain.ResolutionMonth)
	case key.Matches(msg, m.keys.Quarter):
		m.setResolution(domain.ResolutionQuarter)
	case key.Matches(msg, m.keys.Year):
		m.setResolution(domain.ResolutionYear)

	case key.Matches(msg, m.keys.WeekStart):
		next := (m.state.WeekStart() + 1) % 7
		st, err := m.state.SetStartOfWeek(next)
		m.apply(st, err)

	case key.Matches(msg, m.keys.ToggleStart):
		m.toggle(domain.ColumnStartDate)
	case key.Matches(msg, m.keys.ToggleEnd):
		m.toggle(domain.ColumnEndDate)
	case key.Matches(msg, m.keys.ToggleProgress):
		m.toggle(domain.ColumnProgress)

	case key.Matches(msg, m.keys.Left):
		m.scrollTo(m.offset - scrollStep)
	case key.Matches(msg, m.keys.Right):
		m.scrollTo(m.offset + scrollStep)
	case key.Matches(msg, m.keys.Home):
		m.scrollTo(0)

	default:
		var cmd tea.Cmd
		m.body, cmd = m.body.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *viewModel) setResolution(r domain.Resolution) {
	st, err := m.state.SetResolution(r)
	m.apply(st, err)
}

func (m *viewModel) toggle(id domain.ColumnID) {
	st, err := m.state.ToggleColumn(id)
	m.apply(st, err)
	m.resize()
}

func (m *viewModel) apply(st chart.State, err error) {
	if err != nil {
		m.status = err.Error()
		return
	}
	m.state = st
	m.scrollTo(m.offset)
}

// resize fits the timeline to the space left of the task list and lays
// the chart out again for that width.
func (m *viewModel) resize() {
	m.cells = formatter.TimelineCells(m.width, m.state.VisibleColumns())
	m.state = m.state.SetViewportWidth(float64(m.cells * formatter.CellPx))
	m.body.Width = m.width
	m.scrollTo(m.offset)
}

// scrollTo clamps the shared horizontal offset and redraws the rows.
func (m *viewModel) scrollTo(offset int) {
	snap, _ := m.state.Snapshot()
	m.offset = min(max(offset, 0), formatter.MaxOffset(snap, m.cells))

	c := m.chart()
	m.body.Height = max(m.height-len(c.Header)-2, 1)
	m.body.SetContent(strings.Join(c.Rows, "\n"))
}

func (m viewModel) chart() formatter.Chart {
	snap, _ := m.state.Snapshot()
	return formatter.LayoutChart(snap, m.state.Schedule(), formatter.ChartOptions{
		Width:   m.cells,
		Offset:  m.offset,
		Columns: m.state.VisibleColumns(),
	})
}

func (m viewModel) View() string {
	if m.quitting {
		return ""
	}
	c := m.chart()

	var b strings.Builder
	for _, l := range c.Header {
		b.WriteString(l + "\n")
	}
	b.WriteString(m.body.View() + "\n")
	b.WriteString(c.Footer + "\n")
	b.WriteString(m.helpBar())
	return b.String()
}

func (m viewModel) helpBar() string {
	if m.status != "" {
		return formatter.StyleRed.Render(m.status)
	}
	var hints []string
	for _, b := range m.keys.ShortHelp() {
		h := b.Help()
		hints = append(hints, formatter.Dim(h.Key+": "+h.Desc))
	}
	sep := lipgloss.NewStyle().Foreground(formatter.ColorDim).Render(" · ")
	return strings.Join(hints, sep)
}
