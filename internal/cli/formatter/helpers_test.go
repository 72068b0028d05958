package formatter

import (
	"testing"

	"github.com/alexanderramin/gantt/internal/domain"
	"github.com/alexanderramin/gantt/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"Paint", 10, "Paint"},
		{"Paint", 5, "Paint"},
		{"Painting", 5, "Pain…"},
		{"Painting", 1, "…"},
		{"Painting", 0, ""},
		{"Überprüfung", 4, "Übe…"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Truncate(tt.in, tt.width), "%q/%d", tt.in, tt.width)
	}
}

func TestPadding_MeasuresVisibleWidth(t *testing.T) {
	styled := StyleRed.Render("ab")
	assert.Equal(t, "ab   ", stripANSI(PadRight(styled, 5)))
	assert.Equal(t, "   ab", stripANSI(PadLeft(styled, 5)))
	assert.Equal(t, "abcdef", PadRight("abcdef", 3))
}

func TestDates(t *testing.T) {
	d := testutil.Date(2024, 3, 4)
	assert.Equal(t, "Mar 4", ShortDate(d))
	assert.Equal(t, "Mar 4, 2024", LongDate(d))
}

func TestRenderProgress(t *testing.T) {
	tests := []struct {
		pct  float64
		want string
	}{
		{0, "[░░░░░░░░░░]   0%"},
		{50, "[█████░░░░░]  50%"},
		{63, "[██████░░░░]  63%"},
		{100, "[██████████] 100%"},
		{140, "[██████████] 100%"},
		{-5, "[░░░░░░░░░░]   0%"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, stripANSI(RenderProgress(tt.pct, 10)), "pct %v", tt.pct)
	}
	assert.Equal(t, "[█░]  50%", stripANSI(RenderProgress(50, 1)), "width clamps to 2")
}

func TestStatusDot(t *testing.T) {
	for _, s := range []domain.Status{
		domain.StatusNotStarted, domain.StatusOnTrack, domain.StatusAtRisk,
		domain.StatusDelayed, domain.StatusCompleted,
	} {
		assert.Equal(t, "●", stripANSI(StatusDot(s)))
	}
}
