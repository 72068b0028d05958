package timeline

import (
	"testing"

	"github.com/alexanderramin/gantt/internal/domain"
	"github.com/alexanderramin/gantt/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildHeader_Week(t *testing.T) {
	w := window(2024, 10, 27, 2024, 12, 26)
	sc := ComputeScale(1200, domain.ResolutionWeek, w, domain.Sunday)

	h := BuildHeader(sc, w)

	assert.True(t, h.TwoRows)
	require.Len(t, h.Bottom, 9)
	assert.Equal(t, "27–2", h.Bottom[0].Label)
	assert.Equal(t, 175.0, h.Bottom[0].Width)
	assert.Equal(t, 175.0, h.Bottom[1].X)

	require.Len(t, h.Top, 3)
	assert.Equal(t, "Oct 2024", h.Top[0].Label)
	assert.Equal(t, -650.0, h.Top[0].X)
	assert.Equal(t, 775.0, h.Top[0].Width)
	assert.Equal(t, "Dec 2024", h.Top[2].Label)
}

func TestBuildHeader_Day(t *testing.T) {
	w := window(2024, 10, 31, 2024, 11, 2)
	sc := ComputeScale(1200, domain.ResolutionDay, w, domain.Sunday)

	h := BuildHeader(sc, w)

	assert.False(t, h.TwoRows)
	assert.Empty(t, h.Top)
	require.Len(t, h.Bottom, 3)
	assert.Equal(t, []string{"31", "1", "2"}, labels(h.Bottom))
}

func TestBuildHeader_Month(t *testing.T) {
	w := window(2024, 11, 1, 2025, 1, 15)
	sc := ComputeScale(1200, domain.ResolutionMonth, w, domain.Sunday)

	h := BuildHeader(sc, w)

	assert.Equal(t, []string{"November 2024", "December 2024", "January 2025"}, labels(h.Bottom))
	assert.InDelta(t, 31*sc.DayWidth, h.Bottom[1].Width, 1e-9)
}

func TestBuildHeader_QuarterCoversWholeYears(t *testing.T) {
	w := window(2024, 10, 1, 2025, 2, 26)
	sc := ComputeScale(1200, domain.ResolutionQuarter, w, domain.Sunday)

	h := BuildHeader(sc, w)

	require.Len(t, h.Bottom, 24)
	require.Len(t, h.Top, 8)
	assert.Equal(t, "Q4 2024", h.Top[3].Label)
	assert.Equal(t, 0.0, h.Top[3].X)
	assert.Equal(t, "Q1 2025", h.Top[4].Label)
	assert.Equal(t, "Oct", h.Bottom[9].Label)
	// Month cells are sized by their own month.
	assert.InDelta(t, 30*sc.DayWidth, h.Bottom[10].Width, 1e-9)
}

func TestBuildHeader_Year(t *testing.T) {
	w := window(2024, 1, 1, 2025, 11, 26)
	sc := ComputeScale(1200, domain.ResolutionYear, w, domain.Sunday)

	h := BuildHeader(sc, w)

	assert.Equal(t, []string{"2024", "2025"}, labels(h.Top))
	assert.InDelta(t, 366*sc.DayWidth, h.Top[0].Width, 1e-9)
	assert.InDelta(t, 365*sc.DayWidth, h.Top[1].Width, 1e-9)
	assert.Len(t, h.Bottom, 24)
	assert.Equal(t, testutil.Date(2025, 1, 1), h.Top[1].Start)
}

func labels(units []HeaderUnit) []string {
	out := make([]string, len(units))
	for i, u := range units {
		out[i] = u.Label
	}
	return out
}
