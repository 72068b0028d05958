package timeline

import (
	"math"
	"testing"
	"time"

	"github.com/alexanderramin/gantt/internal/domain"
	"github.com/alexanderramin/gantt/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func window(y1, m1, d1, y2, m2, d2 int) Window {
	return Window{
		Start: testutil.Date(y1, time.Month(m1), d1),
		End:   testutil.Date(y2, time.Month(m2), d2),
	}
}

func TestComputeScale(t *testing.T) {
	tests := []struct {
		name      string
		res       domain.Resolution
		w         Window
		viewport  float64
		wantUnit  float64
		wantDay   float64
		wantPerUn int
	}{
		{
			name: "week clamps to minimum", res: domain.ResolutionWeek,
			w: window(2024, 10, 27, 2024, 12, 26), viewport: 1200,
			wantUnit: 175, wantDay: 25, wantPerUn: 7,
		},
		{
			name: "day clamps to minimum", res: domain.ResolutionDay,
			w: window(2024, 10, 31, 2024, 12, 3), viewport: 1200,
			wantUnit: 40, wantDay: 40, wantPerUn: 1,
		},
		{
			name: "window shorter than one unit fills viewport", res: domain.ResolutionMonth,
			w: window(2024, 11, 1, 2024, 11, 20), viewport: 1200,
			wantUnit: 1200, wantDay: 40, wantPerUn: 30,
		},
		{
			name: "wide viewport stretches units", res: domain.ResolutionMonth,
			w: window(2024, 11, 1, 2025, 1, 15), viewport: 3000,
			wantUnit: 1000, wantDay: 1000.0 / 30, wantPerUn: 30,
		},
		{
			name: "quarter anchored in october", res: domain.ResolutionQuarter,
			w: window(2024, 10, 1, 2025, 2, 26), viewport: 1200,
			wantUnit: 600, wantDay: 600.0 / 92, wantPerUn: 92,
		},
		{
			name: "leap year", res: domain.ResolutionYear,
			w: window(2024, 1, 1, 2025, 11, 26), viewport: 1200,
			wantUnit: 600, wantDay: 600.0 / 366, wantPerUn: 366,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc := ComputeScale(tt.viewport, tt.res, tt.w, domain.Sunday)
			assert.InDelta(t, tt.wantUnit, sc.UnitWidth, 1e-9)
			assert.InDelta(t, tt.wantDay, sc.DayWidth, 1e-9)
			assert.Equal(t, tt.wantPerUn, sc.DaysPerUnit)
		})
	}
}

func TestComputeScale_DegenerateViewport(t *testing.T) {
	w := window(2024, 11, 1, 2024, 11, 20)

	sc := ComputeScale(-50, domain.ResolutionMonth, w, domain.Sunday)
	assert.Equal(t, 0.0, sc.UnitWidth)
	assert.Equal(t, 0.0, sc.DayWidth)

	sc = ComputeScale(math.NaN(), domain.ResolutionMonth, w, domain.Sunday)
	assert.Equal(t, 0.0, sc.ViewportWidth)

	// A long window still honours the minimum even with no viewport.
	sc = ComputeScale(0, domain.ResolutionWeek, window(2024, 10, 27, 2024, 12, 26), domain.Sunday)
	assert.Equal(t, 175.0, sc.UnitWidth)
}

// TestComputeScale_MinimumWidthProperty sweeps viewports and resolutions:
// once the window spans a unit, the unit width never drops below the
// minimum and the day width always divides it evenly.
func TestComputeScale_MinimumWidthProperty(t *testing.T) {
	windows := []Window{
		window(2024, 10, 27, 2024, 12, 26),
		window(2023, 1, 1, 2025, 12, 31),
		window(2024, 2, 1, 2024, 6, 30),
	}
	for _, res := range domain.Resolutions {
		for _, w := range windows {
			for vp := 0.0; vp <= 4000; vp += 137 {
				sc := ComputeScale(vp, res, w, domain.Monday)
				if w.Days() >= sc.DaysPerUnit {
					assert.GreaterOrEqual(t, sc.UnitWidth, SpecFor(res).MinUnitWidth, "%s vp=%v", res, vp)
				}
				assert.InDelta(t, sc.UnitWidth/float64(sc.DaysPerUnit), sc.DayWidth, 1e-9)
			}
		}
	}
}

func TestScale_OverflowAndCollapse(t *testing.T) {
	w := window(2024, 10, 27, 2025, 1, 15)

	sc := ComputeScale(1200, domain.ResolutionWeek, w, domain.Sunday)
	assert.Equal(t, 2025.0, sc.ContentWidth(w))
	assert.True(t, sc.Overflows(w))
	assert.False(t, sc.Collapsed(), "25px per day is above the week threshold")

	sc = ComputeScale(1200, domain.ResolutionQuarter, w, domain.Sunday)
	assert.True(t, sc.Collapsed())

	sc = ComputeScale(1200, domain.ResolutionDay, w, domain.Sunday)
	assert.False(t, sc.Collapsed(), "day resolution never collapses")
}
