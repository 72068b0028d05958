package timeline

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/alexanderramin/gantt/internal/domain"
	"github.com/alexanderramin/gantt/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name string
		a, b time.Time
		want int
	}{
		{"same day", testutil.Date(2024, 11, 1), testutil.Date(2024, 11, 1), 0},
		{"one day later", testutil.Date(2024, 11, 2), testutil.Date(2024, 11, 1), 1},
		{"earlier is negative", testutil.Date(2024, 10, 27), testutil.Date(2024, 11, 1), -5},
		{"across leap day", testutil.Date(2024, 3, 1), testutil.Date(2024, 2, 28), 2},
		{"ignores time of day", time.Date(2024, 11, 2, 23, 59, 0, 0, time.Local), time.Date(2024, 11, 1, 0, 1, 0, 0, time.Local), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysBetween(tt.a, tt.b))
		})
	}
}

func TestDaysBetween_AcrossDST(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// 2024-03-10 is 23 hours long, 2024-11-03 is 25 hours long.
	spring := DaysBetween(time.Date(2024, 3, 11, 0, 0, 0, 0, ny), time.Date(2024, 3, 9, 0, 0, 0, 0, ny))
	fall := DaysBetween(time.Date(2024, 11, 4, 0, 0, 0, 0, ny), time.Date(2024, 11, 2, 0, 0, 0, 0, ny))

	assert.Equal(t, 2, spring)
	assert.Equal(t, 2, fall)
	assert.Equal(t, 0, AddDays(time.Date(2024, 3, 9, 0, 0, 0, 0, ny), 1).Hour())
}

func TestStartOfWeek_HonoursWeekStart(t *testing.T) {
	friday := testutil.Date(2024, 11, 1)

	assert.Equal(t, testutil.Date(2024, 10, 27), StartOfWeek(friday, domain.Sunday))
	assert.Equal(t, testutil.Date(2024, 10, 28), StartOfWeek(friday, domain.Monday))
	assert.Equal(t, testutil.Date(2024, 10, 26), StartOfWeek(friday, domain.Saturday))
	assert.Equal(t, friday, StartOfWeek(friday, domain.Friday))
	assert.Equal(t, testutil.Date(2024, 11, 3), EndOfWeek(friday, domain.Monday))
}

func TestCalendarSpans(t *testing.T) {
	assert.Equal(t, 29, DaysInMonth(testutil.Date(2024, 2, 14)))
	assert.Equal(t, 28, DaysInMonth(testutil.Date(2025, 2, 1)))
	assert.Equal(t, 92, DaysInQuarterSpan(testutil.Date(2024, 10, 1)))
	assert.Equal(t, 91, DaysInQuarterSpan(testutil.Date(2024, 1, 5)))
	assert.Equal(t, 366, DaysInYear(testutil.Date(2024, 6, 1)))
	assert.Equal(t, 365, DaysInYear(testutil.Date(2025, 6, 1)))
	assert.Equal(t, testutil.Date(2024, 10, 1), StartOfQuarter(testutil.Date(2024, 11, 30)))
}

func TestIterators(t *testing.T) {
	start, end := testutil.Date(2024, 10, 30), testutil.Date(2024, 11, 2)

	assert.Len(t, eachDay(start, end), 4)
	assert.Nil(t, eachDay(end, start))

	weeks := eachWeek(start, testutil.Date(2024, 11, 10), domain.Sunday)
	require.Len(t, weeks, 3)
	assert.Equal(t, testutil.Date(2024, 10, 27), weeks[0], "first week starts before the range")
	assert.Equal(t, testutil.Date(2024, 11, 10), weeks[2])

	months := eachMonth(testutil.Date(2024, 11, 15), testutil.Date(2025, 1, 31))
	assert.Equal(t, []time.Time{
		testutil.Date(2024, 11, 1), testutil.Date(2024, 12, 1), testutil.Date(2025, 1, 1),
	}, months)

	assert.Len(t, eachQuarter(testutil.Date(2024, 11, 15), testutil.Date(2025, 4, 1)), 3)
	assert.Len(t, eachYear(testutil.Date(2024, 11, 15), testutil.Date(2026, 1, 1)), 3)
}
