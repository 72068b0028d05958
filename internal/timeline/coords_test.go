package timeline

import (
	"testing"

	"github.com/alexanderramin/gantt/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestBarPosition(t *testing.T) {
	start := testutil.Date(2024, 10, 31)

	bar := BarPosition(testutil.Date(2024, 11, 1), testutil.Date(2024, 11, 8), start, 40)

	assert.Equal(t, 80.0, bar.X)
	assert.Equal(t, 320.0, bar.Width)
	assert.Equal(t, 400.0, bar.End())
}

func TestBarPosition_SingleDayHasOneDayWidth(t *testing.T) {
	start := testutil.Date(2024, 10, 27)
	d := testutil.Date(2024, 12, 15)

	bar := BarPosition(d, d, start, 25)

	assert.Equal(t, 25.0, bar.Width)
	assert.Equal(t, 1250.0, bar.X)
}

func TestXOf_BeforeStartIsNegative(t *testing.T) {
	assert.Equal(t, -650.0, XOf(testutil.Date(2024, 10, 1), testutil.Date(2024, 10, 27), 25))
}

func TestTodayX(t *testing.T) {
	assert.Equal(t, 237.5, TodayX(testutil.Date(2024, 11, 5), testutil.Date(2024, 10, 27), 25))
}
