package palette

import (
	"testing"

	"github.com/alexanderramin/gantt/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestProjectColor_CyclesGroups(t *testing.T) {
	assert.Equal(t, "#2A5B6B", ProjectColor(0))
	assert.Equal(t, "#E6A245", ProjectColor(1))
	assert.Equal(t, "#2F4735", ProjectColor(2))
	assert.Equal(t, "#B13838", ProjectColor(3))
	assert.Equal(t, ProjectColor(0), ProjectColor(4))
}

func TestTaskOrder_CyclesTwoThroughEight(t *testing.T) {
	want := []int{2, 3, 4, 5, 6, 7, 8, 2, 3}
	for i, w := range want {
		assert.Equal(t, w, TaskOrder(i), "task %d", i)
	}
}

func TestTaskColor_SiblingsDistinct(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 7; i++ {
		c := TaskColor(0, i)
		assert.False(t, seen[c], "duplicate shade %s", c)
		seen[c] = true
		assert.NotEqual(t, ProjectColor(0), c)
	}
	assert.Equal(t, TaskColor(0, 0), TaskColor(0, 7))
}

func TestShade_MissingOrderFallsBackToBase(t *testing.T) {
	assert.Equal(t, "#4793AF", Groups[0].Shade(42))
}

func TestContrastColor(t *testing.T) {
	assert.Equal(t, "#ffffff", ContrastColor("#2A5B6B"))
	assert.Equal(t, "#000000", ContrastColor("#FFEEE2"))
	assert.Equal(t, "#ffffff", ContrastColor("not-a-color"))
}

func TestStatusGradient_DefaultsForNotStarted(t *testing.T) {
	assert.Equal(t, "#10B981", StatusGradient(domain.StatusOnTrack).From)
	assert.Equal(t, "#94A3B8", StatusGradient(domain.StatusNotStarted).From)
}
