package timeline

import (
	"log/slog"
	"math"
	"time"

	"github.com/alexanderramin/gantt/internal/domain"
	"github.com/alexanderramin/gantt/internal/palette"
)

// DateProgress derives progress from how much of [start,end] has elapsed
// at now. It is 0 before start and 100 after end; both ends count as
// whole days.
func DateProgress(start, end, now time.Time) float64 {
	if DaysBetween(now, start) < 0 {
		return 0
	}
	if DaysBetween(now, end) > 0 {
		return 100
	}
	total := DaysBetween(end, start) + 1
	if total <= 0 {
		return 100
	}
	done := DaysBetween(now, start) + 1
	return domain.ClampPct(math.Round(float64(done) / float64(total) * 100))
}

// Enrich normalises a freshly loaded schedule. It returns a copy in which
// every end date is on or after its start date, every item has a progress
// value and every item has a palette colour. Inverted ranges are corrected
// and logged rather than rejected.
func Enrich(s domain.Schedule, now time.Time, logger *slog.Logger) domain.Schedule {
	logger = loggerOrNop(logger)
	out := s.Clone()

	for pi := range out.Projects {
		p := &out.Projects[pi]
		if fixRange(&p.Start, &p.End) {
			logger.Warn("end date before start date, adjusting end date",
				"kind", "project", "id", p.ID, "start", p.Start.Format(time.DateOnly))
		}
		group := palette.GroupFor(pi)
		p.ColorGroup = group.Name
		p.Color = group.Shade(palette.ProjectOrder)
		p.Progress = resolveProgress(p.Progress, p.Start, p.End, now)

		for ti := range p.Tasks {
			t := &p.Tasks[ti]
			if fixRange(&t.Start, &t.End) {
				logger.Warn("end date before start date, adjusting end date",
					"kind", "task", "id", t.ID, "project", p.ID, "start", t.Start.Format(time.DateOnly))
			}
			t.Color = group.Shade(palette.TaskOrder(ti))
			t.Progress = resolveProgress(t.Progress, t.Start, t.End, now)
		}
	}
	return out
}

// fixRange enforces end >= start, reporting whether a correction was made.
func fixRange(start, end *time.Time) bool {
	if DaysBetween(*end, *start) < 0 {
		*end = *start
		return true
	}
	return false
}

func resolveProgress(given *float64, start, end, now time.Time) *float64 {
	var v float64
	if given != nil {
		v = domain.ClampPct(*given)
	} else {
		v = DateProgress(start, end, now)
	}
	return &v
}
