package chart

import (
	"log/slog"
	"time"

	"github.com/alexanderramin/gantt/internal/domain"
)

// Event captures one state transition.
type Event struct {
	Trigger       Trigger
	Resolution    domain.Resolution
	ViewportWidth float64
	WeekStart     domain.Weekday
	Items         int
	ContentWidth  float64
	Duration      time.Duration
	Err           error
}

// Observer receives an event for every transition, including rejected ones.
type Observer interface {
	ObserveTransition(event Event)
}

// NoopObserver ignores all events.
type NoopObserver struct{}

func (NoopObserver) ObserveTransition(Event) {}

type logObserver struct {
	logger *slog.Logger
}

// NewLogObserver reports transitions through logger at DEBUG, and
// rejected transitions at WARN.
func NewLogObserver(logger *slog.Logger) Observer {
	if logger == nil {
		return NoopObserver{}
	}
	return &logObserver{logger: logger}
}

func (o *logObserver) ObserveTransition(event Event) {
	attrs := []any{
		"trigger", string(event.Trigger),
		"resolution", string(event.Resolution),
		"viewport_width", event.ViewportWidth,
		"week_start", event.WeekStart.String(),
		"items", event.Items,
		"content_width", event.ContentWidth,
		"duration_us", event.Duration.Microseconds(),
	}
	if event.Err != nil {
		attrs = append(attrs, "error", event.Err.Error())
		o.logger.Warn("chart_transition_rejected", attrs...)
		return
	}
	o.logger.Debug("chart_transition", attrs...)
}
