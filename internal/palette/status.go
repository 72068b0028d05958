package palette

import "github.com/alexanderramin/gantt/internal/domain"

// Gradient is a left-to-right two-stop fill.
type Gradient struct {
	From string
	To   string
}

// StatusGradient returns the fill used for status badges.
func StatusGradient(s domain.Status) Gradient {
	switch s {
	case domain.StatusOnTrack:
		return Gradient{From: "#10B981", To: "#059669"}
	case domain.StatusAtRisk:
		return Gradient{From: "#F59E0B", To: "#D97706"}
	case domain.StatusDelayed:
		return Gradient{From: "#EF4444", To: "#DC2626"}
	case domain.StatusCompleted:
		return Gradient{From: "#60A5FA", To: "#3B82F6"}
	default:
		return Gradient{From: "#94A3B8", To: "#64748B"}
	}
}
