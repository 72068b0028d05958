package timeline

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/alexanderramin/gantt/internal/domain"
)

// RouteMetrics controls where dependency lines attach to bars.
type RouteMetrics struct {
	// ArrowOffset insets both endpoints horizontally so the arrowhead
	// lands on the bar instead of its edge.
	ArrowOffset float64
	// HalfTaskHeight drops the endpoints from the row top to the row middle.
	HalfTaskHeight float64
}

// DefaultRouteMetrics pairs with DefaultRowMetrics.
var DefaultRouteMetrics = RouteMetrics{ArrowOffset: 8, HalfTaskHeight: DefaultRowMetrics.TaskHeight / 2}

// Point is a chart-space coordinate.
type Point struct {
	X float64
	Y float64
}

// DependencyPath is one finish-to-start connector.
type DependencyPath struct {
	FromID string
	ToID   string
	Points []Point // start, corner, end
}

// SVGPath renders the connector as a vertical-then-horizontal path.
func (d DependencyPath) SVGPath() string {
	if len(d.Points) != 3 {
		return ""
	}
	from, corner, to := d.Points[0], d.Points[1], d.Points[2]
	return fmt.Sprintf("M %s,%s V %s H %s", num(from.X), num(from.Y), num(corner.Y), num(to.X))
}

// RouteDependencies emits one orthogonal path per resolvable predecessor
// edge, in schedule order. Each path leaves the predecessor's bar end,
// drops vertically to the successor's row and runs horizontally into the
// successor's bar start. Unknown or self-referencing predecessors are
// skipped; converging paths may overlap.
func RouteDependencies(s domain.Schedule, rows RowIndex, start time.Time, dayWidth float64, m RouteMetrics, logger *slog.Logger) []DependencyPath {
	logger = loggerOrNop(logger)
	tasks := s.TaskIndex()

	var paths []DependencyPath
	for _, p := range s.Projects {
		for _, succ := range p.Tasks {
			if len(succ.Dependencies) == 0 {
				continue
			}
			succY, ok := rows.Y(succ.ID)
			if !ok {
				continue
			}
			succBar := BarPosition(succ.Start, succ.End, start, dayWidth)
			to := Point{X: succBar.X + m.ArrowOffset, Y: succY + m.HalfTaskHeight}

			seen := make(map[string]bool, len(succ.Dependencies))
			for _, predID := range succ.Dependencies {
				if predID == succ.ID || seen[predID] {
					continue
				}
				seen[predID] = true

				ref, ok := tasks[predID]
				if !ok {
					logger.Debug("skipping dependency on unknown task", "task", succ.ID, "predecessor", predID)
					continue
				}
				pred := s.Task(ref)
				predY, ok := rows.Y(pred.ID)
				if !ok {
					continue
				}
				predBar := BarPosition(pred.Start, pred.End, start, dayWidth)
				from := Point{X: predBar.End() - m.ArrowOffset, Y: predY + m.HalfTaskHeight}

				paths = append(paths, DependencyPath{
					FromID: pred.ID,
					ToID:   succ.ID,
					Points: []Point{from, {X: from.X, Y: to.Y}, to},
				})
			}
		}
	}
	return paths
}

// DetectCycles reports dependency cycles among tasks. The router only does
// one-hop lookups and cannot loop; this exists for diagnostics.
func DetectCycles(s domain.Schedule) [][]string {
	graph := make(map[string][]string)
	var nodes []string
	for _, p := range s.Projects {
		for _, t := range p.Tasks {
			if _, ok := graph[t.ID]; !ok {
				nodes = append(nodes, t.ID)
			}
			graph[t.ID] = append(graph[t.ID], t.Dependencies...)
		}
	}

	const (
		white = 0 // unvisited
		gray  = 1 // on current path
		black = 2 // done
	)
	color := make(map[string]int, len(nodes))
	var stack []string
	var cycles [][]string

	var visit func(id string)
	visit = func(id string) {
		color[id] = gray
		stack = append(stack, id)
		for _, next := range graph[id] {
			if _, known := graph[next]; !known {
				continue
			}
			switch color[next] {
			case gray:
				cycles = append(cycles, cycleFrom(stack, next))
			case white:
				visit(next)
			}
		}
		stack = stack[:len(stack)-1]
		color[id] = black
	}
	for _, id := range nodes {
		if color[id] == white {
			visit(id)
		}
	}
	return cycles
}

func cycleFrom(stack []string, start string) []string {
	for i, id := range stack {
		if id == start {
			return append([]string(nil), stack[i:]...)
		}
	}
	return nil
}

// DanglingDependencies lists "task -> predecessor" pairs whose predecessor
// does not exist, sorted for stable output.
func DanglingDependencies(s domain.Schedule) []string {
	tasks := s.TaskIndex()
	var out []string
	for _, p := range s.Projects {
		for _, t := range p.Tasks {
			for _, dep := range t.Dependencies {
				if _, ok := tasks[dep]; !ok {
					out = append(out, t.ID+" -> "+dep)
				}
			}
		}
	}
	sort.Strings(out)
	return out
}

// num formats a coordinate without trailing zeros.
func num(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
