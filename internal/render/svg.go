package render

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/alexanderramin/gantt/internal/domain"
	"github.com/alexanderramin/gantt/internal/palette"
	"github.com/alexanderramin/gantt/internal/timeline"
)

// SVG renders the snapshot as a standalone SVG document.
func SVG(snap timeline.Snapshot, s domain.Schedule, opts Options) string {
	sc := buildScene(snap, s, opts)

	var svg strings.Builder
	svg.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg width="%s" height="%s" viewBox="0 0 %s %s" xmlns="http://www.w3.org/2000/svg" font-family="%s">
<defs>
<marker id="arrowhead" markerWidth="10" markerHeight="7" refX="9" refY="3.5" orient="auto">
<polygon points="0 0, 10 3.5, 0 7" fill="%s"/>
</marker>
`, num(sc.Width), num(sc.Height), num(sc.Width), num(sc.Height), escapeXML(opts.FontFamily), colorDependency))
	for _, st := range []domain.Status{domain.StatusNotStarted, domain.StatusOnTrack, domain.StatusAtRisk, domain.StatusDelayed, domain.StatusCompleted} {
		g := palette.StatusGradient(st)
		svg.WriteString(fmt.Sprintf(`<linearGradient id="status-%s" x1="0" y1="0" x2="1" y2="0"><stop offset="0" stop-color="%s"/><stop offset="1" stop-color="%s"/></linearGradient>
`, st, g.From, g.To))
	}
	svg.WriteString("</defs>\n")

	for _, shape := range sc.Shapes {
		switch v := shape.(type) {
		case rect:
			writeRect(&svg, v)
		case line:
			svg.WriteString(fmt.Sprintf(`<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="%s"%s/>`,
				num(v.X1), num(v.Y1), num(v.X2), num(v.Y2), v.Stroke, num(v.Width), dashAttr(v.Dash)))
		case polygon:
			pts := make([]string, len(v.Points))
			for i, p := range v.Points {
				pts[i] = num(p.X) + "," + num(p.Y)
			}
			svg.WriteString(fmt.Sprintf(`<polygon points="%s" fill="%s"%s%s/>`,
				strings.Join(pts, " "), v.Fill, opacityAttr(v.Opacity), strokeAttr(v.Stroke, v.StrokeWidth)))
		case connector:
			svg.WriteString(fmt.Sprintf(`<path d="%s" fill="none" stroke="%s" stroke-width="%s" marker-end="url(#arrowhead)"/>`,
				pathData(v.Points), v.Stroke, num(v.Width)))
		case text:
			anchor := ""
			if v.Anchor != "" && v.Anchor != "start" {
				anchor = fmt.Sprintf(` text-anchor="%s"`, v.Anchor)
			}
			weight := ""
			if v.Bold {
				weight = ` font-weight="600"`
			}
			svg.WriteString(fmt.Sprintf(`<text x="%s" y="%s" font-size="%s" fill="%s"%s%s>%s</text>`,
				num(v.X), num(v.Y), num(v.Size), v.Fill, anchor, weight, escapeXML(v.Value)))
		}
		svg.WriteString("\n")
	}

	svg.WriteString("</svg>\n")
	return svg.String()
}

// WriteSVG renders to w.
func WriteSVG(w io.Writer, snap timeline.Snapshot, s domain.Schedule, opts Options) error {
	_, err := io.WriteString(w, SVG(snap, s, opts))
	return err
}

func writeRect(svg *strings.Builder, r rect) {
	fill := r.Fill
	if r.Gradient != "" {
		fill = "url(#status-" + r.Gradient + ")"
	}
	if fill == "" {
		fill = "none"
	}
	corner := ""
	if r.R > 0 {
		corner = fmt.Sprintf(` rx="%s"`, num(r.R))
	}
	svg.WriteString(fmt.Sprintf(`<rect x="%s" y="%s" width="%s" height="%s"%s fill="%s"%s%s/>`,
		num(r.X), num(r.Y), num(r.W), num(r.H), corner, fill, opacityAttr(r.Opacity), strokeAttr(r.Stroke, r.StrokeWidth)))
}

// pathData draws the connector as moves along its points. A three point
// vertical-then-horizontal route becomes "M x,y V y H x".
func pathData(pts []timeline.Point) string {
	if len(pts) == 3 && pts[0].X == pts[1].X && pts[1].Y == pts[2].Y {
		return fmt.Sprintf("M %s,%s V %s H %s", num(pts[0].X), num(pts[0].Y), num(pts[1].Y), num(pts[2].X))
	}
	var b strings.Builder
	for i, p := range pts {
		if i == 0 {
			b.WriteString("M ")
		} else {
			b.WriteString(" L ")
		}
		b.WriteString(num(p.X) + "," + num(p.Y))
	}
	return b.String()
}

func opacityAttr(o float64) string {
	if o <= 0 || o >= 1 {
		return ""
	}
	return fmt.Sprintf(` fill-opacity="%s"`, num(o))
}

func strokeAttr(stroke string, width float64) string {
	if stroke == "" || width <= 0 {
		return ""
	}
	return fmt.Sprintf(` stroke="%s" stroke-width="%s"`, stroke, num(width))
}

func dashAttr(dash []float64) string {
	if len(dash) == 0 {
		return ""
	}
	parts := make([]string, len(dash))
	for i, d := range dash {
		parts[i] = num(d)
	}
	return fmt.Sprintf(` stroke-dasharray="%s"`, strings.Join(parts, " "))
}

// num formats a coordinate rounded to two decimals without trailing zeros.
func num(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}

func escapeXML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, "\"", "&quot;")
	s = strings.ReplaceAll(s, "'", "&apos;")
	return s
}
