package render

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/alexanderramin/gantt/internal/domain"
	"github.com/alexanderramin/gantt/internal/timeline"
	"github.com/gogpu/gg"
)

// MaxPNGPixels bounds the raster size of a PNG render.
const MaxPNGPixels = 64 << 20

// ErrImageTooLarge is returned when a chart would exceed MaxPNGPixels.
var ErrImageTooLarge = errors.New("chart too large to rasterise")

// PNG rasterises the snapshot. Text needs a loaded font face, so the PNG
// carries shapes only; labels are an SVG feature.
func PNG(w io.Writer, snap timeline.Snapshot, s domain.Schedule, opts Options) error {
	sc := buildScene(snap, s, opts)
	width, height := int(math.Ceil(sc.Width)), int(math.Ceil(sc.Height))
	if width <= 0 || height <= 0 {
		return fmt.Errorf("render png: empty chart (%dx%d)", width, height)
	}
	if width*height > MaxPNGPixels {
		return fmt.Errorf("%w: %dx%d", ErrImageTooLarge, width, height)
	}

	dc := gg.NewContext(width, height)
	defer dc.Close()
	dc.ClearWithColor(gg.Hex(colorBackground))

	for _, shape := range sc.Shapes {
		if err := drawShape(dc, shape); err != nil {
			return fmt.Errorf("render png: %w", err)
		}
	}
	return dc.EncodePNG(w)
}

func drawShape(dc *gg.Context, shape any) error {
	switch v := shape.(type) {
	case rect:
		if v.W <= 0 || v.H <= 0 {
			return nil
		}
		if v.Fill != "" {
			setFill(dc, v.Fill, v.Opacity)
			traceRect(dc, v)
			if err := dc.Fill(); err != nil {
				return err
			}
		}
		if v.Stroke != "" && v.StrokeWidth > 0 {
			dc.SetHexColor(v.Stroke)
			dc.SetLineWidth(v.StrokeWidth)
			traceRect(dc, v)
			return dc.Stroke()
		}
	case line:
		dc.SetHexColor(v.Stroke)
		dc.SetLineWidth(v.Width)
		if len(v.Dash) > 0 {
			dc.SetDash(v.Dash...)
		}
		dc.MoveTo(v.X1, v.Y1)
		dc.LineTo(v.X2, v.Y2)
		err := dc.Stroke()
		dc.ClearDash()
		return err
	case polygon:
		tracePolygon(dc, v.Points)
		setFill(dc, v.Fill, v.Opacity)
		if err := dc.Fill(); err != nil {
			return err
		}
		if v.Stroke != "" && v.StrokeWidth > 0 {
			tracePolygon(dc, v.Points)
			dc.SetHexColor(v.Stroke)
			dc.SetLineWidth(v.StrokeWidth)
			return dc.Stroke()
		}
	case connector:
		if len(v.Points) < 2 {
			return nil
		}
		dc.SetHexColor(v.Stroke)
		dc.SetLineWidth(v.Width)
		dc.MoveTo(v.Points[0].X, v.Points[0].Y)
		for _, p := range v.Points[1:] {
			dc.LineTo(p.X, p.Y)
		}
		if err := dc.Stroke(); err != nil {
			return err
		}
		end := v.Points[len(v.Points)-1]
		tracePolygon(dc, []timeline.Point{{X: end.X, Y: end.Y}, {X: end.X - 9, Y: end.Y - 3.5}, {X: end.X - 9, Y: end.Y + 3.5}})
		return dc.Fill()
	}
	return nil
}

func setFill(dc *gg.Context, hex string, opacity float64) {
	c := gg.Hex(hex)
	if opacity > 0 && opacity < 1 {
		c.A *= opacity
	}
	dc.SetRGBA(c.R, c.G, c.B, c.A)
}

func traceRect(dc *gg.Context, r rect) {
	if r.R > 0 {
		dc.DrawRoundedRectangle(r.X, r.Y, r.W, r.H, math.Min(r.R, math.Min(r.W, r.H)/2))
		return
	}
	dc.DrawRectangle(r.X, r.Y, r.W, r.H)
}

func tracePolygon(dc *gg.Context, pts []timeline.Point) {
	for i, p := range pts {
		if i == 0 {
			dc.MoveTo(p.X, p.Y)
		} else {
			dc.LineTo(p.X, p.Y)
		}
	}
	dc.ClosePath()
}
