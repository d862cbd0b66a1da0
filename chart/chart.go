// Package chart renders a numeric series as a line with a gradient-filled
// area underneath. It draws through the Surface interface so the same
// renderer can target the raster canvas, a recorder in tests, or any other
// 2D context.
package chart

import (
	"image/color"
)

const (
	// StrokeWidth is the line width of the series polyline, in surface units.
	StrokeWidth = 2

	// FillAlphaTop is the alpha of the gradient at the top edge (~25%).
	FillAlphaTop = 0x40

	// MaxValue is the value mapped to the top edge of the surface.
	MaxValue = 100
)

// Point is a position on a surface. Y grows downwards; y=0 is the top edge.
type Point struct {
	X, Y float64
}

// GradientStop is one color stop of a linear gradient. Offset is in [0,1]
// along the gradient vector.
type GradientStop struct {
	Offset float64
	Color  color.NRGBA
}

// Surface is the 2D drawing context a chart is rendered onto. Its pixel
// dimensions are fixed when the surface is created.
type Surface interface {
	// Size returns the surface dimensions.
	Size() (width, height int)
	// ClearRect erases the given rectangle to fully transparent.
	ClearRect(x, y, w, h float64)
	// SetStroke sets the color and width used by Stroke.
	SetStroke(c color.Color, width float64)
	// BeginPath discards the current path.
	BeginPath()
	// MoveTo starts a new sub-path at (x, y).
	MoveTo(x, y float64)
	// LineTo adds a straight segment from the current point to (x, y).
	LineTo(x, y float64)
	// Stroke outlines the current path with the stroke settings.
	Stroke()
	// ClosePath joins the current point back to the sub-path start.
	ClosePath()
	// FillLinearGradient fills the current path with a gradient running from
	// (x0, y0) to (x1, y1).
	FillLinearGradient(x0, y0, x1, y1 float64, stops []GradientStop)
}

// MapPoints maps series values onto a width×height surface. Index i lands at
// x = i*width/(len-1); value v lands at y = height - v/100*height, so larger
// values sit higher. Fewer than two values yield nil.
func MapPoints(values []float64, width, height int) []Point {
	if len(values) < 2 {
		return nil
	}

	w, h := float64(width), float64(height)
	stepX := w / float64(len(values)-1)

	points := make([]Point, len(values))
	for i, v := range values {
		points[i] = Point{
			X: float64(i) * stepX,
			Y: h - (v/MaxValue)*h,
		}
	}
	return points
}

// Render clears s and draws values as a polyline in c with a vertical
// gradient fill below it, from c at FillAlphaTop down to transparent.
// With fewer than two values only the clear happens.
func Render(s Surface, values []float64, c color.Color) {
	width, height := s.Size()
	w, h := float64(width), float64(height)

	s.ClearRect(0, 0, w, h)

	points := MapPoints(values, width, height)
	if points == nil {
		return
	}

	s.SetStroke(c, StrokeWidth)
	s.BeginPath()
	s.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		s.LineTo(p.X, p.Y)
	}
	s.Stroke()

	// Extend the stroked line down to the bottom corners to close the area.
	s.LineTo(w, h)
	s.LineTo(0, h)
	s.ClosePath()

	s.FillLinearGradient(0, 0, 0, h, AreaGradient(c))
}

// AreaGradient returns the two stops used for the area under a series.
func AreaGradient(c color.Color) []GradientStop {
	top := color.NRGBAModel.Convert(c).(color.NRGBA)
	top.A = FillAlphaTop
	bottom := top
	bottom.A = 0
	return []GradientStop{
		{Offset: 0, Color: top},
		{Offset: 1, Color: bottom},
	}
}
