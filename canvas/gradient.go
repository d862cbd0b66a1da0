package canvas

import (
	"image"
	"image/color"
	"math"

	"gitlab.com/tinyland/lab/sysdash/chart"
)

// linearGradient is an unbounded image whose color varies along the vector
// from (x0, y0) to (x1, y1). Positions before the first stop or after the
// last stop take that stop's color.
type linearGradient struct {
	x0, y0 float64
	dx, dy float64
	lenSq  float64
	stops  []chart.GradientStop
}

func newLinearGradient(x0, y0, x1, y1 float64, stops []chart.GradientStop) *linearGradient {
	dx, dy := x1-x0, y1-y0
	return &linearGradient{
		x0: x0, y0: y0,
		dx: dx, dy: dy,
		lenSq: dx*dx + dy*dy,
		stops: stops,
	}
}

func (g *linearGradient) ColorModel() color.Model {
	return color.NRGBAModel
}

func (g *linearGradient) Bounds() image.Rectangle {
	return image.Rect(-1e9, -1e9, 1e9, 1e9)
}

// At samples the gradient at the pixel center.
func (g *linearGradient) At(x, y int) color.Color {
	var t float64
	if g.lenSq > 0 {
		px, py := float64(x)+0.5-g.x0, float64(y)+0.5-g.y0
		t = (px*g.dx + py*g.dy) / g.lenSq
	}
	return g.colorAt(t)
}

func (g *linearGradient) colorAt(t float64) color.NRGBA {
	first, last := g.stops[0], g.stops[len(g.stops)-1]
	if t <= first.Offset {
		return first.Color
	}
	if t >= last.Offset {
		return last.Color
	}

	for i := 1; i < len(g.stops); i++ {
		a, b := g.stops[i-1], g.stops[i]
		if t > b.Offset {
			continue
		}
		span := b.Offset - a.Offset
		if span <= 0 {
			return b.Color
		}
		f := (t - a.Offset) / span
		return color.NRGBA{
			R: lerp8(a.Color.R, b.Color.R, f),
			G: lerp8(a.Color.G, b.Color.G, f),
			B: lerp8(a.Color.B, b.Color.B, f),
			A: lerp8(a.Color.A, b.Color.A, f),
		}
	}
	return last.Color
}

func lerp8(a, b uint8, f float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*f))
}
