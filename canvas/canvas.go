// Package canvas implements chart.Surface on an in-memory RGBA image.
//
// Paths are rasterized with golang.org/x/image/vector: strokes become one
// quad per segment plus a small octagon at each joint, fills become a single
// polygon per sub-path. The finished frame can be encoded as PNG for the
// terminal image renderer.
package canvas

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"

	"golang.org/x/image/vector"

	"gitlab.com/tinyland/lab/sysdash/chart"
)

// ErrInvalidSize is returned by New for non-positive dimensions.
var ErrInvalidSize = errors.New("canvas dimensions must be positive")

// Canvas is a fixed-size raster drawing surface.
type Canvas struct {
	img *image.RGBA

	strokeColor color.Color
	strokeWidth float64

	// subpaths holds the current path. The last entry is the sub-path that
	// LineTo extends.
	subpaths []subpath
}

type subpath struct {
	points []chart.Point
	closed bool
}

// New creates a transparent canvas of the given pixel size.
func New(width, height int) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("new canvas %dx%d: %w", width, height, ErrInvalidSize)
	}
	return &Canvas{
		img:         image.NewRGBA(image.Rect(0, 0, width, height)),
		strokeColor: color.Black,
		strokeWidth: 1,
	}, nil
}

// Size returns the canvas dimensions in pixels.
func (c *Canvas) Size() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

// Image returns the backing image. It is overwritten by later draws.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// ClearRect resets the rectangle to fully transparent.
func (c *Canvas) ClearRect(x, y, w, h float64) {
	r := image.Rect(
		int(math.Floor(x)), int(math.Floor(y)),
		int(math.Ceil(x+w)), int(math.Ceil(y+h)),
	).Intersect(c.img.Bounds())
	draw.Draw(c.img, r, image.Transparent, image.Point{}, draw.Src)
}

// SetStroke sets the color and line width used by Stroke.
func (c *Canvas) SetStroke(col color.Color, width float64) {
	c.strokeColor = col
	c.strokeWidth = width
}

// BeginPath discards the current path.
func (c *Canvas) BeginPath() {
	c.subpaths = c.subpaths[:0]
}

// MoveTo starts a new sub-path at (x, y).
func (c *Canvas) MoveTo(x, y float64) {
	c.subpaths = append(c.subpaths, subpath{points: []chart.Point{{X: x, Y: y}}})
}

// LineTo extends the current sub-path to (x, y). Without a current
// sub-path it behaves like MoveTo.
func (c *Canvas) LineTo(x, y float64) {
	if len(c.subpaths) == 0 || c.current().closed {
		c.MoveTo(x, y)
		return
	}
	sp := c.current()
	sp.points = append(sp.points, chart.Point{X: x, Y: y})
}

// ClosePath closes the current sub-path. A following LineTo starts a new
// sub-path at the closed sub-path's first point.
func (c *Canvas) ClosePath() {
	if len(c.subpaths) == 0 {
		return
	}
	sp := c.current()
	if sp.closed {
		return
	}
	sp.closed = true
	start := sp.points[0]
	c.subpaths = append(c.subpaths, subpath{points: []chart.Point{start}})
}

// Stroke draws the outline of every sub-path with the current stroke.
func (c *Canvas) Stroke() {
	if c.strokeWidth <= 0 {
		return
	}
	w, h := c.Size()
	z := vector.NewRasterizer(w, h)
	z.DrawOp = draw.Over

	half := c.strokeWidth / 2
	drawn := false
	for _, sp := range c.subpaths {
		pts := sp.points
		if sp.closed && len(pts) > 1 {
			pts = append(append([]chart.Point{}, pts...), pts[0])
		}
		for i := 1; i < len(pts); i++ {
			if addSegment(z, pts[i-1], pts[i], half) {
				drawn = true
			}
		}
		for i := 1; i < len(pts)-1; i++ {
			addJoint(z, pts[i], half)
		}
	}
	if !drawn {
		return
	}
	z.Draw(c.img, c.img.Bounds(), image.NewUniform(c.strokeColor), image.Point{})
}

// FillLinearGradient fills every sub-path (implicitly closed) with a
// gradient running from (x0, y0) to (x1, y1).
func (c *Canvas) FillLinearGradient(x0, y0, x1, y1 float64, stops []chart.GradientStop) {
	if len(stops) == 0 {
		return
	}
	w, h := c.Size()
	z := vector.NewRasterizer(w, h)
	z.DrawOp = draw.Over

	filled := false
	for _, sp := range c.subpaths {
		if len(sp.points) < 3 {
			continue
		}
		z.MoveTo(float32(sp.points[0].X), float32(sp.points[0].Y))
		for _, p := range sp.points[1:] {
			z.LineTo(float32(p.X), float32(p.Y))
		}
		z.ClosePath()
		filled = true
	}
	if !filled {
		return
	}
	src := newLinearGradient(x0, y0, x1, y1, stops)
	z.Draw(c.img, c.img.Bounds(), src, image.Point{})
}

// PNG encodes the current frame.
func (c *Canvas) PNG() ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, c.img); err != nil {
		return nil, fmt.Errorf("encode canvas: %w", err)
	}
	return buf.Bytes(), nil
}

func (c *Canvas) current() *subpath {
	return &c.subpaths[len(c.subpaths)-1]
}

// addSegment adds the quad covering a line from a to b with half-width hw.
// Every quad is wound the same way so overlapping quads accumulate rather
// than cancel. Zero-length segments are skipped.
func addSegment(z *vector.Rasterizer, a, b chart.Point, hw float64) bool {
	dx, dy := b.X-a.X, b.Y-a.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return false
	}
	nx, ny := -dy/length*hw, dx/length*hw

	z.MoveTo(float32(a.X+nx), float32(a.Y+ny))
	z.LineTo(float32(b.X+nx), float32(b.Y+ny))
	z.LineTo(float32(b.X-nx), float32(b.Y-ny))
	z.LineTo(float32(a.X-nx), float32(a.Y-ny))
	z.ClosePath()
	return true
}

// addJoint rounds off a polyline corner with an octagon of radius r, wound
// the same way as addSegment's quads.
func addJoint(z *vector.Rasterizer, p chart.Point, r float64) {
	const sides = 8
	for i := 0; i <= sides; i++ {
		theta := -float64(i) * 2 * math.Pi / sides
		x := float32(p.X + r*math.Cos(theta))
		y := float32(p.Y + r*math.Sin(theta))
		if i == 0 {
			z.MoveTo(x, y)
			continue
		}
		z.LineTo(x, y)
	}
	z.ClosePath()
}
