package canvas

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// labelInset is the distance of the label baseline from the top-left corner.
const labelInset = 4

// DrawLabel stamps text in the top-left corner with a one-pixel shadow so it
// stays legible over the series fill.
func (c *Canvas) DrawLabel(text string, col color.Color) {
	if text == "" {
		return
	}
	face := basicfont.Face7x13
	x := labelInset
	y := labelInset + face.Metrics().Ascent.Ceil()

	shadow := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(color.NRGBA{A: 0xb4}),
		Face: face,
		Dot:  fixed.P(x+1, y+1),
	}
	shadow.DrawString(text)

	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}
