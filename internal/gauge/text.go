package gauge

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// renderOutlinedText rasterizes text into a tight RGBA image with a filled
// center over an outline stroke. The stroke is produced by drawing the text
// in the outline color at every offset inside a disc of strokeWidth radius,
// then drawing the fill color at the center.
func renderOutlinedText(text string, face font.Face, fill, outline color.Color, strokeWidth int) *image.RGBA {
	bounds, _ := font.BoundString(face, text)

	w := (bounds.Max.X - bounds.Min.X).Ceil() + 2*strokeWidth
	h := (bounds.Max.Y - bounds.Min.Y).Ceil() + 2*strokeWidth
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))

	// Place the origin so the glyph box plus stroke fits the image.
	origin := fixed.Point26_6{
		X: fixed.I(strokeWidth) - bounds.Min.X,
		Y: fixed.I(strokeWidth) - bounds.Min.Y,
	}

	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(outline),
		Face: face,
	}
	for dy := -strokeWidth; dy <= strokeWidth; dy++ {
		for dx := -strokeWidth; dx <= strokeWidth; dx++ {
			if dx*dx+dy*dy >= strokeWidth*strokeWidth {
				continue
			}
			d.Dot = fixed.Point26_6{X: origin.X + fixed.I(dx), Y: origin.Y + fixed.I(dy)}
			d.DrawString(text)
		}
	}

	d.Src = image.NewUniform(fill)
	d.Dot = origin
	d.DrawString(text)

	return img
}
