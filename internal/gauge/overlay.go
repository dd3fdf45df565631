package gauge

import (
	"image"
	"image/draw"

	xdraw "golang.org/x/image/draw"
)

// overlayRGBA alpha-composites src onto dst at offset (x, y). The target
// rectangle is clipped to dst's bounds on all sides, so partially
// off-canvas overlays are cropped rather than rejected. Blending uses the
// source alpha channel as weight over the destination RGB.
func overlayRGBA(dst *image.RGBA, src image.Image, x, y int) {
	b := src.Bounds()
	r := image.Rect(x, y, x+b.Dx(), y+b.Dy())
	draw.Draw(dst, r, src, b.Min, draw.Over)
}

// cloneRGBA returns a pixel-for-pixel copy of src.
func cloneRGBA(src *image.RGBA) *image.RGBA {
	dst := image.NewRGBA(src.Bounds())
	copy(dst.Pix, src.Pix)
	return dst
}

// resizeRGBA scales src to w x h using Catmull-Rom resampling. Dimensions
// are clamped to at least one pixel.
func resizeRGBA(src image.Image, w, h int) *image.RGBA {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}
