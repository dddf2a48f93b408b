package inline

import (
	"image"
	"image/draw"
	"math"

	xdraw "golang.org/x/image/draw"
)

// ResizeToFit scales img down to fit maxCols x maxRows terminal cells of
// cellW x cellH pixels, keeping its aspect ratio. Images that already fit
// are returned unchanged. Non-positive sizes fall back to one cell and the
// default 8x16 cell.
func ResizeToFit(img image.Image, maxCols, maxRows, cellW, cellH int) image.Image {
	if img == nil {
		return nil
	}
	if cellW <= 0 {
		cellW = 8
	}
	if cellH <= 0 {
		cellH = 16
	}
	maxW := max(maxCols, 1) * cellW
	maxH := max(maxRows, 1) * cellH

	b := img.Bounds()
	srcW, srcH := b.Dx(), b.Dy()
	if srcW <= 0 || srcH <= 0 || (srcW <= maxW && srcH <= maxH) {
		return img
	}

	scale := math.Min(float64(maxW)/float64(srcW), float64(maxH)/float64(srcH))
	dstW := max(int(math.Round(float64(srcW)*scale)), 1)
	dstH := max(int(math.Round(float64(srcH)*scale)), 1)

	dst := image.NewNRGBA(image.Rect(0, 0, dstW, dstH))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Over, nil)
	return dst
}

// toNRGBA converts src to *image.NRGBA, reusing it when it already is one.
func toNRGBA(src image.Image) *image.NRGBA {
	if n, ok := src.(*image.NRGBA); ok {
		return n
	}
	b := src.Bounds()
	dst := image.NewNRGBA(b)
	draw.Draw(dst, b, src, b.Min, draw.Src)
	return dst
}
