package raster

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/disintegration/imaging"
)

// SheetOptions lay out a contact sheet.
type SheetOptions struct {
	Columns    int         // default 2
	Gap        int         // pixels between cells
	CellWidth  int         // 0 keeps each image's own width
	Background color.Color // default white
}

// Sheet arranges images on a grid, left to right then top to bottom. When
// CellWidth is set every image is fitted into CellWidth pixels of width,
// keeping its aspect ratio. Rows are as tall as their tallest image.
func Sheet(images []image.Image, opts SheetOptions) (*image.NRGBA, error) {
	if len(images) == 0 {
		return nil, fmt.Errorf("raster: sheet has no images")
	}
	if opts.Columns <= 0 {
		opts.Columns = 2
	}
	if opts.Gap < 0 {
		opts.Gap = 0
	}
	if opts.Background == nil {
		opts.Background = color.White
	}

	cells := make([]image.Image, len(images))
	for i, img := range images {
		b := img.Bounds()
		if opts.CellWidth > 0 && b.Dx() != opts.CellWidth {
			h := b.Dy() * opts.CellWidth / max(b.Dx(), 1)
			img = imaging.Resize(img, opts.CellWidth, max(h, 1), imaging.Lanczos)
		}
		cells[i] = img
	}

	cols := min(opts.Columns, len(cells))
	rows := (len(cells) + cols - 1) / cols
	colW := make([]int, cols)
	rowH := make([]int, rows)
	for i, img := range cells {
		b := img.Bounds()
		colW[i%cols] = max(colW[i%cols], b.Dx())
		rowH[i/cols] = max(rowH[i/cols], b.Dy())
	}

	width := opts.Gap * (cols + 1)
	for _, w := range colW {
		width += w
	}
	height := opts.Gap * (rows + 1)
	for _, h := range rowH {
		height += h
	}

	dst := imaging.New(width, height, opts.Background)
	y := opts.Gap
	for r := 0; r < rows; r++ {
		x := opts.Gap
		for c := 0; c < cols; c++ {
			i := r*cols + c
			if i >= len(cells) {
				break
			}
			dst = imaging.Paste(dst, cells[i], image.Pt(x, y))
			x += colW[c] + opts.Gap
		}
		y += rowH[r] + opts.Gap
	}
	return dst, nil
}

// Thumbnail scales img down to fit within w x h.
func Thumbnail(img image.Image, w, h int) *image.NRGBA {
	return imaging.Fit(img, w, h, imaging.Lanczos)
}

// EncodeSheetPNG writes a sheet as PNG.
func EncodeSheetPNG(w io.Writer, sheet image.Image) error {
	if err := imaging.Encode(w, sheet, imaging.PNG); err != nil {
		return fmt.Errorf("raster: encode sheet: %w", err)
	}
	return nil
}
