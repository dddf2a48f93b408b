package raster

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"testing"

	"gitlab.com/tinyland/lab/linechart/pkg/chartdata"
	"gitlab.com/tinyland/lab/linechart/pkg/render"
	"gitlab.com/tinyland/lab/linechart/pkg/scene"
	"gitlab.com/tinyland/lab/linechart/pkg/viewport"
)

func chartCanvas(t *testing.T, width int) *scene.Canvas {
	t.Helper()
	s := chartdata.Single{Points: []chartdata.SinglePoint{
		{X: 0, Y: chartdata.Some(1)},
		{X: 1, Y: chartdata.Some(5)},
		{X: 2, Y: chartdata.Some(3)},
	}}
	c := scene.NewCanvas(0, 0)
	render.DrawSingle(c, s, viewport.Dimensions{Width: width, Height: 400}, render.DefaultOptions())
	return c
}

func newTestImage(w, h int, c color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

// --- Rasterize ---

func TestRasterizeDrawsLine(t *testing.T) {
	img, err := Rasterize(chartCanvas(t, 800), DefaultOptions())
	if err != nil {
		t.Fatalf("Rasterize: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 800 || b.Dy() != 400 {
		t.Fatalf("bounds = %v, want 800x400", b)
	}

	r, g, bl, _ := img.At(799, 0).RGBA()
	if r>>8 != 0xff || g>>8 != 0xff || bl>>8 != 0xff {
		t.Errorf("corner = %d,%d,%d, want white background", r>>8, g>>8, bl>>8)
	}

	// steelblue is the only color with much more blue than red.
	blueish := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, _, bl, _ := img.At(x, y).RGBA()
			if int(bl>>8)-int(r>>8) > 50 {
				blueish++
			}
		}
	}
	if blueish == 0 {
		t.Error("no steelblue pixels found")
	}
}

func TestRasterizeScale(t *testing.T) {
	img, err := Rasterize(chartCanvas(t, 400), Options{Scale: 2})
	if err != nil {
		t.Fatalf("Rasterize: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 800 || b.Dy() != 800 {
		t.Errorf("bounds = %v, want 800x800", b)
	}
}

func TestRasterizeCanvasBackground(t *testing.T) {
	c := chartCanvas(t, 200)
	c.Background = "#1e1e1e"
	img, err := Rasterize(c, DefaultOptions())
	if err != nil {
		t.Fatalf("Rasterize: %v", err)
	}
	r, g, b, _ := img.At(199, 0).RGBA()
	if r>>8 != 0x1e || g>>8 != 0x1e || b>>8 != 0x1e {
		t.Errorf("corner = %d,%d,%d, want #1e1e1e", r>>8, g>>8, b>>8)
	}
}

func TestRasterizeErrors(t *testing.T) {
	if _, err := Rasterize(nil, DefaultOptions()); err == nil {
		t.Error("expected error for nil canvas")
	}
	if _, err := Rasterize(scene.NewCanvas(0, 400), DefaultOptions()); err == nil {
		t.Error("expected error for zero-width canvas")
	}
}

func TestEncodePNG(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodePNG(&buf, chartCanvas(t, 300), DefaultOptions()); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 300 || b.Dy() != 400 {
		t.Errorf("bounds = %v", b)
	}
}

// --- Sheet ---

func TestSheetGrid(t *testing.T) {
	red := newTestImage(100, 50, color.NRGBA{255, 0, 0, 255})
	sheet, err := Sheet([]image.Image{red, red, red}, SheetOptions{Columns: 2, Gap: 10})
	if err != nil {
		t.Fatalf("Sheet: %v", err)
	}
	if b := sheet.Bounds(); b.Dx() != 230 || b.Dy() != 130 {
		t.Fatalf("bounds = %v, want 230x130", b)
	}
	if c := sheet.NRGBAAt(5, 5); c != (color.NRGBA{255, 255, 255, 255}) {
		t.Errorf("gap pixel = %v, want white", c)
	}
	if c := sheet.NRGBAAt(15, 15); c.R != 255 || c.G != 0 {
		t.Errorf("first cell pixel = %v, want red", c)
	}
	// Third image starts the second row in the first column.
	if c := sheet.NRGBAAt(15, 75); c.R != 255 || c.G != 0 {
		t.Errorf("third cell pixel = %v, want red", c)
	}
	// Second row, second column stays empty.
	if c := sheet.NRGBAAt(200, 100); c != (color.NRGBA{255, 255, 255, 255}) {
		t.Errorf("empty cell pixel = %v, want white", c)
	}
}

func TestSheetCellWidth(t *testing.T) {
	img := newTestImage(100, 50, color.Black)
	sheet, err := Sheet([]image.Image{img}, SheetOptions{Columns: 3, CellWidth: 50})
	if err != nil {
		t.Fatalf("Sheet: %v", err)
	}
	if b := sheet.Bounds(); b.Dx() != 50 || b.Dy() != 25 {
		t.Errorf("bounds = %v, want 50x25", b)
	}
}

func TestSheetEmpty(t *testing.T) {
	if _, err := Sheet(nil, SheetOptions{}); err == nil {
		t.Error("expected error for empty sheet")
	}
}

func TestThumbnail(t *testing.T) {
	th := Thumbnail(newTestImage(800, 400, color.White), 200, 200)
	if b := th.Bounds(); b.Dx() != 200 || b.Dy() != 100 {
		t.Errorf("bounds = %v, want 200x100", b)
	}
}

// --- RasterizeAll ---

func TestRasterizeAllKeepsOrder(t *testing.T) {
	widths := []int{100, 200, 300, 400, 500}
	canvases := make([]*scene.Canvas, len(widths))
	for i, w := range widths {
		canvases[i] = chartCanvas(t, w)
	}
	images, err := RasterizeAll(context.Background(), canvases, DefaultOptions(), 3)
	if err != nil {
		t.Fatalf("RasterizeAll: %v", err)
	}
	for i, img := range images {
		if img.Bounds().Dx() != widths[i] {
			t.Errorf("image %d width = %d, want %d", i, img.Bounds().Dx(), widths[i])
		}
	}
}

func TestRasterizeAllError(t *testing.T) {
	canvases := []*scene.Canvas{chartCanvas(t, 100), scene.NewCanvas(0, 0)}
	if _, err := RasterizeAll(context.Background(), canvases, DefaultOptions(), 0); err == nil {
		t.Error("expected error for zero-size canvas")
	}
}

func TestRasterizeAllCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := RasterizeAll(ctx, []*scene.Canvas{chartCanvas(t, 100)}, DefaultOptions(), 1); err == nil {
		t.Error("expected error for cancelled context")
	}
}

func TestRasterizeNamedAndFunctionalColors(t *testing.T) {
	s := chartdata.Single{Points: []chartdata.SinglePoint{
		{X: 0, Y: chartdata.Some(1)},
		{X: 1, Y: chartdata.Some(5)},
	}}
	tests := []struct {
		color string
		match func(r, g, b int) bool
	}{
		{"orchid", func(r, g, b int) bool { return r-g > 50 && b-g > 50 }},
		{"darkorange", func(r, g, b int) bool { return r-b > 80 }},
		{"rgb(10,20,30)", func(r, g, b int) bool { return b-r > 5 && r < 200 }},
	}
	for _, tt := range tests {
		t.Run(tt.color, func(t *testing.T) {
			c := scene.NewCanvas(0, 0)
			render.DrawSingle(c, s, viewport.Dimensions{Width: 300, Height: 200}, render.DefaultOptions().WithColor(tt.color))
			img, err := Rasterize(c, DefaultOptions())
			if err != nil {
				t.Fatalf("Rasterize: %v", err)
			}
			n := 0
			b := img.Bounds()
			for y := b.Min.Y; y < b.Max.Y; y++ {
				for x := b.Min.X; x < b.Max.X; x++ {
					r, g, bl, _ := img.At(x, y).RGBA()
					if tt.match(int(r>>8), int(g>>8), int(bl>>8)) {
						n++
					}
				}
			}
			if n == 0 {
				t.Errorf("no pixels stroked with %s", tt.color)
			}
		})
	}
}
