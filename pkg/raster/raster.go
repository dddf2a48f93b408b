// Package raster paints scene canvases into bitmaps with fogleman/gg and
// lays several of them out on a contact sheet.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"gitlab.com/tinyland/lab/linechart/pkg/scene"
	"gitlab.com/tinyland/lab/linechart/pkg/shape"
	"gitlab.com/tinyland/lab/linechart/pkg/theme"
)

// Options control rasterization.
type Options struct {
	// Scale multiplies every pixel dimension. Default: 1.
	Scale float64
	// Background fills canvases that have none of their own. Default: white.
	Background color.Color
	// Face draws axis labels. Default: basicfont.Face7x13.
	Face font.Face
}

// DefaultOptions returns white-background, 1x rasterization.
func DefaultOptions() Options {
	return Options{Scale: 1, Background: color.White, Face: basicfont.Face7x13}
}

func (o Options) withDefaults() Options {
	if o.Scale <= 0 {
		o.Scale = 1
	}
	if o.Background == nil {
		o.Background = color.White
	}
	if o.Face == nil {
		o.Face = basicfont.Face7x13
	}
	return o
}

// Rasterize paints c into a new image of c's size times opts.Scale.
func Rasterize(c *scene.Canvas, opts Options) (image.Image, error) {
	dc, err := paint(c, opts)
	if err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

// EncodePNG rasterizes c and writes it as PNG.
func EncodePNG(w io.Writer, c *scene.Canvas, opts Options) error {
	dc, err := paint(c, opts)
	if err != nil {
		return err
	}
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("raster: encode PNG: %w", err)
	}
	return nil
}

func paint(c *scene.Canvas, opts Options) (*gg.Context, error) {
	if c == nil {
		return nil, fmt.Errorf("raster: nil canvas")
	}
	opts = opts.withDefaults()
	w := int(float64(c.Width)*opts.Scale + 0.5)
	h := int(float64(c.Height)*opts.Scale + 0.5)
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("raster: canvas %dx%d has no area", c.Width, c.Height)
	}

	dc := gg.NewContext(w, h)
	if bg, ok := theme.ParseColor(c.Background); ok {
		dc.SetColor(bg)
	} else {
		dc.SetColor(opts.Background)
	}
	dc.Clear()
	dc.Scale(opts.Scale, opts.Scale)
	dc.SetFontFace(opts.Face)

	c.Walk(func(n scene.Node, off scene.Offset) {
		switch n := n.(type) {
		case *scene.Path:
			drawPath(dc, n, off)
		case *scene.Line:
			drawLine(dc, n, off)
		case *scene.Text:
			drawText(dc, n, off)
		}
	})
	return dc, nil
}

func drawPath(dc *gg.Context, p *scene.Path, off scene.Offset) {
	stroke, ok := theme.ParseColor(p.Stroke)
	if !ok || p.Data.Empty() {
		return
	}
	dc.NewSubPath()
	for _, cmd := range p.Data.Commands {
		a := cmd.Args
		switch cmd.Op {
		case shape.OpMove:
			dc.MoveTo(a[0]+off.X, a[1]+off.Y)
		case shape.OpLine:
			dc.LineTo(a[0]+off.X, a[1]+off.Y)
		case shape.OpCubic:
			dc.CubicTo(a[0]+off.X, a[1]+off.Y, a[2]+off.X, a[3]+off.Y, a[4]+off.X, a[5]+off.Y)
		case shape.OpClose:
			dc.ClosePath()
		}
	}
	if fill, ok := theme.ParseColor(p.Fill); ok {
		dc.SetColor(fill)
		dc.FillPreserve()
	}
	width := p.StrokeWidth
	if width <= 0 {
		width = 1
	}
	dc.SetColor(stroke)
	dc.SetLineWidth(width)
	dc.Stroke()
}

func drawLine(dc *gg.Context, l *scene.Line, off scene.Offset) {
	stroke, ok := theme.ParseColor(l.Stroke)
	if !ok {
		return
	}
	dc.SetColor(stroke)
	dc.SetLineWidth(1)
	dc.DrawLine(l.X1+off.X, l.Y1+off.Y, l.X2+off.X, l.Y2+off.Y)
	dc.Stroke()
}

func drawText(dc *gg.Context, t *scene.Text, off scene.Offset) {
	fill, ok := theme.ParseColor(t.Fill)
	if !ok || t.Content == "" {
		return
	}
	var ax, ay float64
	switch t.Anchor {
	case scene.AnchorMiddle:
		ax = 0.5
	case scene.AnchorEnd:
		ax = 1
	}
	switch t.Baseline {
	case scene.BaselineHanging:
		ay = 1
	case scene.BaselineMiddle:
		ay = 0.5
	}
	dc.SetColor(fill)
	dc.DrawStringAnchored(t.Content, t.X+off.X, t.Y+off.Y, ax, ay)
}
