// Package inline draws charts into the terminal, as images through a
// graphics protocol or as Braille text where no image protocol is usable.
package inline

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"strconv"
	"strings"

	"github.com/blacktop/go-termimg"

	"gitlab.com/tinyland/lab/linechart/pkg/braille"
	"gitlab.com/tinyland/lab/linechart/pkg/cache"
	"gitlab.com/tinyland/lab/linechart/pkg/raster"
	"gitlab.com/tinyland/lab/linechart/pkg/scene"
	"gitlab.com/tinyland/lab/linechart/pkg/terminal"
	"gitlab.com/tinyland/lab/linechart/pkg/theme"
	"gitlab.com/tinyland/lab/linechart/pkg/view"
)

var (
	// ErrDisabled is returned when the protocol is ProtocolNone.
	ErrDisabled = errors.New("inline: chart output is disabled (protocol=none)")
	// ErrNotImage is returned by Render when the protocol draws text.
	ErrNotImage = errors.New("inline: protocol does not draw images")
)

// Options style terminal output.
type Options struct {
	Raster           raster.Options
	Labels           bool // axis labels in Braille output
	TitleColor       string
	PlaceholderColor string
}

// Renderer turns charts into terminal output for one terminal. Encoded
// images are kept in a cache keyed by protocol, cell size and content.
type Renderer struct {
	caps   terminal.Capabilities
	cache  *cache.Store
	opts   Options
	logger *slog.Logger
}

// NewRenderer returns a renderer for caps. A nil store gets a private one.
func NewRenderer(caps terminal.Capabilities, store *cache.Store, opts Options, logger *slog.Logger) *Renderer {
	if store == nil {
		store = cache.NewStore(cache.StoreConfig{MaxBytes: 32 << 20})
	}
	if logger == nil {
		logger = slog.Default()
	}
	if opts.Raster.Scale <= 0 {
		opts.Raster = raster.DefaultOptions()
	}
	return &Renderer{caps: caps, cache: store, opts: opts, logger: logger}
}

// Protocol returns the active protocol.
func (r *Renderer) Protocol() terminal.Protocol { return r.caps.Protocol }

// Cache returns the encoded image cache.
func (r *Renderer) Cache() *cache.Store { return r.cache }

// Render encodes img for the terminal within cols x rows cells.
func (r *Renderer) Render(img image.Image, cols, rows int) (string, error) {
	if img == nil {
		return "", fmt.Errorf("inline: image is nil")
	}
	p := r.caps.Protocol
	switch {
	case p == terminal.ProtocolNone:
		return "", ErrDisabled
	case !p.IsImage():
		return "", ErrNotImage
	}

	key := cache.Key(p.String(), strconv.Itoa(cols), strconv.Itoa(rows), hashImage(img))
	out, hit, err := r.cache.Fetch(key, func() ([]byte, error) {
		s, err := r.encode(img, cols, rows)
		return []byte(s), err
	})
	if err != nil {
		return "", fmt.Errorf("inline: %s: %w", p, err)
	}
	r.logger.Debug("chart image encoded", "protocol", p.String(), "cols", cols, "rows", rows, "cached", hit)
	return string(out), nil
}

// RenderCanvas draws c within cols x rows cells.
func (r *Renderer) RenderCanvas(c *scene.Canvas, cols, rows int) (string, error) {
	switch r.caps.Protocol {
	case terminal.ProtocolNone:
		return "", ErrDisabled
	case terminal.ProtocolBraille:
		return braille.Render(c, r.brailleOptions(cols, rows)), nil
	}
	img, err := raster.Rasterize(c, r.opts.Raster)
	if err != nil {
		return "", err
	}
	return r.Render(img, cols, rows)
}

// RenderView draws the chart title followed by the chart or its
// placeholder. rows counts the chart area only.
func (r *Renderer) RenderView(v view.View, cols, rows int) (string, error) {
	if r.caps.Protocol == terminal.ProtocolBraille {
		return braille.RenderView(v, r.brailleOptions(cols, rows)), nil
	}
	var lines []string
	if v.Title != "" {
		lines = append(lines, theme.Colorize(v.Title, r.opts.TitleColor, r.caps.Profile))
	}
	if !v.HasDrawing() {
		lines = append(lines, theme.Colorize(v.Placeholder, r.opts.PlaceholderColor, r.caps.Profile))
		return strings.Join(lines, "\n"), nil
	}
	chart, err := r.RenderCanvas(v.Canvas, cols, rows)
	if err != nil {
		return "", err
	}
	return strings.Join(append(lines, chart), "\n"), nil
}

func (r *Renderer) brailleOptions(cols, rows int) braille.Options {
	return braille.Options{
		Cols:             cols,
		Rows:             rows,
		Profile:          r.caps.Profile,
		Labels:           r.opts.Labels,
		TitleColor:       r.opts.TitleColor,
		PlaceholderColor: r.opts.PlaceholderColor,
	}
}

// encode resizes img and hands it to the protocol backend.
func (r *Renderer) encode(img image.Image, cols, rows int) (string, error) {
	switch r.caps.Protocol {
	case terminal.ProtocolKitty:
		return r.termimg(img, termimg.Kitty, cols, rows)
	case terminal.ProtocolITerm2:
		return r.termimg(img, termimg.ITerm2, cols, rows)
	case terminal.ProtocolSixel:
		return r.termimg(img, termimg.Sixel, cols, rows)
	default:
		// One character per pixel column, two pixel rows per cell.
		return Halfblocks(ResizeToFit(img, cols, rows, 1, 2)), nil
	}
}

func (r *Renderer) termimg(img image.Image, proto termimg.Protocol, cols, rows int) (string, error) {
	cellW, cellH := r.caps.Size.CellSize()
	ti := termimg.New(ResizeToFit(img, cols, rows, cellW, cellH))
	if ti == nil {
		return "", fmt.Errorf("go-termimg: failed to create image wrapper")
	}
	ti.Protocol(proto).Size(cols, rows).Scale(termimg.ScaleFit)
	return ti.Render()
}

// hashImage identifies img by its size and every pixel.
func hashImage(img image.Image) string {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	hasher := sha256.New()
	var dims [8]byte
	binary.LittleEndian.PutUint32(dims[:4], uint32(w))
	binary.LittleEndian.PutUint32(dims[4:], uint32(h))
	hasher.Write(dims[:])

	switch m := img.(type) {
	case *image.NRGBA:
		for y := b.Min.Y; y < b.Max.Y; y++ {
			off := m.PixOffset(b.Min.X, y)
			hasher.Write(m.Pix[off : off+4*w])
		}
	case *image.RGBA:
		for y := b.Min.Y; y < b.Max.Y; y++ {
			off := m.PixOffset(b.Min.X, y)
			hasher.Write(m.Pix[off : off+4*w])
		}
	default:
		row := make([]byte, 4*w)
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				r, g, bl, a := img.At(x, y).RGBA()
				i := 4 * (x - b.Min.X)
				row[i], row[i+1], row[i+2], row[i+3] = uint8(r>>8), uint8(g>>8), uint8(bl>>8), uint8(a>>8)
			}
			hasher.Write(row)
		}
	}
	return hex.EncodeToString(hasher.Sum(nil)[:16])
}
