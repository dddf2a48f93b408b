package inline

import (
	"fmt"
	"image"
	"strings"
)

// Halfblocks draws img with upper half blocks (U+2580) in 24-bit color.
// Each cell shows two pixel rows: the top pixel as foreground and the
// bottom pixel as background. Fully transparent pixels keep the terminal
// default color.
func Halfblocks(img image.Image) string {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return ""
	}
	px := toNRGBA(img)

	var sb strings.Builder
	sb.Grow(w * (h/2 + 1) * 30)
	for y := 0; y < h; y += 2 {
		if y > 0 {
			sb.WriteString("\x1b[0m\n")
		}
		for x := 0; x < w; x++ {
			top := px.NRGBAAt(b.Min.X+x, b.Min.Y+y)
			hasBottom := y+1 < h
			bot := top
			bot.A = 0
			if hasBottom {
				bot = px.NRGBAAt(b.Min.X+x, b.Min.Y+y+1)
			}

			switch {
			case top.A == 0 && bot.A == 0:
				sb.WriteString("\x1b[0m ")
			case top.A == 0:
				fmt.Fprintf(&sb, "\x1b[38;2;%d;%d;%dm\x1b[49m▄", bot.R, bot.G, bot.B)
			case bot.A == 0:
				fmt.Fprintf(&sb, "\x1b[38;2;%d;%d;%dm\x1b[49m▀", top.R, top.G, top.B)
			default:
				fmt.Fprintf(&sb, "\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm▀",
					top.R, top.G, top.B, bot.R, bot.G, bot.B)
			}
		}
	}
	sb.WriteString("\x1b[0m")
	return sb.String()
}
