// Package braille draws scene canvases as text, using Unicode Braille
// cells as a 2x4 dot matrix per terminal cell.
package braille

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	"gitlab.com/tinyland/lab/linechart/pkg/theme"
)

// Grid is a dot matrix of cols x rows terminal cells. Each cell remembers
// the color of the last dot set in it; text written with Print replaces
// the dots of the cells it covers.
type Grid struct {
	cols, rows int
	dots       [][]uint8
	colors     [][]string
	text       [][]rune
}

// NewGrid returns an empty grid. Non-positive sizes become 1.
func NewGrid(cols, rows int) *Grid {
	cols, rows = max(cols, 1), max(rows, 1)
	g := &Grid{cols: cols, rows: rows}
	g.dots = make([][]uint8, rows)
	g.colors = make([][]string, rows)
	g.text = make([][]rune, rows)
	for r := 0; r < rows; r++ {
		g.dots[r] = make([]uint8, cols)
		g.colors[r] = make([]string, cols)
		g.text[r] = make([]rune, cols)
	}
	return g
}

// DotSize returns the grid size in dots.
func (g *Grid) DotSize() (w, h int) {
	return g.cols * 2, g.rows * 4
}

// Set turns on the dot at (x, y). Dots outside the grid are ignored.
func (g *Grid) Set(x, y int, color string) {
	w, h := g.DotSize()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	r, c := y/4, x/2
	g.dots[r][c] |= brailleBit(x%2, y%4)
	if color != "" {
		g.colors[r][c] = color
	}
}

// Line sets every dot on the segment from (x0, y0) to (x1, y1).
func (g *Grid) Line(x0, y0, x1, y1 int, color string) {
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		g.Set(x0, y0, color)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// Print writes s starting at cell (col, row). Characters outside the grid
// are dropped.
func (g *Grid) Print(col, row int, s, color string) {
	if row < 0 || row >= g.rows {
		return
	}
	for _, ch := range s {
		if col >= 0 && col < g.cols {
			g.text[row][col] = ch
			g.colors[row][col] = color
		}
		col++
	}
}

// Lines renders the grid as one string per row, colored for profile.
// Trailing blank cells are trimmed.
func (g *Grid) Lines(profile termenv.Profile) []string {
	lines := make([]string, g.rows)
	for r := 0; r < g.rows; r++ {
		var sb strings.Builder
		last := -1
		for c := 0; c < g.cols; c++ {
			if g.text[r][c] != 0 || g.dots[r][c] != 0 {
				last = c
			}
		}
		for c := 0; c <= last; c++ {
			var ch string
			switch {
			case g.text[r][c] != 0:
				ch = string(g.text[r][c])
			case g.dots[r][c] != 0:
				ch = string(rune(0x2800 + int(g.dots[r][c])))
			default:
				sb.WriteByte(' ')
				continue
			}
			sb.WriteString(theme.Colorize(ch, g.colors[r][c], profile))
		}
		lines[r] = sb.String()
	}
	return lines
}

// String joins Lines with newlines.
func (g *Grid) String(profile termenv.Profile) string {
	return strings.Join(g.Lines(profile), "\n")
}

// Fit truncates every line to width visible cells.
func Fit(lines []string, width int) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		if ansi.StringWidth(l) > width {
			l = ansi.Truncate(l, width, "")
		}
		out[i] = l
	}
	return out
}

// brailleBit returns the bitmask for a dot at offset (offX, offY) within a
// Braille cell. offX is 0 (left) or 1 (right). offY is 0..3 (top to bottom).
//
// Unicode Braille dot numbering:
//
//	1 4      bit: 0x01  0x08
//	2 5           0x02  0x10
//	3 6           0x04  0x20
//	7 8           0x40  0x80
func brailleBit(offX, offY int) uint8 {
	leftBits := [4]uint8{0x01, 0x02, 0x04, 0x40}
	rightBits := [4]uint8{0x08, 0x10, 0x20, 0x80}

	if offY < 0 || offY > 3 {
		return 0
	}
	if offX == 0 {
		return leftBits[offY]
	}
	return rightBits[offY]
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
