package terminal

import (
	"os"
	"strconv"
)

// Default cell size in pixels, used when the tty does not report pixels.
const (
	DefaultCellW = 8
	DefaultCellH = 16
)

// Size represents terminal dimensions in both character cells and pixels.
type Size struct {
	Cols   int
	Rows   int
	PixelW int // 0 if unknown
	PixelH int // 0 if unknown
}

// CellSize returns the pixel size of one cell, falling back to the defaults
// when the terminal did not report pixels.
func (s Size) CellSize() (w, h int) {
	w, h = DefaultCellW, DefaultCellH
	if s.PixelW > 0 && s.Cols > 0 {
		w = s.PixelW / s.Cols
	}
	if s.PixelH > 0 && s.Rows > 0 {
		h = s.PixelH / s.Rows
	}
	return w, h
}

// ContainerWidth returns the terminal width in pixels, the width a chart
// sizes itself from.
func (s Size) ContainerWidth() int {
	if s.PixelW > 0 {
		return s.PixelW
	}
	w, _ := s.CellSize()
	return s.Cols * w
}

// GetSize returns the current terminal dimensions, trying stdout, then
// stderr, then COLUMNS/LINES, then 80x24.
func GetSize() Size {
	for _, f := range []*os.File{os.Stdout, os.Stderr} {
		if s, ok := sizeFromFd(f.Fd()); ok {
			return s
		}
	}
	return sizeFromEnv(os.Getenv)
}

func sizeFromEnv(env Env) Size {
	return Size{Cols: envInt(env, "COLUMNS", 80), Rows: envInt(env, "LINES", 24)}
}

// envInt reads a positive integer from env, or returns fallback.
func envInt(env Env, name string, fallback int) int {
	n, err := strconv.Atoi(env(name))
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
