package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"gitlab.com/tinyland/lab/linechart/pkg/render"
	"gitlab.com/tinyland/lab/linechart/pkg/shape"
	"gitlab.com/tinyland/lab/linechart/pkg/viewport"
)

// Config is the top-level configuration.
type Config struct {
	General  GeneralConfig  `toml:"general"`
	Viewport ViewportConfig `toml:"viewport"`
	Render   RenderConfig   `toml:"render"`
	Theme    ThemeConfig    `toml:"theme"`
	Image    ImageConfig    `toml:"image"`
	Server   ServerConfig   `toml:"server"`
}

// GeneralConfig holds the data source and logging settings.
type GeneralConfig struct {
	DataFile string `toml:"data_file"`
	LogLevel string `toml:"log_level"`
	Title    string `toml:"title"`
}

// ViewportConfig sizes charts from their container.
type ViewportConfig struct {
	MaxWidth int `toml:"max_width"`
	Height   int `toml:"height"`
	// Width is the container width used when none can be measured.
	Width int `toml:"width"`
}

// RenderConfig controls chart drawing.
type RenderConfig struct {
	// Margins names a preset ("standard", "compact", "roomy"); explicit
	// margin fields override it.
	Margins      string  `toml:"margins"`
	MarginTop    float64 `toml:"margin_top"`
	MarginRight  float64 `toml:"margin_right"`
	MarginBottom float64 `toml:"margin_bottom"`
	MarginLeft   float64 `toml:"margin_left"`
	Curve        string  `toml:"curve"`
	StrokeWidth  float64 `toml:"stroke_width"`
	TickCount    int     `toml:"tick_count"`
}

// ThemeConfig selects the color theme.
type ThemeConfig struct {
	Name string `toml:"name"`
	// File optionally points at a TOML theme to load and register.
	File string `toml:"file"`
}

// ImageConfig controls raster and terminal image output.
type ImageConfig struct {
	Protocol string  `toml:"protocol"` // auto, kitty, iterm2, sixel, halfblocks, braille
	Scale    float64 `toml:"scale"`
	Columns  int     `toml:"columns"` // contact sheet columns
}

// ServerConfig controls the HTTP preview server.
type ServerConfig struct {
	Listen       string   `toml:"listen"`
	ReadTimeout  Duration `toml:"read_timeout"`
	WriteTimeout Duration `toml:"write_timeout"`
	CacheEntries int      `toml:"cache_entries"`
	// Reload re-reads the data file on every page request.
	Reload bool `toml:"reload"`
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	var errs []error
	if c.Viewport.Height < 0 {
		errs = append(errs, fmt.Errorf("viewport.height %d is negative", c.Viewport.Height))
	}
	if c.Viewport.MaxWidth < 0 {
		errs = append(errs, fmt.Errorf("viewport.max_width %d is negative", c.Viewport.MaxWidth))
	}
	if _, err := shape.CurveByName(c.Render.Curve); err != nil {
		errs = append(errs, err)
	}
	if _, ok := MarginPreset(c.Render.Margins); !ok {
		errs = append(errs, fmt.Errorf("render.margins: unknown preset %q", c.Render.Margins))
	}
	if c.Render.StrokeWidth < 0 {
		errs = append(errs, fmt.Errorf("render.stroke_width %v is negative", c.Render.StrokeWidth))
	}
	if c.Image.Scale < 0 {
		errs = append(errs, fmt.Errorf("image.scale %v is negative", c.Image.Scale))
	}
	if _, err := ParseLogLevel(c.General.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

// Policy returns the viewport sizing policy.
func (c *Config) Policy() viewport.Policy {
	return viewport.Policy{MaxWidth: c.Viewport.MaxWidth, Height: c.Viewport.Height}
}

// Options returns render options built from the render section. Colors
// are left at their defaults; apply a theme on top.
func (c *Config) Options() render.Options {
	opts := render.DefaultOptions()
	if m, ok := MarginPreset(c.Render.Margins); ok {
		opts.Margin = m
	}
	if c.Render.MarginTop > 0 {
		opts.Margin.Top = c.Render.MarginTop
	}
	if c.Render.MarginRight > 0 {
		opts.Margin.Right = c.Render.MarginRight
	}
	if c.Render.MarginBottom > 0 {
		opts.Margin.Bottom = c.Render.MarginBottom
	}
	if c.Render.MarginLeft > 0 {
		opts.Margin.Left = c.Render.MarginLeft
	}
	if curve, err := shape.CurveByName(c.Render.Curve); err == nil {
		opts.Curve = curve
	}
	if c.Render.StrokeWidth > 0 {
		opts.StrokeWidth = c.Render.StrokeWidth
	}
	if c.Render.TickCount > 0 {
		opts.TickCount = c.Render.TickCount
	}
	return opts
}

// ParseLogLevel maps debug, info, warn and error onto slog levels.
func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("general.log_level: unknown level %q", s)
}
