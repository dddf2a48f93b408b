package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"

	"gitlab.com/tinyland/lab/linechart/pkg/viewport"
)

// appName names the XDG config directory.
const appName = "linechart"

// Load reads configuration from the standard config path.
// Search order:
//  1. $XDG_CONFIG_HOME/linechart/config.toml
//  2. ~/.config/linechart/config.toml
//
// If no file exists, returns DefaultConfig() with environment overrides.
func Load() (*Config, error) {
	for _, p := range configSearchPaths() {
		if _, err := os.Stat(p); err == nil {
			return LoadFromFile(p)
		}
	}
	cfg := DefaultConfig()
	applyEnvOverrides(cfg)
	return cfg, nil
}

// LoadFromFile reads configuration from a specific file path. A missing
// file yields the defaults.
func LoadFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := DefaultConfig()
			applyEnvOverrides(cfg)
			return cfg, nil
		}
		return nil, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	cfg, err := LoadFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadFromReader reads configuration from an io.Reader. Keys absent from
// the input keep their defaults.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()
	md, err := toml.NewDecoder(r).Decode(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: parse TOML: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("config: unknown key %q", undecoded[0].String())
	}
	applyEnvOverrides(cfg)
	return cfg, nil
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		General: GeneralConfig{
			LogLevel: "info",
			Title:    "Charts",
		},
		Viewport: ViewportConfig{
			MaxWidth: viewport.DefaultMaxWidth,
			Height:   viewport.DefaultHeight,
			Width:    1024,
		},
		Render: RenderConfig{
			Margins: "standard",
			Curve:   "monotone",
		},
		Theme: ThemeConfig{
			Name: "default",
		},
		Image: ImageConfig{
			Protocol: "auto",
			Scale:    1,
			Columns:  2,
		},
		Server: ServerConfig{
			Listen:       "127.0.0.1:8080",
			ReadTimeout:  Duration{5 * time.Second},
			WriteTimeout: Duration{10 * time.Second},
			CacheEntries: 256,
		},
	}
}

// Encode writes cfg as TOML.
func Encode(w io.Writer, cfg *Config) error {
	if err := toml.NewEncoder(w).Encode(cfg); err != nil {
		return fmt.Errorf("config: encode TOML: %w", err)
	}
	return nil
}

// applyEnvOverrides checks environment variables and overrides config values.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("LINECHART_DATA"); v != "" {
		cfg.General.DataFile = v
	}
	if v := os.Getenv("LINECHART_LOG_LEVEL"); v != "" {
		cfg.General.LogLevel = v
	}
	if v := os.Getenv("LINECHART_THEME"); v != "" {
		cfg.Theme.Name = v
	}
	if v := os.Getenv("LINECHART_PROTOCOL"); v != "" {
		cfg.Image.Protocol = v
	}
	if v := os.Getenv("LINECHART_LISTEN"); v != "" {
		cfg.Server.Listen = v
	}
	if v, err := strconv.Atoi(os.Getenv("LINECHART_MAX_WIDTH")); err == nil {
		cfg.Viewport.MaxWidth = v
	}
}

// configSearchPaths returns the ordered list of config file paths to try.
func configSearchPaths() []string {
	home, _ := os.UserHomeDir()
	var paths []string

	xdg := xdgConfigHome(home)
	paths = append(paths, filepath.Join(xdg, appName, "config.toml"))

	// If XDG_CONFIG_HOME was explicitly set, also try the fallback default.
	defaultXDG := filepath.Join(home, ".config")
	if xdg != defaultXDG {
		paths = append(paths, filepath.Join(defaultXDG, appName, "config.toml"))
	}

	return paths
}

// xdgConfigHome returns XDG_CONFIG_HOME or ~/.config as fallback.
func xdgConfigHome(home string) string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	return filepath.Join(home, ".config")
}
