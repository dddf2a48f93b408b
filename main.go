// Command linechart renders line charts from a JSON or YAML definitions
// file as SVG, PNG, an HTML page, terminal output, an interactive TUI or
// an HTTP preview server.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"gitlab.com/tinyland/lab/linechart/pkg/cache"
	"gitlab.com/tinyland/lab/linechart/pkg/chartdata"
	"gitlab.com/tinyland/lab/linechart/pkg/config"
	"gitlab.com/tinyland/lab/linechart/pkg/raster"
	"gitlab.com/tinyland/lab/linechart/pkg/render"
	"gitlab.com/tinyland/lab/linechart/pkg/theme"
)

// Build information, set via -ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Persistent flags.
var (
	configPath string
	dataPath   string
	themeName  string
	verbose    bool
)

// env is what every command needs after flags and config are resolved.
type env struct {
	cfg    *config.Config
	logger *slog.Logger
	theme  theme.Theme
	opts   render.Options
}

func main() {
	root := &cobra.Command{
		Use:           "linechart",
		Short:         "Render responsive line charts",
		Long:          "linechart draws single- and multi-series line charts from a JSON or YAML\ndefinitions file, sized from a container width.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "Path to configuration file (default: $XDG_CONFIG_HOME/linechart/config.toml)")
	root.PersistentFlags().StringVarP(&dataPath, "data", "d", "", "Chart definitions file (.json, .yaml)")
	root.PersistentFlags().StringVar(&themeName, "theme", "", "Theme name (default, dark, mono or a loaded theme)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	root.AddCommand(
		renderCmd(),
		sheetCmd(),
		showCmd(),
		tuiCmd(),
		serveCmd(),
		configCmd(),
		themesCmd(),
		versionCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "linechart: %v\n", err)
		os.Exit(1)
	}
}

// setup loads the configuration, builds the logger and resolves the theme.
func setup() (*env, error) {
	var (
		cfg *config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.LoadFromFile(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if dataPath != "" {
		cfg.General.DataFile = dataPath
	}
	if themeName != "" {
		cfg.Theme.Name = themeName
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	logLevel, _ := config.ParseLogLevel(cfg.General.LogLevel)
	if verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	if cfg.Theme.File != "" {
		t, err := theme.LoadFile(cfg.Theme.File)
		if err != nil {
			return nil, err
		}
		logger.Debug("theme loaded", "name", t.Name, "file", cfg.Theme.File)
	}
	if _, ok := theme.Lookup(cfg.Theme.Name); !ok {
		logger.Warn("unknown theme, using default", "theme", cfg.Theme.Name)
	}
	theme.SetCurrent(cfg.Theme.Name)

	return &env{
		cfg:    cfg,
		logger: logger,
		theme:  theme.Current,
		opts:   theme.Current.Apply(cfg.Options()),
	}, nil
}

// loadCharts reads the definitions file named by the config.
func (e *env) loadCharts() ([]chartdata.Definition, error) {
	if e.cfg.General.DataFile == "" {
		return nil, errors.New("no chart data: pass --data or set general.data_file")
	}
	defs, err := chartdata.Load(e.cfg.General.DataFile)
	if err != nil {
		return nil, err
	}
	e.logger.Debug("charts loaded", "file", e.cfg.General.DataFile, "count", len(defs))
	return defs, nil
}

func (e *env) rasterOptions() raster.Options {
	opts := raster.DefaultOptions()
	if e.cfg.Image.Scale > 0 {
		opts.Scale = e.cfg.Image.Scale
	}
	return opts
}

func (e *env) cacheStore() *cache.Store {
	return cache.NewStore(cache.StoreConfig{MaxEntries: e.cfg.Server.CacheEntries})
}
