package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"gitlab.com/tinyland/lab/linechart/pkg/config"
	"gitlab.com/tinyland/lab/linechart/pkg/inline"
	"gitlab.com/tinyland/lab/linechart/pkg/raster"
	"gitlab.com/tinyland/lab/linechart/pkg/scene"
	"gitlab.com/tinyland/lab/linechart/pkg/server"
	"gitlab.com/tinyland/lab/linechart/pkg/terminal"
	"gitlab.com/tinyland/lab/linechart/pkg/theme"
	"gitlab.com/tinyland/lab/linechart/pkg/tui"
	"gitlab.com/tinyland/lab/linechart/pkg/view"
	"gitlab.com/tinyland/lab/linechart/pkg/viewport"
)

// openOutput returns stdout for "" or "-", otherwise creates path.
// writeOutput opens path, hands it to write and closes it. A failed close
// is reported when write itself succeeded.
func writeOutput(path string, write func(io.Writer) error) error {
	out, err := openOutput(path)
	if err != nil {
		return err
	}
	return writeAndClose(out, write)
}

func writeAndClose(out io.WriteCloser, write func(io.Writer) error) (err error) {
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close output: %w", cerr)
		}
	}()
	return write(out)
}

func openOutput(path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopCloser{os.Stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create output: %w", err)
	}
	return f, nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// containerWidth returns flag if set, else the configured width.
func containerWidth(flag int, cfg *config.Config) int {
	if flag > 0 {
		return flag
	}
	return cfg.Viewport.Width
}

func renderCmd() *cobra.Command {
	var (
		format string
		width  int
		index  int
		output string
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render one chart as SVG or PNG, or every chart as an HTML page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := setup()
			if err != nil {
				return err
			}
			defs, err := e.loadCharts()
			if err != nil {
				return err
			}
			dims := e.cfg.Policy().FromContainer(containerWidth(width, e.cfg))

			if format == "html" {
				views := make([]view.View, len(defs))
				for i, def := range defs {
					views[i] = view.ChartView(def, dims, e.opts)
				}
				page := view.NewPage(e.cfg.General.Title, e.cfg.Viewport.MaxWidth, views)
				return writeOutput(output, page.Write)
			}

			if index < 0 || index >= len(defs) {
				return fmt.Errorf("chart index %d out of range (have %d charts)", index, len(defs))
			}
			v := view.ChartView(defs[index], dims, e.opts)
			e.logger.Debug("chart rendered", "index", index, "kind", v.Kind, "width", dims.Width, "height", dims.Height)
			switch format {
			case "svg":
				return writeOutput(output, func(w io.Writer) error { return scene.EncodeSVG(w, v.Canvas) })
			case "png":
				return writeOutput(output, func(w io.Writer) error { return raster.EncodePNG(w, v.Canvas, e.rasterOptions()) })
			}
			return fmt.Errorf("unknown format %q (want svg, png or html)", format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "svg", "Output format: svg, png, html")
	cmd.Flags().IntVarP(&width, "width", "w", 0, "Container width in pixels (default: viewport.width)")
	cmd.Flags().IntVarP(&index, "index", "i", 0, "Chart to render (svg and png)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: stdout)")
	return cmd
}

func sheetCmd() *cobra.Command {
	var (
		width   int
		columns int
		output  string
	)
	cmd := &cobra.Command{
		Use:   "sheet",
		Short: "Render every chart into one PNG contact sheet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := setup()
			if err != nil {
				return err
			}
			defs, err := e.loadCharts()
			if err != nil {
				return err
			}
			dims := e.cfg.Policy().FromContainer(containerWidth(width, e.cfg))

			canvases := make([]*scene.Canvas, len(defs))
			for i, def := range defs {
				canvases[i] = view.ChartView(def, dims, e.opts).Canvas
			}
			images, err := raster.RasterizeAll(cmd.Context(), canvases, e.rasterOptions(), 0)
			if err != nil {
				return err
			}
			if columns <= 0 {
				columns = e.cfg.Image.Columns
			}
			sheet, err := raster.Sheet(images, raster.SheetOptions{Columns: columns, Gap: 16})
			if err != nil {
				return err
			}

			return writeOutput(output, func(w io.Writer) error { return raster.EncodeSheetPNG(w, sheet) })
		},
	}
	cmd.Flags().IntVarP(&width, "width", "w", 0, "Container width in pixels (default: viewport.width)")
	cmd.Flags().IntVar(&columns, "columns", 0, "Sheet columns (default: image.columns)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: stdout)")
	return cmd
}

func showCmd() *cobra.Command {
	var (
		protocol string
		width    int
		labels   bool
	)
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Draw the charts in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := setup()
			if err != nil {
				return err
			}
			if protocol == "" {
				protocol = e.cfg.Image.Protocol
			}
			caps, err := terminal.Inspect(os.Stdout, protocol)
			if err != nil {
				return err
			}
			defs, err := e.loadCharts()
			if err != nil {
				return err
			}
			if width <= 0 {
				width = caps.Size.ContainerWidth()
			}
			e.logger.Debug("terminal detected",
				"term", caps.Term.String(),
				"protocol", caps.Protocol.String(),
				"ssh", caps.SSH,
				"width", width,
			)

			app := view.NewApp(viewport.NewWindow(width), e.cfg.Policy(), e.opts, e.logger)
			app.Load(defs)
			defer app.Close()

			r := inline.NewRenderer(caps, nil, inline.Options{
				Raster:           e.rasterOptions(),
				Labels:           labels,
				TitleColor:       e.theme.Title,
				PlaceholderColor: e.theme.Placeholder,
			}, e.logger)
			cellW, cellH := caps.Size.CellSize()
			for _, v := range app.Views() {
				cols := max(v.Canvas.Width/cellW, 1)
				rows := max(v.Canvas.Height/cellH, 1)
				s, err := r.RenderView(v, cols, rows)
				if err != nil {
					return err
				}
				fmt.Fprintln(os.Stdout, s)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&protocol, "protocol", "p", "", "Output protocol: auto, kitty, iterm2, sixel, halfblocks, braille")
	cmd.Flags().IntVarP(&width, "width", "w", 0, "Container width in pixels (default: terminal width)")
	cmd.Flags().BoolVar(&labels, "labels", true, "Print axis labels in Braille output")
	return cmd
}

func tuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Browse the charts in an interactive terminal UI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := setup()
			if err != nil {
				return err
			}
			defs, err := e.loadCharts()
			if err != nil {
				return err
			}
			caps, err := terminal.Inspect(os.Stdout, "braille")
			if err != nil {
				return err
			}
			cellW, cellH := caps.Size.CellSize()
			model := tui.New(defs, tui.Config{
				Policy:  e.cfg.Policy(),
				Options: e.opts,
				Theme:   e.theme,
				Profile: caps.Profile,
				CellW:   cellW,
				CellH:   cellH,
				Width:   caps.Size.Cols * cellW,
				Load:    e.loadCharts,
				Logger:  e.logger,
			})
			_, err = tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run()
			return err
		},
	}
}

func serveCmd() *cobra.Command {
	var listen string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the charts over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := setup()
			if err != nil {
				return err
			}
			if listen == "" {
				listen = e.cfg.Server.Listen
			}
			srv, err := server.New(e.loadCharts, server.Config{
				Title:   e.cfg.General.Title,
				Policy:  e.cfg.Policy(),
				Options: e.opts,
				Raster:  e.rasterOptions(),
				Columns: e.cfg.Image.Columns,
				Reload:  e.cfg.Server.Reload,
				Cache:   e.cacheStore(),
				Logger:  e.logger,
			})
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			err = srv.ListenAndServe(ctx, listen,
				e.cfg.Server.ReadTimeout.Duration, e.cfg.Server.WriteTimeout.Duration)
			if err == nil {
				e.logger.Info("received shutdown signal")
			}
			return err
		},
	}
	cmd.Flags().StringVarP(&listen, "listen", "l", "", "Listen address (default: server.listen)")
	return cmd
}

func configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := setup()
			if err != nil {
				return err
			}
			return config.Encode(os.Stdout, e.cfg)
		},
	}
}

func themesCmd() *cobra.Command {
	var export string
	cmd := &cobra.Command{
		Use:   "themes",
		Short: "List the available themes, or export one as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := setup()
			if err != nil {
				return err
			}
			if export != "" {
				t, ok := theme.Lookup(export)
				if !ok {
					return fmt.Errorf("unknown theme %q", export)
				}
				data, err := theme.SaveToTOML(t)
				if err != nil {
					return err
				}
				_, err = os.Stdout.Write(data)
				return err
			}
			for _, name := range theme.Names() {
				marker := " "
				if name == e.theme.Name {
					marker = "*"
				}
				fmt.Printf("%s %s\n", marker, name)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&export, "export", "", "Print the named theme as TOML")
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Printf("linechart %s (%s) built %s\n", version, commit, date)
		},
	}
}
