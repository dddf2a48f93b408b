// Package server serves the charts over HTTP: an HTML page that redraws
// each chart at its container width, standalone SVG and PNG renders, a
// PNG contact sheet, a health check and prometheus metrics.
package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"gitlab.com/tinyland/lab/linechart/pkg/cache"
	"gitlab.com/tinyland/lab/linechart/pkg/chartdata"
	"gitlab.com/tinyland/lab/linechart/pkg/raster"
	"gitlab.com/tinyland/lab/linechart/pkg/render"
	"gitlab.com/tinyland/lab/linechart/pkg/scene"
	"gitlab.com/tinyland/lab/linechart/pkg/view"
	"gitlab.com/tinyland/lab/linechart/pkg/viewport"
)

// DefaultWidth is the container width assumed when a request has none.
const DefaultWidth = 1024

// Source returns the chart definitions to serve.
type Source func() ([]chartdata.Definition, error)

// Config configures a Server.
type Config struct {
	Title   string
	Policy  viewport.Policy
	Options render.Options
	Raster  raster.Options
	// Columns is the contact sheet column count.
	Columns int
	// Reload re-reads the source on every page request.
	Reload bool
	// Cache holds rendered charts. Nil gets a private 256-entry store.
	Cache  *cache.Store
	Logger *slog.Logger
}

// Server renders charts on request. It is safe for concurrent use.
type Server struct {
	cfg     Config
	source  Source
	cache   *cache.Store
	metrics *metrics
	logger  *slog.Logger
	mux     *http.ServeMux

	mu   sync.RWMutex
	defs []chartdata.Definition
	// gen counts reloads. Cache keys carry it so a render of replaced
	// charts that finishes after a reload is never served.
	gen uint64
}

// New loads the charts once and returns a server for them.
func New(source Source, cfg Config) (*Server, error) {
	if cfg.Cache == nil {
		cfg.Cache = cache.NewStore(cache.StoreConfig{})
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Raster.Scale <= 0 {
		cfg.Raster = raster.DefaultOptions()
	}
	if cfg.Title == "" {
		cfg.Title = "Charts"
	}
	s := &Server{
		cfg:     cfg,
		source:  source,
		cache:   cfg.Cache,
		metrics: newMetrics(cfg.Cache),
		logger:  cfg.Logger,
	}
	if err := s.reload(); err != nil {
		return nil, err
	}
	s.routes()
	return s, nil
}

func (s *Server) routes() {
	s.mux = http.NewServeMux()
	s.mux.Handle("GET /{$}", s.metrics.instrument("page", s.handlePage))
	s.mux.Handle("GET /charts/{file}", s.metrics.instrument("chart", s.handleChart))
	s.mux.Handle("GET /sheet.png", s.metrics.instrument("sheet", s.handleSheet))
	s.mux.HandleFunc("GET /healthz", s.handleHealth)
	s.mux.Handle("GET /metrics", s.metrics.handler())
}

// Handler returns the HTTP handler of the server.
func (s *Server) Handler() http.Handler { return s.mux }

// Definitions returns the charts currently served.
func (s *Server) Definitions() []chartdata.Definition {
	defs, _ := s.snapshot()
	return defs
}

func (s *Server) snapshot() ([]chartdata.Definition, string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.defs, strconv.FormatUint(s.gen, 10)
}

// ListenAndServe serves on addr until ctx is done, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string, readTimeout, writeTimeout time.Duration) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.mux,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("serving charts", "addr", addr, "charts", len(s.Definitions()))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// reload replaces the served charts and drops every cached render.
func (s *Server) reload() error {
	defs, err := s.source()
	if err != nil {
		s.metrics.reloads.WithLabelValues("error").Inc()
		return fmt.Errorf("server: load charts: %w", err)
	}
	s.mu.Lock()
	s.defs = defs
	s.gen++
	s.mu.Unlock()
	s.cache.Clear()
	s.metrics.reloads.WithLabelValues("ok").Inc()
	return nil
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	width, err := widthParam(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if s.cfg.Reload {
		if err := s.reload(); err != nil {
			// Keep serving the last good charts.
			s.logger.Warn("chart reload failed", "error", err)
		}
	}

	dims := s.cfg.Policy.FromContainer(width)
	defs := s.Definitions()
	views := make([]view.View, len(defs))
	for i, def := range defs {
		views[i] = view.ChartView(def, dims, s.cfg.Options)
	}
	page := view.NewPage(s.cfg.Title, s.cfg.Policy.MaxWidth, views)
	page.Live = true

	var buf bytes.Buffer
	if err := page.Write(&buf); err != nil {
		s.logger.Error("page render failed", "error", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	name, format, ok := strings.Cut(r.PathValue("file"), ".")
	if !ok || (format != "svg" && format != "png") {
		http.NotFound(w, r)
		return
	}
	n, err := strconv.Atoi(name)
	defs, gen := s.snapshot()
	if err != nil || n < 0 || n >= len(defs) {
		http.NotFound(w, r)
		return
	}
	width, err := widthParam(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	dims := s.cfg.Policy.FromContainer(width)

	key := cache.Key(gen, format, strconv.Itoa(n), strconv.Itoa(dims.Width), strconv.Itoa(dims.Height))
	body, hit, err := s.cache.Fetch(key, func() ([]byte, error) {
		return s.renderChart(defs[n], dims, format)
	})
	if err != nil {
		s.logger.Warn("chart render failed", "chart", n, "format", format, "error", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	s.logger.Debug("chart served", "chart", n, "format", format, "width", dims.Width, "cached", hit)

	if format == "svg" {
		w.Header().Set("Content-Type", "image/svg+xml")
	} else {
		w.Header().Set("Content-Type", "image/png")
	}
	_, _ = w.Write(body)
}

// renderChart draws def at dims. Empty charts render as an empty canvas
// of the requested size.
func (s *Server) renderChart(def chartdata.Definition, dims viewport.Dimensions, format string) ([]byte, error) {
	v := view.ChartView(def, dims, s.cfg.Options)
	s.metrics.renders.WithLabelValues(format).Inc()

	var buf bytes.Buffer
	switch format {
	case "svg":
		if err := scene.EncodeSVG(&buf, v.Canvas); err != nil {
			return nil, err
		}
	case "png":
		if err := raster.EncodePNG(&buf, v.Canvas, s.cfg.Raster); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

func (s *Server) handleSheet(w http.ResponseWriter, r *http.Request) {
	width, err := widthParam(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	dims := s.cfg.Policy.FromContainer(width)
	defs, gen := s.snapshot()
	key := cache.Key(gen, "sheet", strconv.Itoa(dims.Width), strconv.Itoa(dims.Height))
	body, _, err := s.cache.Fetch(key, func() ([]byte, error) {
		return s.renderSheet(r.Context(), defs, dims)
	})
	if err != nil {
		s.logger.Warn("sheet render failed", "error", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(body)
}

func (s *Server) renderSheet(ctx context.Context, defs []chartdata.Definition, dims viewport.Dimensions) ([]byte, error) {
	if len(defs) == 0 {
		return nil, errors.New("no charts")
	}
	canvases := make([]*scene.Canvas, len(defs))
	for i, def := range defs {
		canvases[i] = view.ChartView(def, dims, s.cfg.Options).Canvas
	}
	images, err := raster.RasterizeAll(ctx, canvases, s.cfg.Raster, 0)
	if err != nil {
		return nil, err
	}
	sheet, err := raster.Sheet(images, raster.SheetOptions{Columns: s.cfg.Columns, Gap: 16})
	if err != nil {
		return nil, err
	}
	s.metrics.renders.WithLabelValues("sheet").Inc()

	var buf bytes.Buffer
	if err := raster.EncodeSheetPNG(&buf, sheet); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type health struct {
	Status string `json:"status"`
	Charts int    `json:"charts"`
	Cached int    `json:"cached"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(health{
		Status: "ok",
		Charts: len(s.Definitions()),
		Cached: s.cache.Len(),
	})
}

// widthParam reads the container width from ?width=, defaulting to
// DefaultWidth.
func widthParam(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("width")
	if raw == "" {
		return DefaultWidth, nil
	}
	w, err := strconv.Atoi(raw)
	if err != nil || w < 0 {
		return 0, fmt.Errorf("invalid width %q", raw)
	}
	return w, nil
}
