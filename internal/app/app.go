package app

import (
	"io"
	"log/slog"
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/vk/cellgrid/internal/config"
	"github.com/vk/cellgrid/internal/coord"
	"github.com/vk/cellgrid/internal/grid"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	loader   config.Loader
	config   *Config
	registry *prometheus.Registry
	metrics  *grid.Metrics
	report   []coord.Coordinate

	// mu guards every field below. The grid itself is not safe for
	// concurrent use, and the watcher and HTTP server both reach it.
	mu      sync.Mutex
	grid    *grid.Grid
	model   *config.Model
	applied map[coord.Coordinate]string

	httpServer *http.Server
}

// NewApp is the constructor for the main application. Cell values go to
// outW and logs to logW. The sheet is not read until Reload or Run.
func NewApp(outW, logW io.Writer, cfg *Config, loader config.Loader) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	metrics := grid.NewMetrics(reg)

	report := make([]coord.Coordinate, 0, len(cfg.Cells))
	for _, raw := range cfg.Cells {
		report = append(report, coord.MustParse(raw))
	}

	a := &App{
		outW:     outW,
		logger:   logger,
		loader:   loader,
		config:   cfg,
		registry: reg,
		metrics:  metrics,
		report:   report,
		applied:  make(map[coord.Coordinate]string),
	}
	a.grid = a.newGrid()
	return a
}

func (a *App) newGrid() *grid.Grid {
	return grid.New(grid.WithLogger(a.logger), grid.WithMetrics(a.metrics))
}

// Registry returns the metrics registry. This is primarily for testing.
func (a *App) Registry() *prometheus.Registry {
	return a.registry
}
