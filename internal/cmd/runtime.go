package cmd

import (
	"fmt"

	"github.com/Iron-Ham/searchbox/internal/catalog"
	"github.com/Iron-Ham/searchbox/internal/config"
	"github.com/Iron-Ham/searchbox/internal/logging"
	"github.com/Iron-Ham/searchbox/internal/source"
	"github.com/Iron-Ham/searchbox/internal/tui/styles"
)

// runtime bundles what every command that searches needs.
type runtime struct {
	cfg     *config.Config
	logger  *logging.Logger
	catalog *catalog.Catalog
	source  source.Source
}

// newRuntime loads the configuration, opens the log, loads the catalog and
// builds the data source. Call close when done.
func newRuntime() (*runtime, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger := createLogger(cfg)

	cat, err := catalog.Load(cfg.Source.ResolveCatalog(), catalog.Options{
		Exclude: cfg.Source.Exclude,
		Logger:  logger,
	})
	if err != nil {
		_ = logger.Close()
		return nil, err
	}

	src, err := source.New(cfg.Source.Kind, cat.Items, source.Options{
		Latency: cfg.Source.Latency(),
		Logger:  logger,
	})
	if err != nil {
		_ = logger.Close()
		return nil, err
	}

	logger.Info("searchbox started",
		"source", cfg.Source.Kind,
		"catalog", cat.Path,
		"items", cat.Len(),
	)
	return &runtime{cfg: cfg, logger: logger, catalog: cat, source: src}, nil
}

func (r *runtime) close() {
	if err := r.source.Close(); err != nil {
		r.logger.Warn("closing source", "error", err.Error())
	}
	_ = r.logger.Close()
}

// createLogger opens the log file, or returns a no-op logger when logging is
// disabled or the file cannot be opened.
func createLogger(cfg *config.Config) *logging.Logger {
	if !cfg.Logging.Enabled {
		return logging.NopLogger()
	}
	logger, err := logging.NewLogger(cfg.Logging.ResolveDir(), cfg.Logging.Level)
	if err != nil {
		return logging.NopLogger()
	}
	return logger
}

// loadCustomThemes registers the themes in the themes directory and logs the
// files that failed to load.
func loadCustomThemes(logger *logging.Logger) {
	loaded, errs := styles.DiscoverCustomThemes(config.ThemesDir())
	for _, err := range errs {
		logger.Warn("custom theme skipped", "error", err.Error())
	}
	if len(loaded) > 0 {
		logger.Debug("custom themes loaded", "themes", loaded)
	}
}
