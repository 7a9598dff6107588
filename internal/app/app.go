package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/five82/depot/internal/board"
	"github.com/five82/depot/internal/catalog"
	"github.com/five82/depot/internal/config"
	"github.com/five82/depot/internal/logging"
	"github.com/five82/depot/internal/opener"
	"github.com/five82/depot/internal/prefs"
	"github.com/five82/depot/internal/ui"
)

// Options configure the depot application.
type Options struct {
	ConfigPath  string
	CatalogPath string // overrides the config file's catalog when set
	PrefsPath   string // empty uses default ~/.config/depot/prefs.toml
	DryRun      bool   // record downloads instead of opening them
}

// Run boots the depot TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.New(logging.Options{Level: cfg.LogLevel, Path: cfg.LogFile})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	uiOpts, err := Compose(cfg, opts, logger)
	if err != nil {
		logger.Error("startup failed", zap.Error(err))
		return err
	}
	uiOpts.Context = ctx

	if err := ui.Run(uiOpts); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

// Compose loads the catalog and preferences and picks the navigator,
// producing everything the UI needs apart from the context.
func Compose(cfg config.Config, opts Options, logger *zap.Logger) (ui.Options, error) {
	catalogPath := cfg.CatalogPath
	if opts.CatalogPath != "" {
		catalogPath = opts.CatalogPath
	}

	programs, err := catalog.Load(catalogPath)
	if err != nil {
		return ui.Options{}, fmt.Errorf("load catalog: %w", err)
	}

	source := catalogPath
	if source == "" {
		source = "built-in"
	}
	logger.Info("catalog loaded",
		zap.String("source", source),
		zap.Int("programs", len(programs)))

	userPrefs := prefs.Load(opts.PrefsPath)

	var nav board.Navigator = opener.New()
	if opts.DryRun {
		nav = &loggingRecorder{logger: logger}
	}

	return ui.Options{
		Programs:   programs,
		Navigator:  nav,
		Logger:     logger,
		ThemeName:  userPrefs.Theme,
		HideDetail: userPrefs.HideDetail,
		PrefsPath:  opts.PrefsPath,
	}, nil
}

// loggingRecorder records dry-run downloads and writes each one to the log.
type loggingRecorder struct {
	opener.Recorder
	logger *zap.Logger
}

func (r *loggingRecorder) Navigate(path string) error {
	r.logger.Info("dry run: skipped opening file", zap.String("file", path))
	return r.Recorder.Navigate(path)
}
