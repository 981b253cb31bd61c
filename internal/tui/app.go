package tui

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/Iron-Ham/searchbox/internal/autocomplete"
	"github.com/Iron-Ham/searchbox/internal/catalog"
	"github.com/Iron-Ham/searchbox/internal/config"
	"github.com/Iron-Ham/searchbox/internal/errors"
	"github.com/Iron-Ham/searchbox/internal/logging"
	"github.com/Iron-Ham/searchbox/internal/source"
	tuimsg "github.com/Iron-Ham/searchbox/internal/tui/msg"
	"github.com/Iron-Ham/searchbox/internal/tui/styles"
	tea "github.com/charmbracelet/bubbletea"
)

// Options configures an App.
type Options struct {
	Config *config.Config

	// Source answers lookups. The App does not close it.
	Source source.Source

	Logger *logging.Logger

	// Input and Output default to the process's stdin and stdout.
	Input  io.Reader
	Output io.Writer

	// AltScreen runs the UI in the terminal's alternate screen.
	AltScreen bool
}

// App wraps the Bubbletea program
type App struct {
	program *tea.Program
	opts    Options
	logger  *logging.Logger
}

// New creates a new TUI application
func New(opts Options) *App {
	if opts.Config == nil {
		opts.Config = config.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.NopLogger()
	}
	return &App{opts: opts, logger: logger}
}

// send forwards a message from a goroutine outside the Bubble Tea loop.
func (a *App) send(m tea.Msg) {
	if a.program != nil {
		a.program.Send(m)
	}
}

// Run starts the TUI application and blocks until the user quits. It returns
// the last committed value ("" when nothing was selected or the box was
// cleared).
func (a *App) Run(ctx context.Context) (string, error) {
	cfg := a.opts.Config
	sel := &selection{}

	ctrl := autocomplete.New(a.opts.Source, autocomplete.Options{
		Debounce: cfg.Search.Debounce(),
		OnSelect: sel.set,
		OnError: func(err error) {
			a.send(tuimsg.LookupFailedMsg{Err: err})
		},
		OnUpdate: func() {
			a.send(tuimsg.StateChangedMsg{})
		},
		Logger: a.logger,
	})

	model := newModel(ctrl, sel, modelOptions{
		Search:   cfg.Search,
		Styles:   styles.ForTheme(cfg.TUI.Theme),
		ShowHelp: cfg.TUI.ShowHelp,
		Source:   a.opts.Source,
		Logger:   a.logger,
	})

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	progOpts := []tea.ProgramOption{tea.WithContext(runCtx)}
	if a.opts.AltScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}
	if a.opts.Input != nil {
		progOpts = append(progOpts, tea.WithInput(a.opts.Input))
	}
	if a.opts.Output != nil {
		progOpts = append(progOpts, tea.WithOutput(a.opts.Output))
	}
	a.program = tea.NewProgram(model, progOpts...)

	// Set up signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigChan)

	go func() {
		select {
		case <-sigChan:
			a.program.Quit()
		case <-runCtx.Done():
		}
	}()

	if err := a.startWatcher(runCtx); err != nil {
		_ = ctrl.Close()
		return "", err
	}

	_, err := a.program.Run()

	// The program no longer reads messages, so pending lookups can finish
	// without blocking on Send.
	cancel()
	_ = ctrl.Close()

	// Cancellation by the caller is a normal way to stop.
	if err != nil && ctx.Err() != nil && errors.Is(err, tea.ErrProgramKilled) {
		err = nil
	}
	return sel.get(), err
}

// startWatcher reloads the catalog file on change when source.watch is set.
func (a *App) startWatcher(ctx context.Context) error {
	cfg := a.opts.Config
	path := cfg.Source.ResolveCatalog()
	if !cfg.Source.Watch || path == "" {
		return nil
	}

	w, err := catalog.NewWatcher(path, catalog.WatchOptions{
		Catalog: catalog.Options{
			Exclude: cfg.Source.Exclude,
			Logger:  a.logger,
		},
		Delay: cfg.Source.WatchDelay(),
		OnReload: func(c *catalog.Catalog) {
			a.send(tuimsg.CatalogLoadedMsg{Catalog: c})
		},
		OnError: func(err error) {
			a.send(tuimsg.ErrMsg{Err: err})
		},
	})
	if err != nil {
		return err
	}

	go func() {
		if err := w.Run(ctx); err != nil && ctx.Err() == nil {
			a.logger.Warn("catalog watcher stopped", "error", err.Error())
		}
	}()
	return nil
}
