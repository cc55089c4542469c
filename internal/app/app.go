// Package app wires the hex grid to a terminal backend, the configuration
// file and the log, and runs the event loop that drives them.
package app

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/dvnrrs/hexcell/internal/config"
	"github.com/dvnrrs/hexcell/internal/grid"
	"github.com/dvnrrs/hexcell/internal/input/mouse"
	"github.com/dvnrrs/hexcell/internal/renderer/backend"
)

// Application owns the document, the grid showing it and the backend the
// grid is drawn to. Everything except Shutdown runs on the event loop.
type Application struct {
	mu sync.Mutex

	cfg     *config.Config
	doc     *grid.Document
	grid    *grid.Grid
	backend backend.Backend
	tracker *mouse.Tracker
	watcher *config.Watcher
	find    []byte

	logger  *Logger
	logFile io.Closer
	metrics *Metrics

	// quitArmed is set by a Quit refused for unsaved changes.
	quitArmed bool

	running      atomic.Bool
	done         chan struct{}
	shutdownOnce sync.Once

	opts Options
}

// Options configures the application. Non-zero fields override the
// configuration file and the environment.
type Options struct {
	// ConfigPath is the TOML or YAML configuration file. It is watched for
	// changes while the application runs.
	ConfigPath string

	// File is the file to edit.
	File string

	// ReadOnly opens the file read-only.
	ReadOnly bool

	// BytesPerLine sets the line width.
	BytesPerLine int

	// LogLevel and LogFile override the [log] section.
	LogLevel string
	LogFile  string

	// Find is a hex pattern, such as "DEADBEEF", searched for on startup.
	Find string

	// LookupEnv reads environment overrides. Defaults to os.LookupEnv.
	LookupEnv func(string) (string, bool)
}

// New loads the configuration, opens the log and reads the document.
func New(opts Options) (*Application, error) {
	if opts.File == "" {
		return nil, &InitError{Component: "document", Err: ErrNoFile}
	}
	if opts.LookupEnv == nil {
		opts.LookupEnv = os.LookupEnv
	}

	app := &Application{
		opts:    opts,
		done:    make(chan struct{}),
		metrics: NewMetrics(),
	}

	cfg := config.Default()
	if opts.ConfigPath != "" {
		loaded, err := config.Load(opts.ConfigPath)
		if err != nil {
			return nil, &InitError{Component: "config", Err: err}
		}
		cfg = loaded
	}
	if err := app.finishConfig(cfg); err != nil {
		return nil, &InitError{Component: "config", Err: err}
	}
	app.cfg = cfg

	if opts.Find != "" {
		pattern, err := parseHexPattern(opts.Find)
		if err != nil {
			return nil, &InitError{Component: "find", Err: err}
		}
		app.find = pattern
	}

	logger, logFile, err := openLogger(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		return nil, &InitError{Component: "log", Err: err}
	}
	app.logger, app.logFile = logger, logFile

	doc, err := grid.OpenDocument(opts.File)
	if err != nil {
		app.closeLog()
		return nil, &InitError{Component: "document", Err: err}
	}
	doc.SetReadOnly(cfg.Editor.ReadOnly)
	app.doc = doc

	app.logger.Info("opened %s (%d bytes, read-only=%t)", opts.File, doc.Len(), doc.ReadOnly())
	return app, nil
}

// finishConfig layers the environment and the command line over cfg.
func (app *Application) finishConfig(cfg *config.Config) error {
	if err := cfg.ApplyEnv(app.opts.LookupEnv); err != nil {
		return err
	}
	if app.opts.ReadOnly {
		cfg.Editor.ReadOnly = true
	}
	if app.opts.BytesPerLine > 0 {
		cfg.Editor.BytesPerLine = app.opts.BytesPerLine
	}
	if app.opts.LogLevel != "" {
		cfg.Log.Level = app.opts.LogLevel
	}
	if app.opts.LogFile != "" {
		cfg.Log.File = app.opts.LogFile
	}
	return cfg.Validate()
}

// parseHexPattern decodes a search pattern such as "de ad BE EF".
func parseHexPattern(s string) ([]byte, error) {
	s = strings.Join(strings.Fields(s), "")
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	pattern, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("hex pattern %q: %w", s, err)
	}
	return pattern, nil
}

// SetBackend sets the terminal backend.
// Must be called before Run().
func (app *Application) SetBackend(b backend.Backend) error {
	app.mu.Lock()
	defer app.mu.Unlock()

	if app.running.Load() {
		return ErrAlreadyRunning
	}

	app.backend = b
	return nil
}

// Run initializes the backend, builds the grid and runs the event loop
// until Ctrl+Q or Shutdown. A quit from the keyboard returns ErrQuit.
func (app *Application) Run() error {
	app.mu.Lock()
	b := app.backend
	app.mu.Unlock()
	if b == nil {
		return ErrNoBackend
	}

	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	if err := b.Init(); err != nil {
		return &InitError{Component: "backend", Err: err}
	}
	defer b.Shutdown()

	if err := app.buildGrid(); err != nil {
		return &InitError{Component: "grid", Err: err}
	}
	if app.opts.ConfigPath != "" {
		app.startWatcher()
	}

	app.logger.Info("running")
	return app.eventLoop()
}

// buildGrid sizes the grid to the backend, leaving a row for the status line.
func (app *Application) buildGrid() error {
	opts, err := app.cfg.Options()
	if err != nil {
		return err
	}

	_, height := app.backend.Size()
	g, err := grid.New(app.doc, grid.Config{
		BytesPerLine: app.cfg.Editor.BytesPerLine,
		Rows:         gridRows(height),
		Options:      opts,
		Logger:       app.logger.WithComponent("grid"),
	})
	if err != nil {
		return err
	}

	app.grid = g
	app.tracker = mouse.NewTracker(g.HitTest)

	if len(app.find) > 0 {
		n := g.Find(app.find)
		app.logger.Info("find %X: %d match(es)", app.find, n)
	}
	return nil
}

func gridRows(height int) int {
	return max(height-1, 1)
}

func (app *Application) startWatcher() {
	w, err := config.Watch(app.opts.ConfigPath, app.postReload)
	if err != nil {
		app.logComponentError("config", err)
		return
	}

	app.mu.Lock()
	app.watcher = w
	app.mu.Unlock()
}

// postReload runs on the watcher goroutine; the event loop applies the
// result.
func (app *Application) postReload(cfg *config.Config, err error) {
	app.backend.PostEvent(backend.Event{
		Type: backend.EventInterrupt,
		Data: configReload{cfg: cfg, err: err},
	})
}

// Shutdown stops the event loop and releases the watcher, the backend and
// the log. It is safe to call from any goroutine, more than once.
func (app *Application) Shutdown() {
	app.shutdownOnce.Do(func() {
		close(app.done)

		app.mu.Lock()
		w, b := app.watcher, app.backend
		app.mu.Unlock()

		if w != nil {
			if err := w.Close(); err != nil {
				app.logComponentError("config", err)
			}
		}
		// Unblocks PollEvent.
		if b != nil && app.running.Load() {
			b.Shutdown()
		}

		app.logger.Info("shutdown: %s", app.metrics.Snapshot())
		app.closeLog()
	})
}

func (app *Application) closeLog() {
	if app.logFile != nil {
		_ = app.logFile.Close()
	}
}

// IsRunning returns true if the application is running.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}

// Config returns the active configuration.
func (app *Application) Config() *config.Config {
	return app.cfg
}

// Document returns the edited document.
func (app *Application) Document() *grid.Document {
	return app.doc
}

// Grid returns the grid, or nil before Run.
func (app *Application) Grid() *grid.Grid {
	return app.grid
}
