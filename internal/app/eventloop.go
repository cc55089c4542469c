package app

import (
	"errors"

	"github.com/dvnrrs/hexcell/internal/config"
	"github.com/dvnrrs/hexcell/internal/input/key"
	"github.com/dvnrrs/hexcell/internal/input/mouse"
	"github.com/dvnrrs/hexcell/internal/renderer/backend"
)

// Application chords. They are checked before the grid sees a key.
var (
	saveKey = key.MustParse("Ctrl+S")
	quitKey = key.MustParse("Ctrl+Q")
)

// configReload is the payload of the interrupt posted by the watcher.
type configReload struct {
	cfg *config.Config
	err error
}

// eventLoop draws, then alternates between one event and one frame until
// a quit or Shutdown.
func (app *Application) eventLoop() error {
	app.draw()

	for {
		ev := app.backend.PollEvent()

		select {
		case <-app.done:
			return nil
		default:
		}

		if err := app.handleBackendEvent(ev); err != nil {
			if !errors.Is(err, ErrQuit) {
				app.logComponentError("eventloop", err)
			}
			return err
		}
		app.draw()
	}
}

func (app *Application) draw() {
	timer := StartTimer()
	app.grid.Draw(app.backend)
	app.backend.Show()
	app.metrics.RecordFrame(timer.Elapsed())
}

// handleBackendEvent processes a backend event and routes it appropriately.
// Returns ErrQuit if the application should exit.
func (app *Application) handleBackendEvent(ev backend.Event) error {
	switch ev.Type {
	case backend.EventKey:
		timer := StartTimer()
		err := app.handleKeyEvent(ev.Key)
		app.metrics.RecordKey(timer.Elapsed())
		return err

	case backend.EventMouse:
		timer := StartTimer()
		app.handleMouseEvent(ev.Mouse)
		app.metrics.RecordMouse(timer.Elapsed())
		return nil

	case backend.EventResize:
		return app.handleResize(ev.Width, ev.Height)

	case backend.EventFocus:
		app.handleFocusEvent(ev.Focused)
		return nil

	case backend.EventInterrupt:
		if r, ok := ev.Data.(configReload); ok {
			app.applyReload(r)
		}
		return nil

	default:
		return nil
	}
}

func (app *Application) handleKeyEvent(ev key.Event) error {
	if ev.Equals(quitKey) {
		return app.Quit(false)
	}
	app.quitArmed = false

	if ev.Equals(saveKey) {
		if err := app.Save(); err != nil {
			app.logComponentError("save", err)
		}
		return nil
	}

	if !app.grid.HandleKey(ev) {
		app.logger.Debug("unhandled key %s", ev)
	}
	return nil
}

func (app *Application) handleMouseEvent(s backend.MouseSample) {
	for _, ev := range app.tracker.Feed(s.Position, s.Button, s.Modifiers) {
		app.grid.HandleMouse(ev)
	}
}

// handleFocusEvent drops the hover when the terminal loses focus, since no
// further motion will arrive to clear it.
func (app *Application) handleFocusEvent(focused bool) {
	if focused {
		return
	}
	if target := app.tracker.Current(); target >= 0 {
		app.grid.HandleMouse(mouse.Event{Action: mouse.ActionLeave, Target: target})
	}
	app.tracker.Reset()
}

func (app *Application) handleResize(width, height int) error {
	if err := app.grid.Resize(gridRows(height), app.cfg.Editor.BytesPerLine); err != nil {
		return err
	}
	app.tracker.Reset()
	app.grid.Invalidate()
	app.backend.Clear()
	app.logger.Debug("resized to %dx%d", width, height)
	return nil
}

// applyReload swaps in a reloaded configuration. A failed reload keeps the
// current settings.
func (app *Application) applyReload(r configReload) {
	log := app.logger.WithComponent("config")

	fail := func(err error) {
		log.Warn("reload of %s rejected: %v", app.opts.ConfigPath, err)
		app.grid.SetMessage("config: " + err.Error())
	}

	if r.err != nil {
		fail(r.err)
		return
	}
	cfg := r.cfg
	if err := app.finishConfig(cfg); err != nil {
		fail(err)
		return
	}
	opts, err := cfg.Options()
	if err != nil {
		fail(err)
		return
	}

	_, height := app.backend.Size()
	if err := app.grid.Resize(gridRows(height), cfg.Editor.BytesPerLine); err != nil {
		fail(err)
		return
	}

	app.cfg = cfg
	app.doc.SetReadOnly(cfg.Editor.ReadOnly)
	app.logger.SetLevel(ParseLogLevel(cfg.Log.Level))
	app.grid.SetOptions(opts)
	app.grid.Invalidate()
	app.tracker.Reset()
	app.grid.SetMessage("config reloaded")
	app.metrics.RecordReload()
	log.Info("reloaded %s", app.opts.ConfigPath)
}
