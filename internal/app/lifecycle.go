package app

import (
	"fmt"
	"path/filepath"
)

// Save writes the document back to the file it was opened from. Deleted
// bytes are dropped from the file and the grid is rebound to the result.
func (app *Application) Save() error {
	path := app.doc.Path()

	if app.doc.ReadOnly() {
		app.grid.SetMessage("read-only")
		return &OperationError{Op: "save", Target: path, Err: ErrReadOnly}
	}

	if err := app.doc.Save(""); err != nil {
		app.grid.SetMessage(err.Error())
		return &OperationError{Op: "save", Target: path, Err: err}
	}

	app.grid.Reload()
	app.grid.SetMessage(fmt.Sprintf("wrote %d bytes to %s", app.doc.Len(), filepath.Base(path)))
	app.logger.Info("saved %s (%d bytes)", path, app.doc.Len())
	return nil
}

// Quit returns ErrQuit when the loop should stop. With unsaved changes and
// no force, the first call only warns; calling it again quits.
func (app *Application) Quit(force bool) error {
	if force || app.quitArmed || !app.doc.Modified() {
		return ErrQuit
	}
	app.quitArmed = true
	app.grid.SetMessage(fmt.Sprintf("%v: Ctrl+Q again to quit, Ctrl+S to save", ErrUnsavedChanges))
	return nil
}
