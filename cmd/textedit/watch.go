package main

import (
	"context"

	"github.com/fsnotify/fsnotify"
	"github.com/pterm/pterm"

	"github.com/gogpu/textedit"
)

// rerunOps are the file events that trigger a new run.
const rerunOps = fsnotify.Write | fsnotify.Create | fsnotify.Rename

// watch runs the script now and again whenever the script or the input file
// changes, until ctx is done.
func (a *app) watch(ctx context.Context) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	paths := []string{a.cfg.script}
	if a.cfg.file != "" {
		paths = append(paths, a.cfg.file)
	}
	for _, p := range paths {
		if err := w.Add(p); err != nil {
			return err
		}
	}

	a.rerun()
	for {
		select {
		case <-ctx.Done():
			return nil
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			textedit.Logger().Warn("textedit: watch error", "err", err)
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Op&rerunOps == 0 {
				continue
			}
			textedit.Logger().Info("textedit: file changed", "path", ev.Name, "op", ev.Op.String())
			// Editors that replace the file drop the watch; add it back.
			if ev.Op&(fsnotify.Rename|fsnotify.Create) != 0 {
				_ = w.Add(ev.Name)
			}
			a.rerun()
		}
	}
}

// rerun resets the text and runs the script, reporting errors without
// stopping the watcher.
func (a *app) rerun() {
	if err := a.reset(); err != nil {
		pterm.Error.Println(err)
		return
	}
	if err := a.runScript(); err != nil {
		pterm.Error.Println(err)
		return
	}
	pterm.Success.Printf("ran %s: %d characters, %d lines\n",
		a.cfg.script, a.session.Len(), len(a.session.Layout().Lines()))
}
