package config

import (
	"log/slog"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads path on every write or create event and invokes onChange
// with the newly loaded File, for `generate --watch`. The caller should
// `defer` a call to the returned stop function. Failing to create the
// watcher or to watch path is returned as an error. Once watching, a
// reload that fails and any error the watcher reports are logged and
// the loop keeps running, matching the core's degrade-but-continue
// philosophy for non-fatal conditions.
func Watch(path string, onChange func(File)) (stop func(), err error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(path); err != nil {
		watcher.Close()
		return nil, err
	}

	done := make(chan struct{})
	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				cfg, err := Load(path)
				if err != nil {
					slog.Warn("config: reload failed, keeping previous config", "path", path, "error", err)
					continue
				}
				onChange(cfg)
			case watchErr, ok := <-watcher.Errors:
				if !ok {
					return
				}
				slog.Warn("config: watcher error", "error", watchErr)
			case <-done:
				return
			}
		}
	}()

	return func() {
		close(done)
		watcher.Close()
	}, nil
}
