package core

import (
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// FlagWatcher reinstalls the flag provider whenever the flags file changes.
// It watches the parent directory so editors that replace the file by rename
// are picked up too.
type FlagWatcher struct {
	path     string
	watcher  *fsnotify.Watcher
	onReload func(*FlagFile)
	logger   *slog.Logger
	done     chan struct{}
}

var WatchFlagFile = func(path string, logger *slog.Logger, onReload func(*FlagFile)) (*FlagWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, err
	}

	if logger == nil {
		logger = NewDiscardLogger()
	}

	fw := &FlagWatcher{
		path:     abs,
		watcher:  w,
		onReload: onReload,
		logger:   logger,
		done:     make(chan struct{}),
	}
	go fw.loop()
	return fw, nil
}

func (fw *FlagWatcher) loop() {
	defer close(fw.done)

	for {
		select {
		case ev, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != fw.path {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
				fw.reload()
			}
		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			fw.logger.Warn("flag watcher error", "error", err)
		}
	}
}

func (fw *FlagWatcher) reload() {
	file, err := InstallFlagProvider(fw.path)
	if err != nil {
		fw.logger.Warn("flag reload failed, keeping previous flags", "path", fw.path, "error", err)
		return
	}

	fw.logger.Info("flags reloaded", "path", fw.path, "flags", len(file.Flags))
	if fw.onReload != nil {
		fw.onReload(file)
	}
}

// Close stops the watcher and waits for its loop to exit. A nil watcher
// closes cleanly.
func (fw *FlagWatcher) Close() error {
	if fw == nil {
		return nil
	}
	err := fw.watcher.Close()
	<-fw.done
	return err
}

// Done is closed once the watch loop has exited.
func (fw *FlagWatcher) Done() <-chan struct{} {
	return fw.done
}
