// File: watch.go
// Title: Pipeline File Watching
// Description: Reloads a pipeline file when it changes on disk, using
//              fsnotify on the containing directory so editors that replace
//              the file by rename are picked up.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-01
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-01 v0.1.0: Polling watcher
// - 2026-10-17 v0.2.0: Replaced polling with fsnotify, trailing debounce

package config

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	strexterror "github.com/msto63/strext/core/error"
	"github.com/msto63/strext/utils/stringx"
)

// DefaultDebounce is how long the watcher waits after the last event before
// reloading
const DefaultDebounce = 100 * time.Millisecond

// ReloadHandler receives the reloaded file, or the error that prevented it
type ReloadHandler func(pf *PipelineFile, err error)

// WatchOptions configures a Watcher
type WatchOptions struct {
	Load     LoadOptions
	Debounce time.Duration
}

// Watcher reloads one pipeline file on change
type Watcher struct {
	path     string
	absPath  string
	options  WatchOptions
	notifier *fsnotify.Watcher
}

// NewWatcher starts watching the directory of filePath. Events are not
// delivered until Run is called.
func NewWatcher(filePath string, options WatchOptions) (*Watcher, error) {
	if stringx.IsBlank(filePath) {
		return nil, strexterror.New("file path required for watching").
			WithCode(strexterror.CodeRequiredField).
			WithOperation("config.NewWatcher")
	}

	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return nil, strexterror.Wrap(err, "failed to resolve pipeline file path").
			WithCode(strexterror.CodeConfigError).
			WithOperation("config.NewWatcher").
			WithDetail("filePath", filePath)
	}

	if options.Debounce <= 0 {
		options.Debounce = DefaultDebounce
	}

	notifier, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, strexterror.Wrap(err, "failed to create file watcher").
			WithCode(strexterror.CodeConfigError).
			WithOperation("config.NewWatcher")
	}

	if err := notifier.Add(filepath.Dir(absPath)); err != nil {
		notifier.Close()
		return nil, strexterror.Wrap(err, "failed to watch directory").
			WithCode(strexterror.CodeConfigError).
			WithOperation("config.NewWatcher").
			WithDetail("dir", filepath.Dir(absPath))
	}

	return &Watcher{
		path:     filePath,
		absPath:  absPath,
		options:  options,
		notifier: notifier,
	}, nil
}

// Run delivers reloads to handler until ctx is done. The handler is called
// from Run's goroutine.
func (w *Watcher) Run(ctx context.Context, handler ReloadHandler) error {
	defer w.notifier.Close()

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.notifier.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.absPath {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			if timer == nil {
				timer = time.NewTimer(w.options.Debounce)
			} else {
				timer.Reset(w.options.Debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			handler(LoadWithOptions(w.path, w.options.Load))

		case err, ok := <-w.notifier.Errors:
			if !ok {
				return nil
			}
			handler(nil, strexterror.Wrap(err, "file watcher error").
				WithCode(strexterror.CodeConfigError).
				WithOperation("config.Watch").
				WithDetail("filePath", w.path))
		}
	}
}

// Close stops watching without waiting for Run
func (w *Watcher) Close() error {
	return w.notifier.Close()
}

// Watch blocks until ctx is done, calling handler each time filePath is
// written or recreated. The file is loaded with Load's defaults.
func Watch(ctx context.Context, filePath string, handler ReloadHandler) error {
	w, err := NewWatcher(filePath, WatchOptions{
		Load: LoadOptions{Format: FormatAuto, EnvPrefix: DefaultEnvPrefix},
	})
	if err != nil {
		return err
	}
	return w.Run(ctx, handler)
}
