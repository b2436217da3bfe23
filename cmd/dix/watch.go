package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/reusee/dix/dixlang"
	"github.com/reusee/dix/logs"
)

// watchFile runs the script at path and reruns it after every change until ctx is done.
func watchFile(
	ctx context.Context,
	logger logs.Logger,
	path string,
	run func(context.Context, *dixlang.Source) error,
) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return wrap(err)
	}
	defer watcher.Close()
	// editors replace files, so watch the directory
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return wrap(err)
	}

	runOnce := func() {
		src, err := loadSource(path)
		if err == nil {
			err = run(ctx, src)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
		}
	}
	runOnce()

	var debounce <-chan time.Time
	for {
		select {

		case <-ctx.Done():
			return nil

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != filepath.Clean(path) {
				continue
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
				continue
			}
			logger.InfoContext(ctx, "file changed",
				"path", ev.Name,
				"op", ev.Op.String(),
			)
			debounce = time.After(100 * time.Millisecond)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.ErrorContext(ctx, "watch", "error", err)

		case <-debounce:
			debounce = nil
			runOnce()

		}
	}
}
