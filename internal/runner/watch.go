package runner

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/leapstack-labs/leapcss/pkg/lint"
)

// DefaultDebounce is the quiet period after the last change before a
// watched run starts.
const DefaultDebounce = 100 * time.Millisecond

// WatchOptions configures Watch.
type WatchOptions struct {
	Paths    []string
	Discover DiscoverOptions
	Run      Options // Targets is filled in on every run
	Debounce time.Duration
}

// Watch analyzes the files under opts.Paths, then again after every
// change, until ctx is done. onResult receives each outcome; a run error
// does not stop watching unless it is a configuration error, which cannot
// be fixed by editing stylesheets.
func Watch(ctx context.Context, opts WatchOptions, onResult func(*Result, error)) error {
	logger := opts.Run.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	debounce := opts.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	runOnce := func() error {
		targets, err := Discover(opts.Paths, opts.Discover)
		if err != nil {
			onResult(nil, err)
			return nil
		}
		ropts := opts.Run
		ropts.Targets = targets
		res, err := Run(ctx, ropts)
		if errors.Is(err, ErrCancelled) && ctx.Err() != nil {
			return nil
		}
		onResult(res, err)
		if isConfigError(err) {
			return err
		}
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	for _, p := range opts.Paths {
		if err := watchPath(watcher, p); err != nil {
			return err
		}
	}

	if err := runOnce(); err != nil {
		return err
	}

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := watchPath(watcher, event.Name); err != nil {
						logger.Warn("failed to watch new directory", slog.String("path", event.Name), slog.Any("error", err))
					}
					continue
				}
			}
			if !isStylesheet(event.Name, opts.Discover) {
				continue
			}
			logger.Debug("file changed", slog.String("file", event.Name), slog.String("op", event.Op.String()))

			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			if err := runOnce(); err != nil {
				return err
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("watcher error", slog.Any("error", err))
		}
	}
}

// watchPath adds a directory and all its subdirectories to the watcher.
// A file is watched through its parent directory.
func watchPath(watcher *fsnotify.Watcher, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}
	if !info.IsDir() {
		return watcher.Add(filepath.Dir(path))
	}
	return filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if p != path && (skipDirs[d.Name()] || strings.HasPrefix(d.Name(), ".")) {
			return filepath.SkipDir
		}
		return watcher.Add(p)
	})
}

func isStylesheet(path string, opts DiscoverOptions) bool {
	return matchLanguage(path, opts.languages(), opts.Suffixes) != nil
}

func isConfigError(err error) bool {
	var cerr *lint.ConfigError
	return errors.As(err, &cerr) || errors.Is(err, lint.ErrUnknownRule)
}
