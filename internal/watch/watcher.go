// Package watch re-runs the feature copy whenever feature files change, for
// live-preview builds where the site is served while docs are edited.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-co-op/gocron/v2"

	"git.home.luguber.info/inful/docfeatures/internal/features"
	"git.home.luguber.info/inful/docfeatures/internal/logfields"
)

// RunFunc performs one copy pass.
type RunFunc func(ctx context.Context) error

// Options tunes a Watcher.
type Options struct {
	// Debounce collapses bursts of file events into one run.
	Debounce time.Duration
	// Resync, when positive, also runs on a fixed interval to catch missed events.
	Resync time.Duration
	Logger *slog.Logger
}

// Watcher monitors <docs_dir>/features and triggers RunFunc on changes to
// feature files. Deleting a source file never deletes the copied file.
type Watcher struct {
	docsDir   string
	sourceDir string
	run       RunFunc
	opts      Options
	logger    *slog.Logger

	watcher   *fsnotify.Watcher
	scheduler gocron.Scheduler

	runMu sync.Mutex
	runs  atomic.Int64
	ready chan struct{}
}

// New creates a Watcher for paths; run is usually a hook dispatch.
func New(paths features.Paths, run RunFunc, opts Options) (*Watcher, error) {
	if run == nil {
		return nil, fmt.Errorf("watch: run function is required")
	}
	if opts.Debounce <= 0 {
		opts.Debounce = 500 * time.Millisecond
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	docsDir, err := filepath.Abs(paths.DocsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve docs dir: %w", err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	return &Watcher{
		docsDir:   docsDir,
		sourceDir: filepath.Join(docsDir, features.FeaturesDirName),
		run:       run,
		opts:      opts,
		logger:    opts.Logger,
		watcher:   fw,
		ready:     make(chan struct{}),
	}, nil
}

// Ready is closed once the watches are in place and the initial run has finished.
func (w *Watcher) Ready() <-chan struct{} { return w.ready }

// Runs returns how many copy passes have completed.
func (w *Watcher) Runs() int64 { return w.runs.Load() }

// Run performs an initial copy, then watches until ctx is canceled.
func (w *Watcher) Run(ctx context.Context) error {
	defer func() {
		if err := w.watcher.Close(); err != nil {
			w.logger.Warn("Error closing file watcher", logfields.Error(err))
		}
	}()

	// Watching docs_dir catches the features directory being created later.
	if err := w.watcher.Add(w.docsDir); err != nil {
		return fmt.Errorf("failed to watch docs dir %s: %w", w.docsDir, err)
	}
	w.addSourceWatch()

	if w.opts.Resync > 0 {
		if err := w.startResync(ctx); err != nil {
			return err
		}
		defer func() {
			if err := w.scheduler.Shutdown(); err != nil {
				w.logger.Warn("Error stopping resync scheduler", logfields.Error(err))
			}
		}()
	}

	w.runOnce(ctx, "initial")
	close(w.ready)

	w.logger.Info("Watching feature files",
		logfields.Source(w.sourceDir),
		slog.Duration("debounce", w.opts.Debounce),
		slog.Duration("resync", w.opts.Resync))

	return w.loop(ctx)
}

func (w *Watcher) loop(ctx context.Context) error {
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
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(ev) {
				continue
			}
			w.logger.Debug("Feature change detected", logfields.File(ev.Name), slog.String("op", ev.Op.String()))
			if timer == nil {
				timer = time.NewTimer(w.opts.Debounce)
			} else {
				timer.Stop()
				timer.Reset(w.opts.Debounce)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			w.runOnce(ctx, "change")
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("File watcher error", logfields.Error(err))
		}
	}
}

// relevant filters events down to creates and writes of feature files, plus
// creation of the features directory itself.
func (w *Watcher) relevant(ev fsnotify.Event) bool {
	name := filepath.Clean(ev.Name)

	if name == w.sourceDir {
		if ev.Has(fsnotify.Create) {
			w.addSourceWatch()
			return true
		}
		return false
	}

	if filepath.Dir(name) != w.sourceDir || !features.IsFeatureFile(filepath.Base(name)) {
		return false
	}
	if ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename) {
		w.logger.Debug("Feature file removed from source; destination copy is kept", logfields.File(name))
		return false
	}
	return ev.Has(fsnotify.Create) || ev.Has(fsnotify.Write)
}

func (w *Watcher) addSourceWatch() {
	if err := w.watcher.Add(w.sourceDir); err != nil {
		// Absent until the docs tree creates it.
		w.logger.Debug("Features directory not watchable yet", logfields.Source(w.sourceDir), logfields.Error(err))
	}
}

func (w *Watcher) startResync(ctx context.Context) error {
	s, err := gocron.NewScheduler()
	if err != nil {
		return fmt.Errorf("failed to create gocron scheduler: %w", err)
	}
	if _, err := s.NewJob(
		gocron.DurationJob(w.opts.Resync),
		gocron.NewTask(func() { w.runOnce(ctx, "resync") }),
		gocron.WithName("features-resync"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	); err != nil {
		_ = s.Shutdown()
		return fmt.Errorf("failed to create resync job: %w", err)
	}
	w.scheduler = s
	s.Start()
	return nil
}

// runOnce serialises copy passes; errors are logged and watching continues.
func (w *Watcher) runOnce(ctx context.Context, reason string) {
	if ctx.Err() != nil {
		return
	}
	w.runMu.Lock()
	defer w.runMu.Unlock()

	start := time.Now()
	err := w.run(ctx)
	w.runs.Add(1)
	if err != nil {
		w.logger.Error("Feature copy failed", slog.String("trigger", reason), logfields.Error(err))
		return
	}
	w.logger.Debug("Feature copy pass complete", slog.String("trigger", reason), logfields.Duration(time.Since(start)))
}
