package commands

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"git.home.luguber.info/inful/docfeatures/internal/features"
	"git.home.luguber.info/inful/docfeatures/internal/hooks"
	"git.home.luguber.info/inful/docfeatures/internal/watch"
)

// WatchCmd implements the 'watch' command.
type WatchCmd struct {
	PathFlags `embed:""`

	Debounce time.Duration `help:"Quiet period before copying after a change (overrides watch.debounce)"`
	Resync   time.Duration `help:"Also copy on this interval; 0 disables (overrides watch.resync)"`
}

func (w *WatchCmd) Run(_ *Global, root *CLI) error {
	cfg, err := loadConfig(root, w.PathFlags)
	if err != nil {
		return err
	}
	if w.Debounce > 0 {
		cfg.Watch.Debounce = w.Debounce
	}
	if w.Resync > 0 {
		cfg.Watch.Resync = w.Resync
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	p := newPipeline(cfg, false, "")
	defer p.Close()

	run := func(ctx context.Context) error {
		_, err := p.dispatch(ctx, hooks.EventPostBuild)
		return err
	}

	watcher, err := watch.New(features.Paths{DocsDir: cfg.DocsDir, SiteDir: cfg.SiteDir}, run, watch.Options{
		Debounce: cfg.Watch.Debounce,
		Resync:   cfg.Watch.Resync,
		Logger:   slog.Default(),
	})
	if err != nil {
		return err
	}

	if err := watcher.Run(ctx); err != nil {
		return err
	}
	slog.Info("Watcher stopped")
	return nil
}
