package commands

import (
	"context"

	"git.home.luguber.info/inful/docfeatures/internal/errors"
	"git.home.luguber.info/inful/docfeatures/internal/hooks"
)

// HookCmd implements the 'hook' command: build tools that call hooks by
// name run `docfeatures hook on_post_build` once the site is written.
type HookCmd struct {
	PathFlags `embed:""`

	Event string `arg:"" help:"Hook event name (on_post_build)"`
}

func (h *HookCmd) Run(g *Global, root *CLI) error {
	ev, ok := hooks.ParseEvent(h.Event)
	if !ok {
		return errors.UnknownEvent(h.Event)
	}

	cfg, err := loadConfig(root, h.PathFlags)
	if err != nil {
		return err
	}

	p := newPipeline(cfg, false, "")
	defer p.Close()

	res, err := p.dispatch(context.Background(), ev)
	if err != nil {
		return err
	}
	return printResult(g, res, false)
}
