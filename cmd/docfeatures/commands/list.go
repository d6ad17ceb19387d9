package commands

import (
	"fmt"

	"git.home.luguber.info/inful/docfeatures/internal/errors"
	"git.home.luguber.info/inful/docfeatures/internal/features"
)

// ListCmd implements the 'list' command.
type ListCmd struct {
	PathFlags `embed:""`
}

func (l *ListCmd) Run(g *Global, root *CLI) error {
	cfg, err := loadConfig(root, l.PathFlags)
	if err != nil {
		return err
	}

	paths := features.Paths{DocsDir: cfg.DocsDir, SiteDir: cfg.SiteDir}
	names, err := features.List(paths.Source())
	if err != nil {
		return errors.FileSystemError("list features", paths.Source(), err)
	}
	for _, name := range names {
		if _, err := fmt.Fprintln(g.out(), name); err != nil {
			return err
		}
	}
	return nil
}
