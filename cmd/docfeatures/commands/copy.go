package commands

import (
	"context"
	"encoding/json"
	"fmt"

	"git.home.luguber.info/inful/docfeatures/internal/features"
	"git.home.luguber.info/inful/docfeatures/internal/hooks"
)

// CopyCmd implements the 'copy' command.
type CopyCmd struct {
	PathFlags `embed:""`

	DryRun      bool   `name:"dry-run" help:"Report what would be copied without writing"`
	MetricsFile string `name:"metrics-file" help:"Write Prometheus textfile metrics to this path (overrides metrics.textfile)" type:"path"`
	JSON        bool   `name:"json" help:"Print the copy result as JSON"`
}

func (c *CopyCmd) Run(g *Global, root *CLI) error {
	cfg, err := loadConfig(root, c.PathFlags)
	if err != nil {
		return err
	}

	p := newPipeline(cfg, c.DryRun, c.MetricsFile)
	defer p.Close()

	res, err := p.dispatch(context.Background(), hooks.EventPostBuild)
	if err != nil {
		return err
	}
	return printResult(g, res, c.JSON)
}

func printResult(g *Global, res *features.Result, asJSON bool) error {
	out := g.out()
	if res == nil {
		return nil
	}
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	switch {
	case res.SourceMissing:
		_, err := fmt.Fprintf(out, "No feature directory at %s, nothing to copy\n", res.Source)
		return err
	case res.DryRun:
		_, err := fmt.Fprintf(out, "Would copy %d feature file(s) to %s\n", res.Count(), res.Dest)
		return err
	default:
		_, err := fmt.Fprintf(out, "Copied %d feature file(s) to %s\n", res.Count(), res.Dest)
		return err
	}
}
