package commands

import (
	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/docfeatures/internal/version"
)

// NewParser builds the kong parser for cli.
func NewParser(cli *CLI, options ...kong.Option) (*kong.Kong, error) {
	opts := []kong.Option{
		kong.Name("docfeatures"),
		kong.Description("Copy documentation feature JSON files into a built site."),
		kong.UsageOnError(),
		kong.Vars{"version": version.String()},
	}
	return kong.New(cli, append(opts, options...)...)
}

// Execute parses args and runs the selected command.
func Execute(args []string, g *Global, options ...kong.Option) error {
	var cli CLI
	parser, err := NewParser(&cli, options...)
	if err != nil {
		return err
	}
	kctx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	if g != nil {
		g.Verbose = cli.Verbose
	}
	return kctx.Run(g, &cli)
}
