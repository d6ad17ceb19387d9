package main

import (
	"log/slog"
	"os"

	"git.home.luguber.info/inful/docfeatures/cmd/docfeatures/commands"
	"git.home.luguber.info/inful/docfeatures/internal/errors"
)

func main() {
	global := &commands.Global{Out: os.Stdout}
	err := commands.Execute(os.Args[1:], global)
	errors.NewCLIErrorAdapter(global.Verbose, slog.Default()).HandleError(err)
}
