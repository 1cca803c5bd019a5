// Command carteira is a terminal client for the portfolio gRPC service.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")

	commander.Register(&assetsCmd{}, "ledger")
	commander.Register(&addAssetCmd{}, "ledger")
	commander.Register(&recordCmd{}, "ledger")
	commander.Register(&operationsCmd{}, "ledger")

	commander.Register(&seriesCmd{}, "reports")
	commander.Register(&returnCmd{}, "reports")
	commander.Register(&summaryCmd{}, "reports")
	commander.Register(&compositionCmd{}, "reports")
	commander.Register(&benchmarkCmd{}, "reports")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
