// Command taxreport reads a broker activity export and prints its sections or
// the tax relevant data of one year.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
	"github.com/username/brokertax/src/config"
	"github.com/username/brokertax/src/logger"
)

var (
	logLevel       = flag.String("log-level", "warn", "Log level (debug, info, warn, error)")
	codeTablesPath = flag.String("code-tables", "", "Path to a JSON file overriding the built-in code tables")
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")

	commander.Register(&sectionsCmd{}, "report")
	commander.Register(&sectionCmd{}, "report")
	commander.Register(&taxCmd{cfg: config.FromEnv()}, "tax")

	flag.Parse()

	logger.L = logger.New(os.Stderr, *logLevel, "text")
	decimal.MarshalJSONWithoutQuotes = true

	os.Exit(int(commander.Execute(context.Background())))
}
