package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/username/brokertax/src/config"
	"github.com/username/brokertax/src/processors"
	"github.com/username/brokertax/src/renderer"
)

type taxCmd struct {
	cfg    *config.AppConfig
	year   int
	raw    bool
	asJSON bool
}

func (*taxCmd) Name() string     { return "tax" }
func (*taxCmd) Synopsis() string { return "print the tax relevant data of one year" }
func (*taxCmd) Usage() string {
	return `taxreport tax [-year <year>] [-raw | -json] <file>

  Matches sales against purchases first in first out and prints capital
  gains, dividends, foreign taxes and the remaining open lots.
`
}

func (c *taxCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.year, "year", c.cfg.DefaultTaxYear, "Tax year for dividends and foreign taxes")
	f.BoolVar(&c.raw, "raw", false, "Print Markdown without terminal rendering")
	f.BoolVar(&c.asJSON, "json", false, "Print the data as JSON")
}

func (c *taxCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "exactly one input file is required")
		return subcommands.ExitUsageError
	}
	tables, err := loadCodeTables()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading code tables: %v\n", err)
		return subcommands.ExitFailure
	}
	report, err := loadReport(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading report: %v\n", err)
		return subcommands.ExitFailure
	}

	data := processors.NewTaxProcessor(tables).ExtractTaxData(report, c.year)

	if c.asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(data); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding tax data: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.TaxMarkdown(data), c.raw)
	return subcommands.ExitSuccess
}
