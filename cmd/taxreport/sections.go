package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/username/brokertax/src/models"
	"github.com/username/brokertax/src/renderer"
)

type sectionsCmd struct {
	raw bool
}

func (*sectionsCmd) Name() string     { return "sections" }
func (*sectionsCmd) Synopsis() string { return "list the sections found in an export" }
func (*sectionsCmd) Usage() string {
	return `taxreport sections [-raw] <file>

  Lists every section key with its name, column and row counts.
`
}

func (c *sectionsCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.raw, "raw", false, "Print Markdown without terminal rendering")
}

func (c *sectionsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "exactly one input file is required")
		return subcommands.ExitUsageError
	}
	report, err := loadReport(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading report: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.SectionsMarkdown(report), c.raw)
	return subcommands.ExitSuccess
}

type sectionCmd struct {
	name string
	raw  bool
}

func (*sectionCmd) Name() string     { return "section" }
func (*sectionCmd) Synopsis() string { return "print one section of an export" }
func (*sectionCmd) Usage() string {
	return `taxreport section -name <section> [-raw] <file>

  Prints the rows of one section. The name is matched after normalization,
  so "Withholding Tax" and "withholding_tax" are the same section.
`
}

func (c *sectionCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Section name or key")
	f.BoolVar(&c.raw, "raw", false, "Print Markdown without terminal rendering")
}

func (c *sectionCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" || f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "-name and exactly one input file are required")
		return subcommands.ExitUsageError
	}
	report, err := loadReport(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading report: %v\n", err)
		return subcommands.ExitFailure
	}
	section, key, ok := report.FindSection(c.name)
	if !ok {
		fmt.Fprintf(os.Stderr, "section %q (key %q) not found\n", c.name, models.NormalizeSectionName(c.name))
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.SectionMarkdown(key, section), c.raw)
	return subcommands.ExitSuccess
}
