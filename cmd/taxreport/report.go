package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/username/brokertax/src/models"
	"github.com/username/brokertax/src/parsers"
	"github.com/username/brokertax/src/utils"
)

// loadReport parses the export at file.
func loadReport(file string) (*models.Report, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	report, err := parsers.Import(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %q: %w", file, err)
	}
	return report, nil
}

func loadCodeTables() (models.CodeTables, error) {
	return utils.LoadCodeTables(*codeTablesPath)
}

// printMarkdown renders md for the terminal unless raw is set. A rendering
// failure falls back to the raw text.
func printMarkdown(md string, raw bool) {
	if raw {
		fmt.Print(md)
		return
	}
	out, err := glamour.Render(md, "dark")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering markdown: %v\n", err)
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
