// Command pdftables extracts tables from a PDF file and prints them in
// CSV, Markdown, or JSON form.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/pyhub-apps/pdftables-go/pkg/export"
	"github.com/pyhub-apps/pdftables-go/pkg/pdf"
	"github.com/pyhub-apps/pdftables-go/pkg/tables"
)

func main() {
	var (
		page        = flag.Int("page", 0, "0-based page index to extract")
		format      = flag.String("format", "csv", "output format: csv, markdown, json")
		strategy    = flag.String("strategy", "lines_strict", "vertical/horizontal strategy: lines, lines_strict, text")
		extractText = flag.Bool("text", true, "populate cell text")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: pdftables [flags] <file.pdf>")
		flag.PrintDefaults()
		os.Exit(2)
	}

	strat, err := parseStrategy(*strategy)
	if err != nil {
		log.Fatal(err)
	}

	doc, err := pdf.Open(flag.Arg(0))
	if err != nil {
		log.Fatalf("failed to open PDF: %v", err)
	}
	defer doc.Close()

	p, err := doc.GetPage(*page)
	if err != nil {
		log.Fatalf("failed to get page %d: %v", *page, err)
	}

	settings, err := tables.NewTfSettings(tables.WithStrategy(strat, strat))
	if err != nil {
		log.Fatal(err)
	}
	found, err := p.ExtractTables(context.Background(), settings, *extractText)
	if err != nil {
		log.Fatalf("failed to extract tables: %v", err)
	}

	if err := printTables(found, *format); err != nil {
		log.Fatal(err)
	}
}

func parseStrategy(s string) (tables.Strategy, error) {
	switch tables.Strategy(s) {
	case tables.StrategyLines:
		return tables.StrategyLines, nil
	case tables.StrategyLinesStrict:
		return tables.StrategyLinesStrict, nil
	case tables.StrategyText:
		return tables.StrategyText, nil
	default:
		return "", fmt.Errorf("unknown strategy %q", s)
	}
}

func printTables(found []tables.Table, format string) error {
	switch format {
	case "csv":
		for i, t := range found {
			fmt.Printf("# table %d\n", i)
			if err := export.ToCSV(os.Stdout, t); err != nil {
				return err
			}
		}
	case "markdown":
		for i, t := range found {
			fmt.Printf("## table %d\n\n", i)
			fmt.Println(export.ToMarkdown(t))
		}
	case "json":
		out, err := export.ToJSON(found)
		if err != nil {
			return err
		}
		fmt.Println(string(out))
	default:
		return fmt.Errorf("unknown format %q", format)
	}
	return nil
}
