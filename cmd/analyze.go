package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/zocatelli/equity"
	"github.com/zocatelli/equity/renderer"
	"github.com/zocatelli/equity/yahoo"
)

// analyzeCmd holds the flags for the 'analyze' subcommand.
type analyzeCmd struct {
	ticker string
	rng    string
	selic  float64
}

func (*analyzeCmd) Name() string     { return "analyze" }
func (*analyzeCmd) Synopsis() string { return "full analysis report for one stock" }
func (*analyzeCmd) Usage() string {
	return `ert analyze -t <ticker> [-r <range>] [-selic <rate>]

  Fetches market data and fundamentals for a B3 stock and prints the full
  analysis: snapshot, fundamentals against sector averages, performance
  statistics, fair-price estimates and a rule-based reading.

Usage Examples:
$ ert analyze -t ITUB4
$ ert analyze -t PETR4 -r 5y -selic 10.75

`
}

func (c *analyzeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "t", "", "B3 ticker to analyze, e.g. ITUB4")
	f.StringVar(&c.rng, "r", yahoo.DefaultRange, "History range: 1mo, 3mo, 6mo, 1y, 2y, 5y, max")
	f.Float64Var(&c.selic, "selic", 0, "SELIC rate in percent (e.g. 10.75). Fetched from BCB when omitted.")
}

func (c *analyzeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	t, err := equity.ParseTicker(c.ticker)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	report, err := equity.NewStockReport(ctx, newProvider(), t, c.rng, fetchMacro(ctx, c.selic))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.StockMarkdown(report))
	return subcommands.ExitSuccess
}
