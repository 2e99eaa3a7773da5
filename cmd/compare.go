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

// compareCmd holds the flags for the 'compare' subcommand.
type compareCmd struct {
	tickers string
	rng     string
	selic   float64
}

func (*compareCmd) Name() string     { return "compare" }
func (*compareCmd) Synopsis() string { return "compare several stocks side by side" }
func (*compareCmd) Usage() string {
	return `ert compare -t <ticker,ticker,...> [-r <range>]

  Puts two or more stocks side by side: fundamentals, performance statistics
  and relative price performance rebased to 100.

Usage Examples:
$ ert compare -t ITUB4,BBDC4,BBAS3
$ ert compare -t VALE3,CSNA3 -r 2y

`
}

func (c *compareCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.tickers, "t", "", "Comma-separated B3 tickers (at least 2)")
	f.StringVar(&c.rng, "r", yahoo.DefaultRange, "History range: 1mo, 3mo, 6mo, 1y, 2y, 5y, max")
	f.Float64Var(&c.selic, "selic", 0, "SELIC rate in percent. Fetched from BCB when omitted.")
}

func (c *compareCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tickers, err := equity.ParseTickers(c.tickers)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	report, err := equity.NewComparisonReport(ctx, newProvider(), tickers, c.rng, fetchMacro(ctx, c.selic))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	for t, err := range report.Failed {
		fmt.Fprintf(os.Stderr, "Warning: skipping %s: %v\n", t, err)
	}

	printMarkdown(renderer.ComparisonMarkdown(report))
	return subcommands.ExitSuccess
}
