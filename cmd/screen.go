package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/zocatelli/equity"
	"github.com/zocatelli/equity/renderer"
)

// screenCmd holds the flags for the 'screen' subcommand.
type screenCmd struct {
	universe string
	minPE    float64
	maxPE    float64
	minPB    float64
	maxPB    float64
	minDY    float64
	minROE   float64
	minCap   float64
	sector   string
	top      int
}

func (*screenCmd) Name() string     { return "screen" }
func (*screenCmd) Synopsis() string { return "screen B3 stocks by fundamental criteria" }
func (*screenCmd) Usage() string {
	return `ert screen [-universe <tickers>] [criteria...] [-top <n>]

  Fetches fundamentals for a universe of B3 stocks (a liquid default when
  omitted), filters them by the given criteria and prints the matches along
  with value, dividend and quality rankings.

  Yield and ROE criteria are ratios: 0.05 means 5%.

Usage Examples:
$ ert screen -max-pe 15 -min-dy 0.05
$ ert screen -universe ITUB4,BBDC4,SANB11 -min-roe 0.15 -top 5

`
}

func (c *screenCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.universe, "universe", "", "Comma-separated tickers to scan. Defaults to a liquid B3 selection.")
	f.Float64Var(&c.minPE, "min-pe", 0, "Minimum trailing P/E")
	f.Float64Var(&c.maxPE, "max-pe", 0, "Maximum trailing P/E (also drops loss makers)")
	f.Float64Var(&c.minPB, "min-pb", 0, "Minimum P/B")
	f.Float64Var(&c.maxPB, "max-pb", 0, "Maximum P/B")
	f.Float64Var(&c.minDY, "min-dy", 0, "Minimum dividend yield as a ratio (0.05 = 5%)")
	f.Float64Var(&c.minROE, "min-roe", 0, "Minimum ROE as a ratio (0.15 = 15%)")
	f.Float64Var(&c.minCap, "min-cap", 0, "Minimum market cap in BRL")
	f.StringVar(&c.sector, "sector", "", "Sector substring filter, case-insensitive")
	f.IntVar(&c.top, "top", 10, "Ranking size")
}

func (c *screenCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var universe []equity.Ticker
	if c.universe != "" {
		var err error
		if universe, err = equity.ParseTickers(c.universe); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	criteria := equity.Criteria{
		MinPE:    c.minPE,
		MaxPE:    c.maxPE,
		MinPB:    c.minPB,
		MaxPB:    c.maxPB,
		MinYield: equity.Percent(c.minDY),
		MinROE:   equity.Percent(c.minROE),
		Sector:   c.sector,
	}
	if c.minCap > 0 {
		criteria.MinMarketCap = equity.BRL(c.minCap)
	}

	n := len(universe)
	if n == 0 {
		n = len(equity.DefaultUniverse())
	}
	fmt.Fprintf(os.Stderr, "Scanning %d tickers...\n", n)
	report, err := equity.NewScreenerReport(ctx, newProvider(), universe, criteria, c.top)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.ScreenerMarkdown(report))
	return subcommands.ExitSuccess
}
