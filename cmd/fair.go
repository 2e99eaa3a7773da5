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

// fairCmd holds the flags for the 'fair' subcommand.
type fairCmd struct {
	ticker     string
	selic      float64
	bazinYield float64
	growth     float64
	discount   float64
}

func (*fairCmd) Name() string     { return "fair" }
func (*fairCmd) Synopsis() string { return "fair-price estimates with adjustable assumptions" }
func (*fairCmd) Usage() string {
	return `ert fair -t <ticker> [-selic <rate>] [-bazin-yield <ratio>] [-growth <ratio>] [-discount <ratio>]

  Runs the Graham, Bazin and Gordon fair-price formulas for one stock,
  letting you tune every assumption instead of taking the defaults.

Usage Examples:
$ ert fair -t ITUB4
$ ert fair -t TAEE11 -bazin-yield 0.08 -growth 0.02

`
}

func (c *fairCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "t", "", "B3 ticker, e.g. ITUB4")
	f.Float64Var(&c.selic, "selic", 0, "SELIC rate in percent (e.g. 10.75). Fetched from BCB when omitted.")
	f.Float64Var(&c.bazinYield, "bazin-yield", float64(equity.BazinMinYield), "Bazin minimum yield as a ratio")
	f.Float64Var(&c.growth, "growth", float64(equity.GordonDefaultGrowth), "Gordon perpetual dividend growth as a ratio")
	f.Float64Var(&c.discount, "discount", 0, "Gordon required return as a ratio. Defaults to selic + 5%.")
}

func (c *fairCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	t, err := equity.ParseTicker(c.ticker)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	profile, fundamentals, err := newProvider().Quote(ctx, t)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	macro := fetchMacro(ctx, c.selic)
	required := equity.Percent(c.discount)
	if required == 0 {
		required = macro.Selic + equity.GordonRiskPremium
	}

	// run each method with the tuned assumptions
	var appraisals []equity.Appraisal
	appraise := func(method, basis string, fair equity.Money, err error) {
		if err != nil {
			fmt.Fprintf(os.Stderr, "Note: %s skipped: %v\n", method, err)
			return
		}
		margin := equity.MarginOfSafety(fair, profile.Price)
		appraisals = append(appraisals, equity.Appraisal{
			Method:    method,
			FairPrice: fair,
			Price:     profile.Price,
			Margin:    margin,
			Verdict:   equity.VerdictFor(margin),
			Basis:     basis,
		})
	}

	fair, err := equity.GrahamPrice(fundamentals.EPS, fundamentals.BookValue)
	appraise("Graham", "√(22.5 × EPS × BVPS)", fair, err)
	fair, err = equity.GrahamAdjustedPrice(fundamentals.EPS, fundamentals.BookValue, macro.Selic)
	appraise("Graham adjusted", fmt.Sprintf("rate-adjusted multiplier at SELIC %s", macro.Selic), fair, err)
	fair, err = equity.BazinPrice(fundamentals.DividendShare, equity.Percent(c.bazinYield))
	appraise("Bazin", fmt.Sprintf("DPS / %s minimum yield", equity.Percent(c.bazinYield)), fair, err)
	fair, err = equity.GordonPrice(fundamentals.DividendShare, equity.Percent(c.growth), required)
	appraise("Gordon", fmt.Sprintf("DDM at g=%s, r=%s", equity.Percent(c.growth), required), fair, err)

	printMarkdown(renderer.FairMarkdown(profile, appraisals))
	return subcommands.ExitSuccess
}
