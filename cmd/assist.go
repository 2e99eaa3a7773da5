package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"google.golang.org/genai"

	"github.com/zocatelli/equity"
	"github.com/zocatelli/equity/agent"
	"github.com/zocatelli/equity/renderer"
	"github.com/zocatelli/equity/yahoo"
)

// assistCmd holds the flags for the 'assist' subcommand.
type assistCmd struct {
	tickers string
	rng     string
	model   string
	selic   float64
}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "interactive research assistant over the analysis reports" }
func (*assistCmd) Usage() string {
	return `ert assist [-t <ticker,ticker,...>] [-model <name>] [prompt...]

  Opens an interactive chat with a Gemini-backed research assistant. When
  tickers are given, their analysis reports and the macro snapshot are fed to
  the model first, so answers are grounded on the actual figures.

  Requires GEMINI_API_KEY in the environment or a .env file.

Usage Examples:
$ ert assist -t ITUB4
$ ert assist -t ITUB4,BBDC4 "which one pays better dividends?"

`
}

func (c *assistCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.tickers, "t", "", "Tickers whose reports seed the conversation")
	f.StringVar(&c.rng, "r", yahoo.DefaultRange, "History range for the seeded reports")
	f.StringVar(&c.model, "model", "", "Gemini model name. Defaults to "+agent.DefaultModel)
	f.Float64Var(&c.selic, "selic", 0, "SELIC rate in percent. Fetched from BCB when omitted.")
}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if os.Getenv("GEMINI_API_KEY") == "" {
		fmt.Fprintf(os.Stderr, "Error: GEMINI_API_KEY is not set\n")
		return subcommands.ExitUsageError
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating Gemini client: %v\n", err)
		return subcommands.ExitFailure
	}

	macro := fetchMacro(ctx, c.selic)
	reports := []string{renderer.MacroMarkdown(equity.NewMacroReport(macro))}
	if c.tickers != "" {
		tickers, err := equity.ParseTickers(c.tickers)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		provider := newProvider()
		for _, t := range tickers {
			report, err := equity.NewStockReport(ctx, provider, t, c.rng, macro)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Warning: skipping %s: %v\n", t, err)
				continue
			}
			reports = append(reports, renderer.StockMarkdown(report))
		}
	}

	session := agent.NewSession(os.Stdout, os.Stdin, agent.NewAnalyst(c.model))
	if err := session.Run(ctx, client, reports, f.Args()...); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
