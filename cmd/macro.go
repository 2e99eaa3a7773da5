package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/zocatelli/equity"
	"github.com/zocatelli/equity/bcb"
	"github.com/zocatelli/equity/renderer"
)

type macroCmd struct{}

func (*macroCmd) Name() string     { return "macro" }
func (*macroCmd) Synopsis() string { return "Brazilian macro indicators snapshot" }
func (*macroCmd) Usage() string {
	return `ert macro

  Prints the current SELIC, CDI, 12-month IPCA and USD/BRL PTAX from the
  Banco Central do Brasil open data API, plus the sector reference multiples
  used by the analysis.

`
}

func (*macroCmd) SetFlags(*flag.FlagSet) {}

func (*macroCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	m := bcb.NewClient().Indicators(ctx)
	if m.Selic == 0 && m.IPCA12m == 0 && m.USDBRL == 0 {
		fmt.Fprintf(os.Stderr, "Error: no macro series could be fetched\n")
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.MacroMarkdown(equity.NewMacroReport(m)))
	return subcommands.ExitSuccess
}
