// Package cmd implements the ert subcommands.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"

	"github.com/zocatelli/equity"
	"github.com/zocatelli/equity/bcb"
	"github.com/zocatelli/equity/yahoo"
)

// Register the subcommands.
func Register(c *subcommands.Commander) {
	c.Register(&analyzeCmd{}, "analysis")
	c.Register(&compareCmd{}, "analysis")
	c.Register(&fairCmd{}, "analysis")
	c.Register(&screenCmd{}, "screening")
	c.Register(&macroCmd{}, "macro")
	c.Register(&serveCmd{}, "dashboard")
	c.Register(&assistCmd{}, "assistant")
}

// LoadEnv loads a .env file when present; a missing file is not an error.
func LoadEnv() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Warning: could not load .env: %v\n", err)
	}
}

// newProvider is the central place the commands get their market data from.
func newProvider() equity.Provider { return yahoo.NewClient() }

// fetchMacro returns the macro snapshot the analysis needs. A non-zero selic
// flag (in percent, e.g. 10.75) overrides the live BCB data, which keeps the
// commands usable offline.
func fetchMacro(ctx context.Context, selic float64) equity.Macro {
	if selic != 0 {
		return equity.Macro{
			Selic: equity.Percent(selic / 100),
			CDI:   equity.Percent((selic - 0.10) / 100),
		}
	}
	return bcb.NewClient().Indicators(ctx)
}
