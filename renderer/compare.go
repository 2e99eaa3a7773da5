package renderer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/zocatelli/equity"
)

// ComparisonMarkdown renders several stocks side by side, one column per
// ticker.
func ComparisonMarkdown(r *equity.ComparisonReport) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# Comparison on %s (range %s)\n\n", r.On, r.Range)

	// header row from the surviving entries
	fmt.Fprintf(&sb, "| Indicator |")
	for _, e := range r.Entries {
		fmt.Fprintf(&sb, " %s |", e.Profile.Ticker)
	}
	fmt.Fprintf(&sb, "\n|---|")
	for range r.Entries {
		fmt.Fprintf(&sb, "---|")
	}
	fmt.Fprintf(&sb, "\n")

	row := func(label string, cell func(equity.ComparisonEntry) string) {
		fmt.Fprintf(&sb, "| %s |", label)
		for _, e := range r.Entries {
			fmt.Fprintf(&sb, " %s |", cell(e))
		}
		fmt.Fprintf(&sb, "\n")
	}

	row("Name", func(e equity.ComparisonEntry) string { return e.Profile.Name })
	row("Sector", func(e equity.ComparisonEntry) string { return e.Profile.Sector })
	row("Price", func(e equity.ComparisonEntry) string { return money(e.Profile.Price) })
	row("Market Cap", func(e equity.ComparisonEntry) string { return bigMoney(e.Profile.MarketCap) })
	row("P/E", func(e equity.ComparisonEntry) string { return ratio(e.Fundamentals.PE) })
	row("P/B", func(e equity.ComparisonEntry) string { return ratio(e.Fundamentals.PB) })
	row("Dividend Yield", func(e equity.ComparisonEntry) string { return pct(e.Fundamentals.DividendYield) })
	row("ROE", func(e equity.ComparisonEntry) string { return pct(e.Fundamentals.ROE) })
	row("Net Margin", func(e equity.ComparisonEntry) string { return pct(e.Fundamentals.NetMargin) })
	row("Total Return", func(e equity.ComparisonEntry) string { return e.Stats.TotalReturn.SignedString() })
	row("Annualized", func(e equity.ComparisonEntry) string { return e.Stats.AnnualizedReturn.SignedString() })
	row("Volatility", func(e equity.ComparisonEntry) string { return pct(e.Stats.Volatility) })
	row("Sharpe", func(e equity.ComparisonEntry) string { return fmt.Sprintf("%.2f", e.Stats.SharpeRatio) })
	row("Max Drawdown", func(e equity.ComparisonEntry) string { return e.Stats.MaxDrawdown.SignedString() })

	// relative performance, base 100 at the start of the range
	fmt.Fprintf(&sb, "\n## Relative performance (base 100)\n\n")
	fmt.Fprintf(&sb, "| Ticker | End of range |\n|---|---|\n")
	for _, e := range r.Entries {
		if rel, ok := r.Relative[e.Profile.Ticker]; ok && rel.Len() > 0 {
			_, last := rel.Latest()
			fmt.Fprintf(&sb, "| %s | %.1f |\n", e.Profile.Ticker, last)
		}
	}

	if len(r.Failed) > 0 {
		var failed []string
		for t := range r.Failed {
			failed = append(failed, t.String())
		}
		sort.Strings(failed)
		fmt.Fprintf(&sb, "\n> could not fetch: %s\n", strings.Join(failed, ", "))
	}

	return sb.String()
}
