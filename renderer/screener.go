package renderer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/zocatelli/equity"
)

// ScreenerMarkdown renders the screener outcome and the preset rankings.
func ScreenerMarkdown(r *equity.ScreenerReport) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# Screener on %s\n\n", r.On)
	fmt.Fprintf(&sb, "%d of %d scanned tickers pass the criteria.\n\n", len(r.Rows), r.Scanned)

	rowTable(&sb, "Matches", r.Rows)
	rowTable(&sb, "Value (lowest P/E)", r.Value)
	rowTable(&sb, "Dividend (highest yield)", r.Dividend)
	rowTable(&sb, "Quality (highest ROE)", r.Quality)

	if len(r.Failed) > 0 {
		var failed []string
		for t := range r.Failed {
			failed = append(failed, t.String())
		}
		sort.Strings(failed)
		fmt.Fprintf(&sb, "> could not fetch: %s\n", strings.Join(failed, ", "))
	}

	return sb.String()
}

// rowTable writes one screener row table under its own heading.
func rowTable(sb *strings.Builder, title string, rows []equity.Row) {
	if len(rows) == 0 {
		return
	}
	fmt.Fprintf(sb, "## %s\n\n", title)
	fmt.Fprintf(sb, "| Ticker | Name | Sector | Price | P/E | P/B | DY | ROE | Market Cap |\n")
	fmt.Fprintf(sb, "|---|---|---|---|---|---|---|---|---|\n")
	for _, row := range rows {
		fmt.Fprintf(sb, "| %s | %s | %s | %s | %s | %s | %s | %s | %s |\n",
			row.Ticker, row.Name, row.Sector, money(row.Price),
			ratio(row.PE), ratio(row.PB), pct(row.DividendYield), pct(row.ROE),
			bigMoney(row.MarketCap))
	}
	fmt.Fprintf(sb, "\n")
}
