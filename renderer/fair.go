package renderer

import (
	"fmt"
	"strings"

	"github.com/zocatelli/equity"
)

// FairMarkdown renders the valuation-only view used by the fair-price command.
func FairMarkdown(p equity.Profile, appraisals []equity.Appraisal) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# Fair price for %s · %s\n\n", p.Ticker, p.Name)
	fmt.Fprintf(&sb, "Current price: %s\n\n", money(p.Price))

	if len(appraisals) == 0 {
		fmt.Fprintf(&sb, "No fair-price method applies: missing positive earnings, book value or dividends.\n")
		return sb.String()
	}

	fmt.Fprintf(&sb, "| Method | Fair Price | Margin of Safety | Verdict | Basis |\n")
	fmt.Fprintf(&sb, "|---|---|---|---|---|\n")
	for _, a := range appraisals {
		fmt.Fprintf(&sb, "| %s | %s | %s | %s | %s |\n",
			a.Method, money(a.FairPrice), a.Margin.SignedString(), a.Verdict, a.Basis)
	}
	return sb.String()
}
