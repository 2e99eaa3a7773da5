package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/zocatelli/equity"
)

// MacroMarkdown renders the macro snapshot and the sector reference table.
func MacroMarkdown(r *equity.MacroReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Brazil macro on %s", r.On))

	usdbrl := notAvailable
	if r.Macro.USDBRL != 0 {
		usdbrl = fmt.Sprintf("%.2f", r.Macro.USDBRL)
	}
	doc.Table(md.TableSet{
		Header: []string{"SELIC", "CDI", "IPCA 12m", "USD/BRL"},
		Rows: [][]string{{
			pct(r.Macro.Selic),
			pct(r.Macro.CDI),
			pct(r.Macro.IPCA12m),
			usdbrl,
		}},
	})

	if r.Macro.Selic != 0 && r.Macro.IPCA12m != 0 {
		real := r.Macro.Selic - r.Macro.IPCA12m
		doc.PlainText(fmt.Sprintf("Real interest rate (SELIC - IPCA): %s", real.SignedString()))
	}

	doc.H2("Sector reference multiples")
	rows := make([][]string, 0, len(r.Benchmarks))
	for _, b := range r.Benchmarks {
		rows = append(rows, []string{b.Sector, ratio(b.PE), ratio(b.PB), pct(b.Yield)})
	}
	doc.Table(md.TableSet{
		Header: []string{"Sector", "P/E", "P/B", "Yield"},
		Rows:   rows,
	})

	return doc.String()
}
