package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/zocatelli/equity"
)

// StockMarkdown renders the full single-stock analysis report.
func StockMarkdown(r *equity.StockReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%s · %s", r.Profile.Ticker, r.Profile.Name))
	doc.PlainText(fmt.Sprintf("%s · %s · %s · range %s", r.Profile.Sector, r.Profile.Industry, r.On, r.Range))

	doc.H2("Snapshot")
	doc.Table(md.TableSet{
		Header: []string{"Price", "Market Cap", "52w High", "52w Low", "Avg Volume"},
		Rows: [][]string{{
			money(r.Profile.Price),
			bigMoney(r.Profile.MarketCap),
			fmt.Sprintf("%.2f", r.Stats.High52w),
			fmt.Sprintf("%.2f", r.Stats.Low52w),
			volume(r.Stats.AvgVolume),
		}},
	})

	doc.H2("Fundamentals")
	f, b := r.Fundamentals, r.Benchmark
	doc.Table(md.TableSet{
		Header: []string{"Indicator", "Value", fmt.Sprintf("Sector avg (%s)", b.Sector)},
		Rows: [][]string{
			{"P/E", ratio(f.PE), ratio(b.PE)},
			{"P/B", ratio(f.PB), ratio(b.PB)},
			{"Dividend Yield", pct(f.DividendYield), pct(b.Yield)},
			{"EPS", money(f.EPS), ""},
			{"Book Value/Share", money(f.BookValue), ""},
			{"Dividend/Share", money(f.DividendShare), ""},
			{"Payout", pct(f.PayoutRatio), ""},
			{"ROE", pct(f.ROE), ""},
			{"Net Margin", pct(f.NetMargin), ""},
			{"Debt/Equity", ratio(f.DebtToEquity), ""},
			{"Revenue (ttm)", bigMoney(f.TotalRevenue), ""},
			{"Net Income (ttm)", bigMoney(f.NetIncome), ""},
		},
	})

	doc.H2("Performance")
	s := r.Stats
	doc.Table(md.TableSet{
		Header: []string{"Total Return", "Annualized", "Volatility", "Sharpe", "Max Drawdown"},
		Rows: [][]string{{
			s.TotalReturn.SignedString(),
			s.AnnualizedReturn.SignedString(),
			pct(s.Volatility),
			fmt.Sprintf("%.2f", s.SharpeRatio),
			s.MaxDrawdown.SignedString(),
		}},
	})

	if len(r.Appraisals) > 0 {
		doc.H2("Fair Price")
		rows := make([][]string, 0, len(r.Appraisals))
		for _, a := range r.Appraisals {
			rows = append(rows, []string{
				a.Method,
				money(a.FairPrice),
				a.Margin.SignedString(),
				string(a.Verdict),
				a.Basis,
			})
		}
		doc.Table(md.TableSet{
			Header: []string{"Method", "Fair Price", "Margin of Safety", "Verdict", "Basis"},
			Rows:   rows,
		})
	}

	doc.H2("Reading")
	for _, n := range r.Notes {
		doc.PlainText(fmt.Sprintf("%s %s", toneMark(n.Tone), n.Text))
	}

	return doc.String()
}
