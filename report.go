package equity

import (
	"context"
	"fmt"

	"github.com/zocatelli/equity/date"
)

// StockReport is everything the single-stock analysis produces, ready for
// rendering.
type StockReport struct {
	On           date.Date              `json:"on"`
	Range        string                 `json:"range"`
	Profile      Profile                `json:"profile"`
	Fundamentals Fundamentals           `json:"fundamentals"`
	Stats        Stats                  `json:"stats"`
	Appraisals   []Appraisal            `json:"appraisals"`
	Benchmark    SectorBenchmark        `json:"benchmark"`
	Notes        []Note                 `json:"notes"`
	History      *date.History[float64] `json:"history"`
}

// NewStockReport fetches a stock and runs the full analysis against it.
func NewStockReport(ctx context.Context, p Provider, t Ticker, rng string, macro Macro) (*StockReport, error) {
	stock, err := Fetch(ctx, p, t, rng)
	if err != nil {
		return nil, fmt.Errorf("analyzing %s: %w", t, err)
	}
	analysis := NewAnalysis(stock.History, stock.Volumes)
	stats := analysis.Summary(0, macro.RiskFree())
	return &StockReport{
		On:           date.Today(),
		Range:        rng,
		Profile:      stock.Profile,
		Fundamentals: stock.Fundamentals,
		Stats:        stats,
		Appraisals:   Appraise(stock.Profile, stock.Fundamentals, macro.Selic),
		Benchmark:    BenchmarkFor(stock.Profile.Sector),
		Notes:        Interpret(stock.Fundamentals, stats),
		History:      stock.History,
	}, nil
}

// ComparisonEntry is one stock's column in a comparison report.
type ComparisonEntry struct {
	Profile      Profile      `json:"profile"`
	Fundamentals Fundamentals `json:"fundamentals"`
	Stats        Stats        `json:"stats"`
}

// ComparisonReport puts several stocks side by side over the same range.
type ComparisonReport struct {
	On       date.Date                         `json:"on"`
	Range    string                            `json:"range"`
	Entries  []ComparisonEntry                 `json:"entries"`
	Relative map[Ticker]*date.History[float64] `json:"relative"` // base-100 price series
	Failed   map[Ticker]error                  `json:"-"`
}

// NewComparisonReport fetches every ticker and lines them up. Individual
// fetch failures are recorded; the report fails only when fewer than two
// stocks survive.
func NewComparisonReport(ctx context.Context, p Provider, tickers []Ticker, rng string, macro Macro) (*ComparisonReport, error) {
	if len(tickers) < 2 {
		return nil, fmt.Errorf("comparison needs at least 2 tickers, got %d", len(tickers))
	}
	r := &ComparisonReport{
		On:       date.Today(),
		Range:    rng,
		Relative: make(map[Ticker]*date.History[float64]),
		Failed:   make(map[Ticker]error),
	}
	for _, t := range tickers {
		stock, err := Fetch(ctx, p, t, rng)
		if err != nil {
			r.Failed[t] = err
			continue
		}
		stats := NewAnalysis(stock.History, stock.Volumes).Summary(0, macro.RiskFree())
		r.Entries = append(r.Entries, ComparisonEntry{
			Profile:      stock.Profile,
			Fundamentals: stock.Fundamentals,
			Stats:        stats,
		})
		r.Relative[t] = rebase(stock.History)
	}
	if len(r.Entries) < 2 {
		return nil, fmt.Errorf("comparison needs at least 2 fetchable tickers, got %d", len(r.Entries))
	}
	return r, nil
}

// rebase rescales a price series so its first value is 100, which makes
// different price levels comparable on one axis.
func rebase(h *date.History[float64]) *date.History[float64] {
	out := new(date.History[float64])
	_, base := h.First()
	if base == 0 {
		return out
	}
	for on, v := range h.Values() {
		out.Append(on, 100*v/base)
	}
	return out
}

// ScreenerReport is the screener outcome plus the three classic rankings.
type ScreenerReport struct {
	On       date.Date        `json:"on"`
	Criteria Criteria         `json:"criteria"`
	Rows     []Row            `json:"rows"`
	Value    []Row            `json:"value"`
	Dividend []Row            `json:"dividend"`
	Quality  []Row            `json:"quality"`
	Scanned  int              `json:"scanned"`
	Failed   map[Ticker]error `json:"-"`
}

// NewScreenerReport screens the universe, applies the criteria and builds the
// preset rankings over the filtered rows.
func NewScreenerReport(ctx context.Context, p Provider, universe []Ticker, criteria Criteria, topN int) (*ScreenerReport, error) {
	res, err := Screen(ctx, p, universe)
	if err != nil {
		return nil, err
	}
	rows := criteria.Filter(res.Rows)
	return &ScreenerReport{
		On:       date.Today(),
		Criteria: criteria,
		Rows:     rows,
		Value:    ValuePicks(rows, topN),
		Dividend: DividendPicks(rows, topN),
		Quality:  QualityPicks(rows, topN),
		Scanned:  len(res.Rows) + len(res.Failed),
		Failed:   res.Failed,
	}, nil
}

// MacroReport is the macro snapshot plus the sector reference table.
type MacroReport struct {
	On         date.Date         `json:"on"`
	Macro      Macro             `json:"macro"`
	Benchmarks []SectorBenchmark `json:"benchmarks"`
}

// NewMacroReport wraps the indicators for rendering.
func NewMacroReport(m Macro) *MacroReport {
	return &MacroReport{On: date.Today(), Macro: m, Benchmarks: Benchmarks()}
}
