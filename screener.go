package equity

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
)

// DefaultUniverse is a selection of liquid B3 names covering the main sectors,
// the universe scanned when the caller does not provide one.
func DefaultUniverse() []Ticker {
	return []Ticker{
		// banks and financials
		"ITUB4", "BBDC4", "BBAS3", "SANB11", "BPAC11", "B3SA3", "ITSA4",
		// energy and oil
		"PETR4", "PETR3", "PRIO3", "CSAN3", "UGPA3",
		// mining and steel
		"VALE3", "CSNA3", "GGBR4", "USIM5",
		// utilities
		"ELET3", "CMIG4", "CPLE6", "EGIE3", "TAEE11", "SBSP3",
		// consumer and retail
		"ABEV3", "LREN3", "MGLU3", "ASAI3", "RADL3", "NTCO3",
		// industry and transport
		"WEGE3", "EMBR3", "RAIL3", "CCRO3",
		// health and education
		"HAPV3", "RDOR3", "FLRY3", "YDUQ3",
		// real estate and construction
		"CYRE3", "MRVE3", "MULT3",
		// telecom and tech
		"VIVT3", "TIMS3", "TOTS3",
	}
}

// Row is one screener line: the fundamentals that matter for filtering and
// ranking, flattened for table rendering.
type Row struct {
	Ticker        Ticker  `json:"ticker"`
	Name          string  `json:"name"`
	Sector        string  `json:"sector"`
	Price         Money   `json:"price"`
	PE            float64 `json:"pe"`
	PB            float64 `json:"pb"`
	DividendYield Percent `json:"dividendYield"`
	ROE           Percent `json:"roe"`
	MarketCap     Money   `json:"marketCap"`
}

// ScreenResult holds the fetched rows and the tickers that could not be
// fetched. A failed ticker never aborts the screen.
type ScreenResult struct {
	Rows   []Row            `json:"rows"`
	Failed map[Ticker]error `json:"-"`
}

// Screen fetches profile and fundamentals for every ticker in the universe.
func Screen(ctx context.Context, p Provider, universe []Ticker) (*ScreenResult, error) {
	if len(universe) == 0 {
		universe = DefaultUniverse()
	}
	res := &ScreenResult{Failed: make(map[Ticker]error)}
	for _, t := range universe {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		profile, f, err := p.Quote(ctx, t)
		if err != nil {
			res.Failed[t] = err
			continue
		}
		res.Rows = append(res.Rows, Row{
			Ticker:        t,
			Name:          profile.Name,
			Sector:        profile.Sector,
			Price:         profile.Price,
			PE:            f.PE,
			PB:            f.PB,
			DividendYield: f.DividendYield,
			ROE:           f.ROE,
			MarketCap:     profile.MarketCap,
		})
	}
	if len(res.Rows) == 0 {
		return nil, fmt.Errorf("screener: no ticker out of %d could be fetched", len(universe))
	}
	return res, nil
}

// Criteria filters screener rows. Zero-valued fields do not filter.
type Criteria struct {
	MinPE        float64
	MaxPE        float64
	MinPB        float64
	MaxPB        float64
	MinYield     Percent
	MinROE       Percent
	MinMarketCap Money
	Sector       string // case-insensitive substring match
}

// Match reports whether the row passes every set criterion. Rows with a
// missing (zero) value fail any bound on that value.
func (c Criteria) Match(r Row) bool {
	if c.MinPE != 0 && r.PE < c.MinPE {
		return false
	}
	if c.MaxPE != 0 && (r.PE <= 0 || r.PE > c.MaxPE) {
		return false
	}
	if c.MinPB != 0 && r.PB < c.MinPB {
		return false
	}
	if c.MaxPB != 0 && (r.PB <= 0 || r.PB > c.MaxPB) {
		return false
	}
	if c.MinYield != 0 && r.DividendYield < c.MinYield {
		return false
	}
	if c.MinROE != 0 && r.ROE < c.MinROE {
		return false
	}
	if !c.MinMarketCap.IsZero() && r.MarketCap.LessThan(c.MinMarketCap) {
		return false
	}
	if c.Sector != "" && !strings.Contains(strings.ToLower(r.Sector), strings.ToLower(c.Sector)) {
		return false
	}
	return true
}

// Filter returns the rows passing the criteria, in input order.
func (c Criteria) Filter(rows []Row) []Row {
	var out []Row
	for _, r := range rows {
		if c.Match(r) {
			out = append(out, r)
		}
	}
	return out
}

// rankFields maps a rankable field name to its row accessor.
var rankFields = map[string]func(Row) float64{
	"pe":  func(r Row) float64 { return r.PE },
	"pb":  func(r Row) float64 { return r.PB },
	"dy":  func(r Row) float64 { return float64(r.DividendYield) },
	"roe": func(r Row) float64 { return float64(r.ROE) },
	"cap": func(r Row) float64 { return r.MarketCap.AsFloat() },
}

// RankBy sorts rows by a field ("pe", "pb", "dy", "roe", "cap"), dropping rows
// where the field is zero or NaN, and keeps at most topN (0 keeps all).
func RankBy(rows []Row, field string, ascending bool, topN int) ([]Row, error) {
	value, ok := rankFields[field]
	if !ok {
		return nil, fmt.Errorf("unknown ranking field %q", field)
	}
	var ranked []Row
	for _, r := range rows {
		if v := value(r); v == 0 || math.IsNaN(v) {
			continue
		}
		ranked = append(ranked, r)
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ascending {
			return value(ranked[i]) < value(ranked[j])
		}
		return value(ranked[i]) > value(ranked[j])
	})
	if topN > 0 && len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked, nil
}

// Classic presets: cheap earners, dividend payers, high-return businesses.

// ValuePicks ranks profitable stocks by ascending P/E below 20.
func ValuePicks(rows []Row, topN int) []Row {
	filtered := Criteria{MaxPE: 20}.Filter(rows)
	ranked, _ := RankBy(filtered, "pe", true, topN)
	return ranked
}

// DividendPicks ranks dividend payers by descending yield.
func DividendPicks(rows []Row, topN int) []Row {
	ranked, _ := RankBy(rows, "dy", false, topN)
	return ranked
}

// QualityPicks ranks profitable companies by descending return on equity.
// Loss makers never qualify, whatever their ranking value.
func QualityPicks(rows []Row, topN int) []Row {
	var profitable []Row
	for _, r := range rows {
		if r.ROE > 0 {
			profitable = append(profitable, r)
		}
	}
	ranked, _ := RankBy(profitable, "roe", false, topN)
	return ranked
}
