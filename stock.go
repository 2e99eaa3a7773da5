package equity

import (
	"context"

	"github.com/zocatelli/equity/date"
)

// Profile holds the general, slow-moving information about a listed company.
type Profile struct {
	Ticker    Ticker  `json:"ticker"`
	Name      string  `json:"name"`
	Sector    string  `json:"sector,omitempty"`
	Industry  string  `json:"industry,omitempty"`
	Currency  string  `json:"currency"`
	Price     Money   `json:"price"`
	MarketCap Money   `json:"marketCap"`
	AvgVolume float64 `json:"avgVolume,omitempty"`
}

// Fundamentals holds the per-share figures and ratios used by the valuation
// formulas and the screener. Figures the provider does not know are zero and
// render as "N/A".
type Fundamentals struct {
	EPS           Money   `json:"eps"`           // lucro por ação (LPA)
	BookValue     Money   `json:"bookValue"`     // valor patrimonial por ação (VPA)
	DividendShare Money   `json:"dividendShare"` // dividendo por ação (DPA), trailing 12m
	PE            float64 `json:"pe"`            // trailing price/earnings
	PB            float64 `json:"pb"`            // price/book
	DividendYield Percent `json:"dividendYield"`
	PayoutRatio   Percent `json:"payoutRatio"`
	ROE           Percent `json:"roe"`
	NetMargin     Percent `json:"netMargin"`
	DebtToEquity  float64 `json:"debtToEquity,omitempty"`
	TotalRevenue  Money   `json:"totalRevenue"`
	NetIncome     Money   `json:"netIncome"`
}

// Stock bundles everything known about a single ticker.
type Stock struct {
	Profile      Profile
	Fundamentals Fundamentals
	History      *date.History[float64] // daily close prices
	Volumes      *date.History[float64] // daily traded volume
}

// Provider is the source of market data. The yahoo subpackage implements it;
// tests use in-memory fakes.
type Provider interface {
	// Quote returns the profile and fundamentals for a ticker.
	Quote(ctx context.Context, t Ticker) (Profile, Fundamentals, error)
	// History returns daily close prices and volumes over a named range
	// ("1mo", "3mo", "6mo", "1y", "2y", "5y", "max").
	History(ctx context.Context, t Ticker, rng string) (closes, volumes *date.History[float64], err error)
}

// Fetch loads a full Stock from the provider.
func Fetch(ctx context.Context, p Provider, t Ticker, rng string) (*Stock, error) {
	profile, fundamentals, err := p.Quote(ctx, t)
	if err != nil {
		return nil, err
	}
	closes, volumes, err := p.History(ctx, t, rng)
	if err != nil {
		return nil, err
	}
	return &Stock{
		Profile:      profile,
		Fundamentals: fundamentals,
		History:      closes,
		Volumes:      volumes,
	}, nil
}
