package equity

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zocatelli/equity/date"
)

// fakeProvider serves canned quotes and fails on unknown tickers.
type fakeProvider struct {
	quotes map[Ticker]struct {
		p Profile
		f Fundamentals
	}
}

func (fp *fakeProvider) Quote(_ context.Context, t Ticker) (Profile, Fundamentals, error) {
	q, ok := fp.quotes[t]
	if !ok {
		return Profile{}, Fundamentals{}, fmt.Errorf("unknown ticker %s", t)
	}
	return q.p, q.f, nil
}

func (fp *fakeProvider) History(_ context.Context, t Ticker, _ string) (*date.History[float64], *date.History[float64], error) {
	if _, ok := fp.quotes[t]; !ok {
		return nil, nil, fmt.Errorf("unknown ticker %s", t)
	}
	return histOf(100, 110), histOf(1000, 1000), nil
}

func newFakeProvider() *fakeProvider {
	fp := &fakeProvider{quotes: make(map[Ticker]struct {
		p Profile
		f Fundamentals
	})}
	add := func(t Ticker, name, sector string, price float64, f Fundamentals) {
		fp.quotes[t] = struct {
			p Profile
			f Fundamentals
		}{
			p: Profile{Ticker: t, Name: name, Sector: sector, Currency: "BRL",
				Price: BRL(price), MarketCap: BRL(price * 1e9)},
			f: f,
		}
	}
	add("ITUB4", "Itaú Unibanco", "Financial Services", 32.50,
		Fundamentals{PE: 8.5, PB: 1.8, DividendYield: 0.055, ROE: 0.21})
	add("VALE3", "Vale", "Basic Materials", 61.20,
		Fundamentals{PE: 5.2, PB: 1.1, DividendYield: 0.09, ROE: 0.18})
	add("MGLU3", "Magazine Luiza", "Consumer Cyclical", 2.10,
		Fundamentals{PE: -12.0, PB: 1.5, DividendYield: 0, ROE: -0.05})
	add("WEGE3", "WEG", "Industrials", 38.70,
		Fundamentals{PE: 28.0, PB: 9.5, DividendYield: 0.015, ROE: 0.30})
	return fp
}

func TestScreen(t *testing.T) {
	fp := newFakeProvider()
	res, err := Screen(context.Background(), fp, []Ticker{"ITUB4", "VALE3", "XXXX9"})
	require.NoError(t, err)
	assert.Len(t, res.Rows, 2)
	assert.Contains(t, res.Failed, Ticker("XXXX9"))

	// nothing fetchable is an error, not an empty result
	_, err = Screen(context.Background(), fp, []Ticker{"XXXX9"})
	assert.Error(t, err)
}

func TestCriteriaMatch(t *testing.T) {
	rows := []Row{
		{Ticker: "ITUB4", Sector: "Financial Services", PE: 8.5, PB: 1.8, DividendYield: 0.055, ROE: 0.21, MarketCap: BRL(300e9)},
		{Ticker: "MGLU3", Sector: "Consumer Cyclical", PE: -12.0, PB: 1.5, ROE: -0.05, MarketCap: BRL(2e9)},
		{Ticker: "WEGE3", Sector: "Industrials", PE: 28.0, PB: 9.5, DividendYield: 0.015, ROE: 0.30, MarketCap: BRL(160e9)},
	}

	testCases := []struct {
		name     string
		criteria Criteria
		expect   []Ticker
	}{
		{"Empty passes everything", Criteria{}, []Ticker{"ITUB4", "MGLU3", "WEGE3"}},
		{"MaxPE excludes loss makers", Criteria{MaxPE: 20}, []Ticker{"ITUB4"}},
		{"MinYield", Criteria{MinYield: 0.05}, []Ticker{"ITUB4"}},
		{"MinROE", Criteria{MinROE: 0.25}, []Ticker{"WEGE3"}},
		{"Sector substring", Criteria{Sector: "financial"}, []Ticker{"ITUB4"}},
		{"MinMarketCap", Criteria{MinMarketCap: BRL(100e9)}, []Ticker{"ITUB4", "WEGE3"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var got []Ticker
			for _, r := range tc.criteria.Filter(rows) {
				got = append(got, r.Ticker)
			}
			assert.Equal(t, tc.expect, got)
		})
	}
}

func TestRankBy(t *testing.T) {
	rows := []Row{
		{Ticker: "A", PE: 10},
		{Ticker: "B", PE: 5},
		{Ticker: "C", PE: 0}, // missing, must be dropped
		{Ticker: "D", PE: 20},
	}

	ranked, err := RankBy(rows, "pe", true, 0)
	require.NoError(t, err)
	require.Len(t, ranked, 3)
	assert.Equal(t, Ticker("B"), ranked[0].Ticker)
	assert.Equal(t, Ticker("D"), ranked[2].Ticker)

	top, err := RankBy(rows, "pe", false, 1)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, Ticker("D"), top[0].Ticker)

	_, err = RankBy(rows, "nope", true, 0)
	assert.Error(t, err)
}

func TestPresets(t *testing.T) {
	rows := []Row{
		{Ticker: "ITUB4", PE: 8.5, DividendYield: 0.055, ROE: 0.21},
		{Ticker: "VALE3", PE: 5.2, DividendYield: 0.09, ROE: 0.18},
		{Ticker: "MGLU3", PE: -12.0, ROE: -0.05},
		{Ticker: "WEGE3", PE: 28.0, DividendYield: 0.015, ROE: 0.30},
	}

	value := ValuePicks(rows, 0)
	require.Len(t, value, 2) // loss maker and PE 28 excluded
	assert.Equal(t, Ticker("VALE3"), value[0].Ticker)

	dividend := DividendPicks(rows, 2)
	require.Len(t, dividend, 2)
	assert.Equal(t, Ticker("VALE3"), dividend[0].Ticker)

	quality := QualityPicks(rows, 0)
	require.Len(t, quality, 3, "the loss maker must not qualify")
	assert.Equal(t, Ticker("WEGE3"), quality[0].Ticker)
	for _, r := range quality {
		assert.Positive(t, float64(r.ROE), "quality pick %s has non-positive ROE", r.Ticker)
	}
}
