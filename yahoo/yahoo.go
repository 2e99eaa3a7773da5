// Package yahoo implements the market data provider backed by the public
// Yahoo Finance endpoints: quoteSummary for company profile and fundamentals,
// and the v8 chart endpoint for daily price history.
//
// Responses are cached on disk for the day, so repeated runs do not re-hit
// the API.
package yahoo

import (
	"context"
	"fmt"
	"net/http"

	"github.com/zocatelli/equity"
)

// quoteModules are the quoteSummary modules carrying everything the analysis
// needs.
const quoteModules = "price,summaryProfile,summaryDetail,defaultKeyStatistics,financialData"

// Client fetches quotes and price histories from Yahoo Finance. It implements
// equity.Provider.
type Client struct {
	http *http.Client
	base string
}

// NewClient returns a client with daily disk caching against the public API.
func NewClient() *Client {
	return &Client{http: newDailyCachingClient(), base: "https://query1.finance.yahoo.com"}
}

// NewClientAt targets a different base URL with a plain client, for tests.
func NewClientAt(base string) *Client {
	return &Client{http: new(http.Client), base: base}
}

var _ equity.Provider = (*Client)(nil)

// Quote fetches profile and fundamentals for one ticker from the quoteSummary
// endpoint. Fields Yahoo does not know for the ticker are left zero.
func (c *Client) Quote(ctx context.Context, t equity.Ticker) (equity.Profile, equity.Fundamentals, error) {
	addr := fmt.Sprintf("%s/v10/finance/quoteSummary/%s?modules=%s", c.base, t.Symbol(), quoteModules)
	var jobj any
	if err := fetchJSON(ctx, c.http, addr, &jobj); err != nil {
		return equity.Profile{}, equity.Fundamentals{}, fmt.Errorf("quote %s: %w", t, err)
	}

	const root = "$.quoteSummary.result[0]"
	if _, ok := jget(jobj, root); !ok {
		return equity.Profile{}, equity.Fundamentals{}, fmt.Errorf("quote %s: %s", t, jstring(jobj, "$.quoteSummary.error.description"))
	}

	currency := jstring(jobj, root+".price.currency")
	if currency == "" {
		currency = "BRL"
	}
	name := jstring(jobj, root+".price.longName")
	if name == "" {
		name = jstring(jobj, root+".price.shortName")
	}
	money := func(path string) equity.Money {
		return equity.M(jfloat(jobj, root+path), currency)
	}

	profile := equity.Profile{
		Ticker:    t,
		Name:      name,
		Sector:    jstring(jobj, root+".summaryProfile.sector"),
		Industry:  jstring(jobj, root+".summaryProfile.industry"),
		Currency:  currency,
		Price:     money(".price.regularMarketPrice.raw"),
		MarketCap: money(".price.marketCap.raw"),
		AvgVolume: jfloat(jobj, root+".summaryDetail.averageVolume.raw"),
	}
	fundamentals := equity.Fundamentals{
		EPS:           money(".defaultKeyStatistics.trailingEps.raw"),
		BookValue:     money(".defaultKeyStatistics.bookValue.raw"),
		DividendShare: money(".summaryDetail.trailingAnnualDividendRate.raw"),
		PE:            jfloat(jobj, root+".summaryDetail.trailingPE.raw"),
		PB:            jfloat(jobj, root+".defaultKeyStatistics.priceToBook.raw"),
		DividendYield: equity.Percent(jfloat(jobj, root+".summaryDetail.dividendYield.raw")),
		PayoutRatio:   equity.Percent(jfloat(jobj, root+".summaryDetail.payoutRatio.raw")),
		ROE:           equity.Percent(jfloat(jobj, root+".financialData.returnOnEquity.raw")),
		NetMargin:     equity.Percent(jfloat(jobj, root+".financialData.profitMargins.raw")),
		DebtToEquity:  jfloat(jobj, root+".financialData.debtToEquity.raw"),
		TotalRevenue:  money(".financialData.totalRevenue.raw"),
		NetIncome:     money(".defaultKeyStatistics.netIncomeToCommon.raw"),
	}
	if profile.Price.IsZero() {
		return equity.Profile{}, equity.Fundamentals{}, fmt.Errorf("quote %s: no market price in response", t)
	}
	return profile, fundamentals, nil
}
