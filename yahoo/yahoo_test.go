package yahoo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/zocatelli/equity"
)

const quoteSummaryPayload = `{
  "quoteSummary": {
    "result": [{
      "price": {
        "longName": "Itaú Unibanco Holding S.A.",
        "currency": "BRL",
        "regularMarketPrice": {"raw": 32.50},
        "marketCap": {"raw": 318000000000}
      },
      "summaryProfile": {"sector": "Financial Services", "industry": "Banks - Regional"},
      "summaryDetail": {
        "trailingPE": {"raw": 8.5},
        "dividendYield": {"raw": 0.055},
        "payoutRatio": {"raw": 0.45},
        "trailingAnnualDividendRate": {"raw": 1.50},
        "averageVolume": {"raw": 25000000}
      },
      "defaultKeyStatistics": {
        "trailingEps": {"raw": 4.15},
        "bookValue": {"raw": 22.8},
        "priceToBook": {"raw": 1.43},
        "netIncomeToCommon": {"raw": 38000000000}
      },
      "financialData": {
        "returnOnEquity": {"raw": 0.21},
        "profitMargins": {"raw": 0.28},
        "debtToEquity": {"raw": 110.5},
        "totalRevenue": {"raw": 160000000000}
      }
    }],
    "error": null
  }
}`

const chartPayload = `{
  "chart": {
    "result": [{
      "timestamp": [1704153600, 1704240000, 1704326400],
      "indicators": {"quote": [{
        "close": [30.0, null, 31.5],
        "volume": [1000000, null, 1200000]
      }]}
    }],
    "error": null
  }
}`

const notFoundPayload = `{
  "quoteSummary": {
    "result": null,
    "error": {"code": "Not Found", "description": "Quote not found for ticker symbol: XXXX9.SA"}
  }
}`

func testServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/v10/finance/quoteSummary/", func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, "ITUB4.SA") {
			w.Write([]byte(notFoundPayload))
			return
		}
		w.Write([]byte(quoteSummaryPayload))
	})
	mux.HandleFunc("/v8/finance/chart/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(chartPayload))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestQuote(t *testing.T) {
	c := NewClientAt(testServer(t).URL)
	profile, f, err := c.Quote(context.Background(), "ITUB4")
	if err != nil {
		t.Fatalf("Quote returned error: %v", err)
	}

	if profile.Name != "Itaú Unibanco Holding S.A." {
		t.Errorf("Name = %q", profile.Name)
	}
	if profile.Sector != "Financial Services" {
		t.Errorf("Sector = %q", profile.Sector)
	}
	if !profile.Price.Equal(equity.BRL(32.50)) {
		t.Errorf("Price = %s, want R$32.50", profile.Price)
	}
	if !f.EPS.Equal(equity.BRL(4.15)) {
		t.Errorf("EPS = %s, want R$4.15", f.EPS)
	}
	if f.PE != 8.5 {
		t.Errorf("PE = %v, want 8.5", f.PE)
	}
	if !f.DividendYield.Equal(0.055) {
		t.Errorf("DividendYield = %s, want 5.50%%", f.DividendYield)
	}
}

func TestQuoteNotFound(t *testing.T) {
	c := NewClientAt(testServer(t).URL)
	_, _, err := c.Quote(context.Background(), "XXXX9")
	if err == nil {
		t.Fatal("Quote on unknown ticker returned no error")
	}
	if !strings.Contains(err.Error(), "Quote not found") {
		t.Errorf("error %q does not carry the provider description", err)
	}
}

func TestHistory(t *testing.T) {
	c := NewClientAt(testServer(t).URL)
	closes, volumes, err := c.History(context.Background(), "ITUB4", "3mo")
	if err != nil {
		t.Fatalf("History returned error: %v", err)
	}

	// the null close in the middle is skipped
	if closes.Len() != 2 {
		t.Fatalf("closes.Len() = %d, want 2", closes.Len())
	}
	if _, v := closes.Latest(); v != 31.5 {
		t.Errorf("latest close = %v, want 31.5", v)
	}
	if volumes.Len() != 2 {
		t.Errorf("volumes.Len() = %d, want 2", volumes.Len())
	}
}

func TestHistoryRejectsBadRange(t *testing.T) {
	c := NewClientAt(testServer(t).URL)
	if _, _, err := c.History(context.Background(), "ITUB4", "7w"); err == nil {
		t.Error("History accepted an invalid range")
	}
}
