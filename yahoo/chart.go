package yahoo

import (
	"context"
	"fmt"
	"strings"

	"github.com/zocatelli/equity"
	"github.com/zocatelli/equity/date"
)

// Ranges are the history windows the chart endpoint accepts.
var Ranges = []string{"1mo", "3mo", "6mo", "1y", "2y", "5y", "max"}

// DefaultRange is used when the caller does not pick one.
const DefaultRange = "1y"

// ValidRange reports whether rng is an accepted history window.
func ValidRange(rng string) bool {
	for _, r := range Ranges {
		if r == rng {
			return true
		}
	}
	return false
}

// chartResponse mirrors the subset of the v8 chart payload we read.
type chartResponse struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close  []*float64 `json:"close"`
					Volume []*float64 `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// History fetches the daily close and volume series for a ticker over a named
// range. Sessions where Yahoo reports a null close are skipped.
func (c *Client) History(ctx context.Context, t equity.Ticker, rng string) (closes, volumes *date.History[float64], err error) {
	if rng == "" {
		rng = DefaultRange
	}
	if !ValidRange(rng) {
		return nil, nil, fmt.Errorf("invalid range %q: want one of %s", rng, strings.Join(Ranges, ", "))
	}

	addr := fmt.Sprintf("%s/v8/finance/chart/%s?range=%s&interval=1d", c.base, t.Symbol(), rng)
	var payload chartResponse
	if err := fetchJSON(ctx, c.http, addr, &payload); err != nil {
		return nil, nil, fmt.Errorf("history %s: %w", t, err)
	}
	if e := payload.Chart.Error; e != nil {
		return nil, nil, fmt.Errorf("history %s: %s", t, e.Description)
	}
	if len(payload.Chart.Result) == 0 || len(payload.Chart.Result[0].Indicators.Quote) == 0 {
		return nil, nil, fmt.Errorf("history %s: empty chart response", t)
	}

	result := payload.Chart.Result[0]
	quote := result.Indicators.Quote[0]
	closes, volumes = new(date.History[float64]), new(date.History[float64])
	for i, ts := range result.Timestamp {
		if i >= len(quote.Close) || quote.Close[i] == nil {
			continue
		}
		on := date.Unix(ts)
		closes.Append(on, *quote.Close[i])
		if i < len(quote.Volume) && quote.Volume[i] != nil {
			volumes.Append(on, *quote.Volume[i])
		}
	}
	if closes.Len() == 0 {
		return nil, nil, fmt.Errorf("history %s: no usable closes", t)
	}
	return closes, volumes, nil
}
