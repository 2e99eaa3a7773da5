// Package bcb fetches Brazilian macro indicators from the Banco Central do
// Brasil SGS open-data API (time series by numeric code).
package bcb

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/zocatelli/equity"
)

// SGS series codes.
const (
	SeriesSelic   = 432   // SELIC target rate, % per year
	SeriesIPCA12m = 13522 // IPCA accumulated over 12 months, %
	SeriesCDI     = 12    // CDI, % per day
	SeriesPTAX    = 1     // USD/BRL PTAX closing rate
)

// cdiSpread is the typical gap between the SELIC target and the CDI, in
// percentage points. The daily CDI series is awkward to annualize, so the
// spread proxy is used instead.
const cdiSpread = 0.10

// Client reads SGS series. The zero base targets the public API.
type Client struct {
	http *http.Client
	base string
}

// NewClient returns a client against the public SGS API.
func NewClient() *Client {
	return &Client{http: &http.Client{Timeout: 15 * time.Second}, base: "https://api.bcb.gov.br"}
}

// NewClientAt targets a different base URL, for tests.
func NewClientAt(base string) *Client {
	return &Client{http: new(http.Client), base: base}
}

// observation is one SGS data point. Values come as strings.
type observation struct {
	Date  string `json:"data"`
	Value string `json:"valor"`
}

// Latest returns the most recent observation of a series.
func (c *Client) Latest(ctx context.Context, code int) (float64, error) {
	addr := fmt.Sprintf("%s/dados/serie/bcdata.sgs.%d/dados/ultimos/1?formato=json", c.base, code)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return 0, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("sgs series %d: %w", code, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		return 0, fmt.Errorf("sgs series %d: %s", code, resp.Status)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return 0, err
	}
	var obs []observation
	if err := json.Unmarshal(buf.Bytes(), &obs); err != nil {
		return 0, fmt.Errorf("sgs series %d: %w", code, err)
	}
	if len(obs) == 0 {
		return 0, fmt.Errorf("sgs series %d: empty response", code)
	}
	val, err := strconv.ParseFloat(strings.ReplaceAll(obs[len(obs)-1].Value, ",", "."), 64)
	if err != nil {
		return 0, fmt.Errorf("sgs series %d: bad value %q: %w", code, obs[len(obs)-1].Value, err)
	}
	return val, nil
}

// Indicators aggregates the macro snapshot the analysis needs. A series that
// cannot be fetched leaves its field zero rather than failing the whole
// snapshot.
func (c *Client) Indicators(ctx context.Context) equity.Macro {
	var m equity.Macro

	if selic, err := c.Latest(ctx, SeriesSelic); err != nil {
		log.Printf("sgs selic unavailable: %v", err)
	} else {
		m.Selic = equity.Percent(selic / 100)
		m.CDI = equity.Percent((selic - cdiSpread) / 100)
	}
	if ipca, err := c.Latest(ctx, SeriesIPCA12m); err != nil {
		log.Printf("sgs ipca unavailable: %v", err)
	} else {
		m.IPCA12m = equity.Percent(ipca / 100)
	}
	if ptax, err := c.Latest(ctx, SeriesPTAX); err != nil {
		log.Printf("sgs ptax unavailable: %v", err)
	} else {
		m.USDBRL = ptax
	}
	return m
}
