package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/zocatelli/equity"
	"github.com/zocatelli/equity/renderer"
	"github.com/zocatelli/equity/yahoo"
)

const homeMarkdown = `# Equity research tool

Analyze B3-listed stocks: fundamentals, performance, classic fair-price
formulas and a fundamental screener.

- ` + "`/stock/ITUB4?range=1y`" + ` single-stock analysis
- ` + "`/compare?tickers=ITUB4,BBDC4`" + ` side-by-side comparison
- ` + "`/screener?max-pe=15&min-dy=0.05`" + ` fundamental screener
- ` + "`/macro`" + ` Brazilian macro snapshot
- ` + "`/api/...`" + ` the same reports as JSON

> Study material, not an investment recommendation.
`

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	s.renderPageWithForm(w, "home", homeMarkdown)
}

// handleStockForm turns the home-page form submission into the stock page URL.
func (s *Server) handleStockForm(w http.ResponseWriter, r *http.Request) {
	t, err := equity.ParseTicker(r.URL.Query().Get("t"))
	if err != nil {
		s.fail(w, badRequest(err))
		return
	}
	target := "/stock/" + t.String()
	if rng := r.URL.Query().Get("range"); rng != "" {
		target += "?range=" + url.QueryEscape(rng)
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func (s *Server) handleStock(w http.ResponseWriter, r *http.Request) {
	report, err := s.stockReport(r)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.renderPage(w, report.Profile.Ticker.String(), renderer.StockMarkdown(report))
}

func (s *Server) handleAPIStock(w http.ResponseWriter, r *http.Request) {
	report, err := s.stockReport(r)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.writeJSON(w, report)
}

// queryRange reads the range query parameter, defaulting when absent. An
// unknown range is the caller's mistake, not the provider's.
func queryRange(r *http.Request) (string, error) {
	rng := r.URL.Query().Get("range")
	if rng == "" {
		return yahoo.DefaultRange, nil
	}
	if !yahoo.ValidRange(rng) {
		return "", badRequest(fmt.Errorf("invalid range %q, valid: %s", rng, strings.Join(yahoo.Ranges, ", ")))
	}
	return rng, nil
}

// stockReport builds the single-stock report from the request path and query.
func (s *Server) stockReport(r *http.Request) (*equity.StockReport, error) {
	t, err := equity.ParseTicker(r.PathValue("ticker"))
	if err != nil {
		return nil, badRequest(err)
	}
	rng, err := queryRange(r)
	if err != nil {
		return nil, err
	}
	report, err := equity.NewStockReport(r.Context(), s.provider, t, rng, s.macro.Indicators(r.Context()))
	if err != nil {
		return nil, badGateway(err)
	}
	return report, nil
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	tickers, err := equity.ParseTickers(r.URL.Query().Get("tickers"))
	if err != nil {
		s.fail(w, badRequest(err))
		return
	}
	rng, err := queryRange(r)
	if err != nil {
		s.fail(w, err)
		return
	}
	report, err := equity.NewComparisonReport(r.Context(), s.provider, tickers, rng, s.macro.Indicators(r.Context()))
	if err != nil {
		s.fail(w, badGateway(err))
		return
	}
	s.renderPage(w, "compare", renderer.ComparisonMarkdown(report))
}

func (s *Server) handleScreener(w http.ResponseWriter, r *http.Request) {
	report, err := s.screenerReport(r)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.renderPage(w, "screener", renderer.ScreenerMarkdown(report))
}

func (s *Server) handleAPIScreener(w http.ResponseWriter, r *http.Request) {
	report, err := s.screenerReport(r)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.writeJSON(w, report)
}

// screenerReport builds the screener report from query criteria.
func (s *Server) screenerReport(r *http.Request) (*equity.ScreenerReport, error) {
	q := r.URL.Query()
	num := func(key string) (float64, error) {
		v := q.Get(key)
		if v == "" {
			return 0, nil
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, badRequest(fmt.Errorf("invalid %s=%q: %w", key, v, err))
		}
		return f, nil
	}

	var criteria equity.Criteria
	var err error
	if criteria.MinPE, err = num("min-pe"); err != nil {
		return nil, err
	}
	if criteria.MaxPE, err = num("max-pe"); err != nil {
		return nil, err
	}
	if criteria.MinPB, err = num("min-pb"); err != nil {
		return nil, err
	}
	if criteria.MaxPB, err = num("max-pb"); err != nil {
		return nil, err
	}
	dy, err := num("min-dy")
	if err != nil {
		return nil, err
	}
	criteria.MinYield = equity.Percent(dy)
	roe, err := num("min-roe")
	if err != nil {
		return nil, err
	}
	criteria.MinROE = equity.Percent(roe)
	minCap, err := num("min-cap")
	if err != nil {
		return nil, err
	}
	if minCap > 0 {
		criteria.MinMarketCap = equity.BRL(minCap)
	}
	criteria.Sector = q.Get("sector")

	top := 10
	if v := q.Get("top"); v != "" {
		if top, err = strconv.Atoi(v); err != nil {
			return nil, badRequest(fmt.Errorf("invalid top=%q: %w", v, err))
		}
	}

	var universe []equity.Ticker
	if v := q.Get("universe"); v != "" {
		if universe, err = equity.ParseTickers(v); err != nil {
			return nil, badRequest(err)
		}
	}

	report, err := equity.NewScreenerReport(r.Context(), s.provider, universe, criteria, top)
	if err != nil {
		return nil, badGateway(err)
	}
	return report, nil
}

func (s *Server) handleMacro(w http.ResponseWriter, r *http.Request) {
	report := equity.NewMacroReport(s.macro.Indicators(r.Context()))
	s.renderPage(w, "macro", renderer.MacroMarkdown(report))
}

func (s *Server) handleAPIMacro(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, equity.NewMacroReport(s.macro.Indicators(r.Context())))
}

// writeJSON encodes the payload with a JSON content type.
func (s *Server) writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("json encoding failed", zap.Error(err))
	}
}

// httpError carries the status code a handler failure maps to.
type httpError struct {
	status int
	err    error
}

func (e *httpError) Error() string { return e.err.Error() }

func badRequest(err error) error { return &httpError{status: http.StatusBadRequest, err: err} }
func badGateway(err error) error { return &httpError{status: http.StatusBadGateway, err: err} }

// fail writes an error response with the mapped status code.
func (s *Server) fail(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if he, ok := err.(*httpError); ok {
		status = he.status
	}
	s.logger.Warn("request failed", zap.Error(err))
	http.Error(w, err.Error(), status)
}
