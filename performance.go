package equity

import (
	"math"

	"github.com/zocatelli/equity/date"
)

// tradingDays is the conventional number of B3 trading sessions in a year,
// used to annualize daily figures.
const tradingDays = 252

// Analysis computes performance statistics from a daily close-price history.
type Analysis struct {
	closes  *date.History[float64]
	volumes *date.History[float64]
	returns []float64 // daily percentage changes, len = closes.Len()-1
}

// NewAnalysis prepares an analysis from close prices and (optionally nil)
// volumes.
func NewAnalysis(closes, volumes *date.History[float64]) *Analysis {
	a := &Analysis{closes: closes, volumes: volumes}
	prices := closes.Raw()
	for i := 1; i < len(prices); i++ {
		if prices[i-1] == 0 {
			a.returns = append(a.returns, 0)
			continue
		}
		a.returns = append(a.returns, prices[i]/prices[i-1]-1)
	}
	return a
}

// Returns is the series of daily returns.
func (a *Analysis) Returns() []float64 { return a.returns }

// tailPrices returns the last period+1 prices (period daily moves), or the
// whole series when period is 0 or larger than the history.
func (a *Analysis) tailPrices(period int) []float64 {
	prices := a.closes.Raw()
	if period <= 0 || period+1 >= len(prices) {
		return prices
	}
	return prices[len(prices)-period-1:]
}

// TotalReturn is the simple return over the last 'period' sessions
// (0 means the whole history).
func (a *Analysis) TotalReturn(period int) Percent {
	prices := a.tailPrices(period)
	if len(prices) < 2 || prices[0] == 0 {
		return 0
	}
	return Percent(prices[len(prices)-1]/prices[0] - 1)
}

// AnnualizedReturn compounds the total return to a yearly figure.
func (a *Analysis) AnnualizedReturn(period int) Percent {
	total := float64(a.TotalReturn(period))
	days := period
	if days <= 0 || days > len(a.returns) {
		days = len(a.returns)
	}
	if days == 0 {
		return 0
	}
	return Percent(math.Pow(1+total, tradingDays/float64(days)) - 1)
}

// Volatility is the standard deviation of daily returns over the last
// 'period' sessions, annualized by √252.
func (a *Analysis) Volatility(period int) Percent {
	returns := a.returns
	if period > 0 && period < len(returns) {
		returns = returns[len(returns)-period:]
	}
	return Percent(stddev(returns) * math.Sqrt(tradingDays))
}

// SharpeRatio is the annualized excess return over the risk-free rate per
// unit of volatility. It is 0 when the volatility is 0.
func (a *Analysis) SharpeRatio(riskFree Percent, period int) float64 {
	vol := float64(a.Volatility(period))
	if vol == 0 {
		return 0
	}
	return (float64(a.AnnualizedReturn(period)) - float64(riskFree)) / vol
}

// MaxDrawdown is the worst peak-to-trough loss over the last 'period'
// sessions, as a negative percent.
func (a *Analysis) MaxDrawdown(period int) Percent {
	prices := a.tailPrices(period)
	var cummax, worst float64
	for _, p := range prices {
		if p > cummax {
			cummax = p
		}
		if cummax == 0 {
			continue
		}
		if dd := (p - cummax) / cummax; dd < worst {
			worst = dd
		}
	}
	return Percent(worst)
}

// MovingAverage returns the simple moving average series for the given
// window. Days before the window is full are skipped.
func (a *Analysis) MovingAverage(window int) *date.History[float64] {
	ma := new(date.History[float64])
	if window <= 0 {
		return ma
	}
	var days []date.Date
	for on := range a.closes.Values() {
		days = append(days, on)
	}
	prices := a.closes.Raw()
	var sum float64
	for i, p := range prices {
		sum += p
		if i >= window {
			sum -= prices[i-window]
		}
		if i >= window-1 {
			ma.Append(days[i], sum/float64(window))
		}
	}
	return ma
}

// Stats is the at-a-glance performance summary for one stock.
type Stats struct {
	TotalReturn      Percent `json:"totalReturn"`
	AnnualizedReturn Percent `json:"annualizedReturn"`
	Volatility       Percent `json:"volatility"`
	SharpeRatio      float64 `json:"sharpeRatio"`
	MaxDrawdown      Percent `json:"maxDrawdown"`
	LastPrice        float64 `json:"lastPrice"`
	High52w          float64 `json:"high52w"`
	Low52w           float64 `json:"low52w"`
	AvgVolume        float64 `json:"avgVolume,omitempty"`
}

// Summary computes the standard statistics over the last 'period' sessions
// using the given annual risk-free rate.
func (a *Analysis) Summary(period int, riskFree Percent) Stats {
	s := Stats{
		TotalReturn:      a.TotalReturn(period),
		AnnualizedReturn: a.AnnualizedReturn(period),
		Volatility:       a.Volatility(period),
		SharpeRatio:      a.SharpeRatio(riskFree, period),
		MaxDrawdown:      a.MaxDrawdown(period),
	}
	_, s.LastPrice = a.closes.Latest()

	for _, p := range a.tailPrices(tradingDays) {
		if p > s.High52w {
			s.High52w = p
		}
		if s.Low52w == 0 || p < s.Low52w {
			s.Low52w = p
		}
	}
	if a.volumes != nil && a.volumes.Len() > 0 {
		vols := a.volumes
		if period > 0 {
			vols = vols.Tail(period)
		}
		s.AvgVolume = mean(vols.Raw())
	}
	return s
}

// mean is the arithmetic average of the values, 0 when empty.
func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// stddev is the population standard deviation of the values, 0 when there are
// fewer than two.
func stddev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	avg := mean(values)
	var sumSquaredDiff float64
	for _, v := range values {
		diff := v - avg
		sumSquaredDiff += diff * diff
	}
	return math.Sqrt(sumSquaredDiff / float64(len(values)))
}
