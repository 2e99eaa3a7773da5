package equity

import (
	"math"
	"testing"
	"time"

	"github.com/zocatelli/equity/date"
)

func histOf(prices ...float64) *date.History[float64] {
	h := new(date.History[float64])
	for i, p := range prices {
		h.Append(date.New(2024, time.January, 1+i), p)
	}
	return h
}

func TestTotalReturn(t *testing.T) {
	testCases := []struct {
		name   string
		prices []float64
		period int
		expect Percent
	}{
		{"Up 10 percent", []float64{100, 105, 110}, 0, 0.10},
		{"Down 20 percent", []float64{100, 90, 80}, 0, -0.20},
		{"Last session only", []float64{100, 100, 110}, 1, 0.10},
		{"Flat", []float64{50, 50}, 0, 0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a := NewAnalysis(histOf(tc.prices...), nil)
			if got := a.TotalReturn(tc.period); !got.Equal(tc.expect) {
				t.Errorf("TotalReturn(%d) = %s, want %s", tc.period, got, tc.expect)
			}
		})
	}
}

func TestAnnualizedReturn(t *testing.T) {
	// 1% over one session compounds to (1.01)^252 - 1 over a year.
	a := NewAnalysis(histOf(100, 101), nil)
	want := math.Pow(1.01, 252) - 1
	if got := float64(a.AnnualizedReturn(0)); math.Abs(got-want) > 1e-9 {
		t.Errorf("AnnualizedReturn = %v, want %v", got, want)
	}
}

func TestVolatility(t *testing.T) {
	// Alternating +10%/-10% daily returns have a stddev of 0.1.
	a := NewAnalysis(histOf(100, 110, 99, 108.9, 98.01), nil)
	want := 0.1 * math.Sqrt(252)
	if got := float64(a.Volatility(0)); math.Abs(got-want) > 1e-9 {
		t.Errorf("Volatility = %v, want %v", got, want)
	}

	// A constant series has no volatility, and Sharpe degrades to 0.
	flat := NewAnalysis(histOf(50, 50, 50), nil)
	if got := flat.Volatility(0); got != 0 {
		t.Errorf("flat Volatility = %s, want 0", got)
	}
	if got := flat.SharpeRatio(0.10, 0); got != 0 {
		t.Errorf("flat SharpeRatio = %v, want 0", got)
	}
}

func TestMaxDrawdown(t *testing.T) {
	testCases := []struct {
		name   string
		prices []float64
		expect float64
	}{
		{"Peak then trough", []float64{100, 120, 90, 100}, -0.25},
		{"Monotonic rise", []float64{100, 110, 120}, 0},
		{"Full round trip", []float64{100, 50, 100}, -0.50},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a := NewAnalysis(histOf(tc.prices...), nil)
			if got := float64(a.MaxDrawdown(0)); math.Abs(got-tc.expect) > 1e-9 {
				t.Errorf("MaxDrawdown = %v, want %v", got, tc.expect)
			}
		})
	}
}

func TestMovingAverage(t *testing.T) {
	a := NewAnalysis(histOf(1, 2, 3, 4, 5), nil)
	ma := a.MovingAverage(3)
	if ma.Len() != 3 {
		t.Fatalf("MovingAverage(3).Len() = %d, want 3", ma.Len())
	}
	want := []float64{2, 3, 4}
	for i, v := range ma.Raw() {
		if v != want[i] {
			t.Errorf("MovingAverage[%d] = %v, want %v", i, v, want[i])
		}
	}
}

func TestSummary(t *testing.T) {
	closes := histOf(100, 120, 90, 110)
	volumes := histOf(1000, 2000, 3000, 4000)
	s := NewAnalysis(closes, volumes).Summary(0, 0.10)

	if !s.TotalReturn.Equal(0.10) {
		t.Errorf("TotalReturn = %s, want 10.00%%", s.TotalReturn)
	}
	if s.LastPrice != 110 {
		t.Errorf("LastPrice = %v, want 110", s.LastPrice)
	}
	if s.High52w != 120 || s.Low52w != 90 {
		t.Errorf("52w range = [%v, %v], want [90, 120]", s.Low52w, s.High52w)
	}
	if s.AvgVolume != 2500 {
		t.Errorf("AvgVolume = %v, want 2500", s.AvgVolume)
	}
}

func TestSummaryShortHistory(t *testing.T) {
	// Too few sessions to compute any return: everything degrades to zero.
	testCases := []struct {
		name      string
		closes    *date.History[float64]
		lastPrice float64
	}{
		{"Empty", histOf(), 0},
		{"Single session", histOf(100), 100},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := NewAnalysis(tc.closes, nil).Summary(0, 0.10)
			if s.TotalReturn != 0 || s.AnnualizedReturn != 0 {
				t.Errorf("returns = %s/%s, want 0/0", s.TotalReturn, s.AnnualizedReturn)
			}
			if s.Volatility != 0 || s.SharpeRatio != 0 || s.MaxDrawdown != 0 {
				t.Errorf("risk stats = %s/%v/%s, want all 0", s.Volatility, s.SharpeRatio, s.MaxDrawdown)
			}
			if s.LastPrice != tc.lastPrice {
				t.Errorf("LastPrice = %v, want %v", s.LastPrice, tc.lastPrice)
			}
		})
	}
}
