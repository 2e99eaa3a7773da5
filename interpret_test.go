package equity

import (
	"strings"
	"testing"
)

func TestInterpret(t *testing.T) {
	hasTone := func(notes []Note, tone Tone, substr string) bool {
		for _, n := range notes {
			if n.Tone == tone && strings.Contains(n.Text, substr) {
				return true
			}
		}
		return false
	}

	testCases := []struct {
		name   string
		f      Fundamentals
		s      Stats
		tone   Tone
		substr string
	}{
		{"Loss maker", Fundamentals{PE: -3.2}, Stats{}, Warn, "loss"},
		{"Cheap earner", Fundamentals{PE: 6.1}, Stats{}, Good, "Low P/E"},
		{"Expensive", Fundamentals{PE: 31}, Stats{}, Warn, "High P/E"},
		{"Great ROE", Fundamentals{ROE: 0.22}, Stats{}, Good, "Excellent ROE"},
		{"Weak ROE", Fundamentals{ROE: 0.05}, Stats{}, Warn, "Weak ROE"},
		{"Big payer", Fundamentals{DividendYield: 0.09}, Stats{}, Good, "dividend yield"},
		{"Crash", Fundamentals{}, Stats{TotalReturn: -0.35}, Warn, "Heavy fall"},
		{"Good Sharpe", Fundamentals{}, Stats{SharpeRatio: 1.2, Volatility: 0.2}, Good, "risk-adjusted"},
		{"Negative Sharpe", Fundamentals{}, Stats{SharpeRatio: -0.4, Volatility: 0.2}, Warn, "risk-free"},
		{"Wild ride", Fundamentals{}, Stats{Volatility: 0.65}, Warn, "volatility"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			notes := Interpret(tc.f, tc.s)
			if !hasTone(notes, tc.tone, tc.substr) {
				t.Errorf("Interpret() = %+v, want a %s note containing %q", notes, tc.tone, tc.substr)
			}
		})
	}

	// Nothing known yields the neutral fallback, never an empty list.
	notes := Interpret(Fundamentals{}, Stats{})
	if len(notes) != 1 || notes[0].Tone != Info {
		t.Errorf("Interpret(zero) = %+v, want single info note", notes)
	}
}
