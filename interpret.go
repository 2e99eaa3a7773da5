package equity

import "fmt"

// Tone classifies a note for rendering (bullet color, emphasis).
type Tone string

const (
	Good Tone = "good"
	Warn Tone = "warn"
	Info Tone = "info"
)

// Note is one rule-based observation about a stock.
type Note struct {
	Tone Tone   `json:"tone"`
	Text string `json:"text"`
}

// Interpret derives plain-language notes from fundamentals and performance
// statistics. Missing (zero) inputs produce no note.
func Interpret(f Fundamentals, s Stats) []Note {
	var notes []Note
	note := func(tone Tone, format string, args ...any) {
		notes = append(notes, Note{Tone: tone, Text: fmt.Sprintf(format, args...)})
	}

	switch pe := f.PE; {
	case pe < 0:
		note(Warn, "Negative P/E (%.1f): the company is running at a loss.", pe)
	case pe == 0:
		// unknown, skip
	case pe < 10:
		note(Good, "Low P/E (%.1f): the market pays little for each real of profit.", pe)
	case pe > 25:
		note(Warn, "High P/E (%.1f): priced for growth, expensive by earnings.", pe)
	}

	switch roe := f.ROE; {
	case roe == 0:
	case roe > 0.20:
		note(Good, "Excellent ROE (%s): highly profitable use of equity.", roe)
	case roe > 0.15:
		note(Good, "Good ROE (%s).", roe)
	case roe < 0.08:
		note(Warn, "Weak ROE (%s): low return on shareholder equity.", roe)
	}

	switch dy := f.DividendYield; {
	case dy > 0.08:
		note(Good, "High dividend yield (%s): strong payer, check sustainability.", dy)
	case dy > 0.05:
		note(Good, "Solid dividend yield (%s).", dy)
	}

	switch ret := s.TotalReturn; {
	case ret > 0.30:
		note(Info, "Strong run: %s over the period. Entry price matters.", ret)
	case ret < -0.20:
		note(Warn, "Heavy fall: %s over the period. Understand why before buying.", ret)
	}

	switch sharpe := s.SharpeRatio; {
	case sharpe > 1.5:
		note(Good, "Excellent risk-adjusted return (Sharpe %.2f).", sharpe)
	case sharpe > 1:
		note(Good, "Good risk-adjusted return (Sharpe %.2f).", sharpe)
	case sharpe < 0 && s.Volatility > 0:
		note(Warn, "Returned less than the risk-free rate (Sharpe %.2f).", sharpe)
	}

	if s.Volatility > 0.50 {
		note(Warn, "High volatility (%s annualized): expect wide swings.", s.Volatility)
	}

	if len(notes) == 0 {
		note(Info, "No notable signals in the available figures.")
	}
	return notes
}
