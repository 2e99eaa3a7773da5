package equity

import (
	"fmt"
	"regexp"
	"strings"
)

// Ticker identifies a security on the B3 exchange, e.g. "ITUB4" or "PETR4".
// Yahoo Finance knows B3 listings under the ".SA" suffix; the suffix is
// accepted on input and added on demand.
type Ticker string

// b3Pattern matches the B3 ticker grammar: 4 letters, 1 or 2 digits
// (3 common, 4 preferred, 11 units), with an optional ".SA" suffix.
var b3Pattern = regexp.MustCompile(`^[A-Z]{4}[0-9]{1,2}(\.SA)?$`)

// ParseTicker validates and normalizes a user-supplied ticker.
func ParseTicker(s string) (Ticker, error) {
	t := strings.ToUpper(strings.TrimSpace(s))
	if !b3Pattern.MatchString(t) {
		return "", fmt.Errorf("invalid B3 ticker %q: want 4 letters and 1-2 digits, e.g. ITUB4", s)
	}
	return Ticker(strings.TrimSuffix(t, ".SA")), nil
}

// ParseTickers splits a comma-separated list into validated tickers.
func ParseTickers(s string) ([]Ticker, error) {
	var tickers []Ticker
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		t, err := ParseTicker(part)
		if err != nil {
			return nil, err
		}
		tickers = append(tickers, t)
	}
	if len(tickers) == 0 {
		return nil, fmt.Errorf("no tickers in %q", s)
	}
	return tickers, nil
}

// Symbol returns the Yahoo Finance symbol for the ticker ("ITUB4.SA").
func (t Ticker) Symbol() string {
	if strings.HasSuffix(string(t), ".SA") {
		return string(t)
	}
	return string(t) + ".SA"
}

// String returns the plain B3 ticker without the provider suffix.
func (t Ticker) String() string { return strings.TrimSuffix(string(t), ".SA") }
