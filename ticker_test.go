package equity

import "testing"

func TestParseTicker(t *testing.T) {
	testCases := []struct {
		name      string
		input     string
		expect    Ticker
		expectErr bool
	}{
		{"Plain", "ITUB4", "ITUB4", false},
		{"Lowercase", "petr4", "PETR4", false},
		{"With suffix", "VALE3.SA", "VALE3", false},
		{"Padded", "  bbas3 ", "BBAS3", false},
		{"Unit", "TAEE11", "TAEE11", false},
		{"Too short", "ITU4", "", true},
		{"No digits", "ITUB", "", true},
		{"Garbage", "not a ticker", "", true},
		{"Empty", "", "", true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseTicker(tc.input)
			if (err != nil) != tc.expectErr {
				t.Fatalf("ParseTicker(%q) error = %v, want error: %v", tc.input, err, tc.expectErr)
			}
			if got != tc.expect {
				t.Errorf("ParseTicker(%q) = %q, want %q", tc.input, got, tc.expect)
			}
		})
	}
}

func TestParseTickers(t *testing.T) {
	got, err := ParseTickers("itub4, BBDC4 ,vale3.sa")
	if err != nil {
		t.Fatalf("ParseTickers returned error: %v", err)
	}
	want := []Ticker{"ITUB4", "BBDC4", "VALE3"}
	if len(got) != len(want) {
		t.Fatalf("ParseTickers returned %d tickers, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ParseTickers[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	if _, err := ParseTickers(" , "); err == nil {
		t.Error("ParseTickers accepted an empty list")
	}
}

func TestTickerSymbol(t *testing.T) {
	if got := Ticker("ITUB4").Symbol(); got != "ITUB4.SA" {
		t.Errorf("Symbol() = %q, want ITUB4.SA", got)
	}
	if got := Ticker("ITUB4.SA").Symbol(); got != "ITUB4.SA" {
		t.Errorf("Symbol() on suffixed ticker = %q", got)
	}
	if got := Ticker("ITUB4.SA").String(); got != "ITUB4" {
		t.Errorf("String() = %q, want ITUB4", got)
	}
}
