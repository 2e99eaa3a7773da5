package equity

import "strings"

// Macro holds the Brazilian macro indicators the analysis depends on. A zero
// field means the series could not be fetched and renders as "N/A".
type Macro struct {
	Selic   Percent `json:"selic"`   // SELIC target, annual
	CDI     Percent `json:"cdi"`     // interbank rate, annual
	IPCA12m Percent `json:"ipca12m"` // consumer inflation, trailing 12 months
	USDBRL  float64 `json:"usdbrl"`  // PTAX closing rate
}

// RiskFree returns the rate used in Sharpe and Gordon computations, preferring
// CDI and falling back to SELIC.
func (m Macro) RiskFree() Percent {
	if m.CDI != 0 {
		return m.CDI
	}
	return m.Selic
}

// SectorBenchmark holds typical valuation multiples for a B3 sector, used to
// contextualize a stock's own ratios.
type SectorBenchmark struct {
	Sector string  `json:"sector"`
	PE     float64 `json:"pe"`
	PB     float64 `json:"pb"`
	Yield  Percent `json:"yield"`
}

// sectorBenchmarks are rough B3 sector averages. They are static reference
// values, not live data.
var sectorBenchmarks = []SectorBenchmark{
	{"Financial Services", 8.5, 1.5, 0.06},
	{"Energy", 6.0, 1.2, 0.08},
	{"Basic Materials", 7.0, 1.3, 0.07},
	{"Utilities", 9.0, 1.6, 0.07},
	{"Consumer Defensive", 15.0, 2.5, 0.04},
	{"Consumer Cyclical", 18.0, 2.0, 0.02},
	{"Industrials", 16.0, 2.8, 0.025},
	{"Healthcare", 20.0, 2.2, 0.015},
	{"Real Estate", 10.0, 1.0, 0.05},
	{"Communication Services", 12.0, 1.4, 0.05},
	{"Technology", 22.0, 3.0, 0.01},
}

// benchmarkDefault is used when no sector matches.
var benchmarkDefault = SectorBenchmark{Sector: "General", PE: 12.0, PB: 1.8, Yield: 0.04}

// BenchmarkFor looks up the benchmark for a sector by case-insensitive partial
// match, falling back to a general benchmark.
func BenchmarkFor(sector string) SectorBenchmark {
	s := strings.ToLower(strings.TrimSpace(sector))
	if s == "" {
		return benchmarkDefault
	}
	for _, b := range sectorBenchmarks {
		low := strings.ToLower(b.Sector)
		if strings.Contains(low, s) || strings.Contains(s, low) {
			return b
		}
	}
	return benchmarkDefault
}

// Benchmarks returns the full sector benchmark table.
func Benchmarks() []SectorBenchmark { return sectorBenchmarks }
