package equity

import (
	"fmt"
	"math"
)

// Default assumptions for the dividend-based formulas.
const (
	// BazinMinYield is the minimum dividend yield a stock must sustain to be
	// worth its price under the Bazin rule.
	BazinMinYield Percent = 0.06
	// GordonDefaultGrowth is the perpetual dividend growth assumed when the
	// caller has no better estimate.
	GordonDefaultGrowth Percent = 0.03
	// GordonRiskPremium is added to the risk-free rate to build the required
	// return.
	GordonRiskPremium Percent = 0.05
)

// GrahamPrice is Benjamin Graham's intrinsic value: √(22.5 × EPS × BVPS).
// The 22.5 factor encodes a ceiling of P/E 15 times P/B 1.5.
func GrahamPrice(eps, bvps Money) (Money, error) {
	if !eps.IsPositive() || !bvps.IsPositive() {
		return Money{}, fmt.Errorf("graham needs positive earnings and book value")
	}
	v := math.Sqrt(22.5 * eps.AsFloat() * bvps.AsFloat())
	return M(v, eps.Currency()), nil
}

// GrahamAdjustedPrice shrinks the Graham multiplier when interest rates run
// above Graham's reference 4.4% AAA bond yield, keeping the formula honest in
// high-rate environments.
func GrahamAdjustedPrice(eps, bvps Money, selic Percent) (Money, error) {
	if !eps.IsPositive() || !bvps.IsPositive() {
		return Money{}, fmt.Errorf("graham needs positive earnings and book value")
	}
	adjust := 1.0
	if rate := float64(selic) * 100; rate > 4.4 {
		adjust = 4.4 / rate
	}
	v := math.Sqrt(22.5 * adjust * eps.AsFloat() * bvps.AsFloat())
	return M(v, eps.Currency()), nil
}

// BazinPrice is Décio Bazin's ceiling price: the price at which the dividend
// per share yields at least minYield (6% when zero).
func BazinPrice(dps Money, minYield Percent) (Money, error) {
	if minYield < 0 {
		return Money{}, fmt.Errorf("bazin needs a positive minimum yield, got %s", minYield)
	}
	if minYield == 0 {
		minYield = BazinMinYield
	}
	if !dps.IsPositive() {
		return Money{}, fmt.Errorf("bazin needs a positive dividend per share")
	}
	return dps.DivFloat(float64(minYield)), nil
}

// GordonPrice is the dividend discount model under perpetual growth:
// DPS × (1+g) / (r-g). The required return r must exceed the growth g.
func GordonPrice(dps Money, growth, required Percent) (Money, error) {
	if !dps.IsPositive() {
		return Money{}, fmt.Errorf("gordon needs a positive dividend per share")
	}
	if required <= growth {
		return Money{}, fmt.Errorf("gordon needs a required return (%s) above the growth rate (%s)", required, growth)
	}
	v := dps.AsFloat() * (1 + float64(growth)) / float64(required-growth)
	return M(v, dps.Currency()), nil
}

// MarginOfSafety is the discount of the market price to the fair price, as a
// fraction of the fair price. Positive means the stock trades below fair value.
func MarginOfSafety(fair, price Money) Percent {
	if !fair.IsPositive() {
		return 0
	}
	return Percent(fair.Sub(price).Ratio(fair))
}

// Verdict is a coarse classification of a margin of safety.
type Verdict string

const (
	VeryCheap     Verdict = "very cheap"
	Cheap         Verdict = "cheap"
	FairlyPriced  Verdict = "fairly priced"
	Expensive     Verdict = "expensive"
	VeryExpensive Verdict = "very expensive"
)

// VerdictFor buckets a margin of safety into a verdict.
func VerdictFor(margin Percent) Verdict {
	switch {
	case margin >= 0.30:
		return VeryCheap
	case margin >= 0.15:
		return Cheap
	case margin >= -0.10:
		return FairlyPriced
	case margin >= -0.30:
		return Expensive
	default:
		return VeryExpensive
	}
}

// Appraisal is the outcome of one fair-price method applied to one stock.
type Appraisal struct {
	Method    string  `json:"method"`
	FairPrice Money   `json:"fairPrice"`
	Price     Money   `json:"price"`
	Margin    Percent `json:"margin"`
	Verdict   Verdict `json:"verdict"`
	Basis     string  `json:"basis"`
}

// Appraise runs every fair-price method the available fundamentals allow and
// returns one appraisal per method that applies. The selic rate drives both
// the Graham adjustment and the Gordon required return.
func Appraise(p Profile, f Fundamentals, selic Percent) []Appraisal {
	price := p.Price
	appraise := func(method, basis string, fair Money, err error) (Appraisal, bool) {
		if err != nil {
			return Appraisal{}, false
		}
		margin := MarginOfSafety(fair, price)
		return Appraisal{
			Method:    method,
			FairPrice: fair,
			Price:     price,
			Margin:    margin,
			Verdict:   VerdictFor(margin),
			Basis:     basis,
		}, true
	}

	var out []Appraisal
	fair, err := GrahamPrice(f.EPS, f.BookValue)
	if a, ok := appraise("Graham", "√(22.5 × EPS × BVPS)", fair, err); ok {
		out = append(out, a)
	}
	fair, err = GrahamAdjustedPrice(f.EPS, f.BookValue, selic)
	if a, ok := appraise("Graham adjusted", fmt.Sprintf("rate-adjusted multiplier at SELIC %s", selic), fair, err); ok {
		out = append(out, a)
	}
	fair, err = BazinPrice(f.DividendShare, BazinMinYield)
	if a, ok := appraise("Bazin", fmt.Sprintf("DPS / %s minimum yield", BazinMinYield), fair, err); ok {
		out = append(out, a)
	}
	required := selic + GordonRiskPremium
	fair, err = GordonPrice(f.DividendShare, GordonDefaultGrowth, required)
	if a, ok := appraise("Gordon", fmt.Sprintf("DDM at g=%s, r=%s", GordonDefaultGrowth, required), fair, err); ok {
		out = append(out, a)
	}
	return out
}
