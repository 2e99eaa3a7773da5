// Package renderer turns analysis reports into markdown. The CLI pipes the
// markdown through a terminal renderer; the dashboard converts it to HTML.
package renderer

import (
	"fmt"

	"github.com/zocatelli/equity"
)

// notAvailable marks figures the provider did not supply.
const notAvailable = "N/A"

// money formats a monetary value, or N/A when missing.
func money(m equity.Money) string {
	if m.IsZero() {
		return notAvailable
	}
	return m.String()
}

// bigMoney formats large monetary amounts with a T/B/M suffix.
func bigMoney(m equity.Money) string {
	v := m.AsFloat()
	abs := v
	if abs < 0 {
		abs = -abs
	}
	switch {
	case abs == 0:
		return notAvailable
	case abs >= 1e12:
		return fmt.Sprintf("%.2fT", v/1e12)
	case abs >= 1e9:
		return fmt.Sprintf("%.2fB", v/1e9)
	case abs >= 1e6:
		return fmt.Sprintf("%.2fM", v/1e6)
	default:
		return m.String()
	}
}

// pct formats a percent, or N/A when zero.
func pct(p equity.Percent) string {
	if p.IsZero() {
		return notAvailable
	}
	return p.String()
}

// ratio formats a dimensionless multiple like P/E, or N/A when zero.
func ratio(f float64) string {
	if f == 0 {
		return notAvailable
	}
	return fmt.Sprintf("%.2f", f)
}

// volume formats a traded-volume figure with a B/M/K suffix.
func volume(v float64) string {
	switch {
	case v == 0:
		return notAvailable
	case v >= 1e9:
		return fmt.Sprintf("%.2fB", v/1e9)
	case v >= 1e6:
		return fmt.Sprintf("%.2fM", v/1e6)
	case v >= 1e3:
		return fmt.Sprintf("%.1fK", v/1e3)
	default:
		return fmt.Sprintf("%.0f", v)
	}
}

// toneMark is the bullet prefix for a note tone.
func toneMark(t equity.Tone) string {
	switch t {
	case equity.Good:
		return "🟢"
	case equity.Warn:
		return "🟠"
	default:
		return "🔵"
	}
}
