package date

import "fmt"

// Period is a named calendar granularity, used to key time-bound artifacts
// such as cached HTTP responses.
type Period string

const (
	Daily   Period = "daily"
	Monthly Period = "monthly"
)

// Key returns an identifier that is stable within one period containing the
// given date, and changes when the period rolls over.
func (p Period) Key(on Date) string {
	switch p {
	case Monthly:
		return fmt.Sprintf("%04d-%02d", on.Year(), on.Month())
	default:
		return on.String()
	}
}
