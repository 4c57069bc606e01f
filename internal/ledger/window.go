package ledger

import "time"

// DateLayout is the ISO calendar date format used for tx_date.
const DateLayout = "2006-01-02"

// Day returns the ISO date of t in t's location.
func Day(t time.Time) string {
	return t.Format(DateLayout)
}

// MonthWindow returns the first and last ISO dates of the month containing t.
func MonthWindow(t time.Time) (from, to string) {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	last := first.AddDate(0, 1, -1)
	return first.Format(DateLayout), last.Format(DateLayout)
}

// ValidDate reports whether s is a real calendar date in YYYY-MM-DD form.
func ValidDate(s string) bool {
	if len(s) != len(DateLayout) {
		return false
	}
	_, err := time.Parse(DateLayout, s)
	return err == nil
}
