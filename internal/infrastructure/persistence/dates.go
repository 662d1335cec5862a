package persistence

import "time"

// Ledger dates are written midnight-normalized by the interface layer,
// but filters may carry a time of day (the stock report cuts off "as of
// now"). Queries therefore compare against the full calendar-day window
// so both bounds stay inclusive at day granularity on every driver.

// dayStart truncates a timestamp to midnight of its calendar day.
func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// dayEnd returns the last instant of the timestamp's calendar day.
func dayEnd(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
