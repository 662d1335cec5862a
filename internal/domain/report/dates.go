package report

import "time"

// DayKey formats a timestamp as its calendar day, the granularity every
// report aggregates at. Movements recorded at any time of day collapse
// onto the same key.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// DayStart truncates a timestamp to midnight of its calendar day.
func DayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DayEnd returns the last representable instant of the timestamp's
// calendar day. Range filters treat both boundaries as inclusive, so a
// filter with from == to covers exactly that one day.
func DayEnd(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// InRange reports whether a timestamp falls inside the inclusive
// day-granular window. A nil boundary leaves that side open.
func InRange(t time.Time, from, to *time.Time) bool {
	if from != nil && t.Before(DayStart(*from)) {
		return false
	}
	if to != nil && t.After(DayEnd(*to)) {
		return false
	}
	return true
}

// AddDays shifts a timestamp by whole calendar days keeping its location.
func AddDays(t time.Time, days int) time.Time {
	return t.AddDate(0, 0, days)
}
