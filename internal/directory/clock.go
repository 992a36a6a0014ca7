package directory

import "time"

// MonthLayout is the format of Directory.CurrentMonth.
const MonthLayout = "2006-01"

// MonthKey returns the YYYY-MM marker for t.
func MonthKey(t time.Time) string {
	return t.Format(MonthLayout)
}

// Clock supplies the current time in the user's time zone.
type Clock func() time.Time

// SystemClock returns a Clock reading the wall clock in loc. A nil loc uses
// the local zone.
func SystemClock(loc *time.Location) Clock {
	if loc == nil {
		loc = time.Local
	}
	return func() time.Time { return time.Now().In(loc) }
}

// FixedClock always returns t.
func FixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}
