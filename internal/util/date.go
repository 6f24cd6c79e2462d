package util

import "time"

// DayString formats t as a calendar day in loc.
func DayString(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format(DateFormat)
}

// DaysBetween counts whole calendar days from a to b (both YYYY-MM-DD).
func DaysBetween(a, b string) (int, error) {
	from, err := time.Parse(DateFormat, a)
	if err != nil {
		return 0, err
	}
	to, err := time.Parse(DateFormat, b)
	if err != nil {
		return 0, err
	}
	return int(to.Sub(from).Hours() / 24), nil
}

// ShiftDay moves a YYYY-MM-DD day by n days.
func ShiftDay(day string, n int) (string, error) {
	d, err := time.Parse(DateFormat, day)
	if err != nil {
		return "", err
	}
	return d.AddDate(0, 0, n).Format(DateFormat), nil
}
