package util

import "time"

const (
	DateFormat = "2006-01-02"

	// CompactDateTimeFormat is used in identifiers such as analysis ids.
	CompactDateTimeFormat = "20060102_150405"
)

// DateToStr formats dt as YYYY-MM-DD.
func DateToStr(dt time.Time) string {
	return dt.Format(DateFormat)
}

// StartOfDay truncates t to midnight UTC.
func StartOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Today returns the start of the current UTC day.
func Today() time.Time {
	return StartOfDay(time.Now())
}

