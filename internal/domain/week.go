package domain

import "time"

// dayNames holds the localized weekday names shown next to series entries.
// Indexed by time.Weekday, i.e. Sunday first.
var dayNames = [7]string{
	"الأحد",
	"الإثنين",
	"الثلاثاء",
	"الأربعاء",
	"الخميس",
	"الجمعة",
	"السبت",
}

// DayName returns the localized weekday name for the given date.
func DayName(t time.Time) string {
	return dayNames[int(t.Weekday())]
}

// DateOnly strips the time-of-day from t, keeping its wall-clock calendar
// date, normalized to UTC. All date-keyed records use this form.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// WeekStart returns the Sunday of the calendar week containing t, with the
// time of day stripped. This is the canonical key used everywhere a "week"
// is referenced.
func WeekStart(t time.Time) time.Time {
	d := DateOnly(t)
	return d.AddDate(0, 0, -int(d.Weekday()))
}

// TrailingDates returns n calendar dates counting back from ref inclusive,
// most recent first.
func TrailingDates(ref time.Time, n int) []time.Time {
	dates := make([]time.Time, n)
	day := DateOnly(ref)
	for i := 0; i < n; i++ {
		dates[i] = day.AddDate(0, 0, -i)
	}
	return dates
}
