package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWeekStart(t *testing.T) {
	// 2025-03-09 is a Sunday.
	sunday := date(2025, time.March, 9)

	for offset := 0; offset < 7; offset++ {
		day := sunday.AddDate(0, 0, offset)
		assert.Equal(t, sunday, WeekStart(day), "day %s should map to week of %s", day, sunday)
	}

	// The Saturday before belongs to the previous week.
	assert.Equal(t, date(2025, time.March, 2), WeekStart(sunday.AddDate(0, 0, -1)))
}

func TestWeekStart_StripsTimeOfDay(t *testing.T) {
	lateWednesday := time.Date(2025, time.March, 12, 23, 45, 12, 0, time.UTC)
	assert.Equal(t, date(2025, time.March, 9), WeekStart(lateWednesday))
}

func TestDateOnly_KeepsWallClockDate(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Riyadh")
	require.NoError(t, err)

	// 1am local on the 12th is still the 11th in UTC; the local calendar
	// date is the one that counts.
	local := time.Date(2025, time.March, 12, 1, 0, 0, 0, loc)
	assert.Equal(t, date(2025, time.March, 12), DateOnly(local))
}

func TestTrailingDates(t *testing.T) {
	ref := date(2025, time.March, 12)
	dates := TrailingDates(ref, 7)

	require.Len(t, dates, 7)
	assert.Equal(t, ref, dates[0])
	assert.Equal(t, date(2025, time.March, 6), dates[6])
	for i := 1; i < len(dates); i++ {
		assert.Equal(t, dates[i-1].AddDate(0, 0, -1), dates[i], "dates must descend one day at a time")
	}
}

func TestDayName(t *testing.T) {
	// 2025-03-09 is a Sunday.
	assert.Equal(t, "الأحد", DayName(date(2025, time.March, 9)))
	assert.Equal(t, "الإثنين", DayName(date(2025, time.March, 10)))
	assert.Equal(t, "السبت", DayName(date(2025, time.March, 15)))
}
