package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestSeasonOf(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want Season
	}{
		{name: "mid january", date: date(2027, time.January, 10), want: SeasonLow},
		{name: "april 26 last low day", date: date(2027, time.April, 26), want: SeasonLow},
		{name: "april 27", date: date(2027, time.April, 27), want: SeasonMid},
		{name: "may", date: date(2027, time.May, 15), want: SeasonMid},
		{name: "july 4", date: date(2027, time.July, 4), want: SeasonMid},
		{name: "july 5 first high day", date: date(2027, time.July, 5), want: SeasonHigh},
		{name: "august 10", date: date(2027, time.August, 10), want: SeasonHigh},
		{name: "august 30", date: date(2027, time.August, 30), want: SeasonHigh},
		{name: "august 31", date: date(2027, time.August, 31), want: SeasonMid},
		{name: "september 26", date: date(2027, time.September, 26), want: SeasonMid},
		{name: "september 27", date: date(2027, time.September, 27), want: SeasonLow},
		{name: "december 31", date: date(2027, time.December, 31), want: SeasonLow},

		// Граница сравнивает день месяца отдельно от месяца
		{name: "october 15 stays mid", date: date(2026, time.October, 15), want: SeasonMid},
		{name: "october 27 is low", date: date(2026, time.October, 27), want: SeasonLow},
		{name: "december 1 stays mid", date: date(2026, time.December, 1), want: SeasonMid},
		{name: "march 28 stays mid", date: date(2027, time.March, 28), want: SeasonMid},
		{name: "august 1 stays mid", date: date(2027, time.August, 1), want: SeasonMid},
		{name: "july 31 stays mid", date: date(2027, time.July, 31), want: SeasonMid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SeasonOf(tt.date))
		})
	}
}

func TestSeasonOf_EveryDayHasExactlyOneSeason(t *testing.T) {
	counts := map[Season]int{}

	// 2028 - високосный год, покрываем 29 февраля
	for d := date(2028, time.January, 1); d.Year() == 2028; d = d.AddDate(0, 0, 1) {
		s := SeasonOf(d)
		assert.True(t, s.IsValid(), "date %s", d.Format(DateFormat))
		counts[s]++
	}

	assert.Equal(t, 366, counts[SeasonLow]+counts[SeasonMid]+counts[SeasonHigh])
	for _, s := range Seasons {
		assert.Positive(t, counts[s], "season %s never resolved", s)
	}
}

func TestSeasonOf_IgnoresTimeOfDay(t *testing.T) {
	morning := time.Date(2027, time.July, 5, 0, 0, 1, 0, time.UTC)
	evening := time.Date(2027, time.July, 5, 23, 59, 0, 0, time.UTC)

	assert.Equal(t, SeasonOf(morning), SeasonOf(evening))
}
