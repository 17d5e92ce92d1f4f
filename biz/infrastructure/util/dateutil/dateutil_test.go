package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2024-05-01")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), got.UTC())

	got, err = ParseDate("2024-05-01T15:30:00+08:00")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2024, 5, 1, 7, 30, 0, 0, time.UTC), got.UTC())

	_, err = ParseDate("05/01/2024")
	assert.Error(t, err)

	_, err = ParseDate("")
	assert.Error(t, err)
}

func TestNormalizeToMidnightUTC(t *testing.T) {
	want := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	cases := []time.Time{
		time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 5, 1, 23, 59, 59, 0, time.UTC),
		time.Date(2024, 5, 1, 15, 30, 0, 0, time.FixedZone("CST", 8*3600)),
	}
	for _, c := range cases {
		assert.Equal(t, want, NormalizeToMidnightUTC(c))
	}

	// 幂等
	n := NormalizeToMidnightUTC(cases[1])
	assert.Equal(t, n, NormalizeToMidnightUTC(n))
}

func TestWindowCurrentWeek(t *testing.T) {
	// 2024-05-15 是周三
	now := time.Date(2024, 5, 15, 10, 0, 0, 0, time.UTC)
	start, end := Window(PeriodCurrentWeek, now)
	assert.Equal(t, time.Date(2024, 5, 13, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC), end)

	// 周日属于本周而非下周
	sunday := time.Date(2024, 5, 19, 8, 0, 0, 0, time.UTC)
	start, end = Window(PeriodCurrentWeek, sunday)
	assert.Equal(t, time.Date(2024, 5, 13, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 5, 19, 0, 0, 0, 0, time.UTC), end)
}

func TestWindowLastWeek(t *testing.T) {
	now := time.Date(2024, 5, 15, 10, 0, 0, 0, time.UTC)
	start, end := Window(PeriodLastWeek, now)
	assert.Equal(t, time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 5, 12, 0, 0, 0, 0, time.UTC), end)
}

func TestWindowLastMonth(t *testing.T) {
	now := time.Date(2024, 5, 15, 10, 0, 0, 0, time.UTC)
	start, end := Window(PeriodLastMonth, now)
	assert.Equal(t, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 4, 30, 0, 0, 0, 0, time.UTC), end)

	// 跨年
	jan := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	start, end = Window(PeriodLastMonth, jan)
	assert.Equal(t, time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC), end)
}

func TestWindowDefault(t *testing.T) {
	now := time.Date(2024, 5, 15, 10, 0, 0, 0, time.UTC)
	for _, period := range []string{"", "unknown"} {
		start, end := Window(period, now)
		assert.Equal(t, time.Unix(0, 0).UTC(), start)
		assert.Equal(t, time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC), end)
	}
}
