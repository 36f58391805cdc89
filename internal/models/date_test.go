package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddMonths(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		n    int
		want time.Time
	}{
		{"same day of month", date(2026, 10, 19), 3, date(2027, 1, 19)},
		{"clamps to end of february", date(2026, 11, 30), 3, date(2027, 2, 28)},
		{"clamps to leap day", date(2027, 11, 30), 3, date(2028, 2, 29)},
		{"clamps 31 to 30", date(2026, 1, 31), 3, date(2026, 4, 30)},
		{"crosses year", date(2026, 12, 15), 1, date(2027, 1, 15)},
		{"zero months", date(2026, 5, 31), 0, date(2026, 5, 31)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AddMonths(tt.in, tt.n))
		})
	}
}

func TestDateOf(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	in := time.Date(2026, 10, 19, 23, 30, 0, 0, loc)

	assert.Equal(t, date(2026, 10, 19), DateOf(in))
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2026-11-05")
	require.NoError(t, err)
	assert.Equal(t, date(2026, 11, 5), got)

	_, err = ParseDate("05/11/2026")
	assert.Error(t, err)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
