package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateFormats(t *testing.T) {
	d := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "2024-03-05", ISODate(d))
	assert.Equal(t, "3/5/2024", USDate(d))
	assert.Equal(t, "5/3/2024", IndonesianDate(d))
	assert.Equal(t, "15/2/2024", FormatISOAs("2024-02-15", IndonesianDate))
	assert.Equal(t, "not-a-date", FormatISOAs("not-a-date", USDate))
}

func TestDaysUntil_RoundsUp(t *testing.T) {
	now := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

	days, err := DaysUntil("2024-03-20", now)
	require.NoError(t, err)
	assert.Equal(t, 19, days) // 18.5 days rounds up

	days, err = DaysUntil("2024-01-01", now)
	require.NoError(t, err)
	assert.Equal(t, -60, days)

	_, err = DaysUntil("", now)
	assert.Error(t, err)
}

func TestNextTimestampID_SkipsTakenIDs(t *testing.T) {
	now := time.UnixMilli(1700000000000)
	taken := IDSet([]string{"1700000000000", "1700000000001"}, func(s string) string { return s })

	assert.Equal(t, "1700000000002", NextTimestampID(now, taken))
	assert.Equal(t, "1700000000000", NextTimestampID(now, nil))
}

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 2*time.Second, ParseDuration("2s", time.Minute))
	assert.Equal(t, time.Minute, ParseDuration("later", time.Minute))
}

func TestFormatIDR(t *testing.T) {
	assert.Equal(t, "Rp 4.500.000,00", FormatIDR(4500000))
	assert.Equal(t, "Rp 750.000,00", FormatIDR(750000))
}
