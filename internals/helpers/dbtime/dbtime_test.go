package dbtime

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateJSONAndScan(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2026-02-28"`), &d))
	assert.Equal(t, NewDate(2026, time.February, 28), d)

	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2026-02-28"`, string(out))

	require.NoError(t, d.Scan(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2026-03-01", d.String())

	require.NoError(t, d.Scan([]byte("2026-03-02T00:00:00Z")))
	assert.Equal(t, "2026-03-02", d.String())

	v, err := d.Value()
	require.NoError(t, err)
	assert.Equal(t, "2026-03-02", v)

	assert.Error(t, d.Scan(42))
	_, err = ParseDate("03/02/2026")
	assert.Error(t, err)
}

func TestDateInKeepsCalendarDay(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)
	d := NewDate(2026, time.October, 5)
	got := d.In(loc)
	assert.Equal(t, 5, got.Day())
	assert.Equal(t, 0, got.Hour())
	assert.Equal(t, loc, got.Location())
}

func TestDaysIn(t *testing.T) {
	assert.Equal(t, 29, DaysIn(2028, time.February))
	assert.Equal(t, 28, DaysIn(2026, time.February))
	assert.Equal(t, 31, DaysIn(2026, time.December))
	assert.Equal(t, 30, DaysIn(2026, time.April))
}
