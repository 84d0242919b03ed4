package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate_RoundTrip(t *testing.T) {
	d, err := ParseDate("2024-06-10")
	require.NoError(t, err)
	assert.Equal(t, "2024-06-10", d.String())

	_, err = ParseDate("10/06/2024")
	assert.Error(t, err)
}

func TestDaysBetween(t *testing.T) {
	a := NewDate(2024, time.June, 3)

	assert.Equal(t, 0, DaysBetween(a, a))
	assert.Equal(t, 1, DaysBetween(a, a.AddDays(1)))
	assert.Equal(t, 7, DaysBetween(a, a.AddDays(7)))
	assert.Equal(t, -1, DaysBetween(a.AddDays(1), a))
}

func TestAddDays_CrossesMonthBoundary(t *testing.T) {
	d := NewDate(2024, time.June, 30)
	assert.Equal(t, "2024-07-01", d.AddDays(1).String())
	assert.Equal(t, "2024-06-29", d.AddDays(-1).String())
}

func TestDate_JSON(t *testing.T) {
	d := NewDate(2024, time.June, 10)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-06-10"`, string(data))

	var parsed Date
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.True(t, parsed.Equal(d))

	assert.Error(t, json.Unmarshal([]byte(`"não é uma data"`), &parsed))
}

func TestDate_IsWeekend(t *testing.T) {
	assert.False(t, NewDate(2024, time.June, 7).IsWeekend()) // sexta
	assert.True(t, NewDate(2024, time.June, 8).IsWeekend())  // sábado
	assert.True(t, NewDate(2024, time.June, 9).IsWeekend())  // domingo
	assert.False(t, NewDate(2024, time.June, 10).IsWeekend())
}

func TestDate_Scan(t *testing.T) {
	var d Date

	require.NoError(t, d.Scan(time.Date(2024, time.June, 10, 15, 30, 0, 0, time.Local)))
	assert.Equal(t, "2024-06-10", d.String())

	require.NoError(t, d.Scan("2024-06-11"))
	assert.Equal(t, "2024-06-11", d.String())

	assert.Error(t, d.Scan(42))
}
