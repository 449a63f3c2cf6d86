package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// referenceShifts builds the standard seven-shape catalog used across tests
func referenceShifts() []ShiftDefinition {
	return []ShiftDefinition{
		{Name: "morning", Start: 6, End: 14},
		{Name: "midday", Start: 10, End: 18},
		{Name: "afternoon", Start: 14, End: 21},
		{Name: "extended_am", Start: 6, End: 16},
		{Name: "extended_pm", Start: 12, End: 21},
		{Name: "full_day", Start: 6, End: 21},
		{Name: "overnight", Start: 20, End: 6},
	}
}

func TestParseClock_MorningAndAfternoon(t *testing.T) {
	c, err := ParseClock("6:00 AM")
	require.NoError(t, err)
	assert.Equal(t, Clock(6), c)

	c, err = ParseClock("2:00 PM")
	require.NoError(t, err)
	assert.Equal(t, Clock(14), c)
}

func TestParseClock_NoonAndMidnight(t *testing.T) {
	c, err := ParseClock("12:00 PM")
	require.NoError(t, err)
	assert.Equal(t, Clock(12), c)

	c, err = ParseClock("12:00 AM")
	require.NoError(t, err)
	assert.Equal(t, Clock(0), c)
}

func TestParseClock_Invalid(t *testing.T) {
	_, err := ParseClock("6:00")
	assert.Error(t, err, "missing AM/PM suffix should fail")

	_, err = ParseClock("6:30 AM")
	assert.Error(t, err, "off-the-hour times should fail")

	_, err = ParseClock("13:00 PM")
	assert.Error(t, err)
}

func TestClock_StringRoundTrip(t *testing.T) {
	for _, raw := range []string{"6:00 AM", "12:00 PM", "9:00 PM", "12:00 AM"} {
		c, err := ParseClock(raw)
		require.NoError(t, err)
		assert.Equal(t, raw, c.String())
	}
}

func TestHoursBetween_SameDay(t *testing.T) {
	assert.Equal(t, 8, HoursBetween(6, 14))
	assert.Equal(t, 15, HoursBetween(6, 21))
	assert.Equal(t, 0, HoursBetween(10, 10))
}

func TestHoursBetween_WrapsPastMidnight(t *testing.T) {
	// 8 PM to 6 AM
	assert.Equal(t, 10, HoursBetween(20, 6))
	// 11 PM to 1 AM
	assert.Equal(t, 2, HoursBetween(23, 1))
}

func TestNewCatalog_ComputesDurations(t *testing.T) {
	catalog, err := NewCatalog(referenceShifts())
	require.NoError(t, err)

	morning := catalog.MustGet("morning")
	assert.Equal(t, 8, morning.Hours)

	afternoon := catalog.MustGet("afternoon")
	assert.Equal(t, 7, afternoon.Hours)

	fullDay := catalog.MustGet("full_day")
	assert.Equal(t, 15, fullDay.Hours)

	overnight := catalog.MustGet("overnight")
	assert.Equal(t, 10, overnight.Hours)
	assert.True(t, overnight.Overnight())
}

func TestNewCatalog_DuplicateName(t *testing.T) {
	_, err := NewCatalog([]ShiftDefinition{
		{Name: "morning", Start: 6, End: 14},
		{Name: "morning", Start: 10, End: 18},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "morning")
}

func TestCatalog_Get(t *testing.T) {
	catalog, err := NewCatalog(referenceShifts())
	require.NoError(t, err)

	_, ok := catalog.Get("midday")
	assert.True(t, ok)

	_, ok = catalog.Get("graveyard")
	assert.False(t, ok)
	assert.False(t, catalog.Contains("graveyard"))
}

func TestCatalog_OperatingBoundaries(t *testing.T) {
	catalog, err := NewCatalog(referenceShifts())
	require.NoError(t, err)

	// Overnight shapes do not define the operating-day boundaries
	assert.Equal(t, Clock(6), catalog.EarlyOpen())
	assert.Equal(t, Clock(21), catalog.LateClose())
}

func TestCatalog_OvernightShift(t *testing.T) {
	catalog, err := NewCatalog(referenceShifts())
	require.NoError(t, err)

	shift, ok := catalog.OvernightShift()
	require.True(t, ok)
	assert.Equal(t, "overnight", shift.Name)

	dayOnly, err := NewCatalog(referenceShifts()[:6])
	require.NoError(t, err)
	_, ok = dayOnly.OvernightShift()
	assert.False(t, ok)
}

func TestCatalog_ShiftsPreservesOrder(t *testing.T) {
	catalog, err := NewCatalog(referenceShifts())
	require.NoError(t, err)

	shifts := catalog.Shifts()
	require.Len(t, shifts, 7)
	assert.Equal(t, "morning", shifts[0].Name)
	assert.Equal(t, "overnight", shifts[6].Name)
}
