package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWeekday_FullNames(t *testing.T) {
	day, err := ParseWeekday("SUNDAY")
	require.NoError(t, err)
	assert.Equal(t, Sunday, day)

	day, err = ParseWeekday("wednesday")
	require.NoError(t, err)
	assert.Equal(t, Wednesday, day)
}

func TestParseWeekday_ShortNames(t *testing.T) {
	day, err := ParseWeekday("sat")
	require.NoError(t, err)
	assert.Equal(t, Saturday, day)

	day, err = ParseWeekday(" Mon ")
	require.NoError(t, err)
	assert.Equal(t, Monday, day)
}

func TestParseWeekday_UnknownToken(t *testing.T) {
	_, err := ParseWeekday("someday")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "someday")
}

func TestWeekday_PrevWrapsToSaturday(t *testing.T) {
	assert.Equal(t, Saturday, Sunday.Prev())
	assert.Equal(t, Tuesday, Wednesday.Prev())
}

func TestWeekday_NextWrapsToSunday(t *testing.T) {
	assert.Equal(t, Sunday, Saturday.Next())
	assert.Equal(t, Thursday, Wednesday.Next())
}

func TestWeekday_OffsetWrapsAroundWeek(t *testing.T) {
	assert.Equal(t, Tuesday, Sunday.Offset(2))
	assert.Equal(t, Monday, Friday.Offset(3))
	assert.Equal(t, Saturday, Saturday.Offset(7).Offset(7))
	assert.Equal(t, Friday, Saturday.Offset(13))
}

func TestAllDays_OrderedFromSunday(t *testing.T) {
	days := AllDays()
	require.Len(t, days, DaysPerWeek)
	assert.Equal(t, Sunday, days[0])
	assert.Equal(t, Saturday, days[6])
}
