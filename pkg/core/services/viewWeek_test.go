package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/superplus-ops/forecourt-roster/pkg/db"
)

func storedWeekFixture() *mockDB {
	return &mockDB{
		weeks: []db.ScheduleWeek{
			{ID: "week-old", WeekStart: "2025-08-24", Success: true},
			{ID: "week-new", WeekStart: "2025-08-31", Success: true},
		},
		assignmentsByWeek: map[string][]db.Assignment{
			"week-new": {
				{ID: "a1", WeekID: "week-new", Day: "SUNDAY", Date: "2025-08-31", StaffName: "Sam",
					ShiftName: "full_day", ShiftStart: "6:00 AM", ShiftEnd: "9:00 PM", Hours: 15, Role: db.RoleSupervisor},
				{ID: "a2", WeekID: "week-new", Day: "MONDAY", Date: "2025-09-01", StaffName: "Sam",
					ShiftName: "extended_am", ShiftStart: "6:00 AM", ShiftEnd: "4:00 PM", Hours: 10, Role: db.RoleSupervisor},
				{ID: "a3", WeekID: "week-new", Day: "SUNDAY", Date: "2025-08-31", StaffName: "Nick",
					ShiftName: "overnight", ShiftStart: "8:00 PM", ShiftEnd: "6:00 AM", Hours: 10, Overnight: true, Role: db.RoleOvernight},
				{ID: "a4", WeekID: "week-new", Day: "TUESDAY", Date: "2025-09-02", StaffName: "Alex",
					ShiftName: "morning", ShiftStart: "6:00 AM", ShiftEnd: "2:00 PM", Hours: 8, Role: db.RoleAuxiliary},
			},
		},
	}
}

func TestViewWeek_DefaultsToLatestWeek(t *testing.T) {
	mock := storedWeekFixture()
	logger := zap.NewNop()
	ctx := context.Background()

	result, err := ViewWeek(ctx, mock, logger, "")
	require.NoError(t, err)

	assert.Equal(t, "week-new", result.Week.ID)
	assert.Equal(t, "2025-08-31", result.Dates[0])
	assert.Equal(t, "2025-09-06", result.Dates[6])
	assert.Equal(t, "SUN", result.Days[0])
	assert.Equal(t, "SAT", result.Days[6])
}

func TestViewWeek_BuildsStaffGrid(t *testing.T) {
	mock := storedWeekFixture()
	logger := zap.NewNop()
	ctx := context.Background()

	result, err := ViewWeek(ctx, mock, logger, "")
	require.NoError(t, err)

	// rows sorted by staff name
	require.Len(t, result.Rows, 3)
	assert.Equal(t, "Alex", result.Rows[0].StaffName)
	assert.Equal(t, "Nick", result.Rows[1].StaffName)
	assert.Equal(t, "Sam", result.Rows[2].StaffName)

	sam := result.Rows[2]
	assert.Equal(t, db.RoleSupervisor, sam.Role)
	assert.Equal(t, 25, sam.Hours)
	require.NotNil(t, sam.Cells[0])
	assert.Equal(t, "full_day", sam.Cells[0].ShiftName)
	require.NotNil(t, sam.Cells[1])
	assert.Equal(t, "extended_am", sam.Cells[1].ShiftName)
	assert.Nil(t, sam.Cells[2])

	// overnight rows count separately from day staff
	assert.Equal(t, 1, result.DayCounts[0], "Sunday has one day worker")
	assert.Equal(t, 1, result.NightCounts[0], "Sunday has one overnight worker")
	assert.Equal(t, 1, result.DayCounts[2])
	assert.Equal(t, 0, result.NightCounts[2])
}

func TestViewWeek_SpecificWeek(t *testing.T) {
	mock := storedWeekFixture()
	logger := zap.NewNop()
	ctx := context.Background()

	result, err := ViewWeek(ctx, mock, logger, "2025-08-24")
	require.NoError(t, err)
	assert.Equal(t, "week-old", result.Week.ID)
	assert.Empty(t, result.Rows, "the older week has no stored assignments in this fixture")
}

func TestViewWeek_UnknownWeek(t *testing.T) {
	mock := storedWeekFixture()
	logger := zap.NewNop()
	ctx := context.Background()

	_, err := ViewWeek(ctx, mock, logger, "2024-01-01")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no schedule week found")
}

func TestViewWeek_NoStoredWeeks(t *testing.T) {
	mock := &mockDB{}
	logger := zap.NewNop()
	ctx := context.Background()

	_, err := ViewWeek(ctx, mock, logger, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no schedule weeks found")
}

func TestViewWeek_FetchError(t *testing.T) {
	mock := &mockDB{getWeeksErr: errors.New("connection refused")}
	logger := zap.NewNop()
	ctx := context.Background()

	_, err := ViewWeek(ctx, mock, logger, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to fetch schedule weeks")
}

func TestFindLatestWeek(t *testing.T) {
	weeks := []db.ScheduleWeek{
		{ID: "w1", WeekStart: "2025-08-10"},
		{ID: "w3", WeekStart: "2025-08-31"},
		{ID: "w2", WeekStart: "2025-08-17"},
	}
	latest := findLatestWeek(weeks)
	require.NotNil(t, latest)
	assert.Equal(t, "w3", latest.ID)

	assert.Nil(t, findLatestWeek(nil))
}
