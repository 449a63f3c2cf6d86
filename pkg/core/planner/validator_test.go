package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/superplus-ops/forecourt-roster/pkg/core/roster"
)

func ruleNames(errs []ScheduleValidationError) []string {
	names := make([]string, len(errs))
	for i, err := range errs {
		names[i] = err.Rule
	}
	return names
}

func TestValidateSchedule_CleanSchedule(t *testing.T) {
	catalog := newTestCatalog(t)
	staff := []roster.StaffMember{{Name: "Dave", Male: true}}
	sched := NewSchedule(staff)
	sched.setCell("Dave", roster.Monday, Cell{ShiftName: "morning", Start: 6, End: 14, Hours: 8})
	sched.setCell("Dave", roster.Wednesday, Cell{ShiftName: "overnight", Start: 20, End: 6, Hours: 10})

	errs := ValidateSchedule(sched, staff, catalog, DefaultPolicy(), nil)
	assert.Empty(t, errs)
}

func TestValidateSchedule_FixedDayOffViolation(t *testing.T) {
	catalog := newTestCatalog(t)
	staff := []roster.StaffMember{{Name: "Dave", FixedDaysOff: []roster.Weekday{roster.Wednesday}}}
	sched := NewSchedule(staff)
	sched.setCell("Dave", roster.Wednesday, Cell{ShiftName: "morning", Start: 6, End: 14, Hours: 8})

	errs := ValidateSchedule(sched, staff, catalog, DefaultPolicy(), nil)
	require.Len(t, errs, 1)
	assert.Equal(t, "fixed_day_off", errs[0].Rule)
	assert.Equal(t, "Dave", errs[0].Staff)
	assert.Equal(t, roster.Wednesday, errs[0].Day)
}

func TestValidateSchedule_MustWorkViolation(t *testing.T) {
	catalog := newTestCatalog(t)
	staff := []roster.StaffMember{{Name: "Dave", MustWorkDays: []roster.Weekday{roster.Saturday}}}
	sched := NewSchedule(staff)

	errs := ValidateSchedule(sched, staff, catalog, DefaultPolicy(), nil)
	require.Len(t, errs, 1)
	assert.Equal(t, "must_work", errs[0].Rule)
}

func TestValidateSchedule_AnchorRotationViolation(t *testing.T) {
	catalog := newTestCatalog(t)
	staff := []roster.StaffMember{{Name: "Dave"}}
	sched := NewSchedule(staff)
	sched.setCell("Dave", roster.Sunday, Cell{ShiftName: "full_day", Start: 6, End: 21, Hours: 15})

	errs := ValidateSchedule(sched, staff, catalog, DefaultPolicy(), map[string]bool{"Dave": true})
	require.Len(t, errs, 1)
	assert.Equal(t, "anchor_rotation", errs[0].Rule)
}

func TestValidateSchedule_OvernightEligibilityViolation(t *testing.T) {
	catalog := newTestCatalog(t)
	staff := []roster.StaffMember{{Name: "Dana"}}
	sched := NewSchedule(staff)
	sched.setCell("Dana", roster.Tuesday, Cell{ShiftName: "overnight", Start: 20, End: 6, Hours: 10})

	errs := ValidateSchedule(sched, staff, catalog, DefaultPolicy(), nil)
	require.Len(t, errs, 1)
	assert.Equal(t, "overnight_eligibility", errs[0].Rule)
}

func TestValidateSchedule_RestAfterCloseViolation(t *testing.T) {
	catalog := newTestCatalog(t)
	staff := []roster.StaffMember{{Name: "Dave"}}
	sched := NewSchedule(staff)
	sched.setCell("Dave", roster.Monday, Cell{ShiftName: "afternoon", Start: 14, End: 21, Hours: 7})
	sched.setCell("Dave", roster.Tuesday, Cell{ShiftName: "morning", Start: 6, End: 14, Hours: 8})

	errs := ValidateSchedule(sched, staff, catalog, DefaultPolicy(), nil)
	require.Len(t, errs, 1)
	assert.Equal(t, "rest_after_close", errs[0].Rule)
	assert.Equal(t, roster.Tuesday, errs[0].Day)
}

func TestValidateSchedule_RestAfterCloseWrapsWeek(t *testing.T) {
	catalog := newTestCatalog(t)
	staff := []roster.StaffMember{{Name: "Dave"}}
	sched := NewSchedule(staff)
	sched.setCell("Dave", roster.Saturday, Cell{ShiftName: "afternoon", Start: 14, End: 21, Hours: 7})
	sched.setCell("Dave", roster.Sunday, Cell{ShiftName: "morning", Start: 6, End: 14, Hours: 8})

	errs := ValidateSchedule(sched, staff, catalog, DefaultPolicy(), nil)
	require.Len(t, errs, 1)
	assert.Equal(t, "rest_after_close", errs[0].Rule)
	assert.Equal(t, roster.Sunday, errs[0].Day)
}

func TestValidateSchedule_HourCapViolation(t *testing.T) {
	catalog := newTestCatalog(t)
	staff := []roster.StaffMember{{Name: "Dave"}}
	sched := NewSchedule(staff)
	for _, day := range []roster.Weekday{roster.Sunday, roster.Tuesday, roster.Thursday} {
		sched.setCell("Dave", day, Cell{ShiftName: "full_day", Start: 6, End: 21, Hours: 15})
	}
	sched.setCell("Dave", roster.Friday, Cell{ShiftName: "midday", Start: 10, End: 18, Hours: 8})

	errs := ValidateSchedule(sched, staff, catalog, DefaultPolicy(), nil)
	require.Len(t, errs, 1)
	assert.Equal(t, "hour_cap", errs[0].Rule)
}

func TestValidateSchedule_ReportsEveryViolation(t *testing.T) {
	catalog := newTestCatalog(t)
	staff := []roster.StaffMember{
		{Name: "Dave", FixedDaysOff: []roster.Weekday{roster.Monday}},
		{Name: "Dana", MustWorkDays: []roster.Weekday{roster.Friday}},
	}
	sched := NewSchedule(staff)
	sched.setCell("Dave", roster.Monday, Cell{ShiftName: "morning", Start: 6, End: 14, Hours: 8})

	errs := ValidateSchedule(sched, staff, catalog, DefaultPolicy(), nil)
	assert.ElementsMatch(t, []string{"fixed_day_off", "must_work"}, ruleNames(errs))
}
