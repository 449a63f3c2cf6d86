package planner

import (
	"fmt"

	"github.com/superplus-ops/forecourt-roster/pkg/core/roster"
)

// ScheduleValidationError describes a hard-rule violation found in a final
// schedule
type ScheduleValidationError struct {
	Staff       string
	Day         roster.Weekday
	Rule        string
	Description string
}

// ValidateSchedule checks a finished schedule against every hard rule:
// fixed days off, must-work days, anchor rotation, rest-after-close,
// overnight eligibility and the weekly hour ceiling. A legal schedule
// returns an empty slice.
func ValidateSchedule(
	sched *Schedule,
	staff []roster.StaffMember,
	catalog roster.Catalog,
	policy Policy,
	previousAnchorWorkers map[string]bool,
) []ScheduleValidationError {
	var errors []ScheduleValidationError
	earlyOpen := catalog.EarlyOpen()
	lateClose := catalog.LateClose()

	for _, member := range staff {
		for _, day := range roster.AllDays() {
			cell := sched.Cell(member.Name, day)

			if member.HasFixedDayOff(day) && !cell.Off() {
				errors = append(errors, ScheduleValidationError{
					Staff:       member.Name,
					Day:         day,
					Rule:        "fixed_day_off",
					Description: fmt.Sprintf("%s is assigned on fixed day off %s", member.Name, day),
				})
			}

			if member.MustWorkOn(day) && cell.Off() {
				errors = append(errors, ScheduleValidationError{
					Staff:       member.Name,
					Day:         day,
					Rule:        "must_work",
					Description: fmt.Sprintf("%s has no shift on must-work day %s", member.Name, day),
				})
			}

			if day == policy.AnchorDay && previousAnchorWorkers[member.Name] && !cell.Off() {
				errors = append(errors, ScheduleValidationError{
					Staff:       member.Name,
					Day:         day,
					Rule:        "anchor_rotation",
					Description: fmt.Sprintf("%s worked the previous anchor day and is assigned again", member.Name),
				})
			}

			if cell.Overnight() && (!member.Male || member.Supervisor) {
				errors = append(errors, ScheduleValidationError{
					Staff:       member.Name,
					Day:         day,
					Rule:        "overnight_eligibility",
					Description: fmt.Sprintf("%s is not eligible for the overnight shift", member.Name),
				})
			}

			prevCell := sched.Cell(member.Name, day.Prev())
			if !cell.Off() && !prevCell.Off() && !prevCell.Overnight() &&
				prevCell.End == lateClose && cell.Start == earlyOpen {
				errors = append(errors, ScheduleValidationError{
					Staff:       member.Name,
					Day:         day,
					Rule:        "rest_after_close",
					Description: fmt.Sprintf("%s closes %s and opens %s", member.Name, day.Prev(), day),
				})
			}
		}

		if total := sched.Hours(member.Name); total > policy.HourCap {
			errors = append(errors, ScheduleValidationError{
				Staff:       member.Name,
				Rule:        "hour_cap",
				Description: fmt.Sprintf("%s has %dh, above the %dh ceiling", member.Name, total, policy.HourCap),
			})
		}
	}

	return errors
}
