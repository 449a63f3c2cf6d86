package planner

import (
	"github.com/superplus-ops/forecourt-roster/pkg/core/roster"
)

// Reason is the diagnostic code explaining why an assignment was refused
type Reason string

const (
	ReasonOK                  Reason = "ok"
	ReasonAlreadyAssigned     Reason = "already_assigned"
	ReasonFixedDayOff         Reason = "fixed_day_off"
	ReasonAnchorRotation      Reason = "anchor_rotation"
	ReasonRestAfterClose      Reason = "rest_after_close"
	ReasonOvernightIneligible Reason = "overnight_ineligible"
	ReasonHourCap             Reason = "hour_cap"
)

// evaluator answers "can staff X take shift Y on day D given the schedule
// built so far". It is pure: every call re-reads the schedule, and it carries
// no memory of its own.
type evaluator struct {
	policy          Policy
	earlyOpen       roster.Clock
	lateClose       roster.Clock
	previousWorkers map[string]bool
}

func newEvaluator(policy Policy, catalog roster.Catalog, previousAnchorWorkers []string) *evaluator {
	previous := make(map[string]bool, len(previousAnchorWorkers))
	for _, name := range previousAnchorWorkers {
		previous[name] = true
	}
	return &evaluator{
		policy:          policy,
		earlyOpen:       catalog.EarlyOpen(),
		lateClose:       catalog.LateClose(),
		previousWorkers: previous,
	}
}

// CanAssign evaluates the assignment rules in order, short-circuiting on the
// first failure.
func (e *evaluator) CanAssign(sched *Schedule, staff roster.StaffMember, day roster.Weekday, shift roster.ShiftDefinition) (bool, Reason) {
	if !sched.Cell(staff.Name, day).Off() {
		return false, ReasonAlreadyAssigned
	}

	if staff.HasFixedDayOff(day) {
		return false, ReasonFixedDayOff
	}

	if day == e.policy.AnchorDay && e.previousWorkers[staff.Name] {
		return false, ReasonAnchorRotation
	}

	// A staff member who closed the previous operating day may not open
	// the next. The week wraps from its last day back to its first. The
	// rule is checked in both directions so a closing shift cannot land in
	// front of an opener committed by an earlier phase.
	prevCell := sched.Cell(staff.Name, day.Prev())
	if !prevCell.Off() && !prevCell.Overnight() && prevCell.End == e.lateClose && shift.Start == e.earlyOpen {
		return false, ReasonRestAfterClose
	}
	nextCell := sched.Cell(staff.Name, day.Next())
	if !shift.Overnight() && shift.End == e.lateClose && !nextCell.Off() && nextCell.Start == e.earlyOpen {
		return false, ReasonRestAfterClose
	}

	if shift.Overnight() && (!staff.Male || staff.Supervisor) {
		return false, ReasonOvernightIneligible
	}

	if sched.Hours(staff.Name)+shift.Hours > e.policy.HourCap {
		return false, ReasonHourCap
	}

	return true, ReasonOK
}
