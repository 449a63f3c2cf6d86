package planner

import (
	"sort"

	"github.com/superplus-ops/forecourt-roster/pkg/core/roster"
)

// reconcileHours brings every staff member still below target as close to it
// as legally possible: first by pushing existing shift ends later, then by
// adding shifts on empty days. The overnight specialist's pattern is fixed
// and never touched. The pass terminates when everyone is at or above target
// or no legal action remains.
func (p *planner) reconcileHours() {
	for _, member := range p.staff {
		if member.OvernightSpecialist {
			continue
		}
		for p.sched.Hours(member.Name) < member.Target() {
			needed := member.Target() - p.sched.Hours(member.Name)
			if p.extendExistingShift(member, needed) {
				continue
			}
			if p.addReconciliationShift(member, needed) {
				continue
			}
			break
		}
	}
}

// extendExistingShift pushes one non-overnight shift's end later by up to
// min(needed, extendLimit, room to the closing boundary) hours
func (p *planner) extendExistingShift(member roster.StaffMember, needed int) bool {
	lateClose := p.catalog.LateClose()
	for _, day := range roster.AllDays() {
		cell := p.sched.Cell(member.Name, day)
		if cell.Off() || cell.Overnight() || cell.End >= lateClose {
			continue
		}

		ext := min(needed, p.policy.ExtendLimit, int(lateClose-cell.End))
		if room := p.policy.HourCap - p.sched.Hours(member.Name); ext > room {
			ext = room
		}
		// extending all the way to the closing boundary would retroactively
		// break the rest rule when the next day opens early
		if cell.End+roster.Clock(ext) == lateClose {
			next := p.sched.Cell(member.Name, day.Next())
			if !next.Off() && !next.Overnight() && next.Start == p.catalog.EarlyOpen() {
				ext = int(lateClose-cell.End) - 1
				if ext > needed {
					ext = needed
				}
			}
		}
		if ext <= 0 {
			continue
		}

		cell.End += roster.Clock(ext)
		cell.Hours += ext
		p.sched.setCell(member.Name, day, cell)
		return true
	}
	return false
}

// addReconciliationShift adds the smallest catalog shift covering the
// remaining need on the first empty day that accepts it. The constraint
// evaluator substitutes a later-starting shift when the staff member cannot
// legally open. When nothing covers the need, the largest shift that fits is
// taken for partial progress.
func (p *planner) addReconciliationShift(member roster.StaffMember, needed int) bool {
	shifts := p.reconciliationShifts()

	for _, day := range roster.AllDays() {
		if !p.sched.Cell(member.Name, day).Off() {
			continue
		}
		for _, shift := range shifts {
			if shift.Hours < needed {
				continue
			}
			if p.assign(member, day, shift.Name) {
				return true
			}
		}
	}

	for _, day := range roster.AllDays() {
		if !p.sched.Cell(member.Name, day).Off() {
			continue
		}
		for i := len(shifts) - 1; i >= 0; i-- {
			if shifts[i].Hours >= needed {
				continue
			}
			if p.assign(member, day, shifts[i].Name) {
				return true
			}
		}
	}

	return false
}

// reconciliationShifts returns the non-overnight catalog shifts ordered by
// duration, earlier starts first among equals
func (p *planner) reconciliationShifts() []roster.ShiftDefinition {
	shifts := make([]roster.ShiftDefinition, 0)
	for _, shift := range p.catalog.Shifts() {
		if shift.Overnight() {
			continue
		}
		shifts = append(shifts, shift)
	}
	sort.SliceStable(shifts, func(i, j int) bool {
		if shifts[i].Hours != shifts[j].Hours {
			return shifts[i].Hours < shifts[j].Hours
		}
		return shifts[i].Start < shifts[j].Start
	})
	return shifts
}
