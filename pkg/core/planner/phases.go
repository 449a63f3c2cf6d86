package planner

import (
	"github.com/superplus-ops/forecourt-roster/pkg/core/roster"
)

// assignAnchorCrew fills the anchor day with a lean fixed crew: one
// supervisor, one auxiliary and a policy-sized group of general staff on
// full-span shifts, plus the overnight slot.
func (p *planner) assignAnchorCrew() {
	anchor := p.policy.AnchorDay

	supervisorPlaced := false
	for _, sup := range roster.Supervisors(p.staff) {
		if p.assign(sup, anchor, p.policy.FullSpanShift) {
			supervisorPlaced = true
			break
		}
	}
	if !supervisorPlaced {
		p.recordShortfall(Shortfall{
			Kind:   ShortfallCoverage,
			Day:    anchor,
			Wanted: 1,
			Detail: "no eligible supervisor for the anchor day",
		})
	}

	attendants := 0
	for _, aux := range roster.Auxiliaries(p.staff) {
		if p.assign(aux, anchor, p.policy.FullSpanShift) {
			attendants++
			break
		}
	}
	for _, member := range p.staff {
		if attendants >= p.policy.AnchorAttendants {
			break
		}
		// individually constrained staff are scheduled by their own phase
		if !member.General() || member.Constrained() {
			continue
		}
		if p.assign(member, anchor, p.policy.FullSpanShift) {
			attendants++
		}
	}

	nightPlaced := false
	nightCandidates := append(roster.Specialists(p.staff), roster.OvernightEligible(p.staff)...)
	for _, candidate := range nightCandidates {
		if p.assign(candidate, anchor, p.policy.OvernightShift) {
			nightPlaced = true
			break
		}
	}
	if !nightPlaced {
		p.recordShortfall(Shortfall{
			Kind:   ShortfallCoverage,
			Day:    anchor,
			Wanted: 1,
			Detail: "no eligible staff for the anchor day overnight shift",
		})
	}
}

// assignOvernightRotation puts one eligible male on every remaining night.
// The specialist covers a fixed spaced subset of nights totalling their
// target; other eligible males each pick up one further night, round-robin.
func (p *planner) assignOvernightRotation() {
	night := p.catalog.MustGet(p.policy.OvernightShift)

	for _, specialist := range roster.Specialists(p.staff) {
		nightsWanted := specialist.Target() / night.Hours
		assigned := p.overnightNights(specialist.Name)
		for offset := p.policy.SpecialistNightSpacing; offset < roster.DaysPerWeek; offset += p.policy.SpecialistNightSpacing {
			if assigned >= nightsWanted {
				break
			}
			if p.assign(specialist, p.policy.AnchorDay.Offset(offset), p.policy.OvernightShift) {
				assigned++
			}
		}
	}

	eligible := roster.OvernightEligible(p.staff)
	rotation := 0
	for _, day := range roster.AllDays() {
		// the anchor night was already attempted by the anchor-crew phase
		if day == p.policy.AnchorDay {
			continue
		}
		if p.sched.OvernightCount(day) > 0 {
			continue
		}
		placed := false
		for i := range eligible {
			candidate := eligible[(rotation+i)%len(eligible)]
			if p.assign(candidate, day, p.policy.OvernightShift) {
				rotation = (rotation + i + 1) % len(eligible)
				placed = true
				break
			}
		}
		if !placed {
			p.recordShortfall(Shortfall{
				Kind:   ShortfallCoverage,
				Day:    day,
				Wanted: 1,
				Detail: "no eligible staff for the overnight shift",
			})
		}
	}
}

func (p *planner) overnightNights(name string) int {
	count := 0
	for _, day := range roster.AllDays() {
		if p.sched.Cell(name, day).Overnight() {
			count++
		}
	}
	return count
}

// assignSupervisors spreads each supervisor's remaining hours across the
// week with long shifts, alternating morning-leaning and evening-leaning
// patterns so open and close are both covered. No day accumulates more than
// the policy's supervisor limit.
func (p *planner) assignSupervisors() {
	for idx, sup := range roster.Supervisors(p.staff) {
		longShift := p.policy.LongAMShift
		if idx%2 == 1 {
			longShift = p.policy.LongPMShift
		}
		for p.sched.Hours(sup.Name) < sup.Target() {
			if p.assignOnBestDay(sup, longShift, true) {
				continue
			}
			if !p.assignOnBestDay(sup, p.policy.ClosingShift, true) {
				break
			}
		}
	}
}

// assignOnBestDay tries the shift on candidate days in descending headcount
// need, returning true on the first legal assignment
func (p *planner) assignOnBestDay(staff roster.StaffMember, shiftName string, limitSupervisors bool) bool {
	for _, day := range p.candidateDays() {
		if limitSupervisors && p.supervisorCount(day) >= p.policy.MaxSupervisorsPerDay {
			continue
		}
		if p.assign(staff, day, shiftName) {
			return true
		}
	}
	return false
}

// assignConstrainedStaff schedules staff carrying individual day
// constraints: must-work days first, then medium shifts toward target. When
// the rest-after-close rule forbids opening, a later-starting shift is
// substituted.
func (p *planner) assignConstrainedStaff() {
	for _, member := range p.staff {
		if !member.General() || !member.Constrained() {
			continue
		}
		for _, day := range member.MustWorkDays {
			if !p.assign(member, day, p.policy.OpeningShift) {
				p.assign(member, day, p.policy.MidShift)
			}
		}
		for _, day := range roster.AllDays() {
			if day == p.policy.AnchorDay {
				continue
			}
			if p.sched.Hours(member.Name) >= member.Target() {
				break
			}
			if !p.assign(member, day, p.policy.OpeningShift) {
				p.assign(member, day, p.policy.MidShift)
			}
		}
	}
}

// assignAuxiliaries alternates the auxiliary pair between opening-shaped and
// closing-shaped shifts. Whoever worked the anchor day takes opening shifts
// on alternating remaining days; the rest work the full span of the week.
func (p *planner) assignAuxiliaries() {
	anchor := p.policy.AnchorDay
	for _, aux := range roster.Auxiliaries(p.staff) {
		if !p.sched.Cell(aux.Name, anchor).Off() {
			for offset := 2; offset < roster.DaysPerWeek; offset += 2 {
				if p.sched.Hours(aux.Name) >= aux.Target() {
					break
				}
				day := anchor.Offset(offset)
				if !p.assign(aux, day, p.policy.OpeningShift) {
					p.assign(aux, day, p.policy.MidShift)
				}
			}
			continue
		}

		for i := 0; i < roster.DaysPerWeek-2; i++ {
			if p.sched.Hours(aux.Name) >= aux.Target() {
				break
			}
			day := anchor.Offset(i + 1)
			shiftName := p.policy.OpeningShift
			switch {
			case i == roster.DaysPerWeek-3:
				shiftName = p.policy.LongAMShift
			case i%2 == 1:
				shiftName = p.policy.ClosingShift
			}
			if !p.assign(aux, day, shiftName) && shiftName != p.policy.ClosingShift {
				p.assign(aux, day, p.policy.MidShift)
			}
		}
	}
}

// assignGeneralStaff fills the remaining staff toward target. Staff who
// prefer long shifts, or who still need most of a week, take full-span
// shifts on the highest-need days; everyone else works openers.
func (p *planner) assignGeneralStaff() {
	for _, member := range p.staff {
		if !member.General() || member.Constrained() {
			continue
		}
		needed := member.Target() - p.sched.Hours(member.Name)
		if needed <= 0 {
			continue
		}

		if member.PrefersLongShifts || needed >= p.policy.LongShiftThreshold {
			for _, day := range p.candidateDays() {
				if p.sched.Hours(member.Name) >= member.Target() {
					break
				}
				p.assign(member, day, p.policy.FullSpanShift)
			}
		}

		for _, day := range p.candidateDays() {
			if p.sched.Hours(member.Name) >= member.Target() {
				break
			}
			if !p.assign(member, day, p.policy.OpeningShift) {
				p.assign(member, day, p.policy.MidShift)
			}
		}
	}
}
