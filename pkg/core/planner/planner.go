package planner

import (
	"fmt"
	"sort"

	"github.com/superplus-ops/forecourt-roster/pkg/core/roster"
)

// planner carries the working state of one generation run
type planner struct {
	staff      []roster.StaffMember
	catalog    roster.Catalog
	targets    map[roster.Weekday]int
	policy     Policy
	eval       *evaluator
	sched      *Schedule
	shortfalls []Shortfall
}

// Generate produces a 7-day schedule for the roster. The computation is a
// deterministic pure function of its input: identical roster, catalog, daily
// targets and rotation state yield identical output.
//
// Configuration errors (duplicate staff names, unknown shift names) abort
// generation. Under-provision shortfalls never do; they are reported in the
// outcome.
func Generate(in Input) (*Outcome, error) {
	if err := roster.Validate(in.Roster); err != nil {
		return nil, fmt.Errorf("invalid roster: %w", err)
	}
	if err := in.Policy.Validate(in.Catalog); err != nil {
		return nil, fmt.Errorf("invalid policy: %w", err)
	}

	p := &planner{
		staff:   in.Roster,
		catalog: in.Catalog,
		targets: in.DailyTargets,
		policy:  in.Policy,
		eval:    newEvaluator(in.Policy, in.Catalog, in.PreviousAnchorWorkers),
		sched:   NewSchedule(in.Roster),
	}

	// Phases run in strict priority order; once a phase commits an
	// assignment, later phases treat it as fixed.
	p.assignAnchorCrew()
	p.assignOvernightRotation()
	p.assignSupervisors()
	p.assignConstrainedStaff()
	p.assignAuxiliaries()
	p.assignGeneralStaff()
	p.reconcileHours()

	return p.buildOutcome(), nil
}

// assign attempts one assignment, honoring every constraint rule. It returns
// false (without recording anything) when the assignment is refused.
func (p *planner) assign(staff roster.StaffMember, day roster.Weekday, shiftName string) bool {
	shift := p.catalog.MustGet(shiftName)
	if ok, _ := p.eval.CanAssign(p.sched, staff, day, shift); !ok {
		return false
	}
	p.sched.setCell(staff.Name, day, Cell{
		ShiftName: shift.Name,
		Start:     shift.Start,
		End:       shift.End,
		Hours:     shift.Hours,
	})
	return true
}

// dayNeed returns how far a day is below its daily headcount target
func (p *planner) dayNeed(day roster.Weekday) int {
	return p.targets[day] - p.sched.DayCount(day)
}

// candidateDays returns the week's days excluding the anchor day, ordered by
// descending headcount need with week order breaking ties. The daily target
// is a tie-breaking heuristic only, never a hard constraint.
func (p *planner) candidateDays() []roster.Weekday {
	days := make([]roster.Weekday, 0, roster.DaysPerWeek-1)
	for _, day := range roster.AllDays() {
		if day == p.policy.AnchorDay {
			continue
		}
		days = append(days, day)
	}
	sort.SliceStable(days, func(i, j int) bool {
		return p.dayNeed(days[i]) > p.dayNeed(days[j])
	})
	return days
}

// supervisorCount returns the number of supervisors with a non-overnight
// assignment on the day
func (p *planner) supervisorCount(day roster.Weekday) int {
	count := 0
	for _, member := range p.staff {
		if !member.Supervisor {
			continue
		}
		cell := p.sched.Cell(member.Name, day)
		if !cell.Off() && !cell.Overnight() {
			count++
		}
	}
	return count
}

func (p *planner) recordShortfall(s Shortfall) {
	p.shortfalls = append(p.shortfalls, s)
}

func (p *planner) buildOutcome() *Outcome {
	hours := make(map[string]int, len(p.staff))
	for _, member := range p.staff {
		hours[member.Name] = p.sched.Hours(member.Name)

		if member.OvernightSpecialist {
			continue
		}
		if got := p.sched.Hours(member.Name); got < member.Target() {
			p.recordShortfall(Shortfall{
				Kind:   ShortfallStaffHours,
				Staff:  member.Name,
				Wanted: member.Target(),
				Got:    got,
				Detail: fmt.Sprintf("%s ended %dh below target", member.Name, member.Target()-got),
			})
		}
	}

	counts := make(map[roster.Weekday]int, roster.DaysPerWeek)
	for _, day := range roster.AllDays() {
		counts[day] = p.sched.DayCount(day)
		if target, ok := p.targets[day]; ok && counts[day] < target {
			p.recordShortfall(Shortfall{
				Kind:   ShortfallDayHeadcount,
				Day:    day,
				Wanted: target,
				Got:    counts[day],
				Detail: fmt.Sprintf("%s headcount %d below target %d", day, counts[day], target),
			})
		}
	}

	validationErrors := ValidateSchedule(p.sched, p.staff, p.catalog, p.policy, p.eval.previousWorkers)

	return &Outcome{
		Schedule:         p.sched,
		Hours:            hours,
		DailyCounts:      counts,
		NewAnchorWorkers: p.sched.Workers(p.policy.AnchorDay),
		Shortfalls:       p.shortfalls,
		ValidationErrors: validationErrors,
		Success:          len(validationErrors) == 0,
	}
}
