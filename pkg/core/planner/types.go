package planner

import (
	"github.com/superplus-ops/forecourt-roster/pkg/core/roster"
)

// Cell is the assignment of one staff member on one day. The zero value is
// an OFF cell. Start and End are the realized boundaries, which may differ
// from the catalog shift's nominal end after hour reconciliation.
type Cell struct {
	ShiftName string
	Start     roster.Clock
	End       roster.Clock
	Hours     int
}

// Off reports whether the cell is unassigned
func (c Cell) Off() bool {
	return c.ShiftName == ""
}

// Overnight reports whether the realized shift wraps past midnight
func (c Cell) Overnight() bool {
	return !c.Off() && c.End < c.Start
}

// Schedule is the complete week-by-staff grid of cells plus accumulated
// hours. Mutated only by the planner and reconciliation pass during a single
// run; read-only once returned.
type Schedule struct {
	staffOrder []string
	cells      map[string]*[roster.DaysPerWeek]Cell
	hours      map[string]int
}

// NewSchedule creates an all-OFF schedule for the given staff
func NewSchedule(staff []roster.StaffMember) *Schedule {
	s := &Schedule{
		staffOrder: make([]string, 0, len(staff)),
		cells:      make(map[string]*[roster.DaysPerWeek]Cell, len(staff)),
		hours:      make(map[string]int, len(staff)),
	}
	for _, member := range staff {
		s.staffOrder = append(s.staffOrder, member.Name)
		s.cells[member.Name] = &[roster.DaysPerWeek]Cell{}
		s.hours[member.Name] = 0
	}
	return s
}

// StaffNames returns the staff in roster order
func (s *Schedule) StaffNames() []string {
	names := make([]string, len(s.staffOrder))
	copy(names, s.staffOrder)
	return names
}

// Cell returns the assignment for the staff member on the given day
func (s *Schedule) Cell(name string, day roster.Weekday) Cell {
	row, ok := s.cells[name]
	if !ok {
		return Cell{}
	}
	return row[day]
}

// Hours returns the staff member's accumulated weekly hours
func (s *Schedule) Hours(name string) int {
	return s.hours[name]
}

// DayCount returns the number of staff assigned on a day, excluding
// overnight-shaped cells (matching the daily-target definition)
func (s *Schedule) DayCount(day roster.Weekday) int {
	count := 0
	for _, name := range s.staffOrder {
		cell := s.cells[name][day]
		if !cell.Off() && !cell.Overnight() {
			count++
		}
	}
	return count
}

// OvernightCount returns the number of overnight-shaped cells on a day
func (s *Schedule) OvernightCount(day roster.Weekday) int {
	count := 0
	for _, name := range s.staffOrder {
		if s.cells[name][day].Overnight() {
			count++
		}
	}
	return count
}

// Workers returns the staff with a non-OFF cell on the given day, in roster
// order
func (s *Schedule) Workers(day roster.Weekday) []string {
	workers := make([]string, 0)
	for _, name := range s.staffOrder {
		if !s.cells[name][day].Off() {
			workers = append(workers, name)
		}
	}
	return workers
}

// setCell records an assignment and updates the running hour total
func (s *Schedule) setCell(name string, day roster.Weekday, cell Cell) {
	row := s.cells[name]
	s.hours[name] -= row[day].Hours
	row[day] = cell
	s.hours[name] += cell.Hours
}

// Shortfall kinds reported in the generation outcome
type ShortfallKind string

const (
	// ShortfallStaffHours reports a staff member ending below target hours
	ShortfallStaffHours ShortfallKind = "staff_hours"

	// ShortfallDayHeadcount reports a day ending below its daily target
	ShortfallDayHeadcount ShortfallKind = "day_headcount"

	// ShortfallCoverage reports a required role slot that could not be
	// filled (e.g. no eligible supervisor on the anchor day)
	ShortfallCoverage ShortfallKind = "coverage"
)

// Shortfall records an under-provision condition. Shortfalls are reported,
// never raised as errors.
type Shortfall struct {
	Kind   ShortfallKind
	Staff  string
	Day    roster.Weekday
	Wanted int
	Got    int
	Detail string
}

// Input carries everything a generation run consumes
type Input struct {
	Roster                []roster.StaffMember
	Catalog               roster.Catalog
	DailyTargets          map[roster.Weekday]int
	PreviousAnchorWorkers []string
	Policy                Policy
}

// Outcome is the result of one generation run
type Outcome struct {
	Schedule *Schedule

	// Hours maps staff name to accumulated weekly hours
	Hours map[string]int

	// DailyCounts maps each day to its day-staff headcount (excluding
	// overnight)
	DailyCounts map[roster.Weekday]int

	// NewAnchorWorkers is the rotation state to feed into the next run
	NewAnchorWorkers []string

	// Shortfalls lists under-provision conditions for human inspection
	Shortfalls []Shortfall

	// ValidationErrors lists hard-rule violations found in the final
	// schedule. An empty list means the schedule is legal.
	ValidationErrors []ScheduleValidationError

	// Success is true when the final schedule passes all hard-rule checks
	Success bool
}
