package roster

import (
	"fmt"
	"slices"
)

// DefaultTargetHours is the weekly hour target applied when a staff member
// does not specify one
const DefaultTargetHours = 40

// StaffMember is one member of the roster with their eligibility attributes.
// Immutable for the duration of a generation run.
type StaffMember struct {
	Name                string
	Supervisor          bool
	Male                bool
	Auxiliary           bool
	OvernightSpecialist bool
	PrefersLongShifts   bool
	FixedDaysOff        []Weekday
	MustWorkDays        []Weekday
	TargetHours         int
}

// Target returns the staff member's weekly hour target, applying the default
func (s StaffMember) Target() int {
	if s.TargetHours <= 0 {
		return DefaultTargetHours
	}
	return s.TargetHours
}

// HasFixedDayOff reports whether the given day is always unavailable
func (s StaffMember) HasFixedDayOff(day Weekday) bool {
	return slices.Contains(s.FixedDaysOff, day)
}

// MustWorkOn reports whether the staff member must be assigned on the day
func (s StaffMember) MustWorkOn(day Weekday) bool {
	return slices.Contains(s.MustWorkDays, day)
}

// Constrained reports whether the staff member carries individual day
// constraints and is therefore scheduled by the constrained-staff phase.
func (s StaffMember) Constrained() bool {
	return len(s.FixedDaysOff) > 0 || len(s.MustWorkDays) > 0
}

// General reports whether the staff member belongs to the general pool
// (no supervisor, auxiliary, or overnight-specialist role)
func (s StaffMember) General() bool {
	return !s.Supervisor && !s.Auxiliary && !s.OvernightSpecialist
}

// OvernightEligible reports whether the staff member may take an overnight
// shift when the specialist is unavailable. Supervisors never work overnight.
func (s StaffMember) OvernightEligible() bool {
	return s.Male && !s.Supervisor && !s.OvernightSpecialist
}

// Validate checks a roster for configuration errors: duplicate or empty
// names. Day tokens and shift names are validated where they are parsed.
func Validate(staff []StaffMember) error {
	seen := make(map[string]bool, len(staff))
	for _, member := range staff {
		if member.Name == "" {
			return fmt.Errorf("staff member with empty name")
		}
		if seen[member.Name] {
			return fmt.Errorf("duplicate staff name %q", member.Name)
		}
		seen[member.Name] = true
	}
	return nil
}

// Supervisors returns the supervisors in roster order
func Supervisors(staff []StaffMember) []StaffMember {
	return filter(staff, func(s StaffMember) bool { return s.Supervisor })
}

// Auxiliaries returns the auxiliary staff in roster order
func Auxiliaries(staff []StaffMember) []StaffMember {
	return filter(staff, func(s StaffMember) bool { return s.Auxiliary })
}

// Specialists returns the overnight specialists in roster order
func Specialists(staff []StaffMember) []StaffMember {
	return filter(staff, func(s StaffMember) bool { return s.OvernightSpecialist })
}

// OvernightEligible returns the non-specialist staff eligible for overnight
// shifts, in roster order
func OvernightEligible(staff []StaffMember) []StaffMember {
	return filter(staff, StaffMember.OvernightEligible)
}

func filter(staff []StaffMember, keep func(StaffMember) bool) []StaffMember {
	matched := make([]StaffMember, 0)
	for _, member := range staff {
		if keep(member) {
			matched = append(matched, member)
		}
	}
	return matched
}
