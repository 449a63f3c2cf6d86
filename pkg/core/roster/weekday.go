package roster

import (
	"fmt"
	"strings"
)

// DaysPerWeek is the length of the operating week
const DaysPerWeek = 7

// Weekday identifies a day of the operating week, starting at Sunday
type Weekday int

const (
	Sunday Weekday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

var dayNames = [DaysPerWeek]string{
	"SUNDAY", "MONDAY", "TUESDAY", "WEDNESDAY", "THURSDAY", "FRIDAY", "SATURDAY",
}

var dayShortNames = [DaysPerWeek]string{
	"SUN", "MON", "TUE", "WED", "THU", "FRI", "SAT",
}

// AllDays returns the days of the week in order
func AllDays() []Weekday {
	return []Weekday{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}
}

func (d Weekday) String() string {
	if d < 0 || d >= DaysPerWeek {
		return fmt.Sprintf("Weekday(%d)", int(d))
	}
	return dayNames[d]
}

// Short returns the three-letter form of the day name (e.g. "SUN")
func (d Weekday) Short() string {
	if d < 0 || d >= DaysPerWeek {
		return "???"
	}
	return dayShortNames[d]
}

// Prev returns the preceding day, wrapping from the first day of the week to the last
func (d Weekday) Prev() Weekday {
	return (d + DaysPerWeek - 1) % DaysPerWeek
}

// Next returns the following day, wrapping from the last day of the week to the first
func (d Weekday) Next() Weekday {
	return (d + 1) % DaysPerWeek
}

// Offset returns the day that is n days after d, wrapping around the week
func (d Weekday) Offset(n int) Weekday {
	return Weekday((int(d) + n) % DaysPerWeek)
}

// ParseWeekday parses a day token such as "SUNDAY" or "wed".
// Unknown tokens are configuration errors.
func ParseWeekday(token string) (Weekday, error) {
	upper := strings.ToUpper(strings.TrimSpace(token))
	for i, name := range dayNames {
		if upper == name || upper == dayShortNames[i] {
			return Weekday(i), nil
		}
	}
	return 0, fmt.Errorf("unknown day token %q", token)
}
