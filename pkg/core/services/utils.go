package services

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/superplus-ops/forecourt-roster/pkg/db"
)

// nextAnchorDate returns the first occurrence of the anchor recurrence rule
// on or after the given time. The rule is anchored to midnight of that day
// so a run on the anchor day itself resolves to today.
func nextAnchorDate(anchorRule string, from time.Time) (time.Time, error) {
	rule, err := rrule.StrToRRule(anchorRule)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse anchor rule: %w", err)
	}

	dayStart := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	rule.DTStart(dayStart)

	next := rule.After(dayStart, true)
	if next.IsZero() {
		return time.Time{}, fmt.Errorf("anchor rule %q has no upcoming occurrence", anchorRule)
	}

	return next, nil
}

// findLatestWeek finds the schedule week with the most recent start date
func findLatestWeek(weeks []db.ScheduleWeek) *db.ScheduleWeek {
	if len(weeks) == 0 {
		return nil
	}

	latest := &weeks[0]
	latestDate, err := time.Parse("2006-01-02", latest.WeekStart)
	if err != nil {
		return latest
	}

	for i := 1; i < len(weeks); i++ {
		currentDate, err := time.Parse("2006-01-02", weeks[i].WeekStart)
		if err != nil {
			continue
		}

		if currentDate.After(latestDate) {
			latest = &weeks[i]
			latestDate = currentDate
		}
	}

	return latest
}
