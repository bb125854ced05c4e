package event

import "time"

// ResolveSchedule picks the single schedule that applies to the selected date.
//
// With no selected date the first schedule in catalog order is returned, which
// is what the storefront shows before the user interacts. When several ranges
// contain the date, a single schedule marked as override wins; otherwise the
// first match in catalog order does. When nothing contains the date the first
// schedule is returned rather than an error: the storefront always needs a
// price to render, so "no schedule for date" falls back instead of failing.
//
// Pure function, safe to call on every recompute. Returns nil only for an
// empty catalog.
func ResolveSchedule(schedules []Schedule, selectedDate *time.Time) *Schedule {
	if len(schedules) == 0 {
		return nil
	}
	if selectedDate == nil {
		return &schedules[0]
	}

	var matches []*Schedule
	for i := range schedules {
		if schedules[i].Contains(*selectedDate) {
			matches = append(matches, &schedules[i])
		}
	}

	switch len(matches) {
	case 0:
		return &schedules[0]
	case 1:
		return matches[0]
	}

	var override *Schedule
	for _, m := range matches {
		if !m.IsOverride() {
			continue
		}
		if override != nil {
			// More than one override is ambiguous; catalog order decides.
			return matches[0]
		}
		override = m
	}
	if override != nil {
		return override
	}
	return matches[0]
}
