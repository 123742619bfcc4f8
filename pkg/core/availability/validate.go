package availability

import "fmt"

// Validate checks every day's slots and returns human-readable error messages,
// one list entry per violation. An empty list means the schedule is valid.
//
// Days are checked independently in canonical weekday order. Within a day,
// overlap errors come before ordering errors. Overlap reporting surfaces the
// first offending pair for the day; a violating day always produces at least
// one error.
//
// Callers must validate before persisting: a non-empty result blocks save.
func (s *WeekSchedule) Validate() []string {
	var errs []string

	for _, day := range Weekdays {
		slots := s.days[day]

		// Overlap check: symmetric over unordered pairs. A pair overlaps when
		// either slot's start falls within [otherStart, otherEnd). Well-formed
		// HH:MM strings compare correctly as strings.
		overlap := false
		for i := 0; i < len(slots) && !overlap; i++ {
			for j := i + 1; j < len(slots); j++ {
				if slotsOverlap(slots[i], slots[j]) {
					errs = append(errs, fmt.Sprintf("%s: slots %d and %d overlap", day, i+1, j+1))
					overlap = true
					break
				}
			}
		}

		// Ordering check: every slot must start strictly before it ends.
		for i, slot := range slots {
			if slot.Start >= slot.End {
				errs = append(errs, fmt.Sprintf("%s: slot %d start time must be before end time", day, i+1))
			}
		}
	}

	return errs
}

func slotsOverlap(a, b TimeSlot) bool {
	if a.Start >= b.Start && a.Start < b.End {
		return true
	}
	if b.Start >= a.Start && b.Start < a.End {
		return true
	}
	return false
}
