package availability

import "math"

// TotalWeeklyHours sums the duration of every slot across the week, in hours
// rounded to one decimal place. Slots with unparseable times contribute
// nothing; Validate is responsible for surfacing those.
func (s *WeekSchedule) TotalWeeklyHours() float64 {
	totalMinutes := 0

	for _, day := range Weekdays {
		for _, slot := range s.days[day] {
			start, err := parseClock(slot.Start)
			if err != nil {
				continue
			}
			end, err := parseClock(slot.End)
			if err != nil {
				continue
			}
			totalMinutes += end - start
		}
	}

	hours := float64(totalMinutes) / 60.0
	return math.Round(hours*10) / 10
}

// WorkingDayCount returns how many days have at least one slot.
func (s *WeekSchedule) WorkingDayCount() int {
	count := 0
	for _, day := range Weekdays {
		if len(s.days[day]) > 0 {
			count++
		}
	}
	return count
}
