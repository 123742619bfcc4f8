package availability

import (
	"sort"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/sundialcare/careadmin/pkg/core/model"
)

const dateLayout = "2006-01-02"

// rruleWeekdays maps our Monday-first weekday index to rrule's weekday values.
var rruleWeekdays = [7]rrule.Weekday{
	rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR, rrule.SA, rrule.SU,
}

// Blackout is an organization-wide recurring closure (public holidays, office
// closures) that suppresses availability on matching dates.
type Blackout struct {
	Rule   *rrule.RRule
	Reason string
}

// ScheduledDay is one concrete dated instance of the recurring weekly schedule.
type ScheduledDay struct {
	Date  time.Time
	Day   Weekday
	Slots []TimeSlot
	Hours float64
}

// ExcludedDay records a date that the recurring schedule would have covered
// but which was suppressed by time off or a blackout.
type ExcludedDay struct {
	Date   time.Time
	Day    Weekday
	Reason string
}

// ExpandOptions bounds and filters a schedule expansion.
type ExpandOptions struct {
	From      time.Time
	To        time.Time
	TimeOff   []model.TimeOffPeriod
	Blackouts []Blackout
}

// Expand turns the recurring weekly schedule into concrete dated entries over
// [From, To], dropping dates covered by a time-off period or a blackout rule.
// Entries are returned in date order alongside the exclusions that applied.
func (s *WeekSchedule) Expand(opts ExpandOptions) ([]ScheduledDay, []ExcludedDay) {
	var included []ScheduledDay
	var excluded []ExcludedDay

	for _, day := range Weekdays {
		slots := s.days[day]
		if len(slots) == 0 {
			continue
		}

		rule, err := rrule.NewRRule(rrule.ROption{
			Freq:      rrule.WEEKLY,
			Byweekday: []rrule.Weekday{rruleWeekdays[day]},
			Dtstart:   opts.From,
			Until:     opts.To,
		})
		if err != nil {
			// Only possible with a malformed option set; skip the day.
			continue
		}

		for _, date := range rule.All() {
			if reason, off := excludedOn(date, opts); off {
				excluded = append(excluded, ExcludedDay{Date: date, Day: day, Reason: reason})
				continue
			}

			daySlots := make([]TimeSlot, len(slots))
			copy(daySlots, slots)

			included = append(included, ScheduledDay{
				Date:  date,
				Day:   day,
				Slots: daySlots,
				Hours: slotHours(daySlots),
			})
		}
	}

	sort.Slice(included, func(i, j int) bool { return included[i].Date.Before(included[j].Date) })
	sort.Slice(excluded, func(i, j int) bool { return excluded[i].Date.Before(excluded[j].Date) })

	return included, excluded
}

// excludedOn reports whether the date is suppressed, and why. Time off wins
// over blackouts when both apply.
func excludedOn(date time.Time, opts ExpandOptions) (string, bool) {
	for _, period := range opts.TimeOff {
		if TimeOffCovers(period, date) {
			reason := period.Reason
			if reason == "" {
				reason = "time off"
			}
			return reason, true
		}
	}

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.Add(24*time.Hour - time.Nanosecond)
	for _, blackout := range opts.Blackouts {
		if blackout.Rule == nil {
			continue
		}
		if len(blackout.Rule.Between(dayStart, dayEnd, true)) > 0 {
			reason := blackout.Reason
			if reason == "" {
				reason = "blackout"
			}
			return reason, true
		}
	}

	return "", false
}

// TimeOffCovers reports whether the period covers the date, bounds inclusive.
// Periods with unparseable dates never match; the wire format performs no
// date validation (inverted periods are stored as-is and simply match nothing).
func TimeOffCovers(period model.TimeOffPeriod, date time.Time) bool {
	start, err := time.ParseInLocation(dateLayout, period.StartDate, date.Location())
	if err != nil {
		return false
	}
	end, err := time.ParseInLocation(dateLayout, period.EndDate, date.Location())
	if err != nil {
		return false
	}

	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return !day.Before(start) && !day.After(end)
}

func slotHours(slots []TimeSlot) float64 {
	minutes := 0
	for _, slot := range slots {
		start, err := parseClock(slot.Start)
		if err != nil {
			continue
		}
		end, err := parseClock(slot.End)
		if err != nil {
			continue
		}
		minutes += end - start
	}
	return float64(minutes) / 60.0
}
