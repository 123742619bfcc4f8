package availability

// TimeSlot is a contiguous interval within one day during which a caregiver
// is available. Times are zero-padded 24-hour "HH:MM" strings; cross-midnight
// slots are not supported (Validate rejects Start >= End).
type TimeSlot struct {
	Start string `json:"startTime"`
	End   string `json:"endTime"`
}

// DaySlots is the wire representation of one day's availability, as exchanged
// with the scheduling backend. Days with no slots are omitted on the wire.
type DaySlots struct {
	DayOfWeek string     `json:"dayOfWeek"`
	Slots     []TimeSlot `json:"slots"`
}

// Default slot appended by AddSlot. Operators adjust the times afterwards;
// nothing is validated until save.
const (
	DefaultSlotStart = "09:00"
	DefaultSlotEnd   = "17:00"
)

// SlotField names an editable field of a TimeSlot for UpdateSlot.
type SlotField string

const (
	FieldStart SlotField = "startTime"
	FieldEnd   SlotField = "endTime"
)

// WeekSchedule holds a caregiver's recurring weekly availability.
// All seven days are always present; a day with a nil or empty slot list
// means "not available that day".
type WeekSchedule struct {
	days [7][]TimeSlot
}

// Load builds a WeekSchedule from the backend's sparse day array. Days absent
// from the input are left empty. Entries whose DayOfWeek is not a canonical
// weekday name are returned separately so the caller can warn about them;
// they never occupy a day bucket.
func Load(entries []DaySlots) (WeekSchedule, []DaySlots) {
	var s WeekSchedule
	var unrecognized []DaySlots

	for _, entry := range entries {
		day, ok := ParseWeekday(entry.DayOfWeek)
		if !ok {
			unrecognized = append(unrecognized, entry)
			continue
		}
		s.days[day] = append(s.days[day], entry.Slots...)
	}

	return s, unrecognized
}

// Serialize produces the wire day array in canonical weekday order, omitting
// days with no slots. The round trip is deliberately lossy: a day cleared to
// empty and a day never set both mean "not available" and serialize the same.
func (s *WeekSchedule) Serialize() []DaySlots {
	var entries []DaySlots

	for _, day := range Weekdays {
		if len(s.days[day]) == 0 {
			continue
		}
		slots := make([]TimeSlot, len(s.days[day]))
		copy(slots, s.days[day])
		entries = append(entries, DaySlots{
			DayOfWeek: day.String(),
			Slots:     slots,
		})
	}

	return entries
}

// Slots returns the slot sequence for a day. The returned slice is the
// schedule's own backing storage; callers that need an independent copy
// should copy it themselves.
func (s *WeekSchedule) Slots(day Weekday) []TimeSlot {
	return s.days[day]
}

// AddSlot appends the default 09:00-17:00 slot to the day. It never fails and
// does not check the new slot against existing ones; validation is deferred
// to save time.
func (s *WeekSchedule) AddSlot(day Weekday) {
	s.days[day] = append(s.days[day], TimeSlot{Start: DefaultSlotStart, End: DefaultSlotEnd})
}

// RemoveSlot removes the slot at index. An out-of-range index is a no-op.
func (s *WeekSchedule) RemoveSlot(day Weekday, index int) {
	if index < 0 || index >= len(s.days[day]) {
		return
	}
	s.days[day] = append(s.days[day][:index], s.days[day][index+1:]...)
}

// UpdateSlot sets one field of the slot at index. Out-of-range indexes and
// unknown fields are no-ops; the value is not validated here.
func (s *WeekSchedule) UpdateSlot(day Weekday, index int, field SlotField, value string) {
	if index < 0 || index >= len(s.days[day]) {
		return
	}
	switch field {
	case FieldStart:
		s.days[day][index].Start = value
	case FieldEnd:
		s.days[day][index].End = value
	}
}

// ClearDay empties the day's slot sequence.
func (s *WeekSchedule) ClearDay(day Weekday) {
	s.days[day] = nil
}

// CopyDay deep-copies one day's slots onto another, overwriting whatever was
// there. The two days never share slot storage afterwards.
func (s *WeekSchedule) CopyDay(from, to Weekday) {
	if len(s.days[from]) == 0 {
		s.days[to] = nil
		return
	}
	slots := make([]TimeSlot, len(s.days[from]))
	copy(slots, s.days[from])
	s.days[to] = slots
}
