package availability

import "fmt"

// Preset keys accepted by ApplyPreset.
const (
	PresetStandard = "standard" // 9-5, Monday to Friday
	PresetFullTime = "fulltime" // 8-6, all week
	PresetMorning  = "morning"  // 07:00-13:00, Monday to Friday
	PresetEvening  = "evening"  // 14:00-22:00, Monday to Friday
	PresetSplit    = "split"    // split shift, Monday to Friday
)

// presets are static canned schedules, not computed. Each entry lists the
// slots applied to every day in its day set.
var presets = map[string]struct {
	days  []Weekday
	slots []TimeSlot
}{
	PresetStandard: {
		days:  []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday},
		slots: []TimeSlot{{Start: "09:00", End: "17:00"}},
	},
	PresetFullTime: {
		days:  []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday},
		slots: []TimeSlot{{Start: "08:00", End: "18:00"}},
	},
	PresetMorning: {
		days:  []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday},
		slots: []TimeSlot{{Start: "07:00", End: "13:00"}},
	},
	PresetEvening: {
		days:  []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday},
		slots: []TimeSlot{{Start: "14:00", End: "22:00"}},
	},
	PresetSplit: {
		days:  []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday},
		slots: []TimeSlot{{Start: "07:00", End: "11:00"}, {Start: "15:00", End: "19:00"}},
	},
}

// PresetKeys lists the available preset keys in display order.
var PresetKeys = []string{PresetStandard, PresetFullTime, PresetMorning, PresetEvening, PresetSplit}

// ApplyPreset replaces the entire schedule with the named canned schedule.
// Days outside the preset's day set are cleared.
func (s *WeekSchedule) ApplyPreset(key string) error {
	preset, ok := presets[key]
	if !ok {
		return fmt.Errorf("unknown preset %q (valid: %v)", key, PresetKeys)
	}

	var fresh WeekSchedule
	for _, day := range preset.days {
		slots := make([]TimeSlot, len(preset.slots))
		copy(slots, preset.slots)
		fresh.days[day] = slots
	}
	*s = fresh

	return nil
}
