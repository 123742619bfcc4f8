package availability

// Weekday indexes the fixed seven-day week, Monday first.
// Keeping the schedule as a fixed array indexed by Weekday makes
// "all seven days are always present" a structural invariant rather
// than a runtime convention.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// Weekdays lists all days in canonical order for iteration.
var Weekdays = [7]Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

var weekdayNames = [7]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

func (d Weekday) String() string {
	if d < Monday || d > Sunday {
		return "Unknown"
	}
	return weekdayNames[d]
}

// ParseWeekday resolves a canonical English weekday name.
// The second return is false for anything else, including casing variants;
// the backend always sends canonical names.
func ParseWeekday(name string) (Weekday, bool) {
	for i, n := range weekdayNames {
		if n == name {
			return Weekday(i), true
		}
	}
	return 0, false
}
