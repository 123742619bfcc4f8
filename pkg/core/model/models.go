package model

// NoPreference is the sentinel the scheduling backend stores when a care
// recipient has no gender preference. An empty string means the same thing.
const NoPreference = "No Preference"

type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
)

func (s Status) IsValid() bool {
	return s == StatusActive || s == StatusInactive
}

// Caregiver represents a caregiver as returned by the scheduling backend.
type Caregiver struct {
	ID     string
	Name   string
	Email  string
	Phone  string
	Status Status
	Gender string

	// Skills are free-form identifiers ("Personal Care", "medication_management").
	// Comparison always goes through matching.NormalizeSkill.
	Skills []string

	// DistanceKm from the care recipient, when the backend has computed it.
	// Nil means unknown, not zero.
	DistanceKm *float64

	CanDrive bool
}

// CareRecipient represents the person receiving care.
type CareRecipient struct {
	ID   string
	Name string

	// GenderPreference is empty or NoPreference when the recipient has none.
	GenderPreference string
}

// Visit represents a required care visit as defined by the backend scheduler.
type Visit struct {
	ID          string
	RecipientID string

	// Requirements is the set of skill identifiers a caregiver must hold.
	Requirements []string

	// DoubleHanded visits need two distinct caregivers (primary + secondary).
	// Enforcing distinctness is a selection-time concern, not a scoring one.
	DoubleHanded bool

	PreferredTime string // "HH:MM"
	DurationMins  int
	Priority      string

	// DaysOfWeek restricts which weekdays the visit may fall on.
	// Empty means unrestricted; resolve through ActiveDays, never inline.
	DaysOfWeek []string
}

// allWeekdays is the default resolution for visits with no day restriction.
var allWeekdays = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// ActiveDays returns the weekdays this visit may be scheduled on.
// A visit with no explicit restriction is active on all seven days.
func (v Visit) ActiveDays() []string {
	if len(v.DaysOfWeek) == 0 {
		return allWeekdays
	}
	return v.DaysOfWeek
}

// TimeOffPeriod is a dated exception to a caregiver's recurring availability.
type TimeOffPeriod struct {
	ID        string
	StartDate string // "2006-01-02"
	EndDate   string // "2006-01-02"
	Reason    string
}
