package careapi

import (
	"github.com/sundialcare/careadmin/pkg/core/availability"
	"github.com/sundialcare/careadmin/pkg/core/model"
)

// CaregiverRecord is the backend's caregiver document.
type CaregiverRecord struct {
	ID           string                  `json:"_id"`
	Name         string                  `json:"name"`
	Email        string                  `json:"email"`
	Phone        string                  `json:"phone"`
	Status       string                  `json:"status"`
	Gender       string                  `json:"gender"`
	Skills       []string                `json:"skills"`
	CanDrive     bool                    `json:"canDrive"`
	Availability []availability.DaySlots `json:"availability"`
	TimeOff      []TimeOffEntry          `json:"timeOff"`
}

// TimeOffEntry is the wire form of a time-off period. Dates are stored as
// received; the backend performs no ordering validation either.
type TimeOffEntry struct {
	ID        string `json:"_id,omitempty"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Reason    string `json:"reason,omitempty"`
}

// AvailabilityUpdate is the save payload: the availability day array filtered
// to non-empty days, plus the time-off list verbatim.
type AvailabilityUpdate struct {
	Availability []availability.DaySlots `json:"availability"`
	TimeOff      []TimeOffEntry          `json:"timeOff"`
}

// CandidateSummary is a caregiver summary from the backend's
// available-caregivers query for a visit.
type CandidateSummary struct {
	ID       string   `json:"_id"`
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Phone    string   `json:"phone"`
	Skills   []string `json:"skills"`
	Gender   string   `json:"gender"`
	Distance *float64 `json:"distance,omitempty"`
	CanDrive bool     `json:"canDrive"`
	Address  string   `json:"address,omitempty"`
}

// VisitRecord is the backend's visit document.
type VisitRecord struct {
	ID            string   `json:"_id"`
	RecipientID   string   `json:"recipientId"`
	Requirements  []string `json:"requirements"`
	DoubleHanded  bool     `json:"doubleHanded"`
	PreferredTime string   `json:"preferredTime"`
	Duration      int      `json:"duration"`
	Priority      string   `json:"priority"`
	DaysOfWeek    []string `json:"daysOfWeek,omitempty"`
}

// RecipientRecord is the backend's care recipient document, reduced to what
// the admin tooling needs.
type RecipientRecord struct {
	ID               string `json:"_id"`
	Name             string `json:"name"`
	GenderPreference string `json:"genderPreference,omitempty"`
}

// ToCaregiver converts a candidate summary to the domain type.
func (c CandidateSummary) ToCaregiver() model.Caregiver {
	return model.Caregiver{
		ID:         c.ID,
		Name:       c.Name,
		Email:      c.Email,
		Phone:      c.Phone,
		Gender:     c.Gender,
		Skills:     c.Skills,
		DistanceKm: c.Distance,
		CanDrive:   c.CanDrive,
	}
}

// ToCaregiver converts a caregiver record to the domain type. Availability and
// time off stay on the record; load them through availability.Load as needed.
func (r CaregiverRecord) ToCaregiver() model.Caregiver {
	return model.Caregiver{
		ID:       r.ID,
		Name:     r.Name,
		Email:    r.Email,
		Phone:    r.Phone,
		Status:   model.Status(r.Status),
		Gender:   r.Gender,
		Skills:   r.Skills,
		CanDrive: r.CanDrive,
	}
}

// ToVisit converts a visit record to the domain type.
func (r VisitRecord) ToVisit() model.Visit {
	return model.Visit{
		ID:            r.ID,
		RecipientID:   r.RecipientID,
		Requirements:  r.Requirements,
		DoubleHanded:  r.DoubleHanded,
		PreferredTime: r.PreferredTime,
		DurationMins:  r.Duration,
		Priority:      r.Priority,
		DaysOfWeek:    r.DaysOfWeek,
	}
}

// ToRecipient converts a recipient record to the domain type.
func (r RecipientRecord) ToRecipient() model.CareRecipient {
	return model.CareRecipient{
		ID:               r.ID,
		Name:             r.Name,
		GenderPreference: r.GenderPreference,
	}
}

// TimeOffToWire converts domain time-off periods to wire entries.
func TimeOffToWire(periods []model.TimeOffPeriod) []TimeOffEntry {
	entries := make([]TimeOffEntry, len(periods))
	for i, p := range periods {
		entries[i] = TimeOffEntry{
			ID:        p.ID,
			StartDate: p.StartDate,
			EndDate:   p.EndDate,
			Reason:    p.Reason,
		}
	}
	return entries
}

// TimeOffFromWire converts wire entries to domain time-off periods.
func TimeOffFromWire(entries []TimeOffEntry) []model.TimeOffPeriod {
	periods := make([]model.TimeOffPeriod, len(entries))
	for i, e := range entries {
		periods[i] = model.TimeOffPeriod{
			ID:        e.ID,
			StartDate: e.StartDate,
			EndDate:   e.EndDate,
			Reason:    e.Reason,
		}
	}
	return periods
}
