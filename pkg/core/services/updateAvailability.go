package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/sundialcare/careadmin/pkg/clients/careapi"
	"github.com/sundialcare/careadmin/pkg/core/availability"
	"github.com/sundialcare/careadmin/pkg/core/model"
)

// CaregiverStore defines the backend operations needed to edit a caregiver's
// availability
type CaregiverStore interface {
	GetCaregiver(ctx context.Context, caregiverID string) (*careapi.CaregiverRecord, error)
	UpdateCaregiverAvailability(ctx context.Context, caregiverID string, update careapi.AvailabilityUpdate) error
}

// UpdateAvailabilityResult reports the outcome of a save attempt. Validation
// failures are data, not errors: Saved is false and ValidationErrors carries
// the per-day messages for display.
type UpdateAvailabilityResult struct {
	CaregiverID      string
	Saved            bool
	ValidationErrors []string
	WeeklyHours      float64
	WorkingDays      int
}

// UpdateAvailability validates and persists a caregiver's weekly schedule
// together with their time-off list. The schedule is only written when it
// passes validation; the time-off list is stored as given.
func UpdateAvailability(
	ctx context.Context,
	store CaregiverStore,
	logger *zap.Logger,
	caregiverID string,
	schedule *availability.WeekSchedule,
	timeOff []model.TimeOffPeriod,
) (*UpdateAvailabilityResult, error) {
	logger.Debug("Starting updateAvailability", zap.String("caregiver_id", caregiverID))

	result := &UpdateAvailabilityResult{
		CaregiverID: caregiverID,
		WeeklyHours: schedule.TotalWeeklyHours(),
		WorkingDays: schedule.WorkingDayCount(),
	}

	// Step 1: Validate the schedule
	validationErrors := schedule.Validate()
	if len(validationErrors) > 0 {
		logger.Info("Schedule failed validation",
			zap.String("caregiver_id", caregiverID),
			zap.Strings("errors", validationErrors))
		result.ValidationErrors = validationErrors
		return result, nil
	}

	// Step 2: Persist
	update := careapi.AvailabilityUpdate{
		Availability: schedule.Serialize(),
		TimeOff:      careapi.TimeOffToWire(timeOff),
	}

	if err := store.UpdateCaregiverAvailability(ctx, caregiverID, update); err != nil {
		return nil, fmt.Errorf("failed to save availability: %w", err)
	}

	result.Saved = true

	logger.Info("Availability saved",
		zap.String("caregiver_id", caregiverID),
		zap.Float64("weekly_hours", result.WeeklyHours),
		zap.Int("working_days", result.WorkingDays))

	return result, nil
}
