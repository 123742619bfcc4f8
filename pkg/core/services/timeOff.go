package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sundialcare/careadmin/pkg/clients/careapi"
	"github.com/sundialcare/careadmin/pkg/core/model"
)

const timeOffDateLayout = "2006-01-02"

// AddTimeOff appends a time-off period to a caregiver's record and persists
// it alongside their existing availability. Dates must be YYYY-MM-DD; their
// ordering is not checked, matching the backend (an inverted period is stored
// but never covers any date).
func AddTimeOff(
	ctx context.Context,
	store CaregiverStore,
	logger *zap.Logger,
	caregiverID string,
	startDate, endDate, reason string,
) (*model.TimeOffPeriod, error) {
	logger.Debug("Starting addTimeOff",
		zap.String("caregiver_id", caregiverID),
		zap.String("start", startDate),
		zap.String("end", endDate))

	if _, err := time.Parse(timeOffDateLayout, startDate); err != nil {
		return nil, fmt.Errorf("invalid start date %q: %w", startDate, err)
	}
	if _, err := time.Parse(timeOffDateLayout, endDate); err != nil {
		return nil, fmt.Errorf("invalid end date %q: %w", endDate, err)
	}

	record, err := store.GetCaregiver(ctx, caregiverID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch caregiver: %w", err)
	}

	period := model.TimeOffPeriod{
		ID:        uuid.New().String(),
		StartDate: startDate,
		EndDate:   endDate,
		Reason:    reason,
	}

	update := careapi.AvailabilityUpdate{
		Availability: record.Availability,
		TimeOff:      append(record.TimeOff, careapi.TimeOffEntry{
			ID:        period.ID,
			StartDate: period.StartDate,
			EndDate:   period.EndDate,
			Reason:    period.Reason,
		}),
	}

	if err := store.UpdateCaregiverAvailability(ctx, caregiverID, update); err != nil {
		return nil, fmt.Errorf("failed to save time off: %w", err)
	}

	logger.Info("Time off added",
		zap.String("caregiver_id", caregiverID),
		zap.String("time_off_id", period.ID))

	return &period, nil
}

// RemoveTimeOff deletes a time-off period from a caregiver's record by ID
func RemoveTimeOff(
	ctx context.Context,
	store CaregiverStore,
	logger *zap.Logger,
	caregiverID string,
	timeOffID string,
) error {
	logger.Debug("Starting removeTimeOff",
		zap.String("caregiver_id", caregiverID),
		zap.String("time_off_id", timeOffID))

	record, err := store.GetCaregiver(ctx, caregiverID)
	if err != nil {
		return fmt.Errorf("failed to fetch caregiver: %w", err)
	}

	remaining := make([]careapi.TimeOffEntry, 0, len(record.TimeOff))
	found := false
	for _, entry := range record.TimeOff {
		if entry.ID == timeOffID {
			found = true
			continue
		}
		remaining = append(remaining, entry)
	}

	if !found {
		return fmt.Errorf("time off period not found: %s", timeOffID)
	}

	update := careapi.AvailabilityUpdate{
		Availability: record.Availability,
		TimeOff:      remaining,
	}

	if err := store.UpdateCaregiverAvailability(ctx, caregiverID, update); err != nil {
		return fmt.Errorf("failed to save time off: %w", err)
	}

	logger.Info("Time off removed",
		zap.String("caregiver_id", caregiverID),
		zap.String("time_off_id", timeOffID))

	return nil
}
