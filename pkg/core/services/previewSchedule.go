package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/sundialcare/careadmin/internal/config"
	"github.com/sundialcare/careadmin/pkg/clients/careapi"
	"github.com/sundialcare/careadmin/pkg/core/availability"
	"github.com/sundialcare/careadmin/pkg/core/model"
)

// CaregiverReader defines the backend operations needed to read a caregiver's
// stored availability
type CaregiverReader interface {
	GetCaregiver(ctx context.Context, caregiverID string) (*careapi.CaregiverRecord, error)
}

// SchedulePreview is a caregiver's recurring schedule expanded into concrete
// dated entries over a range, with time off and configured blackouts applied.
type SchedulePreview struct {
	Caregiver   model.Caregiver
	From        time.Time
	To          time.Time
	WeeklyHours float64
	WorkingDays int
	UnknownDays []string
	Days        []availability.ScheduledDay
	Excluded    []availability.ExcludedDay
}

// PreviewSchedule fetches a caregiver's stored availability and expands it
// into dated entries over [from, to]. Stored day entries with unrecognized
// day names are dropped with a warning rather than failing the preview.
func PreviewSchedule(
	ctx context.Context,
	store CaregiverReader,
	cfg *config.Config,
	logger *zap.Logger,
	caregiverID string,
	from, to time.Time,
) (*SchedulePreview, error) {
	logger.Debug("Starting previewSchedule",
		zap.String("caregiver_id", caregiverID),
		zap.Time("from", from),
		zap.Time("to", to))

	// Step 1: Fetch the caregiver record
	record, err := store.GetCaregiver(ctx, caregiverID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch caregiver: %w", err)
	}

	// Step 2: Load the stored schedule
	schedule, unknown := availability.Load(record.Availability)

	unknownDays := make([]string, 0, len(unknown))
	for _, entry := range unknown {
		unknownDays = append(unknownDays, entry.DayOfWeek)
		logger.Warn("Dropping unrecognized day in stored availability",
			zap.String("caregiver_id", caregiverID),
			zap.String("day", entry.DayOfWeek))
	}

	// Step 3: Expand over the requested range
	blackouts, err := buildBlackouts(cfg)
	if err != nil {
		return nil, err
	}

	days, excluded := schedule.Expand(availability.ExpandOptions{
		From:      from,
		To:        to,
		TimeOff:   careapi.TimeOffFromWire(record.TimeOff),
		Blackouts: blackouts,
	})

	logger.Info("Schedule preview built",
		zap.String("caregiver_id", caregiverID),
		zap.Int("scheduled_days", len(days)),
		zap.Int("excluded_days", len(excluded)))

	return &SchedulePreview{
		Caregiver:   record.ToCaregiver(),
		From:        from,
		To:          to,
		WeeklyHours: schedule.TotalWeeklyHours(),
		WorkingDays: schedule.WorkingDayCount(),
		UnknownDays: unknownDays,
		Days:        days,
		Excluded:    excluded,
	}, nil
}
