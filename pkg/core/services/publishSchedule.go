package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/sundialcare/careadmin/internal/config"
)

// ScheduleSheetWriter defines the sheet operations needed to publish a
// schedule
type ScheduleSheetWriter interface {
	PublishSchedule(cfg *config.Config, rows [][]interface{}) error
}

// PublishedSchedule summarizes what was written to the sheet
type PublishedSchedule struct {
	CaregiverName string
	RowCount      int
}

// PublishSchedule expands a caregiver's schedule over [from, to] and writes it
// to the configured Google Sheet, one row per scheduled day plus a header.
// Excluded days are written too so office staff can see why a date is missing.
func PublishSchedule(
	ctx context.Context,
	store CaregiverReader,
	sheetWriter ScheduleSheetWriter,
	cfg *config.Config,
	logger *zap.Logger,
	caregiverID string,
	from, to time.Time,
) (*PublishedSchedule, error) {
	logger.Debug("Starting publishSchedule", zap.String("caregiver_id", caregiverID))

	preview, err := PreviewSchedule(ctx, store, cfg, logger, caregiverID, from, to)
	if err != nil {
		return nil, err
	}

	rows := buildScheduleRows(preview)

	if err := sheetWriter.PublishSchedule(cfg, rows); err != nil {
		return nil, fmt.Errorf("failed to publish schedule: %w", err)
	}

	logger.Info("Schedule published",
		zap.String("caregiver_id", caregiverID),
		zap.String("caregiver_name", preview.Caregiver.Name),
		zap.Int("row_count", len(rows)))

	return &PublishedSchedule{
		CaregiverName: preview.Caregiver.Name,
		RowCount:      len(rows),
	}, nil
}

// buildScheduleRows converts a preview into sheet rows. The first row is the
// header; dates are formatted for reading, not parsing.
func buildScheduleRows(preview *SchedulePreview) [][]interface{} {
	rows := make([][]interface{}, 0, len(preview.Days)+len(preview.Excluded)+1)

	rows = append(rows, []interface{}{"Date", "Day", "Hours", "Slots", "Notes"})

	for _, day := range preview.Days {
		rows = append(rows, []interface{}{
			day.Date.Format("Mon Jan 02 2006"),
			day.Day.String(),
			fmt.Sprintf("%.1f", day.Hours),
			formatSlots(day.Slots),
			"",
		})
	}

	for _, excluded := range preview.Excluded {
		rows = append(rows, []interface{}{
			excluded.Date.Format("Mon Jan 02 2006"),
			excluded.Day.String(),
			"",
			"",
			"Unavailable: " + excluded.Reason,
		})
	}

	return rows
}
