package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/sundialcare/careadmin/internal/config"
)

// EmailSender defines the email operations needed to send schedule notices
type EmailSender interface {
	SendEmail(to, subject, body string) error
}

// SendScheduleNotice emails a caregiver their expanded schedule for the given
// range. Caregivers with no email address on record are an error rather than
// a silent skip.
func SendScheduleNotice(
	ctx context.Context,
	store CaregiverReader,
	mailer EmailSender,
	cfg *config.Config,
	logger *zap.Logger,
	caregiverID string,
	from, to time.Time,
) error {
	logger.Debug("Starting sendScheduleNotice", zap.String("caregiver_id", caregiverID))

	preview, err := PreviewSchedule(ctx, store, cfg, logger, caregiverID, from, to)
	if err != nil {
		return err
	}

	if preview.Caregiver.Email == "" {
		return fmt.Errorf("caregiver %s has no email address on record", caregiverID)
	}

	subject := fmt.Sprintf("Your schedule: %s to %s",
		from.Format("Jan 02"), to.Format("Jan 02 2006"))
	body := buildNoticeBody(preview)

	if err := mailer.SendEmail(preview.Caregiver.Email, subject, body); err != nil {
		return fmt.Errorf("failed to send schedule notice: %w", err)
	}

	logger.Info("Schedule notice sent",
		zap.String("caregiver_id", caregiverID),
		zap.String("email", preview.Caregiver.Email),
		zap.Int("scheduled_days", len(preview.Days)))

	return nil
}

// buildNoticeBody renders the schedule as plain text, one line per day
func buildNoticeBody(preview *SchedulePreview) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Hi %s,\n\n", preview.Caregiver.Name))
	sb.WriteString(fmt.Sprintf("Here is your schedule from %s to %s:\n\n",
		preview.From.Format("Mon Jan 02 2006"), preview.To.Format("Mon Jan 02 2006")))

	if len(preview.Days) == 0 {
		sb.WriteString("No working days in this period.\n")
	}

	for _, day := range preview.Days {
		sb.WriteString(fmt.Sprintf("%s: %s (%.1f hours)\n",
			day.Date.Format("Mon Jan 02 2006"), formatSlots(day.Slots), day.Hours))
	}

	if len(preview.Excluded) > 0 {
		sb.WriteString("\nDays off in this period:\n")
		for _, excluded := range preview.Excluded {
			sb.WriteString(fmt.Sprintf("%s: %s\n",
				excluded.Date.Format("Mon Jan 02 2006"), excluded.Reason))
		}
	}

	sb.WriteString("\nIf anything looks wrong, please contact the office.\n")

	return sb.String()
}
