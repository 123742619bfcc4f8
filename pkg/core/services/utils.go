package services

import (
	"fmt"
	"strings"

	"github.com/teambition/rrule-go"

	"github.com/sundialcare/careadmin/internal/config"
	"github.com/sundialcare/careadmin/pkg/core/availability"
)

// buildBlackouts parses the configured blackout rules into expansion filters.
// Config validation has already checked the rrule syntax, so a parse failure
// here means the config changed underneath us.
func buildBlackouts(cfg *config.Config) ([]availability.Blackout, error) {
	blackouts := make([]availability.Blackout, 0, len(cfg.Blackouts))
	for i, override := range cfg.Blackouts {
		rule, err := rrule.StrToRRule(override.RRule)
		if err != nil {
			return nil, fmt.Errorf("invalid rrule in blackouts[%d]: %w", i, err)
		}
		blackouts = append(blackouts, availability.Blackout{
			Rule:   rule,
			Reason: override.Reason,
		})
	}
	return blackouts, nil
}

// formatSlots renders a day's slots as "09:00-17:00, 18:00-20:00"
func formatSlots(slots []availability.TimeSlot) string {
	parts := make([]string, len(slots))
	for i, slot := range slots {
		parts[i] = slot.Start + "-" + slot.End
	}
	return strings.Join(parts, ", ")
}
