package sheetsclient

import (
	"fmt"

	"github.com/sundialcare/careadmin/internal/config"
)

const defaultScheduleTab = "Schedule"

// PublishSchedule overwrites the configured schedule tab with the given rows.
// The first row is expected to be a header; formatting is left to the sheet.
func (c *Client) PublishSchedule(cfg *config.Config, rows [][]interface{}) error {
	tab := cfg.ScheduleTab
	if tab == "" {
		tab = defaultScheduleTab
	}

	// Clear first so a shorter schedule doesn't leave stale rows behind
	if err := c.ClearRange(cfg.ScheduleSheetID, tab); err != nil {
		return fmt.Errorf("failed to clear schedule tab: %w", err)
	}

	if err := c.UpdateValues(cfg.ScheduleSheetID, tab, rows); err != nil {
		return fmt.Errorf("failed to write schedule rows: %w", err)
	}

	return nil
}
