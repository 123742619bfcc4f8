package careapi

import (
	"context"
	"fmt"
)

// ListCaregivers retrieves all caregivers.
func (c *Client) ListCaregivers(ctx context.Context) ([]CaregiverRecord, error) {
	var records []CaregiverRecord
	if err := c.get(ctx, "/api/caregivers", &records); err != nil {
		return nil, fmt.Errorf("failed to list caregivers: %w", err)
	}
	return records, nil
}

// GetCaregiver retrieves a single caregiver record, including the
// availability day array and time-off list.
func (c *Client) GetCaregiver(ctx context.Context, caregiverID string) (*CaregiverRecord, error) {
	var record CaregiverRecord
	if err := c.get(ctx, "/api/caregivers/"+caregiverID, &record); err != nil {
		return nil, fmt.Errorf("failed to get caregiver %s: %w", caregiverID, err)
	}
	return &record, nil
}

// UpdateCaregiverAvailability persists an availability update. The caller is
// responsible for validating the schedule first; the backend stores what it
// is given.
func (c *Client) UpdateCaregiverAvailability(ctx context.Context, caregiverID string, update AvailabilityUpdate) error {
	if err := c.put(ctx, "/api/caregivers/"+caregiverID+"/availability", update, nil); err != nil {
		return fmt.Errorf("failed to update availability for caregiver %s: %w", caregiverID, err)
	}
	return nil
}
