package careapi

import (
	"context"
	"fmt"
)

// GetVisit retrieves a single visit.
func (c *Client) GetVisit(ctx context.Context, visitID string) (*VisitRecord, error) {
	var record VisitRecord
	if err := c.get(ctx, "/api/visits/"+visitID, &record); err != nil {
		return nil, fmt.Errorf("failed to get visit %s: %w", visitID, err)
	}
	return &record, nil
}

// ListUnscheduledVisits retrieves visits that the server-side scheduler has
// not been able to assign, for manual scheduling.
func (c *Client) ListUnscheduledVisits(ctx context.Context) ([]VisitRecord, error) {
	var records []VisitRecord
	if err := c.get(ctx, "/api/visits/unscheduled", &records); err != nil {
		return nil, fmt.Errorf("failed to list unscheduled visits: %w", err)
	}
	return records, nil
}

// ListAvailableCaregivers retrieves the backend's candidate caregivers for a
// visit. The returned order is the backend's; ranking happens client-side.
func (c *Client) ListAvailableCaregivers(ctx context.Context, visitID string) ([]CandidateSummary, error) {
	var candidates []CandidateSummary
	if err := c.get(ctx, "/api/visits/"+visitID+"/available-caregivers", &candidates); err != nil {
		return nil, fmt.Errorf("failed to list available caregivers for visit %s: %w", visitID, err)
	}
	return candidates, nil
}

// GetCareRecipient retrieves a care recipient.
func (c *Client) GetCareRecipient(ctx context.Context, recipientID string) (*RecipientRecord, error) {
	var record RecipientRecord
	if err := c.get(ctx, "/api/recipients/"+recipientID, &record); err != nil {
		return nil, fmt.Errorf("failed to get care recipient %s: %w", recipientID, err)
	}
	return &record, nil
}
