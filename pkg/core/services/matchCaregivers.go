package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/sundialcare/careadmin/pkg/clients/careapi"
	"github.com/sundialcare/careadmin/pkg/core/matching"
	"github.com/sundialcare/careadmin/pkg/core/model"
)

// MatchStore defines the backend operations needed to rank candidates for a
// visit
type MatchStore interface {
	GetVisit(ctx context.Context, visitID string) (*careapi.VisitRecord, error)
	GetCareRecipient(ctx context.Context, recipientID string) (*careapi.RecipientRecord, error)
	ListAvailableCaregivers(ctx context.Context, visitID string) ([]careapi.CandidateSummary, error)
}

// MatchCaregiversResult contains the ranked candidates for display
type MatchCaregiversResult struct {
	Visit     model.Visit
	Recipient model.CareRecipient
	Matches   []matching.MatchResult
}

// MatchCaregivers fetches a visit, its care recipient, and the backend's
// candidate caregivers, then ranks the candidates by match score. The backend
// decides who is a candidate at all (availability, distance cutoffs); this
// service only orders them.
func MatchCaregivers(
	ctx context.Context,
	store MatchStore,
	logger *zap.Logger,
	visitID string,
) (*MatchCaregiversResult, error) {
	logger.Debug("Starting matchCaregivers", zap.String("visit_id", visitID))

	// Step 1: Fetch the visit
	visitRecord, err := store.GetVisit(ctx, visitID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch visit: %w", err)
	}
	visit := visitRecord.ToVisit()

	logger.Debug("Found visit",
		zap.String("id", visit.ID),
		zap.Strings("requirements", visit.Requirements),
		zap.Bool("double_handed", visit.DoubleHanded))

	// Step 2: Fetch the care recipient for their gender preference
	recipientRecord, err := store.GetCareRecipient(ctx, visit.RecipientID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch care recipient: %w", err)
	}
	recipient := recipientRecord.ToRecipient()

	// Step 3: Fetch candidates
	logger.Debug("Fetching available caregivers")
	candidates, err := store.ListAvailableCaregivers(ctx, visitID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch available caregivers: %w", err)
	}
	logger.Debug("Found candidates", zap.Int("count", len(candidates)))

	caregivers := make([]model.Caregiver, len(candidates))
	for i, candidate := range candidates {
		caregivers[i] = candidate.ToCaregiver()
	}

	// Step 4: Rank
	matches := matching.Rank(caregivers, visit, recipient.GenderPreference)

	logger.Info("Candidates ranked",
		zap.String("visit_id", visitID),
		zap.Int("candidate_count", len(matches)))

	return &MatchCaregiversResult{
		Visit:     visit,
		Recipient: recipient,
		Matches:   matches,
	}, nil
}
