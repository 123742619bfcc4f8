package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sundialcare/careadmin/pkg/clients/careapi"
	"github.com/sundialcare/careadmin/pkg/core/availability"
	"github.com/sundialcare/careadmin/pkg/core/model"
)

type mockCaregiverStore struct {
	record     *careapi.CaregiverRecord
	getErr     error
	updateErr  error
	updates    []careapi.AvailabilityUpdate
	updatedIDs []string
}

func (m *mockCaregiverStore) GetCaregiver(ctx context.Context, caregiverID string) (*careapi.CaregiverRecord, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.record, nil
}

func (m *mockCaregiverStore) UpdateCaregiverAvailability(ctx context.Context, caregiverID string, update careapi.AvailabilityUpdate) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.updatedIDs = append(m.updatedIDs, caregiverID)
	m.updates = append(m.updates, update)
	return nil
}

func TestUpdateAvailability_ValidScheduleSaved(t *testing.T) {
	store := &mockCaregiverStore{}
	logger := zap.NewNop()

	var schedule availability.WeekSchedule
	schedule.AddSlot(availability.Monday)
	schedule.AddSlot(availability.Wednesday)

	timeOff := []model.TimeOffPeriod{
		{ID: "t1", StartDate: "2025-06-10", EndDate: "2025-06-12", Reason: "Holiday"},
	}

	result, err := UpdateAvailability(context.Background(), store, logger, "cg1", &schedule, timeOff)
	require.NoError(t, err)

	assert.True(t, result.Saved)
	assert.Empty(t, result.ValidationErrors)
	assert.Equal(t, 16.0, result.WeeklyHours)
	assert.Equal(t, 2, result.WorkingDays)

	require.Len(t, store.updates, 1)
	assert.Equal(t, []string{"cg1"}, store.updatedIDs)

	update := store.updates[0]
	require.Len(t, update.Availability, 2)
	assert.Equal(t, "Monday", update.Availability[0].DayOfWeek)
	assert.Equal(t, "Wednesday", update.Availability[1].DayOfWeek)
	require.Len(t, update.TimeOff, 1)
	assert.Equal(t, "t1", update.TimeOff[0].ID)
}

func TestUpdateAvailability_InvalidScheduleNotSaved(t *testing.T) {
	store := &mockCaregiverStore{}
	logger := zap.NewNop()

	var schedule availability.WeekSchedule
	schedule.AddSlot(availability.Monday)
	schedule.UpdateSlot(availability.Monday, 0, availability.FieldStart, "18:00")

	result, err := UpdateAvailability(context.Background(), store, logger, "cg1", &schedule, nil)
	require.NoError(t, err)

	assert.False(t, result.Saved)
	require.Len(t, result.ValidationErrors, 1)
	assert.Equal(t, "Monday: slot 1 start time must be before end time", result.ValidationErrors[0])

	// Nothing should have been persisted
	assert.Empty(t, store.updates)
}

func TestUpdateAvailability_StoreErrorPropagated(t *testing.T) {
	store := &mockCaregiverStore{updateErr: errors.New("backend down")}
	logger := zap.NewNop()

	var schedule availability.WeekSchedule
	schedule.AddSlot(availability.Friday)

	result, err := UpdateAvailability(context.Background(), store, logger, "cg1", &schedule, nil)
	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "backend down")
}
