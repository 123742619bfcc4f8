package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sundialcare/careadmin/pkg/clients/careapi"
	"github.com/sundialcare/careadmin/pkg/core/availability"
)

func TestAddTimeOff_AppendsAndPersists(t *testing.T) {
	store := &mockCaregiverStore{
		record: &careapi.CaregiverRecord{
			ID: "cg1",
			Availability: []availability.DaySlots{
				{DayOfWeek: "Monday", Slots: []availability.TimeSlot{{Start: "09:00", End: "17:00"}}},
			},
			TimeOff: []careapi.TimeOffEntry{
				{ID: "existing", StartDate: "2025-01-01", EndDate: "2025-01-02"},
			},
		},
	}
	logger := zap.NewNop()

	period, err := AddTimeOff(context.Background(), store, logger, "cg1", "2025-06-10", "2025-06-12", "Holiday")
	require.NoError(t, err)

	// A fresh ID should have been generated
	_, parseErr := uuid.Parse(period.ID)
	assert.NoError(t, parseErr)
	assert.Equal(t, "2025-06-10", period.StartDate)
	assert.Equal(t, "2025-06-12", period.EndDate)
	assert.Equal(t, "Holiday", period.Reason)

	require.Len(t, store.updates, 1)
	update := store.updates[0]

	// Existing availability and time off must survive the append
	require.Len(t, update.Availability, 1)
	require.Len(t, update.TimeOff, 2)
	assert.Equal(t, "existing", update.TimeOff[0].ID)
	assert.Equal(t, period.ID, update.TimeOff[1].ID)
}

func TestAddTimeOff_InvalidDateRejected(t *testing.T) {
	store := &mockCaregiverStore{record: &careapi.CaregiverRecord{ID: "cg1"}}
	logger := zap.NewNop()

	_, err := AddTimeOff(context.Background(), store, logger, "cg1", "10/06/2025", "2025-06-12", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid start date")
	assert.Empty(t, store.updates)
}

func TestAddTimeOff_InvertedDatesStored(t *testing.T) {
	// Ordering is not checked; the backend stores inverted periods as-is
	store := &mockCaregiverStore{record: &careapi.CaregiverRecord{ID: "cg1"}}
	logger := zap.NewNop()

	period, err := AddTimeOff(context.Background(), store, logger, "cg1", "2025-06-12", "2025-06-10", "")
	require.NoError(t, err)
	assert.Equal(t, "2025-06-12", period.StartDate)
	assert.Equal(t, "2025-06-10", period.EndDate)
	require.Len(t, store.updates, 1)
}

func TestRemoveTimeOff_RemovesMatchingEntry(t *testing.T) {
	store := &mockCaregiverStore{
		record: &careapi.CaregiverRecord{
			ID: "cg1",
			TimeOff: []careapi.TimeOffEntry{
				{ID: "t1", StartDate: "2025-01-01", EndDate: "2025-01-02"},
				{ID: "t2", StartDate: "2025-02-01", EndDate: "2025-02-02"},
			},
		},
	}
	logger := zap.NewNop()

	err := RemoveTimeOff(context.Background(), store, logger, "cg1", "t1")
	require.NoError(t, err)

	require.Len(t, store.updates, 1)
	update := store.updates[0]
	require.Len(t, update.TimeOff, 1)
	assert.Equal(t, "t2", update.TimeOff[0].ID)
}

func TestRemoveTimeOff_NotFound(t *testing.T) {
	store := &mockCaregiverStore{
		record: &careapi.CaregiverRecord{ID: "cg1"},
	}
	logger := zap.NewNop()

	err := RemoveTimeOff(context.Background(), store, logger, "cg1", "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "time off period not found")
	assert.Empty(t, store.updates)
}
