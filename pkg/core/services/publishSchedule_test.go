package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sundialcare/careadmin/internal/config"
	"github.com/sundialcare/careadmin/pkg/core/availability"
	"github.com/sundialcare/careadmin/pkg/core/model"
)

type mockSheetWriter struct {
	rows [][]interface{}
	err  error
}

func (m *mockSheetWriter) PublishSchedule(cfg *config.Config, rows [][]interface{}) error {
	if m.err != nil {
		return m.err
	}
	m.rows = rows
	return nil
}

func TestBuildScheduleRows(t *testing.T) {
	preview := &SchedulePreview{
		Caregiver: model.Caregiver{Name: "Alice Smith"},
		Days: []availability.ScheduledDay{
			{
				Date:  time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
				Day:   availability.Monday,
				Slots: []availability.TimeSlot{{Start: "09:00", End: "17:00"}},
				Hours: 8.0,
			},
		},
		Excluded: []availability.ExcludedDay{
			{
				Date:   time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC),
				Day:    availability.Monday,
				Reason: "Dentist",
			},
		},
	}

	rows := buildScheduleRows(preview)

	require.Len(t, rows, 3)
	assert.Equal(t, []interface{}{"Date", "Day", "Hours", "Slots", "Notes"}, rows[0])
	assert.Equal(t, []interface{}{"Mon Jun 02 2025", "Monday", "8.0", "09:00-17:00", ""}, rows[1])
	assert.Equal(t, []interface{}{"Mon Jun 09 2025", "Monday", "", "", "Unavailable: Dentist"}, rows[2])
}

func TestPublishSchedule_WritesRows(t *testing.T) {
	store := &mockCaregiverStore{record: previewRecord()}
	writer := &mockSheetWriter{}
	logger := zap.NewNop()

	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	published, err := PublishSchedule(context.Background(), store, writer, &config.Config{}, logger, "cg1", from, to)
	require.NoError(t, err)

	assert.Equal(t, "Alice Smith", published.CaregiverName)
	// Header + 3 scheduled days + 1 time off day
	assert.Equal(t, 5, published.RowCount)
	require.Len(t, writer.rows, 5)
}

func TestPublishSchedule_WriterErrorPropagated(t *testing.T) {
	store := &mockCaregiverStore{record: previewRecord()}
	writer := &mockSheetWriter{err: errors.New("sheet locked")}
	logger := zap.NewNop()

	_, err := PublishSchedule(context.Background(), store, writer, &config.Config{}, logger, "cg1",
		time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to publish schedule")
}
