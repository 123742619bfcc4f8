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
)

type mockEmailSender struct {
	to      string
	subject string
	body    string
	err     error
}

func (m *mockEmailSender) SendEmail(to, subject, body string) error {
	if m.err != nil {
		return m.err
	}
	m.to = to
	m.subject = subject
	m.body = body
	return nil
}

func TestSendScheduleNotice_SendsToCaregiver(t *testing.T) {
	store := &mockCaregiverStore{record: previewRecord()}
	sender := &mockEmailSender{}
	logger := zap.NewNop()

	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	err := SendScheduleNotice(context.Background(), store, sender, &config.Config{}, logger, "cg1", from, to)
	require.NoError(t, err)

	assert.Equal(t, "alice@example.com", sender.to)
	assert.Contains(t, sender.subject, "Your schedule")
	assert.Contains(t, sender.body, "Hi Alice Smith")
	assert.Contains(t, sender.body, "Mon Jun 02 2025: 09:00-17:00 (8.0 hours)")
	assert.Contains(t, sender.body, "Days off in this period:")
	assert.Contains(t, sender.body, "Dentist")
}

func TestSendScheduleNotice_NoEmailAddress(t *testing.T) {
	record := previewRecord()
	record.Email = ""
	store := &mockCaregiverStore{record: record}
	sender := &mockEmailSender{}
	logger := zap.NewNop()

	err := SendScheduleNotice(context.Background(), store, sender, &config.Config{}, logger, "cg1",
		time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no email address")
	assert.Empty(t, sender.to)
}

func TestSendScheduleNotice_SendErrorPropagated(t *testing.T) {
	store := &mockCaregiverStore{record: previewRecord()}
	sender := &mockEmailSender{err: errors.New("rate limited")}
	logger := zap.NewNop()

	err := SendScheduleNotice(context.Background(), store, sender, &config.Config{}, logger, "cg1",
		time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to send schedule notice")
}
