package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "care_admin_config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

const validConfig = `
careApiBaseURL: https://api.example.org
careApiTokenURL: https://auth.example.org/token
careApiClientID: careadmin
careApiClientSecret: secret
scheduleSheetID: sheet-123
scheduleTab: Schedule
gmailUserID: me
gmailSender: rota@example.org
`

func TestLoadFromPath_ValidConfig(t *testing.T) {
	path := writeConfig(t, validConfig)

	cfg, err := LoadFromPath(path)

	require.NoError(t, err)
	assert.Equal(t, "https://api.example.org", cfg.CareAPIBaseURL)
	assert.Equal(t, "sheet-123", cfg.ScheduleSheetID)
	assert.Empty(t, cfg.Blackouts)
}

func TestLoadFromPath_BlackoutsParsed(t *testing.T) {
	path := writeConfig(t, validConfig+`
blackouts:
  - rrule: "FREQ=YEARLY;BYMONTH=12;BYMONTHDAY=25"
    reason: Christmas Day
`)

	cfg, err := LoadFromPath(path)

	require.NoError(t, err)
	require.Len(t, cfg.Blackouts, 1)
	assert.Equal(t, "Christmas Day", cfg.Blackouts[0].Reason)
}

func TestLoadFromPath_MissingRequiredField(t *testing.T) {
	path := writeConfig(t, `
careApiBaseURL: https://api.example.org
`)

	_, err := LoadFromPath(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestLoadFromPath_InvalidBaseURL(t *testing.T) {
	path := writeConfig(t, `
careApiBaseURL: not-a-url
careApiTokenURL: https://auth.example.org/token
careApiClientID: careadmin
careApiClientSecret: secret
scheduleSheetID: sheet-123
gmailUserID: me
`)

	_, err := LoadFromPath(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestLoadFromPath_InvalidBlackoutRRule(t *testing.T) {
	path := writeConfig(t, validConfig+`
blackouts:
  - rrule: "FREQ=SOMETIMES"
`)

	_, err := LoadFromPath(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid rrule in blackouts[0]")
}

func TestLoadFromPath_MalformedYAML(t *testing.T) {
	path := writeConfig(t, "careApiBaseURL: [unterminated")

	_, err := LoadFromPath(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}
