package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"
)

// BlackoutOverride defines an organization-wide recurring closure (public
// holidays, office closures). Schedule previews suppress availability on
// matching dates.
type BlackoutOverride struct {
	RRule  string `yaml:"rrule" validate:"required"`
	Reason string `yaml:"reason,omitempty"`
}

// Config represents the application configuration
type Config struct {
	// Scheduling backend (REST)
	CareAPIBaseURL      string `yaml:"careApiBaseURL" validate:"required,url"`
	CareAPITokenURL     string `yaml:"careApiTokenURL" validate:"required,url"`
	CareAPIClientID     string `yaml:"careApiClientID" validate:"required"`
	CareAPIClientSecret string `yaml:"careApiClientSecret" validate:"required"`

	// Google Sheets schedule export
	ScheduleSheetID string `yaml:"scheduleSheetID" validate:"required"`
	ScheduleTab     string `yaml:"scheduleTab,omitempty"`

	// Gmail schedule notices
	GmailUserID string `yaml:"gmailUserID" validate:"required"`
	GmailSender string `yaml:"gmailSender,omitempty"`

	Blackouts []BlackoutOverride `yaml:"blackouts,omitempty" validate:"dive"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Load loads and validates the configuration from care_admin_config.yaml
// It looks for the config file in the current directory first, then in the user's home directory
func Load() (*Config, error) {
	return LoadWithEnv("")
}

// LoadWithEnv loads the configuration with an environment infix.
// For example, env="test" will look for "care_admin_config.test.yaml".
func LoadWithEnv(env string) (*Config, error) {
	configPath, err := findConfigFile(env)
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration struct and checks rrule syntax
func Validate(cfg *Config) error {
	// Run struct validation
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	// Validate rrule syntax for each blackout
	for i, blackout := range cfg.Blackouts {
		if _, err := rrule.StrToRRule(blackout.RRule); err != nil {
			return fmt.Errorf("invalid rrule in blackouts[%d]: %w", i, err)
		}
	}

	return nil
}

// findConfigFile searches for care_admin_config.yaml in current directory and home directory
// If env is provided, it adds it as an infix (e.g., "care_admin_config.test.yaml")
func findConfigFile(env string) (string, error) {
	configFileName := "care_admin_config.yaml"
	if env != "" {
		configFileName = "care_admin_config." + env + ".yaml"
	}

	// Check current directory
	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	// Check home directory
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("config file not found in current directory or home directory")
}
