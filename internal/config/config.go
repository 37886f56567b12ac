package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"

	"github.com/brightfuture/youth-center/pkg/core/model"
)

// SeedStaff describes one staff record created at startup.
type SeedStaff struct {
	Role                model.Role                `yaml:"role" validate:"required,oneof=Counselor Educator Volunteer"`
	Name                string                    `yaml:"name" validate:"required"`
	Specialization      string                    `yaml:"specialization,omitempty" validate:"required_if=Role Counselor"`
	CaseLoad            int                       `yaml:"caseLoad,omitempty" validate:"min=0,max=20"`
	Subject             string                    `yaml:"subject,omitempty" validate:"required_if=Role Educator"`
	EducationLevel      model.EducationLevel      `yaml:"educationLevel,omitempty"`
	Availability        model.AvailabilityPattern `yaml:"availability,omitempty" validate:"required_if=Role Volunteer"`
	CertificationExpiry string                    `yaml:"certificationExpiry,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// Config represents the application configuration
type Config struct {
	CenterName     string      `yaml:"centerName" validate:"required"`
	SessionPattern string      `yaml:"sessionPattern" validate:"required"`
	SessionTimes   []string    `yaml:"sessionTimes,omitempty" validate:"dive,datetime=15:04"`
	SeedRoster     []SeedStaff `yaml:"seedRoster,omitempty" validate:"dive"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Load loads and validates the configuration from youth_center_config.yaml
// It looks for the config file in the current directory first, then in the user's home directory
func Load() (*Config, error) {
	configPath, err := findConfigFile()
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

// Validate validates the configuration struct and checks the session rrule syntax
func Validate(cfg *Config) error {
	// Run struct validation
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	// Validate the session pattern rrule syntax
	if _, err := rrule.StrToRRule(cfg.SessionPattern); err != nil {
		return fmt.Errorf("invalid rrule in sessionPattern: %w", err)
	}

	// Education levels carry apostrophes, which the oneof tag syntax
	// cannot express, so they are checked here
	for i, seed := range cfg.SeedRoster {
		if seed.EducationLevel != "" && !seed.EducationLevel.IsValid() {
			return fmt.Errorf("invalid education level in seedRoster[%d]: %q", i, seed.EducationLevel)
		}
	}

	return nil
}

// findConfigFile searches for youth_center_config.yaml in current directory and home directory
func findConfigFile() (string, error) {
	configFileName := "youth_center_config.yaml"

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
