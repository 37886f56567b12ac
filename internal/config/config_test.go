package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brightfuture/youth-center/pkg/core/model"
)

func TestValidate_ValidConfig(t *testing.T) {
	cfg := &Config{
		CenterName:     "BrightFuture Youth Center",
		SessionPattern: "FREQ=WEEKLY;BYDAY=SA",
		SessionTimes:   []string{"10:00", "14:00"},
		SeedRoster: []SeedStaff{
			{
				Role:           model.RoleCounselor,
				Name:           "Emma Smith",
				Specialization: "behavioral",
				CaseLoad:       5,
			},
			{
				Role:         model.RoleVolunteer,
				Name:         "Sara Johnson",
				Availability: model.AvailabilityWeekends,
			},
		},
	}

	err := Validate(cfg)
	assert.NoError(t, err)
}

func TestValidate_MinimalConfig(t *testing.T) {
	cfg := &Config{
		CenterName:     "BrightFuture Youth Center",
		SessionPattern: "FREQ=WEEKLY;BYDAY=SA",
	}

	err := Validate(cfg)
	assert.NoError(t, err)
}

func TestValidate_MissingRequiredField(t *testing.T) {
	cfg := &Config{
		// Missing CenterName
		SessionPattern: "FREQ=WEEKLY;BYDAY=SA",
	}

	err := Validate(cfg)
	assert.Error(t, err)
}

func TestValidate_InvalidRRule(t *testing.T) {
	cfg := &Config{
		CenterName:     "BrightFuture Youth Center",
		SessionPattern: "every saturday",
	}

	err := Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sessionPattern")
}

func TestValidate_SeedRosterFailures(t *testing.T) {
	tests := []struct {
		name string
		seed SeedStaff
	}{
		{"unknown role", SeedStaff{Role: "Janitor", Name: "Bob"}},
		{"counselor without specialization", SeedStaff{Role: model.RoleCounselor, Name: "Emma Smith"}},
		{"case load out of range", SeedStaff{Role: model.RoleCounselor, Name: "Emma Smith", Specialization: "youth", CaseLoad: 30}},
		{"volunteer without availability", SeedStaff{Role: model.RoleVolunteer, Name: "Sara Johnson"}},
		{"malformed expiry", SeedStaff{Role: model.RoleEducator, Name: "John Davis", Subject: "arts", CertificationExpiry: "next year"}},
		{"invalid education level", SeedStaff{Role: model.RoleEducator, Name: "John Davis", Subject: "arts", EducationLevel: "Doctorate"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				CenterName:     "BrightFuture Youth Center",
				SessionPattern: "FREQ=WEEKLY;BYDAY=SA",
				SeedRoster:     []SeedStaff{tt.seed},
			}
			assert.Error(t, Validate(cfg))
		})
	}
}

func TestLoadFromPath(t *testing.T) {
	content := `centerName: BrightFuture Youth Center
sessionPattern: FREQ=WEEKLY;BYDAY=SA
sessionTimes:
  - "10:00"
  - "14:00"
seedRoster:
  - role: Counselor
    name: Emma Smith
    specialization: behavioral
    caseLoad: 5
  - role: Educator
    name: John Davis
    subject: mathematics
    educationLevel: Master's
  - role: Volunteer
    name: Sara Johnson
    availability: weekends
`

	path := filepath.Join(t.TempDir(), "youth_center_config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)

	assert.Equal(t, "BrightFuture Youth Center", cfg.CenterName)
	assert.Equal(t, []string{"10:00", "14:00"}, cfg.SessionTimes)
	require.Len(t, cfg.SeedRoster, 3)
	assert.Equal(t, model.LevelMasters, cfg.SeedRoster[1].EducationLevel)
	assert.Equal(t, model.AvailabilityWeekends, cfg.SeedRoster[2].Availability)
}

func TestLoadFromPath_MissingFile(t *testing.T) {
	_, err := LoadFromPath(filepath.Join(t.TempDir(), "does_not_exist.yaml"))
	assert.Error(t, err)
}

func TestLoadFromPath_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("centerName: [unclosed"), 0644))

	_, err := LoadFromPath(path)
	assert.Error(t, err)
}
