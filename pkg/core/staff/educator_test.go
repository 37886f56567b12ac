package staff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brightfuture/youth-center/pkg/core/model"
)

func TestNewEducator_Defaults(t *testing.T) {
	e := NewEducator("E001", "John Davis", "mathematics")

	assert.Equal(t, "E001", e.ID())
	assert.Equal(t, model.RoleEducator, e.Role())
	assert.Equal(t, "mathematics", e.Subject())
	assert.Equal(t, model.LevelBachelors, e.EducationLevel())
	assert.True(t, e.VerifyCertification())
}

func TestEducator_DisplayInfoAndDuty(t *testing.T) {
	e := NewEducator("E001", "John Davis", "mathematics", WithEducationLevel(model.LevelMasters))

	assert.Equal(t,
		"ID: E001 | Name: John Davis | Role: Educator | Subject: mathematics | Education: Master's",
		e.DisplayInfo())
	assert.Equal(t, "John Davis is teaching mathematics to youth.", e.PerformDuty())
}

func TestEducator_ScheduleConflict(t *testing.T) {
	e := NewEducator("E001", "John Davis", "mathematics")

	booked, err := e.Schedule("2024-03-15", "09:00")
	require.NoError(t, err)
	assert.True(t, booked)

	booked, err = e.Schedule("2024-03-15", "09:00")
	assert.False(t, booked)
	var conflict *ScheduleConflictError
	assert.ErrorAs(t, err, &conflict)
}

func TestEducator_ExpiredCertification(t *testing.T) {
	e := NewEducator("E001", "John Davis", "science", WithEducatorCertExpiry("2020-12-31"))

	assert.False(t, e.VerifyCertification())
	assert.Equal(t, "Teaching certification in science, expires: 2020-12-31", e.CertificationDetails())
}

func TestEducator_ThresholdBoundary(t *testing.T) {
	// The threshold itself is not strictly after the threshold
	onThreshold := NewEducator("E001", "John Davis", "arts", WithEducatorCertExpiry("2023-01-01"))
	assert.False(t, onThreshold.VerifyCertification())

	justAfter := NewEducator("E002", "Ann Lee", "arts", WithEducatorCertExpiry("2023-01-02"))
	assert.True(t, justAfter.VerifyCertification())
}
