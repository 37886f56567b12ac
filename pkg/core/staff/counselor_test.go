package staff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brightfuture/youth-center/pkg/core/model"
)

func TestNewCounselor_Defaults(t *testing.T) {
	c := NewCounselor("C001", "Emma Smith", "behavioral")

	assert.Equal(t, "C001", c.ID())
	assert.Equal(t, "Emma Smith", c.Name())
	assert.Equal(t, model.RoleCounselor, c.Role())
	assert.Equal(t, "behavioral", c.Specialization())
	assert.Equal(t, 0, c.CaseLoad())
	assert.True(t, c.VerifyCertification(), "default expiry should be valid")
}

func TestCounselor_SetCaseLoad(t *testing.T) {
	tests := []struct {
		name     string
		initial  int
		set      int
		expected int
	}{
		{"min value", 5, 0, 0},
		{"max value", 5, 20, 20},
		{"mid value", 0, 12, 12},
		{"above max keeps previous", 5, 25, 5},
		{"below min keeps previous", 5, -1, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCounselor("C001", "Emma Smith", "behavioral", WithCaseLoad(tt.initial))
			c.SetCaseLoad(tt.set)
			assert.Equal(t, tt.expected, c.CaseLoad())
		})
	}
}

func TestCounselor_CaseLoadRoundTrip(t *testing.T) {
	c := NewCounselor("C001", "Emma Smith", "behavioral")

	for v := MinCaseLoad; v <= MaxCaseLoad; v++ {
		c.SetCaseLoad(v)
		assert.Equal(t, v, c.CaseLoad())
	}
}

func TestCounselor_WithCaseLoadOutOfRange(t *testing.T) {
	c := NewCounselor("C001", "Emma Smith", "behavioral", WithCaseLoad(25))
	assert.Equal(t, 0, c.CaseLoad(), "out-of-range construction option should leave the default")
}

func TestCounselor_DisplayInfoAndDuty(t *testing.T) {
	c := NewCounselor("C001", "Emma Smith", "behavioral", WithCaseLoad(5))

	assert.Equal(t,
		"ID: C001 | Name: Emma Smith | Role: Counselor | Specialization: behavioral | Case Load: 5",
		c.DisplayInfo())
	assert.Equal(t, "Emma Smith is providing behavioral counseling to youth.", c.PerformDuty())
}

func TestCounselor_ScheduleConflict(t *testing.T) {
	c := NewCounselor("C001", "Emma Smith", "behavioral")

	booked, err := c.Schedule("2024-03-15", "10:00")
	require.NoError(t, err)
	assert.True(t, booked)

	// Same slot again conflicts
	booked, err = c.Schedule("2024-03-15", "10:00")
	assert.False(t, booked)
	var conflict *ScheduleConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "2024-03-15", conflict.Date)
	assert.Equal(t, "10:00", conflict.Time)

	// Different time on the same date is fine
	booked, err = c.Schedule("2024-03-15", "14:00")
	require.NoError(t, err)
	assert.True(t, booked)
}

func TestCounselor_Certification(t *testing.T) {
	valid := NewCounselor("C001", "Emma Smith", "behavioral", WithCounselorCertExpiry("2024-06-30"))
	assert.True(t, valid.VerifyCertification())
	assert.Equal(t, "Certification in behavioral counseling, expires: 2024-06-30", valid.CertificationDetails())

	expired := NewCounselor("C002", "Michael Jones", "family", WithCounselorCertExpiry("2022-01-01"))
	assert.False(t, expired.VerifyCertification())
	// Details still report the expired token when asked directly
	assert.Equal(t, "Certification in family counseling, expires: 2022-01-01", expired.CertificationDetails())
}
