package model

// Role identifies the staff variant a record was created as.
type Role string

const (
	RoleCounselor Role = "Counselor"
	RoleEducator  Role = "Educator"
	RoleVolunteer Role = "Volunteer"
)

func (r Role) IsValid() bool {
	return r == RoleCounselor || r == RoleEducator || r == RoleVolunteer
}

// IDPrefix returns the prefix used when minting ids for this role.
func (r Role) IDPrefix() string {
	switch r {
	case RoleCounselor:
		return "C"
	case RoleEducator:
		return "E"
	case RoleVolunteer:
		return "V"
	}
	return ""
}

// EducationLevel is an educator's qualification level.
type EducationLevel string

const (
	LevelBachelors EducationLevel = "Bachelor's"
	LevelMasters   EducationLevel = "Master's"
	LevelPhD       EducationLevel = "PhD"
)

func (l EducationLevel) IsValid() bool {
	return l == LevelBachelors || l == LevelMasters || l == LevelPhD
}

// AvailabilityPattern restricts which dates a volunteer can be booked on.
// Any value outside the known set means the volunteer is never available.
type AvailabilityPattern string

const (
	AvailabilityWeekends AvailabilityPattern = "weekends"
	AvailabilityWeekdays AvailabilityPattern = "weekdays"
	AvailabilityAll      AvailabilityPattern = "all"
)

// Date and time tokens are opaque comparable strings, not validated
// calendar values. Date tokens may carry a trailing day abbreviation
// (e.g. "2024-03-16Sat") which the volunteer availability check reads.
const (
	DateFormat = "2006-01-02"
	TimeFormat = "15:04"
)

// Booking is a single claimed slot recorded under an activity name.
type Booking struct {
	ID            string
	Date          string
	Time          string
	ResponsibleID string
}

// CertificationResult is one row of a registry-wide certification audit.
type CertificationResult struct {
	ID                 string
	Name               string
	CertificationValid bool
	Details            string
}
