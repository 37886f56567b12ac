package staff

import (
	"fmt"

	"github.com/brightfuture/youth-center/pkg/core/model"
)

// Educator teaches a subject to youth and carries a certification.
type Educator struct {
	person
	subject    string
	level      model.EducationLevel
	certExpiry string
	bookings   bookingTable
}

// EducatorOption customises optional educator fields at construction.
type EducatorOption func(*Educator)

// WithEducationLevel overrides the default Bachelor's level.
func WithEducationLevel(level model.EducationLevel) EducatorOption {
	return func(e *Educator) { e.level = level }
}

// WithEducatorCertExpiry overrides the default certification expiry token.
func WithEducatorCertExpiry(expiry string) EducatorOption {
	return func(e *Educator) { e.certExpiry = expiry }
}

func NewEducator(id, name, subject string, opts ...EducatorOption) *Educator {
	e := &Educator{
		person:     newPerson(id, name, model.RoleEducator),
		subject:    subject,
		level:      model.LevelBachelors,
		certExpiry: DefaultCertificationExpiry,
		bookings:   bookingTable{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Educator) Subject() string                      { return e.subject }
func (e *Educator) EducationLevel() model.EducationLevel { return e.level }

func (e *Educator) PerformDuty() string {
	return fmt.Sprintf("%s is teaching %s to youth.", e.name, e.subject)
}

func (e *Educator) DisplayInfo() string {
	return fmt.Sprintf("ID: %s | Name: %s | Role: %s | Subject: %s | Education: %s",
		e.id, e.name, e.role, e.subject, e.level)
}

func (e *Educator) IsAvailable(date, time string) bool {
	return !e.bookings.holds(date, time)
}

func (e *Educator) Schedule(date, time string) (bool, error) {
	if !e.IsAvailable(date, time) {
		return false, &ScheduleConflictError{Name: e.name, Date: date, Time: time}
	}
	e.bookings.claim(date, time)
	return true, nil
}

func (e *Educator) VerifyCertification() bool {
	return certificationValid(e.certExpiry)
}

func (e *Educator) CertificationDetails() string {
	return fmt.Sprintf("Teaching certification in %s, expires: %s", e.subject, e.certExpiry)
}
