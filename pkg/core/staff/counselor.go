package staff

import (
	"fmt"

	"github.com/brightfuture/youth-center/pkg/core/model"
)

// Case loads are capped per counselor; assignments outside the range
// are ignored and the previous value kept.
const (
	MinCaseLoad = 0
	MaxCaseLoad = 20
)

// Counselor provides counseling sessions and carries a certification.
type Counselor struct {
	person
	specialization string
	caseLoad       int
	certExpiry     string
	bookings       bookingTable
}

// CounselorOption customises optional counselor fields at construction.
type CounselorOption func(*Counselor)

// WithCaseLoad sets the initial case load. Out-of-range values are
// ignored, leaving the default of 0.
func WithCaseLoad(load int) CounselorOption {
	return func(c *Counselor) { c.SetCaseLoad(load) }
}

// WithCounselorCertExpiry overrides the default certification expiry token.
func WithCounselorCertExpiry(expiry string) CounselorOption {
	return func(c *Counselor) { c.certExpiry = expiry }
}

func NewCounselor(id, name, specialization string, opts ...CounselorOption) *Counselor {
	c := &Counselor{
		person:         newPerson(id, name, model.RoleCounselor),
		specialization: specialization,
		caseLoad:       0,
		certExpiry:     DefaultCertificationExpiry,
		bookings:       bookingTable{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Counselor) Specialization() string { return c.specialization }
func (c *Counselor) CaseLoad() int          { return c.caseLoad }

// SetCaseLoad applies the new load only when it is within range.
// Out-of-range values are silently ignored, not clamped.
func (c *Counselor) SetCaseLoad(load int) {
	if load >= MinCaseLoad && load <= MaxCaseLoad {
		c.caseLoad = load
	}
}

func (c *Counselor) PerformDuty() string {
	return fmt.Sprintf("%s is providing %s counseling to youth.", c.name, c.specialization)
}

func (c *Counselor) DisplayInfo() string {
	return fmt.Sprintf("ID: %s | Name: %s | Role: %s | Specialization: %s | Case Load: %d",
		c.id, c.name, c.role, c.specialization, c.caseLoad)
}

func (c *Counselor) IsAvailable(date, time string) bool {
	return !c.bookings.holds(date, time)
}

func (c *Counselor) Schedule(date, time string) (bool, error) {
	if !c.IsAvailable(date, time) {
		return false, &ScheduleConflictError{Name: c.name, Date: date, Time: time}
	}
	c.bookings.claim(date, time)
	return true, nil
}

func (c *Counselor) VerifyCertification() bool {
	return certificationValid(c.certExpiry)
}

func (c *Counselor) CertificationDetails() string {
	return fmt.Sprintf("Certification in %s counseling, expires: %s", c.specialization, c.certExpiry)
}
