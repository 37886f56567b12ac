package staff

import (
	"fmt"

	"github.com/brightfuture/youth-center/pkg/core/model"
)

// Volunteer helps out at the centre on a restricted availability
// pattern. Volunteers carry no certification.
type Volunteer struct {
	person
	availability   model.AvailabilityPattern
	hoursCompleted int
	bookings       bookingTable
}

func NewVolunteer(id, name string, availability model.AvailabilityPattern) *Volunteer {
	return &Volunteer{
		person:       newPerson(id, name, model.RoleVolunteer),
		availability: availability,
		bookings:     bookingTable{},
	}
}

func (v *Volunteer) Availability() model.AvailabilityPattern { return v.availability }
func (v *Volunteer) HoursCompleted() int                     { return v.hoursCompleted }

// SetHoursCompleted applies the new total only when it is non-negative.
// Negative values are silently ignored.
func (v *Volunteer) SetHoursCompleted(hours int) {
	if hours >= 0 {
		v.hoursCompleted = hours
	}
}

// LogHours adds completed hours to the running total. Zero or negative
// deltas are rejected and leave the total unchanged.
func (v *Volunteer) LogHours(hours int) bool {
	if hours <= 0 {
		return false
	}
	v.hoursCompleted += hours
	return true
}

func (v *Volunteer) PerformDuty() string {
	return fmt.Sprintf("%s is volunteering at the youth center.", v.name)
}

func (v *Volunteer) DisplayInfo() string {
	return fmt.Sprintf("ID: %s | Name: %s | Role: %s | Availability: %s | Hours: %d",
		v.id, v.name, v.role, v.availability, v.hoursCompleted)
}

// IsAvailable requires both a free slot and a date token matching the
// volunteer's availability pattern.
func (v *Volunteer) IsAvailable(date, time string) bool {
	if v.bookings.holds(date, time) {
		return false
	}
	return v.matchesPattern(date)
}

// Schedule distinguishes the two failure modes: a slot already claimed
// is a conflict error, a pattern mismatch is a plain false.
func (v *Volunteer) Schedule(date, time string) (bool, error) {
	if v.bookings.holds(date, time) {
		return false, &ScheduleConflictError{Name: v.name, Date: date, Time: time}
	}
	if !v.matchesPattern(date) {
		return false, nil
	}
	v.bookings.claim(date, time)
	return true, nil
}

func (v *Volunteer) matchesPattern(date string) bool {
	switch v.availability {
	case model.AvailabilityWeekends:
		return isWeekendToken(date)
	case model.AvailabilityWeekdays:
		return !isWeekendToken(date)
	case model.AvailabilityAll:
		return true
	default:
		return false
	}
}
