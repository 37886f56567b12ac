package staff

import "fmt"

// PersonNotFoundError is returned when a lookup by id finds no record.
type PersonNotFoundError struct {
	ID string
}

func (e *PersonNotFoundError) Error() string {
	return fmt.Sprintf("person with ID %s not found", e.ID)
}

// ScheduleConflictError is returned when a record already holds the
// requested slot. Conflicts are scoped to a single record's booking table.
type ScheduleConflictError struct {
	Name string
	Date string
	Time string
}

func (e *ScheduleConflictError) Error() string {
	return fmt.Sprintf("%s already has a session at %s %s", e.Name, e.Date, e.Time)
}

// CertificationError is part of the error taxonomy but no current
// operation returns it; certification checks report a boolean instead.
type CertificationError struct {
	Reason string
}

func (e *CertificationError) Error() string {
	return fmt.Sprintf("certification verification failed: %s", e.Reason)
}
