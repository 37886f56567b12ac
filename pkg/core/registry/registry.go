// Package registry owns the youth centre's personnel and activities.
// It is the sole authority for id minting and cross-entity lookups, and
// delegates slot decisions to each record's scheduling capability.
package registry

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/brightfuture/youth-center/pkg/core/model"
	"github.com/brightfuture/youth-center/pkg/core/staff"
)

// InvalidCertificationDetails replaces the real credential details in
// audit results when verification fails.
const InvalidCertificationDetails = "Certification invalid or expired"

// Registry is the owning collection of staff records and named
// activities. It is not safe for concurrent use; the core is
// single-threaded by design.
type Registry struct {
	name       string
	personnel  []staff.StaffRecord
	activities map[string][]model.Booking
	nextID     int
}

func New(name string) *Registry {
	return &Registry{
		name:       name,
		activities: map[string][]model.Booking{},
		nextID:     1,
	}
}

func (r *Registry) Name() string { return r.name }

// NextID mints a fresh id of the form "{prefix}{counter:03d}". The
// counter is shared across all prefixes and never reused, even after
// removals.
func (r *Registry) NextID(prefix string) string {
	id := fmt.Sprintf("%s%03d", prefix, r.nextID)
	r.nextID++
	return id
}

// AddPerson appends the record unless its id is already taken.
// Insertion order is preserved by every list-returning query.
func (r *Registry) AddPerson(record staff.StaffRecord) bool {
	for _, existing := range r.personnel {
		if existing.ID() == record.ID() {
			return false
		}
	}
	r.personnel = append(r.personnel, record)
	return true
}

// RemovePerson removes the record with the matching id and releases its
// live-instance accounting. Returns false when no record matches.
func (r *Registry) RemovePerson(id string) bool {
	for i, record := range r.personnel {
		if record.ID() == id {
			r.personnel = append(r.personnel[:i], r.personnel[i+1:]...)
			staff.Release(record)
			return true
		}
	}
	return false
}

// FindPersonByID returns the live record, not a copy; mutations through
// its methods are visible to the registry.
func (r *Registry) FindPersonByID(id string) (staff.StaffRecord, error) {
	for _, record := range r.personnel {
		if record.ID() == id {
			return record, nil
		}
	}
	return nil, &staff.PersonNotFoundError{ID: id}
}

// PersonnelByRole returns all records of the given role in registry order.
func (r *Registry) PersonnelByRole(role model.Role) []staff.StaffRecord {
	matched := make([]staff.StaffRecord, 0)
	for _, record := range r.personnel {
		if record.Role() == role {
			matched = append(matched, record)
		}
	}
	return matched
}

// PersonnelCount reports counts for each of the three known roles. All
// three keys are always present.
func (r *Registry) PersonnelCount() map[model.Role]int {
	counts := map[model.Role]int{
		model.RoleCounselor: 0,
		model.RoleEducator:  0,
		model.RoleVolunteer: 0,
	}
	for _, record := range r.personnel {
		counts[record.Role()]++
	}
	return counts
}

// CreateActivity books the responsible person for the slot and records
// the booking under the activity name. Lookup failures, non-schedulable
// records and slot conflicts all downgrade to false; nothing is
// recorded on failure. The same activity name may accumulate bookings
// from different people — only the per-person slot conflict blocks
// creation.
func (r *Registry) CreateActivity(name, date, time, responsibleID string) bool {
	record, err := r.FindPersonByID(responsibleID)
	if err != nil {
		return false
	}

	schedulable, ok := record.(staff.Schedulable)
	if !ok {
		return false
	}

	booked, err := schedulable.Schedule(date, time)
	if err != nil || !booked {
		return false
	}

	r.activities[name] = append(r.activities[name], model.Booking{
		ID:            uuid.New().String(),
		Date:          date,
		Time:          time,
		ResponsibleID: record.ID(),
	})
	return true
}

// VerifyAllCertifications audits every certifiable record in registry
// order. Records without the capability are skipped entirely. Expired
// certifications get a placeholder instead of the real details.
func (r *Registry) VerifyAllCertifications() []model.CertificationResult {
	results := make([]model.CertificationResult, 0)
	for _, record := range r.personnel {
		certifiable, ok := record.(staff.Certifiable)
		if !ok {
			continue
		}

		valid := certifiable.VerifyCertification()
		details := InvalidCertificationDetails
		if valid {
			details = certifiable.CertificationDetails()
		}

		results = append(results, model.CertificationResult{
			ID:                 record.ID(),
			Name:               record.Name(),
			CertificationValid: valid,
			Details:            details,
		})
	}
	return results
}

// Personnel returns a defensive copy of the personnel list. The records
// themselves are shared references, matching FindPersonByID.
func (r *Registry) Personnel() []staff.StaffRecord {
	personnel := make([]staff.StaffRecord, len(r.personnel))
	copy(personnel, r.personnel)
	return personnel
}

// Activities returns a defensive copy of the activities mapping,
// including the booking slices, so callers can never mutate registry
// state through it.
func (r *Registry) Activities() map[string][]model.Booking {
	activities := make(map[string][]model.Booking, len(r.activities))
	for name, bookings := range r.activities {
		copied := make([]model.Booking, len(bookings))
		copy(copied, bookings)
		activities[name] = copied
	}
	return activities
}
