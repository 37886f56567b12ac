// Package staff holds the youth centre's personnel records: the three
// staff variants and the scheduling and certification behaviors a subset
// of them carry.
package staff

import "github.com/brightfuture/youth-center/pkg/core/model"

// StaffRecord is the contract every personnel variant satisfies.
// Records are live objects: callers holding one see mutations made
// through its methods, there is no copy-on-read at this level.
type StaffRecord interface {
	ID() string
	Name() string
	Role() model.Role

	// DisplayInfo returns a one-line summary including the id, name,
	// role and every variant-specific field.
	DisplayInfo() string

	// PerformDuty returns a short sentence naming the person and their
	// core activity.
	PerformDuty() string

	// release decrements the live-instance gauge. Only the registry
	// calls this, when a record is removed.
	release()
}

// liveRecords counts staff records currently held in memory. It is
// diagnostic state only: constructors increment it and Registry removal
// decrements it. The core is single-threaded, so a plain int suffices.
var liveRecords int

// LiveRecordCount reports how many staff records are currently live.
func LiveRecordCount() int {
	return liveRecords
}

// Release marks a record as disposed for live-instance accounting.
// The registry invokes it on removal; records are never released
// implicitly.
func Release(r StaffRecord) {
	r.release()
}

// person carries the identity fields shared by every variant.
type person struct {
	id   string
	name string
	role model.Role
}

func newPerson(id, name string, role model.Role) person {
	liveRecords++
	return person{id: id, name: name, role: role}
}

func (p *person) ID() string       { return p.id }
func (p *person) Name() string     { return p.name }
func (p *person) Role() model.Role { return p.role }

func (p *person) release() {
	liveRecords--
}
