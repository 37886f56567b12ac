package staff

import "strings"

// Schedulable is the capability to claim a date/time slot. Each record
// keeps its own booking table, so two records can hold the identical
// slot without conflict.
type Schedulable interface {
	// IsAvailable reports whether the slot is free on this record and,
	// for variants with an availability pattern, whether the date token
	// satisfies the pattern.
	IsAvailable(date, time string) bool

	// Schedule claims the slot. A slot already present in the booking
	// table yields (false, *ScheduleConflictError); an availability
	// pattern mismatch yields (false, nil). Scheduling the same slot
	// twice always fails on the second attempt.
	Schedule(date, time string) (bool, error)
}

// bookingTable maps a date token to the time tokens already claimed on
// that date.
type bookingTable map[string][]string

func (b bookingTable) holds(date, time string) bool {
	for _, t := range b[date] {
		if t == time {
			return true
		}
	}
	return false
}

func (b bookingTable) claim(date, time string) {
	b[date] = append(b[date], time)
}

// isWeekendToken reports whether a date token carries a weekend-day
// marker. Date tokens are opaque strings; the marker is a literal
// suffix (e.g. "2024-03-16Sat"), not a calendar computation.
func isWeekendToken(date string) bool {
	return strings.HasSuffix(date, "Sat") || strings.HasSuffix(date, "Sun")
}
