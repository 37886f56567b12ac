package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/brightfuture/youth-center/pkg/core/registry"
	"github.com/brightfuture/youth-center/pkg/core/staff"
)

// LogVolunteerHours adds completed hours to a volunteer's running total
// and returns the new total. The lookup error from the registry
// propagates; a non-volunteer id or a non-positive delta is an error at
// this layer and leaves the record untouched.
func LogVolunteerHours(ctx context.Context, reg *registry.Registry, logger *zap.Logger, id string, hours int) (int, error) {
	record, err := reg.FindPersonByID(id)
	if err != nil {
		return 0, fmt.Errorf("failed to log hours: %w", err)
	}

	volunteer, ok := record.(*staff.Volunteer)
	if !ok {
		return 0, fmt.Errorf("%s is a %s, hours can only be logged for volunteers", id, record.Role())
	}

	if !volunteer.LogHours(hours) {
		return volunteer.HoursCompleted(), fmt.Errorf("hours must be positive, got %d", hours)
	}

	logger.Info("Volunteer hours logged",
		zap.String("id", id),
		zap.Int("hours", hours),
		zap.Int("total", volunteer.HoursCompleted()))

	return volunteer.HoursCompleted(), nil
}
