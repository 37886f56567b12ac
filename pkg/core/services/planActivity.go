package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/brightfuture/youth-center/pkg/core/registry"
)

// PlanActivity books the responsible person and records the activity.
// The registry downgrades lookup failures and slot conflicts to false;
// this layer only adds logging around that decision.
func PlanActivity(ctx context.Context, reg *registry.Registry, logger *zap.Logger, name, date, time, responsibleID string) bool {
	logger.Info("Planning activity",
		zap.String("activity", name),
		zap.String("date", date),
		zap.String("time", time),
		zap.String("responsible_id", responsibleID))

	created := reg.CreateActivity(name, date, time, responsibleID)
	if !created {
		logger.Warn("Activity not created",
			zap.String("activity", name),
			zap.String("responsible_id", responsibleID))
		return false
	}

	logger.Info("Activity created",
		zap.String("activity", name),
		zap.Int("bookings", len(reg.Activities()[name])))
	return true
}
