package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/brightfuture/youth-center/pkg/core/model"
	"github.com/brightfuture/youth-center/pkg/core/registry"
)

// AuditCertifications runs the registry-wide certification check and
// logs each outcome. Records without a certification are absent from
// the result list.
func AuditCertifications(ctx context.Context, reg *registry.Registry, logger *zap.Logger) []model.CertificationResult {
	logger.Info("Auditing certifications", zap.Int("personnel", len(reg.Personnel())))

	results := reg.VerifyAllCertifications()

	invalid := 0
	for _, result := range results {
		if result.CertificationValid {
			logger.Debug("Certification valid",
				zap.String("id", result.ID),
				zap.String("name", result.Name))
			continue
		}
		invalid++
		logger.Warn("Certification invalid or expired",
			zap.String("id", result.ID),
			zap.String("name", result.Name))
	}

	logger.Info("Certification audit complete",
		zap.Int("checked", len(results)),
		zap.Int("invalid", invalid))

	return results
}
