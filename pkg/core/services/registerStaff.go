package services

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/brightfuture/youth-center/pkg/core/model"
	"github.com/brightfuture/youth-center/pkg/core/registry"
	"github.com/brightfuture/youth-center/pkg/core/staff"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// RegisterStaffRequest carries the presentation-layer input for creating
// a staff record. Range checks here are the input boundary; the records'
// own setters keep their silent-ignore policy.
type RegisterStaffRequest struct {
	Name string     `validate:"required"`
	Role model.Role `validate:"required,oneof=Counselor Educator Volunteer"`

	// Counselor fields
	Specialization string `validate:"required_if=Role Counselor"`
	CaseLoad       int    `validate:"min=0,max=20"`

	// Educator fields. The education level enum contains apostrophes,
	// which the oneof tag syntax cannot express, so it is checked in code.
	Subject        string `validate:"required_if=Role Educator"`
	EducationLevel model.EducationLevel

	// Volunteer fields
	Availability model.AvailabilityPattern `validate:"required_if=Role Volunteer"`

	// Optional expiry token override for certifiable roles.
	CertificationExpiry string `validate:"omitempty,datetime=2006-01-02"`
}

// RegisterStaff validates the request, mints an id with the role's
// prefix, constructs the matching variant and adds it to the registry.
func RegisterStaff(ctx context.Context, reg *registry.Registry, logger *zap.Logger, req RegisterStaffRequest) (staff.StaffRecord, error) {
	if err := validate.StructCtx(ctx, req); err != nil {
		return nil, fmt.Errorf("invalid staff registration request: %w", err)
	}
	if req.EducationLevel != "" && !req.EducationLevel.IsValid() {
		return nil, fmt.Errorf("invalid education level: %q", req.EducationLevel)
	}

	id := reg.NextID(req.Role.IDPrefix())
	logger.Info("Registering staff member",
		zap.String("id", id),
		zap.String("name", req.Name),
		zap.String("role", string(req.Role)))

	var record staff.StaffRecord
	switch req.Role {
	case model.RoleCounselor:
		opts := []staff.CounselorOption{staff.WithCaseLoad(req.CaseLoad)}
		if req.CertificationExpiry != "" {
			opts = append(opts, staff.WithCounselorCertExpiry(req.CertificationExpiry))
		}
		record = staff.NewCounselor(id, req.Name, req.Specialization, opts...)

	case model.RoleEducator:
		var opts []staff.EducatorOption
		if req.EducationLevel != "" {
			opts = append(opts, staff.WithEducationLevel(req.EducationLevel))
		}
		if req.CertificationExpiry != "" {
			opts = append(opts, staff.WithEducatorCertExpiry(req.CertificationExpiry))
		}
		record = staff.NewEducator(id, req.Name, req.Subject, opts...)

	case model.RoleVolunteer:
		record = staff.NewVolunteer(id, req.Name, req.Availability)
	}

	if !reg.AddPerson(record) {
		return nil, fmt.Errorf("person with ID %s already exists", id)
	}

	logger.Info("Staff member registered",
		zap.String("id", record.ID()),
		zap.Int("live_records", staff.LiveRecordCount()))

	return record, nil
}
