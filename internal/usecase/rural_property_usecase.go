package usecase

import (
	"context"

	"agroleads/internal/domain/entity"
	"agroleads/internal/domain/repository"

	"github.com/google/uuid"
)

// CreateRuralPropertyInput carries the data for registering a new property.
type CreateRuralPropertyInput struct {
	LeadID       uuid.UUID
	CropType     entity.CropType
	AreaHectares float64
	Geometry     string
}

// UpdateRuralPropertyInput carries a partial property update. Nil fields are
// "not supplied".
type UpdateRuralPropertyInput struct {
	LeadID       *uuid.UUID
	CropType     *entity.CropType
	AreaHectares *float64
	Geometry     *string
}

// RuralPropertyUsecase defines the interface for rural-property management use cases.
type RuralPropertyUsecase interface {
	// CreateProperty validates the owning lead and the area, then registers
	// the property.
	CreateProperty(ctx context.Context, input CreateRuralPropertyInput) (*entity.RuralProperty, error)

	// UpdateProperty applies a partial update, re-validating the new lead's
	// existence and the area when those fields change.
	UpdateProperty(ctx context.Context, id uuid.UUID, input UpdateRuralPropertyInput) (*entity.RuralProperty, error)

	// DeleteProperty removes a property.
	DeleteProperty(ctx context.Context, id uuid.UUID) error

	// GetProperty retrieves a single property by ID.
	GetProperty(ctx context.Context, id uuid.UUID) (*entity.RuralProperty, error)

	// ListProperties retrieves properties matching the filter, newest first.
	ListProperties(ctx context.Context, filter repository.RuralPropertyFilter) ([]*entity.RuralProperty, error)

	// GetCropTypeStatistics returns per-crop counts and summed areas.
	GetCropTypeStatistics(ctx context.Context) ([]repository.CropTypeStats, error)

	// GetTotalAreaByLead sums the area of a lead's properties.
	GetTotalAreaByLead(ctx context.Context, leadID uuid.UUID) (float64, error)

	// GetAverageAreaByCropType averages the area of properties of the crop.
	GetAverageAreaByCropType(ctx context.Context, cropType entity.CropType) (float64, error)

	// CountByLead counts properties owned by a lead.
	CountByLead(ctx context.Context, leadID uuid.UUID) (int64, error)

	// LeadHasHighPriorityProperties reports whether a lead owns a property
	// above the high-priority threshold.
	LeadHasHighPriorityProperties(ctx context.Context, leadID uuid.UUID) (bool, error)
}
