// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"agroleads/internal/domain/entity"
	"agroleads/internal/errors"

	"github.com/google/uuid"
)

// ErrRuralPropertyNotFound is returned when a rural property is not found.
var ErrRuralPropertyNotFound = errors.New("rural property not found")

// RuralPropertyFilter narrows FindAll results. Zero values mean "no filter".
// MinArea and MaxArea are pointers so that a zero bound stays expressible;
// when both are set the range is inclusive on both ends.
type RuralPropertyFilter struct {
	LeadID           uuid.UUID
	CropType         entity.CropType
	MinArea          *float64
	MaxArea          *float64
	HighPriorityOnly bool
}

// CropTypeStats is one row of the crop-type breakdown.
type CropTypeStats struct {
	CropType  entity.CropType `json:"crop_type"`
	Count     int64           `json:"count"`
	TotalArea float64         `json:"total_area"`
}

// RuralPropertyRepository defines the interface for rural-property database operations.
type RuralPropertyRepository interface {
	// FindAll retrieves properties matching the filter, newest first.
	FindAll(ctx context.Context, filter RuralPropertyFilter) ([]*entity.RuralProperty, error)

	// FindByID retrieves a property by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.RuralProperty, error)

	// FindByLeadID retrieves all properties owned by a lead, newest first.
	FindByLeadID(ctx context.Context, leadID uuid.UUID) ([]*entity.RuralProperty, error)

	// FindByCropType retrieves all properties of the given crop, newest first.
	FindByCropType(ctx context.Context, cropType entity.CropType) ([]*entity.RuralProperty, error)

	// FindHighPriorityProperties retrieves properties above the high-priority
	// threshold, largest first.
	FindHighPriorityProperties(ctx context.Context) ([]*entity.RuralProperty, error)

	// Create persists a new property and fills in generated ID and timestamps.
	Create(ctx context.Context, property *entity.RuralProperty) error

	// Update applies the non-nil fields of update to the property and returns
	// the stored entity. Returns ErrRuralPropertyNotFound when the row vanished.
	Update(ctx context.Context, id uuid.UUID, update RuralPropertyUpdate) (*entity.RuralProperty, error)

	// Delete removes a property. Returns false when no row was affected.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)

	// CountByLeadID counts properties owned by a lead.
	CountByLeadID(ctx context.Context, leadID uuid.UUID) (int64, error)

	// CountByCropType counts properties of the given crop.
	CountByCropType(ctx context.Context, cropType entity.CropType) (int64, error)

	// LeadHasHighPriorityProperties reports whether a lead owns at least one
	// property above the high-priority threshold.
	LeadHasHighPriorityProperties(ctx context.Context, leadID uuid.UUID) (bool, error)

	// GetTotalAreaByLeadID sums the area of all properties owned by a lead.
	GetTotalAreaByLeadID(ctx context.Context, leadID uuid.UUID) (float64, error)

	// GetCropTypeStatistics returns per-crop counts and summed areas.
	GetCropTypeStatistics(ctx context.Context) ([]CropTypeStats, error)

	// GetAverageAreaByCropType averages the area of properties of the given
	// crop; zero when none exist.
	GetAverageAreaByCropType(ctx context.Context, cropType entity.CropType) (float64, error)

	// CountHighPriorityByCropType counts high-priority properties of the crop.
	CountHighPriorityByCropType(ctx context.Context, cropType entity.CropType) (int64, error)
}

// RuralPropertyUpdate carries a partial property update. Nil fields are left untouched.
type RuralPropertyUpdate struct {
	LeadID       *uuid.UUID
	CropType     *entity.CropType
	AreaHectares *float64
	Geometry     *string
}
