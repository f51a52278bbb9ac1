package impl

import (
	"context"

	"agroleads/internal/domain/entity"
	domainerrors "agroleads/internal/domain/errors"
	"agroleads/internal/domain/repository"
	"agroleads/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type ruralPropertyService struct {
	propertyRepo repository.RuralPropertyRepository
	leadRepo     repository.LeadRepository
}

// RuralPropertyServiceParams holds dependencies for RuralPropertyService, injected by Fx.
type RuralPropertyServiceParams struct {
	fx.In

	PropertyRepo repository.RuralPropertyRepository
	LeadRepo     repository.LeadRepository
}

// NewRuralPropertyService creates a new rural property service instance
func NewRuralPropertyService(params RuralPropertyServiceParams) usecase.RuralPropertyUsecase {
	return &ruralPropertyService{
		propertyRepo: params.PropertyRepo,
		leadRepo:     params.LeadRepo,
	}
}

// CreateProperty validates the owning lead and the area, then registers the property.
func (s *ruralPropertyService) CreateProperty(ctx context.Context, input usecase.CreateRuralPropertyInput) (*entity.RuralProperty, error) {
	if _, err := s.leadRepo.FindByID(ctx, input.LeadID); err != nil {
		if errors.Is(err, repository.ErrLeadNotFound) {
			return nil, domainerrors.ErrLeadNotFound.WithMessagef("Lead with ID %s not found", input.LeadID)
		}

		return nil, errors.Wrap(err, "failed to find lead by ID")
	}

	if !entity.IsValidArea(input.AreaHectares) {
		return nil, domainerrors.ErrInvalidArea
	}

	property := &entity.RuralProperty{
		LeadID:       input.LeadID,
		CropType:     input.CropType,
		AreaHectares: input.AreaHectares,
		Geometry:     input.Geometry,
	}

	if err := s.propertyRepo.Create(ctx, property); err != nil {
		return nil, errors.Wrap(err, "failed to create rural property")
	}

	return property, nil
}

// UpdateProperty applies a partial update, re-validating the new lead's
// existence and the area when those fields change.
func (s *ruralPropertyService) UpdateProperty(ctx context.Context, id uuid.UUID, input usecase.UpdateRuralPropertyInput) (*entity.RuralProperty, error) {
	existing, err := s.propertyRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRuralPropertyNotFound) {
			return nil, domainerrors.ErrRuralPropertyNotFound.WithMessagef("Rural property with ID %s not found", id)
		}

		return nil, errors.Wrap(err, "failed to find rural property by ID")
	}

	if input.LeadID != nil && *input.LeadID != existing.LeadID {
		if _, err := s.leadRepo.FindByID(ctx, *input.LeadID); err != nil {
			if errors.Is(err, repository.ErrLeadNotFound) {
				return nil, domainerrors.ErrLeadNotFound.WithMessagef("Lead with ID %s not found", *input.LeadID)
			}

			return nil, errors.Wrap(err, "failed to find lead by ID")
		}
	}

	if input.AreaHectares != nil && !entity.IsValidArea(*input.AreaHectares) {
		return nil, domainerrors.ErrInvalidArea
	}

	updated, err := s.propertyRepo.Update(ctx, id, repository.RuralPropertyUpdate{
		LeadID:       input.LeadID,
		CropType:     input.CropType,
		AreaHectares: input.AreaHectares,
		Geometry:     input.Geometry,
	})
	if err != nil {
		if errors.Is(err, repository.ErrRuralPropertyNotFound) {
			return nil, domainerrors.ErrRuralPropertyNotFound.WithMessagef("Failed to update rural property with ID %s", id)
		}

		return nil, errors.Wrap(err, "failed to update rural property")
	}

	return updated, nil
}

// DeleteProperty removes a property after checking it exists.
func (s *ruralPropertyService) DeleteProperty(ctx context.Context, id uuid.UUID) error {
	if _, err := s.propertyRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrRuralPropertyNotFound) {
			return domainerrors.ErrRuralPropertyNotFound.WithMessagef("Rural property with ID %s not found", id)
		}

		return errors.Wrap(err, "failed to find rural property by ID")
	}

	deleted, err := s.propertyRepo.Delete(ctx, id)
	if err != nil {
		return errors.Wrap(err, "failed to delete rural property")
	}
	if !deleted {
		return domainerrors.ErrRuralPropertyNotFound.WithMessagef("Failed to delete rural property with ID %s", id)
	}

	return nil
}

// GetProperty retrieves a single property by ID.
func (s *ruralPropertyService) GetProperty(ctx context.Context, id uuid.UUID) (*entity.RuralProperty, error) {
	property, err := s.propertyRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRuralPropertyNotFound) {
			return nil, domainerrors.ErrRuralPropertyNotFound.WithMessagef("Rural property with ID %s not found", id)
		}

		return nil, errors.Wrap(err, "failed to find rural property by ID")
	}

	return property, nil
}

// ListProperties retrieves properties matching the filter, newest first.
func (s *ruralPropertyService) ListProperties(ctx context.Context, filter repository.RuralPropertyFilter) ([]*entity.RuralProperty, error) {
	properties, err := s.propertyRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list rural properties")
	}

	return properties, nil
}

// GetCropTypeStatistics returns per-crop counts and summed areas.
func (s *ruralPropertyService) GetCropTypeStatistics(ctx context.Context) ([]repository.CropTypeStats, error) {
	stats, err := s.propertyRepo.GetCropTypeStatistics(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get crop type statistics")
	}

	return stats, nil
}

// GetTotalAreaByLead sums the area of a lead's properties.
func (s *ruralPropertyService) GetTotalAreaByLead(ctx context.Context, leadID uuid.UUID) (float64, error) {
	total, err := s.propertyRepo.GetTotalAreaByLeadID(ctx, leadID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to get total area by lead")
	}

	return total, nil
}

// GetAverageAreaByCropType averages the area of properties of the crop.
func (s *ruralPropertyService) GetAverageAreaByCropType(ctx context.Context, cropType entity.CropType) (float64, error) {
	average, err := s.propertyRepo.GetAverageAreaByCropType(ctx, cropType)
	if err != nil {
		return 0, errors.Wrap(err, "failed to get average area by crop type")
	}

	return average, nil
}

// CountByLead counts properties owned by a lead.
func (s *ruralPropertyService) CountByLead(ctx context.Context, leadID uuid.UUID) (int64, error) {
	count, err := s.propertyRepo.CountByLeadID(ctx, leadID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count properties by lead")
	}

	return count, nil
}

// LeadHasHighPriorityProperties reports whether a lead owns a property above
// the high-priority threshold.
func (s *ruralPropertyService) LeadHasHighPriorityProperties(ctx context.Context, leadID uuid.UUID) (bool, error) {
	has, err := s.propertyRepo.LeadHasHighPriorityProperties(ctx, leadID)
	if err != nil {
		return false, errors.Wrap(err, "failed to check high priority properties")
	}

	return has, nil
}
