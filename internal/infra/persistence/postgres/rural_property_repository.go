package postgres

import (
	"context"

	"agroleads/internal/domain/entity"
	domainerrors "agroleads/internal/domain/errors"
	"agroleads/internal/domain/repository"
	"agroleads/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ruralPropertyRepository implements the repository.RuralPropertyRepository interface.
type ruralPropertyRepository struct {
	db *gorm.DB
}

// NewRuralPropertyRepository is the constructor for ruralPropertyRepository.
func NewRuralPropertyRepository(db *gorm.DB) repository.RuralPropertyRepository {
	return &ruralPropertyRepository{
		db: db,
	}
}

func toRuralPropertyDomain(propertyM *model.RuralPropertyModel) *entity.RuralProperty {
	geometry := ""
	if propertyM.Geometry != nil {
		geometry = *propertyM.Geometry
	}

	return &entity.RuralProperty{
		ID:           propertyM.ID,
		LeadID:       propertyM.LeadID,
		CropType:     entity.CropType(propertyM.CropType),
		AreaHectares: propertyM.AreaHectares,
		Geometry:     geometry,
		CreatedAt:    propertyM.CreatedAt,
		UpdatedAt:    propertyM.UpdatedAt,
	}
}

func fromRuralPropertyDomain(property *entity.RuralProperty) *model.RuralPropertyModel {
	var geometry *string
	if property.Geometry != "" {
		geometry = &property.Geometry
	}

	return &model.RuralPropertyModel{
		ID:           property.ID,
		LeadID:       property.LeadID,
		CropType:     property.CropType.String(),
		AreaHectares: property.AreaHectares,
		Geometry:     geometry,
	}
}

func toRuralPropertyDomainList(propertyModels []*model.RuralPropertyModel) []*entity.RuralProperty {
	properties := make([]*entity.RuralProperty, 0, len(propertyModels))
	for _, propertyM := range propertyModels {
		properties = append(properties, toRuralPropertyDomain(propertyM))
	}

	return properties
}

// FindAll retrieves properties matching the filter, newest first.
func (repo *ruralPropertyRepository) FindAll(ctx context.Context, filter repository.RuralPropertyFilter) ([]*entity.RuralProperty, error) {
	query := repo.db.WithContext(ctx).Model(&model.RuralPropertyModel{})

	if filter.LeadID != uuid.Nil {
		query = query.Where("lead_id = ?", filter.LeadID)
	}
	if filter.CropType != "" {
		query = query.Where("crop_type = ?", filter.CropType.String())
	}
	switch {
	case filter.MinArea != nil && filter.MaxArea != nil:
		query = query.Where("area_hectares BETWEEN ? AND ?", *filter.MinArea, *filter.MaxArea)
	case filter.MinArea != nil:
		query = query.Where("area_hectares >= ?", *filter.MinArea)
	case filter.MaxArea != nil:
		query = query.Where("area_hectares <= ?", *filter.MaxArea)
	}
	if filter.HighPriorityOnly {
		query = query.Where("area_hectares > ?", entity.HighPriorityThresholdHectares)
	}

	var propertyModels []*model.RuralPropertyModel
	if err := query.Order("created_at DESC").Find(&propertyModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find rural properties")
	}

	return toRuralPropertyDomainList(propertyModels), nil
}

// FindByID retrieves a property by its unique ID.
func (repo *ruralPropertyRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.RuralProperty, error) {
	var propertyM model.RuralPropertyModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&propertyM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRuralPropertyNotFound
		}

		return nil, errors.Wrap(err, "failed to find rural property by ID")
	}

	return toRuralPropertyDomain(&propertyM), nil
}

// FindByLeadID retrieves all properties owned by the lead, newest first.
func (repo *ruralPropertyRepository) FindByLeadID(ctx context.Context, leadID uuid.UUID) ([]*entity.RuralProperty, error) {
	var propertyModels []*model.RuralPropertyModel

	if err := repo.db.WithContext(ctx).
		Where("lead_id = ?", leadID).
		Order("created_at DESC").
		Find(&propertyModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find rural properties by lead ID")
	}

	return toRuralPropertyDomainList(propertyModels), nil
}

// FindByCropType retrieves all properties of the given crop, newest first.
func (repo *ruralPropertyRepository) FindByCropType(ctx context.Context, cropType entity.CropType) ([]*entity.RuralProperty, error) {
	var propertyModels []*model.RuralPropertyModel

	if err := repo.db.WithContext(ctx).
		Where("crop_type = ?", cropType.String()).
		Order("created_at DESC").
		Find(&propertyModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find rural properties by crop type")
	}

	return toRuralPropertyDomainList(propertyModels), nil
}

// FindHighPriorityProperties retrieves properties above the high-priority
// threshold, largest first.
func (repo *ruralPropertyRepository) FindHighPriorityProperties(ctx context.Context) ([]*entity.RuralProperty, error) {
	var propertyModels []*model.RuralPropertyModel

	if err := repo.db.WithContext(ctx).
		Where("area_hectares > ?", entity.HighPriorityThresholdHectares).
		Order("area_hectares DESC").
		Find(&propertyModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find high priority properties")
	}

	return toRuralPropertyDomainList(propertyModels), nil
}

// Create persists a new rural property.
func (repo *ruralPropertyRepository) Create(ctx context.Context, property *entity.RuralProperty) error {
	propertyM := fromRuralPropertyDomain(property)

	if err := repo.db.WithContext(ctx).Create(propertyM).Error; err != nil {
		// The owning lead may be deleted between the usecase check and the insert.
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrLeadNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create rural property")
	}

	// Update the entity with generated values
	property.ID = propertyM.ID
	property.CreatedAt = propertyM.CreatedAt
	property.UpdatedAt = propertyM.UpdatedAt

	return nil
}

// Update applies the non-nil fields and returns the stored entity.
func (repo *ruralPropertyRepository) Update(ctx context.Context, id uuid.UUID, update repository.RuralPropertyUpdate) (*entity.RuralProperty, error) {
	var propertyM model.RuralPropertyModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&propertyM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRuralPropertyNotFound
		}

		return nil, errors.Wrap(err, "failed to find rural property by ID")
	}

	if update.LeadID != nil {
		propertyM.LeadID = *update.LeadID
	}
	if update.CropType != nil {
		propertyM.CropType = update.CropType.String()
	}
	if update.AreaHectares != nil {
		propertyM.AreaHectares = *update.AreaHectares
	}
	if update.Geometry != nil {
		propertyM.Geometry = update.Geometry
	}

	if err := repo.db.WithContext(ctx).Save(&propertyM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return nil, repository.ErrLeadNotFound
		}

		return nil, errors.Wrap(err, "failed to update rural property")
	}

	return toRuralPropertyDomain(&propertyM), nil
}

// Delete removes a rural property.
func (repo *ruralPropertyRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.RuralPropertyModel{})

	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to delete rural property")
	}

	return result.RowsAffected > 0, nil
}

// CountByLeadID counts the properties owned by the lead.
func (repo *ruralPropertyRepository) CountByLeadID(ctx context.Context, leadID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.RuralPropertyModel{}).
		Where("lead_id = ?", leadID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count rural properties by lead ID")
	}

	return count, nil
}

// CountByCropType counts properties of the given crop.
func (repo *ruralPropertyRepository) CountByCropType(ctx context.Context, cropType entity.CropType) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.RuralPropertyModel{}).
		Where("crop_type = ?", cropType.String()).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count rural properties by crop type")
	}

	return count, nil
}

// GetTotalAreaByLeadID sums the area of all properties owned by the lead.
func (repo *ruralPropertyRepository) GetTotalAreaByLeadID(ctx context.Context, leadID uuid.UUID) (float64, error) {
	var totalArea float64

	if err := repo.db.WithContext(ctx).
		Model(&model.RuralPropertyModel{}).
		Select("COALESCE(SUM(area_hectares), 0)").
		Where("lead_id = ?", leadID).
		Scan(&totalArea).Error; err != nil {
		return 0, errors.Wrap(err, "failed to sum area by lead ID")
	}

	return totalArea, nil
}

// GetCropTypeStatistics returns count and total area grouped by crop type.
func (repo *ruralPropertyRepository) GetCropTypeStatistics(ctx context.Context) ([]repository.CropTypeStats, error) {
	var rows []repository.CropTypeStats

	if err := repo.db.WithContext(ctx).
		Model(&model.RuralPropertyModel{}).
		Select("crop_type", "COUNT(*) AS count", "COALESCE(SUM(area_hectares), 0) AS total_area").
		Group("crop_type").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to get crop type statistics")
	}

	return rows, nil
}

// GetAverageAreaByCropType returns the mean area for the crop type, 0 when none exist.
func (repo *ruralPropertyRepository) GetAverageAreaByCropType(ctx context.Context, cropType entity.CropType) (float64, error) {
	var average float64

	if err := repo.db.WithContext(ctx).
		Model(&model.RuralPropertyModel{}).
		Select("COALESCE(AVG(area_hectares), 0)").
		Where("crop_type = ?", cropType.String()).
		Scan(&average).Error; err != nil {
		return 0, errors.Wrap(err, "failed to average area by crop type")
	}

	return average, nil
}

// CountHighPriorityByCropType counts properties above the high-priority
// threshold for the crop type.
func (repo *ruralPropertyRepository) CountHighPriorityByCropType(ctx context.Context, cropType entity.CropType) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.RuralPropertyModel{}).
		Where("crop_type = ? AND area_hectares > ?", cropType.String(), entity.HighPriorityThresholdHectares).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count high priority properties by crop type")
	}

	return count, nil
}

// LeadHasHighPriorityProperties reports whether the lead owns any property
// above the high-priority threshold.
func (repo *ruralPropertyRepository) LeadHasHighPriorityProperties(ctx context.Context, leadID uuid.UUID) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.RuralPropertyModel{}).
		Where("lead_id = ? AND area_hectares > ?", leadID, entity.HighPriorityThresholdHectares).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to count high priority properties by lead ID")
	}

	return count > 0, nil
}
