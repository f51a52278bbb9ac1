// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
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

// leadRepository implements the repository.LeadRepository interface.
type leadRepository struct {
	db *gorm.DB
}

// NewLeadRepository is the constructor for leadRepository.
func NewLeadRepository(db *gorm.DB) repository.LeadRepository {
	return &leadRepository{
		db: db,
	}
}

func toLeadDomain(leadM *model.LeadModel) *entity.Lead {
	comments := ""
	if leadM.Comments != nil {
		comments = *leadM.Comments
	}

	return &entity.Lead{
		ID:           leadM.ID,
		Name:         leadM.Name,
		Cpf:          leadM.Cpf,
		Status:       entity.LeadStatus(leadM.Status),
		Municipality: leadM.Municipality,
		Comments:     comments,
		CreatedAt:    leadM.CreatedAt,
		UpdatedAt:    leadM.UpdatedAt,
	}
}

func fromLeadDomain(lead *entity.Lead) *model.LeadModel {
	var comments *string
	if lead.Comments != "" {
		comments = &lead.Comments
	}

	return &model.LeadModel{
		ID:           lead.ID,
		Name:         lead.Name,
		Cpf:          lead.Cpf,
		Status:       lead.Status.String(),
		Municipality: lead.Municipality,
		Comments:     comments,
	}
}

func toLeadDomainList(leadModels []*model.LeadModel) []*entity.Lead {
	leads := make([]*entity.Lead, 0, len(leadModels))
	for _, leadM := range leadModels {
		leads = append(leads, toLeadDomain(leadM))
	}

	return leads
}

// FindAll retrieves leads matching the filter, newest first.
func (repo *leadRepository) FindAll(ctx context.Context, filter repository.LeadFilter) ([]*entity.Lead, error) {
	query := repo.db.WithContext(ctx).Model(&model.LeadModel{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Municipality != "" {
		query = query.Where("municipality = ?", filter.Municipality)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR cpf LIKE ?", pattern, pattern)
	}

	var leadModels []*model.LeadModel
	if err := query.Order("created_at DESC").Find(&leadModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find leads")
	}

	return toLeadDomainList(leadModels), nil
}

// FindByID retrieves a lead by its unique ID.
func (repo *leadRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Lead, error) {
	var leadM model.LeadModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&leadM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLeadNotFound
		}

		return nil, errors.Wrap(err, "failed to find lead by ID")
	}

	return toLeadDomain(&leadM), nil
}

// FindByCpf retrieves a lead by its normalized CPF.
func (repo *leadRepository) FindByCpf(ctx context.Context, cpf string) (*entity.Lead, error) {
	var leadM model.LeadModel

	if err := repo.db.WithContext(ctx).
		Where("cpf = ?", cpf).
		First(&leadM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLeadNotFound
		}

		return nil, errors.Wrap(err, "failed to find lead by cpf")
	}

	return toLeadDomain(&leadM), nil
}

// FindByStatus retrieves all leads in the given status, newest first.
func (repo *leadRepository) FindByStatus(ctx context.Context, status entity.LeadStatus) ([]*entity.Lead, error) {
	var leadModels []*model.LeadModel

	if err := repo.db.WithContext(ctx).
		Where("status = ?", status.String()).
		Order("created_at DESC").
		Find(&leadModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find leads by status")
	}

	return toLeadDomainList(leadModels), nil
}

// FindByMunicipality retrieves all leads in the given municipality, newest first.
func (repo *leadRepository) FindByMunicipality(ctx context.Context, municipality string) ([]*entity.Lead, error) {
	var leadModels []*model.LeadModel

	if err := repo.db.WithContext(ctx).
		Where("municipality = ?", municipality).
		Order("created_at DESC").
		Find(&leadModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find leads by municipality")
	}

	return toLeadDomainList(leadModels), nil
}

// Create persists a new lead.
func (repo *leadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	leadM := fromLeadDomain(lead)

	if err := repo.db.WithContext(ctx).Create(leadM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateCpf
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create lead")
	}

	// Update the entity with generated values
	lead.ID = leadM.ID
	lead.CreatedAt = leadM.CreatedAt
	lead.UpdatedAt = leadM.UpdatedAt

	return nil
}

// Update applies the non-nil fields and returns the stored entity.
func (repo *leadRepository) Update(ctx context.Context, id uuid.UUID, update repository.LeadUpdate) (*entity.Lead, error) {
	var leadM model.LeadModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&leadM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLeadNotFound
		}

		return nil, errors.Wrap(err, "failed to find lead by ID")
	}

	if update.Name != nil {
		leadM.Name = *update.Name
	}
	if update.Cpf != nil {
		leadM.Cpf = *update.Cpf
	}
	if update.Status != nil {
		leadM.Status = update.Status.String()
	}
	if update.Municipality != nil {
		leadM.Municipality = *update.Municipality
	}
	if update.Comments != nil {
		leadM.Comments = update.Comments
	}

	if err := repo.db.WithContext(ctx).Save(&leadM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return nil, repository.ErrDuplicateCpf
		}

		return nil, errors.Wrap(err, "failed to update lead")
	}

	return toLeadDomain(&leadM), nil
}

// Delete removes a lead; owned properties fall to the FK cascade.
func (repo *leadRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.LeadModel{})

	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to delete lead")
	}

	return result.RowsAffected > 0, nil
}

// ExistsByCpf reports whether a lead with the CPF exists, optionally excluding one ID.
func (repo *leadRepository) ExistsByCpf(ctx context.Context, cpf string, excludeID uuid.UUID) (bool, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.LeadModel{}).
		Where("cpf = ?", cpf)

	if excludeID != uuid.Nil {
		query = query.Where("id != ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to count leads by cpf")
	}

	return count > 0, nil
}

// CountByStatus counts leads in the given status.
func (repo *leadRepository) CountByStatus(ctx context.Context, status entity.LeadStatus) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.LeadModel{}).
		Where("status = ?", status.String()).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count leads by status")
	}

	return count, nil
}

// CountByMunicipality counts leads in the given municipality.
func (repo *leadRepository) CountByMunicipality(ctx context.Context, municipality string) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.LeadModel{}).
		Where("municipality = ?", municipality).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count leads by municipality")
	}

	return count, nil
}

// FindHighPriorityLeads retrieves distinct leads owning at least one property
// above the high-priority threshold, newest first.
func (repo *leadRepository) FindHighPriorityLeads(ctx context.Context) ([]*entity.Lead, error) {
	var leadModels []*model.LeadModel

	if err := repo.db.WithContext(ctx).
		Model(&model.LeadModel{}).
		Distinct("leads.*").
		Joins("JOIN rural_properties ON rural_properties.lead_id = leads.id").
		Where("rural_properties.area_hectares > ?", entity.HighPriorityThresholdHectares).
		Order("leads.created_at DESC").
		Find(&leadModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find high priority leads")
	}

	return toLeadDomainList(leadModels), nil
}

// FindByIDWithPropertiesCount retrieves a lead together with its owned-property count.
func (repo *leadRepository) FindByIDWithPropertiesCount(ctx context.Context, id uuid.UUID) (*repository.LeadWithPropertiesCount, error) {
	lead, err := repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.RuralPropertyModel{}).
		Where("lead_id = ?", id).
		Count(&count).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count lead properties")
	}

	return &repository.LeadWithPropertiesCount{
		Lead:            lead,
		PropertiesCount: count,
	}, nil
}

// GetStatusStatistics returns lead counts grouped by status.
func (repo *leadRepository) GetStatusStatistics(ctx context.Context) ([]repository.StatusCount, error) {
	var rows []repository.StatusCount

	if err := repo.db.WithContext(ctx).
		Model(&model.LeadModel{}).
		Select("status", "COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to get status statistics")
	}

	return rows, nil
}

// GetMunicipalityStatistics returns lead counts grouped by municipality,
// sorted descending by count.
func (repo *leadRepository) GetMunicipalityStatistics(ctx context.Context) ([]repository.MunicipalityCount, error) {
	var rows []repository.MunicipalityCount

	if err := repo.db.WithContext(ctx).
		Model(&model.LeadModel{}).
		Select("municipality", "COUNT(*) AS count").
		Group("municipality").
		Order("count DESC").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to get municipality statistics")
	}

	return rows, nil
}
