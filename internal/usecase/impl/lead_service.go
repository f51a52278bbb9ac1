// Package impl contains the concrete use-case services implementing the
// interfaces declared in the usecase package.
package impl

import (
	"context"

	"agroleads/internal/domain/entity"
	domainerrors "agroleads/internal/domain/errors"
	"agroleads/internal/domain/repository"
	"agroleads/internal/domain/valueobject"
	"agroleads/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type leadService struct {
	leadRepo repository.LeadRepository
}

// LeadServiceParams holds dependencies for LeadService, injected by Fx.
type LeadServiceParams struct {
	fx.In

	LeadRepo repository.LeadRepository
}

// NewLeadService creates a new lead service instance
func NewLeadService(params LeadServiceParams) usecase.LeadUsecase {
	return &leadService{
		leadRepo: params.LeadRepo,
	}
}

// CreateLead validates the CPF and its uniqueness, then registers the lead
// with status NEW.
func (s *leadService) CreateLead(ctx context.Context, input usecase.CreateLeadInput) (*entity.Lead, error) {
	cpf, err := valueobject.NewCpf(input.Cpf)
	if err != nil {
		return nil, err
	}

	exists, err := s.leadRepo.ExistsByCpf(ctx, cpf.Value(), uuid.Nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check cpf existence")
	}
	if exists {
		return nil, domainerrors.ErrCpfAlreadyRegistered.WithMessagef("CPF %s is already registered", input.Cpf)
	}

	lead := &entity.Lead{
		Name:         input.Name,
		Cpf:          cpf.Value(),
		Status:       entity.LeadStatusNew,
		Municipality: input.Municipality,
		Comments:     input.Comments,
	}

	if err := s.leadRepo.Create(ctx, lead); err != nil {
		// The unique constraint is the backstop for concurrent creates with
		// the same CPF.
		if errors.Is(err, repository.ErrDuplicateCpf) {
			return nil, domainerrors.ErrCpfAlreadyRegistered.WithMessagef("CPF %s is already registered", input.Cpf)
		}

		return nil, errors.Wrap(err, "failed to create lead")
	}

	return lead, nil
}

// UpdateLead applies a partial update after re-validating CPF uniqueness and
// the status transition when those fields change.
func (s *leadService) UpdateLead(ctx context.Context, id uuid.UUID, input usecase.UpdateLeadInput) (*entity.Lead, error) {
	existing, err := s.leadRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrLeadNotFound) {
			return nil, domainerrors.ErrLeadNotFound.WithMessagef("Lead with ID %s not found", id)
		}

		return nil, errors.Wrap(err, "failed to find lead by ID")
	}

	update := repository.LeadUpdate{
		Name:         input.Name,
		Municipality: input.Municipality,
		Comments:     input.Comments,
	}

	if input.Cpf != nil && *input.Cpf != existing.Cpf {
		cpf, err := valueobject.NewCpf(*input.Cpf)
		if err != nil {
			return nil, err
		}

		exists, err := s.leadRepo.ExistsByCpf(ctx, cpf.Value(), id)
		if err != nil {
			return nil, errors.Wrap(err, "failed to check cpf existence")
		}
		if exists {
			return nil, domainerrors.ErrCpfAlreadyRegistered.WithMessagef("CPF %s is already registered", *input.Cpf)
		}

		normalized := cpf.Value()
		update.Cpf = &normalized
	}

	if input.Status != nil && *input.Status != existing.Status {
		if err := validateStatusTransition(existing, *input.Status); err != nil {
			return nil, err
		}
		update.Status = input.Status
	}

	updated, err := s.leadRepo.Update(ctx, id, update)
	if err != nil {
		if errors.Is(err, repository.ErrLeadNotFound) {
			return nil, domainerrors.ErrLeadNotFound.WithMessagef("Failed to update lead with ID %s", id)
		}
		if errors.Is(err, repository.ErrDuplicateCpf) {
			conflictCpf := existing.Cpf
			if input.Cpf != nil {
				conflictCpf = *input.Cpf
			}

			return nil, domainerrors.ErrCpfAlreadyRegistered.WithMessagef("CPF %s is already registered", conflictCpf)
		}

		return nil, errors.Wrap(err, "failed to update lead")
	}

	return updated, nil
}

// validateStatusTransition enforces the explicit-update rules: LOST is final,
// CONVERTED may only move to LOST.
func validateStatusTransition(lead *entity.Lead, newStatus entity.LeadStatus) error {
	if !newStatus.IsValid() {
		return domainerrors.ErrValidationFailed.WithMessagef("Invalid lead status: %s", newStatus)
	}

	if lead.CanTransitionTo(newStatus) {
		return nil
	}

	if lead.Status == entity.LeadStatusLost {
		return domainerrors.ErrInvalidStatusTransition.WithMessagef("Cannot change status from LOST")
	}

	return domainerrors.ErrInvalidStatusTransition.WithMessagef("CONVERTED leads can only be marked as LOST")
}

// DeleteLead removes a lead after checking it exists. The database cascade
// removes the rural properties it owns.
func (s *leadService) DeleteLead(ctx context.Context, id uuid.UUID) error {
	if _, err := s.leadRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrLeadNotFound) {
			return domainerrors.ErrLeadNotFound.WithMessagef("Lead with ID %s not found", id)
		}

		return errors.Wrap(err, "failed to find lead by ID")
	}

	deleted, err := s.leadRepo.Delete(ctx, id)
	if err != nil {
		return errors.Wrap(err, "failed to delete lead")
	}
	if !deleted {
		return domainerrors.ErrLeadNotFound.WithMessagef("Failed to delete lead with ID %s", id)
	}

	return nil
}

// GetLead retrieves a single lead by ID.
func (s *leadService) GetLead(ctx context.Context, id uuid.UUID) (*entity.Lead, error) {
	lead, err := s.leadRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrLeadNotFound) {
			return nil, domainerrors.ErrLeadNotFound.WithMessagef("Lead with ID %s not found", id)
		}

		return nil, errors.Wrap(err, "failed to find lead by ID")
	}

	return lead, nil
}

// GetLeadWithPropertiesCount retrieves a lead plus its owned-property count.
func (s *leadService) GetLeadWithPropertiesCount(ctx context.Context, id uuid.UUID) (*repository.LeadWithPropertiesCount, error) {
	result, err := s.leadRepo.FindByIDWithPropertiesCount(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrLeadNotFound) {
			return nil, domainerrors.ErrLeadNotFound.WithMessagef("Lead with ID %s not found", id)
		}

		return nil, errors.Wrap(err, "failed to find lead with properties count")
	}

	return result, nil
}

// ListLeads retrieves leads matching the filter, newest first.
func (s *leadService) ListLeads(ctx context.Context, filter repository.LeadFilter) ([]*entity.Lead, error) {
	leads, err := s.leadRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list leads")
	}

	return leads, nil
}

// GetPriorityLeads retrieves leads owning at least one high-priority property.
func (s *leadService) GetPriorityLeads(ctx context.Context) ([]*entity.Lead, error) {
	leads, err := s.leadRepo.FindHighPriorityLeads(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find high priority leads")
	}

	return leads, nil
}

// GetStatistics returns total lead count plus breakdowns by status and municipality.
func (s *leadService) GetStatistics(ctx context.Context) (*usecase.LeadStatistics, error) {
	statusStats, err := s.leadRepo.GetStatusStatistics(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get status statistics")
	}

	municipalityStats, err := s.leadRepo.GetMunicipalityStatistics(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get municipality statistics")
	}

	stats := &usecase.LeadStatistics{
		ByStatus:       make(map[string]int64, len(statusStats)),
		ByMunicipality: make(map[string]int64, len(municipalityStats)),
	}
	for _, row := range statusStats {
		stats.ByStatus[row.Status.String()] = row.Count
		stats.Total += row.Count
	}
	for _, row := range municipalityStats {
		stats.ByMunicipality[row.Municipality] = row.Count
	}

	return stats, nil
}
