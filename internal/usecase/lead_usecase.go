// Package usecase defines the application's use-case interfaces and the
// request/response shapes they exchange with the delivery layer.
package usecase

import (
	"context"

	"agroleads/internal/domain/entity"
	"agroleads/internal/domain/repository"

	"github.com/google/uuid"
)

// CreateLeadInput carries the data for registering a new lead.
// Cpf accepts both the formatted and the bare 11-digit representation.
type CreateLeadInput struct {
	Name         string
	Cpf          string
	Municipality string
	Comments     string
}

// UpdateLeadInput carries a partial lead update. Nil fields are "not supplied".
type UpdateLeadInput struct {
	Name         *string
	Cpf          *string
	Status       *entity.LeadStatus
	Municipality *string
	Comments     *string
}

// LeadStatistics aggregates lead counts for reporting.
type LeadStatistics struct {
	Total          int64            `json:"total"`
	ByStatus       map[string]int64 `json:"by_status"`
	ByMunicipality map[string]int64 `json:"by_municipality"`
}

// LeadUsecase defines the interface for lead management use cases.
type LeadUsecase interface {
	// CreateLead validates CPF format and uniqueness, then registers the lead
	// with status NEW.
	CreateLead(ctx context.Context, input CreateLeadInput) (*entity.Lead, error)

	// UpdateLead applies a partial update, re-validating CPF uniqueness and
	// the status transition when those fields change.
	UpdateLead(ctx context.Context, id uuid.UUID, input UpdateLeadInput) (*entity.Lead, error)

	// DeleteLead removes a lead; its properties go with it via the storage cascade.
	DeleteLead(ctx context.Context, id uuid.UUID) error

	// GetLead retrieves a single lead by ID.
	GetLead(ctx context.Context, id uuid.UUID) (*entity.Lead, error)

	// GetLeadWithPropertiesCount retrieves a lead plus the number of rural
	// properties it owns.
	GetLeadWithPropertiesCount(ctx context.Context, id uuid.UUID) (*repository.LeadWithPropertiesCount, error)

	// ListLeads retrieves leads matching the filter, newest first.
	ListLeads(ctx context.Context, filter repository.LeadFilter) ([]*entity.Lead, error)

	// GetPriorityLeads retrieves leads owning at least one high-priority property.
	GetPriorityLeads(ctx context.Context) ([]*entity.Lead, error)

	// GetStatistics returns total lead count plus breakdowns by status and municipality.
	GetStatistics(ctx context.Context) (*LeadStatistics, error)
}
