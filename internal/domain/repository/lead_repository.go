// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"agroleads/internal/domain/entity"
	"agroleads/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for lead persistence.
var (
	// ErrLeadNotFound is returned when a lead is not found.
	ErrLeadNotFound = errors.New("lead not found")
	// ErrDuplicateCpf is returned when a write would violate CPF uniqueness.
	// The database constraint is the backstop for concurrent creates; the
	// use-case existence check is only an early fail.
	ErrDuplicateCpf = errors.New("cpf already registered")
)

// LeadFilter narrows ListLeads results. Zero values mean "no filter";
// Search matches name (case-insensitive) or CPF as a substring.
type LeadFilter struct {
	Status       entity.LeadStatus
	Municipality string
	Search       string
}

// StatusCount is one row of the status breakdown.
type StatusCount struct {
	Status entity.LeadStatus `json:"status"`
	Count  int64             `json:"count"`
}

// MunicipalityCount is one row of the municipality breakdown.
type MunicipalityCount struct {
	Municipality string `json:"municipality"`
	Count        int64  `json:"count"`
}

// LeadWithPropertiesCount bundles a lead with the number of properties it owns.
type LeadWithPropertiesCount struct {
	Lead            *entity.Lead `json:"lead"`
	PropertiesCount int64        `json:"properties_count"`
}

// LeadRepository defines the interface for lead-related database operations.
type LeadRepository interface {
	// FindAll retrieves leads matching the filter, newest first.
	FindAll(ctx context.Context, filter LeadFilter) ([]*entity.Lead, error)

	// FindByID retrieves a lead by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Lead, error)

	// FindByCpf retrieves a lead by its normalized CPF.
	FindByCpf(ctx context.Context, cpf string) (*entity.Lead, error)

	// FindByStatus retrieves all leads in the given status, newest first.
	FindByStatus(ctx context.Context, status entity.LeadStatus) ([]*entity.Lead, error)

	// FindByMunicipality retrieves all leads in the given municipality, newest first.
	FindByMunicipality(ctx context.Context, municipality string) ([]*entity.Lead, error)

	// Create persists a new lead and fills in generated ID and timestamps.
	Create(ctx context.Context, lead *entity.Lead) error

	// Update applies the non-nil fields of update to the lead and returns the
	// stored entity. Returns ErrLeadNotFound when the row vanished.
	Update(ctx context.Context, id uuid.UUID, update LeadUpdate) (*entity.Lead, error)

	// Delete removes a lead. The rural properties it owns are removed by the
	// database cascade. Returns false when no row was affected.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)

	// ExistsByCpf reports whether a lead with the CPF exists, optionally
	// excluding one lead ID (uuid.Nil excludes nothing).
	ExistsByCpf(ctx context.Context, cpf string, excludeID uuid.UUID) (bool, error)

	// CountByStatus counts leads in the given status.
	CountByStatus(ctx context.Context, status entity.LeadStatus) (int64, error)

	// CountByMunicipality counts leads in the given municipality.
	CountByMunicipality(ctx context.Context, municipality string) (int64, error)

	// FindHighPriorityLeads retrieves distinct leads owning at least one
	// property above the high-priority threshold, newest first.
	FindHighPriorityLeads(ctx context.Context) ([]*entity.Lead, error)

	// FindByIDWithPropertiesCount retrieves a lead together with the number of
	// rural properties it owns.
	FindByIDWithPropertiesCount(ctx context.Context, id uuid.UUID) (*LeadWithPropertiesCount, error)

	// GetStatusStatistics returns lead counts grouped by status.
	GetStatusStatistics(ctx context.Context) ([]StatusCount, error)

	// GetMunicipalityStatistics returns lead counts grouped by municipality,
	// sorted descending by count.
	GetMunicipalityStatistics(ctx context.Context) ([]MunicipalityCount, error)
}

// LeadUpdate carries a partial lead update. Nil fields are left untouched.
type LeadUpdate struct {
	Name         *string
	Cpf          *string
	Status       *entity.LeadStatus
	Municipality *string
	Comments     *string
}
