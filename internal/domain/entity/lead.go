// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// LeadStatus represents the position of a lead in the sales funnel.
type LeadStatus string

const (
	// LeadStatusNew is the entry state of every lead.
	LeadStatusNew LeadStatus = "NEW"
	// LeadStatusInitialContact indicates a first conversation has taken place.
	LeadStatusInitialContact LeadStatus = "INITIAL_CONTACT"
	// LeadStatusNegotiation indicates an active commercial negotiation.
	LeadStatusNegotiation LeadStatus = "NEGOTIATION"
	// LeadStatusConverted is a terminal state: the lead became a customer.
	LeadStatusConverted LeadStatus = "CONVERTED"
	// LeadStatusLost is a terminal state: the lead was lost.
	LeadStatusLost LeadStatus = "LOST"
)

// String returns the string representation of the LeadStatus.
func (s LeadStatus) String() string {
	return string(s)
}

// IsValid checks if the LeadStatus is a valid value.
func (s LeadStatus) IsValid() bool {
	switch s {
	case LeadStatusNew, LeadStatusInitialContact, LeadStatusNegotiation, LeadStatusConverted, LeadStatusLost:
		return true
	default:
		return false
	}
}

// next returns the following status in the fixed progression chain, or "" for
// terminal states. LOST is never reached through progression.
func (s LeadStatus) next() LeadStatus {
	switch s {
	case LeadStatusNew:
		return LeadStatusInitialContact
	case LeadStatusInitialContact:
		return LeadStatusNegotiation
	case LeadStatusNegotiation:
		return LeadStatusConverted
	default:
		return ""
	}
}

// Lead is a potential customer of the agricultural-input distribution business.
type Lead struct {
	ID           uuid.UUID  `json:"id"`                 // The unique identifier for the lead, assigned by storage.
	Name         string     `json:"name"`               // The lead's full name.
	Cpf          string     `json:"cpf"`                // Normalized 11-digit CPF, unique across all leads.
	Status       LeadStatus `json:"status"`             // Current position in the sales funnel.
	Municipality string     `json:"municipality"`       // The municipality where the lead is located.
	Comments     string     `json:"comments,omitempty"` // Free-form notes about the lead.
	CreatedAt    time.Time  `json:"created_at"`         // Timestamp of when the lead was registered.
	UpdatedAt    time.Time  `json:"updated_at"`         // Timestamp of the last modification.
}

// IsActive reports whether the lead is still being worked: any status except
// the terminal CONVERTED and LOST states.
func (l *Lead) IsActive() bool {
	return l.Status != LeadStatusConverted && l.Status != LeadStatusLost
}

// CanBeConverted reports whether the lead is eligible for conversion.
// Only leads in NEGOTIATION can be converted.
func (l *Lead) CanBeConverted() bool {
	return l.Status == LeadStatusNegotiation
}

// ProgressStatus advances the lead one step along
// NEW -> INITIAL_CONTACT -> NEGOTIATION -> CONVERTED.
// Terminal states (CONVERTED, LOST) are left untouched, UpdatedAt included.
func (l *Lead) ProgressStatus() {
	next := l.Status.next()
	if next == "" {
		return
	}

	l.Status = next
	l.UpdatedAt = time.Now()
}

// CanTransitionTo reports whether an explicit status update to newStatus is
// allowed. LOST accepts no change; CONVERTED may only move to LOST; every
// other state may move anywhere, including directly to LOST.
func (l *Lead) CanTransitionTo(newStatus LeadStatus) bool {
	switch l.Status {
	case LeadStatusLost:
		return false
	case LeadStatusConverted:
		return newStatus == LeadStatusLost
	default:
		return true
	}
}
