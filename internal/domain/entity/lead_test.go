package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLeadStatus_IsValid(t *testing.T) {
	valid := []LeadStatus{
		LeadStatusNew,
		LeadStatusInitialContact,
		LeadStatusNegotiation,
		LeadStatusConverted,
		LeadStatusLost,
	}
	for _, status := range valid {
		assert.True(t, status.IsValid(), "expected %s to be valid", status)
	}

	assert.False(t, LeadStatus("PENDING").IsValid())
	assert.False(t, LeadStatus("").IsValid())
	assert.False(t, LeadStatus("new").IsValid())
}

func TestLead_IsActive(t *testing.T) {
	tests := []struct {
		status LeadStatus
		active bool
	}{
		{LeadStatusNew, true},
		{LeadStatusInitialContact, true},
		{LeadStatusNegotiation, true},
		{LeadStatusConverted, false},
		{LeadStatusLost, false},
	}

	for _, tt := range tests {
		lead := &Lead{Status: tt.status}
		assert.Equal(t, tt.active, lead.IsActive(), "status %s", tt.status)
	}
}

func TestLead_CanBeConverted(t *testing.T) {
	assert.True(t, (&Lead{Status: LeadStatusNegotiation}).CanBeConverted())
	assert.False(t, (&Lead{Status: LeadStatusNew}).CanBeConverted())
	assert.False(t, (&Lead{Status: LeadStatusInitialContact}).CanBeConverted())
	assert.False(t, (&Lead{Status: LeadStatusConverted}).CanBeConverted())
	assert.False(t, (&Lead{Status: LeadStatusLost}).CanBeConverted())
}

func TestLead_ProgressStatus_Chain(t *testing.T) {
	lead := &Lead{Status: LeadStatusNew}

	lead.ProgressStatus()
	assert.Equal(t, LeadStatusInitialContact, lead.Status)

	lead.ProgressStatus()
	assert.Equal(t, LeadStatusNegotiation, lead.Status)

	lead.ProgressStatus()
	assert.Equal(t, LeadStatusConverted, lead.Status)

	// CONVERTED is terminal, another call changes nothing
	lead.ProgressStatus()
	assert.Equal(t, LeadStatusConverted, lead.Status)
}

func TestLead_ProgressStatus_TerminalLeavesUpdatedAtUntouched(t *testing.T) {
	updatedAt := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)

	converted := &Lead{Status: LeadStatusConverted, UpdatedAt: updatedAt}
	converted.ProgressStatus()
	assert.Equal(t, LeadStatusConverted, converted.Status)
	assert.Equal(t, updatedAt, converted.UpdatedAt)

	lost := &Lead{Status: LeadStatusLost, UpdatedAt: updatedAt}
	lost.ProgressStatus()
	assert.Equal(t, LeadStatusLost, lost.Status)
	assert.Equal(t, updatedAt, lost.UpdatedAt)
}

func TestLead_ProgressStatus_TouchesUpdatedAt(t *testing.T) {
	updatedAt := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
	lead := &Lead{Status: LeadStatusNew, UpdatedAt: updatedAt}

	lead.ProgressStatus()
	assert.True(t, lead.UpdatedAt.After(updatedAt))
}

func TestLead_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    LeadStatus
		to      LeadStatus
		allowed bool
	}{
		{name: "lost is frozen", from: LeadStatusLost, to: LeadStatusNew, allowed: false},
		{name: "lost cannot revive to negotiation", from: LeadStatusLost, to: LeadStatusNegotiation, allowed: false},
		{name: "converted to lost", from: LeadStatusConverted, to: LeadStatusLost, allowed: true},
		{name: "converted cannot regress", from: LeadStatusConverted, to: LeadStatusNew, allowed: false},
		{name: "new to any forward state", from: LeadStatusNew, to: LeadStatusConverted, allowed: true},
		{name: "negotiation directly to lost", from: LeadStatusNegotiation, to: LeadStatusLost, allowed: true},
		{name: "backward move is allowed outside terminals", from: LeadStatusNegotiation, to: LeadStatusNew, allowed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lead := &Lead{Status: tt.from}
			assert.Equal(t, tt.allowed, lead.CanTransitionTo(tt.to))
		})
	}
}
