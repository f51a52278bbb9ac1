package model

import (
	"time"

	"github.com/google/uuid"
)

// LeadModel mirrors the 'leads' table. PostgreSQL generates UUIDs via
// uuid_generate_v7(). The CPF column carries the unique constraint that backs
// the use-case level uniqueness check under concurrency.
type LeadModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name         string    `gorm:"type:varchar(255);not null;index"`
	Cpf          string    `gorm:"type:varchar(11);not null;uniqueIndex"`
	Status       string    `gorm:"type:varchar(32);not null;default:'NEW';index:idx_leads_status_municipality"`
	Comments     *string   `gorm:"type:text"`
	Municipality string    `gorm:"type:varchar(255);not null;index:idx_leads_status_municipality"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Properties []RuralPropertyModel `gorm:"foreignKey:LeadID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (LeadModel) TableName() string {
	return "leads"
}
