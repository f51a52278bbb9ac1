package model

import (
	"time"

	"github.com/google/uuid"
)

// RuralPropertyModel mirrors the 'rural_properties' table. Deleting a lead
// cascades here through the foreign key.
type RuralPropertyModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	LeadID       uuid.UUID `gorm:"type:uuid;not null;index"`
	CropType     string    `gorm:"type:varchar(32);not null;index"`
	AreaHectares float64   `gorm:"type:decimal(10,2);not null"`
	Geometry     *string   `gorm:"type:text"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (RuralPropertyModel) TableName() string {
	return "rural_properties"
}
