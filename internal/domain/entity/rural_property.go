// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// HighPriorityThresholdHectares is the area above which a property (and the
// lead owning it) is treated as high priority. The comparison is strict.
const HighPriorityThresholdHectares = 100

// CropType represents the commodity cultivated on a rural property.
type CropType string

const (
	// CropTypeSoy is soybean cultivation.
	CropTypeSoy CropType = "SOY"
	// CropTypeCorn is corn cultivation.
	CropTypeCorn CropType = "CORN"
	// CropTypeCotton is cotton cultivation.
	CropTypeCotton CropType = "COTTON"
)

// String returns the string representation of the CropType.
func (c CropType) String() string {
	return string(c)
}

// IsValid checks if the CropType is a valid value.
func (c CropType) IsValid() bool {
	switch c {
	case CropTypeSoy, CropTypeCorn, CropTypeCotton:
		return true
	default:
		return false
	}
}

// SizeClassification buckets a property by its area.
type SizeClassification string

const (
	// SizeSmall covers areas up to 50 hectares.
	SizeSmall SizeClassification = "SMALL"
	// SizeMedium covers areas from above 50 up to 100 hectares.
	SizeMedium SizeClassification = "MEDIUM"
	// SizeLarge covers areas above 100 hectares.
	SizeLarge SizeClassification = "LARGE"
)

// RuralProperty is a land parcel belonging to a lead.
type RuralProperty struct {
	ID           uuid.UUID `json:"id"`                 // The unique identifier for the property, assigned by storage.
	LeadID       uuid.UUID `json:"lead_id"`            // The owning lead; must reference an existing lead.
	CropType     CropType  `json:"crop_type"`          // The commodity cultivated on the parcel.
	AreaHectares float64   `json:"area_hectares"`      // Parcel area in hectares, always positive.
	Geometry     string    `json:"geometry,omitempty"` // Opaque geometry payload (GeoJSON/WKT); not interpreted here.
	CreatedAt    time.Time `json:"created_at"`         // Timestamp of when the property was registered.
	UpdatedAt    time.Time `json:"updated_at"`         // Timestamp of the last modification.
}

// IsHighPriority reports whether the parcel exceeds the high-priority
// threshold. Exactly 100 hectares is not high priority.
func (p *RuralProperty) IsHighPriority() bool {
	return p.AreaHectares > HighPriorityThresholdHectares
}

// IsValidArea reports whether an area value is acceptable for a property.
func IsValidArea(areaHectares float64) bool {
	return areaHectares > 0
}

// SizeClassification buckets the parcel: SMALL up to 50 ha, MEDIUM up to
// 100 ha, LARGE beyond. The MEDIUM/LARGE boundary is the same constant as the
// high-priority threshold, so LARGE and high priority always agree.
func (p *RuralProperty) SizeClassification() SizeClassification {
	switch {
	case p.AreaHectares <= 50:
		return SizeSmall
	case p.AreaHectares <= HighPriorityThresholdHectares:
		return SizeMedium
	default:
		return SizeLarge
	}
}
