package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCropType_IsValid(t *testing.T) {
	assert.True(t, CropTypeSoy.IsValid())
	assert.True(t, CropTypeCorn.IsValid())
	assert.True(t, CropTypeCotton.IsValid())

	assert.False(t, CropType("WHEAT").IsValid())
	assert.False(t, CropType("soy").IsValid())
	assert.False(t, CropType("").IsValid())
}

func TestIsValidArea(t *testing.T) {
	assert.True(t, IsValidArea(0.01))
	assert.True(t, IsValidArea(150.5))

	assert.False(t, IsValidArea(0))
	assert.False(t, IsValidArea(-10))
}

func TestRuralProperty_IsHighPriority(t *testing.T) {
	tests := []struct {
		name         string
		areaHectares float64
		highPriority bool
	}{
		{name: "well below threshold", areaHectares: 50, highPriority: false},
		{name: "exactly at threshold", areaHectares: 100, highPriority: false},
		{name: "just above threshold", areaHectares: 100.01, highPriority: true},
		{name: "far above threshold", areaHectares: 1500, highPriority: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			property := &RuralProperty{AreaHectares: tt.areaHectares}
			assert.Equal(t, tt.highPriority, property.IsHighPriority())
		})
	}
}

func TestRuralProperty_SizeClassification(t *testing.T) {
	tests := []struct {
		name         string
		areaHectares float64
		expected     SizeClassification
	}{
		{name: "small", areaHectares: 10, expected: SizeSmall},
		{name: "small upper bound", areaHectares: 50, expected: SizeSmall},
		{name: "medium", areaHectares: 50.01, expected: SizeMedium},
		{name: "medium upper bound", areaHectares: 100, expected: SizeMedium},
		{name: "large", areaHectares: 100.01, expected: SizeLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			property := &RuralProperty{AreaHectares: tt.areaHectares}
			assert.Equal(t, tt.expected, property.SizeClassification())
		})
	}
}
