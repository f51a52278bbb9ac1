package impl

import (
	"context"
	"testing"

	"agroleads/internal/domain/entity"
	domainerrors "agroleads/internal/domain/errors"
	"agroleads/internal/domain/repository"
	mockRepo "agroleads/internal/mocks/repository"
	"agroleads/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// ruralPropertyServiceFixtures holds all test dependencies for rural property service tests.
type ruralPropertyServiceFixtures struct {
	service      usecase.RuralPropertyUsecase
	propertyRepo *mockRepo.MockRuralPropertyRepository
	leadRepo     *mockRepo.MockLeadRepository
}

func createTestRuralPropertyService(t *testing.T) ruralPropertyServiceFixtures {
	propertyRepo := mockRepo.NewMockRuralPropertyRepository(t)
	leadRepo := mockRepo.NewMockLeadRepository(t)
	service := NewRuralPropertyService(RuralPropertyServiceParams{
		PropertyRepo: propertyRepo,
		LeadRepo:     leadRepo,
	})

	return ruralPropertyServiceFixtures{
		service:      service,
		propertyRepo: propertyRepo,
		leadRepo:     leadRepo,
	}
}

func TestRuralPropertyService_CreateProperty_Success(t *testing.T) {
	fx := createTestRuralPropertyService(t)

	ctx := context.Background()
	leadID := uuid.New()

	fx.leadRepo.EXPECT().
		FindByID(ctx, leadID).
		Return(&entity.Lead{ID: leadID}, nil)

	fx.propertyRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.RuralProperty")).
		Run(func(ctx context.Context, property *entity.RuralProperty) {
			assert.Equal(t, leadID, property.LeadID)
			assert.Equal(t, entity.CropTypeSoy, property.CropType)
			assert.Equal(t, 150.5, property.AreaHectares)
		}).
		Return(nil)

	property, err := fx.service.CreateProperty(ctx, usecase.CreateRuralPropertyInput{
		LeadID:       leadID,
		CropType:     entity.CropTypeSoy,
		AreaHectares: 150.5,
	})
	require.NoError(t, err)
	assert.NotNil(t, property)
	assert.Equal(t, leadID, property.LeadID)
}

func TestRuralPropertyService_CreateProperty_LeadNotFound(t *testing.T) {
	fx := createTestRuralPropertyService(t)

	ctx := context.Background()
	leadID := uuid.New()

	fx.leadRepo.EXPECT().
		FindByID(ctx, leadID).
		Return(nil, repository.ErrLeadNotFound)

	// Create must not be reached without an existing lead.
	property, err := fx.service.CreateProperty(ctx, usecase.CreateRuralPropertyInput{
		LeadID:       leadID,
		CropType:     entity.CropTypeCorn,
		AreaHectares: 50,
	})
	assert.Error(t, err)
	assert.Nil(t, property)
	assert.True(t, errors.Is(err, domainerrors.ErrLeadNotFound))
}

func TestRuralPropertyService_CreateProperty_InvalidArea(t *testing.T) {
	fx := createTestRuralPropertyService(t)

	ctx := context.Background()
	leadID := uuid.New()

	tests := []struct {
		name string
		area float64
	}{
		{name: "zero area", area: 0},
		{name: "negative area", area: -12.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx.leadRepo.EXPECT().
				FindByID(ctx, leadID).
				Return(&entity.Lead{ID: leadID}, nil).
				Once()

			property, err := fx.service.CreateProperty(ctx, usecase.CreateRuralPropertyInput{
				LeadID:       leadID,
				CropType:     entity.CropTypeCotton,
				AreaHectares: tt.area,
			})
			assert.Error(t, err)
			assert.Nil(t, property)
			assert.True(t, errors.Is(err, domainerrors.ErrInvalidArea))
		})
	}
}

func TestRuralPropertyService_UpdateProperty_NotFound(t *testing.T) {
	fx := createTestRuralPropertyService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.propertyRepo.EXPECT().
		FindByID(ctx, id).
		Return(nil, repository.ErrRuralPropertyNotFound)

	area := 75.0
	property, err := fx.service.UpdateProperty(ctx, id, usecase.UpdateRuralPropertyInput{
		AreaHectares: &area,
	})
	assert.Error(t, err)
	assert.Nil(t, property)
	assert.True(t, errors.Is(err, domainerrors.ErrRuralPropertyNotFound))
}

func TestRuralPropertyService_UpdateProperty_NewLeadMustExist(t *testing.T) {
	fx := createTestRuralPropertyService(t)

	ctx := context.Background()
	id := uuid.New()
	oldLeadID := uuid.New()
	newLeadID := uuid.New()

	fx.propertyRepo.EXPECT().
		FindByID(ctx, id).
		Return(&entity.RuralProperty{ID: id, LeadID: oldLeadID}, nil)

	fx.leadRepo.EXPECT().
		FindByID(ctx, newLeadID).
		Return(nil, repository.ErrLeadNotFound)

	property, err := fx.service.UpdateProperty(ctx, id, usecase.UpdateRuralPropertyInput{
		LeadID: &newLeadID,
	})
	assert.Error(t, err)
	assert.Nil(t, property)
	assert.True(t, errors.Is(err, domainerrors.ErrLeadNotFound))
}

func TestRuralPropertyService_UpdateProperty_SameLeadSkipsCheck(t *testing.T) {
	fx := createTestRuralPropertyService(t)

	ctx := context.Background()
	id := uuid.New()
	leadID := uuid.New()
	existing := &entity.RuralProperty{ID: id, LeadID: leadID, CropType: entity.CropTypeSoy, AreaHectares: 40}

	fx.propertyRepo.EXPECT().
		FindByID(ctx, id).
		Return(existing, nil)

	fx.propertyRepo.EXPECT().
		Update(ctx, id, mock.AnythingOfType("repository.RuralPropertyUpdate")).
		Return(existing, nil)

	property, err := fx.service.UpdateProperty(ctx, id, usecase.UpdateRuralPropertyInput{
		LeadID: &leadID,
	})
	require.NoError(t, err)
	assert.NotNil(t, property)
}

func TestRuralPropertyService_UpdateProperty_InvalidArea(t *testing.T) {
	fx := createTestRuralPropertyService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.propertyRepo.EXPECT().
		FindByID(ctx, id).
		Return(&entity.RuralProperty{ID: id, LeadID: uuid.New()}, nil)

	area := -1.0
	property, err := fx.service.UpdateProperty(ctx, id, usecase.UpdateRuralPropertyInput{
		AreaHectares: &area,
	})
	assert.Error(t, err)
	assert.Nil(t, property)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidArea))
}

func TestRuralPropertyService_DeleteProperty_Success(t *testing.T) {
	fx := createTestRuralPropertyService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.propertyRepo.EXPECT().
		FindByID(ctx, id).
		Return(&entity.RuralProperty{ID: id}, nil)

	fx.propertyRepo.EXPECT().
		Delete(ctx, id).
		Return(true, nil)

	err := fx.service.DeleteProperty(ctx, id)
	require.NoError(t, err)
}

func TestRuralPropertyService_DeleteProperty_NotFound(t *testing.T) {
	fx := createTestRuralPropertyService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.propertyRepo.EXPECT().
		FindByID(ctx, id).
		Return(nil, repository.ErrRuralPropertyNotFound)

	err := fx.service.DeleteProperty(ctx, id)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrRuralPropertyNotFound))
}

func TestRuralPropertyService_DeleteProperty_GoneBetweenCheckAndDelete(t *testing.T) {
	fx := createTestRuralPropertyService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.propertyRepo.EXPECT().
		FindByID(ctx, id).
		Return(&entity.RuralProperty{ID: id}, nil)

	fx.propertyRepo.EXPECT().
		Delete(ctx, id).
		Return(false, nil)

	err := fx.service.DeleteProperty(ctx, id)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrRuralPropertyNotFound))
}

func TestRuralPropertyService_ListProperties_PassesFilter(t *testing.T) {
	fx := createTestRuralPropertyService(t)

	ctx := context.Background()
	minArea := 100.0
	filter := repository.RuralPropertyFilter{
		CropType: entity.CropTypeSoy,
		MinArea:  &minArea,
	}
	expected := []*entity.RuralProperty{{CropType: entity.CropTypeSoy, AreaHectares: 120}}

	fx.propertyRepo.EXPECT().
		FindAll(ctx, filter).
		Return(expected, nil)

	properties, err := fx.service.ListProperties(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, expected, properties)
}

func TestRuralPropertyService_GetCropTypeStatistics(t *testing.T) {
	fx := createTestRuralPropertyService(t)

	ctx := context.Background()
	expected := []repository.CropTypeStats{
		{CropType: entity.CropTypeSoy, Count: 3, TotalArea: 450.5},
		{CropType: entity.CropTypeCorn, Count: 1, TotalArea: 80},
	}

	fx.propertyRepo.EXPECT().
		GetCropTypeStatistics(ctx).
		Return(expected, nil)

	stats, err := fx.service.GetCropTypeStatistics(ctx)
	require.NoError(t, err)
	assert.Equal(t, expected, stats)
}

func TestRuralPropertyService_GetTotalAreaByLead_Error(t *testing.T) {
	fx := createTestRuralPropertyService(t)

	ctx := context.Background()
	leadID := uuid.New()

	fx.propertyRepo.EXPECT().
		GetTotalAreaByLeadID(ctx, leadID).
		Return(0, errors.New("database error"))

	total, err := fx.service.GetTotalAreaByLead(ctx, leadID)
	assert.Error(t, err)
	assert.Zero(t, total)
	assert.Contains(t, err.Error(), "failed to get total area by lead")
}

func TestRuralPropertyService_LeadHasHighPriorityProperties(t *testing.T) {
	fx := createTestRuralPropertyService(t)

	ctx := context.Background()
	leadID := uuid.New()

	fx.propertyRepo.EXPECT().
		LeadHasHighPriorityProperties(ctx, leadID).
		Return(true, nil)

	has, err := fx.service.LeadHasHighPriorityProperties(ctx, leadID)
	require.NoError(t, err)
	assert.True(t, has)
}
