package impl

import (
	"context"
	"testing"

	"agroleads/internal/domain/entity"
	"agroleads/internal/domain/repository"
	mockRepo "agroleads/internal/mocks/repository"
	"agroleads/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// dashboardServiceFixtures holds all test dependencies for dashboard service tests.
type dashboardServiceFixtures struct {
	service      usecase.DashboardUsecase
	leadRepo     *mockRepo.MockLeadRepository
	propertyRepo *mockRepo.MockRuralPropertyRepository
}

func createTestDashboardService(t *testing.T) dashboardServiceFixtures {
	leadRepo := mockRepo.NewMockLeadRepository(t)
	propertyRepo := mockRepo.NewMockRuralPropertyRepository(t)
	service := NewDashboardService(DashboardServiceParams{
		LeadRepo:     leadRepo,
		PropertyRepo: propertyRepo,
	})

	return dashboardServiceFixtures{
		service:      service,
		leadRepo:     leadRepo,
		propertyRepo: propertyRepo,
	}
}

func TestDashboardService_GetStatistics(t *testing.T) {
	fx := createTestDashboardService(t)

	ctx := context.Background()

	// The sub-queries run on the errgroup's derived context.
	fx.leadRepo.EXPECT().
		GetStatusStatistics(mock.Anything).
		Return([]repository.StatusCount{
			{Status: entity.LeadStatusNew, Count: 4},
			{Status: entity.LeadStatusNegotiation, Count: 3},
			{Status: entity.LeadStatusConverted, Count: 3},
		}, nil)

	fx.leadRepo.EXPECT().
		GetMunicipalityStatistics(mock.Anything).
		Return([]repository.MunicipalityCount{
			{Municipality: "Sorriso", Count: 7},
			{Municipality: "Sinop", Count: 3},
		}, nil)

	allLeads := make([]*entity.Lead, 10)
	for i := range allLeads {
		allLeads[i] = &entity.Lead{}
	}
	fx.leadRepo.EXPECT().
		FindAll(mock.Anything, repository.LeadFilter{}).
		Return(allLeads, nil)

	fx.leadRepo.EXPECT().
		FindHighPriorityLeads(mock.Anything).
		Return([]*entity.Lead{{}, {}}, nil)

	fx.propertyRepo.EXPECT().
		FindAll(mock.Anything, repository.RuralPropertyFilter{}).
		Return([]*entity.RuralProperty{
			{AreaHectares: 120.555},
			{AreaHectares: 80.25},
			{AreaHectares: 42},
		}, nil)

	fx.propertyRepo.EXPECT().
		GetCropTypeStatistics(mock.Anything).
		Return([]repository.CropTypeStats{
			{CropType: entity.CropTypeSoy, Count: 2, TotalArea: 200.805},
			{CropType: entity.CropTypeCorn, Count: 1, TotalArea: 42},
		}, nil)

	fx.propertyRepo.EXPECT().
		FindAll(mock.Anything, repository.RuralPropertyFilter{HighPriorityOnly: true}).
		Return([]*entity.RuralProperty{{AreaHectares: 120.555}}, nil)

	stats, err := fx.service.GetStatistics(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(10), stats.Leads.Total)
	assert.Equal(t, int64(4), stats.Leads.ByStatus["NEW"])
	assert.Equal(t, int64(3), stats.Leads.ByStatus["CONVERTED"])
	assert.Equal(t, int64(7), stats.Leads.ByMunicipality["Sorriso"])
	assert.Equal(t, int64(2), stats.Leads.HighPriority)

	assert.Equal(t, int64(3), stats.Properties.Total)
	assert.Equal(t, 242.81, stats.Properties.TotalArea)
	assert.Equal(t, 80.94, stats.Properties.AverageArea)
	assert.Equal(t, int64(2), stats.Properties.ByCropType["SOY"])
	assert.Equal(t, int64(1), stats.Properties.HighPriorityCount)

	require.NotNil(t, stats.Insights.TopMunicipality)
	assert.Equal(t, "Sorriso", stats.Insights.TopMunicipality.Name)
	assert.Equal(t, int64(7), stats.Insights.TopMunicipality.Count)
	assert.Equal(t, 30.0, stats.Insights.ConversionRate)
	assert.Equal(t, 0.3, stats.Insights.AveragePropertiesPerLead)
}

func TestDashboardService_GetStatistics_NoData(t *testing.T) {
	fx := createTestDashboardService(t)

	ctx := context.Background()

	fx.leadRepo.EXPECT().
		GetStatusStatistics(mock.Anything).
		Return([]repository.StatusCount{}, nil)
	fx.leadRepo.EXPECT().
		GetMunicipalityStatistics(mock.Anything).
		Return([]repository.MunicipalityCount{}, nil)
	fx.leadRepo.EXPECT().
		FindAll(mock.Anything, repository.LeadFilter{}).
		Return([]*entity.Lead{}, nil)
	fx.leadRepo.EXPECT().
		FindHighPriorityLeads(mock.Anything).
		Return([]*entity.Lead{}, nil)
	fx.propertyRepo.EXPECT().
		FindAll(mock.Anything, repository.RuralPropertyFilter{}).
		Return([]*entity.RuralProperty{}, nil)
	fx.propertyRepo.EXPECT().
		GetCropTypeStatistics(mock.Anything).
		Return([]repository.CropTypeStats{}, nil)
	fx.propertyRepo.EXPECT().
		FindAll(mock.Anything, repository.RuralPropertyFilter{HighPriorityOnly: true}).
		Return([]*entity.RuralProperty{}, nil)

	stats, err := fx.service.GetStatistics(ctx)
	require.NoError(t, err)

	assert.Zero(t, stats.Leads.Total)
	assert.Empty(t, stats.Leads.ByStatus)
	assert.Zero(t, stats.Properties.Total)
	assert.Zero(t, stats.Properties.TotalArea)
	assert.Zero(t, stats.Properties.AverageArea)
	assert.Nil(t, stats.Insights.TopMunicipality)
	assert.Zero(t, stats.Insights.ConversionRate)
	assert.Zero(t, stats.Insights.AveragePropertiesPerLead)
}

func TestDashboardService_GetStatistics_SubQueryError(t *testing.T) {
	fx := createTestDashboardService(t)

	ctx := context.Background()

	fx.leadRepo.EXPECT().
		GetStatusStatistics(mock.Anything).
		Return(nil, errors.New("database error"))
	fx.leadRepo.EXPECT().
		GetMunicipalityStatistics(mock.Anything).
		Return([]repository.MunicipalityCount{}, nil).
		Maybe()
	fx.leadRepo.EXPECT().
		FindAll(mock.Anything, repository.LeadFilter{}).
		Return([]*entity.Lead{}, nil).
		Maybe()
	fx.leadRepo.EXPECT().
		FindHighPriorityLeads(mock.Anything).
		Return([]*entity.Lead{}, nil).
		Maybe()
	fx.propertyRepo.EXPECT().
		FindAll(mock.Anything, mock.AnythingOfType("repository.RuralPropertyFilter")).
		Return([]*entity.RuralProperty{}, nil).
		Maybe()
	fx.propertyRepo.EXPECT().
		GetCropTypeStatistics(mock.Anything).
		Return([]repository.CropTypeStats{}, nil).
		Maybe()

	stats, err := fx.service.GetStatistics(ctx)
	assert.Error(t, err)
	assert.Nil(t, stats)
	assert.Contains(t, err.Error(), "failed to collect dashboard statistics")
}
