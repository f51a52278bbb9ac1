package impl

import (
	"context"

	"agroleads/internal/domain/entity"
	"agroleads/internal/domain/repository"
	"agroleads/internal/usecase"
	"agroleads/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

type dashboardService struct {
	leadRepo     repository.LeadRepository
	propertyRepo repository.RuralPropertyRepository
}

// DashboardServiceParams holds dependencies for DashboardService, injected by Fx.
type DashboardServiceParams struct {
	fx.In

	LeadRepo     repository.LeadRepository
	PropertyRepo repository.RuralPropertyRepository
}

// NewDashboardService creates a new dashboard service instance
func NewDashboardService(params DashboardServiceParams) usecase.DashboardUsecase {
	return &dashboardService{
		leadRepo:     params.LeadRepo,
		propertyRepo: params.PropertyRepo,
	}
}

// GetStatistics issues the seven sub-queries concurrently, joins, and derives
// the combined report. Fetch order carries no meaning; only the join matters.
func (s *dashboardService) GetStatistics(ctx context.Context) (*usecase.DashboardStatistics, error) {
	var (
		statusStats            []repository.StatusCount
		municipalityStats      []repository.MunicipalityCount
		allLeads               []*entity.Lead
		highPriorityLeads      []*entity.Lead
		allProperties          []*entity.RuralProperty
		cropTypeStats          []repository.CropTypeStats
		highPriorityProperties []*entity.RuralProperty
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() (err error) {
		statusStats, err = s.leadRepo.GetStatusStatistics(groupCtx)

		return err
	})
	group.Go(func() (err error) {
		municipalityStats, err = s.leadRepo.GetMunicipalityStatistics(groupCtx)

		return err
	})
	group.Go(func() (err error) {
		allLeads, err = s.leadRepo.FindAll(groupCtx, repository.LeadFilter{})

		return err
	})
	group.Go(func() (err error) {
		highPriorityLeads, err = s.leadRepo.FindHighPriorityLeads(groupCtx)

		return err
	})
	group.Go(func() (err error) {
		allProperties, err = s.propertyRepo.FindAll(groupCtx, repository.RuralPropertyFilter{})

		return err
	})
	group.Go(func() (err error) {
		cropTypeStats, err = s.propertyRepo.GetCropTypeStatistics(groupCtx)

		return err
	})
	group.Go(func() (err error) {
		highPriorityProperties, err = s.propertyRepo.FindAll(groupCtx, repository.RuralPropertyFilter{HighPriorityOnly: true})

		return err
	})

	if err := group.Wait(); err != nil {
		return nil, errors.Wrap(err, "failed to collect dashboard statistics")
	}

	byStatus := make(map[string]int64, len(statusStats))
	for _, row := range statusStats {
		byStatus[row.Status.String()] = row.Count
	}

	byMunicipality := make(map[string]int64, len(municipalityStats))
	for _, row := range municipalityStats {
		byMunicipality[row.Municipality] = row.Count
	}

	var totalArea float64
	for _, property := range allProperties {
		totalArea += property.AreaHectares
	}

	averageArea := 0.0
	if len(allProperties) > 0 {
		averageArea = totalArea / float64(len(allProperties))
	}

	byCropType := make(map[string]int64, len(cropTypeStats))
	for _, row := range cropTypeStats {
		byCropType[row.CropType.String()] = row.Count
	}

	// Municipality statistics arrive sorted descending by count, so the top
	// municipality is the first row.
	var topMunicipality *usecase.TopMunicipality
	if len(municipalityStats) > 0 {
		topMunicipality = &usecase.TopMunicipality{
			Name:  municipalityStats[0].Municipality,
			Count: municipalityStats[0].Count,
		}
	}

	totalLeads := int64(len(allLeads))
	conversionRate := 0.0
	averagePropertiesPerLead := 0.0
	if totalLeads > 0 {
		conversionRate = float64(byStatus[entity.LeadStatusConverted.String()]) / float64(totalLeads) * 100
		averagePropertiesPerLead = float64(len(allProperties)) / float64(totalLeads)
	}

	return &usecase.DashboardStatistics{
		Leads: usecase.DashboardLeads{
			Total:          totalLeads,
			ByStatus:       byStatus,
			ByMunicipality: byMunicipality,
			HighPriority:   int64(len(highPriorityLeads)),
		},
		Properties: usecase.DashboardProperties{
			Total:             int64(len(allProperties)),
			TotalArea:         util.RoundTo2(totalArea),
			AverageArea:       util.RoundTo2(averageArea),
			ByCropType:        byCropType,
			HighPriorityCount: int64(len(highPriorityProperties)),
		},
		Insights: usecase.DashboardInsights{
			TopMunicipality:          topMunicipality,
			ConversionRate:           util.RoundTo2(conversionRate),
			AveragePropertiesPerLead: util.RoundTo2(averagePropertiesPerLead),
		},
	}, nil
}
