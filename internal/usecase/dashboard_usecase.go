package usecase

import "context"

// DashboardLeads is the lead slice of the dashboard report.
type DashboardLeads struct {
	Total          int64            `json:"total"`
	ByStatus       map[string]int64 `json:"by_status"`
	ByMunicipality map[string]int64 `json:"by_municipality"`
	HighPriority   int64            `json:"high_priority"`
}

// DashboardProperties is the property slice of the dashboard report.
type DashboardProperties struct {
	Total             int64            `json:"total"`
	TotalArea         float64          `json:"total_area"`
	AverageArea       float64          `json:"average_area"`
	ByCropType        map[string]int64 `json:"by_crop_type"`
	HighPriorityCount int64            `json:"high_priority_count"`
}

// TopMunicipality names the municipality with the most leads.
type TopMunicipality struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// DashboardInsights carries the derived figures of the dashboard report.
type DashboardInsights struct {
	TopMunicipality          *TopMunicipality `json:"top_municipality"` // nil when there are no leads
	ConversionRate           float64          `json:"conversion_rate"`
	AveragePropertiesPerLead float64          `json:"average_properties_per_lead"`
}

// DashboardStatistics is the full aggregated dashboard report.
type DashboardStatistics struct {
	Leads      DashboardLeads      `json:"leads"`
	Properties DashboardProperties `json:"properties"`
	Insights   DashboardInsights   `json:"insights"`
}

// DashboardUsecase defines the interface for the dashboard aggregation use case.
type DashboardUsecase interface {
	// GetStatistics fans out the underlying queries concurrently and derives
	// the combined report. Rates and areas are rounded to 2 decimal places.
	GetStatistics(ctx context.Context) (*DashboardStatistics, error)
}
