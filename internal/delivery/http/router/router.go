// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"agroleads/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	LeadHandler          *handler.LeadHandler
	RuralPropertyHandler *handler.RuralPropertyHandler
	DashboardHandler     *handler.DashboardHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	leadHandler          *handler.LeadHandler
	ruralPropertyHandler *handler.RuralPropertyHandler
	dashboardHandler     *handler.DashboardHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		leadHandler:          params.LeadHandler,
		ruralPropertyHandler: params.RuralPropertyHandler,
		dashboardHandler:     params.DashboardHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Lead routes. Static paths register before the :id parameter ones.
	leadGroup := e.Group("/leads")
	{
		leadGroup.GET("", r.leadHandler.ListLeads)
		leadGroup.POST("", r.leadHandler.CreateLead)
		leadGroup.GET("/priority", r.leadHandler.GetPriorityLeads)
		leadGroup.GET("/statistics", r.leadHandler.GetStatistics)
		leadGroup.GET("/:id", r.leadHandler.GetLead)
		leadGroup.PUT("/:id", r.leadHandler.UpdateLead)
		leadGroup.DELETE("/:id", r.leadHandler.DeleteLead)
	}

	// Rural property routes
	propertyGroup := e.Group("/rural-properties")
	{
		propertyGroup.GET("", r.ruralPropertyHandler.ListProperties)
		propertyGroup.POST("", r.ruralPropertyHandler.CreateProperty)
		propertyGroup.GET("/statistics", r.ruralPropertyHandler.GetCropTypeStatistics)
		propertyGroup.GET("/:id", r.ruralPropertyHandler.GetProperty)
		propertyGroup.PUT("/:id", r.ruralPropertyHandler.UpdateProperty)
		propertyGroup.DELETE("/:id", r.ruralPropertyHandler.DeleteProperty)
	}

	// Dashboard routes
	dashboardGroup := e.Group("/dashboard")
	{
		dashboardGroup.GET("/statistics", r.dashboardHandler.GetStatistics)
	}
}
