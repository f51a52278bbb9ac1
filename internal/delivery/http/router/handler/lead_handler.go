// Package handler contains the Echo HTTP handlers.
package handler

import (
	"log/slog"
	"net/http"

	"agroleads/internal/delivery/http/response"
	"agroleads/internal/domain/entity"
	"agroleads/internal/domain/repository"
	"agroleads/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LeadHandlerParams holds dependencies for LeadHandler, injected by Fx.
type LeadHandlerParams struct {
	fx.In

	LeadUC usecase.LeadUsecase
	Logger *slog.Logger
}

// LeadHandler holds dependencies for lead-related handlers
type LeadHandler struct {
	leadUC usecase.LeadUsecase
	logger *slog.Logger
}

// NewLeadHandler is the constructor for LeadHandler
func NewLeadHandler(params LeadHandlerParams) *LeadHandler {
	return &LeadHandler{
		leadUC: params.LeadUC,
		logger: params.Logger,
	}
}

// CreateLeadRequest represents the request body for registering a lead
type CreateLeadRequest struct {
	Name         string `json:"name" validate:"required,max=255"`
	Cpf          string `json:"cpf" validate:"required"`
	Municipality string `json:"municipality" validate:"required,max=255"`
	Comments     string `json:"comments,omitempty"`
}

// UpdateLeadRequest represents the request body for a partial lead update
type UpdateLeadRequest struct {
	Name         *string `json:"name,omitempty" validate:"omitempty,max=255"`
	Cpf          *string `json:"cpf,omitempty"`
	Status       *string `json:"status,omitempty"`
	Municipality *string `json:"municipality,omitempty" validate:"omitempty,max=255"`
	Comments     *string `json:"comments,omitempty"`
}

// CreateLead handles registering a new lead
func (h *LeadHandler) CreateLead(c echo.Context) error {
	var req CreateLeadRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid lead input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	lead, err := h.leadUC.CreateLead(c.Request().Context(), usecase.CreateLeadInput{
		Name:         req.Name,
		Cpf:          req.Cpf,
		Municipality: req.Municipality,
		Comments:     req.Comments,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, lead, "Lead created successfully")
}

// UpdateLead handles a partial lead update
func (h *LeadHandler) UpdateLead(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid lead ID")
	}

	var req UpdateLeadRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid lead input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := usecase.UpdateLeadInput{
		Name:         req.Name,
		Cpf:          req.Cpf,
		Municipality: req.Municipality,
		Comments:     req.Comments,
	}
	if req.Status != nil {
		status := entity.LeadStatus(*req.Status)
		if !status.IsValid() {
			return response.BadRequest(c, "VALIDATION_ERROR", "Invalid lead status: "+*req.Status)
		}
		input.Status = &status
	}

	lead, err := h.leadUC.UpdateLead(c.Request().Context(), id, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, lead, "Lead updated successfully")
}

// DeleteLead handles removing a lead and its properties
func (h *LeadHandler) DeleteLead(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid lead ID")
	}

	if err := h.leadUC.DeleteLead(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetLead handles retrieving a single lead. With ?includePropertiesCount=true
// the payload also carries the number of properties the lead owns.
func (h *LeadHandler) GetLead(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid lead ID")
	}

	if c.QueryParam("includePropertiesCount") == "true" {
		leadWithCount, err := h.leadUC.GetLeadWithPropertiesCount(c.Request().Context(), id)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		return response.Success(c, http.StatusOK, leadWithCount, "Lead retrieved successfully")
	}

	lead, err := h.leadUC.GetLead(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, lead, "Lead retrieved successfully")
}

// ListLeads handles listing leads with optional filters
func (h *LeadHandler) ListLeads(c echo.Context) error {
	filter := repository.LeadFilter{
		Municipality: c.QueryParam("municipality"),
		Search:       c.QueryParam("search"),
	}

	if rawStatus := c.QueryParam("status"); rawStatus != "" {
		status := entity.LeadStatus(rawStatus)
		if !status.IsValid() {
			return response.BadRequest(c, "VALIDATION_ERROR", "Invalid lead status: "+rawStatus)
		}
		filter.Status = status
	}

	leads, err := h.leadUC.ListLeads(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, leads, "Leads retrieved successfully")
}

// GetPriorityLeads handles listing leads that own a high-priority property
func (h *LeadHandler) GetPriorityLeads(c echo.Context) error {
	leads, err := h.leadUC.GetPriorityLeads(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, leads, "Priority leads retrieved successfully")
}

// GetStatistics handles the lead count breakdowns
func (h *LeadHandler) GetStatistics(c echo.Context) error {
	stats, err := h.leadUC.GetStatistics(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats, "Lead statistics retrieved successfully")
}
