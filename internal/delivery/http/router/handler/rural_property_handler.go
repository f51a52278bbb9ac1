package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"agroleads/internal/delivery/http/response"
	"agroleads/internal/domain/entity"
	"agroleads/internal/domain/repository"
	"agroleads/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RuralPropertyHandlerParams holds dependencies for RuralPropertyHandler, injected by Fx.
type RuralPropertyHandlerParams struct {
	fx.In

	PropertyUC usecase.RuralPropertyUsecase
	Logger     *slog.Logger
}

// RuralPropertyHandler holds dependencies for rural-property-related handlers
type RuralPropertyHandler struct {
	propertyUC usecase.RuralPropertyUsecase
	logger     *slog.Logger
}

// NewRuralPropertyHandler is the constructor for RuralPropertyHandler
func NewRuralPropertyHandler(params RuralPropertyHandlerParams) *RuralPropertyHandler {
	return &RuralPropertyHandler{
		propertyUC: params.PropertyUC,
		logger:     params.Logger,
	}
}

// CreateRuralPropertyRequest represents the request body for registering a property
type CreateRuralPropertyRequest struct {
	LeadID       uuid.UUID `json:"lead_id" validate:"required"`
	CropType     string    `json:"crop_type" validate:"required,oneof=SOY CORN COTTON"`
	AreaHectares float64   `json:"area_hectares" validate:"required,gt=0"`
	Geometry     string    `json:"geometry,omitempty"`
}

// UpdateRuralPropertyRequest represents the request body for a partial property update
type UpdateRuralPropertyRequest struct {
	LeadID       *uuid.UUID `json:"lead_id,omitempty"`
	CropType     *string    `json:"crop_type,omitempty" validate:"omitempty,oneof=SOY CORN COTTON"`
	AreaHectares *float64   `json:"area_hectares,omitempty"`
	Geometry     *string    `json:"geometry,omitempty"`
}

// CreateProperty handles registering a new rural property
func (h *RuralPropertyHandler) CreateProperty(c echo.Context) error {
	var req CreateRuralPropertyRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid rural property input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	property, err := h.propertyUC.CreateProperty(c.Request().Context(), usecase.CreateRuralPropertyInput{
		LeadID:       req.LeadID,
		CropType:     entity.CropType(req.CropType),
		AreaHectares: req.AreaHectares,
		Geometry:     req.Geometry,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, property, "Rural property created successfully")
}

// UpdateProperty handles a partial rural property update
func (h *RuralPropertyHandler) UpdateProperty(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid rural property ID")
	}

	var req UpdateRuralPropertyRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid rural property input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := usecase.UpdateRuralPropertyInput{
		LeadID:       req.LeadID,
		AreaHectares: req.AreaHectares,
		Geometry:     req.Geometry,
	}
	if req.CropType != nil {
		cropType := entity.CropType(*req.CropType)
		input.CropType = &cropType
	}

	property, err := h.propertyUC.UpdateProperty(c.Request().Context(), id, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, property, "Rural property updated successfully")
}

// DeleteProperty handles removing a rural property
func (h *RuralPropertyHandler) DeleteProperty(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid rural property ID")
	}

	if err := h.propertyUC.DeleteProperty(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetProperty handles retrieving a single rural property
func (h *RuralPropertyHandler) GetProperty(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid rural property ID")
	}

	property, err := h.propertyUC.GetProperty(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, property, "Rural property retrieved successfully")
}

// ListProperties handles listing rural properties with optional filters
func (h *RuralPropertyHandler) ListProperties(c echo.Context) error {
	var filter repository.RuralPropertyFilter

	if rawLeadID := c.QueryParam("leadId"); rawLeadID != "" {
		leadID, err := uuid.Parse(rawLeadID)
		if err != nil {
			return response.BadRequest(c, "INVALID_ID", "Invalid lead ID")
		}
		filter.LeadID = leadID
	}

	if rawCropType := c.QueryParam("cropType"); rawCropType != "" {
		cropType := entity.CropType(rawCropType)
		if !cropType.IsValid() {
			return response.BadRequest(c, "VALIDATION_ERROR", "Invalid crop type: "+rawCropType)
		}
		filter.CropType = cropType
	}

	if rawMinArea := c.QueryParam("minArea"); rawMinArea != "" {
		minArea, err := strconv.ParseFloat(rawMinArea, 64)
		if err != nil {
			return response.BadRequest(c, "VALIDATION_ERROR", "Invalid minArea: "+rawMinArea)
		}
		filter.MinArea = &minArea
	}

	if rawMaxArea := c.QueryParam("maxArea"); rawMaxArea != "" {
		maxArea, err := strconv.ParseFloat(rawMaxArea, 64)
		if err != nil {
			return response.BadRequest(c, "VALIDATION_ERROR", "Invalid maxArea: "+rawMaxArea)
		}
		filter.MaxArea = &maxArea
	}

	filter.HighPriorityOnly = c.QueryParam("highPriorityOnly") == "true"

	properties, err := h.propertyUC.ListProperties(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, properties, "Rural properties retrieved successfully")
}

// GetCropTypeStatistics handles the per-crop count and area breakdown
func (h *RuralPropertyHandler) GetCropTypeStatistics(c echo.Context) error {
	stats, err := h.propertyUC.GetCropTypeStatistics(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats, "Crop type statistics retrieved successfully")
}
